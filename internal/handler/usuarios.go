package handler

import (
	"errors"
	"net/http"

	"github.com/adrianLames/Sistema-Pedidos/internal/apierror"
	"github.com/adrianLames/Sistema-Pedidos/internal/dto"
	"github.com/adrianLames/Sistema-Pedidos/internal/service"

	"github.com/gin-gonic/gin"
)

type UsuariosHandler struct{ svc service.AuthService }

func NewUsuariosHandler(svc service.AuthService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearUsuarioRequest true "Datos del usuario"
// @Success      201 {object} dto.CrearUsuarioResponse
// @Failure      409 {object} apierror.APIError
// @Router       /users/create [post]
func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.CrearUsuario(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailDuplicado) {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		failWrite(c, err, "Error al crear usuario")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar godoc
// @Summary      Actualizar usuario
// @Description  Actualización parcial; solo los campos presentes se modifican.
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ActualizarUsuarioRequest true "Campos a modificar"
// @Success      200 {object} dto.SuccessResponse
// @Failure      404 {object} apierror.APIError
// @Router       /users/update [post]
func (h *UsuariosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.ActualizarUsuario(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, service.ErrUsuarioNoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.Is(err, service.ErrEmailDuplicado):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			failWrite(c, err, "Error al actualizar usuario")
		}
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Usuario actualizado correctamente"})
}

// Listar godoc
// @Summary      Listar usuarios activos
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.UsuarioPublico
// @Router       /users/get_all [get]
func (h *UsuariosHandler) Listar(c *gin.Context) {
	users, err := h.svc.ListarUsuarios(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}
