package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/adrianLames/Sistema-Pedidos/internal/apierror"
	"github.com/adrianLames/Sistema-Pedidos/internal/dto"
	"github.com/adrianLames/Sistema-Pedidos/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary      Iniciar sesión
// @Description  Valida credenciales y emite un token de acceso.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Credenciales"
// @Success      200 {object} dto.LoginResponse
// @Failure      401 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsuarioNoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New("Usuario no encontrado"))
		case errors.Is(err, service.ErrCredenciales):
			c.JSON(http.StatusUnauthorized, apierror.New("Contraseña incorrecta"))
		default:
			c.Error(err)
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Validate godoc
// @Summary      Validar token
// @Description  Verifica el token del header Authorization y devuelve el usuario.
// @Tags         auth
// @Produce      json
// @Success      200 {object} dto.UsuarioPublico
// @Failure      400 {object} apierror.APIError
// @Failure      401 {object} apierror.APIError
// @Router       /auth/validate [get]
func (h *AuthHandler) Validate(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusBadRequest, apierror.New("Token no proporcionado"))
		return
	}

	user, err := h.svc.Validate(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token inválido"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
