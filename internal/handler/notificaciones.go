package handler

import (
	"net/http"

	"github.com/adrianLames/Sistema-Pedidos/internal/dto"
	"github.com/adrianLames/Sistema-Pedidos/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificacionesHandler struct{ svc service.NotificacionService }

func NewNotificacionesHandler(svc service.NotificacionService) *NotificacionesHandler {
	return &NotificacionesHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar notificaciones de administración
// @Description  No leídas primero, luego más recientes; máximo 50 filas.
// @Tags         notificaciones
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Router       /admin/notifications [get]
func (h *NotificacionesHandler) Listar(c *gin.Context) {
	notifs, err := h.svc.ListarNotificaciones(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": notifs})
}

// Crear godoc
// @Summary      Crear notificación manual
// @Tags         notificaciones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearNotificacionRequest true "Notificación"
// @Success      201 {object} map[string]interface{}
// @Router       /admin/notifications [post]
func (h *NotificacionesHandler) Crear(c *gin.Context) {
	var req dto.CrearNotificacionRequest
	if !bindAndValidate(c, &req) {
		return
	}

	notif, err := h.svc.CrearNotificacion(c.Request.Context(), req)
	if err != nil {
		failWrite(c, err, "Error al crear notificación")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": notif.ID})
}

// MarcarLeida godoc
// @Summary      Marcar notificación como leída
// @Description  Idempotente: repetir la marca no cambia el resultado.
// @Tags         notificaciones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.MarcarLeidaRequest true "Notificación"
// @Success      200 {object} dto.SuccessResponse
// @Router       /admin/notifications [put]
func (h *NotificacionesHandler) MarcarLeida(c *gin.Context) {
	var req dto.MarcarLeidaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.MarcarNotificacionLeida(c.Request.Context(), req.ID); err != nil {
		failWrite(c, err, "Error al actualizar notificación")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
