package handler

import (
	"net/http"

	"github.com/adrianLames/Sistema-Pedidos/internal/dto"
	"github.com/adrianLames/Sistema-Pedidos/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Crear godoc
// @Summary      Reportar incidencia sobre un pedido
// @Description  Registra el reporte y genera la notificación de administrador en el acto.
// @Tags         reportes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearReporteRequest true "Incidencia"
// @Success      201 {object} dto.CrearReporteResponse
// @Router       /orders/reportes [post]
func (h *ReportesHandler) Crear(c *gin.Context) {
	var req dto.CrearReporteRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.CrearReporte(c.Request.Context(), req)
	if err != nil {
		failWrite(c, err, "Error al crear reporte")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar reportes
// @Description  Sin filtros devuelve todos; pedido_id, recepcionista_id o bodeguero_id acotan el alcance.
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        pedido_id        query int false "Filtrar por pedido"
// @Param        recepcionista_id query int false "Filtrar por recepcionista"
// @Param        bodeguero_id     query int false "Filtrar por bodeguero"
// @Success      200 {object} map[string]interface{}
// @Router       /orders/reportes [get]
func (h *ReportesHandler) Listar(c *gin.Context) {
	var filter dto.ReporteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Filtros inválidos"})
		return
	}

	reportes, err := h.svc.ListarReportes(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reportes": reportes})
}

// MarcarLeida godoc
// @Summary      Marcar reporte como leído
// @Description  Idempotente: marcar un reporte ya leído responde igual que la primera vez.
// @Tags         reportes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.MarcarLeidaRequest true "Reporte"
// @Success      200 {object} dto.SuccessResponse
// @Router       /orders/reportes [put]
func (h *ReportesHandler) MarcarLeida(c *gin.Context) {
	var req dto.MarcarLeidaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.MarcarReporteLeida(c.Request.Context(), req.ID); err != nil {
		failWrite(c, err, "Error al actualizar reporte")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
