package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/adrianLames/Sistema-Pedidos/internal/apierror"
	"github.com/adrianLames/Sistema-Pedidos/internal/config"
	"github.com/adrianLames/Sistema-Pedidos/internal/dto"
	"github.com/adrianLames/Sistema-Pedidos/internal/infra"
	"github.com/adrianLames/Sistema-Pedidos/internal/middleware"
	"github.com/adrianLames/Sistema-Pedidos/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct {
	svc service.PedidoService
	cfg *config.Config
}

func NewPedidosHandler(svc service.PedidoService, cfg *config.Config) *PedidosHandler {
	return &PedidosHandler{svc: svc, cfg: cfg}
}

// Crear godoc
// @Summary      Crear pedido
// @Description  Alta atómica del pedido: cabecera, líneas y descuentos de stock se confirman juntos o nada.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearPedidoRequest true "Líneas del pedido"
// @Success      201 {object} dto.CrearPedidoResponse
// @Failure      400 {object} apierror.APIError
// @Failure      503 {object} apierror.APIError
// @Router       /orders/create [post]
func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return
	}
	if len(req.Detalles) == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("No hay productos en el pedido"))
		return
	}
	if err := validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Datos incompletos"))
		return
	}

	claims := middleware.GetClaims(c)
	resp, err := h.svc.CrearPedido(c.Request.Context(), claims.ID, req)
	if err != nil {
		var stockErr *service.ErrStockInsuficiente
		if errors.As(err, &stockErr) {
			c.JSON(http.StatusServiceUnavailable, apierror.New("Error al crear pedido: "+stockErr.Error()))
			return
		}
		failWrite(c, err, "Error al crear pedido: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar pedidos
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Router       /orders/get_all [get]
func (h *PedidosHandler) Listar(c *gin.Context) {
	pedidos, err := h.svc.ListarPedidos(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": pedidos})
}

// Detalle godoc
// @Summary      Detalle de un pedido
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Param        order_id query int true "ID del pedido"
// @Success      200 {object} dto.PedidoDetalleResponse
// @Failure      404 {object} apierror.APIError
// @Router       /orders/get_details [get]
func (h *PedidosHandler) Detalle(c *gin.Context) {
	id, ok := h.pedidoID(c)
	if !ok {
		return
	}

	resp, err := h.svc.ObtenerDetalle(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPedidoNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pedido": resp.Pedido, "detalles": resp.Detalles})
}

// ActualizarEstado godoc
// @Summary      Cambiar estado del pedido
// @Description  El paso a preparación descuenta stock línea a línea; un faltante responde 409 y deja las líneas previas descontadas.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ActualizarEstadoRequest true "Transición"
// @Success      200 {object} dto.ActualizarEstadoResponse
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Failure      409 {object} apierror.APIError
// @Router       /orders/update_status [post]
func (h *PedidosHandler) ActualizarEstado(c *gin.Context) {
	var req dto.ActualizarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	claims := middleware.GetClaims(c)
	alertas, err := h.svc.ActualizarEstado(c.Request.Context(), claims.ID, req)
	if err != nil {
		var stockErr *service.ErrStockInsuficiente
		var transErr *service.ErrTransicionInvalida
		switch {
		case errors.Is(err, service.ErrPedidoNoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.As(err, &transErr):
			c.JSON(http.StatusBadRequest, apierror.New(transErr.Error()))
		case errors.As(err, &stockErr):
			c.JSON(http.StatusConflict, apierror.New(stockErr.Error()))
		default:
			failWrite(c, err, "Error al actualizar estado")
		}
		return
	}
	c.JSON(http.StatusOK, dto.ActualizarEstadoResponse{
		Success:     true,
		Message:     "Estado actualizado correctamente",
		StockAlerta: alertas,
	})
}

// EnviarABodega godoc
// @Summary      Enviar pedido a bodega
// @Description  Transición pendiente → preparación en una sola transacción; un faltante revierte todo y responde 503.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.EnviarABodegaRequest true "Pedido"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Failure      503 {object} apierror.APIError
// @Router       /orders/send_to_warehouse [post]
func (h *PedidosHandler) EnviarABodega(c *gin.Context) {
	var req dto.EnviarABodegaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.EnviarABodega(c.Request.Context(), req); err != nil {
		var stockErr *service.ErrStockInsuficiente
		var transErr *service.ErrTransicionInvalida
		switch {
		case errors.Is(err, service.ErrPedidoNoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.Is(err, service.ErrPedidoSinDetalles):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		case errors.As(err, &transErr):
			c.JSON(http.StatusBadRequest, apierror.New(transErr.Error()))
		case errors.As(err, &stockErr):
			c.JSON(http.StatusServiceUnavailable, apierror.New("Error: "+stockErr.Error()))
		default:
			failWrite(c, err, "Error: "+err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Pedido enviado a bodega"})
}

// PDF godoc
// @Summary      Ticket de preparación en PDF
// @Tags         pedidos
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        order_id query int true "ID del pedido"
// @Success      200 {file} file
// @Failure      404 {object} apierror.APIError
// @Router       /orders/pdf [get]
func (h *PedidosHandler) PDF(c *gin.Context) {
	id, ok := h.pedidoID(c)
	if !ok {
		return
	}

	detalle, err := h.svc.ObtenerDetalle(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPedidoNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.Error(err)
		return
	}

	path, err := infra.GenerarPedidoPDF(&detalle.Pedido, detalle.Detalles, h.cfg.PDFStoragePath)
	if err != nil {
		c.Error(err)
		return
	}
	c.FileAttachment(path, "pedido_"+detalle.Pedido.CodigoPedido+".pdf")
}

func (h *PedidosHandler) pedidoID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Query("order_id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("ID de pedido inválido"))
		return 0, false
	}
	return uint(id), true
}
