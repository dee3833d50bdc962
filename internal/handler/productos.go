package handler

import (
	"errors"
	"net/http"

	"github.com/adrianLames/Sistema-Pedidos/internal/apierror"
	"github.com/adrianLames/Sistema-Pedidos/internal/dto"
	"github.com/adrianLames/Sistema-Pedidos/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearProductoRequest true "Datos del producto"
// @Success      201 {object} dto.CrearProductoResponse
// @Failure      409 {object} apierror.APIError
// @Router       /products/create [post]
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.CrearProducto(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrCodigoDuplicado) {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		failWrite(c, err, "Error al crear producto")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar godoc
// @Summary      Actualizar producto
// @Description  Actualización parcial; dispara alerta de stock si el nuevo valor queda bajo el mínimo.
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ActualizarProductoRequest true "Campos a modificar"
// @Success      200 {object} dto.SuccessResponse
// @Router       /products/update [post]
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.ActualizarProducto(c.Request.Context(), req); err != nil {
		failWrite(c, err, "Error al actualizar producto")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Producto actualizado correctamente"})
}

// Listar godoc
// @Summary      Listar productos activos
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Router       /products/get_all [get]
func (h *ProductosHandler) Listar(c *gin.Context) {
	productos, err := h.svc.ListarProductos(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": productos})
}

// AlertasStock godoc
// @Summary      Productos con stock bajo
// @Description  Productos activos con stock <= stock_minimo, cacheado 30s.
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Router       /products/stock_alert [get]
func (h *ProductosHandler) AlertasStock(c *gin.Context) {
	items, err := h.svc.ListarAlertasStock(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": items})
}
