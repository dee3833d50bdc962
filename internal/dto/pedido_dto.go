package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type DetallePedidoRequest struct {
	ProductoID     uint            `json:"producto_id" validate:"required,gt=0"`
	Cantidad       int             `json:"cantidad" validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"min=0"`
}

type CrearPedidoRequest struct {
	Detalles          []DetallePedidoRequest `json:"detalles" validate:"required,min=1,dive"`
	Observaciones     string                 `json:"observaciones"`
	TiempoPreparacion *int                   `json:"tiempo_preparacion"`
	// FechaEntrega accepts "2006-01-02" or "2006-01-02T15:04"; empty means none.
	FechaEntrega string `json:"fecha_entrega"`
}

type CrearPedidoResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	CodigoPedido string `json:"codigo_pedido"`
	PedidoID     uint   `json:"pedido_id"`
}

type ActualizarEstadoRequest struct {
	PedidoID uint   `json:"pedido_id" validate:"required,gt=0"`
	Estado   string `json:"estado" validate:"required"`
}

// ActualizarEstadoResponse reports the applied transition; stock_alerta lists
// the products that crossed their minimum while preparing, when any did.
type ActualizarEstadoResponse struct {
	Success     bool          `json:"success"`
	Message     string        `json:"message"`
	StockAlerta []AlertaStock `json:"stock_alerta,omitempty"`
}

type EnviarABodegaRequest struct {
	PedidoID uint `json:"pedido_id" validate:"required,gt=0"`
}

// PedidoListItem is one row of GET /orders/get_all, with the receptionist name
// and item count joined in.
type PedidoListItem struct {
	ID                  uint       `json:"id"`
	CodigoPedido        string     `json:"codigo_pedido"`
	RecepcionistaID     uint       `json:"recepcionista_id"`
	BodegueroID         *uint      `json:"bodeguero_id"`
	Estado              string     `json:"estado"`
	FechaCreacion       time.Time  `json:"fecha_creacion"`
	FechaActualizacion  time.Time  `json:"fecha_actualizacion"`
	Observaciones       string     `json:"observaciones"`
	TiempoPreparacion   *int       `json:"tiempo_preparacion"`
	FechaEntrega        *time.Time `json:"fecha_entrega"`
	RecepcionistaNombre string     `json:"recepcionista_nombre"`
	CantidadItems       int64      `json:"cantidad_items"`
}

// DetalleConProducto is one order line joined with its product data,
// as returned by GET /orders/get_details.
type DetalleConProducto struct {
	ID             uint            `json:"id"`
	ProductoID     uint            `json:"producto_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Codigo         string          `json:"codigo"`
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion"`
}

// PedidoInfo mirrors the pedidos row inside the get_details response.
type PedidoInfo struct {
	ID                 uint       `json:"id"`
	CodigoPedido       string     `json:"codigo_pedido"`
	RecepcionistaID    uint       `json:"recepcionista_id"`
	BodegueroID        *uint      `json:"bodeguero_id"`
	Estado             string     `json:"estado"`
	Observaciones      string     `json:"observaciones"`
	TiempoPreparacion  *int       `json:"tiempo_preparacion"`
	FechaEntrega       *time.Time `json:"fecha_entrega"`
	FechaCreacion      time.Time  `json:"fecha_creacion"`
	FechaActualizacion time.Time  `json:"fecha_actualizacion"`
}

type PedidoDetalleResponse struct {
	Pedido   PedidoInfo           `json:"pedido"`
	Detalles []DetalleConProducto `json:"detalles"`
}
