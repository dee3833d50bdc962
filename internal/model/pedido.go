package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pedido. Transitions are enforced by service.TransicionValida.
const (
	EstadoPendiente   = "pendiente"
	EstadoPreparacion = "preparacion"
	EstadoCamino      = "camino"
	EstadoEntregado   = "entregado"
	EstadoCancelado   = "cancelado"
)

// Pedido is an order raised by a receptionist and fulfilled by warehouse staff.
type Pedido struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`
	// CodigoPedido is the human-readable display code (PED + date + suffix).
	// Unique index; creation retries on a collision.
	CodigoPedido       string     `gorm:"uniqueIndex;not null" json:"codigo_pedido"`
	RecepcionistaID    uint       `gorm:"not null;index" json:"recepcionista_id"`
	BodegueroID        *uint      `json:"bodeguero_id"`
	Estado             string     `gorm:"type:varchar(20);not null;default:'pendiente'" json:"estado"`
	Observaciones      string     `json:"observaciones"`
	TiempoPreparacion  *int       `json:"tiempo_preparacion"`
	FechaEntrega       *time.Time `json:"fecha_entrega"`
	FechaCreacion      time.Time  `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
	FechaActualizacion time.Time  `gorm:"column:fecha_actualizacion;autoUpdateTime" json:"fecha_actualizacion"`

	Detalles []DetallePedido `gorm:"foreignKey:PedidoID" json:"detalles,omitempty"`
}

func (Pedido) TableName() string { return "pedidos" }

// DetallePedido is one order line. Lines are written once at order creation and
// never mutated afterwards.
type DetallePedido struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	PedidoID       uint            `gorm:"not null;index" json:"pedido_id"`
	ProductoID     uint            `gorm:"not null;index" json:"producto_id"`
	Cantidad       int             `gorm:"not null" json:"cantidad"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio_unitario"`

	Producto *Producto `gorm:"foreignKey:ProductoID" json:"-"`
}

func (DetallePedido) TableName() string { return "detalle_pedidos" }
