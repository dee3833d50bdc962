package model

import "time"

// Reporte is an issue raised by a warehouse user against a specific order.
// Tipo: "producto_danado" | "sin_stock" | "otro"
type Reporte struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PedidoID        uint      `gorm:"not null;index" json:"pedido_id"`
	UsuarioID       uint      `gorm:"not null;index" json:"usuario_id"`
	Tipo            string    `gorm:"type:varchar(30);not null;default:'otro'" json:"tipo"`
	Mensaje         string    `json:"mensaje"`
	RecepcionistaID uint      `gorm:"not null;index" json:"recepcionista_id"`
	Leida           bool      `gorm:"not null;default:false" json:"leida"`
	FechaReporte    time.Time `gorm:"column:fecha_reporte;autoCreateTime" json:"fecha_reporte"`
}

func (Reporte) TableName() string { return "reportes_pedidos" }
