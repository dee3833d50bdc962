package dto

import "time"

type CrearReporteRequest struct {
	PedidoID        uint   `json:"pedido_id" validate:"required,gt=0"`
	UsuarioID       uint   `json:"usuario_id" validate:"required,gt=0"`
	Tipo            string `json:"tipo" validate:"required,oneof=producto_danado sin_stock otro"`
	Mensaje         string `json:"mensaje"`
	RecepcionistaID uint   `json:"recepcionista_id" validate:"required,gt=0"`
}

type CrearReporteResponse struct {
	Success   bool `json:"success"`
	ReporteID uint `json:"reporte_id"`
	NotifID   uint `json:"notif_id"`
}

// MarcarLeidaRequest marks a report or notification as read.
type MarcarLeidaRequest struct {
	ID uint `json:"id" validate:"required,gt=0"`
}

// ReporteFilter selects at most one scope; zero values mean "all reports".
type ReporteFilter struct {
	PedidoID        uint `form:"pedido_id"`
	RecepcionistaID uint `form:"recepcionista_id"`
	BodegueroID     uint `form:"bodeguero_id"`
}

// ReporteListItem is one row of GET /orders/reportes with the reporting user's
// name/role and the order code joined in.
type ReporteListItem struct {
	ID              uint      `json:"id"`
	PedidoID        uint      `json:"pedido_id"`
	UsuarioID       uint      `json:"usuario_id"`
	Tipo            string    `json:"tipo"`
	Mensaje         string    `json:"mensaje"`
	RecepcionistaID uint      `json:"recepcionista_id"`
	Leida           bool      `json:"leida"`
	FechaReporte    time.Time `json:"fecha_reporte"`
	UsuarioNombre   string    `json:"usuario_nombre"`
	Rol             string    `json:"rol"`
	NumeroPedido    string    `json:"numero_pedido"`
}
