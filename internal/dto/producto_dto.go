package dto

import "github.com/shopspring/decimal"

type CrearProductoRequest struct {
	Codigo      string          `json:"codigo" validate:"required"`
	Nombre      string          `json:"nombre" validate:"required"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio" validate:"min=0"`
	Stock       *int            `json:"stock" validate:"required,min=0"`
	StockMinimo *int            `json:"stock_minimo" validate:"omitempty,min=0"`
}

type ActualizarProductoRequest struct {
	ID          uint             `json:"id" validate:"required,gt=0"`
	Codigo      string           `json:"codigo"`
	Nombre      string           `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	StockMinimo *int             `json:"stock_minimo" validate:"omitempty,min=0"`
}

type CrearProductoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// AlertaStock describes one product in low-stock condition. It is both the
// notifier input and the stock_alerta payload on update_status responses.
type AlertaStock struct {
	Nombre      string `json:"nombre"`
	Stock       int    `json:"stock"`
	StockMinimo int    `json:"stock_minimo"`
}

// StockAlertItem is one row of GET /products/stock_alert.
type StockAlertItem struct {
	ID          uint   `json:"id"`
	Codigo      string `json:"codigo"`
	Nombre      string `json:"nombre"`
	Stock       int    `json:"stock"`
	StockMinimo int    `json:"stock_minimo"`
}
