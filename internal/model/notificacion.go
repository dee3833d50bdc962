package model

import "time"

// Notification types surfaced to admin users.
const (
	NotificacionStock   = "stock"
	NotificacionReporte = "reporte"
	NotificacionGeneral = "general"
)

// NotificacionAdmin is a row visible only to admin-role users, covering stock
// alerts, issue reports and general system messages.
type NotificacionAdmin struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Tipo          string    `gorm:"type:varchar(20);not null;default:'general'" json:"tipo"`
	Mensaje       string    `gorm:"not null" json:"mensaje"`
	LinkAccion    *string   `gorm:"column:link_accion" json:"link_accion"`
	Leida         bool      `gorm:"not null;default:false" json:"leida"`
	FechaCreacion time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
}

func (NotificacionAdmin) TableName() string { return "notificaciones_admin" }
