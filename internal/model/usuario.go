package model

import "time"

// Usuario stores system users with role-based access.
// Rol: "admin" | "recepcionista" | "bodeguero"
type Usuario struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre        string    `gorm:"not null" json:"nombre"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	Password      string    `gorm:"not null" json:"-"`
	Rol           string    `gorm:"type:varchar(20);not null" json:"rol"`
	Activo        bool      `gorm:"not null;default:true" json:"activo"`
	FechaCreacion time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
}

// TableName keeps the Spanish table name the frontend's DB already uses.
func (Usuario) TableName() string { return "usuarios" }
