package model

import (
	"github.com/shopspring/decimal"
)

// Producto is a warehouse product. Stock never goes negative: the only write
// path that decreases it is the guarded decrement in ProductoRepository, which
// carries a "stock >= cantidad" predicate.
type Producto struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Codigo      string          `gorm:"uniqueIndex;not null" json:"codigo"`
	Nombre      string          `gorm:"index;not null" json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	// StockMinimo is the low-stock alert threshold (stock <= stock_minimo).
	StockMinimo int  `gorm:"not null;default:5" json:"stock_minimo"`
	Activo      bool `gorm:"not null;default:true" json:"activo"`
}

func (Producto) TableName() string { return "productos" }
