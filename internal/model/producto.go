package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto is a catalog entry. Codigo is the public lookup key; Precio is
// always positive (validated at the boundary, backed by a DB check).
type Producto struct {
	ID          uint            `gorm:"primaryKey"`
	Nombre      string          `gorm:"index;not null"`
	Codigo      string          `gorm:"uniqueIndex;not null"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null;check:precio > 0"`
	Descripcion *string
	Categoria   Categoria `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
}

func (Producto) TableName() string { return "productos" }
