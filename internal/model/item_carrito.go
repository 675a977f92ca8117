package model

import (
	"time"
)

// ItemCarrito is one cart line. The composite unique index on
// (user_id, product_id) guarantees at most one row per pair and backs the
// ON CONFLICT upsert in the repository, so concurrent adds for the same
// product become an atomic increment instead of duplicate rows.
type ItemCarrito struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_carrito_usuario_producto"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_carrito_usuario_producto"`
	Cantidad  int  `gorm:"not null;default:1;check:cantidad >= 1"`
	CreatedAt time.Time

	Usuario  *Usuario  `gorm:"foreignKey:UserID"`
	Producto *Producto `gorm:"foreignKey:ProductID"`
}

func (ItemCarrito) TableName() string { return "items_carrito" }
