package repository

import (
	"context"

	"retrovault/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CarritoRepository defines the data access contract for per-user cart lines.
type CarritoRepository interface {
	// AgregarItem inserts the line or, when one already exists for the same
	// (user, product) pair, increments its cantidad by item.Cantidad. The
	// merged row is written back into item.
	AgregarItem(ctx context.Context, item *model.ItemCarrito) error
	// PorUsuario returns the user's lines with Producto preloaded so callers
	// can derive subtotals from the current price.
	PorUsuario(ctx context.Context, userID uint) ([]model.ItemCarrito, error)
	// Vaciar deletes every line for the user; a no-op on an empty cart.
	Vaciar(ctx context.Context, userID uint) error
}

type carritoRepo struct{ db *gorm.DB }

func NewCarritoRepository(db *gorm.DB) CarritoRepository { return &carritoRepo{db: db} }

func (r *carritoRepo) AgregarItem(ctx context.Context, item *model.ItemCarrito) error {
	// Single-statement upsert on the (user_id, product_id) unique index.
	// The increment happens inside the database, so two concurrent adds for
	// the same pair serialize there instead of racing a read-modify-write.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"cantidad": gorm.Expr("items_carrito.cantidad + EXCLUDED.cantidad"),
		}),
	}).Create(item).Error
	if err != nil {
		return err
	}
	// Re-read so the caller sees the merged cantidad, not the request delta.
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
		First(item).Error
}

func (r *carritoRepo) PorUsuario(ctx context.Context, userID uint) ([]model.ItemCarrito, error) {
	var items []model.ItemCarrito
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *carritoRepo) Vaciar(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.ItemCarrito{}).Error
}
