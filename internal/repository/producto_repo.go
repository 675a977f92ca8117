package repository

import (
	"context"

	"retrovault/internal/model"

	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for the catalog.
type ProductoRepository interface {
	Crear(ctx context.Context, p *model.Producto) error
	// Listar returns products newest-first, optionally filtered by category.
	Listar(ctx context.Context, categoria string) ([]model.Producto, error)
	PorCodigo(ctx context.Context, codigo string) (*model.Producto, error)
	PorID(ctx context.Context, id uint) (*model.Producto, error)
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Crear(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) Listar(ctx context.Context, categoria string) ([]model.Producto, error) {
	var productos []model.Producto
	q := r.db.WithContext(ctx).Model(&model.Producto{})
	if categoria != "" {
		q = q.Where("categoria = ?", categoria)
	}
	err := q.Order("created_at DESC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) PorCodigo(ctx context.Context, codigo string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) PorID(ctx context.Context, id uint) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
