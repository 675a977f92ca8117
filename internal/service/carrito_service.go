package service

import (
	"context"
	"errors"

	"retrovault/internal/apierror"
	"retrovault/internal/dto"
	"retrovault/internal/model"
	"retrovault/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CarritoService defines the business logic contract for the shopping cart.
type CarritoService interface {
	Agregar(ctx context.Context, userID uint, req dto.AgregarItemRequest) (*dto.ItemCarritoResponse, error)
	Ver(ctx context.Context, userID uint) (*dto.CarritoResponse, error)
	Vaciar(ctx context.Context, userID uint) error
}

type carritoService struct {
	repo      repository.CarritoRepository
	productos repository.ProductoRepository
}

func NewCarritoService(repo repository.CarritoRepository, productos repository.ProductoRepository) CarritoService {
	return &carritoService{repo: repo, productos: productos}
}

func (s *carritoService) Agregar(ctx context.Context, userID uint, req dto.AgregarItemRequest) (*dto.ItemCarritoResponse, error) {
	cantidad := req.Cantidad
	if cantidad <= 0 {
		cantidad = 1
	}

	if _, err := s.productos.PorID(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("Producto no encontrado")
		}
		return nil, err
	}

	item := &model.ItemCarrito{
		UserID:    userID,
		ProductID: req.ProductID,
		Cantidad:  cantidad,
	}
	if err := s.repo.AgregarItem(ctx, item); err != nil {
		return nil, err
	}

	return &dto.ItemCarritoResponse{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Cantidad:  item.Cantidad,
	}, nil
}

func (s *carritoService) Ver(ctx context.Context, userID uint) (*dto.CarritoResponse, error) {
	items, err := s.repo.PorUsuario(ctx, userID)
	if err != nil {
		return nil, err
	}

	lineas := make([]dto.LineaCarritoResponse, 0, len(items))
	total := decimal.Zero
	for _, it := range items {
		if it.Producto == nil {
			// Line references a product that no longer exists; skip rather
			// than failing the whole cart.
			continue
		}
		subtotal := it.Producto.Precio.Mul(decimal.NewFromInt(int64(it.Cantidad))).Round(2)
		total = total.Add(subtotal)
		lineas = append(lineas, dto.LineaCarritoResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Cantidad:  it.Cantidad,
			Nombre:    it.Producto.Nombre,
			Precio:    it.Producto.Precio,
			Codigo:    it.Producto.Codigo,
			Subtotal:  subtotal,
		})
	}

	return &dto.CarritoResponse{Items: lineas, Total: total.Round(2)}, nil
}

func (s *carritoService) Vaciar(ctx context.Context, userID uint) error {
	return s.repo.Vaciar(ctx, userID)
}
