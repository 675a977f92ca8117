package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"retrovault/internal/apierror"
	"retrovault/internal/dto"
	"retrovault/internal/model"
	"retrovault/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	cacheTTL           = 60 * time.Second
	cacheKeyListPrefix = "productos:"
	cacheKeyCodPrefix  = "producto:codigo:"
)

// ProductoService defines the business logic contract for the catalog.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) ([]dto.ProductoResponse, error)
	PorCodigo(ctx context.Context, codigo string) (*dto.ProductoResponse, error)
}

type productoService struct {
	repo repository.ProductoRepository
	// rdb is the catalog read cache; nil disables caching entirely.
	rdb *redis.Client
}

func NewProductoService(repo repository.ProductoRepository, rdb *redis.Client) ProductoService {
	return &productoService{repo: repo, rdb: rdb}
}

func mapProducto(p *model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Codigo:      p.Codigo,
		Precio:      p.Precio,
		Descripcion: p.Descripcion,
		Categoria:   string(p.Categoria),
		CreatedAt:   p.CreatedAt,
	}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	existing, err := s.repo.PorCodigo(ctx, req.Codigo)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apierror.Conflicto("El código del producto ya está registrado")
	}

	p := &model.Producto{
		Nombre:      req.Nombre,
		Codigo:      req.Codigo,
		Precio:      req.Precio,
		Descripcion: req.Descripcion,
		Categoria:   model.Categoria(req.Categoria),
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("El código del producto ya está registrado")
		}
		return nil, err
	}

	s.invalidarCache(ctx, p)

	resp := mapProducto(p)
	return &resp, nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) ([]dto.ProductoResponse, error) {
	key := cacheKeyListPrefix + "all"
	if filter.Category != "" {
		key = cacheKeyListPrefix + filter.Category
	}

	if cached, ok := s.cacheGet(ctx, key); ok {
		var resp []dto.ProductoResponse
		if json.Unmarshal(cached, &resp) == nil {
			return resp, nil
		}
	}

	productos, err := s.repo.Listar(ctx, filter.Category)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		resp = append(resp, mapProducto(&productos[i]))
	}

	s.cacheSet(ctx, key, resp)
	return resp, nil
}

func (s *productoService) PorCodigo(ctx context.Context, codigo string) (*dto.ProductoResponse, error) {
	key := cacheKeyCodPrefix + codigo
	if cached, ok := s.cacheGet(ctx, key); ok {
		var resp dto.ProductoResponse
		if json.Unmarshal(cached, &resp) == nil {
			return &resp, nil
		}
	}

	p, err := s.repo.PorCodigo(ctx, codigo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("Producto no encontrado")
		}
		return nil, err
	}

	resp := mapProducto(p)
	s.cacheSet(ctx, key, resp)
	return &resp, nil
}

// ── Cache helpers ────────────────────────────────────────────────────────────
// Cache failures are logged and swallowed: the database stays the single
// point of truth and a dead Redis must not take the catalog down with it.

func (s *productoService) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return nil, false
	}
	return raw, true
}

func (s *productoService) cacheSet(ctx context.Context, key string, v interface{}) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// invalidarCache drops the list keys (categories are a closed set, so the key
// space is enumerable) and the new product's codigo key.
func (s *productoService) invalidarCache(ctx context.Context, p *model.Producto) {
	if s.rdb == nil {
		return
	}
	keys := []string{cacheKeyListPrefix + "all", cacheKeyCodPrefix + p.Codigo}
	for _, c := range model.Categorias() {
		keys = append(keys, cacheKeyListPrefix+string(c))
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Warn().Err(err).Msg("cache invalidation failed")
	}
}
