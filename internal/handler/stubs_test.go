package handler_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"retrovault/internal/model"

	"gorm.io/gorm"
)

// In-memory repositories for exercising the full HTTP stack without postgres.
// They honor the same unique-key and upsert contracts as the gorm versions.

type memUsuarioRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[string]*model.Usuario
}

func newMemUsuarioRepo() *memUsuarioRepo {
	return &memUsuarioRepo{users: make(map[string]*model.Usuario)}
}

func (r *memUsuarioRepo) Crear(_ context.Context, u *model.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	r.users[u.Email] = u
	return nil
}

func (r *memUsuarioRepo) PorEmail(_ context.Context, email string) (*model.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *memUsuarioRepo) PorID(_ context.Context, id uint) (*model.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type memProductoRepo struct {
	mu        sync.Mutex
	nextID    uint
	productos []*model.Producto
}

func newMemProductoRepo() *memProductoRepo { return &memProductoRepo{} }

func (r *memProductoRepo) Crear(_ context.Context, p *model.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.productos {
		if e.Codigo == p.Codigo {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	p.ID = r.nextID
	p.CreatedAt = time.Unix(0, 0).Add(time.Duration(r.nextID) * time.Second)
	r.productos = append(r.productos, p)
	return nil
}

func (r *memProductoRepo) Listar(_ context.Context, categoria string) ([]model.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		if categoria != "" && string(p.Categoria) != categoria {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memProductoRepo) PorCodigo(_ context.Context, codigo string) (*model.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.productos {
		if p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memProductoRepo) PorID(_ context.Context, id uint) (*model.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.productos {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type memCarritoRepo struct {
	mu        sync.Mutex
	nextID    uint
	items     map[[2]uint]*model.ItemCarrito
	productos *memProductoRepo
}

func newMemCarritoRepo(productos *memProductoRepo) *memCarritoRepo {
	return &memCarritoRepo{items: make(map[[2]uint]*model.ItemCarrito), productos: productos}
}

func (r *memCarritoRepo) AgregarItem(_ context.Context, item *model.ItemCarrito) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]uint{item.UserID, item.ProductID}
	if existing, ok := r.items[key]; ok {
		existing.Cantidad += item.Cantidad
		*item = *existing
		return nil
	}
	r.nextID++
	stored := *item
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.items[key] = &stored
	*item = stored
	return nil
}

func (r *memCarritoRepo) PorUsuario(ctx context.Context, userID uint) ([]model.ItemCarrito, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.ItemCarrito, 0)
	for _, it := range r.items {
		if it.UserID != userID {
			continue
		}
		cp := *it
		if p, err := r.productos.PorID(ctx, it.ProductID); err == nil {
			cp.Producto = p
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCarritoRepo) Vaciar(_ context.Context, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, it := range r.items {
		if it.UserID == userID {
			delete(r.items, key)
		}
	}
	return nil
}
