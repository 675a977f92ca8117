package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"retrovault/internal/model"

	"gorm.io/gorm"
)

// ── In-memory repository stubs ────────────────────────────────────────────────
// They mirror the storage contracts the services rely on, including the
// unique-key errors and the cart upsert semantics of the real repositories.

type stubUsuarioRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[string]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[string]*model.Usuario)}
}

func (r *stubUsuarioRepo) Crear(_ context.Context, u *model.Usuario) error {
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

func (r *stubUsuarioRepo) PorEmail(_ context.Context, email string) (*model.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) PorID(_ context.Context, id uint) (*model.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type stubProductoRepo struct {
	mu        sync.Mutex
	nextID    uint
	productos []*model.Producto
}

func newStubProductoRepo() *stubProductoRepo { return &stubProductoRepo{} }

func (r *stubProductoRepo) Crear(_ context.Context, p *model.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.productos {
		if e.Codigo == p.Codigo {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	p.ID = r.nextID
	// Strictly increasing timestamps keep newest-first ordering deterministic.
	p.CreatedAt = time.Unix(0, 0).Add(time.Duration(r.nextID) * time.Second)
	r.productos = append(r.productos, p)
	return nil
}

func (r *stubProductoRepo) Listar(_ context.Context, categoria string) ([]model.Producto, error) {
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

func (r *stubProductoRepo) PorCodigo(_ context.Context, codigo string) (*model.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.productos {
		if p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) PorID(_ context.Context, id uint) (*model.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.productos {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// stubCarritoRepo reproduces the (user_id, product_id) unique-index upsert:
// the check-and-increment is atomic under the lock, like it is in postgres.
type stubCarritoRepo struct {
	mu        sync.Mutex
	nextID    uint
	items     map[[2]uint]*model.ItemCarrito
	productos *stubProductoRepo
}

func newStubCarritoRepo(productos *stubProductoRepo) *stubCarritoRepo {
	return &stubCarritoRepo{items: make(map[[2]uint]*model.ItemCarrito), productos: productos}
}

func (r *stubCarritoRepo) AgregarItem(_ context.Context, item *model.ItemCarrito) error {
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

func (r *stubCarritoRepo) PorUsuario(ctx context.Context, userID uint) ([]model.ItemCarrito, error) {
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

func (r *stubCarritoRepo) Vaciar(_ context.Context, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, it := range r.items {
		if it.UserID == userID {
			delete(r.items, key)
		}
	}
	return nil
}
