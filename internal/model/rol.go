package model

// Rol is the closed set of user roles. Authorization decisions must go
// through the middleware role gate, never through ad-hoc string comparisons.
type Rol string

const (
	RolCliente Rol = "client"
	RolAdmin   Rol = "admin"
)

// Valida reports whether r is a known role.
func (r Rol) Valida() bool {
	return r == RolCliente || r == RolAdmin
}

// Categoria is the closed set of product categories.
type Categoria string

const (
	CategoriaJuegos         Categoria = "juegos"
	CategoriaConsolas       Categoria = "consolas"
	CategoriaColeccionables Categoria = "coleccionables"
	CategoriaOtros          Categoria = "otros"
)

// Categorias lists every valid category, used for cache invalidation.
func Categorias() []Categoria {
	return []Categoria{CategoriaJuegos, CategoriaConsolas, CategoriaColeccionables, CategoriaOtros}
}
