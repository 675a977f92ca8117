package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre"      validate:"required,min=3,max=100"`
	Codigo      string          `json:"codigo"      validate:"required,alphanum"`
	Precio      decimal.Decimal `json:"precio"      validate:"required,gt=0"`
	Descripcion *string         `json:"descripcion" validate:"omitempty,max=500"`
	Categoria   string          `json:"categoria"   validate:"required,oneof=juegos consolas coleccionables otros"`
}

// ProductoFilter holds the optional catalog query parameters.
type ProductoFilter struct {
	Category string `form:"category" validate:"omitempty,oneof=juegos consolas coleccionables otros"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID          uint            `json:"id"`
	Nombre      string          `json:"nombre"`
	Codigo      string          `json:"codigo"`
	Precio      decimal.Decimal `json:"precio"`
	Descripcion *string         `json:"descripcion"`
	Categoria   string          `json:"categoria"`
	CreatedAt   time.Time       `json:"created_at"`
}
