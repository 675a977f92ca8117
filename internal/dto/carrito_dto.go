package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AgregarItemRequest struct {
	ProductID uint `json:"productId"`
	// Cantidad defaults to 1 when omitted.
	Cantidad int `json:"cantidad"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ItemCarritoResponse is the stored line as returned by an add operation.
type ItemCarritoResponse struct {
	ID        uint `json:"id"`
	UserID    uint `json:"userId"`
	ProductID uint `json:"productId"`
	Cantidad  int  `json:"cantidad"`
}

// LineaCarritoResponse is one joined cart line. Subtotal is derived at read
// time from the current product price, never stored.
type LineaCarritoResponse struct {
	ID        uint            `json:"id"`
	ProductID uint            `json:"product_id"`
	Cantidad  int             `json:"cantidad"`
	Nombre    string          `json:"nombre"`
	Precio    decimal.Decimal `json:"precio"`
	Codigo    string          `json:"codigo"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CarritoResponse struct {
	Items []LineaCarritoResponse `json:"items"`
	Total decimal.Decimal        `json:"total"`
}
