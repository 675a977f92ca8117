package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistroRequest struct {
	Nombre   string `json:"nombre"   validate:"required,min=3,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	// Rol is optional; empty defaults to "client".
	Rol string `json:"rol" validate:"omitempty,oneof=client admin"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UsuarioResponse never carries the password hash.
type UsuarioResponse struct {
	ID        uint      `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Rol       string    `json:"rol"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginData struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}

// Envelope is the success wrapper used by auth and product endpoints.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
