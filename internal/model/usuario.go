package model

import (
	"time"
)

// Usuario stores registered accounts with role-based access.
// PasswordHash is bcrypt and must never be serialized outward.
type Usuario struct {
	ID           uint   `gorm:"primaryKey"`
	Nombre       string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Rol          Rol    `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
}

// TableName overrides GORM's default pluralization for the Spanish table name.
func (Usuario) TableName() string { return "usuarios" }
