package service

import (
	"context"
	"errors"
	"strings"

	"retrovault/internal/apierror"
	"retrovault/internal/dto"
	"retrovault/internal/model"
	"retrovault/internal/repository"
	"retrovault/internal/token"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost matches the fixed work factor the credentials were minted with.
const bcryptCost = 10

type AuthService interface {
	Registrar(ctx context.Context, req dto.RegistroRequest) (*dto.UsuarioResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginData, error)
}

type authService struct {
	repo   repository.UsuarioRepository
	tokens *token.Service
}

func NewAuthService(repo repository.UsuarioRepository, tokens *token.Service) AuthService {
	return &authService{repo: repo, tokens: tokens}
}

// MapUsuario converts a model to its outward representation, dropping the hash.
func MapUsuario(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Email:     u.Email,
		Rol:       string(u.Rol),
		CreatedAt: u.CreatedAt,
	}
}

// NormalizarEmail trims and lowercases so the stored uniqueness constraint is
// effectively case-insensitive for everything written through this service.
func NormalizarEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Registrar(ctx context.Context, req dto.RegistroRequest) (*dto.UsuarioResponse, error) {
	email := NormalizarEmail(req.Email)

	existing, err := s.repo.PorEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apierror.Conflicto("El email ya está registrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	rol := model.Rol(req.Rol)
	if rol == "" {
		rol = model.RolCliente
	}

	u := &model.Usuario{
		Nombre:       strings.TrimSpace(req.Nombre),
		Email:        email,
		PasswordHash: string(hash),
		Rol:          rol,
	}
	if err := s.repo.Crear(ctx, u); err != nil {
		// The pre-check races with concurrent registrations; the unique index
		// is the real arbiter.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("El email ya está registrado")
		}
		return nil, err
	}

	resp := MapUsuario(u)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginData, error) {
	// Unknown email and wrong password must be indistinguishable to the caller.
	u, err := s.repo.PorEmail(ctx, NormalizarEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoAutorizado("Credenciales inválidas")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, apierror.NoAutorizado("Credenciales inválidas")
	}

	tok, err := s.tokens.Emitir(u.ID, u.Email, u.Rol)
	if err != nil {
		return nil, err
	}

	return &dto.LoginData{Token: tok, User: MapUsuario(u)}, nil
}
