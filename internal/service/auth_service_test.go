package service_test

import (
	"context"
	"testing"
	"time"

	"retrovault/internal/apierror"
	"retrovault/internal/dto"
	"retrovault/internal/model"
	"retrovault/internal/service"
	"retrovault/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func newTestTokens() *token.Service {
	return token.NewService(testSecret, 24*time.Hour)
}

func TestRegistrar_Success(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewAuthService(repo, newTestTokens())

	resp, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Nombre: "Ana Gómez", Email: "ana@example.com", Password: "Secreta1",
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "ana@example.com", resp.Email)
	// Empty rol defaults to client.
	assert.Equal(t, string(model.RolCliente), resp.Rol)
}

func TestRegistrar_NormalizaEmail(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewAuthService(repo, newTestTokens())

	resp, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Nombre: "Ana", Email: "  ANA@Example.COM ", Password: "Secreta1",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", resp.Email)
}

func TestRegistrar_EmailDuplicado(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewAuthService(repo, newTestTokens())

	_, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Nombre: "Ana", Email: "dup@example.com", Password: "Secreta1",
	})
	require.NoError(t, err)

	// Different name, password, and role must not matter.
	_, err = svc.Registrar(context.Background(), dto.RegistroRequest{
		Nombre: "Otra Persona", Email: "dup@example.com", Password: "Distinta9", Rol: "admin",
	})
	require.Error(t, err)
	apiErr, ok := err.(*apierror.Error)
	require.True(t, ok)
	assert.Equal(t, apierror.KindConflict, apiErr.Kind)
	assert.Equal(t, 409, apiErr.Status())
}

func TestLogin_Success_TokenCarriesIdentity(t *testing.T) {
	repo := newStubUsuarioRepo()
	tokens := newTestTokens()
	svc := service.NewAuthService(repo, tokens)

	reg, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Nombre: "Admin", Email: "admin@example.com", Password: "Admin123", Rol: "admin",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "admin@example.com", Password: "Admin123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, reg.ID, resp.User.ID)

	claims, err := tokens.Verificar(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, model.RolAdmin, claims.Rol)
}

func TestLogin_RespuestaGenerica(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewAuthService(repo, newTestTokens())

	_, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Nombre: "Ana", Email: "ana@example.com", Password: "Secreta1",
	})
	require.NoError(t, err)

	// Wrong password and unknown email must be indistinguishable.
	_, errPass := svc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@example.com", Password: "Equivocada1",
	})
	_, errEmail := svc.Login(context.Background(), dto.LoginRequest{
		Email: "nadie@example.com", Password: "Secreta1",
	})

	require.Error(t, errPass)
	require.Error(t, errEmail)
	assert.Equal(t, errPass.Error(), errEmail.Error())

	apiErr, ok := errPass.(*apierror.Error)
	require.True(t, ok)
	assert.Equal(t, apierror.KindUnauthorized, apiErr.Kind)
}
