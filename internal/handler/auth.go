package handler

import (
	"net/http"

	"retrovault/internal/dto"
	"retrovault/internal/middleware"
	"retrovault/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Registrar godoc
// @Summary Registro de usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegistroRequest true "Datos de registro"
// @Success 201 {object} dto.Envelope
// @Failure 409 {object} apierror.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Registrar(c *gin.Context) {
	var req dto.RegistroRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Envelope{
		Success: true,
		Message: "Usuario registrado exitosamente",
		Data:    resp,
	})
}

// Login godoc
// @Summary Login de usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} apierror.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Envelope{
		Success: true,
		Message: "Login exitoso",
		Data:    resp,
	})
}

// Perfil returns the authenticated user already loaded by the middleware.
func (h *AuthHandler) Perfil(c *gin.Context) {
	u := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, dto.Envelope{
		Success: true,
		Data:    service.MapUsuario(u),
	})
}
