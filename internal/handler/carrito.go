package handler

import (
	"errors"
	"net/http"

	"retrovault/internal/apierror"
	"retrovault/internal/dto"
	"retrovault/internal/middleware"
	"retrovault/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// CarritoHandler responds with the cart wire format of the original API:
// bare {message, item} / {items, total} objects, no success envelope.
type CarritoHandler struct{ svc service.CarritoService }

func NewCarritoHandler(svc service.CarritoService) *CarritoHandler {
	return &CarritoHandler{svc: svc}
}

func (h *CarritoHandler) Agregar(c *gin.Context) {
	var req dto.AgregarItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "JSON inválido"})
		return
	}
	if req.ProductID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "El ID del producto es requerido"})
		return
	}

	u := middleware.CurrentUser(c)
	item, err := h.svc.Agregar(c.Request.Context(), u.ID, req)
	if err != nil {
		h.responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Producto agregado al carrito correctamente",
		"item":    item,
	})
}

func (h *CarritoHandler) Ver(c *gin.Context) {
	u := middleware.CurrentUser(c)
	resp, err := h.svc.Ver(c.Request.Context(), u.ID)
	if err != nil {
		h.responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CarritoHandler) Vaciar(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if err := h.svc.Vaciar(c.Request.Context(), u.ID); err != nil {
		h.responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Carrito vaciado correctamente"})
}

func (h *CarritoHandler) responderError(c *gin.Context, err error) {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status(), gin.H{"message": apiErr.Mensaje})
		return
	}
	log.Error().Str("path", c.FullPath()).Err(err).Msg("cart handler error")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Error interno del servidor"})
}
