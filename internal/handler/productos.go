package handler

import (
	"net/http"

	"retrovault/internal/apierror"
	"retrovault/internal/dto"
	"retrovault/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Envelope{
		Success: true,
		Message: "Producto creado exitosamente",
		Data:    resp,
	})
}

func (h *ProductosHandler) Listar(c *gin.Context) {
	var filter dto.ProductoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Interno("Parámetros inválidos").Response())
		return
	}
	if err := validate.Struct(filter); err != nil {
		// An unknown category matches nothing; drop it and list everything.
		filter.Category = ""
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Envelope{Success: true, Data: resp})
}

func (h *ProductosHandler) PorCodigo(c *gin.Context) {
	resp, err := h.svc.PorCodigo(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Envelope{Success: true, Data: resp})
}
