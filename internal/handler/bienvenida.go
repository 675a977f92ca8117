package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Bienvenida is the API welcome document listing the public entry points.
func Bienvenida() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Bienvenido a RetroVault API - Sistema de E-commerce de Videojuegos Retro",
			"version": "1.0.0",
			"endpoints": gin.H{
				"auth": gin.H{
					"register": "POST /api/auth/register",
					"login":    "POST /api/auth/login",
					"perfil":   "GET /api/auth/perfil (requiere token)",
				},
				"products": gin.H{
					"list":     "GET /api/products (requiere token)",
					"byCodigo": "GET /api/products/:codigo (requiere token)",
					"create":   "POST /api/products (requiere token de admin)",
				},
				"cart": gin.H{
					"add":   "POST /api/cart (requiere token)",
					"view":  "GET /api/cart (requiere token)",
					"clear": "DELETE /api/cart (requiere token)",
				},
			},
		})
	}
}
