package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"retrovault/internal/apierror"
	"retrovault/internal/config"
	"retrovault/internal/handler"
	"retrovault/internal/middleware"
	"retrovault/internal/model"
	"retrovault/internal/repository"
	"retrovault/internal/service"
	"retrovault/internal/token"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	carritoRepo := repository.NewCarritoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	tokens := token.NewService(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)
	authSvc := service.NewAuthService(usuarioRepo, tokens)
	productoSvc := service.NewProductoService(productoRepo, rdb)
	carritoSvc := service.NewCarritoService(carritoRepo, productoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	carritoH := handler.NewCarritoHandler(carritoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/", handler.Bienvenida())
	r.GET("/health", handler.Health(db, rdb))

	authMW := middleware.AuthRequired(tokens, usuarioRepo)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authH.Registrar)
			auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
			auth.GET("/perfil", authMW, authH.Perfil)
		}

		productos := api.Group("/products", authMW)
		{
			productos.GET("", productosH.Listar)
			productos.GET("/:codigo", productosH.PorCodigo)
			productos.POST("", middleware.RequireRol(model.RolAdmin), productosH.Crear)
		}

		carrito := api.Group("/cart", authMW)
		{
			carrito.POST("", carritoH.Agregar)
			carrito.GET("", carritoH.Ver)
			carrito.DELETE("", carritoH.Vaciar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// SPA convention: unknown API paths are a JSON 404; anything else serves
	// a static asset when one exists, otherwise the front-end entry document.
	r.NoRoute(spaFallback(cfg.StaticDir))

	return r
}

func spaFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, apierror.NoEncontrado("Endpoint no encontrado").Response())
			return
		}
		if c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, apierror.NoEncontrado("Endpoint no encontrado").Response())
			return
		}

		asset := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if fi, err := os.Stat(asset); err == nil && !fi.IsDir() {
			c.File(asset)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	}
}
