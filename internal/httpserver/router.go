package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ecomdash/product-dashboard/internal/metrics"
	authmw "github.com/ecomdash/product-dashboard/internal/middleware/auth"
	loggingmw "github.com/ecomdash/product-dashboard/internal/middleware/logging"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	CatalogHandler *CatalogHTTP
	JWTSecret      []byte
	Logger         *slog.Logger
}

// New builds the Echo instance with all middleware and routes registered.
func New(d *Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())
	// Metrics wraps the logger: the logger resolves handler errors, so the
	// committed status is what gets recorded.
	e.Use(metrics.Middleware())
	e.Use(loggingmw.RequestLogger(d.Logger))

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the eCommerce Dashboard API"})
	})
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	requireAuth := authmw.RequireAuth(d.JWTSecret)
	requireAdmin := authmw.RequireRole("admin")

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.GET("/me", d.AuthHandler.Me, requireAuth)

	products := api.Group("/products")
	products.GET("", d.CatalogHandler.GetProducts)
	// Export is registered before /:id so the literal path wins.
	products.GET("/export", d.CatalogHandler.ExportProducts, requireAuth)
	products.GET("/:id", d.CatalogHandler.GetProduct)

	// Mutations require the admin role, not just a valid token.
	admin := products.Group("", requireAuth, requireAdmin)
	admin.POST("", d.CatalogHandler.CreateProduct)
	admin.PUT("/:id", d.CatalogHandler.UpdateProduct)
	admin.DELETE("/:id", d.CatalogHandler.DeleteProduct)

	return e
}
