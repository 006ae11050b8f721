package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/gimnasiojp/gym-dashboard/docs"
	"github.com/gimnasiojp/gym-dashboard/internal/api/handler"
	"github.com/gimnasiojp/gym-dashboard/internal/api/middleware"
	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
	"github.com/gimnasiojp/gym-dashboard/internal/core/service"
	mongodb "github.com/gimnasiojp/gym-dashboard/internal/infrastructure/db/mongo"
	redisdb "github.com/gimnasiojp/gym-dashboard/internal/infrastructure/db/redis"
	"github.com/gimnasiojp/gym-dashboard/internal/infrastructure/queue"
	"github.com/gimnasiojp/gym-dashboard/internal/infrastructure/upstream"
)

// Dependencies carries the external resources the router wires together.
type Dependencies struct {
	Redis     *redis.Client
	Mongo     *mongo.Database
	Upstream  *upstream.Client
	JWTSecret string
	Logger    zerolog.Logger
	// VisitWorkers sizes the visit dispatcher pool; <= 0 uses the default.
	VisitWorkers int
}

// NewRouter builds the Echo instance with all routes registered, plus the
// visit dispatcher the caller must Start.
func NewRouter(deps Dependencies) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("gymdash"))

	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	// --- Upstream services ---
	usuarios := upstream.NewUsuarios(deps.Upstream)
	clientes := upstream.NewClientes(deps.Upstream)
	productos := upstream.NewProductos(deps.Upstream)
	maquinas := upstream.NewMaquinas(deps.Upstream)
	personal := upstream.NewPersonal(deps.Upstream)

	// --- Core services ---
	sessionStore := redisdb.NewSessionStore(deps.Redis, deps.Logger)
	sessions := service.NewSessionService(usuarios, clientes, sessionStore, deps.JWTSecret, 24*time.Hour, deps.Logger)
	enrollment := service.NewEnrollmentService(clientes, deps.Logger)
	carts := service.NewCartService(mongodb.NewCartRepository(deps.Mongo), productos, deps.Logger)
	visits := service.NewVisitService(clientes, redisdb.NewVisitDedup(deps.Redis), deps.Logger)
	dispatcher := queue.NewDispatcher(deps.VisitWorkers, visits, deps.Logger)

	auth := middleware.Auth(deps.JWTSecret, sessions)

	// --- Session / registration (public entry points) ---
	sessionHandler := handler.NewSessionHandler(sessions)
	e.POST("/v1/session", sessionHandler.Login)
	e.GET("/v1/session", sessionHandler.Current, auth)
	e.DELETE("/v1/session", sessionHandler.Logout, auth)

	enrollmentHandler := handler.NewEnrollmentHandler(enrollment)
	e.POST("/v1/register", enrollmentHandler.Enroll)

	// --- Staff sections (role-gated, mirroring the sidebar menus) ---
	clientesHandler := handler.NewClientesHandler(clientes)
	cg := e.Group("/v1/clientes", auth, middleware.RBAC(domain.RoleFundador, domain.RoleGerente))
	cg.GET("", clientesHandler.List)
	cg.POST("", clientesHandler.Create)
	cg.GET("/estadisticas", clientesHandler.Stats)
	cg.GET("/por-vencer", clientesHandler.Expiring)
	cg.GET("/:id", clientesHandler.Get)
	cg.PUT("/:id", clientesHandler.Update)
	cg.DELETE("/:id", clientesHandler.Delete)
	cg.POST("/:id/renovar", clientesHandler.Renew)

	visitHandler := handler.NewVisitHandler(dispatcher)
	e.POST("/v1/clientes/:id/visitas", visitHandler.Record,
		auth, middleware.RBAC(domain.RoleFundador, domain.RoleGerente, domain.RoleAdministrador))

	productosHandler := handler.NewProductosHandler(productos)
	pg := e.Group("/v1/productos", auth, middleware.RBAC(domain.RoleFundador, domain.RoleGerente, domain.RoleAdministrador))
	pg.GET("", productosHandler.List)
	pg.POST("", productosHandler.Create)
	pg.GET("/stock-bajo", productosHandler.LowStock)
	pg.GET("/:id", productosHandler.Get)
	pg.PUT("/:id", productosHandler.Update)
	pg.DELETE("/:id", productosHandler.Delete)
	pg.PATCH("/:id/stock", productosHandler.UpdateStock)

	maquinasHandler := handler.NewMaquinasHandler(maquinas)
	mg := e.Group("/v1/maquinas", auth, middleware.RBAC(domain.RoleFundador))
	mg.GET("", maquinasHandler.List)
	mg.POST("", maquinasHandler.Create)
	mg.GET("/:id", maquinasHandler.Get)
	mg.PUT("/:id", maquinasHandler.Update)
	mg.DELETE("/:id", maquinasHandler.Delete)
	mg.PATCH("/:id/estado", maquinasHandler.SetStatus)

	personalHandler := handler.NewPersonalHandler(personal)
	hg := e.Group("/v1/personal", auth, middleware.RBAC(domain.RoleFundador, domain.RoleGerente))
	hg.GET("", personalHandler.List)
	hg.POST("", personalHandler.Create)
	hg.GET("/estadisticas", personalHandler.Stats)
	hg.GET("/recientes", personalHandler.Recent)
	hg.GET("/:id", personalHandler.Get)
	hg.PUT("/:id", personalHandler.Update)
	hg.DELETE("/:id", personalHandler.Delete)
	hg.PATCH("/:id/estado", personalHandler.SetStatus)

	usuariosHandler := handler.NewUsuariosHandler(usuarios)
	ug := e.Group("/v1/usuarios", auth, middleware.RBAC(domain.RoleFundador))
	ug.GET("", usuariosHandler.List)
	ug.GET("/:id", usuariosHandler.Get)

	// --- Client dashboard sections ---
	storeHandler := handler.NewStoreHandler(carts, productos)
	sg := e.Group("/v1", auth, middleware.ClientsOnly())
	sg.GET("/ofertas", storeHandler.Offers)
	sg.GET("/tienda/productos", storeHandler.Products)
	sg.GET("/cart", storeHandler.Cart)
	sg.POST("/cart/items", storeHandler.AddItem)
	sg.DELETE("/cart/items/:product_id", storeHandler.RemoveItem)
	sg.POST("/cart/checkout", storeHandler.Checkout)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis, deps.Mongo, deps.Upstream)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, dispatcher
}
