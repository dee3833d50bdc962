package router

import (
	"context"
	"time"

	"github.com/adrianLames/Sistema-Pedidos/internal/config"
	"github.com/adrianLames/Sistema-Pedidos/internal/handler"
	"github.com/adrianLames/Sistema-Pedidos/internal/infra"
	"github.com/adrianLames/Sistema-Pedidos/internal/middleware"
	"github.com/adrianLames/Sistema-Pedidos/internal/repository"
	"github.com/adrianLames/Sistema-Pedidos/internal/service"
	"github.com/adrianLames/Sistema-Pedidos/internal/worker"

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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	dispatcher := worker.NewDispatcher(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	reporteRepo := repository.NewReporteRepository(db)
	notifRepo := repository.NewNotificacionRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	alertaSvc := service.NewAlertaService(notifRepo, dispatcher)
	productoSvc := service.NewProductoService(productoRepo, alertaSvc, rdb)
	pedidoSvc := service.NewPedidoService(pedidoRepo, productoRepo, alertaSvc)
	reporteSvc := service.NewReporteService(reporteRepo, notifRepo)
	notifSvc := service.NewNotificacionService(notifRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc, cfg)
	reportesH := handler.NewReportesHandler(reporteSvc)
	notifH := handler.NewNotificacionesHandler(notifSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		// validate handles its own missing-token case, so it stays outside
		// the auth middleware
		auth.GET("/validate", authH.Validate)
	}

	// Bootstrap endpoints used by the provisioning scripts; no token required
	r.POST("/users/create", usuariosH.Crear)
	r.POST("/products/create", productosH.Crear)

	// Protected routes
	authMW := middleware.TokenAuth(authSvc)

	orders := r.Group("/orders", authMW)
	{
		orders.POST("/create", pedidosH.Crear)
		orders.GET("/get_all", pedidosH.Listar)
		orders.GET("/get_details", pedidosH.Detalle)
		orders.POST("/update_status", pedidosH.ActualizarEstado)
		orders.POST("/send_to_warehouse", pedidosH.EnviarABodega)
		orders.GET("/pdf", pedidosH.PDF)

		orders.GET("/reportes", reportesH.Listar)
		orders.POST("/reportes", reportesH.Crear)
		orders.PUT("/reportes", reportesH.MarcarLeida)
	}

	products := r.Group("/products", authMW)
	{
		products.GET("/get_all", productosH.Listar)
		products.GET("/stock_alert", productosH.AlertasStock)
		products.POST("/update", productosH.Actualizar)
	}

	users := r.Group("/users", authMW)
	{
		users.GET("/get_all", usuariosH.Listar)
		users.POST("/update", usuariosH.Actualizar)
	}

	admin := r.Group("/admin", authMW, middleware.RequireRole("admin"))
	{
		admin.GET("/notifications", notifH.Listar)
		admin.POST("/notifications", notifH.Crear)
		admin.PUT("/notifications", notifH.MarcarLeida)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

// StartWorkers launches the async pool that sends stock alert emails.
func StartWorkers(ctx context.Context, cfg *config.Config, rdb *redis.Client) {
	mailer := infra.NewMailer(cfg)
	handlers := &worker.WorkerHandlers{
		Alertas: worker.NewAlertaWorker(rdb, mailer, cfg.AdminAlertEmail),
	}
	worker.StartWorkerPool(ctx, rdb, handlers, cfg.WorkerPoolSize)
}
