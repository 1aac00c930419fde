package router

import (
	"time"

	"github.com/juampy12/super-juampy-sub000/internal/config"
	"github.com/juampy12/super-juampy-sub000/internal/handler"
	"github.com/juampy12/super-juampy-sub000/internal/middleware"
	"github.com/juampy12/super-juampy-sub000/internal/repository"
	"github.com/juampy12/super-juampy-sub000/internal/service"
	"github.com/juampy12/super-juampy-sub000/internal/worker"

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

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	stockRepo := repository.NewStockRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	closureRepo := repository.NewClosureRepository(db)
	offerRepo := repository.NewOfferRepository(db)

	// Worker dispatcher, injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(employeeRepo, cfg)
	catalogSvc := service.NewCatalogService(productRepo)
	inventorySvc := service.NewInventoryService(stockRepo, productRepo)
	saleSvc := service.NewSaleService(saleRepo, dispatcher)
	closureSvc := service.NewClosureService(saleRepo, closureRepo, rdb)
	offerSvc := service.NewOfferService(offerRepo, productRepo)
	priceSvc := service.NewPriceService(productRepo, offerSvc, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(catalogSvc, inventorySvc)
	salesH := handler.NewSalesHandler(saleSvc)
	closureH := handler.NewClosureHandler(closureSvc)
	offersH := handler.NewOffersHandler(offerSvc)
	storesH := handler.NewStoresHandler(storeRepo)
	alertsH := handler.NewAlertsHandler(catalogSvc, rdb)
	priceH := handler.NewPriceHandler(priceSvc)
	healthH := handler.NewHealthHandler(db, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", healthH.Check)
	r.GET("/v1/stores", storesH.List)

	auth := r.Group("/v1/auth")
	{
		auth.POST("/pin", middleware.LoginRateLimiter(), authH.PinLogin)
	}

	// Price checker kiosks scan without a session
	r.GET("/v1/price/:barcode", priceH.Lookup)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: cajero, encargado, admin. Declared per-endpoint.
		v1.POST("/sales", middleware.RequireRole("cajero", "encargado", "admin"), salesH.Confirm)
		v1.GET("/sales", middleware.RequireRole("cajero", "encargado", "admin"), salesH.List)

		v1.GET("/cash-closure", middleware.RequireRole("cajero", "encargado", "admin"), closureH.Daily)
		v1.POST("/cash-closure", middleware.RequireRole("encargado", "admin"), closureH.Save)

		v1.GET("/products", middleware.RequireRole("cajero", "encargado", "admin"), productsH.List)
		v1.GET("/products/low-stock", middleware.RequireRole("encargado", "admin"), productsH.LowStock)
		v1.GET("/alerts/stock", middleware.RequireRole("encargado", "admin"), alertsH.StockAlerts)
		v1.GET("/products/:id", middleware.RequireRole("cajero", "encargado", "admin"), productsH.GetByID)
		v1.PATCH("/products/:id/stock", middleware.RequireRole("encargado", "admin"), productsH.AdjustStock)
		// Write operations, admin only
		prods := v1.Group("/products", middleware.RequireRole("admin"))
		{
			prods.POST("", productsH.Create)
			prods.PUT("/:id", productsH.Update)
			prods.DELETE("/:id", productsH.Deactivate)
			prods.PATCH("/:id/reactivate", productsH.Reactivate)
		}

		v1.GET("/offers", middleware.RequireRole("cajero", "encargado", "admin"), offersH.List)
		offers := v1.Group("/offers", middleware.RequireRole("encargado", "admin"))
		{
			offers.POST("", offersH.Create)
			offers.DELETE("/:id", offersH.Deactivate)
		}
	}

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
