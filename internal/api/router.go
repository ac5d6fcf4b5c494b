package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/wishshop/wish-backend/docs"
	"github.com/wishshop/wish-backend/internal/api/handler"
	"github.com/wishshop/wish-backend/internal/api/middleware"
	"github.com/wishshop/wish-backend/internal/core/service"
	mongodb "github.com/wishshop/wish-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/wishshop/wish-backend/internal/infrastructure/db/redis"
	"github.com/wishshop/wish-backend/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The activity recorder is built by the caller because its worker lifecycle
// outlives individual requests.
func NewRouter(db *mongo.Database, rdb *redis.Client, activity service.ActivityRecorder, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("wishshop"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	catalogCache := redisdb.NewCatalogCache(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, cfg.CartSize, log)
	cartService := service.NewCartService(userRepo, activity, log)
	catalogService := service.NewCatalogService(productRepo, catalogCache, log)

	authHandler := handler.NewAuthHandler(authService)
	cartHandler := handler.NewCartHandler(cartService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// --- Cart routes (token required) ---
	e.POST("/addtocart", cartHandler.AddToCart, authMiddleware)
	e.POST("/removefromcart", cartHandler.RemoveFromCart, authMiddleware)
	e.POST("/getcart", cartHandler.GetCart, authMiddleware)
	e.POST("/clearcart", cartHandler.ClearCart, authMiddleware)

	// --- Catalog routes ---
	e.POST("/addproduct", catalogHandler.AddProduct)
	e.POST("/removeproduct", catalogHandler.RemoveProduct)
	e.GET("/allproducts", catalogHandler.AllProducts)
	e.GET("/newcollection", catalogHandler.NewCollection)
	e.GET("/popularinwomen", catalogHandler.PopularInWomen)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/docs/*", echoSwagger.WrapHandler)

	return e
}
