package main

import (
	_ "catalog-backend/api/swagger" // swagger docs
	"catalog-backend/internal/adapter"
	"catalog-backend/internal/auth"
	"catalog-backend/internal/config"
	"catalog-backend/internal/database"
	"catalog-backend/internal/handler"
	"catalog-backend/internal/logger"
	"catalog-backend/internal/middleware"
	"catalog-backend/internal/repository"
	"catalog-backend/internal/service"
	"catalog-backend/internal/websocket"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           Product Catalog API
// @version         1.0
// @description     CRUD API for products, categories, users and roles.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogJSON, cfg.LogFile)
	defer zlog.Sync()

	db, err := database.NewConnection(cfg.DSN())
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	zlog.Info("connected to PostgreSQL")

	if cfg.SeedInitialData {
		if err := database.SeedDefaultRoles(db); err != nil {
			zlog.Fatal("role seeding failed", zap.Error(err))
		}
	}

	wsHub := websocket.NewHub(zlog)
	go wsHub.Run()

	tokens := auth.NewTokenIssuer(cfg.JWTKey, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTExpiration)

	// Repository -> Adapter -> Service -> Handler
	roleRepo := repository.NewRoleRepository(db)
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	roleAdapter := adapter.NewRoleAdapter(roleRepo)
	userAdapter := adapter.NewUserAdapter(userRepo)
	productAdapter := adapter.NewProductAdapter(productRepo)
	categoryAdapter := adapter.NewCategoryAdapter(categoryRepo)

	roleService := service.NewRoleService(roleAdapter)
	userService := service.NewUserService(userAdapter)
	productService := service.NewProductService(productAdapter, wsHub)
	categoryService := service.NewCategoryService(categoryAdapter, wsHub)
	authService := service.NewAuthService(userAdapter, roleAdapter, tokens)

	roleHandler := handler.NewRoleHandler(roleService)
	userHandler := handler.NewUserHandler(userService, tokens)
	productHandler := handler.NewProductHandler(productService, tokens)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	authHandler := handler.NewAuthHandler(authService)

	router := gin.New()
	router.Use(ginzap.Ginzap(zlog, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(zlog, true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.ErrorFilter(zlog))
	router.Use(middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, tokens)
	})

	roleHandler.RegisterRoutes(router.Group(""))
	userHandler.RegisterRoutes(router.Group(""))
	productHandler.RegisterRoutes(router.Group(""))
	categoryHandler.RegisterRoutes(router.Group(""))
	authHandler.RegisterRoutes(router.Group(""))

	zlog.Info("server listening", zap.String("port", cfg.AppPort))
	if err := router.Run(":" + cfg.AppPort); err != nil {
		zlog.Fatal("server failed", zap.Error(err))
	}
}
