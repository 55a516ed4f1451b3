package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/gin-gonic/gin"

	"serviceflow/internal/config"
	"serviceflow/internal/database"
	"serviceflow/internal/middleware"
	"serviceflow/internal/modules/admin"
	"serviceflow/internal/modules/auth"
	"serviceflow/internal/modules/catalog"
	"serviceflow/internal/modules/clients"
	"serviceflow/internal/modules/company"
	"serviceflow/internal/modules/health"
	"serviceflow/internal/modules/orders"
	jwtsvc "serviceflow/internal/pkg/jwt"
	"serviceflow/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	clientRepo := repository.NewClientRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	adminService := admin.NewService(userRepo)
	adminHandler := admin.NewHandler(adminService)

	companyService := company.NewService(companyRepo)
	companyHandler := company.NewHandler(companyService)

	clientService := clients.NewService(clientRepo, userRepo)
	clientHandler := clients.NewHandler(clientService)

	catalogService := catalog.NewService(productRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	orderService := orders.NewService(orderRepo)
	orderHandler := orders.NewHandler(orderService)

	healthHandler := health.NewHandler(db)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(api)
		healthHandler.RegisterRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			companyHandler.RegisterRoutes(protected)
			clientHandler.RegisterRoutes(protected)
			catalogHandler.RegisterRoutes(protected)
			orderHandler.RegisterRoutes(protected)

			adminOnly := protected.Group("/")
			adminOnly.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminOnly)
				catalogHandler.RegisterAdminRoutes(adminOnly)
			}
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.WithField("addr", addr).Info("serviceflow API listening")
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
