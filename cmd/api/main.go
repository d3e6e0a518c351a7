package main

import (
	"log"
	"time"

	"tracksolutions/internal/core/cache"
	"tracksolutions/internal/core/config"
	"tracksolutions/internal/core/logger"
	"tracksolutions/internal/core/server"
	authadapter "tracksolutions/internal/features/auth/adapters"
	authdomain "tracksolutions/internal/features/auth/domain"
	authhandler "tracksolutions/internal/features/auth/handler"
	"tracksolutions/internal/features/auth/middleware"
	authservice "tracksolutions/internal/features/auth/service"
	companyhandler "tracksolutions/internal/features/companies/handler"
	companyservice "tracksolutions/internal/features/companies/service"
	dashboardhandler "tracksolutions/internal/features/dashboard/handler"
	dashboardservice "tracksolutions/internal/features/dashboard/service"
	deliveryhandler "tracksolutions/internal/features/deliveries/handler"
	deliveryservice "tracksolutions/internal/features/deliveries/service"
	driverhandler "tracksolutions/internal/features/drivers/handler"
	driverservice "tracksolutions/internal/features/drivers/service"
	importhandler "tracksolutions/internal/features/imports/handler"
	importservice "tracksolutions/internal/features/imports/service"
	navigationhandler "tracksolutions/internal/features/navigation/handler"
	routehandler "tracksolutions/internal/features/routeplans/handler"
	routeservice "tracksolutions/internal/features/routeplans/service"

	"go.uber.org/zap"
)

// @title Track Solutions API
// @version 1.0
// @description Logistics management API: deliveries, routes, drivers and transport companies.
// @contact.name API Support
// @contact.email suporte@tracksolutions.com.br
// @license.name MIT
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Session store backed by Redis
	sessionCache, err := cache.NewRedisAdapter(cfg.Session.RedisURL)
	if err != nil {
		l.Fatal("Failed to connect session store", zap.Error(err))
	}
	defer sessionCache.Close()

	// Auth: demo verifier + opaque tokens
	verifier := authadapter.NewDemoVerifier(time.Duration(cfg.Auth.LoginDelayMillis) * time.Millisecond)
	tokens := authadapter.NewRedisTokenStore(sessionCache, time.Duration(cfg.Session.TTLHours)*time.Hour)
	authSvc := authservice.NewAuthService(verifier, tokens)
	authHdl := authhandler.NewAuthHandler(authSvc)

	// Entity collections, seeded with the demo data
	deliveryStore := deliveryservice.NewSeededStore()
	routeStore := routeservice.NewSeededStore()
	driverStore := driverservice.NewSeededStore()
	companyStore := companyservice.NewSeededStore()

	deliverySvc := deliveryservice.NewDeliveryService(deliveryStore)
	deliveryHdl := deliveryhandler.NewDeliveryHandler(deliverySvc)

	routeSvc := routeservice.NewRouteService(routeStore)
	routeHdl := routehandler.NewRouteHandler(routeSvc)

	driverSvc := driverservice.NewDriverService(driverStore)
	driverHdl := driverhandler.NewDriverHandler(driverSvc)

	companySvc := companyservice.NewCompanyService(companyStore)
	companyHdl := companyhandler.NewCompanyHandler(companySvc)

	importSvc := importservice.NewImportService(deliverySvc)
	importHdl := importhandler.NewImportHandler(importSvc)

	statsSvc := dashboardservice.NewStatsService(deliveryStore, routeStore, driverStore, companyStore)
	statsHdl := dashboardhandler.NewStatsHandler(statsSvc)

	navigationHdl := navigationhandler.NewNavigationHandler()

	srv := server.New(cfg, sessionCache)
	app := srv.App

	// Public routes
	app.Post("/auth/login", authHdl.Login)
	app.Get("/imports/template", importHdl.Template)

	// Any authenticated role
	authed := app.Group("", middleware.RequireAuth(authSvc))
	authed.Get("/auth/me", authHdl.Me)
	authed.Post("/auth/logout", authHdl.Logout)
	authed.Get("/navigation", navigationHdl.List)
	authed.Get("/dashboard/stats", statsHdl.Stats)

	authed.Get("/deliveries", deliveryHdl.List)
	authed.Get("/deliveries/export", deliveryHdl.Export)
	authed.Post("/deliveries", deliveryHdl.Create)
	authed.Put("/deliveries/:id", deliveryHdl.Update)
	authed.Delete("/deliveries/:id", deliveryHdl.Delete)
	authed.Post("/imports", importHdl.Import)

	authed.Get("/routes", routeHdl.List)
	authed.Post("/routes", routeHdl.Create)
	authed.Put("/routes/:id", routeHdl.Update)
	authed.Delete("/routes/:id", routeHdl.Delete)

	// Drivers are managed by admins and transport companies
	drivers := authed.Group("/drivers", middleware.RequireRole(authdomain.RoleAdmin, authdomain.RoleTransportCompany))
	drivers.Get("/", driverHdl.List)
	drivers.Post("/", driverHdl.Create)
	drivers.Put("/:id", driverHdl.Update)
	drivers.Delete("/:id", driverHdl.Delete)

	// Transport companies are admin-only
	companies := authed.Group("/companies", middleware.RequireRole(authdomain.RoleAdmin))
	companies.Get("/", companyHdl.List)
	companies.Post("/", companyHdl.Create)
	companies.Put("/:id", companyHdl.Update)
	companies.Delete("/:id", companyHdl.Delete)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
