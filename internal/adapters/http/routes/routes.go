package routes

import (
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/http/handlers"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/http/middleware"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/adapters/persistence/repositories"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/config"
	"github.com/Narongrit3125/Scismo-webapp-sub000/internal/core/services"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	staffRepo := repositories.NewStaffRepository(db)
	positionRepo := repositories.NewPositionRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	newsRepo := repositories.NewNewsRepository(db)
	contentRepo := repositories.NewContentRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	documentRepo := repositories.NewDocumentRepository(db)
	galleryRepo := repositories.NewGalleryRepository(db)
	donationRepo := repositories.NewDonationRepository(db)
	formRepo := repositories.NewFormRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	memberService := services.NewMemberService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userRepo)
	memberHandler := handlers.NewMemberHandler(memberRepo, memberService)
	staffHandler := handlers.NewStaffHandler(staffRepo)
	positionHandler := handlers.NewPositionHandler(positionRepo)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	projectHandler := handlers.NewProjectHandler(projectRepo, userRepo, cfg)
	activityHandler := handlers.NewActivityHandler(activityRepo, projectRepo, categoryRepo, userRepo, cfg)
	newsHandler := handlers.NewNewsHandler(newsRepo, categoryRepo, userRepo, cfg)
	contentHandler := handlers.NewContentHandler(contentRepo, userRepo, cfg)
	contactHandler := handlers.NewContactHandler(contactRepo)
	documentHandler := handlers.NewDocumentHandler(documentRepo)
	galleryHandler := handlers.NewGalleryHandler(galleryRepo, categoryRepo)
	donationHandler := handlers.NewDonationHandler(donationRepo)
	formHandler := handlers.NewFormHandler(formRepo)
	uploadHandler := handlers.NewUploadHandler(cfg)

	// Health, metrics and docs
	app.Get("/health", healthHandler.Check)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Uploaded files are served as-is
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	// Auth routes
	authRoutes := api.Group("/auth")
	authRoutes.Use(middleware.NoCacheHeaders())
	authRoutes.Use(middleware.AuthRateLimiter())
	setupAuthRoutes(authRoutes, authHandler, cfg)

	admin := []fiber.Handler{middleware.AuthMiddleware(cfg), middleware.AdminOnly()}

	// User management (Admin only)
	userRoutes := api.Group("/users", admin...)
	setupResourceRoutes(userRoutes, userHandler.List, userHandler.Create, userHandler.Update, userHandler.Delete)

	// Members (Admin only, enrollment included)
	memberRoutes := api.Group("/members", admin...)
	setupResourceRoutes(memberRoutes, memberHandler.List, memberHandler.Create, memberHandler.Update, memberHandler.Delete)

	// Staff directory (public reads)
	api.Get("/staff", staffHandler.List)
	api.Post("/staff", append(admin, staffHandler.Create)...)
	api.Put("/staff", append(admin, staffHandler.Update)...)
	api.Delete("/staff", append(admin, staffHandler.Delete)...)

	// Positions (public reads, cached as master data)
	api.Get("/positions", middleware.MasterDataCache(), positionHandler.List)
	api.Post("/positions", append(admin, positionHandler.Create)...)
	api.Put("/positions", append(admin, positionHandler.Update)...)
	api.Delete("/positions", append(admin, positionHandler.Delete)...)

	// Categories are seeded master data, read-only
	api.Get("/categories", middleware.MasterDataCache(), categoryHandler.List)

	// Projects
	api.Get("/projects", projectHandler.List)
	api.Post("/projects", append(admin, projectHandler.Create)...)
	api.Put("/projects", append(admin, projectHandler.Update)...)
	api.Delete("/projects", append(admin, projectHandler.Delete)...)

	// Activities
	api.Get("/activities", activityHandler.List)
	api.Post("/activities", append(admin, activityHandler.Create)...)
	api.Put("/activities", append(admin, activityHandler.Update)...)
	api.Delete("/activities", append(admin, activityHandler.Delete)...)

	// News
	api.Get("/news", newsHandler.List)
	api.Post("/news", append(admin, newsHandler.Create)...)
	api.Put("/news", append(admin, newsHandler.Update)...)
	api.Delete("/news", append(admin, newsHandler.Delete)...)

	// Content pages
	api.Get("/content", contentHandler.List)
	api.Post("/content", append(admin, contentHandler.Create)...)
	api.Put("/content", append(admin, contentHandler.Update)...)
	api.Delete("/content", append(admin, contentHandler.Delete)...)

	// Contact messages (public submission, admin triage)
	api.Get("/contacts", append(admin, contactHandler.List)...)
	api.Post("/contacts", middleware.OptionalAuth(cfg), contactHandler.Create)
	api.Put("/contacts", append(admin, contactHandler.Update)...)
	api.Delete("/contacts", append(admin, contactHandler.Delete)...)

	// Documents
	api.Get("/documents", documentHandler.List)
	api.Post("/documents", append(admin, documentHandler.Create)...)
	api.Put("/documents", append(admin, documentHandler.Update)...)
	api.Delete("/documents", append(admin, documentHandler.Delete)...)

	// Galleries
	api.Get("/gallery", galleryHandler.List)
	api.Post("/gallery", append(admin, galleryHandler.Create)...)
	api.Put("/gallery", append(admin, galleryHandler.Update)...)
	api.Delete("/gallery", append(admin, galleryHandler.Delete)...)

	// Donation campaigns (public donations)
	api.Get("/donations", donationHandler.List)
	api.Post("/donations", append(admin, donationHandler.Create)...)
	api.Put("/donations", append(admin, donationHandler.Update)...)
	api.Delete("/donations", append(admin, donationHandler.Delete)...)
	api.Post("/donations/donate", donationHandler.Donate)

	// Forms (public submission)
	api.Get("/forms", formHandler.List)
	api.Post("/forms", append(admin, formHandler.Create)...)
	api.Put("/forms", append(admin, formHandler.Update)...)
	api.Delete("/forms", append(admin, formHandler.Delete)...)
	api.Get("/forms/:id/submissions", append(admin, formHandler.Submissions)...)
	api.Post("/forms/:id/submissions", middleware.OptionalAuth(cfg), formHandler.Submit)

	// File uploads (Admin only)
	api.Post("/upload", append(admin, uploadHandler.Upload)...)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes
	router.Post("/register", handler.Register)
	router.Post("/login", handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupResourceRoutes wires the uniform list/create/update/delete surface
// shared by the fully protected resources
func setupResourceRoutes(router fiber.Router, list, create, update, del fiber.Handler) {
	router.Get("/", list)
	router.Post("/", create)
	router.Put("/", update)
	router.Delete("/", del)
}
