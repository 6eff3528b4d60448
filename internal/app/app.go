package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"castpro_backend/internal/auth"
	"castpro_backend/internal/config"
	"castpro_backend/internal/email"
	"castpro_backend/internal/handlers"
	"castpro_backend/internal/logger"
	"castpro_backend/internal/middleware"
	"castpro_backend/internal/models"
	"castpro_backend/internal/repositories"
	"castpro_backend/internal/routes"
	"castpro_backend/internal/services"
	"castpro_backend/internal/storage"
	"castpro_backend/internal/validator"
)

// Run boots the application and blocks until shutdown.
func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := openDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(db, cfg); err != nil {
		logger.Fatal("Failed to seed first admin", "error", err)
	}

	projectStore, applicationStore, err := buildStorage(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	router := SetupRouter(cfg, db, projectStore, applicationStore)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", "addr", addr, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
}

// SetupRouter builds the full router. Split out so handler tests can
// assemble the same routing without a listening server.
func SetupRouter(cfg *config.Config, db *gorm.DB, projectStore, applicationStore storage.Storage) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigin))

	// Local storage serves the public project bucket directly.
	if cfg.Storage.Type == "local" {
		r.Static("/files/"+cfg.Storage.ProjectBucket,
			fmt.Sprintf("%s/%s", cfg.Storage.BasePath, cfg.Storage.ProjectBucket))
	}

	notifier := buildNotifier(cfg)
	v := validator.New()
	base := handlers.NewBaseHandler(v)

	projectRepo := repositories.NewProjectRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	listingRepo := repositories.NewCareerListingRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	adminRepo := repositories.NewAdminUserRepository(db)

	sessionTTL := time.Duration(cfg.Auth.SessionTTLMinutes) * time.Minute
	authService := services.NewAuthService(adminRepo, cfg.Auth.JWTSecret, sessionTTL)
	contactService := services.NewContactService(contactRepo, notifier)
	projectService := services.NewProjectService(projectRepo, projectStore, notifier)
	careerService := services.NewCareerService(listingRepo)
	applicationService := services.NewApplicationService(appRepo, applicationStore, notifier)
	catalogService := services.NewServiceCatalogService(serviceRepo)
	dashboardService := services.NewDashboardService(projectRepo, contactRepo, serviceRepo, listingRepo, appRepo)

	secureCookies := cfg.Server.Env == "production"
	h := &handlers.AppHandlers{
		Auth:        handlers.NewAuthHandler(base, authService, int(sessionTTL.Seconds()), secureCookies),
		Contact:     handlers.NewContactHandler(base, contactService),
		Project:     handlers.NewProjectHandler(base, projectService),
		Career:      handlers.NewCareerHandler(base, careerService, applicationService),
		Application: handlers.NewApplicationHandler(base, applicationService),
		Service:     handlers.NewServiceHandler(base, catalogService),
		Dashboard:   handlers.NewDashboardHandler(base, dashboardService),
	}

	routes.Register(r, h, cfg.Auth.JWTSecret)
	return r
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func migrate(db *gorm.DB) error {
	// uuid_generate_v4 defaults need the extension in place first.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.Project{},
		&models.Contact{},
		&models.Service{},
		&models.CareerListing{},
		&models.Application{},
		&models.AdminUser{},
	)
}

// seedFirstAdmin creates the initial back-office account when the table
// is empty and credentials are configured.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Auth.FirstAdminUsername == "" || cfg.Auth.FirstAdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Auth.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.AdminUser{
		Username:     cfg.Auth.FirstAdminUsername,
		Email:        cfg.Auth.FirstAdminEmail,
		PasswordHash: hash,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("Seeded first admin account", "username", admin.Username)
	return nil
}

func buildStorage(cfg *config.Config) (storage.Storage, storage.Storage, error) {
	projectStore, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.ProjectBaseURL,
		Bucket:    cfg.Storage.ProjectBucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("project bucket: %w", err)
	}

	// The application bucket has no public base URL: its files are only
	// reachable through signed URLs.
	applicationStore, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		Bucket:    cfg.Storage.ApplicationBucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("application bucket: %w", err)
	}

	return projectStore, applicationStore, nil
}

func buildNotifier(cfg *config.Config) email.Notifier {
	if cfg.Email.SMTPHost == "" || cfg.Email.NotifyEmail == "" {
		logger.Info("SMTP not configured, notifications disabled")
		return email.NoopNotifier{}
	}
	return email.NewSMTPNotifier(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUsername,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
		cfg.Email.NotifyEmail,
	)
}
