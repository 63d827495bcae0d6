package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"enrols.backend/internal/config"
	"enrols.backend/internal/infrastructure/jobs"
	"enrols.backend/internal/infrastructure/notifications"
	"enrols.backend/internal/infrastructure/repositories"
	"enrols.backend/internal/interfaces/http/handlers"
	"enrols.backend/internal/interfaces/http/middleware"
	"enrols.backend/internal/usecases"
	"enrols.backend/pkg/jwt"
	"enrols.backend/pkg/logger"
	"enrols.backend/pkg/redis"
	"enrols.backend/pkg/token"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("connected to PostgreSQL")
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	codec, err := token.NewCodec(cfg.Security.TokenSigningSecret, cfg.Security.TokenEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize token codec: %w", err)
	}

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Repositories
	accountRepo := repositories.NewAccountRepository(db)
	studentRepo := repositories.NewStudentRepository(db)
	instituteRepo := repositories.NewInstituteRepository(db)
	otpRepo := repositories.NewOtpRepository(db)
	courseRepo := repositories.NewCourseRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	preferenceRepo := repositories.NewPreferenceRepository(db)

	// Notifiers
	mailer := notifications.NewEmailNotifier(cfg.SMTP, cfg.Frontend)
	sms := notifications.NewSmsNotifier(cfg.SMS)

	// Usecases
	resolver := usecases.NewIdentityResolver(studentRepo, instituteRepo)
	verificationUsecase := usecases.NewVerificationUsecase(
		accountRepo,
		studentRepo,
		otpRepo,
		codec,
		mailer,
		sms,
		cfg.Phone.DefaultCallingCode,
	)
	authUsecase := usecases.NewAuthUsecase(
		accountRepo,
		studentRepo,
		resolver,
		jwtService,
		sessionStore,
		mailer,
		verificationUsecase,
		cfg.Phone.DefaultCallingCode,
		cfg.JWT.RefreshExpiry,
	)
	// OTP login needs the auth usecase to mint sessions; the auth
	// usecase needs verification to challenge phones. Close the loop.
	verificationUsecase.BindSessionIssuer(authUsecase)

	courseUsecase := usecases.NewCourseUsecase(courseRepo)
	applicationUsecase := usecases.NewApplicationUsecase(applicationRepo, courseRepo, cfg.Phone.DefaultCallingCode)
	preferenceUsecase := usecases.NewPreferenceUsecase(preferenceRepo, studentRepo, courseRepo)
	instituteUsecase := usecases.NewInstituteUsecase(instituteRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	verificationHandler := handlers.NewVerificationHandler(verificationUsecase)
	courseHandler := handlers.NewCourseHandler(courseUsecase)
	applicationHandler := handlers.NewApplicationHandler(applicationUsecase)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceUsecase)
	instituteHandler := handlers.NewInstituteHandler(instituteUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService, authUsecase)

	// Background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reaperJob := jobs.NewOtpReaperJob(otpRepo)
	go reaperJob.Start(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		verificationHandler: verificationHandler,
		courseHandler:       courseHandler,
		applicationHandler:  applicationHandler,
		preferenceHandler:   preferenceHandler,
		instituteHandler:    instituteHandler,
		authMiddleware:      authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		reaperJob.Stop()
		cancel()
	}()

	log.Printf("Enrols backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
