package main

import (
	"context"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	_ "perpus/docs" // swagger docs

	"perpus/internal/auth"
	"perpus/internal/cache"
	"perpus/internal/config"
	"perpus/internal/db"
	"perpus/internal/handler"
	"perpus/internal/logger"
	"perpus/internal/mail"
	"perpus/internal/model"
	"perpus/internal/repository"
	"perpus/internal/router"
	"perpus/internal/service"
)

// @title Perpustakaan API
// @version 1.0
// @description Library management API with OTP-verified registration, catalog CRUD, and a transactional borrowing workflow.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("load config")
	}
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Warn().Msg("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.Borrowing{},
			&model.Otp{},
			&model.Profile{},
			&model.Book{},
			&model.Category{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Warn().Err(err).Msg("drop table (may not exist)")
			}
		}
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Otp{},
		&model.Category{},
		&model.Book{},
		&model.Borrowing{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cacheClient.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, token revocation degraded")
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	otpRepo := repository.NewOtpRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	bookRepo := repository.NewBookRepository(gormDB)
	borrowingRepo := repository.NewBorrowingRepository(gormDB)
	txRunner := repository.NewTxRunner(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	mailer := mail.NewSMTPMailer(cfg.SMTP)

	// Services
	authService := service.NewAuthService(userRepo, otpRepo, profileRepo, jwtService, tokenStore, mailer)
	categoryService := service.NewCategoryService(categoryRepo)
	bookService := service.NewBookService(bookRepo, categoryRepo, cacheClient)
	borrowingService := service.NewBorrowingService(userRepo, bookRepo, borrowingRepo, txRunner, cacheClient)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	bookHandler := handler.NewBookHandler(bookService)
	borrowingHandler := handler.NewBorrowingHandler(borrowingService)

	e := echo.New()
	router.Register(
		e,
		cfg,
		tokenStore,
		authHandler,
		categoryHandler,
		bookHandler,
		borrowingHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
