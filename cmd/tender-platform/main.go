package main

import (
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/25f1002229/b2b-tender-platform/internal/auth"
	"github.com/25f1002229/b2b-tender-platform/internal/cache"
	"github.com/25f1002229/b2b-tender-platform/internal/config"
	"github.com/25f1002229/b2b-tender-platform/internal/db"
	"github.com/25f1002229/b2b-tender-platform/internal/excel"
	httphandler "github.com/25f1002229/b2b-tender-platform/internal/http"
	"github.com/25f1002229/b2b-tender-platform/internal/http/middleware"
	"github.com/25f1002229/b2b-tender-platform/internal/logger"
	"github.com/25f1002229/b2b-tender-platform/internal/pdf"
	"github.com/25f1002229/b2b-tender-platform/internal/repository"
	"github.com/25f1002229/b2b-tender-platform/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	userRepo := repository.NewUserRepository(database)
	companyRepo := repository.NewCompanyRepository(database)
	tenderRepo := repository.NewTenderRepository(database)
	applicationRepo := repository.NewApplicationRepository(database)

	tokenManager := auth.NewTokenManager(cfg.Auth.AccessSecret, cfg.Auth.AccessTTL)
	passwordHasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	var searchCache service.SearchCache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		searchCache = cache.NewSearchCache(client, cfg.Redis.SearchCacheTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("company search cache enabled")
	}

	authService := service.NewAuthService(userRepo, tokenManager, passwordHasher)
	tenderService := service.NewTenderService(tenderRepo)
	applicationService := service.NewApplicationService(
		applicationRepo, tenderRepo, companyRepo,
		excel.NewGenerator(), pdf.NewGenerator(),
	)
	companyService := service.NewCompanyService(companyRepo, searchCache, cfg.Search.ResultLimit)

	handler := httphandler.NewHandler(authService, tenderService, applicationService, companyService, log)
	authMiddleware := middleware.Auth(tokenManager)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting tender platform api")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
