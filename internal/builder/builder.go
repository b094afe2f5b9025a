package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/draftforge/contract-backend/internal/api"
	contractapi "github.com/draftforge/contract-backend/internal/api/contract"
	"github.com/draftforge/contract-backend/internal/api/middleware"
	"github.com/draftforge/contract-backend/internal/config"
	"github.com/draftforge/contract-backend/internal/integration/llm"
	"github.com/draftforge/contract-backend/internal/pkg/formatter"
	"github.com/draftforge/contract-backend/internal/pkg/validator"
	"github.com/draftforge/contract-backend/internal/repository"
	"github.com/draftforge/contract-backend/internal/usecase/contract"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	contractRepo := repository.NewContractPostgres(db)
	logger.Info("Repositories initialized")

	// Initialize AI provider connector (with mock support)
	var llmConnector contract.LLMConnector
	if cfg.EnableMocks {
		logger.Info("Using mock connector for AI provider")
		llmConnector = llm.NewMockConnector(logger)
	} else {
		logger.Info("Using real connector for AI provider",
			zap.String("base_url", cfg.LLMConnectorCfg.BaseURL),
			zap.String("model", cfg.LLMConnectorCfg.Model),
		)
		llmConnector = llm.NewConnector(cfg.LLMConnectorCfg, logger)
	}

	// Initialize validators
	contractValidator := validator.NewValidator()
	logger.Info("Validators initialized")

	// Retrieval cache for recently generated and fetched contracts
	contractCache := gocache.New(cfg.CacheTTL, cfg.CacheCleanupInterval)

	// Initialize use cases
	contractUC := contract.NewUsecase(
		contractRepo,
		contractValidator,
		llmConnector,
		contractCache,
		logger,
	)
	logger.Info("Use cases initialized")

	// Setup API handlers
	contractHandler := contractapi.NewHandler(contractUC, formatter.NewFactory())
	logger.Info("API handlers initialized")

	// Rate limiter for the generation endpoint
	generateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)

	// Setup router
	router := api.SetupRouter(contractHandler, generateLimiter, cfg.CORSAllowedOrigins, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server. WriteTimeout must outlast the longest generation
	// stream, so it tracks the provider request timeout rather than the
	// usual seconds-scale value.
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.LLMConnectorCfg.RequestTimeout + time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}
