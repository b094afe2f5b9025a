package contract

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/draftforge/contract-backend/internal/entity"
	"github.com/draftforge/contract-backend/internal/pkg/metrics"
	"github.com/draftforge/contract-backend/internal/pkg/tokens"
	"github.com/draftforge/contract-backend/internal/pkg/validator"
	"github.com/draftforge/contract-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// ContractUsecase implements contract generation and retrieval business logic
type ContractUsecase struct {
	contractRepo repository.ContractRepository
	validator    *validator.Validator
	llmConnector LLMConnector
	cache        *gocache.Cache
	logger       *zap.Logger
}

// NewUsecase creates a new contract use case
func NewUsecase(
	contractRepo repository.ContractRepository,
	validator *validator.Validator,
	llmConnector LLMConnector,
	cache *gocache.Cache,
	logger *zap.Logger,
) *ContractUsecase {
	return &ContractUsecase{
		contractRepo: contractRepo,
		validator:    validator,
		llmConnector: llmConnector,
		cache:        cache,
		logger:       logger,
	}
}

// GenerateContract streams a contract from the AI provider, forwarding each
// fragment to onFragment as it arrives. When the stream completes, the
// accumulated document is parsed, rendered and persisted, and the new
// contract ID is returned. Nothing is persisted if the stream fails or the
// client goes away mid-stream.
func (uc *ContractUsecase) GenerateContract(
	ctx context.Context,
	req *entity.GenerateContractRequest,
	onFragment func(fragment string) error,
) (string, error) {
	if err := uc.validator.ValidateGenerateContract(req); err != nil {
		return "", err
	}

	ctxzap.Info(ctx, "starting contract generation",
		zap.String("contract_type", string(req.ContractType)),
		zap.String("language", req.Language),
	)

	metrics.GenerationsActive.Inc()
	defer metrics.GenerationsActive.Dec()

	start := time.Now()
	systemPrompt, userPrompt := BuildPrompts(req)

	var doc strings.Builder
	err := uc.llmConnector.StreamCompletion(ctx,
		&entity.LLMCompletionRequest{
			SystemPrompt: systemPrompt,
			UserPrompt:   userPrompt,
		},
		func(delta string) error {
			doc.WriteString(delta)
			return onFragment(delta)
		},
	)
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(string(req.ContractType), "error").Inc()
		return "", fmt.Errorf("%w: %v", entity.ErrGenerationFailed, err)
	}

	rawContent := doc.String()
	if strings.TrimSpace(rawContent) == "" {
		metrics.GenerationsTotal.WithLabelValues(string(req.ContractType), "empty").Inc()
		return "", entity.ErrEmptyCompletion
	}

	sections := ParseSections(rawContent)
	generationTime := time.Since(start)

	contract := &entity.Contract{
		ID:              uuid.New().String(),
		ContractType:    req.ContractType,
		BusinessContext: req.BusinessContext,
		Language:        req.Language,
		Jurisdiction:    req.Jurisdiction,
		Sections:        sections,
		TotalSections:   len(sections),
		EstimatedPages:  EstimatePages(sections),
		TotalTokens:     tokens.Count(rawContent),
		GenerationTime:  generationTime.Seconds(),
		ModelUsed:       uc.llmConnector.Model(),
		HTMLContent:     RenderHTML(req.ContractType, req.Language, rawContent, start),
		RawContent:      rawContent,
	}

	// The client may drop the connection between the last fragment and the
	// sentinel; the finished document is still worth keeping, so persistence
	// does not inherit the request's cancellation.
	persistCtx := context.WithoutCancel(ctx)
	if err := uc.contractRepo.CreateContract(persistCtx, contract); err != nil {
		metrics.GenerationsTotal.WithLabelValues(string(req.ContractType), "error").Inc()
		return "", fmt.Errorf("save contract: %w", err)
	}

	uc.cache.Set(contract.ID, contract, gocache.DefaultExpiration)

	metrics.GenerationsTotal.WithLabelValues(string(req.ContractType), "success").Inc()
	metrics.GenerationDuration.WithLabelValues(string(req.ContractType)).Observe(generationTime.Seconds())

	ctxzap.Info(ctx, "contract generated",
		zap.String("contract_id", contract.ID),
		zap.Int("total_sections", contract.TotalSections),
		zap.Int("total_tokens", contract.TotalTokens),
		zap.Duration("generation_time", generationTime),
	)

	return contract.ID, nil
}

// GetContract returns the full contract with sections, read-through cached
func (uc *ContractUsecase) GetContract(ctx context.Context, req *entity.RetrieveContractRequest) (*entity.Contract, error) {
	if err := uc.validator.ValidateRetrieveContract(req); err != nil {
		return nil, err
	}

	if cached, ok := uc.cache.Get(req.ContractID); ok {
		ctxzap.Debug(ctx, "contract cache hit", zap.String("contract_id", req.ContractID))
		return cached.(*entity.Contract), nil
	}

	contract, err := uc.contractRepo.GetContractByID(ctx, req.ContractID)
	if err != nil {
		return nil, fmt.Errorf("get contract: %w", err)
	}

	uc.cache.Set(contract.ID, contract, gocache.DefaultExpiration)

	return contract, nil
}

// DownloadContract returns the contract for rendering into a download format
func (uc *ContractUsecase) DownloadContract(ctx context.Context, req *entity.DownloadContractRequest) (*entity.Contract, error) {
	if err := uc.validator.ValidateDownloadContract(req); err != nil {
		return nil, err
	}

	return uc.GetContract(ctx, &entity.RetrieveContractRequest{ContractID: req.ContractID})
}

// ListContracts returns a page of contract summaries newest first, plus the
// exact total matching the filter.
func (uc *ContractUsecase) ListContracts(
	ctx context.Context,
	limit, offset int,
	contractType *entity.ContractType,
) ([]*entity.Contract, int64, error) {
	contracts, err := uc.contractRepo.ListContracts(ctx, limit, offset, contractType)
	if err != nil {
		return nil, 0, fmt.Errorf("list contracts: %w", err)
	}

	total, err := uc.contractRepo.CountContracts(ctx, contractType)
	if err != nil {
		return nil, 0, fmt.Errorf("count contracts: %w", err)
	}

	return contracts, total, nil
}

// DeleteContract permanently removes a contract and its sections
func (uc *ContractUsecase) DeleteContract(ctx context.Context, contractID string) error {
	if err := uc.contractRepo.DeleteContract(ctx, contractID); err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}

	uc.cache.Delete(contractID)

	ctxzap.Info(ctx, "contract deleted", zap.String("contract_id", contractID))

	return nil
}

// ContractTypes returns the contract types the generator can draft
func (uc *ContractUsecase) ContractTypes() []entity.ContractType {
	return entity.AllContractTypes()
}

// ContractStats returns aggregate statistics over stored contracts
func (uc *ContractUsecase) ContractStats(ctx context.Context) (*entity.ContractStats, error) {
	stats, err := uc.contractRepo.ContractStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("contract stats: %w", err)
	}
	return stats, nil
}

// Health reports per-dependency health status
func (uc *ContractUsecase) Health(ctx context.Context) map[string]string {
	services := map[string]string{
		"api":         "healthy",
		"database":    "healthy",
		"ai_services": "healthy",
	}

	if err := uc.contractRepo.Ping(ctx); err != nil {
		ctxzap.Warn(ctx, "database health check failed", zap.Error(err))
		services["database"] = "unhealthy"
	}

	if err := uc.llmConnector.Health(ctx); err != nil {
		ctxzap.Warn(ctx, "AI provider health check failed", zap.Error(err))
		services["ai_services"] = "unhealthy"
	}

	return services
}
