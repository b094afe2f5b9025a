package contract

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/draftforge/contract-backend/internal/entity"
	"github.com/draftforge/contract-backend/internal/pkg/validator"
	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeContractRepo struct {
	mu        sync.Mutex
	contracts map[string]*entity.Contract
	pingErr   error
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{contracts: make(map[string]*entity.Contract)}
}

func (f *fakeContractRepo) CreateContract(ctx context.Context, contract *entity.Contract) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	contract.CreatedAt = time.Now()
	contract.UpdatedAt = contract.CreatedAt
	f.contracts[contract.ID] = contract
	return nil
}

func (f *fakeContractRepo) GetContractByID(ctx context.Context, id string) (*entity.Contract, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.contracts[id]
	if !ok {
		return nil, entity.ErrContractNotFound
	}
	return c, nil
}

func (f *fakeContractRepo) ListContracts(ctx context.Context, limit, offset int, contractType *entity.ContractType) ([]*entity.Contract, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Contract
	for _, c := range f.contracts {
		if contractType != nil && c.ContractType != *contractType {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeContractRepo) CountContracts(ctx context.Context, contractType *entity.ContractType) (int64, error) {
	contracts, _ := f.ListContracts(ctx, 0, 0, contractType)
	return int64(len(contracts)), nil
}

func (f *fakeContractRepo) DeleteContract(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.contracts[id]; !ok {
		return entity.ErrContractNotFound
	}
	delete(f.contracts, id)
	return nil
}

func (f *fakeContractRepo) ContractStats(ctx context.Context) (*entity.ContractStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stats := &entity.ContractStats{ContractsByType: make(map[string]int64)}
	for _, c := range f.contracts {
		stats.TotalContracts++
		stats.ContractsByType[string(c.ContractType)]++
	}
	return stats, nil
}

func (f *fakeContractRepo) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeContractRepo) stored() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.contracts)
}

type stubLLMConnector struct {
	chunks    []string
	streamErr error
	healthErr error
}

func (s *stubLLMConnector) StreamCompletion(ctx context.Context, req *entity.LLMCompletionRequest, onDelta func(string) error) error {
	for _, chunk := range s.chunks {
		if err := onDelta(chunk); err != nil {
			return err
		}
	}
	return s.streamErr
}

func (s *stubLLMConnector) Model() string { return "stub/test-model" }

func (s *stubLLMConnector) Health(ctx context.Context) error { return s.healthErr }

func newTestUsecase(repo *fakeContractRepo, conn LLMConnector) *ContractUsecase {
	return NewUsecase(
		repo,
		validator.NewValidator(),
		conn,
		gocache.New(time.Minute, time.Minute),
		zap.NewNop(),
	)
}

func validGenerateRequest() *entity.GenerateContractRequest {
	return &entity.GenerateContractRequest{
		BusinessContext: entity.BusinessContext{
			Description: "A video conferencing platform for remote teams",
			Industry:    "SaaS",
		},
		ContractType: entity.ContractTypeTermsOfService,
	}
}

func TestGenerateContractStreamsAndPersists(t *testing.T) {
	repo := newFakeContractRepo()
	conn := &stubLLMConnector{chunks: []string{
		"<h2>1. Introduction</h2>",
		"<p>These terms govern use.</p>",
		"<h2>2. Liability</h2><p>Limited.</p>",
	}}
	uc := newTestUsecase(repo, conn)

	var fragments []string
	contractID, err := uc.GenerateContract(context.Background(), validGenerateRequest(), func(fragment string) error {
		fragments = append(fragments, fragment)
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, contractID)

	// Every upstream chunk was forwarded in order before completion
	assert.Equal(t, conn.chunks, fragments)

	require.Equal(t, 1, repo.stored())
	stored, err := repo.GetContractByID(context.Background(), contractID)
	require.NoError(t, err)

	assert.Equal(t, entity.ContractTypeTermsOfService, stored.ContractType)
	assert.Equal(t, "en", stored.Language)
	assert.Equal(t, 2, stored.TotalSections)
	assert.Equal(t, "stub/test-model", stored.ModelUsed)
	assert.Greater(t, stored.TotalTokens, 0)
	assert.GreaterOrEqual(t, stored.EstimatedPages, 1)
	assert.Contains(t, stored.HTMLContent, "<!DOCTYPE html>")
	assert.Contains(t, stored.RawContent, "<h2>1. Introduction</h2>")
}

func TestGenerateContractValidationError(t *testing.T) {
	repo := newFakeContractRepo()
	uc := newTestUsecase(repo, &stubLLMConnector{})

	req := validGenerateRequest()
	req.BusinessContext.Description = "short"

	_, err := uc.GenerateContract(context.Background(), req, func(string) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidParameter)
	assert.Equal(t, 0, repo.stored())
}

func TestGenerateContractStreamFailureSavesNothing(t *testing.T) {
	repo := newFakeContractRepo()
	conn := &stubLLMConnector{
		chunks:    []string{"<h2>1. Introduction</h2>"},
		streamErr: errors.New("provider unavailable"),
	}
	uc := newTestUsecase(repo, conn)

	_, err := uc.GenerateContract(context.Background(), validGenerateRequest(), func(string) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrGenerationFailed)
	assert.Equal(t, 0, repo.stored())
}

func TestGenerateContractEmptyCompletion(t *testing.T) {
	repo := newFakeContractRepo()
	uc := newTestUsecase(repo, &stubLLMConnector{chunks: []string{"  \n "}})

	_, err := uc.GenerateContract(context.Background(), validGenerateRequest(), func(string) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrEmptyCompletion)
	assert.Equal(t, 0, repo.stored())
}

func TestGenerateContractClientGoneSavesNothing(t *testing.T) {
	repo := newFakeContractRepo()
	conn := &stubLLMConnector{chunks: []string{"<h2>1. Introduction</h2>", "<p>Body.</p>"}}
	uc := newTestUsecase(repo, conn)

	clientGone := errors.New("client disconnected")
	_, err := uc.GenerateContract(context.Background(), validGenerateRequest(), func(string) error {
		return clientGone
	})
	require.Error(t, err)
	assert.Equal(t, 0, repo.stored())
}

func TestGetContractCachesResult(t *testing.T) {
	repo := newFakeContractRepo()
	uc := newTestUsecase(repo, &stubLLMConnector{})

	contract := &entity.Contract{
		ID:           "11111111-2222-3333-4444-555555555555",
		ContractType: entity.ContractTypePrivacyPolicy,
		Language:     "en",
	}
	require.NoError(t, repo.CreateContract(context.Background(), contract))

	got, err := uc.GetContract(context.Background(), &entity.RetrieveContractRequest{ContractID: contract.ID})
	require.NoError(t, err)
	assert.Equal(t, contract.ID, got.ID)

	// Remove from the repo; the cached copy still serves reads
	require.NoError(t, repo.DeleteContract(context.Background(), contract.ID))

	got, err = uc.GetContract(context.Background(), &entity.RetrieveContractRequest{ContractID: contract.ID})
	require.NoError(t, err)
	assert.Equal(t, contract.ID, got.ID)
}

func TestGetContractNotFound(t *testing.T) {
	uc := newTestUsecase(newFakeContractRepo(), &stubLLMConnector{})

	_, err := uc.GetContract(context.Background(), &entity.RetrieveContractRequest{ContractID: "missing"})
	assert.ErrorIs(t, err, entity.ErrContractNotFound)
}

func TestDeleteContractEvictsCache(t *testing.T) {
	repo := newFakeContractRepo()
	uc := newTestUsecase(repo, &stubLLMConnector{})

	contract := &entity.Contract{ID: "aaaa", ContractType: entity.ContractTypeTermsOfService}
	require.NoError(t, repo.CreateContract(context.Background(), contract))

	_, err := uc.GetContract(context.Background(), &entity.RetrieveContractRequest{ContractID: "aaaa"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteContract(context.Background(), "aaaa"))

	_, err = uc.GetContract(context.Background(), &entity.RetrieveContractRequest{ContractID: "aaaa"})
	assert.ErrorIs(t, err, entity.ErrContractNotFound)
}

func TestDeleteContractNotFound(t *testing.T) {
	uc := newTestUsecase(newFakeContractRepo(), &stubLLMConnector{})

	err := uc.DeleteContract(context.Background(), "missing")
	assert.ErrorIs(t, err, entity.ErrContractNotFound)
}

func TestHealthReportsDependencies(t *testing.T) {
	repo := newFakeContractRepo()
	conn := &stubLLMConnector{healthErr: errors.New("provider down")}
	uc := newTestUsecase(repo, conn)

	services := uc.Health(context.Background())
	assert.Equal(t, "healthy", services["api"])
	assert.Equal(t, "healthy", services["database"])
	assert.Equal(t, "unhealthy", services["ai_services"])
}

func TestContractTypes(t *testing.T) {
	uc := newTestUsecase(newFakeContractRepo(), &stubLLMConnector{})
	types := uc.ContractTypes()
	assert.Contains(t, types, entity.ContractTypeTermsOfService)
	assert.Contains(t, types, entity.ContractTypePrivacyPolicy)
}
