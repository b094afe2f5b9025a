package contract

import (
	"context"

	"github.com/draftforge/contract-backend/internal/entity"
)

type ContractUsecase interface {
	GenerateContract(ctx context.Context, req *entity.GenerateContractRequest, onFragment func(fragment string) error) (string, error)
	GetContract(ctx context.Context, req *entity.RetrieveContractRequest) (*entity.Contract, error)
	DownloadContract(ctx context.Context, req *entity.DownloadContractRequest) (*entity.Contract, error)
	ListContracts(ctx context.Context, limit, offset int, contractType *entity.ContractType) ([]*entity.Contract, int64, error)
	DeleteContract(ctx context.Context, contractID string) error
	ContractTypes() []entity.ContractType
	ContractStats(ctx context.Context) (*entity.ContractStats, error)
	Health(ctx context.Context) map[string]string
}
