package contract

import (
	"context"

	"github.com/draftforge/contract-backend/internal/entity"
)

type LLMConnector interface {
	StreamCompletion(ctx context.Context, req *entity.LLMCompletionRequest, onDelta func(delta string) error) error
	Model() string
	Health(ctx context.Context) error
}
