package llm

import (
	"context"

	"github.com/draftforge/contract-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector is a canned-response LLM connector for local development
// and tests. It streams a short but structurally complete document.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

var mockDocumentChunks = []string{
	"<h1>Terms of Service</h1>\n",
	"<h2>1. Introduction</h2>\n",
	"<p>These Terms of Service govern your use of our services. ",
	"By accessing the service you agree to be bound by these terms. (MOCK)</p>\n",
	"<h2>2. User Accounts</h2>\n",
	"<h3>2.1 Registration</h3>\n",
	"<p>You must provide accurate information when registering an account ",
	"and keep your credentials confidential.</p>\n",
	"<h3>2.2 Termination</h3>\n",
	"<p>We may suspend or terminate accounts that violate these terms.</p>\n",
	"<h2>3. Limitation of Liability</h2>\n",
	"<p>To the maximum extent permitted by law, the service is provided ",
	"\"as is\" without warranties of any kind.</p>\n",
	"<h2>4. Governing Law</h2>\n",
	"<p>These terms are governed by the laws of the applicable jurisdiction.</p>\n",
}

// StreamCompletion streams the canned document chunk by chunk
func (m *MockConnector) StreamCompletion(
	ctx context.Context,
	req *entity.LLMCompletionRequest,
	onDelta func(delta string) error,
) error {
	ctxzap.Info(ctx, "[MOCK] streaming completion", zap.Int("chunks", len(mockDocumentChunks)))

	for _, chunk := range mockDocumentChunks {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := onDelta(chunk); err != nil {
			return err
		}
	}

	ctxzap.Info(ctx, "[MOCK] completion stream finished")
	return nil
}

func (m *MockConnector) Model() string {
	return "mock/contract-model"
}

func (m *MockConnector) Health(ctx context.Context) error {
	return nil
}
