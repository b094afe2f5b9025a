package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/draftforge/contract-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMockConnectorStreamsDocument(t *testing.T) {
	mock := NewMockConnector(zap.NewNop())

	var doc strings.Builder
	err := mock.StreamCompletion(context.Background(), &entity.LLMCompletionRequest{}, func(delta string) error {
		doc.WriteString(delta)
		return nil
	})
	require.NoError(t, err)

	out := doc.String()
	assert.Contains(t, out, "<h2>1. Introduction</h2>")
	assert.Contains(t, out, "<h3>2.1 Registration</h3>")
	assert.Contains(t, out, "Governing Law")
}

func TestMockConnectorStopsOnDeltaError(t *testing.T) {
	mock := NewMockConnector(zap.NewNop())

	calls := 0
	err := mock.StreamCompletion(context.Background(), &entity.LLMCompletionRequest{}, func(string) error {
		calls++
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, calls)
}

func TestMockConnectorRespectsContext(t *testing.T) {
	mock := NewMockConnector(zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := mock.StreamCompletion(ctx, &entity.LLMCompletionRequest{}, func(string) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
