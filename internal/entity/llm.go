package entity

// LLMCompletionRequest is a streaming chat-completion request to the AI provider
type LLMCompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int
}
