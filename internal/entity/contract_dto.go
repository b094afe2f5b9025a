package entity

// GenerateContractRequest is the body of POST /api/generate-contract
type GenerateContractRequest struct {
	BusinessContext BusinessContext `json:"business_context"`
	ContractType    ContractType    `json:"contract_type"`
	CustomSections  []string        `json:"custom_sections,omitempty"`
	Language        string          `json:"language,omitempty"`
	Jurisdiction    string          `json:"jurisdiction,omitempty"`
}

// RetrieveContractRequest is the body of POST /api/generate-contract-full
type RetrieveContractRequest struct {
	ContractID string `json:"contract_id"`
}

// DownloadContractRequest is the body of POST /api/download-contract
type DownloadContractRequest struct {
	ContractID string         `json:"contract_id"`
	Format     DownloadFormat `json:"format,omitempty"`
}

// ContractDTO is the full contract representation returned on retrieval
type ContractDTO struct {
	ContractID      string            `json:"contract_id"`
	ContractType    ContractType      `json:"contract_type"`
	BusinessContext BusinessContext   `json:"business_context"`
	Language        string            `json:"language"`
	Jurisdiction    string            `json:"jurisdiction,omitempty"`
	Sections        []ContractSection `json:"sections,omitempty"`
	TotalSections   int               `json:"total_sections"`
	EstimatedPages  int               `json:"estimated_pages"`
	TotalTokens     int               `json:"total_tokens"`
	GenerationTime  float64           `json:"generation_time"`
	ModelUsed       string            `json:"model_used"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
}

// ListContractsResponse is a page of contract summaries (no sections)
type ListContractsResponse struct {
	Contracts []*ContractDTO `json:"contracts"`
	Total     int64          `json:"total"`
	Limit     int            `json:"limit"`
	Offset    int            `json:"offset"`
}

// ContractTypeDTO describes one selectable contract type
type ContractTypeDTO struct {
	ID    ContractType `json:"id"`
	Label string       `json:"label"`
}

// ErrorResponse is the structured error body for non-stream endpoints
type ErrorResponse struct {
	Error   string         `json:"error"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthResponse reports liveness of the API and its dependencies
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}
