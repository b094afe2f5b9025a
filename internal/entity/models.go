package entity

import (
	"fmt"
	"time"
)

type ContractType string

// Contract types the generator knows how to draft
const (
	ContractTypeTermsOfService ContractType = "terms_of_service"
	ContractTypePrivacyPolicy  ContractType = "privacy_policy"
)

func (ct ContractType) Validate() error {
	switch ct {
	case ContractTypeTermsOfService, ContractTypePrivacyPolicy:
		return nil
	default:
		return fmt.Errorf("unknown contract type: %s", ct)
	}
}

// Label returns a human-readable name for the contract type
func (ct ContractType) Label() string {
	switch ct {
	case ContractTypeTermsOfService:
		return "Terms of Service"
	case ContractTypePrivacyPolicy:
		return "Privacy Policy"
	default:
		return string(ct)
	}
}

func AllContractTypes() []ContractType {
	return []ContractType{ContractTypeTermsOfService, ContractTypePrivacyPolicy}
}

// BusinessContext describes the requesting business and parameterizes generation
type BusinessContext struct {
	Description string `json:"description"`
	Industry    string `json:"industry,omitempty"`
	Location    string `json:"location,omitempty"`
	CompanySize string `json:"company_size,omitempty"`
}

// ContractSection is a single numbered section of a generated contract.
// Ordering by SectionNumber (then SubsectionNumber) is significant.
type ContractSection struct {
	Title            string `json:"title"`
	Content          string `json:"content"`
	SectionNumber    int    `json:"section_number"`
	SubsectionNumber *int   `json:"subsection_number,omitempty"`
}

// Contract is a finished generated document. Created once streaming
// completes and immutable afterwards, except for deletion.
type Contract struct {
	ID              string            `json:"contract_id"`
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
	HTMLContent     string            `json:"-"`
	RawContent      string            `json:"-"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// ContractStats aggregates stored contracts
type ContractStats struct {
	TotalContracts  int64            `json:"total_contracts"`
	ContractsByType map[string]int64 `json:"contracts_by_type"`
	RecentContracts int64            `json:"recent_contracts"`
}

type DownloadFormat string

const (
	FormatHTML     DownloadFormat = "html"
	FormatMarkdown DownloadFormat = "markdown"
	FormatPDF      DownloadFormat = "pdf"
	FormatDOCX     DownloadFormat = "docx"
)

func (f DownloadFormat) IsValid() bool {
	switch f {
	case FormatHTML, FormatMarkdown, FormatPDF, FormatDOCX:
		return true
	default:
		return false
	}
}
