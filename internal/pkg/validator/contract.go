package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/draftforge/contract-backend/internal/entity"
)

const (
	minDescriptionLen  = 10
	maxDescriptionLen  = 2000
	maxCustomSections  = 20
	maxJurisdictionLen = 120
)

var languageCodeRe = regexp.MustCompile(`^[a-z]{2}$`)

// Validator validates contract API requests
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateContract validates GenerateContractRequest and normalizes
// the description and language in place.
func (v *Validator) ValidateGenerateContract(req *entity.GenerateContractRequest) error {
	req.BusinessContext.Description = strings.TrimSpace(req.BusinessContext.Description)

	if req.BusinessContext.Description == "" {
		return fmt.Errorf("%w: business_context.description", entity.ErrMissingField)
	}

	if len(req.BusinessContext.Description) < minDescriptionLen {
		return fmt.Errorf("%w: business_context.description must be at least %d characters",
			entity.ErrInvalidParameter, minDescriptionLen)
	}

	if len(req.BusinessContext.Description) > maxDescriptionLen {
		return fmt.Errorf("%w: business_context.description must be at most %d characters",
			entity.ErrInvalidParameter, maxDescriptionLen)
	}

	if err := req.ContractType.Validate(); err != nil {
		return fmt.Errorf("%w: %s", entity.ErrInvalidContractType, req.ContractType)
	}

	if req.Language == "" {
		req.Language = "en"
	}
	if !languageCodeRe.MatchString(req.Language) {
		return fmt.Errorf("%w: language must be an ISO 639-1 code, got %q", entity.ErrInvalidFormat, req.Language)
	}

	if len(req.CustomSections) > maxCustomSections {
		return fmt.Errorf("%w: at most %d custom_sections are allowed", entity.ErrInvalidParameter, maxCustomSections)
	}
	for i, title := range req.CustomSections {
		if strings.TrimSpace(title) == "" {
			return fmt.Errorf("%w: custom_sections[%d] is empty", entity.ErrInvalidParameter, i)
		}
	}

	if len(req.Jurisdiction) > maxJurisdictionLen {
		return fmt.Errorf("%w: jurisdiction is too long", entity.ErrInvalidParameter)
	}

	return nil
}

// ValidateRetrieveContract validates RetrieveContractRequest
func (v *Validator) ValidateRetrieveContract(req *entity.RetrieveContractRequest) error {
	if strings.TrimSpace(req.ContractID) == "" {
		return fmt.Errorf("%w: contract_id", entity.ErrMissingField)
	}
	return nil
}

// ValidateDownloadContract validates DownloadContractRequest and defaults
// the format to HTML.
func (v *Validator) ValidateDownloadContract(req *entity.DownloadContractRequest) error {
	if strings.TrimSpace(req.ContractID) == "" {
		return fmt.Errorf("%w: contract_id", entity.ErrMissingField)
	}
	if req.Format == "" {
		req.Format = entity.FormatHTML
	}
	if !req.Format.IsValid() {
		return fmt.Errorf("%w: format must be one of: html, markdown, pdf, docx", entity.ErrInvalidFormat)
	}
	return nil
}
