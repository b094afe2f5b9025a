package validator

import (
	"strings"
	"testing"

	"github.com/draftforge/contract-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *entity.GenerateContractRequest {
	return &entity.GenerateContractRequest{
		BusinessContext: entity.BusinessContext{
			Description: "A video conferencing platform for remote teams",
		},
		ContractType: entity.ContractTypeTermsOfService,
	}
}

func TestValidateGenerateContract(t *testing.T) {
	v := NewValidator()

	req := validRequest()
	require.NoError(t, v.ValidateGenerateContract(req))
	assert.Equal(t, "en", req.Language, "language should default to en")
}

func TestValidateGenerateContractTrimsDescription(t *testing.T) {
	v := NewValidator()

	req := validRequest()
	req.BusinessContext.Description = "   A video conferencing platform   "
	require.NoError(t, v.ValidateGenerateContract(req))
	assert.Equal(t, "A video conferencing platform", req.BusinessContext.Description)
}

func TestValidateGenerateContractErrors(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		mutate  func(req *entity.GenerateContractRequest)
		wantErr error
	}{
		{
			name:    "missing description",
			mutate:  func(r *entity.GenerateContractRequest) { r.BusinessContext.Description = "   " },
			wantErr: entity.ErrMissingField,
		},
		{
			name:    "description too short",
			mutate:  func(r *entity.GenerateContractRequest) { r.BusinessContext.Description = "too short" },
			wantErr: entity.ErrInvalidParameter,
		},
		{
			name: "description too long",
			mutate: func(r *entity.GenerateContractRequest) {
				r.BusinessContext.Description = strings.Repeat("x", 2001)
			},
			wantErr: entity.ErrInvalidParameter,
		},
		{
			name:    "unknown contract type",
			mutate:  func(r *entity.GenerateContractRequest) { r.ContractType = "lease_agreement" },
			wantErr: entity.ErrInvalidContractType,
		},
		{
			name:    "bad language code",
			mutate:  func(r *entity.GenerateContractRequest) { r.Language = "english" },
			wantErr: entity.ErrInvalidFormat,
		},
		{
			name: "too many custom sections",
			mutate: func(r *entity.GenerateContractRequest) {
				r.CustomSections = make([]string, 21)
				for i := range r.CustomSections {
					r.CustomSections[i] = "Section"
				}
			},
			wantErr: entity.ErrInvalidParameter,
		},
		{
			name:    "blank custom section",
			mutate:  func(r *entity.GenerateContractRequest) { r.CustomSections = []string{"Fine", "  "} },
			wantErr: entity.ErrInvalidParameter,
		},
		{
			name:    "jurisdiction too long",
			mutate:  func(r *entity.GenerateContractRequest) { r.Jurisdiction = strings.Repeat("j", 121) },
			wantErr: entity.ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			err := v.ValidateGenerateContract(req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateRetrieveContract(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateRetrieveContract(&entity.RetrieveContractRequest{ContractID: "abc"}))
	assert.ErrorIs(t,
		v.ValidateRetrieveContract(&entity.RetrieveContractRequest{ContractID: "  "}),
		entity.ErrMissingField,
	)
}

func TestValidateDownloadContract(t *testing.T) {
	v := NewValidator()

	req := &entity.DownloadContractRequest{ContractID: "abc"}
	require.NoError(t, v.ValidateDownloadContract(req))
	assert.Equal(t, entity.FormatHTML, req.Format, "format should default to html")

	req = &entity.DownloadContractRequest{ContractID: "abc", Format: "rtf"}
	assert.ErrorIs(t, v.ValidateDownloadContract(req), entity.ErrInvalidFormat)

	req = &entity.DownloadContractRequest{Format: entity.FormatPDF}
	assert.ErrorIs(t, v.ValidateDownloadContract(req), entity.ErrMissingField)
}
