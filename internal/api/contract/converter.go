package contract

import (
	"time"

	"github.com/draftforge/contract-backend/internal/entity"
)

func toContractDTO(contract *entity.Contract, includeSections bool) *entity.ContractDTO {
	dto := &entity.ContractDTO{
		ContractID:      contract.ID,
		ContractType:    contract.ContractType,
		BusinessContext: contract.BusinessContext,
		Language:        contract.Language,
		Jurisdiction:    contract.Jurisdiction,
		TotalSections:   contract.TotalSections,
		EstimatedPages:  contract.EstimatedPages,
		TotalTokens:     contract.TotalTokens,
		GenerationTime:  contract.GenerationTime,
		ModelUsed:       contract.ModelUsed,
		CreatedAt:       contract.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       contract.UpdatedAt.Format(time.RFC3339),
	}

	if includeSections {
		dto.Sections = contract.Sections
	}

	return dto
}

func toContractTypeDTOs(types []entity.ContractType) []entity.ContractTypeDTO {
	dtos := make([]entity.ContractTypeDTO, 0, len(types))
	for _, ct := range types {
		dtos = append(dtos, entity.ContractTypeDTO{
			ID:    ct,
			Label: ct.Label(),
		})
	}
	return dtos
}
