package repository

import (
	"encoding/json"
	"fmt"

	"github.com/draftforge/contract-backend/internal/entity"
	"github.com/jackc/pgx/v5/pgtype"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContract(row rowScanner) (*entity.Contract, error) {
	var (
		contract     entity.Contract
		contractID   pgtype.UUID
		contractType string
		contextJSON  []byte
		jurisdiction pgtype.Text
	)

	err := row.Scan(
		&contractID,
		&contractType,
		&contextJSON,
		&contract.Language,
		&jurisdiction,
		&contract.HTMLContent,
		&contract.RawContent,
		&contract.TotalSections,
		&contract.EstimatedPages,
		&contract.TotalTokens,
		&contract.GenerationTime,
		&contract.ModelUsed,
		&contract.CreatedAt,
		&contract.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	contract.ID = formatUUID(contractID)
	contract.ContractType = entity.ContractType(contractType)
	contract.Jurisdiction = jurisdiction.String

	if len(contextJSON) > 0 {
		if err := json.Unmarshal(contextJSON, &contract.BusinessContext); err != nil {
			return nil, fmt.Errorf("unmarshal business context: %w", err)
		}
	}

	return &contract, nil
}

func formatUUID(id pgtype.UUID) string {
	b := id.Bytes
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}
