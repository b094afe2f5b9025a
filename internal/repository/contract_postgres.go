package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/draftforge/contract-backend/internal/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContractRepository defines the interface for contract persistence
type ContractRepository interface {
	CreateContract(ctx context.Context, contract *entity.Contract) error
	GetContractByID(ctx context.Context, id string) (*entity.Contract, error)
	ListContracts(ctx context.Context, limit, offset int, contractType *entity.ContractType) ([]*entity.Contract, error)
	CountContracts(ctx context.Context, contractType *entity.ContractType) (int64, error)
	DeleteContract(ctx context.Context, id string) error
	ContractStats(ctx context.Context) (*entity.ContractStats, error)
	Ping(ctx context.Context) error
}

var _ ContractRepository = &ContractPostgres{}

// ContractPostgres implements ContractRepository using PostgreSQL
type ContractPostgres struct {
	db *pgxpool.Pool
}

func NewContractPostgres(db *pgxpool.Pool) *ContractPostgres {
	return &ContractPostgres{db: db}
}

const insertContractQuery = `
INSERT INTO contracts (
	id, contract_type, business_context, language, jurisdiction,
	html_content, raw_content, total_sections, estimated_pages,
	total_tokens, generation_time, model_used
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING created_at, updated_at`

const insertSectionQuery = `
INSERT INTO contract_sections (
	contract_id, title, content, section_number, subsection_number
) VALUES ($1, $2, $3, $4, $5)`

// CreateContract stores a finished contract and its sections in one transaction
func (r *ContractPostgres) CreateContract(ctx context.Context, contract *entity.Contract) error {
	contractID, err := parseUUID(contract.ID)
	if err != nil {
		return err
	}

	contextJSON, err := json.Marshal(contract.BusinessContext)
	if err != nil {
		return fmt.Errorf("marshal business context: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, insertContractQuery,
		contractID,
		string(contract.ContractType),
		contextJSON,
		contract.Language,
		textOrNull(contract.Jurisdiction),
		contract.HTMLContent,
		contract.RawContent,
		contract.TotalSections,
		contract.EstimatedPages,
		contract.TotalTokens,
		contract.GenerationTime,
		contract.ModelUsed,
	).Scan(&contract.CreatedAt, &contract.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert contract: %w", err)
	}

	for _, section := range contract.Sections {
		var subsection pgtype.Int4
		if section.SubsectionNumber != nil {
			subsection = pgtype.Int4{Int32: int32(*section.SubsectionNumber), Valid: true}
		}

		_, err = tx.Exec(ctx, insertSectionQuery,
			contractID,
			section.Title,
			section.Content,
			section.SectionNumber,
			subsection,
		)
		if err != nil {
			return fmt.Errorf("insert contract section %d: %w", section.SectionNumber, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

const selectContractQuery = `
SELECT id, contract_type, business_context, language, jurisdiction,
       html_content, raw_content, total_sections, estimated_pages,
       total_tokens, generation_time, model_used, created_at, updated_at
FROM contracts
WHERE id = $1`

const selectSectionsQuery = `
SELECT title, content, section_number, subsection_number
FROM contract_sections
WHERE contract_id = $1
ORDER BY section_number, subsection_number NULLS FIRST`

// GetContractByID returns the full contract with sections ordered by
// section number then subsection number.
func (r *ContractPostgres) GetContractByID(ctx context.Context, id string) (*entity.Contract, error) {
	contractID, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, selectContractQuery, contractID)
	contract, err := scanContract(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrContractNotFound
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}

	rows, err := r.db.Query(ctx, selectSectionsQuery, contractID)
	if err != nil {
		return nil, fmt.Errorf("get contract sections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var section entity.ContractSection
		var subsection pgtype.Int4
		if err := rows.Scan(&section.Title, &section.Content, &section.SectionNumber, &subsection); err != nil {
			return nil, fmt.Errorf("scan contract section: %w", err)
		}
		if subsection.Valid {
			n := int(subsection.Int32)
			section.SubsectionNumber = &n
		}
		contract.Sections = append(contract.Sections, section)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contract sections: %w", err)
	}

	return contract, nil
}

const listContractsQuery = `
SELECT id, contract_type, business_context, language, jurisdiction,
       html_content, raw_content, total_sections, estimated_pages,
       total_tokens, generation_time, model_used, created_at, updated_at
FROM contracts
WHERE ($3::text IS NULL OR contract_type = $3)
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

// ListContracts returns contract summaries newest first. Sections are not
// loaded for listings.
func (r *ContractPostgres) ListContracts(ctx context.Context, limit, offset int, contractType *entity.ContractType) ([]*entity.Contract, error) {
	rows, err := r.db.Query(ctx, listContractsQuery, limit, offset, contractTypeFilter(contractType))
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	contracts := make([]*entity.Contract, 0, limit)
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		contracts = append(contracts, contract)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contracts: %w", err)
	}

	return contracts, nil
}

const countContractsQuery = `
SELECT COUNT(*) FROM contracts
WHERE ($1::text IS NULL OR contract_type = $1)`

func (r *ContractPostgres) CountContracts(ctx context.Context, contractType *entity.ContractType) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, countContractsQuery, contractTypeFilter(contractType)).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count contracts: %w", err)
	}
	return total, nil
}

// DeleteContract removes a contract; sections follow via ON DELETE CASCADE.
// Reports entity.ErrContractNotFound when nothing was deleted.
func (r *ContractPostgres) DeleteContract(ctx context.Context, id string) error {
	contractID, err := parseUUID(id)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM contracts WHERE id = $1`, contractID)
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrContractNotFound
	}

	return nil
}

const statsByTypeQuery = `
SELECT contract_type, COUNT(*)
FROM contracts
GROUP BY contract_type`

const statsRecentQuery = `
SELECT COUNT(*) FROM contracts
WHERE created_at >= now() - interval '7 days'`

func (r *ContractPostgres) ContractStats(ctx context.Context) (*entity.ContractStats, error) {
	stats := &entity.ContractStats{
		ContractsByType: make(map[string]int64),
	}

	rows, err := r.db.Query(ctx, statsByTypeQuery)
	if err != nil {
		return nil, fmt.Errorf("contract stats by type: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var contractType string
		var count int64
		if err := rows.Scan(&contractType, &count); err != nil {
			return nil, fmt.Errorf("scan contract stats: %w", err)
		}
		stats.ContractsByType[contractType] = count
		stats.TotalContracts += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contract stats: %w", err)
	}

	if err := r.db.QueryRow(ctx, statsRecentQuery).Scan(&stats.RecentContracts); err != nil {
		return nil, fmt.Errorf("recent contract count: %w", err)
	}

	return stats, nil
}

func (r *ContractPostgres) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func parseUUID(id string) (pgtype.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return pgtype.UUID{}, fmt.Errorf("%w: invalid contract ID %q", entity.ErrContractNotFound, id)
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, nil
}

func textOrNull(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func contractTypeFilter(contractType *entity.ContractType) pgtype.Text {
	if contractType == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: string(*contractType), Valid: true}
}
