package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/lead"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/database"
)

type leadRepositoryImpl struct {
	db *database.DB
}

func NewLeadRepository(db *database.DB) lead.LeadRepository {
	return &leadRepositoryImpl{db: db}
}

// Create implements lead.LeadRepository. Inputs and outputs go into JSONB
// columns; the marketing team queries them ad hoc and the schema of the
// calculator changes more often than the table should.
func (r *leadRepositoryImpl) Create(ctx context.Context, newLead lead.Lead) (lead.Lead, error) {
	q := GetQuerier(ctx, r.db)

	inputsJSON, err := json.Marshal(newLead.Inputs)
	if err != nil {
		return lead.Lead{}, fmt.Errorf("failed to marshal lead inputs: %w", err)
	}
	outputsJSON, err := json.Marshal(newLead.Outputs)
	if err != nil {
		return lead.Lead{}, fmt.Errorf("failed to marshal lead outputs: %w", err)
	}

	query := `
		INSERT INTO leads (email, inputs, outputs)
		VALUES ($1, $2, $3)
		RETURNING id, email, created_at
	`

	created := newLead
	err = q.QueryRow(ctx, query, newLead.Email, inputsJSON, outputsJSON).
		Scan(&created.ID, &created.Email, &created.CreatedAt)
	if err != nil {
		return lead.Lead{}, fmt.Errorf("failed to create lead: %w", err)
	}
	return created, nil
}
