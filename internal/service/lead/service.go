package lead

import (
	"context"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/lead"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/service/leakage"
)

type LeadServiceImpl struct {
	leadRepo lead.LeadRepository
}

func NewLeadService(leadRepo lead.LeadRepository) lead.LeadService {
	return &LeadServiceImpl{leadRepo: leadRepo}
}

// Capture implements lead.LeadService. The report is always recomputed on
// the server so a tampered client cannot store inflated numbers.
func (s *LeadServiceImpl) Capture(ctx context.Context, req lead.CreateLeadRequest) (lead.LeadResponse, error) {
	if err := req.Validate(); err != nil {
		return lead.LeadResponse{}, err
	}

	outputs := leakage.Calculate(req.Inputs)

	created, err := s.leadRepo.Create(ctx, lead.Lead{
		Email:   req.Email,
		Inputs:  req.Inputs,
		Outputs: outputs,
	})
	if err != nil {
		return lead.LeadResponse{}, err
	}

	return lead.LeadResponse{
		ID:        created.ID,
		Email:     created.Email,
		Report:    created.Outputs,
		CreatedAt: created.CreatedAt,
	}, nil
}
