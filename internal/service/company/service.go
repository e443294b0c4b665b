package company

import (
	"context"
	"fmt"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/company"
	"github.com/go-chi/jwtauth/v5"
)

type CompanyServiceImpl struct {
	companyRepo company.CompanyRepository
}

func NewCompanyService(companyRepo company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{companyRepo: companyRepo}
}

// getCompanyID extracts company_id from JWT claims
func (s *CompanyServiceImpl) getCompanyID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id not found in claims")
	}
	return companyID, nil
}

// GetByID implements company.CompanyService. Callers can only read their own
// company; the id argument is checked against the token.
func (s *CompanyServiceImpl) GetByID(ctx context.Context, id string) (company.CompanyResponse, error) {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	if id != companyID {
		return company.CompanyResponse{}, company.ErrCompanyNotFound
	}

	c, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return company.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}, nil
}

// Update implements company.CompanyService.
func (s *CompanyServiceImpl) Update(ctx context.Context, id string, req company.UpdateCompanyRequest) error {
	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return err
	}
	if id != companyID {
		return company.ErrCompanyNotFound
	}

	if err := req.Validate(); err != nil {
		return err
	}

	if req.Name != nil {
		current, err := s.companyRepo.GetByID(ctx, companyID)
		if err != nil {
			return err
		}
		// Renaming to an already-taken name is a conflict; keeping the
		// current name is not.
		if *req.Name != current.Name {
			exists, err := s.companyRepo.ExistsByName(ctx, *req.Name)
			if err != nil {
				return fmt.Errorf("failed to check company name: %w", err)
			}
			if exists {
				return company.ErrCompanyNameExists
			}
		}
	}

	return s.companyRepo.Update(ctx, companyID, req)
}
