package company

import "context"

type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (Company, error)
	Create(ctx context.Context, newCompany Company) (Company, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) error
}
