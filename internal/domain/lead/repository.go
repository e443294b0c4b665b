package lead

import "context"

type LeadRepository interface {
	Create(ctx context.Context, newLead Lead) (Lead, error)
}
