package lead

import "context"

type LeadService interface {
	// Capture stores the lead and returns the server-computed report.
	Capture(ctx context.Context, req CreateLeadRequest) (LeadResponse, error)
}
