package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/lead"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/handler/http/response"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/service/leakage"
)

// CalculatorHandler serves the public, unauthenticated lead-generation
// endpoints: the leakage estimator, the canned sample report and email
// capture.
type CalculatorHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	SampleReport(w http.ResponseWriter, r *http.Request)
	CaptureLead(w http.ResponseWriter, r *http.Request)
}

type CalculatorHandlerImpl struct {
	leadService lead.LeadService
}

func NewCalculatorHandler(leadService lead.LeadService) CalculatorHandler {
	return &CalculatorHandlerImpl{leadService: leadService}
}

// Calculate implements CalculatorHandler. An empty body runs the default
// inputs so the landing page can render figures before any interaction.
func (c *CalculatorHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	inputs := leakage.DefaultInputs

	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
			slog.Error("Calculate decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	response.Success(w, leakage.Calculate(inputs))
}

// SampleReport implements CalculatorHandler.
func (c *CalculatorHandlerImpl) SampleReport(w http.ResponseWriter, r *http.Request) {
	response.Success(w, leakage.HoustonSampleReport())
}

// CaptureLead implements CalculatorHandler.
func (c *CalculatorHandlerImpl) CaptureLead(w http.ResponseWriter, r *http.Request) {
	var createLeadReq lead.CreateLeadRequest

	if err := json.NewDecoder(r.Body).Decode(&createLeadReq); err != nil {
		slog.Error("CaptureLead decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	leadResponse, err := c.leadService.Capture(r.Context(), createLeadReq)
	if err != nil {
		slog.Error("CaptureLead service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Lead captured successfully")
	response.Created(w, "Report saved", leadResponse)
}
