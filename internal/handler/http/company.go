package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/company"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CompanyHandler interface {
	GetCompany(w http.ResponseWriter, r *http.Request)
	UpdateCompany(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// GetCompany implements CompanyHandler.
func (h *CompanyHandlerImpl) GetCompany(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	companyResponse, err := h.companyService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, companyResponse)
}

// UpdateCompany implements CompanyHandler.
func (h *CompanyHandlerImpl) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateCompany decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.companyService.Update(r.Context(), id, updateReq); err != nil {
		slog.Error("UpdateCompany service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Company updated successfully", "company_id", id)
	response.SuccessWithMessage(w, "Company updated successfully", nil)
}
