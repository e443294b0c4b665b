package http

import (
	"fmt"
	"log/slog"
	"net/http"

	domain "github.com/fieldcrew/fieldcrew-backend-go/internal/domain/payroll"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/handler/http/response"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	ExportWeekCSV(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService domain.PayrollService
}

func NewPayrollHandler(payrollService domain.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// ExportWeekCSV implements PayrollHandler. The response is a CSV download,
// not the usual JSON envelope.
func (h *PayrollHandlerImpl) ExportWeekCSV(w http.ResponseWriter, r *http.Request) {
	exportReq := domain.ExportRequest{WeekOf: r.URL.Query().Get("weekOf")}

	if err := exportReq.Validate(); err != nil {
		slog.Error("ExportWeekCSV validate error", "error", err)
		response.HandleError(w, err)
		return
	}
	weekOf, err := exportReq.ParseWeekOf()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	export, err := h.payrollService.ExportWeek(r.Context(), weekOf)
	if err != nil {
		slog.Error("ExportWeekCSV service error", "error", err)
		response.HandleError(w, err)
		return
	}

	csvBytes, err := payroll.RenderCSV(export)
	if err != nil {
		slog.Error("ExportWeekCSV render error", "error", err)
		response.InternalServerError(w, "Failed to render payroll export")
		return
	}

	slog.Info("Payroll week exported", "week_start", export.WeekStart.Format("2006-01-02"), "lines", len(export.Lines))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", payroll.Filename(export)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(csvBytes)
}
