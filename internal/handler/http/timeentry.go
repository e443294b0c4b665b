package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/timeentry"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimeEntryHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetTimeEntry(w http.ResponseWriter, r *http.Request)
	ListTimeEntries(w http.ResponseWriter, r *http.Request)
}

type TimeEntryHandlerImpl struct {
	timeEntryService timeentry.TimeEntryService
}

func NewTimeEntryHandler(timeEntryService timeentry.TimeEntryService) TimeEntryHandler {
	return &TimeEntryHandlerImpl{timeEntryService: timeEntryService}
}

// ClockIn implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var clockInReq timeentry.ClockInRequest

	if err := json.NewDecoder(r.Body).Decode(&clockInReq); err != nil {
		slog.Error("ClockIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entryResponse, err := h.timeEntryService.ClockIn(r.Context(), clockInReq)
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shift opened", "time_entry_id", entryResponse.ID, "worker_id", entryResponse.WorkerID)
	response.Created(w, "Clocked in", entryResponse)
}

// ClockOut implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// Body is optional; an empty one clocks out at the current time.
	var clockOutReq timeentry.ClockOutRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&clockOutReq); err != nil {
			slog.Error("ClockOut decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	entryResponse, err := h.timeEntryService.ClockOut(r.Context(), id, clockOutReq)
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shift closed", "time_entry_id", entryResponse.ID)
	response.Success(w, entryResponse)
}

// GetTimeEntry implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) GetTimeEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entryResponse, err := h.timeEntryService.GetTimeEntry(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, entryResponse)
}

// ListTimeEntries implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) ListTimeEntries(w http.ResponseWriter, r *http.Request) {
	rangeDays := 0
	if raw := r.URL.Query().Get("rangeDays"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "rangeDays must be an integer", nil)
			return
		}
		rangeDays = parsed
	}

	entries, err := h.timeEntryService.ListTimeEntries(r.Context(), rangeDays)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, entries)
}
