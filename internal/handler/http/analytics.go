package http

import (
	"net/http"
	"strconv"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/analytics"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	RecoveryDashboard(w http.ResponseWriter, r *http.Request)
	LabourCostTrend(w http.ResponseWriter, r *http.Request)
	RPLHTrend(w http.ResponseWriter, r *http.Request)
	TimeAllocation(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &AnalyticsHandlerImpl{analyticsService: analyticsService}
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

// RecoveryDashboard implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) RecoveryDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.analyticsService.GetRecoveryDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, dashboard)
}

// LabourCostTrend implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) LabourCostTrend(w http.ResponseWriter, r *http.Request) {
	rangeDays, err := queryInt(r, "rangeDays", 30)
	if err != nil {
		response.BadRequest(w, "rangeDays must be an integer", nil)
		return
	}

	var target *float64
	if raw := r.URL.Query().Get("targetLabourCostPerJob"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.BadRequest(w, "targetLabourCostPerJob must be a number", nil)
			return
		}
		target = &parsed
	}

	payload, err := h.analyticsService.GetLabourCostTrend(r.Context(), rangeDays, target)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payload)
}

// RPLHTrend implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) RPLHTrend(w http.ResponseWriter, r *http.Request) {
	weeks, err := queryInt(r, "weeks", 8)
	if err != nil {
		response.BadRequest(w, "weeks must be an integer", nil)
		return
	}

	trend, err := h.analyticsService.GetRPLHTrend(r.Context(), weeks)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, trend)
}

// TimeAllocation implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) TimeAllocation(w http.ResponseWriter, r *http.Request) {
	rangeDays, err := queryInt(r, "rangeDays", 7)
	if err != nil {
		response.BadRequest(w, "rangeDays must be an integer", nil)
		return
	}

	allocation, err := h.analyticsService.GetTimeAllocation(r.Context(), rangeDays)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, allocation)
}
