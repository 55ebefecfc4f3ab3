package handler

import (
	"context"
	"net/http"

	"github.com/kiraazuma/jijiken-potato-pos/internal/adapter/http/dto"
	"github.com/kiraazuma/jijiken-potato-pos/internal/domain"
)

// StatsService defines the behavior needed by StatsHandler.
type StatsService interface {
	TodayStats(ctx context.Context) (domain.DayStats, error)
	PeriodStats(ctx context.Context, days int) (domain.PeriodStats, error)
}

// StatsHandler handles reporting HTTP requests.
type StatsHandler struct {
	stats       StatsService
	defaultDays int
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(stats StatsService, defaultDays int) *StatsHandler {
	return &StatsHandler{
		stats:       stats,
		defaultDays: defaultDays,
	}
}

// Today returns today's running totals.
func (h *StatsHandler) Today(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.TodayStats(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to read today's stats", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TodayStatsResponse{
		Count:  stats.ItemCount,
		Amount: stats.TotalAmount,
	})
}

// Period returns totals over the trailing n-day window.
func (h *StatsHandler) Period(w http.ResponseWriter, r *http.Request) {
	days := parseIntQuery(r, "days", h.defaultDays)

	stats, err := h.stats.PeriodStats(r.Context(), days)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to read period stats", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PeriodStatsFromDomain(stats))
}
