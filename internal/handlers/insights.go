package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/apurvdugar/Expense-Tracker-App/internal/dto"
	"github.com/apurvdugar/Expense-Tracker-App/internal/insights"
	"github.com/apurvdugar/Expense-Tracker-App/internal/middleware"
	"github.com/apurvdugar/Expense-Tracker-App/internal/response"
)

type StatsService interface {
	GetStatistics(ctx context.Context, uid string) (insights.Statistics, error)
	GetSummary(ctx context.Context, uid string) (insights.Summary, error)
	ExportCSV(ctx context.Context, uid string) (string, error)
}

type InsightService interface {
	GetAnalysis(ctx context.Context, uid string) (dto.AnalysisResponse, error)
	GetTips(ctx context.Context, uid string) (dto.TipsResponse, error)
}

type insightHandlers struct {
	ResponseHandler response.ResponseHandler
	StatsSvc        StatsService
	InsightSvc      InsightService
}

func NewInsightHandlers(deps *Deps) *insightHandlers {
	return &insightHandlers{
		ResponseHandler: deps.ResponseHandler,
		StatsSvc:        deps.StatsSvc,
		InsightSvc:      deps.InsightSvc,
	}
}

func (h *insightHandlers) InsightRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/statistics", h.GetStatistics)
	r.Get("/summary", h.GetSummary)
	r.Get("/ai-analysis", h.GetAnalysis)
	r.Get("/tips", h.GetTips)
	r.Get("/export", h.ExportCSV)
	return r
}

func (h *insightHandlers) GetStatistics(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	stats, err := h.StatsSvc.GetStatistics(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, stats)
}

func (h *insightHandlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	summary, err := h.StatsSvc.GetSummary(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, summary)
}

func (h *insightHandlers) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	analysis, err := h.InsightSvc.GetAnalysis(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, analysis)
}

func (h *insightHandlers) GetTips(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	tips, err := h.InsightSvc.GetTips(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, tips)
}

// ExportCSV streams the insights export as a file download rather than a
// JSON envelope.
func (h *insightHandlers) ExportCSV(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	csv, err := h.StatsSvc.ExportCSV(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="expense_insights.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(csv))
}
