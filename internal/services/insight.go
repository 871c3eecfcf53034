package services

import (
	"context"
	"time"

	"github.com/apurvdugar/Expense-Tracker-App/internal/dto"
	"github.com/apurvdugar/Expense-Tracker-App/internal/errs"
	"github.com/apurvdugar/Expense-Tracker-App/internal/insights"
	"github.com/apurvdugar/Expense-Tracker-App/pkg/logger"
)

// textGenerator is the capability interface over the external
// text-generation collaborator. Any provider satisfies it.
type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const insightsUnavailableMessage = "Insights are currently unavailable. Please try again later."

const noExpensesTipsMessage = "No expenses available to analyze. Add some expenses first to get personalized financial tips!"

const emptyGenerationMessage = "The AI model did not return any insights. This may be a temporary issue or the content was blocked by safety filters. Please try again or check the input data."

type insightService struct {
	store statsExpenseStore
	gen   textGenerator
	loc   *time.Location
}

func NewInsightService(store statsExpenseStore, gen textGenerator, loc *time.Location) *insightService {
	return &insightService{
		store: store,
		gen:   gen,
		loc:   loc,
	}
}

// GetAnalysis builds the digest, renders the analysis prompt and asks the
// generator for prose. Generation failure does not discard the numbers: the
// digest is still returned with a fallback message.
func (s *insightService) GetAnalysis(ctx context.Context, uid string) (dto.AnalysisResponse, error) {
	log := logger.FromContext(ctx)

	expenses, err := s.store.List(ctx, uid)
	if err != nil {
		return dto.AnalysisResponse{}, err
	}

	digest, ok := insights.BuildDigest(expenses, insights.DefaultDigestLimit, s.loc)
	if !ok {
		return dto.AnalysisResponse{}, errs.NewNotFoundError("No expenses found")
	}

	prompt := insights.AnalysisPrompt(digest)
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		log.Warn("insight generation failed", "error", err)
		return dto.AnalysisResponse{
			Insights:    insightsUnavailableMessage,
			ExpenseData: &digest,
		}, nil
	}
	if text == "" {
		text = emptyGenerationMessage
	}

	log.Info("insight analysis generated", "expenses", len(expenses))
	return dto.AnalysisResponse{
		Insights:    text,
		ExpenseData: &digest,
	}, nil
}

// GetTips renders the flat per-expense prompt, bypassing the digest.
func (s *insightService) GetTips(ctx context.Context, uid string) (dto.TipsResponse, error) {
	expenses, err := s.store.List(ctx, uid)
	if err != nil {
		return dto.TipsResponse{}, err
	}
	if len(expenses) == 0 {
		return dto.TipsResponse{Insights: noExpensesTipsMessage}, nil
	}

	prompt := insights.TipsPrompt(expenses, s.loc)
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return dto.TipsResponse{}, errs.NewExternalServiceError("vertex", "failed to generate tips", true)
	}
	if text == "" {
		text = emptyGenerationMessage
	}
	return dto.TipsResponse{Insights: text}, nil
}
