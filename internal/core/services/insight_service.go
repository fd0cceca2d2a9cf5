package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/compstack/company_tracker_app/internal/apperrors"
	"github.com/compstack/company_tracker_app/internal/core/domain"
	portssvc "github.com/compstack/company_tracker_app/internal/core/ports/services"
)

// ErrSummarizerUnavailable is returned when no AI summarizer is configured.
var ErrSummarizerUnavailable = errors.New("AI summarizer is not configured")

// insightService implements the InsightService interface. It only assembles
// structured aggregates into a prompt; the response is opaque text.
type insightService struct {
	BaseService
	reporting  portssvc.ReportingService
	summarizer portssvc.Summarizer
}

// NewInsightService creates a new insight service. The summarizer may be nil
// when no API key is configured; analysis requests then fail cleanly.
func NewInsightService(reporting portssvc.ReportingService, summarizer portssvc.Summarizer) portssvc.InsightService {
	return &insightService{
		reporting:  reporting,
		summarizer: summarizer,
	}
}

var _ portssvc.InsightService = (*insightService)(nil)

func (s *insightService) AnalyzeCompany(ctx context.Context, query string) (*domain.Insight, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query must not be empty", apperrors.ErrValidation)
	}
	if s.summarizer == nil {
		return nil, ErrSummarizerUnavailable
	}

	overview, err := s.reporting.GetCompanyOverview(ctx)
	if err != nil {
		return nil, err
	}

	prompt, err := renderAnalysisPrompt(query, overview)
	if err != nil {
		return nil, err
	}

	analysis, err := s.summarizer.Summarize(ctx, prompt)
	if err != nil {
		s.LogError(ctx, err, "Summarizer call failed")
		return nil, fmt.Errorf("failed to analyze company data: %w", err)
	}

	return &domain.Insight{
		Query:       query,
		Analysis:    analysis,
		Model:       s.summarizer.Model(),
		GeneratedAt: time.Now(),
	}, nil
}

// renderAnalysisPrompt embeds the aggregates as JSON so the model receives
// exact figures rather than prose approximations.
func renderAnalysisPrompt(query string, overview *domain.CompanyOverview) (string, error) {
	data, err := json.MarshalIndent(overview, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode overview for prompt: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are an analytics assistant for a company management system.\n\n")
	b.WriteString("COMPANY DATA (JSON):\n")
	b.Write(data)
	b.WriteString("\n\nUSER QUERY: ")
	b.WriteString(query)
	b.WriteString("\n\nProvide a direct answer to the query, key patterns you observe, and specific recommendations grounded in the data.\n")
	return b.String(), nil
}
