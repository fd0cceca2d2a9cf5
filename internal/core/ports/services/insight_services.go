package services

import (
	"context"

	"github.com/compstack/company_tracker_app/internal/core/domain"
)

// Summarizer is the outbound port to a language model. The engine supplies a
// rendered prompt and treats the response as an opaque string.
type Summarizer interface {
	// Summarize sends the prompt and returns the model's text response.
	Summarize(ctx context.Context, prompt string) (string, error)

	// Model names the backing model, for reporting only.
	Model() string
}

// InsightService produces free-text commentary over the company's aggregates.
type InsightService interface {
	// AnalyzeCompany gathers the company overview, renders a prompt around
	// the user's query and returns the summarizer's response verbatim.
	AnalyzeCompany(ctx context.Context, query string) (*domain.Insight, error)
}
