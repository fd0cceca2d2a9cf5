package dto

import (
	"time"

	"github.com/compstack/company_tracker_app/internal/core/domain"
)

// --- Insight DTOs ---

// AnalyzeCompanyRequest carries the free-text query for AI analysis.
type AnalyzeCompanyRequest struct {
	Query string `json:"query" binding:"required"`
}

// InsightResponse returns the opaque AI commentary.
type InsightResponse struct {
	Query       string    `json:"query"`
	Analysis    string    `json:"analysis"`
	Model       string    `json:"model"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// ToInsightResponse converts domain.Insight to DTO.
func ToInsightResponse(i *domain.Insight) InsightResponse {
	return InsightResponse{
		Query:       i.Query,
		Analysis:    i.Analysis,
		Model:       i.Model,
		GeneratedAt: i.GeneratedAt,
	}
}

// --- Auth DTOs ---

// TokenRequest exchanges the configured service secret for a bearer token.
type TokenRequest struct {
	ServiceSecret string `json:"serviceSecret" binding:"required"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
