package services

import (
	"context"

	"github.com/compstack/company_tracker_app/internal/core/domain"
)

// ReconcilerService detects employees that are logical duplicates and merges
// the redundant rows while preserving their performance records.
type ReconcilerService interface {
	// ReconcileDuplicates groups all employees by (name, department),
	// case-insensitively, and merges each group into its canonical row.
	// Groups are processed independently; one group failing does not abort
	// the others.
	ReconcileDuplicates(ctx context.Context) (*domain.ReconcileReport, error)
}
