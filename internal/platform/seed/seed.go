package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/compstack/company_tracker_app/internal/core/domain"
	portsrepo "github.com/compstack/company_tracker_app/internal/core/ports/repositories"
)

// seedDepartment mirrors one entry of the departments seed file.
type seedDepartment struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Departments inserts the departments from the seed file when the table is
// empty. A populated table means a previous run already seeded, so the file
// is ignored.
func Departments(ctx context.Context, repo portsrepo.DepartmentRepositoryFacade, path string, logger *slog.Logger) error {
	existing, err := repo.ListDepartments(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing departments: %w", err)
	}
	if len(existing) > 0 {
		logger.Debug("Departments already present, skipping seed", slog.Int("count", len(existing)))
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("Departments seed file not found, skipping", slog.String("path", path))
			return nil
		}
		return fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var entries []seedDepartment
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	for _, entry := range entries {
		if _, err := repo.SaveDepartment(ctx, domain.Department{
			Name:        entry.Name,
			Description: entry.Description,
		}); err != nil {
			return fmt.Errorf("failed to seed department %q: %w", entry.Name, err)
		}
	}

	logger.Info("Seeded departments", slog.Int("count", len(entries)), slog.String("path", path))
	return nil
}
