package queries

import (
	"context"

	"spotserve/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetMechanicJobsQueryHandler reads a mechanic's assigned jobs directly from
// the database, the mechanic's work history and active workload in one list.
type GetMechanicJobsQueryHandler struct {
	db     *gorm.DB
	pricer services.JobPricer
}

// NewGetMechanicJobsQueryHandler creates a handler for mechanic job listings.
// Requires a GORM database connection for query execution.
func NewGetMechanicJobsQueryHandler(db *gorm.DB, pricer services.JobPricer) GetMechanicJobsQueryHandler {
	return GetMechanicJobsQueryHandler{db: db, pricer: pricer}
}

// Handle executes the listing query. Results are sorted by creation time,
// with the job ID as a tiebreaker for stable output.
func (h GetMechanicJobsQueryHandler) Handle(
	ctx context.Context,
	query GetMechanicJobsQuery,
) ([]JobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]JobView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobViewColumns+`
		FROM jobs
		WHERE mechanic_id = ?
		ORDER BY created_at, id
	`, query.MechanicID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanJobView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = resolveServiceNames(ctx, h.pricer, views); err != nil {
		return nil, err
	}

	return views, nil
}
