package queries

import (
	"context"

	"spotserve/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetCustomerJobsQueryHandler reads a customer's jobs directly from the
// database, newest last, and resolves each job's service name through the
// pricer so deleted catalog entries still render.
type GetCustomerJobsQueryHandler struct {
	db     *gorm.DB
	pricer services.JobPricer
}

// NewGetCustomerJobsQueryHandler creates a handler for customer job listings.
// Requires a GORM database connection for query execution.
func NewGetCustomerJobsQueryHandler(db *gorm.DB, pricer services.JobPricer) GetCustomerJobsQueryHandler {
	return GetCustomerJobsQueryHandler{db: db, pricer: pricer}
}

// Handle executes the listing query. Results are sorted by creation time,
// with the job ID as a tiebreaker for stable output.
func (h GetCustomerJobsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerJobsQuery,
) ([]JobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]JobView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobViewColumns+`
		FROM jobs
		WHERE customer_id = ?
		ORDER BY created_at, id
	`, query.CustomerID().Bytes()).Rows()
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
