package jobrepo

import (
	"context"
	"errors"

	"spotserve/internal/core/domain/model/job"
	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormJobRepository implements JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// noopTracker is used when the repository runs outside a unit of work, for
// read paths that never publish changes.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// NewGormJobRepository creates a new GORM job repository. Pass a nil tracker
// for read-only use outside a unit of work.
func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	if tracker == nil {
		tracker = noopTracker{}
	}
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new job to the database.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing job to the database unconditionally.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&JobDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateIfStatus saves an existing job only if the stored row is still in
// the expected status. The WHERE clause makes the check-and-write a single
// atomic statement, which is what resolves races between concurrent
// transitions on the same job: the first writer flips the status, every
// later writer matches zero rows and gets a status conflict.
//
// Select("*") forces zero-valued and nil fields through, so a cleared OTP
// code or payment URL is actually written.
func (r *GormJobRepository) UpdateIfStatus(ctx context.Context, aggregate *job.Job, expected job.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&JobDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStatusConflictError("job", aggregate.ID().String(), expected.String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a job by ID.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUnassigned retrieves all pending jobs without a mechanic, oldest
// first. Creation order is what breaks distance ties during matching.
func (r *GormJobRepository) GetAllUnassigned(ctx context.Context) ([]*job.Job, error) {
	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND mechanic_id IS NULL", int(job.Pending)).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByCustomer retrieves all jobs created by a customer, oldest first.
func (r *GormJobRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*job.Job, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByMechanic retrieves all jobs assigned to a mechanic, oldest first.
func (r *GormJobRepository) GetByMechanic(ctx context.Context, mechanicID kernel.UUID) ([]*job.Job, error) {
	if err := mechanicID.Validate(); err != nil {
		return nil, err
	}

	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Where("mechanic_id = ?", mechanicID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllInPaymentPendingStatus retrieves jobs waiting for settlement.
func (r *GormJobRepository) GetAllInPaymentPendingStatus(ctx context.Context) ([]*job.Job, error) {
	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", int(job.PaymentPending)).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []JobDTO) ([]*job.Job, error) {
	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	return jobs, nil
}
