// Package catalogrepo implements the service catalog lookup over the
// services table. The catalog is read-only from the job lifecycle's
// perspective; offerings are managed out of band.
package catalogrepo

import (
	"context"
	"errors"

	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/core/ports"
	"spotserve/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceDTO represents the database structure for catalog offerings.
type ServiceDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	BasePrice float64
}

// TableName specifies the database table name for catalog entries.
func (ServiceDTO) TableName() string {
	return "services"
}

// GormServiceCatalog implements ServiceCatalog using GORM.
type GormServiceCatalog struct {
	db *gorm.DB
}

// NewGormServiceCatalog creates a new GORM service catalog.
func NewGormServiceCatalog(db *gorm.DB) *GormServiceCatalog {
	return &GormServiceCatalog{db: db}
}

// Get retrieves a catalog offering by ID. Unknown ids fail with an error
// unwrapping to errs.ErrObjectNotFound; the pricer turns that into the
// fallback quote.
func (c *GormServiceCatalog) Get(ctx context.Context, serviceID kernel.UUID) (ports.ServiceOffering, error) {
	if err := serviceID.Validate(); err != nil {
		return ports.ServiceOffering{}, err
	}

	var dto ServiceDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", serviceID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ServiceOffering{}, errs.NewObjectNotFoundError("service", serviceID.String())
		}
		return ports.ServiceOffering{}, err
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.ServiceOffering{}, err
	}

	return ports.ServiceOffering{
		ID:        id,
		Name:      dto.Name,
		BasePrice: dto.BasePrice,
	}, nil
}
