// Package mechanicrepo implements the mechanic directory over the mechanics
// table. The directory holds each mechanic's last reported position; the
// matching engine only ever reads it.
package mechanicrepo

import (
	"context"
	"errors"

	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MechanicDTO represents the database structure for mechanic positions.
type MechanicDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Latitude  float64
	Longitude float64
}

// TableName specifies the database table name for mechanic entries.
func (MechanicDTO) TableName() string {
	return "mechanics"
}

// GormMechanicDirectory implements MechanicDirectory using GORM.
type GormMechanicDirectory struct {
	db *gorm.DB
}

// NewGormMechanicDirectory creates a new GORM mechanic directory.
func NewGormMechanicDirectory(db *gorm.DB) *GormMechanicDirectory {
	return &GormMechanicDirectory{db: db}
}

// Location retrieves a mechanic's last-known position. Unknown ids fail
// with an error unwrapping to errs.ErrObjectNotFound.
func (d *GormMechanicDirectory) Location(ctx context.Context, mechanicID kernel.UUID) (kernel.GeoPoint, error) {
	if err := mechanicID.Validate(); err != nil {
		return kernel.GeoPoint{}, err
	}

	var dto MechanicDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", mechanicID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.GeoPoint{}, errs.NewObjectNotFoundError("mechanic", mechanicID.String())
		}
		return kernel.GeoPoint{}, err
	}

	return kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
}

// UpdateLocation stores a mechanic's reported position, inserting the row on
// first report.
func (d *GormMechanicDirectory) UpdateLocation(ctx context.Context, mechanicID kernel.UUID, position kernel.GeoPoint) error {
	if err := mechanicID.Validate(); err != nil {
		return err
	}

	if err := position.Validate(); err != nil {
		return err
	}

	dto := MechanicDTO{
		ID:        mechanicID.Bytes(),
		Latitude:  position.Latitude(),
		Longitude: position.Longitude(),
	}

	return d.db.WithContext(ctx).Save(&dto).Error
}
