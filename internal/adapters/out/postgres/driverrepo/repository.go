package driverrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the database. A taken vehicle plate or license
// number surfaces as a duplicate key error.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyError("vehiclePlateNo", aggregate.VehiclePlateNo())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing driver to the database.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyError("vehiclePlateNo", aggregate.VehiclePlateNo())
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllFree retrieves drivers whose busy flag is false, ordered by name.
func (r *GormDriverRepository) GetAllFree(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	err := r.db.WithContext(ctx).
		Where("busy = ?", false).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

// Claim transitions a driver from free to busy. The flip is a single
// conditional UPDATE guarded by "busy = false", so two assignments racing
// for the same driver never both succeed.
func (r *GormDriverRepository) Claim(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ? AND busy = ?", id.Bytes(), false).
		Update("busy", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		// Either the driver is unknown or already busy; re-read to
		// report which.
		var dto DriverDTO
		if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("driver", id.String())
			}
			return err
		}
		return errs.NewDriverUnavailableError(id.String())
	}

	return nil
}

// Release transitions a driver to free. Releasing an already-free driver is
// a no-op.
func (r *GormDriverRepository) Release(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ?", id.Bytes()).
		Update("busy", false)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", id.String())
	}

	return nil
}
