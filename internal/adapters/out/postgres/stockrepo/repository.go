package stockrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/stock"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRepository {
	return &GormStockRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new stock item to the database. A taken product name surfaces
// as a duplicate key error.
func (r *GormStockRepository) Add(ctx context.Context, item *stock.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyError("productName", item.ProductName())
		}
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update saves an existing stock item to the database. The quantity written
// is whatever the item carries; callers performing catalog edits during
// active reservations must serialize against Reserve themselves.
func (r *GormStockRepository) Update(ctx context.Context, item *stock.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&StockItemDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyError("productName", item.ProductName())
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stockItem", item.ID().String())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Get retrieves a stock item by ID.
func (r *GormStockRepository) Get(ctx context.Context, id kernel.UUID) (*stock.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StockItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stockItem", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every stock item, ordered by product name.
func (r *GormStockRepository) GetAll(ctx context.Context) ([]*stock.Item, error) {
	var dtos []StockItemDTO
	if err := r.db.WithContext(ctx).Order("product_name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*stock.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// Reserve decrements the item's quantity by amount and returns the remaining
// quantity. The decrement is a single conditional UPDATE guarded by
// "quantity >= amount", so two reservations racing for the last units never
// both succeed regardless of transaction interleaving.
func (r *GormStockRepository) Reserve(ctx context.Context, id kernel.UUID, amount int) (int, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, errs.NewValueIsInvalidError("amount")
	}

	result := r.db.WithContext(ctx).Model(&StockItemDTO{}).
		Where("id = ? AND quantity >= ?", id.Bytes(), amount).
		Update("quantity", gorm.Expr("quantity - ?", amount))
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected == 0 {
		// Either the item is unknown or the stock is short; re-read to
		// report which.
		var dto StockItemDTO
		if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, errs.NewObjectNotFoundError("stockItem", id.String())
			}
			return 0, err
		}
		return 0, errs.NewInsufficientStockError(id.String(), amount, dto.Quantity)
	}

	var dto StockItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return 0, err
	}

	return dto.Quantity, nil
}

// Release increments the item's quantity by amount, restoring a previous
// reservation.
func (r *GormStockRepository) Release(ctx context.Context, id kernel.UUID, amount int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	result := r.db.WithContext(ctx).Model(&StockItemDTO{}).
		Where("id = ?", id.Bytes()).
		Update("quantity", gorm.Expr("quantity + ?", amount))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stockItem", id.String())
	}

	return nil
}

// Delete removes a stock item from the catalog.
func (r *GormStockRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&StockItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stockItem", id.String())
	}

	return nil
}
