package cartonrepo

import (
	"context"
	"errors"
	"strconv"

	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartonRepository implements CartonRepository using GORM.
type GormCartonRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormCartonRepository creates a new GORM carton repository.
func NewGormCartonRepository(db *gorm.DB, tracker aggregateTracker) *GormCartonRepository {
	return &GormCartonRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new carton to the database.
func (r *GormCartonRepository) Add(ctx context.Context, aggregate *carton.Carton) error {
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

// Update saves an existing carton to the database. The packed items are
// replaced wholesale; the aggregate owns them.
func (r *GormCartonRepository) Update(ctx context.Context, aggregate *carton.Carton) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CartonDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("Items", "id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.replaceItems(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCartonRepository) replaceItems(ctx context.Context, dto CartonDTO) error {
	if err := r.db.WithContext(ctx).
		Where("carton_id = ?", dto.ID).
		Delete(&CartonItemDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Items) == 0 {
		return nil
	}

	items := make([]CartonItemDTO, len(dto.Items))
	copy(items, dto.Items)
	for i := range items {
		items[i].ID = 0
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// Get retrieves a carton by ID with its packed items loaded.
func (r *GormCartonRepository) Get(ctx context.Context, id int64) (*carton.Carton, error) {
	var dto CartonDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carton", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetAllByShipment retrieves every carton of a shipment in sequence order,
// removed cartons excluded.
func (r *GormCartonRepository) GetAllByShipment(ctx context.Context, shipmentID int64) ([]*carton.Carton, error) {
	var dtos []CartonDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("shipment_id = ? AND status != ?", shipmentID, carton.Removed.String()).
		Order("carton_sequence").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	cartons := make([]*carton.Carton, 0, len(dtos))
	for _, dto := range dtos {
		c, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		cartons = append(cartons, c)
	}

	return cartons, nil
}

// CountByShipment returns the number of cartons attached to a shipment,
// removed cartons excluded.
func (r *GormCartonRepository) CountByShipment(ctx context.Context, shipmentID int64) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&CartonDTO{}).
		Where("shipment_id = ? AND status != ?", shipmentID, carton.Removed.String()).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return int(count), nil
}

// NextCartonID draws the next value from the carton number counter.
func (r *GormCartonRepository) NextCartonID(ctx context.Context) (int64, error) {
	var id int64
	if err := r.db.WithContext(ctx).
		Raw("SELECT nextval('carton_number_seq')").
		Scan(&id).Error; err != nil {
		return 0, err
	}

	return id, nil
}

// CountByProduct returns how many times a unit is packed across all cartons,
// removed cartons excluded.
func (r *GormCartonRepository) CountByProduct(ctx context.Context, unitNumber, productCode string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&CartonItemDTO{}).
		Joins("JOIN cartons ON cartons.id = carton_items.carton_id").
		Where("carton_items.unit_number = ? AND carton_items.product_code = ? AND cartons.status != ?",
			unitNumber, productCode, carton.Removed.String()).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// DeleteItems removes all packed items of a carton.
func (r *GormCartonRepository) DeleteItems(ctx context.Context, cartonID int64) error {
	return r.db.WithContext(ctx).
		Where("carton_id = ?", cartonID).
		Delete(&CartonItemDTO{}).Error
}
