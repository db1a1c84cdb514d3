package shipmentrepo

import (
	"context"
	"errors"
	"strconv"

	"plasmashipping/internal/adapters/out/postgres/cartonrepo"
	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/core/domain/model/shipment"
	"plasmashipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
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

// Update saves an existing shipment to the database.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
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

// Get retrieves a shipment by ID with its cartons and their items loaded.
func (r *GormShipmentRepository) Get(ctx context.Context, id int64) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	cartons, err := r.loadCartons(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, cartons)
}

// GetAllInStatus retrieves all shipments currently in the given status.
func (r *GormShipmentRepository) GetAllInStatus(ctx context.Context, status shipment.Status) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", status.String()).Error; err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		cartons, err := r.loadCartons(ctx, dto.ID)
		if err != nil {
			return nil, err
		}
		s, err := toDomain(dto, cartons)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}

// NextShipmentID draws the next value from the shipment number counter.
func (r *GormShipmentRepository) NextShipmentID(ctx context.Context) (int64, error) {
	var id int64
	if err := r.db.WithContext(ctx).
		Raw("SELECT nextval('shipment_number_seq')").
		Scan(&id).Error; err != nil {
		return 0, err
	}

	return id, nil
}

// AddHistory appends a modification audit record.
func (r *GormShipmentRepository) AddHistory(ctx context.Context, record *shipment.History) error {
	dto := historyFromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// loadCartons loads the cartons of a shipment, removed cartons excluded.
func (r *GormShipmentRepository) loadCartons(ctx context.Context, shipmentID int64) ([]*carton.Carton, error) {
	var dtos []cartonrepo.CartonDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("shipment_id = ? AND status != ?", shipmentID, carton.Removed.String()).
		Order("carton_sequence").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	cartons := make([]*carton.Carton, 0, len(dtos))
	for _, dto := range dtos {
		c, err := cartonrepo.ToDomain(dto)
		if err != nil {
			return nil, err
		}
		cartons = append(cartons, c)
	}

	return cartons, nil
}
