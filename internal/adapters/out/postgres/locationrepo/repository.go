// Package locationrepo loads collection-site reference data. Locations are
// read-only for the lifecycle engine, so the package carries no tracker.
package locationrepo

import (
	"context"
	"errors"

	"plasmashipping/internal/core/domain/model/location"
	"plasmashipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// LocationDTO represents the database structure for collection sites.
type LocationDTO struct {
	ID         int64                 `gorm:"primaryKey"`
	Code       string                `gorm:"type:varchar(10);not null;uniqueIndex"`
	Name       string                `gorm:"type:varchar(255);not null"`
	Address    AddressDTO            `gorm:"embedded;embeddedPrefix:address_"`
	Properties []LocationPropertyDTO `gorm:"foreignKey:LocationID"`
}

// TableName specifies the database table name for location entities.
func (LocationDTO) TableName() string {
	return "locations"
}

// AddressDTO represents the embedded site address within the location table.
type AddressDTO struct {
	AddressLine1 string `gorm:"type:varchar(255)"`
	AddressLine2 string `gorm:"type:varchar(255)"`
	City         string `gorm:"type:varchar(100)"`
	State        string `gorm:"type:varchar(50)"`
	PostalCode   string `gorm:"type:varchar(20)"`
	Country      string `gorm:"type:varchar(100)"`
}

// LocationPropertyDTO represents a single configuration property of a site.
type LocationPropertyDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	LocationID int64  `gorm:"not null;index"`
	Key        string `gorm:"type:varchar(100);not null;column:key"`
	Value      string `gorm:"type:varchar(255);not null;column:value"`
}

// TableName specifies the database table name for location properties.
func (LocationPropertyDTO) TableName() string {
	return "location_properties"
}

func toDomain(dto LocationDTO) (*location.Location, error) {
	properties := make([]location.Property, 0, len(dto.Properties))
	for _, propertyDto := range dto.Properties {
		property, err := location.NewProperty(propertyDto.Key, propertyDto.Value)
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}

	return location.NewLocation(dto.ID, dto.Code, dto.Name, location.Address{
		AddressLine1: dto.Address.AddressLine1,
		AddressLine2: dto.Address.AddressLine2,
		City:         dto.Address.City,
		State:        dto.Address.State,
		PostalCode:   dto.Address.PostalCode,
		Country:      dto.Address.Country,
	}, properties)
}

// GormLocationRepository implements LocationRepository using GORM.
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GORM location repository.
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// GetByCode retrieves a location with its configuration properties.
func (r *GormLocationRepository) GetByCode(ctx context.Context, code string) (*location.Location, error) {
	var dto LocationDTO
	if err := r.db.WithContext(ctx).
		Preload("Properties").
		First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("location", code)
		}
		return nil, err
	}

	return toDomain(dto)
}
