// Package cartonrepo provides data transfer objects and mapping functions for carton persistence.
// This package implements the repository pattern for the carton domain aggregate, handling
// the conversion between domain entities and database representations.
package cartonrepo

import (
	"time"

	"plasmashipping/internal/core/domain/model/carton"
)

// CartonDTO represents the database structure for persisting carton aggregates.
// Maps carton domain entities to relational database tables with proper indexing
// for efficient querying by shipment and status.
type CartonDTO struct {
	ID               int64           `gorm:"primaryKey"`
	CartonNumber     string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	ShipmentID       int64           `gorm:"not null;index"`
	CartonSequence   int             `gorm:"not null"`
	Status           string          `gorm:"type:varchar(20);not null;index"`
	MinUnits         int             `gorm:"not null"`
	MaxUnits         int             `gorm:"not null"`
	CreateEmployeeID string          `gorm:"type:varchar(50);not null"`
	CloseEmployeeID  string          `gorm:"type:varchar(50)"`
	CloseDate        *time.Time      `gorm:""`
	RepackEmployeeID string          `gorm:"type:varchar(50)"`
	RepackDate       *time.Time      `gorm:""`
	RepackComments   string          `gorm:"type:text"`
	DeleteEmployeeID string          `gorm:"type:varchar(50)"`
	DeleteDate       *time.Time      `gorm:""`
	CreateDate       time.Time       `gorm:"not null"`
	ModificationDate time.Time       `gorm:"not null"`
	Items            []CartonItemDTO `gorm:"foreignKey:CartonID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for carton entities.
// Overrides GORM's default naming convention to use "cartons".
func (CartonDTO) TableName() string {
	return "cartons"
}

// CartonItemDTO represents the database structure for persisting packed units.
// Links to carton via foreign key and carries the inventory snapshot captured
// at packing time.
type CartonItemDTO struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement"`
	CartonID           int64     `gorm:"not null;index"`
	UnitNumber         string    `gorm:"type:varchar(50);not null;index"`
	ProductCode        string    `gorm:"type:varchar(20);not null"`
	ProductDescription string    `gorm:"type:varchar(255)"`
	ProductType        string    `gorm:"type:varchar(50)"`
	AboRh              string    `gorm:"type:varchar(10)"`
	Volume             int       `gorm:"not null"`
	Weight             int       `gorm:"not null"`
	Status             string    `gorm:"type:varchar(20);not null"`
	ExpirationDate     time.Time `gorm:""`
	CollectionDate     time.Time `gorm:""`
	PackedByEmployeeID string    `gorm:"type:varchar(50);not null"`
	CreateDate         time.Time `gorm:"not null"`
	ModificationDate   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for packed unit entities.
// Overrides GORM's default naming convention to use "carton_items".
func (CartonItemDTO) TableName() string {
	return "carton_items"
}

// fromDomain converts a carton domain aggregate to its database representation.
// Maps all aggregate entities including the packed items and their current state.
func fromDomain(c *carton.Carton) CartonDTO {
	items := make([]CartonItemDTO, 0, len(c.Items()))
	for _, item := range c.Items() {
		items = append(items, CartonItemDTO{
			ID:                 item.ID(),
			CartonID:           c.ID(),
			UnitNumber:         item.UnitNumber(),
			ProductCode:        item.ProductCode(),
			ProductDescription: item.ProductDescription(),
			ProductType:        item.ProductType(),
			AboRh:              item.AboRh(),
			Volume:             item.Volume(),
			Weight:             item.Weight(),
			Status:             item.Status().String(),
			ExpirationDate:     item.ExpirationDate(),
			CollectionDate:     item.CollectionDate(),
			PackedByEmployeeID: item.PackedByEmployeeID(),
			CreateDate:         item.CreateDate(),
			ModificationDate:   item.ModificationDate(),
		})
	}

	return CartonDTO{
		ID:               c.ID(),
		CartonNumber:     c.CartonNumber(),
		ShipmentID:       c.ShipmentID(),
		CartonSequence:   c.CartonSequence(),
		Status:           c.Status().String(),
		MinUnits:         c.MinUnits(),
		MaxUnits:         c.MaxUnits(),
		CreateEmployeeID: c.CreateEmployeeID(),
		CloseEmployeeID:  c.CloseEmployeeID(),
		CloseDate:        c.CloseDate(),
		RepackEmployeeID: c.RepackEmployeeID(),
		RepackDate:       c.RepackDate(),
		RepackComments:   c.RepackComments(),
		DeleteEmployeeID: c.DeleteEmployeeID(),
		DeleteDate:       c.DeleteDate(),
		CreateDate:       c.CreateDate(),
		ModificationDate: c.ModificationDate(),
		Items:            items,
	}
}

// ToDomain converts a database DTO to a carton domain aggregate. Exported
// because the shipment repository preloads cartons when restoring a shipment.
func ToDomain(dto CartonDTO) (*carton.Carton, error) {
	status, err := carton.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*carton.CartonItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return carton.FromRepository(
		dto.ID,
		dto.CartonNumber,
		dto.ShipmentID,
		dto.CartonSequence,
		status,
		items,
		dto.MinUnits,
		dto.MaxUnits,
		dto.CreateEmployeeID,
		dto.CloseEmployeeID,
		dto.CloseDate,
		dto.RepackEmployeeID,
		dto.RepackDate,
		dto.RepackComments,
		dto.CreateDate,
		dto.ModificationDate,
	)
}

// itemToDomain converts a packed unit DTO to its domain entity.
func itemToDomain(dto CartonItemDTO) (*carton.CartonItem, error) {
	status, err := carton.ItemStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return carton.ItemFromRepository(
		dto.ID,
		dto.CartonID,
		dto.UnitNumber,
		dto.ProductCode,
		dto.ProductDescription,
		dto.ProductType,
		dto.AboRh,
		dto.Volume,
		dto.Weight,
		status,
		dto.ExpirationDate,
		dto.CollectionDate,
		dto.PackedByEmployeeID,
		dto.CreateDate,
		dto.ModificationDate,
	)
}
