// Package sysproprepo loads the per-document system property sets that drive
// report formatting and section toggles.
package sysproprepo

import (
	"context"

	"plasmashipping/internal/core/domain/model/sysprop"

	"gorm.io/gorm"
)

// SystemPropertyDTO represents a single system process property.
type SystemPropertyDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	PropertyType string `gorm:"type:varchar(50);not null;index"`
	Key          string `gorm:"type:varchar(100);not null;column:key"`
	Value        string `gorm:"type:varchar(1000);column:value"`
}

// TableName specifies the database table name for system properties.
func (SystemPropertyDTO) TableName() string {
	return "system_properties"
}

// GormSyspropRepository implements SyspropRepository using GORM.
type GormSyspropRepository struct {
	db *gorm.DB
}

// NewGormSyspropRepository creates a new GORM system property repository.
func NewGormSyspropRepository(db *gorm.DB) *GormSyspropRepository {
	return &GormSyspropRepository{db: db}
}

// GetAllByType retrieves every property of a document type.
func (r *GormSyspropRepository) GetAllByType(ctx context.Context, propertyType string) ([]sysprop.Property, error) {
	var dtos []SystemPropertyDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "property_type = ?", propertyType).Error; err != nil {
		return nil, err
	}

	properties := make([]sysprop.Property, 0, len(dtos))
	for _, dto := range dtos {
		property, err := sysprop.NewProperty(dto.PropertyType, dto.Key, dto.Value)
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}

	return properties, nil
}
