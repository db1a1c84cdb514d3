// Package criteriarepo loads the customer shipment criteria configuration
// and the product type registry.
package criteriarepo

import (
	"context"
	"errors"

	"plasmashipping/internal/core/domain/model/criteria"
	"plasmashipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// ShipmentCriteriaDTO represents the packing criteria configured for a
// customer and product type.
type ShipmentCriteriaDTO struct {
	ID                int64             `gorm:"primaryKey;autoIncrement"`
	CustomerCode      string            `gorm:"type:varchar(20);not null;index:idx_criteria_customer_product"`
	ProductType       string            `gorm:"type:varchar(50);not null;index:idx_criteria_customer_product"`
	MinUnitsPerCarton int               `gorm:"not null"`
	MaxUnitsPerCarton int               `gorm:"not null"`
	Items             []CriteriaItemDTO `gorm:"foreignKey:CriteriaID"`
}

// TableName specifies the database table name for criteria entities.
func (ShipmentCriteriaDTO) TableName() string {
	return "shipment_criteria"
}

// CriteriaItemDTO represents a single named criterion with its rejection
// message.
type CriteriaItemDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	CriteriaID  int64  `gorm:"not null;index"`
	ItemType    string `gorm:"type:varchar(50);not null"`
	Value       string `gorm:"type:varchar(100);not null;column:value"`
	Message     string `gorm:"type:varchar(255)"`
	MessageType string `gorm:"type:varchar(20)"`
}

// TableName specifies the database table name for criteria items.
func (CriteriaItemDTO) TableName() string {
	return "shipment_criteria_items"
}

// ProductTypeDTO represents a registered product type.
type ProductTypeDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Code        string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Description string `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for product types.
func (ProductTypeDTO) TableName() string {
	return "product_types"
}

// ProductCodeDTO maps a scanned product code to its product type.
type ProductCodeDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	ProductCode string `gorm:"type:varchar(20);not null;uniqueIndex"`
	ProductType string `gorm:"type:varchar(50);not null"`
}

// TableName specifies the database table name for product code mappings.
func (ProductCodeDTO) TableName() string {
	return "product_codes"
}

func criteriaToDomain(dto ShipmentCriteriaDTO) (*criteria.ShipmentCriteria, error) {
	items := make([]criteria.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, err := criteria.NewItem(itemDto.ItemType, itemDto.Value, itemDto.Message, itemDto.MessageType)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return criteria.NewShipmentCriteria(
		dto.CustomerCode,
		dto.ProductType,
		dto.MinUnitsPerCarton,
		dto.MaxUnitsPerCarton,
		items,
	)
}

// GormCriteriaRepository implements CriteriaRepository using GORM.
type GormCriteriaRepository struct {
	db *gorm.DB
}

// NewGormCriteriaRepository creates a new GORM criteria repository.
func NewGormCriteriaRepository(db *gorm.DB) *GormCriteriaRepository {
	return &GormCriteriaRepository{db: db}
}

// FindProductCriteria retrieves the packing criteria configured for a
// customer and product type. Returns nil when none are configured.
func (r *GormCriteriaRepository) FindProductCriteria(ctx context.Context, productType, customerCode string) (*criteria.ShipmentCriteria, error) {
	var dto ShipmentCriteriaDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&dto, "product_type = ? AND customer_code = ?", productType, customerCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return criteriaToDomain(dto)
}

// FindProductTypeByCode maps a product code to its registered product type.
func (r *GormCriteriaRepository) FindProductTypeByCode(ctx context.Context, productCode string) (*criteria.ProductType, error) {
	var mapping ProductCodeDTO
	if err := r.db.WithContext(ctx).First(&mapping, "product_code = ?", productCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productCode", productCode)
		}
		return nil, err
	}

	var dto ProductTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", mapping.ProductType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productType", mapping.ProductType)
		}
		return nil, err
	}

	return criteria.NewProductType(dto.Code, dto.Description)
}

// FindProductTypesByCustomer lists the product types a customer accepts.
func (r *GormCriteriaRepository) FindProductTypesByCustomer(ctx context.Context, customerCode string) ([]*criteria.ProductType, error) {
	var dtos []ProductTypeDTO
	if err := r.db.WithContext(ctx).
		Model(&ProductTypeDTO{}).
		Joins("JOIN shipment_criteria ON shipment_criteria.product_type = product_types.code").
		Where("shipment_criteria.customer_code = ?", customerCode).
		Order("product_types.code").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	types := make([]*criteria.ProductType, 0, len(dtos))
	for _, dto := range dtos {
		productType, err := criteria.NewProductType(dto.Code, dto.Description)
		if err != nil {
			return nil, err
		}
		types = append(types, productType)
	}

	return types, nil
}
