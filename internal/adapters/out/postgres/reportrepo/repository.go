// Package reportrepo persists the rejection entries produced by the
// close-time batch revalidation.
package reportrepo

import (
	"context"
	"time"

	"plasmashipping/internal/core/domain/model/report"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// UnacceptableUnitItemDTO represents the database structure for a rejection
// entry. Details are stored as a native Postgres text array.
type UnacceptableUnitItemDTO struct {
	ID           int64          `gorm:"primaryKey;autoIncrement"`
	ShipmentID   int64          `gorm:"not null;index"`
	CartonNumber string         `gorm:"type:varchar(50)"`
	UnitNumber   string         `gorm:"type:varchar(50);not null"`
	ProductCode  string         `gorm:"type:varchar(20)"`
	ErrorName    string         `gorm:"type:varchar(100);not null"`
	Reason       string         `gorm:"type:text"`
	Details      pq.StringArray `gorm:"type:text[]"`
	CreateDate   time.Time      `gorm:"not null"`
}

// TableName specifies the database table name for rejection entries.
func (UnacceptableUnitItemDTO) TableName() string {
	return "unacceptable_unit_report_items"
}

func fromDomain(item *report.UnacceptableUnitItem) UnacceptableUnitItemDTO {
	return UnacceptableUnitItemDTO{
		ID:           item.ID(),
		ShipmentID:   item.ShipmentID(),
		CartonNumber: item.CartonNumber(),
		UnitNumber:   item.UnitNumber(),
		ProductCode:  item.ProductCode(),
		ErrorName:    item.ErrorName(),
		Reason:       item.Reason(),
		Details:      item.Details(),
		CreateDate:   item.CreateDate(),
	}
}

func toDomain(dto UnacceptableUnitItemDTO) *report.UnacceptableUnitItem {
	return report.UnacceptableUnitItemFromRepository(
		dto.ID,
		dto.ShipmentID,
		dto.CartonNumber,
		dto.UnitNumber,
		dto.ProductCode,
		dto.ErrorName,
		dto.Reason,
		dto.Details,
		dto.CreateDate,
	)
}

// GormUnacceptableUnitReportRepository implements
// UnacceptableUnitReportRepository using GORM.
type GormUnacceptableUnitReportRepository struct {
	db *gorm.DB
}

// NewGormUnacceptableUnitReportRepository creates a new GORM report repository.
func NewGormUnacceptableUnitReportRepository(db *gorm.DB) *GormUnacceptableUnitReportRepository {
	return &GormUnacceptableUnitReportRepository{db: db}
}

// Add persists a rejection entry.
func (r *GormUnacceptableUnitReportRepository) Add(ctx context.Context, item *report.UnacceptableUnitItem) error {
	dto := fromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllByShipment retrieves the rejection entries of a shipment.
func (r *GormUnacceptableUnitReportRepository) GetAllByShipment(ctx context.Context, shipmentID int64) ([]*report.UnacceptableUnitItem, error) {
	var dtos []UnacceptableUnitItemDTO
	if err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID).
		Order("carton_number, unit_number").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*report.UnacceptableUnitItem, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, toDomain(dto))
	}

	return items, nil
}

// DeleteAllByShipment drops the entries of a previous revalidation run.
func (r *GormUnacceptableUnitReportRepository) DeleteAllByShipment(ctx context.Context, shipmentID int64) error {
	return r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID).
		Delete(&UnacceptableUnitItemDTO{}).Error
}
