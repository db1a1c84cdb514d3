// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"time"

	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/core/domain/model/customer"
	"plasmashipping/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// The customer snapshot is denormalized into the shipment row so that later
// customer master-data changes never alter shipped documents.
type ShipmentDTO struct {
	ID                            int64              `gorm:"primaryKey"`
	ShipmentNumber                string             `gorm:"type:varchar(50);not null;uniqueIndex"`
	LocationCode                  string             `gorm:"type:varchar(10);not null;index"`
	CustomerCode                  string             `gorm:"type:varchar(20);not null"`
	CustomerName                  string             `gorm:"type:varchar(255);not null"`
	Customer                      CustomerAddressDTO `gorm:"embedded;embeddedPrefix:customer_"`
	ProductType                   string             `gorm:"type:varchar(50);not null"`
	Status                        string             `gorm:"type:varchar(20);not null;index"`
	ShipmentDate                  time.Time          `gorm:"not null"`
	CartonTareWeight              float64            `gorm:"not null"`
	TransportationReferenceNumber string             `gorm:"type:varchar(100)"`
	CreateEmployeeID              string             `gorm:"type:varchar(50);not null"`
	CloseEmployeeID               string             `gorm:"type:varchar(50)"`
	CloseDate                     *time.Time         `gorm:""`
	ReportStatus                  string             `gorm:"type:varchar(20)"`
	LastReportRunDate             *time.Time         `gorm:""`
	CreateDate                    time.Time          `gorm:"not null"`
	ModificationDate              time.Time          `gorm:"not null"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// CustomerAddressDTO represents the embedded customer ship-to address within
// the shipment table.
type CustomerAddressDTO struct {
	AddressLine1   string `gorm:"type:varchar(255)"`
	AddressLine2   string `gorm:"type:varchar(255)"`
	City           string `gorm:"type:varchar(100)"`
	District       string `gorm:"type:varchar(100)"`
	State          string `gorm:"type:varchar(50)"`
	PostalCode     string `gorm:"type:varchar(20)"`
	Country        string `gorm:"type:varchar(100)"`
	CountryCode    string `gorm:"type:varchar(10)"`
	ContactName    string `gorm:"type:varchar(255)"`
	PhoneNumber    string `gorm:"type:varchar(50)"`
	DepartmentName string `gorm:"type:varchar(255)"`
}

// HistoryDTO represents the database structure for the shipment modification
// audit trail.
type HistoryDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ShipmentID int64     `gorm:"not null;index"`
	EmployeeID string    `gorm:"type:varchar(50);not null"`
	Comments   string    `gorm:"type:text"`
	CreateDate time.Time `gorm:"not null"`
}

// TableName specifies the database table name for audit records.
// Overrides GORM's default naming convention to use "shipment_history".
func (HistoryDTO) TableName() string {
	return "shipment_history"
}

// fromDomain converts a shipment domain aggregate to its database representation.
// Cartons are persisted through their own repository and are not mapped here.
func fromDomain(s *shipment.Shipment) ShipmentDTO {
	address := s.Customer().Address()

	return ShipmentDTO{
		ID:             s.ID(),
		ShipmentNumber: s.ShipmentNumber(),
		LocationCode:   s.LocationCode(),
		CustomerCode:   s.Customer().Code(),
		CustomerName:   s.Customer().Name(),
		Customer: CustomerAddressDTO{
			AddressLine1:   address.AddressLine1,
			AddressLine2:   address.AddressLine2,
			City:           address.City,
			District:       address.District,
			State:          address.State,
			PostalCode:     address.PostalCode,
			Country:        address.Country,
			CountryCode:    address.CountryCode,
			ContactName:    address.ContactName,
			PhoneNumber:    address.PhoneNumber,
			DepartmentName: address.DepartmentName,
		},
		ProductType:                   s.ProductType(),
		Status:                        s.Status().String(),
		ShipmentDate:                  s.ShipmentDate(),
		CartonTareWeight:              s.CartonTareWeight(),
		TransportationReferenceNumber: s.TransportationReferenceNumber(),
		CreateEmployeeID:              s.CreateEmployeeID(),
		CloseEmployeeID:               s.CloseEmployeeID(),
		CloseDate:                     s.CloseDate(),
		ReportStatus:                  s.ReportStatus().String(),
		LastReportRunDate:             s.LastReportRunDate(),
		CreateDate:                    s.CreateDate(),
		ModificationDate:              s.ModificationDate(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate. The caller
// supplies the cartons loaded alongside the shipment row.
func toDomain(dto ShipmentDTO, cartons []*carton.Carton) (*shipment.Shipment, error) {
	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	reportStatus, err := shipment.ReportStatusFromString(dto.ReportStatus)
	if err != nil {
		return nil, err
	}

	cust, err := shipment.CustomerFromDetails(dto.CustomerCode, dto.CustomerName, customer.Address{
		AddressLine1:   dto.Customer.AddressLine1,
		AddressLine2:   dto.Customer.AddressLine2,
		City:           dto.Customer.City,
		District:       dto.Customer.District,
		State:          dto.Customer.State,
		PostalCode:     dto.Customer.PostalCode,
		Country:        dto.Customer.Country,
		CountryCode:    dto.Customer.CountryCode,
		ContactName:    dto.Customer.ContactName,
		PhoneNumber:    dto.Customer.PhoneNumber,
		DepartmentName: dto.Customer.DepartmentName,
	})
	if err != nil {
		return nil, err
	}

	return shipment.FromRepository(
		dto.ID,
		dto.ShipmentNumber,
		dto.LocationCode,
		cust,
		dto.ProductType,
		status,
		dto.ShipmentDate,
		dto.CartonTareWeight,
		dto.TransportationReferenceNumber,
		dto.CreateEmployeeID,
		dto.CloseEmployeeID,
		dto.CloseDate,
		reportStatus,
		dto.LastReportRunDate,
		cartons,
		dto.CreateDate,
		dto.ModificationDate,
	)
}

// historyFromDomain converts an audit record to its database representation.
func historyFromDomain(record *shipment.History) HistoryDTO {
	return HistoryDTO{
		ID:         record.ID(),
		ShipmentID: record.ShipmentID(),
		EmployeeID: record.EmployeeID(),
		Comments:   record.Comments(),
		CreateDate: record.CreateDate(),
	}
}
