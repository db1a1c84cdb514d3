// Package customerrepo resolves customer master data from the reference-data
// tables replicated into the engine's database.
package customerrepo

import (
	"context"
	"errors"

	"plasmashipping/internal/core/domain/model/customer"

	"gorm.io/gorm"
)

// CustomerDTO represents a customer master-data record.
type CustomerDTO struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Code           string `gorm:"type:varchar(20);not null;uniqueIndex"`
	Name           string `gorm:"type:varchar(255);not null"`
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

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	return customer.NewCustomer(dto.Code, dto.Name, customer.Address{
		AddressLine1:   dto.AddressLine1,
		AddressLine2:   dto.AddressLine2,
		City:           dto.City,
		District:       dto.District,
		State:          dto.State,
		PostalCode:     dto.PostalCode,
		Country:        dto.Country,
		CountryCode:    dto.CountryCode,
		ContactName:    dto.ContactName,
		PhoneNumber:    dto.PhoneNumber,
		DepartmentName: dto.DepartmentName,
	})
}

// GormCustomerRepository implements CustomerService using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// GetByCode retrieves a customer by its code. Returns nil when the customer
// is not registered.
func (r *GormCustomerRepository) GetByCode(ctx context.Context, code string) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}
