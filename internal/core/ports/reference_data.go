package ports

import (
	"context"

	"plasmashipping/internal/core/domain/model/criteria"
	"plasmashipping/internal/core/domain/model/customer"
	"plasmashipping/internal/core/domain/model/location"
	"plasmashipping/internal/core/domain/model/sysprop"
)

// LocationRepository loads collection-site reference data.
type LocationRepository interface {
	// GetByCode retrieves a location with its configuration properties.
	GetByCode(ctx context.Context, code string) (*location.Location, error)
}

// CriteriaRepository loads the customer shipment criteria configuration.
type CriteriaRepository interface {
	// FindProductCriteria retrieves the packing criteria configured for a
	// customer and product type. Returns nil when none are configured.
	FindProductCriteria(ctx context.Context, productType, customerCode string) (*criteria.ShipmentCriteria, error)

	// FindProductTypeByCode maps a product code to its registered product type.
	FindProductTypeByCode(ctx context.Context, productCode string) (*criteria.ProductType, error)

	// FindProductTypesByCustomer lists the product types a customer accepts.
	FindProductTypesByCustomer(ctx context.Context, customerCode string) ([]*criteria.ProductType, error)
}

// SyspropRepository loads the per-document system property sets.
type SyspropRepository interface {
	// GetAllByType retrieves every property of a document type
	// (e.g. RPS_CARTON_PACKING_SLIP).
	GetAllByType(ctx context.Context, propertyType string) ([]sysprop.Property, error)
}

// CustomerService resolves customer master data from the reference-data
// service.
type CustomerService interface {
	// GetByCode retrieves a customer by its code.
	GetByCode(ctx context.Context, code string) (*customer.Customer, error)
}
