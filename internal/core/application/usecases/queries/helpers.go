package queries

import (
	"context"

	"plasmashipping/internal/core/ports"
)

// resolveProductTypeDescription maps a product type code to the description
// registered for the customer. Falls back to the raw code when the customer
// has no matching registration.
func resolveProductTypeDescription(
	ctx context.Context,
	criteriaRepo ports.CriteriaRepository,
	customerCode string,
	productType string,
) string {
	types, err := criteriaRepo.FindProductTypesByCustomer(ctx, customerCode)
	if err != nil {
		return productType
	}
	for _, t := range types {
		if t.Code() == productType {
			return t.Description()
		}
	}
	return productType
}
