package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShipmentsQueryHandler reads the shipment list directly from the
// database. Carton counts exclude removed cartons.
type GetShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsQueryHandler creates a handler for shipment list queries.
func NewGetShipmentsQueryHandler(db *gorm.DB) GetShipmentsQueryHandler {
	return GetShipmentsQueryHandler{db: db}
}

// Handle executes the list query. Results are sorted by creation date with
// the newest shipment first.
func (h GetShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsQuery,
) ([]GetShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			s.id,
			s.shipment_number,
			s.status,
			s.customer_code,
			s.customer_name,
			s.product_type,
			s.shipment_date,
			(SELECT COUNT(*) FROM cartons c WHERE c.shipment_id = s.id AND c.status != 'REMOVED'),
			s.create_date
		FROM shipments s
		WHERE s.location_code = ?`
	args := []any{query.LocationCode()}

	if query.Status() != "" {
		sql += ` AND s.status = ?`
		args = append(args, query.Status())
	}
	if query.DateFrom() != nil {
		sql += ` AND s.shipment_date >= ?`
		args = append(args, *query.DateFrom())
	}
	if query.DateTo() != nil {
		sql += ` AND s.shipment_date <= ?`
		args = append(args, *query.DateTo())
	}
	sql += ` ORDER BY s.create_date DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]GetShipmentsQueryResponse, 0)
	for rows.Next() {
		var row GetShipmentsQueryResponse
		if err := rows.Scan(
			&row.ShipmentID,
			&row.ShipmentNumber,
			&row.Status,
			&row.CustomerCode,
			&row.CustomerName,
			&row.ProductType,
			&row.ShipmentDate,
			&row.TotalCartons,
			&row.CreateDate,
		); err != nil {
			return nil, err
		}
		shipments = append(shipments, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
