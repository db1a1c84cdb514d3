package shipment

import (
	"time"

	"plasmashipping/internal/pkg/errs"
)

// History is an append-only audit record of a shipment modification.
type History struct {
	id         int64
	shipmentID int64
	employeeID string
	comments   string
	createDate time.Time
}

// NewHistory creates an audit record for a modification made by an employee.
func NewHistory(shipmentID int64, employeeID, comments string) (*History, error) {
	if shipmentID == 0 {
		return nil, errs.NewValueIsRequiredError("shipmentId")
	}
	if employeeID == "" {
		return nil, errs.NewValueIsRequiredError("employeeId")
	}
	return &History{
		shipmentID: shipmentID,
		employeeID: employeeID,
		comments:   comments,
		createDate: time.Now().UTC(),
	}, nil
}

// HistoryFromRepository restores an audit record from persisted state.
func HistoryFromRepository(id, shipmentID int64, employeeID, comments string, createDate time.Time) *History {
	return &History{
		id:         id,
		shipmentID: shipmentID,
		employeeID: employeeID,
		comments:   comments,
		createDate: createDate,
	}
}

func (h *History) ID() int64 {
	return h.id
}

func (h *History) ShipmentID() int64 {
	return h.shipmentID
}

func (h *History) EmployeeID() string {
	return h.employeeID
}

func (h *History) Comments() string {
	return h.comments
}

func (h *History) CreateDate() time.Time {
	return h.createDate
}
