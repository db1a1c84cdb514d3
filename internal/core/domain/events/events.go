// Package events defines the integration events published to the shipping
// topic when the carton and shipment lifecycle advances. Payloads are flat
// JSON snapshots; consumers must not need a follow-up query to act on them.
package events

import "time"

// Event names carried in the envelope header.
const (
	TypeShipmentCreated    = "RecoveredPlasmaShipmentCreated"
	TypeShipmentModified   = "RecoveredPlasmaShipmentModified"
	TypeShipmentProcessing = "RecoveredPlasmaShipmentProcessing"
	TypeShipmentClosed     = "RecoveredPlasmaShipmentClosed"
	TypeCartonCreated      = "RecoveredPlasmaCartonCreated"
	TypeCartonClosed       = "RecoveredPlasmaCartonClosed"
	TypeCartonRemoved      = "RecoveredPlasmaCartonRemoved"
	TypeCartonUnpacked     = "RecoveredPlasmaCartonItemUnpacked"
)

// DomainEvent is implemented by every published event payload.
type DomainEvent interface {
	EventType() string
	Key() string
}

// ShipmentCreated is published when a new shipment is opened.
type ShipmentCreated struct {
	ShipmentID     int64     `json:"shipmentId"`
	ShipmentNumber string    `json:"shipmentNumber"`
	LocationCode   string    `json:"locationCode"`
	CustomerCode   string    `json:"customerCode"`
	ProductType    string    `json:"productType"`
	ShipmentDate   time.Time `json:"shipmentDate"`
	EmployeeID     string    `json:"employeeId"`
}

func (e ShipmentCreated) EventType() string { return TypeShipmentCreated }
func (e ShipmentCreated) Key() string       { return e.ShipmentNumber }

// ShipmentModified is published when shipment attributes change.
type ShipmentModified struct {
	ShipmentID     int64     `json:"shipmentId"`
	ShipmentNumber string    `json:"shipmentNumber"`
	CustomerCode   string    `json:"customerCode"`
	ProductType    string    `json:"productType"`
	ShipmentDate   time.Time `json:"shipmentDate"`
	EmployeeID     string    `json:"employeeId"`
	Comments       string    `json:"comments,omitempty"`
}

func (e ShipmentModified) EventType() string { return TypeShipmentModified }
func (e ShipmentModified) Key() string       { return e.ShipmentNumber }

// ShipmentProcessing is published when a close request is accepted and the
// batch revalidation job should pick the shipment up.
type ShipmentProcessing struct {
	ShipmentID     int64  `json:"shipmentId"`
	ShipmentNumber string `json:"shipmentNumber"`
	LocationCode   string `json:"locationCode"`
	EmployeeID     string `json:"employeeId"`
}

func (e ShipmentProcessing) EventType() string { return TypeShipmentProcessing }
func (e ShipmentProcessing) Key() string       { return e.ShipmentNumber }

// ShipmentClosed is published when the batch revalidation closes a shipment.
type ShipmentClosed struct {
	ShipmentID     int64     `json:"shipmentId"`
	ShipmentNumber string    `json:"shipmentNumber"`
	CloseDate      time.Time `json:"closeDate"`
	TotalCartons   int       `json:"totalCartons"`
	TotalProducts  int       `json:"totalProducts"`
}

func (e ShipmentClosed) EventType() string { return TypeShipmentClosed }
func (e ShipmentClosed) Key() string       { return e.ShipmentNumber }

// CartonCreated is published when a carton is added to a shipment.
type CartonCreated struct {
	CartonID       int64  `json:"cartonId"`
	CartonNumber   string `json:"cartonNumber"`
	CartonSequence int    `json:"cartonSequence"`
	ShipmentID     int64  `json:"shipmentId"`
	ShipmentNumber string `json:"shipmentNumber"`
	EmployeeID     string `json:"employeeId"`
}

func (e CartonCreated) EventType() string { return TypeCartonCreated }
func (e CartonCreated) Key() string       { return e.CartonNumber }

// CartonClosed is published when a carton is sealed.
type CartonClosed struct {
	CartonID       int64  `json:"cartonId"`
	CartonNumber   string `json:"cartonNumber"`
	ShipmentID     int64  `json:"shipmentId"`
	ShipmentNumber string `json:"shipmentNumber"`
	TotalProducts  int    `json:"totalProducts"`
	EmployeeID     string `json:"employeeId"`
}

func (e CartonClosed) EventType() string { return TypeCartonClosed }
func (e CartonClosed) Key() string       { return e.CartonNumber }

// CartonRemoved is published when a carton is deleted from a shipment.
type CartonRemoved struct {
	CartonID       int64  `json:"cartonId"`
	CartonNumber   string `json:"cartonNumber"`
	ShipmentID     int64  `json:"shipmentId"`
	ShipmentNumber string `json:"shipmentNumber"`
	EmployeeID     string `json:"employeeId"`
}

func (e CartonRemoved) EventType() string { return TypeCartonRemoved }
func (e CartonRemoved) Key() string       { return e.CartonNumber }

// CartonUnpacked is published when a packed unit is removed from a carton.
type CartonUnpacked struct {
	CartonID     int64  `json:"cartonId"`
	CartonNumber string `json:"cartonNumber"`
	ShipmentID   int64  `json:"shipmentId"`
	UnitNumber   string `json:"unitNumber"`
	ProductCode  string `json:"productCode"`
	EmployeeID   string `json:"employeeId"`
}

func (e CartonUnpacked) EventType() string { return TypeCartonUnpacked }
func (e CartonUnpacked) Key() string       { return e.CartonNumber }
