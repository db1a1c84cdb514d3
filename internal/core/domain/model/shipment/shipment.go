package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through the NewShipment factory method or restored via
	// FromRepository.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
)

// MaxModifyCommentsLength caps the free-text comments captured when a
// shipment is modified.
const MaxModifyCommentsLength = 250

// Shipment represents a recovered plasma shipment bound for a customer. It is
// the aggregate root coordinating cartons through the pack, close and batch
// revalidation cycle.
//
// Shipment follows these invariants:
//   - Must carry a generated shipment number and a customer snapshot
//   - Ship dates move only forward; modification requires a future date
//   - Closing requires at least one carton and every carton closed
//   - Processing and closed shipments reject all modifications
type Shipment struct {
	id                            int64
	shipmentNumber                string
	locationCode                  string
	productType                   string
	status                        Status
	customer                      ShipmentCustomer
	shipmentDate                  time.Time
	cartonTareWeight              float64
	transportationReferenceNumber string
	createEmployeeID              string
	closeEmployeeID               string
	closeDate                     *time.Time
	reportStatus                  ReportStatus
	lastReportRunDate             *time.Time
	cartons                       []*carton.Carton
	history                       []*History
	createDate                    time.Time
	modificationDate              time.Time

	isConstructed bool
}

// NewShipment creates an open Shipment. The shipment number is generated by
// the numbering service and the customer snapshot is resolved before
// construction.
func NewShipment(
	shipmentNumber string,
	locationCode string,
	cust ShipmentCustomer,
	productType string,
	shipmentDate time.Time,
	cartonTareWeight float64,
	transportationReferenceNumber string,
	createEmployeeID string,
) (*Shipment, error) {
	shipment := &Shipment{
		status:                        Open,
		shipmentDate:                  shipmentDate,
		transportationReferenceNumber: transportationReferenceNumber,
		createDate:                    time.Now().UTC(),
		isConstructed:                 true,
	}

	if err := errors.Join(
		shipment.setShipmentNumber(shipmentNumber),
		shipment.setLocationCode(locationCode),
		shipment.setCustomer(cust),
		shipment.setProductType(productType),
		shipment.setCartonTareWeight(cartonTareWeight),
		shipment.setCreateEmployeeID(createEmployeeID),
	); err != nil {
		return nil, err
	}

	return shipment, nil
}

// FromRepository restores a Shipment from persisted state.
func FromRepository(
	id int64,
	shipmentNumber string,
	locationCode string,
	cust ShipmentCustomer,
	productType string,
	status Status,
	shipmentDate time.Time,
	cartonTareWeight float64,
	transportationReferenceNumber string,
	createEmployeeID string,
	closeEmployeeID string,
	closeDate *time.Time,
	reportStatus ReportStatus,
	lastReportRunDate *time.Time,
	cartons []*carton.Carton,
	createDate time.Time,
	modificationDate time.Time,
) (*Shipment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	shipment := &Shipment{
		id:                            id,
		status:                        status,
		shipmentDate:                  shipmentDate,
		transportationReferenceNumber: transportationReferenceNumber,
		closeEmployeeID:               closeEmployeeID,
		closeDate:                     closeDate,
		reportStatus:                  reportStatus,
		lastReportRunDate:             lastReportRunDate,
		cartons:                       cartons,
		createDate:                    createDate,
		modificationDate:              modificationDate,
		isConstructed:                 true,
	}

	if err := errors.Join(
		shipment.setShipmentNumber(shipmentNumber),
		shipment.setLocationCode(locationCode),
		shipment.setCustomer(cust),
		shipment.setProductType(productType),
		shipment.setCartonTareWeight(cartonTareWeight),
		shipment.setCreateEmployeeID(createEmployeeID),
	); err != nil {
		return nil, err
	}

	return shipment, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) ID() int64 {
	return s.id
}

// SetID assigns the persistence identifier after the initial insert.
func (s *Shipment) SetID(id int64) {
	s.id = id
}

func (s *Shipment) ShipmentNumber() string {
	return s.shipmentNumber
}

func (s *Shipment) LocationCode() string {
	return s.locationCode
}

func (s *Shipment) ProductType() string {
	return s.productType
}

func (s *Shipment) Status() Status {
	return s.status
}

func (s *Shipment) Customer() ShipmentCustomer {
	return s.customer
}

func (s *Shipment) ShipmentDate() time.Time {
	return s.shipmentDate
}

func (s *Shipment) CartonTareWeight() float64 {
	return s.cartonTareWeight
}

func (s *Shipment) TransportationReferenceNumber() string {
	return s.transportationReferenceNumber
}

func (s *Shipment) CreateEmployeeID() string {
	return s.createEmployeeID
}

func (s *Shipment) CloseEmployeeID() string {
	return s.closeEmployeeID
}

func (s *Shipment) CloseDate() *time.Time {
	return s.closeDate
}

func (s *Shipment) ReportStatus() ReportStatus {
	return s.reportStatus
}

func (s *Shipment) LastReportRunDate() *time.Time {
	return s.lastReportRunDate
}

// Cartons returns the shipment's cartons in sequence order.
func (s *Shipment) Cartons() []*carton.Carton {
	return s.cartons
}

// History returns the modification audit trail in append order.
func (s *Shipment) History() []*History {
	return s.history
}

func (s *Shipment) CreateDate() time.Time {
	return s.createDate
}

func (s *Shipment) ModificationDate() time.Time {
	return s.modificationDate
}

// TotalCartons returns the number of cartons attached to the shipment.
func (s *Shipment) TotalCartons() int {
	return len(s.cartons)
}

// TotalProducts sums the packed items across all cartons.
func (s *Shipment) TotalProducts() int {
	total := 0
	for _, c := range s.cartons {
		total += c.TotalProducts()
	}
	return total
}

// CanModify reports whether the shipment accepts changes to itself or its
// cartons. Processing and closed shipments are immutable.
func (s *Shipment) CanModify() bool {
	return s.status != Processing && s.status != Closed
}

// CanClose reports whether a close request is accepted: the shipment holds at
// least one carton, every carton is closed, and no close is already underway.
func (s *Shipment) CanClose() bool {
	if !s.CanModify() || len(s.cartons) == 0 {
		return false
	}
	for _, c := range s.cartons {
		if c.Status() != carton.Closed {
			return false
		}
	}
	return true
}

// MarkAsInProgress records packing activity on the shipment.
func (s *Shipment) MarkAsInProgress() error {
	newStatus, err := s.status.MarkInProgress()
	if err != nil {
		return err
	}
	if newStatus != s.status {
		s.status = newStatus
		s.touch()
	}
	return nil
}

// Modify updates the mutable shipment attributes, re-snapshots the customer
// and appends an audit record. The ship date must be strictly in the future.
func (s *Shipment) Modify(
	cust ShipmentCustomer,
	productType string,
	shipmentDate time.Time,
	cartonTareWeight float64,
	transportationReferenceNumber string,
	employeeID string,
	comments string,
) (*History, error) {
	if !s.CanModify() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"shipment status",
			fmt.Errorf("shipment %s is %s and cannot be modified", s.shipmentNumber, s.status),
		)
	}
	if employeeID == "" {
		return nil, errs.NewValueIsRequiredError("employeeId")
	}
	comments = strings.TrimSpace(comments)
	if len(comments) > MaxModifyCommentsLength {
		return nil, errs.NewValueIsOutOfRangeError("comments", len(comments), 0, MaxModifyCommentsLength)
	}
	if !toDate(shipmentDate).After(toDate(time.Now())) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"shipmentDate",
			errors.New("Shipment date must be in the future"),
		)
	}

	if err := errors.Join(
		s.setCustomer(cust),
		s.setProductType(productType),
		s.setCartonTareWeight(cartonTareWeight),
	); err != nil {
		return nil, err
	}

	s.shipmentDate = shipmentDate
	s.transportationReferenceNumber = transportationReferenceNumber
	s.touch()

	record, err := NewHistory(s.id, employeeID, comments)
	if err != nil {
		return nil, err
	}
	s.history = append(s.history, record)
	return record, nil
}

// MarkAsProcessing accepts a close request and hands the shipment to the
// batch revalidation. The ship date recorded at close time cannot be in the
// past.
func (s *Shipment) MarkAsProcessing(shipDate time.Time, closeEmployeeID string) error {
	if closeEmployeeID == "" {
		return errs.NewValueIsRequiredError("closeEmployeeId")
	}
	if toDate(shipDate).Before(toDate(time.Now())) {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipDate",
			errors.New("Ship date cannot be in the past"),
		)
	}
	if !s.CanClose() {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment",
			fmt.Errorf("shipment %s cannot be closed", s.shipmentNumber),
		)
	}

	s.status = Processing
	s.shipmentDate = shipDate
	s.closeEmployeeID = closeEmployeeID
	s.reportStatus = ReportStatusNone
	s.lastReportRunDate = nil
	s.touch()
	return nil
}

// CompleteProcessing records the outcome of the batch revalidation. With no
// unacceptable units the shipment closes; otherwise it returns to InProgress
// so the flagged cartons can be repacked.
func (s *Shipment) CompleteProcessing(hasUnacceptableUnits bool) {
	now := time.Now().UTC()
	if hasUnacceptableUnits {
		s.status = InProgress
		s.closeDate = nil
		s.closeEmployeeID = ""
		s.reportStatus = ReportStatusCompletedFailed
	} else {
		s.status = Closed
		s.closeDate = &now
		s.reportStatus = ReportStatusCompleted
	}
	s.lastReportRunDate = &now
	s.touch()
}

// MarkAsProcessingError returns the shipment to InProgress after the batch
// revalidation aborted on a system error.
func (s *Shipment) MarkAsProcessingError() {
	now := time.Now().UTC()
	s.status = InProgress
	s.closeDate = nil
	s.closeEmployeeID = ""
	s.reportStatus = ReportStatusErrorProcessing
	s.lastReportRunDate = &now
	s.touch()
}

// CanPrintUnacceptableUnitReport reports whether the unacceptable unit report
// can be generated.
func (s *Shipment) CanPrintUnacceptableUnitReport() error {
	if s.reportStatus == ReportStatusNone {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment",
			errors.New("Unacceptable units report not available"),
		)
	}
	if s.status == Processing {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment",
			errors.New("Unacceptable units report still running"),
		)
	}
	return nil
}

// CanPrintShippingSummary reports whether the shipping summary report can be
// generated. Only closed shipments print.
func (s *Shipment) CanPrintShippingSummary() error {
	if s.status != Closed {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment",
			errors.New("Shipment is not closed and cannot be printed"),
		)
	}
	return nil
}

func (s *Shipment) touch() {
	s.modificationDate = time.Now().UTC()
}

func toDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *Shipment) setShipmentNumber(shipmentNumber string) error {
	if shipmentNumber == "" {
		return errs.NewValueIsRequiredError("shipmentNumber")
	}
	s.shipmentNumber = shipmentNumber
	return nil
}

func (s *Shipment) setLocationCode(locationCode string) error {
	if locationCode == "" {
		return errs.NewValueIsRequiredError("locationCode")
	}
	s.locationCode = locationCode
	return nil
}

func (s *Shipment) setCustomer(cust ShipmentCustomer) error {
	if err := cust.Validate(); err != nil {
		return err
	}
	s.customer = cust
	return nil
}

func (s *Shipment) setProductType(productType string) error {
	if productType == "" {
		return errs.NewValueIsRequiredError("productType")
	}
	s.productType = productType
	return nil
}

func (s *Shipment) setCartonTareWeight(cartonTareWeight float64) error {
	if cartonTareWeight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cartonTareWeight",
			fmt.Errorf("%v is not greater than 0", cartonTareWeight),
		)
	}
	s.cartonTareWeight = cartonTareWeight
	return nil
}

func (s *Shipment) setCreateEmployeeID(createEmployeeID string) error {
	if createEmployeeID == "" {
		return errs.NewValueIsRequiredError("createEmployeeId")
	}
	s.createEmployeeID = createEmployeeID
	return nil
}
