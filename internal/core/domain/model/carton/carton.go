package carton

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"plasmashipping/internal/pkg/errs"
)

var (
	// ErrCartonIsNotConstructed is returned when a Carton instance was not created
	// through the NewCarton factory method or restored via FromRepository.
	ErrCartonIsNotConstructed = errors.New("Carton must be created via NewCarton constructor")
)

// MaxRepackCommentsLength caps the free-text comments captured when a carton
// is reopened for repacking.
const MaxRepackCommentsLength = 250

// Carton represents a physical container of plasma units within a shipment.
// It is an aggregate root managing the pack, verify, close and repack cycle.
//
// Carton follows these invariants:
//   - Must belong to a shipment and carry a generated carton number
//   - Sequence numbers are assigned per shipment and never reused
//   - Items can only be packed while the carton is open
//   - Closing requires at least the customer minimum of fully verified units
//   - A closed carton cannot be removed from its shipment
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Carton struct {
	id               int64
	cartonNumber     string
	shipmentID       int64
	cartonSequence   int
	status           Status
	items            []*CartonItem
	minUnits         int
	maxUnits         int
	createEmployeeID string
	closeEmployeeID  string
	closeDate        *time.Time
	repackEmployeeID string
	repackDate       *time.Time
	repackComments   string
	deleteEmployeeID string
	deleteDate       *time.Time
	createDate       time.Time
	modificationDate time.Time

	isConstructed bool
}

// NewCarton creates an open Carton attached to a shipment. The carton number
// is generated by the numbering service before construction; minUnits and
// maxUnits come from the customer's shipment criteria.
func NewCarton(
	cartonNumber string,
	shipmentID int64,
	cartonSequence int,
	createEmployeeID string,
	minUnits int,
	maxUnits int,
) (*Carton, error) {
	carton := &Carton{
		status:        Open,
		createDate:    time.Now().UTC(),
		minUnits:      minUnits,
		maxUnits:      maxUnits,
		isConstructed: true,
	}

	if err := errors.Join(
		carton.setCartonNumber(cartonNumber),
		carton.setShipmentID(shipmentID),
		carton.setCartonSequence(cartonSequence),
		carton.setCreateEmployeeID(createEmployeeID),
	); err != nil {
		return nil, err
	}

	return carton, nil
}

// FromRepository restores a Carton from persisted state. Restoration bypasses
// creation-time validation but still enforces the status and identity
// invariants.
func FromRepository(
	id int64,
	cartonNumber string,
	shipmentID int64,
	cartonSequence int,
	status Status,
	items []*CartonItem,
	minUnits int,
	maxUnits int,
	createEmployeeID string,
	closeEmployeeID string,
	closeDate *time.Time,
	repackEmployeeID string,
	repackDate *time.Time,
	repackComments string,
	createDate time.Time,
	modificationDate time.Time,
) (*Carton, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	carton := &Carton{
		id:               id,
		status:           status,
		items:            items,
		minUnits:         minUnits,
		maxUnits:         maxUnits,
		closeEmployeeID:  closeEmployeeID,
		closeDate:        closeDate,
		repackEmployeeID: repackEmployeeID,
		repackDate:       repackDate,
		repackComments:   repackComments,
		createDate:       createDate,
		modificationDate: modificationDate,
		isConstructed:    true,
	}

	if err := errors.Join(
		carton.setCartonNumber(cartonNumber),
		carton.setShipmentID(shipmentID),
		carton.setCartonSequence(cartonSequence),
		carton.setCreateEmployeeID(createEmployeeID),
	); err != nil {
		return nil, err
	}

	return carton, nil
}

// Validate ensures the Carton instance was properly constructed.
func (c *Carton) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartonIsNotConstructed
	}
	return nil
}

func (c *Carton) ID() int64 {
	return c.id
}

// SetID assigns the persistence identifier after the initial insert.
func (c *Carton) SetID(id int64) {
	c.id = id
}

func (c *Carton) CartonNumber() string {
	return c.cartonNumber
}

func (c *Carton) ShipmentID() int64 {
	return c.shipmentID
}

func (c *Carton) CartonSequence() int {
	return c.cartonSequence
}

func (c *Carton) Status() Status {
	return c.status
}

// Items returns the packed items in pack order.
func (c *Carton) Items() []*CartonItem {
	return c.items
}

func (c *Carton) MinUnits() int {
	return c.minUnits
}

func (c *Carton) MaxUnits() int {
	return c.maxUnits
}

func (c *Carton) CreateEmployeeID() string {
	return c.createEmployeeID
}

func (c *Carton) CloseEmployeeID() string {
	return c.closeEmployeeID
}

func (c *Carton) CloseDate() *time.Time {
	return c.closeDate
}

func (c *Carton) RepackEmployeeID() string {
	return c.repackEmployeeID
}

func (c *Carton) RepackDate() *time.Time {
	return c.repackDate
}

func (c *Carton) RepackComments() string {
	return c.repackComments
}

func (c *Carton) DeleteEmployeeID() string {
	return c.deleteEmployeeID
}

func (c *Carton) DeleteDate() *time.Time {
	return c.deleteDate
}

func (c *Carton) CreateDate() time.Time {
	return c.createDate
}

func (c *Carton) ModificationDate() time.Time {
	return c.modificationDate
}

// TotalProducts returns the number of items currently packed.
func (c *Carton) TotalProducts() int {
	return len(c.items)
}

// TotalWeight sums the weight of all packed items.
func (c *Carton) TotalWeight() int {
	total := 0
	for _, item := range c.items {
		total += item.Weight()
	}
	return total
}

// TotalVolume sums the volume of all packed items.
func (c *Carton) TotalVolume() int {
	total := 0
	for _, item := range c.items {
		total += item.Volume()
	}
	return total
}

// FindItem looks up a packed item by unit number and product code.
func (c *Carton) FindItem(unitNumber, productCode string) (*CartonItem, bool) {
	for _, item := range c.items {
		if item.UnitNumber() == unitNumber && item.ProductCode() == productCode {
			return item, true
		}
	}
	return nil, false
}

// PackItem appends a validated item to an open carton.
func (c *Carton) PackItem(item *CartonItem) error {
	if item == nil {
		return errs.NewValueIsRequiredError("item")
	}
	if c.status != Open {
		return errs.NewValueIsInvalidErrorWithCause(
			"carton status",
			fmt.Errorf("carton %s is not open and cannot be packed", c.cartonNumber),
		)
	}
	c.items = append(c.items, item)
	c.touch()
	return nil
}

// CanVerify reports whether the carton is ready for the verification scan.
// Verification requires an open carton holding at least the customer minimum.
func (c *Carton) CanVerify() bool {
	return c.status == Open && len(c.items) >= c.minUnits
}

// MarkItemVerified transitions a packed item to VERIFIED during the second
// scan pass.
func (c *Carton) MarkItemVerified(unitNumber, productCode string) (*CartonItem, error) {
	if !c.CanVerify() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"carton",
			fmt.Errorf("carton %s cannot be verified", c.cartonNumber),
		)
	}

	item, ok := c.FindItem(unitNumber, productCode)
	if !ok {
		return nil, errs.NewObjectNotFoundError("unitNumber", unitNumber)
	}

	item.markVerified()
	c.touch()
	return item, nil
}

// ResetVerification returns every item to the PACKED status. Called when a
// verification scan is rejected and the carton contents must be rechecked.
func (c *Carton) ResetVerification() {
	for _, item := range c.items {
		item.resetVerification()
	}
	c.touch()
}

// CanClose reports whether the carton satisfies all closing requirements:
// open status, at least the customer minimum of units, and every unit
// verified.
func (c *Carton) CanClose() bool {
	if c.status != Open || len(c.items) == 0 || len(c.items) < c.minUnits {
		return false
	}
	for _, item := range c.items {
		if !item.IsVerified() {
			return false
		}
	}
	return true
}

// Close seals the carton. After closing, the item set is immutable and the
// packing slip and label become printable.
func (c *Carton) Close(closeEmployeeID string) error {
	if closeEmployeeID == "" {
		return errs.NewValueIsRequiredError("closeEmployeeId")
	}
	if !c.CanClose() {
		return errs.NewValueIsInvalidErrorWithCause(
			"carton",
			fmt.Errorf("carton %s cannot be closed", c.cartonNumber),
		)
	}

	newStatus, err := c.status.Close()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	c.status = newStatus
	c.closeEmployeeID = closeEmployeeID
	c.closeDate = &now
	c.touch()
	return nil
}

// CanPrint reports whether carton documents can be generated. Only closed
// cartons print.
func (c *Carton) CanPrint() bool {
	return c.status == Closed
}

// MarkAsRepack flags the carton for repacking after its contents failed
// batch revalidation. The close audit fields are cleared.
func (c *Carton) MarkAsRepack() error {
	newStatus, err := c.status.MarkRepack()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.closeEmployeeID = ""
	c.closeDate = nil
	c.touch()
	return nil
}

// MarkAsReopen reopens a repack-flagged carton for packing. All previously
// packed items are discarded; the operator's comments are recorded for the
// audit trail.
func (c *Carton) MarkAsReopen(repackEmployeeID, comments string) error {
	if repackEmployeeID == "" {
		return errs.NewValueIsRequiredError("repackEmployeeId")
	}
	comments = strings.TrimSpace(comments)
	if len(comments) > MaxRepackCommentsLength {
		return errs.NewValueIsOutOfRangeError("comments", len(comments), 0, MaxRepackCommentsLength)
	}

	newStatus, err := c.status.Reopen()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	c.status = newStatus
	c.items = nil
	c.repackEmployeeID = repackEmployeeID
	c.repackDate = &now
	c.repackComments = comments
	c.touch()
	return nil
}

// RemoveItem unpacks a single item. Removing an item invalidates any prior
// verification, so remaining items are reset to PACKED.
func (c *Carton) RemoveItem(unitNumber, productCode string) (*CartonItem, error) {
	if c.status != Open {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"carton status",
			fmt.Errorf("carton %s is not open and cannot be modified", c.cartonNumber),
		)
	}

	for idx, item := range c.items {
		if item.UnitNumber() == unitNumber && item.ProductCode() == productCode {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			c.ResetVerification()
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("unitNumber", unitNumber)
}

// Remove deletes the carton from its shipment. Only the carton with the
// highest sequence can be removed, so sequence numbers stay contiguous.
func (c *Carton) Remove(deleteEmployeeID string, shipmentCanModify bool, shipmentTotalCartons int) error {
	if deleteEmployeeID == "" {
		return errs.NewValueIsRequiredError("deleteEmployeeId")
	}
	if c.status == Closed {
		return errs.NewValueIsInvalidErrorWithCause(
			"carton status",
			fmt.Errorf("carton %s is closed and cannot be removed", c.cartonNumber),
		)
	}
	if !shipmentCanModify {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment status",
			fmt.Errorf("shipment %d is closed and cannot be modified", c.shipmentID),
		)
	}
	if c.cartonSequence != shipmentTotalCartons {
		return errs.NewValueIsInvalidErrorWithCause(
			"cartonSequence",
			fmt.Errorf("carton %s is not the last carton of the shipment", c.cartonNumber),
		)
	}

	newStatus, err := c.status.Remove()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	c.status = newStatus
	c.items = nil
	c.deleteEmployeeID = deleteEmployeeID
	c.deleteDate = &now
	c.touch()
	return nil
}

func (c *Carton) touch() {
	c.modificationDate = time.Now().UTC()
}

func (c *Carton) setCartonNumber(cartonNumber string) error {
	if cartonNumber == "" {
		return errs.NewValueIsRequiredError("cartonNumber")
	}
	c.cartonNumber = cartonNumber
	return nil
}

func (c *Carton) setShipmentID(shipmentID int64) error {
	if shipmentID == 0 {
		return errs.NewValueIsRequiredError("shipmentId")
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *Carton) setCartonSequence(cartonSequence int) error {
	if cartonSequence <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cartonSequence",
			fmt.Errorf("%d is not greater than 0", cartonSequence),
		)
	}
	c.cartonSequence = cartonSequence
	return nil
}

func (c *Carton) setCreateEmployeeID(createEmployeeID string) error {
	if createEmployeeID == "" {
		return errs.NewValueIsRequiredError("createEmployeeId")
	}
	c.createEmployeeID = createEmployeeID
	return nil
}
