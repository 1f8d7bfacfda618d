package order

import (
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemIsNotConstructed is returned when an Item was not created via NewItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem")
)

// Order represents a pizza order in the system. It is the aggregate root that
// manages the order lifecycle from creation through preparation to handover.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and tracking code
//   - Must have at least one item; items never change after creation
//   - Status only advances along Pending -> InPreparation -> Ready -> Completed
//   - startedAt is non-nil iff the order has entered InPreparation
//   - completedAt is non-nil iff the order is Completed
//   - Can only be created through NewOrder or RestoreOrder
//
// The version field supports optimistic concurrency: repository updates
// compare-and-swap on it, so two concurrent mutators of the same order
// cannot both win.
type Order struct {
	// id is the internal unique identifier, never shown to customers
	id kernel.UUID

	// code is the public tracking token, generated once at creation
	code kernel.TrackingCode

	// items are the order lines, fixed at creation
	items []Item

	// status is the current state in the order lifecycle
	status Status

	// createdAt is stamped once at creation
	createdAt time.Time

	// startedAt is stamped when the kitchen claims the order (nil before)
	startedAt *time.Time

	// completedAt is stamped on handover (nil before)
	completedAt *time.Time

	// version is the optimistic concurrency token, bumped on every persisted update
	version int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with createdAt stamped to now.
//
// Parameters:
//   - id: internal unique identifier (must be a valid UUID)
//   - code: freshly generated tracking code
//   - items: at least one validated order line
//
// The item slice is copied, so callers cannot mutate the order afterwards.
func NewOrder(id kernel.UUID, code kernel.TrackingCode, items []Item) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCode(code),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence.
// Unlike NewOrder it accepts any valid status and the stored timestamps,
// and verifies the timestamp/status consistency invariants.
func RestoreOrder(
	id kernel.UUID,
	code kernel.TrackingCode,
	items []Item,
	status Status,
	createdAt time.Time,
	startedAt *time.Time,
	completedAt *time.Time,
	version int,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		startedAt:     startedAt,
		completedAt:   completedAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCode(code),
		order.setItems(items),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	if (startedAt != nil) != (status == InPreparation || status == Ready || status == Completed) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"startedAt",
			fmt.Errorf("startedAt presence does not match status %s", status),
		)
	}
	if (completedAt != nil) != (status == Completed) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"completedAt",
			fmt.Errorf("completedAt presence does not match status %s", status),
		)
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's internal unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the public tracking code.
func (o *Order) Code() kernel.TrackingCode {
	return o.code
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StartedAt returns when the kitchen claimed the order, or nil if it has
// not entered preparation yet.
func (o *Order) StartedAt() *time.Time {
	if o.startedAt == nil {
		return nil
	}
	t := *o.startedAt
	return &t
}

// CompletedAt returns when the order was handed over, or nil if not completed.
func (o *Order) CompletedAt() *time.Time {
	if o.completedAt == nil {
		return nil
	}
	t := *o.completedAt
	return &t
}

// Version returns the optimistic concurrency token held when the order
// was loaded.
func (o *Order) Version() int {
	return o.version
}

// StartPreparation transitions the order from Pending to InPreparation and
// stamps startedAt with the given time. This is the claim step of take-next:
// the status check plus the repository's version check together guarantee
// an order is claimed at most once.
//
// Returns an *errs.IllegalTransitionError if the order is not Pending.
func (o *Order) StartPreparation(now time.Time) error {
	newStatus, err := o.status.TransitionTo(InPreparation)
	if err != nil {
		return err
	}

	o.status = newStatus
	startedAt := now.UTC()
	o.startedAt = &startedAt
	return nil
}

// MarkReady transitions the order from InPreparation to Ready.
// No timestamp is stamped for this transition.
//
// Returns an *errs.IllegalTransitionError if the order is not InPreparation.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.TransitionTo(Ready)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete transitions the order from Ready to Completed and stamps
// completedAt with the given time. Completed is the final state; the order
// remains as a historical record.
//
// Returns an *errs.IllegalTransitionError if the order is not Ready.
func (o *Order) Complete(now time.Time) error {
	newStatus, err := o.status.TransitionTo(Completed)
	if err != nil {
		return err
	}

	o.status = newStatus
	completedAt := now.UTC()
	o.completedAt = &completedAt
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCode validates and sets the order's tracking code.
// This is a private method used only during construction.
func (o *Order) setCode(code kernel.TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.code = code
	return nil
}

// setItems validates and copies the order lines.
// An order must have at least one item.
// This is a private method used only during construction.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setStatus validates and sets the order status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
