package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

const (
	// MaxNoteLength bounds delivery instructions and rejection reasons, in characters.
	MaxNoteLength = 200

	PaymentMethodCash = "cash"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is a student's purchase from a single shop. It is the aggregate root for its
// lines and bill, and the only thing that moves its own status.
type Order struct {
	id              kernel.UUID
	studentID       kernel.UUID
	shopID          kernel.UUID
	lines           []Line
	bill            Bill
	status          Status
	instructions    string
	rejectionReason string
	createdAt       time.Time
	updatedAt       time.Time
	version         int
	events          []Event
	guard           guard.ConstructorGuard
}

// NewOrder places a pending order. The bill's subtotal must equal the sum of the lines.
func NewOrder(
	id, studentID, shopID kernel.UUID,
	lines []Line,
	bill Bill,
	deliveryInstructions string,
	now time.Time,
) (*Order, error) {
	o, err := RestoreOrder(Snapshot{
		ID:                   id,
		StudentID:            studentID,
		ShopID:               shopID,
		Lines:                lines,
		Bill:                 bill,
		Status:               Pending,
		DeliveryInstructions: deliveryInstructions,
		CreatedAt:            now,
		UpdatedAt:            now,
		Version:              1,
	})
	if err != nil {
		return nil, err
	}

	o.raise(EventPlaced, Unknown, Pending, now)
	return o, nil
}

// Snapshot is the persisted state of an order.
type Snapshot struct {
	ID                   kernel.UUID
	StudentID            kernel.UUID
	ShopID               kernel.UUID
	Lines                []Line
	Bill                 Bill
	Status               Status
	DeliveryInstructions string
	RejectionReason      string
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Version              int
}

// RestoreOrder rebuilds an order from storage, re-checking every invariant.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		status:    s.Status,
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
		version:   s.Version,
		guard:     guard.NewConstructorGuard(),
	}

	var versionErr error
	if s.Version < 1 {
		versionErr = errs.NewValueIsOutOfRangeError("version", s.Version, 1, "unbounded")
	}

	if err := errors.Join(
		o.setParties(s.ID, s.StudentID, s.ShopID),
		o.setLines(s.Lines, s.Bill),
		s.Status.Validate(),
		o.setInstructions(s.DeliveryInstructions),
		o.setRejectionReason(s.RejectionReason),
		versionErr,
	); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) StudentID() kernel.UUID {
	return o.studentID
}

func (o *Order) ShopID() kernel.UUID {
	return o.shopID
}

// Lines returns a copy; the order's lines never change after placement.
func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

func (o *Order) Bill() Bill {
	return o.bill
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PaymentMethod() string {
	return PaymentMethodCash
}

func (o *Order) DeliveryInstructions() string {
	return o.instructions
}

func (o *Order) RejectionReason() string {
	return o.rejectionReason
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version is the version the order was loaded at. Writers compare against it.
func (o *Order) Version() int {
	return o.version
}

// IsVisibleTo reports whether actor is the ordering student or the receiving shop.
func (o *Order) IsVisibleTo(actor kernel.Actor) bool {
	switch actor.Role() {
	case kernel.RoleStudent:
		return o.studentID.IsEqual(actor.ID())
	case kernel.RoleShop:
		return o.shopID.IsEqual(actor.ID())
	case kernel.RoleUnknown:
	}
	return false
}

// TransitionTo moves the order to target on behalf of actor. The caller has already
// checked visibility. reason is kept only when target is Rejected.
func (o *Order) TransitionTo(actor kernel.Actor, target Status, reason string, now time.Time) error {
	required, ok := o.status.RequiredRole(target)
	if !ok {
		return NewInvalidTransitionError(o.status, target)
	}
	if actor.Role() != required {
		return errs.NewForbiddenError(fmt.Sprintf("moving an order from %s to %s", o.status, target), required.String())
	}

	if target == Rejected {
		if err := o.setRejectionReason(reason); err != nil {
			return err
		}
	}

	from := o.status
	o.status = target
	o.updatedAt = now
	o.raise(EventStatusChanged, from, target, now)
	return nil
}

// Cancel is the student's way out while the shop has not started cooking.
func (o *Order) Cancel(actor kernel.Actor, now time.Time) error {
	if !o.status.IsCancellable() {
		return NewNotCancellableError(o.status)
	}
	return o.TransitionTo(actor, Cancelled, "", now)
}

// Events returns the events raised since the order was loaded.
func (o *Order) Events() []Event {
	return append([]Event(nil), o.events...)
}

func (o *Order) ClearEvents() {
	o.events = nil
}

func (o *Order) raise(t EventType, from, to Status, now time.Time) {
	o.events = append(o.events, Event{
		Type:       t,
		OrderID:    o.id,
		StudentID:  o.studentID,
		ShopID:     o.shopID,
		From:       from,
		To:         to,
		Total:      o.bill.Total(),
		OccurredAt: now,
	})
}

func (o *Order) setParties(id, studentID, shopID kernel.UUID) error {
	var problems []error
	if err := id.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := studentID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("studentId", err))
	}
	if err := shopID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("shopId", err))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	o.id, o.studentID, o.shopID = id, studentID, shopID
	return nil
}

func (o *Order) setLines(lines []Line, bill Bill) error {
	if len(lines) == 0 {
		return ErrEmptyOrder
	}
	if err := bill.Validate(); err != nil {
		return err
	}

	sum := kernel.ZeroMoney()
	for i, l := range lines {
		if err := l.Validate(); err != nil {
			return NewInvalidLineItemError(i, err.Error())
		}
		sum = sum.Add(l.Amount())
	}
	if !sum.IsEqual(bill.Subtotal()) {
		return errs.NewValueIsInvalidErrorWithCause("subtotal",
			fmt.Errorf("%s does not match line total %s", bill.Subtotal(), sum))
	}

	o.lines = append([]Line(nil), lines...)
	o.bill = bill
	return nil
}

func (o *Order) setInstructions(s string) error {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n > MaxNoteLength {
		return errs.NewValueIsOutOfRangeError("deliveryInstructions", n, 0, MaxNoteLength)
	}
	o.instructions = s
	return nil
}

func (o *Order) setRejectionReason(s string) error {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n > MaxNoteLength {
		return errs.NewValueIsOutOfRangeError("rejectionReason", n, 0, MaxNoteLength)
	}
	o.rejectionReason = s
	return nil
}
