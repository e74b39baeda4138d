package order

import (
	"errors"
	"strings"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

var (
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine")
	ErrBillIsNotConstructed = errors.New("Bill must be created via NewBill")
)

// Line is one cart line frozen at placement: the item it came from, the name the
// student saw and the unit price charged.
type Line struct {
	menuItemID kernel.UUID
	name       string
	quantity   int
	unitPrice  kernel.Money
	guard      guard.ConstructorGuard
}

func NewLine(menuItemID kernel.UUID, name string, quantity int, unitPrice kernel.Money) (Line, error) {
	name = strings.TrimSpace(name)

	var problems []error
	if err := menuItemID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("menuItemId", err))
	}
	if name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("itemName"))
	}
	if quantity < 1 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded"))
	}
	if err := unitPrice.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("unitPrice", err))
	}
	if err := errors.Join(problems...); err != nil {
		return Line{}, err
	}

	return Line{
		menuItemID: menuItemID,
		name:       name,
		quantity:   quantity,
		unitPrice:  unitPrice,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

func (l Line) Name() string {
	return l.name
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Amount is unit price times quantity.
func (l Line) Amount() kernel.Money {
	return l.unitPrice.Times(l.quantity)
}

// Bill is what the student owes for an order.
type Bill struct {
	subtotal    kernel.Money
	deliveryFee kernel.Money
	guard       guard.ConstructorGuard
}

func NewBill(subtotal, deliveryFee kernel.Money) (Bill, error) {
	if err := errors.Join(subtotal.Validate(), deliveryFee.Validate()); err != nil {
		return Bill{}, err
	}
	return Bill{subtotal: subtotal, deliveryFee: deliveryFee, guard: guard.NewConstructorGuard()}, nil
}

func (b Bill) Validate() error {
	return b.guard.Validate(ErrBillIsNotConstructed)
}

func (b Bill) Subtotal() kernel.Money {
	return b.subtotal
}

func (b Bill) DeliveryFee() kernel.Money {
	return b.deliveryFee
}

// Total is derived on every call so it can never drift from its parts.
func (b Bill) Total() kernel.Money {
	return b.subtotal.Add(b.deliveryFee)
}
