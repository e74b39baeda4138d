package menu

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

const (
	MinPreparationMinutes = 5
	MaxPreparationMinutes = 60
)

var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem or RestoreMenuItem")

type Category string

const (
	CategoryMainCourse Category = "Main Course"
	CategoryStarters   Category = "Starters"
	CategoryBeverages  Category = "Beverages"
	CategoryDesserts   Category = "Desserts"
	CategorySnacks     Category = "Snacks"
)

var categories = []Category{CategoryMainCourse, CategoryStarters, CategoryBeverages, CategoryDesserts, CategorySnacks}

func ParseCategory(s string) (Category, error) {
	if !slices.Contains(categories, Category(s)) {
		return "", errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a menu category", s))
	}
	return Category(s), nil
}

// Details are the shopkeeper-editable attributes of an item.
type Details struct {
	Name               string
	Description        string
	Price              kernel.Money
	Category           Category
	Vegetarian         bool
	PreparationMinutes int
}

type MenuItem struct {
	id        kernel.UUID
	shopID    kernel.UUID
	details   Details
	available bool
	guard     guard.ConstructorGuard
}

// NewMenuItem adds an item to shopID's menu. New items are available.
func NewMenuItem(id, shopID kernel.UUID, details Details) (*MenuItem, error) {
	return RestoreMenuItem(id, shopID, details, true)
}

func RestoreMenuItem(id, shopID kernel.UUID, details Details, available bool) (*MenuItem, error) {
	item := &MenuItem{available: available, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setID(id),
		item.setShopID(shopID),
		item.Update(details),
	); err != nil {
		return nil, err
	}
	return item, nil
}

func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

func (m *MenuItem) ShopID() kernel.UUID {
	return m.shopID
}

func (m *MenuItem) Details() Details {
	return m.details
}

func (m *MenuItem) Name() string {
	return m.details.Name
}

func (m *MenuItem) Price() kernel.Money {
	return m.details.Price
}

func (m *MenuItem) IsAvailable() bool {
	return m.available
}

// BelongsTo reports whether shopID owns the item.
func (m *MenuItem) BelongsTo(shopID kernel.UUID) bool {
	return m.shopID.IsEqual(shopID)
}

func (m *MenuItem) SetAvailable(available bool) {
	m.available = available
}

// Update validates and replaces all editable details at once.
func (m *MenuItem) Update(d Details) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)

	var problems []error
	if d.Name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if d.Description == "" {
		problems = append(problems, errs.NewValueIsRequiredError("description"))
	}
	if err := d.Price.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("price", err))
	}
	if _, err := ParseCategory(string(d.Category)); err != nil {
		problems = append(problems, err)
	}
	if d.PreparationMinutes < MinPreparationMinutes || d.PreparationMinutes > MaxPreparationMinutes {
		problems = append(problems, errs.NewValueIsOutOfRangeError(
			"preparationTime", d.PreparationMinutes, MinPreparationMinutes, MaxPreparationMinutes))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	m.details = d
	return nil
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopId", err)
	}
	m.shopID = shopID
	return nil
}
