package shop

import (
	"errors"
	"fmt"
	"strings"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

var (
	ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop or RestoreShop")

	// ErrShopClosed is returned when an order is placed at a shop that is closed or deactivated.
	ErrShopClosed = errors.New("shop is not accepting orders")
)

// Profile is the shopkeeper-editable part of a shop.
type Profile struct {
	OwnerName string
	Phone     kernel.Phone
	ShopName  string
	Location  Location
	Type      Type
	ImageURL  string
}

// Shop is the aggregate root for a shopkeeper's storefront. It owns menu items (by
// reference from the menu package) and receives orders.
type Shop struct {
	id       kernel.UUID
	email    kernel.Email
	profile  Profile
	verified bool
	active   bool
	open     bool
	policy   DeliveryPolicy
	guard    guard.ConstructorGuard
}

// NewShop registers a shop. New shops start verified, active and open.
func NewShop(id kernel.UUID, email kernel.Email, profile Profile, policy DeliveryPolicy) (*Shop, error) {
	s := &Shop{
		verified: true,
		active:   true,
		open:     true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setEmail(email),
		s.setProfile(profile),
		s.SetDeliveryPolicy(policy),
	); err != nil {
		return nil, err
	}
	return s, nil
}

// RestoreShop rebuilds a shop from storage.
func RestoreShop(
	id kernel.UUID,
	email kernel.Email,
	profile Profile,
	policy DeliveryPolicy,
	verified, active, open bool,
) (*Shop, error) {
	s, err := NewShop(id, email, profile, policy)
	if err != nil {
		return nil, err
	}
	s.verified = verified
	s.active = active
	s.open = open
	return s, nil
}

func (s *Shop) Validate() error {
	if s == nil {
		return ErrShopIsNotConstructed
	}
	return s.guard.Validate(ErrShopIsNotConstructed)
}

func (s *Shop) ID() kernel.UUID {
	return s.id
}

func (s *Shop) Email() kernel.Email {
	return s.email
}

func (s *Shop) Profile() Profile {
	return s.profile
}

func (s *Shop) IsVerified() bool {
	return s.verified
}

func (s *Shop) IsActive() bool {
	return s.active
}

func (s *Shop) IsOpen() bool {
	return s.open
}

func (s *Shop) DeliveryPolicy() DeliveryPolicy {
	return s.policy
}

// UpdateProfile replaces the editable profile fields.
func (s *Shop) UpdateProfile(profile Profile) error {
	return s.setProfile(profile)
}

// SetOpen flips the storefront between open and closed.
func (s *Shop) SetOpen(open bool) {
	s.open = open
}

func (s *Shop) SetDeliveryPolicy(policy DeliveryPolicy) error {
	if err := policy.Validate(); err != nil {
		return err
	}
	s.policy = policy
	return nil
}

// EnsureAcceptingOrders fails with ErrShopClosed unless the shop is active and open.
func (s *Shop) EnsureAcceptingOrders() error {
	if !s.active || !s.open {
		return fmt.Errorf("%w: %s", ErrShopClosed, s.profile.ShopName)
	}
	return nil
}

func (s *Shop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shop) setEmail(email kernel.Email) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	s.email = email
	return nil
}

func (s *Shop) setProfile(p Profile) error {
	p.OwnerName = strings.TrimSpace(p.OwnerName)
	p.ShopName = strings.TrimSpace(p.ShopName)
	p.ImageURL = strings.TrimSpace(p.ImageURL)

	var problems []error
	if p.OwnerName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if p.ShopName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("shopName"))
	}
	if p.Phone == "" {
		problems = append(problems, errs.NewValueIsRequiredError("phone"))
	}
	if _, err := ParseLocation(string(p.Location)); err != nil {
		problems = append(problems, err)
	}
	if _, err := ParseType(string(p.Type)); err != nil {
		problems = append(problems, err)
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	s.profile = p
	return nil
}
