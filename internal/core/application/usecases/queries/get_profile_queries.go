package queries

import (
	"context"
	"database/sql"
	"errors"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/shop"
	"campusfood/internal/core/domain/model/student"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrGetStudentProfileQueryIsNotConstructed = errors.New(
		"GetStudentProfileQuery must be created via NewGetStudentProfileQuery constructor",
	)
	ErrGetShopProfileQueryIsNotConstructed = errors.New(
		"GetShopProfileQuery must be created via NewGetShopProfileQuery constructor",
	)
)

// profileQuery is the caller asking about itself.
type profileQuery struct {
	actor kernel.Actor
	guard guard.ConstructorGuard
}

func newProfileQuery(actor kernel.Actor, role kernel.Role) (profileQuery, error) {
	if err := actor.Validate(); err != nil {
		return profileQuery{}, err
	}
	if actor.Role() != role {
		return profileQuery{}, errs.NewForbiddenError("reading a "+role.String()+" profile", role.String())
	}
	return profileQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

type GetStudentProfileQuery struct {
	profileQuery
}

func NewGetStudentProfileQuery(actor kernel.Actor) (GetStudentProfileQuery, error) {
	q, err := newProfileQuery(actor, kernel.RoleStudent)
	return GetStudentProfileQuery{q}, err
}

func (q GetStudentProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetStudentProfileQueryIsNotConstructed)
}

type StudentProfileResponse struct {
	ID         kernel.UUID
	Email      string
	RollNumber student.RollNumber
	Name       string
	Hostel     student.Hostel
	Phone      string
	Year       int
}

type GetStudentProfileQueryHandler struct {
	db *gorm.DB
}

func NewGetStudentProfileQueryHandler(db *gorm.DB) GetStudentProfileQueryHandler {
	return GetStudentProfileQueryHandler{db: db}
}

func (h GetStudentProfileQueryHandler) Handle(
	ctx context.Context,
	query GetStudentProfileQuery,
) (StudentProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return StudentProfileResponse{}, err
	}

	id := query.actor.ID()
	resp := StudentProfileResponse{ID: id}
	var roll, hostel string
	err := h.db.WithContext(ctx).Raw(`
		SELECT email, roll_number, name, hostel, phone, year
		FROM students
		WHERE id = ?
	`, id.Bytes()).Row().Scan(&resp.Email, &roll, &resp.Name, &hostel, &resp.Phone, &resp.Year)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StudentProfileResponse{}, errs.NewObjectNotFoundError("student", id.String())
		}
		return StudentProfileResponse{}, err
	}

	resp.RollNumber = student.RollNumber(roll)
	resp.Hostel = student.Hostel(hostel)
	return resp, nil
}

type GetShopProfileQuery struct {
	profileQuery
}

func NewGetShopProfileQuery(actor kernel.Actor) (GetShopProfileQuery, error) {
	q, err := newProfileQuery(actor, kernel.RoleShop)
	return GetShopProfileQuery{q}, err
}

func (q GetShopProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetShopProfileQueryIsNotConstructed)
}

type ShopProfileResponse struct {
	ShopSummaryResponse
	Email     string
	OwnerName string
	Phone     string
	Verified  bool
	Active    bool
}

type GetShopProfileQueryHandler struct {
	db *gorm.DB
}

func NewGetShopProfileQueryHandler(db *gorm.DB) GetShopProfileQueryHandler {
	return GetShopProfileQueryHandler{db: db}
}

func (h GetShopProfileQueryHandler) Handle(ctx context.Context, query GetShopProfileQuery) (ShopProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return ShopProfileResponse{}, err
	}

	id := query.actor.ID()
	resp := ShopProfileResponse{ShopSummaryResponse: ShopSummaryResponse{ID: id}}
	var (
		location, shopType string
		freeAbove          decimal.NullDecimal
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			email,
			owner_name,
			phone,
			shop_name,
			location,
			shop_type,
			image_url,
			verified,
			active,
			is_open,
			delivery_fee,
			minimum_order,
			free_delivery_above
		FROM shops
		WHERE id = ?
	`, id.Bytes()).Row().Scan(
		&resp.Email,
		&resp.OwnerName,
		&resp.Phone,
		&resp.ShopName,
		&location,
		&shopType,
		&resp.ImageURL,
		&resp.Verified,
		&resp.Active,
		&resp.IsOpen,
		&resp.DeliveryFee,
		&resp.MinimumOrder,
		&freeAbove,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ShopProfileResponse{}, errs.NewObjectNotFoundError("shop", id.String())
		}
		return ShopProfileResponse{}, err
	}

	resp.Location = shop.Location(location)
	resp.Type = shop.Type(shopType)
	if freeAbove.Valid {
		resp.FreeDeliveryAbove = &freeAbove.Decimal
	}
	return resp, nil
}
