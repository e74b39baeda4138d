package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterStudentRequest struct {
	Name       string `json:"name"       validate:"required"`
	Email      string `json:"email"      validate:"required,email"`
	Password   string `json:"password"   validate:"required,min=6,max=72"`
	RollNumber string `json:"rollNumber" validate:"required,len=9,numeric"`
	Hostel     string `json:"hostel"     validate:"required"`
	Phone      string `json:"phone"      validate:"required,len=10,numeric"`
	Year       int    `json:"year"       validate:"required,min=1,max=4"`
}

// DeliveryPolicyFields are shared by shop registration and profile updates. Omitted
// amounts mean zero.
type DeliveryPolicyFields struct {
	DeliveryFee        *decimal.Decimal `json:"deliveryFee"`
	MinimumOrderAmount *decimal.Decimal `json:"minimumOrderAmount"`
	FreeDeliveryAbove  *decimal.Decimal `json:"freeDeliveryAbove"`
}

type RegisterShopRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Phone    string `json:"phone"    validate:"required,len=10,numeric"`
	ShopName string `json:"shopName" validate:"required"`
	Location string `json:"location" validate:"required"`
	ShopType string `json:"shopType" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
	DeliveryPolicyFields
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=student shop shopkeeper"`
}

type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
}

type StudentProfileRequest struct {
	Name   string `json:"name"   validate:"required"`
	Hostel string `json:"hostel" validate:"required"`
	Phone  string `json:"phone"  validate:"required,len=10,numeric"`
	Year   int    `json:"year"   validate:"required,min=1,max=4"`
}

type StudentProfile struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	RollNumber string    `json:"rollNumber"`
	Name       string    `json:"name"`
	Hostel     string    `json:"hostel"`
	Phone      string    `json:"phone"`
	Year       int       `json:"year"`
}

type ShopProfileRequest struct {
	Name     string `json:"name"     validate:"required"`
	Phone    string `json:"phone"    validate:"required,len=10,numeric"`
	ShopName string `json:"shopName" validate:"required"`
	Location string `json:"location" validate:"required"`
	ShopType string `json:"shopType" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
	IsOpen   *bool  `json:"isOpen"   validate:"required"`
	DeliveryPolicyFields
}

type ShopSummary struct {
	ID                 uuid.UUID `json:"id"`
	ShopName           string    `json:"shopName"`
	Location           string    `json:"location"`
	ShopType           string    `json:"shopType"`
	ImageURL           string    `json:"imageUrl"`
	IsOpen             bool      `json:"isOpen"`
	DeliveryFee        string    `json:"deliveryFee"`
	MinimumOrderAmount string    `json:"minimumOrderAmount"`
	FreeDeliveryAbove  *string   `json:"freeDeliveryAbove"`
}

type ShopProfile struct {
	ShopSummary
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Verified bool   `json:"verified"`
	Active   bool   `json:"active"`
}

type MenuItemRequest struct {
	Name            string          `json:"name"            validate:"required,max=120"`
	Description     string          `json:"description"     validate:"required,max=500"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"        validate:"required"`
	IsVegetarian    bool            `json:"isVegetarian"`
	PreparationTime int             `json:"preparationTime" validate:"required"`
	IsAvailable     *bool           `json:"isAvailable"`
}

type MenuItem struct {
	ID              uuid.UUID `json:"id"`
	ShopID          uuid.UUID `json:"shopId"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           string    `json:"price"`
	Category        string    `json:"category"`
	IsVegetarian    bool      `json:"isVegetarian"`
	PreparationTime int       `json:"preparationTime"`
	IsAvailable     bool      `json:"isAvailable"`
}

type ShopMenu struct {
	ShopID   uuid.UUID  `json:"shopId"`
	ShopName string     `json:"shopName"`
	IsOpen   bool       `json:"isOpen"`
	Items    []MenuItem `json:"items"`
}

type CartLine struct {
	MenuItemID uuid.UUID `json:"menuItemId" validate:"required"`
	Quantity   int       `json:"quantity"`
}

type QuoteRequest struct {
	Items []CartLine `json:"items" validate:"dive"`
}

type PlaceOrderRequest struct {
	ShopID               uuid.UUID  `json:"shopId"               validate:"required"`
	Items                []CartLine `json:"items"                validate:"dive"`
	DeliveryInstructions string     `json:"deliveryInstructions"`
}

type StatusUpdateRequest struct {
	Status          string `json:"status" validate:"required"`
	RejectionReason string `json:"rejectionReason"`
}

type OrderLine struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	Price      string    `json:"price"`
	Amount     string    `json:"amount"`
}

type Quote struct {
	ShopID             uuid.UUID   `json:"shopId"`
	Items              []OrderLine `json:"items"`
	Subtotal           string      `json:"subtotal"`
	DeliveryFee        string      `json:"deliveryFee"`
	TotalAmount        string      `json:"totalAmount"`
	MinimumOrderAmount string      `json:"minimumOrderAmount"`
	MeetsMinimumOrder  bool        `json:"meetsMinimumOrder"`
}

type Order struct {
	ID                   uuid.UUID   `json:"id"`
	StudentID            uuid.UUID   `json:"studentId"`
	StudentName          string      `json:"studentName"`
	StudentHostel        string      `json:"studentHostel"`
	StudentPhone         string      `json:"studentPhone"`
	ShopID               uuid.UUID   `json:"shopId"`
	ShopName             string      `json:"shopName"`
	Items                []OrderLine `json:"items"`
	Subtotal             string      `json:"subtotal"`
	DeliveryFee          string      `json:"deliveryFee"`
	TotalAmount          string      `json:"totalAmount"`
	PaymentMethod        string      `json:"paymentMethod"`
	Status               string      `json:"status"`
	DeliveryInstructions string      `json:"deliveryInstructions"`
	RejectionReason      string      `json:"rejectionReason,omitempty"`
	CreatedAt            time.Time   `json:"createdAt"`
	UpdatedAt            time.Time   `json:"updatedAt"`
}
