package shop

import (
	"fmt"
	"slices"

	"campusfood/internal/pkg/errs"
)

// Location is where on campus the shop sits.
type Location string

const (
	LocationCampus        Location = "Campus"
	LocationGate1         Location = "Gate 1"
	LocationGate2         Location = "Gate 2"
	LocationHostelArea    Location = "Hostel Area"
	LocationAcademicBlock Location = "Academic Block"
	LocationFoodCourt     Location = "Food Court"
)

var locations = []Location{
	LocationCampus, LocationGate1, LocationGate2, LocationHostelArea, LocationAcademicBlock, LocationFoodCourt,
}

func ParseLocation(s string) (Location, error) {
	if !slices.Contains(locations, Location(s)) {
		return "", errs.NewValueIsInvalidErrorWithCause("shopLocation", fmt.Errorf("%q is not a campus location", s))
	}
	return Location(s), nil
}

// Type is the cuisine a shop is listed under.
type Type string

const (
	TypeFastFood    Type = "Fast Food"
	TypeIndian      Type = "Indian"
	TypeChinese     Type = "Chinese"
	TypeSouthIndian Type = "South Indian"
	TypeBeverages   Type = "Beverages"
	TypeSnacks      Type = "Snacks"
	TypeDesserts    Type = "Desserts"
)

var types = []Type{
	TypeFastFood, TypeIndian, TypeChinese, TypeSouthIndian, TypeBeverages, TypeSnacks, TypeDesserts,
}

func ParseType(s string) (Type, error) {
	if !slices.Contains(types, Type(s)) {
		return "", errs.NewValueIsInvalidErrorWithCause("shopType", fmt.Errorf("%q is not a shop type", s))
	}
	return Type(s), nil
}
