package kernel

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"campusfood/internal/pkg/errs"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// Phone is a ten-digit mobile number.
type Phone string

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phonePattern.MatchString(s) {
		return "", errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("%q is not 10 digits", s))
	}
	return Phone(s), nil
}

func (p Phone) String() string {
	return string(p)
}

// Email is a lower-cased, syntactically valid address.
type Email string

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return "", errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an address", s))
	}
	return Email(s), nil
}

// Domain returns the part after the @.
func (e Email) Domain() string {
	_, domain, _ := strings.Cut(string(e), "@")
	return domain
}

func (e Email) String() string {
	return string(e)
}
