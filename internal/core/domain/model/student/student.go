// Package student models the students who place orders.
package student

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

const (
	MinYear = 1
	MaxYear = 4
)

var (
	ErrStudentIsNotConstructed = errors.New("Student must be created via NewStudent or RestoreStudent")

	rollNumberPattern = regexp.MustCompile(`^\d{9}$`)
)

// Hostel is the residence block a student lives in; orders are delivered there.
type Hostel string

var hostels = []Hostel{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O", "PG", "Q"}

func ParseHostel(s string) (Hostel, error) {
	h := Hostel(strings.ToUpper(strings.TrimSpace(s)))
	if !slices.Contains(hostels, h) {
		return "", errs.NewValueIsInvalidErrorWithCause("hostel", fmt.Errorf("%q is not a hostel", s))
	}
	return h, nil
}

// RollNumber is the nine-digit institutional roll number. Unique per student.
type RollNumber string

func ParseRollNumber(s string) (RollNumber, error) {
	s = strings.TrimSpace(s)
	if !rollNumberPattern.MatchString(s) {
		return "", errs.NewValueIsInvalidErrorWithCause("rollNumber", fmt.Errorf("%q is not 9 digits", s))
	}
	return RollNumber(s), nil
}

// CampusEmail checks that email belongs to the institution's domain.
func CampusEmail(email kernel.Email, campusDomain string) (kernel.Email, error) {
	if !strings.EqualFold(email.Domain(), campusDomain) {
		return "", errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%s is not a @%s address", email, campusDomain))
	}
	return email, nil
}

// Profile is the student-editable part of the record.
type Profile struct {
	Name   string
	Hostel Hostel
	Phone  kernel.Phone
	Year   int
}

type Student struct {
	id         kernel.UUID
	email      kernel.Email
	rollNumber RollNumber
	profile    Profile
	guard      guard.ConstructorGuard
}

// NewStudent expects email to have passed CampusEmail already.
func NewStudent(id kernel.UUID, email kernel.Email, rollNumber RollNumber, profile Profile) (*Student, error) {
	s := &Student{guard: guard.NewConstructorGuard()}

	var idErr, emailErr, rollErr error
	if idErr = id.Validate(); idErr == nil {
		s.id = id
	}
	if email == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	s.email = email
	if rollNumber == "" {
		rollErr = errs.NewValueIsRequiredError("rollNumber")
	}
	s.rollNumber = rollNumber

	if err := errors.Join(idErr, emailErr, rollErr, s.UpdateProfile(profile)); err != nil {
		return nil, err
	}
	return s, nil
}

// RestoreStudent rebuilds a student from storage.
func RestoreStudent(id kernel.UUID, email kernel.Email, rollNumber RollNumber, profile Profile) (*Student, error) {
	return NewStudent(id, email, rollNumber, profile)
}

func (s *Student) Validate() error {
	if s == nil {
		return ErrStudentIsNotConstructed
	}
	return s.guard.Validate(ErrStudentIsNotConstructed)
}

func (s *Student) ID() kernel.UUID {
	return s.id
}

func (s *Student) Email() kernel.Email {
	return s.email
}

func (s *Student) RollNumber() RollNumber {
	return s.rollNumber
}

func (s *Student) Profile() Profile {
	return s.profile
}

// UpdateProfile replaces name, hostel, phone and year after validating all of them.
func (s *Student) UpdateProfile(p Profile) error {
	p.Name = strings.TrimSpace(p.Name)

	var problems []error
	if p.Name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if hostel, err := ParseHostel(string(p.Hostel)); err != nil {
		problems = append(problems, err)
	} else {
		p.Hostel = hostel
	}
	if p.Phone == "" {
		problems = append(problems, errs.NewValueIsRequiredError("phone"))
	}
	if p.Year < MinYear || p.Year > MaxYear {
		problems = append(problems, errs.NewValueIsOutOfRangeError("year", p.Year, MinYear, MaxYear))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	s.profile = p
	return nil
}
