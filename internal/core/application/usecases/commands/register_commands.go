package commands

import (
	"errors"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/shop"
	"campusfood/internal/core/domain/model/student"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

const (
	MinPasswordLength = 6
	// MaxPasswordLength is the most bcrypt will hash.
	MaxPasswordLength = 72
)

var (
	ErrRegisterStudentCommandIsNotConstructed = errors.New(
		"RegisterStudentCommand must be created via NewRegisterStudentCommand constructor",
	)
	ErrRegisterShopCommandIsNotConstructed = errors.New(
		"RegisterShopCommand must be created via NewRegisterShopCommand constructor",
	)
)

// credentials is what every registration carries besides its profile.
type credentials struct {
	id       kernel.UUID
	email    kernel.Email
	password string
}

func newCredentials(id kernel.UUID, email kernel.Email, password string) (credentials, error) {
	var problems []error
	if err := id.Validate(); err != nil {
		problems = append(problems, err)
	}
	if email == "" {
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	}
	if n := len(password); n < MinPasswordLength || n > MaxPasswordLength {
		problems = append(problems, errs.NewValueIsOutOfRangeError("password length", n, MinPasswordLength, MaxPasswordLength))
	}
	if err := errors.Join(problems...); err != nil {
		return credentials{}, err
	}
	return credentials{id: id, email: email, password: password}, nil
}

func (c credentials) ID() kernel.UUID {
	return c.id
}

func (c credentials) Email() kernel.Email {
	return c.email
}

func (c credentials) Password() string {
	return c.password
}

type RegisterStudentCommand struct {
	credentials
	rollNumber student.RollNumber
	profile    student.Profile

	guard guard.ConstructorGuard
}

func NewRegisterStudentCommand(
	id kernel.UUID,
	email kernel.Email,
	password string,
	rollNumber student.RollNumber,
	profile student.Profile,
) (RegisterStudentCommand, error) {
	creds, credErr := newCredentials(id, email, password)

	var rollErr error
	if rollNumber == "" {
		rollErr = errs.NewValueIsRequiredError("rollNumber")
	}

	if err := errors.Join(credErr, rollErr); err != nil {
		return RegisterStudentCommand{}, err
	}

	return RegisterStudentCommand{
		credentials: creds,
		rollNumber:  rollNumber,
		profile:     profile,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterStudentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterStudentCommandIsNotConstructed)
}

func (c RegisterStudentCommand) RollNumber() student.RollNumber {
	return c.rollNumber
}

func (c RegisterStudentCommand) Profile() student.Profile {
	return c.profile
}

type RegisterShopCommand struct {
	credentials
	profile shop.Profile
	policy  shop.DeliveryPolicy

	guard guard.ConstructorGuard
}

func NewRegisterShopCommand(
	id kernel.UUID,
	email kernel.Email,
	password string,
	profile shop.Profile,
	policy shop.DeliveryPolicy,
) (RegisterShopCommand, error) {
	creds, err := newCredentials(id, email, password)
	if err != nil {
		return RegisterShopCommand{}, err
	}

	return RegisterShopCommand{
		credentials: creds,
		profile:     profile,
		policy:      policy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterShopCommand) Validate() error {
	return c.guard.Validate(ErrRegisterShopCommandIsNotConstructed)
}

func (c RegisterShopCommand) Profile() shop.Profile {
	return c.profile
}

func (c RegisterShopCommand) DeliveryPolicy() shop.DeliveryPolicy {
	return c.policy
}
