package student_test

import (
	"testing"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/student"
	"campusfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() student.Profile {
	return student.Profile{Name: "Asha", Hostel: "PG", Phone: "9876543210", Year: 2}
}

func TestNewStudent(t *testing.T) {
	t.Run("valid_student", func(t *testing.T) {
		// Given
		email, err := kernel.NewEmail("asha@thapar.edu")
		require.NoError(t, err)
		email, err = student.CampusEmail(email, "thapar.edu")
		require.NoError(t, err)
		roll, err := student.ParseRollNumber("102103001")
		require.NoError(t, err)

		// When
		s, err := student.NewStudent(kernel.NewUUID(), email, roll, validProfile())

		// Then
		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, student.RollNumber("102103001"), s.RollNumber())
		assert.Equal(t, 2, s.Profile().Year)
	})

	t.Run("year_out_of_range", func(t *testing.T) {
		p := validProfile()
		p.Year = 5

		_, err := student.NewStudent(kernel.NewUUID(), "asha@thapar.edu", "102103001", p)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("missing_identity_fields", func(t *testing.T) {
		_, err := student.NewStudent(kernel.UUID{}, "", "", validProfile())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "rollNumber")
	})
}

func TestCampusEmail(t *testing.T) {
	email, _ := kernel.NewEmail("asha@gmail.com")

	_, err := student.CampusEmail(email, "thapar.edu")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParseRollNumberAndHostel(t *testing.T) {
	for _, bad := range []string{"12345678", "1234567890", "10210300a"} {
		_, err := student.ParseRollNumber(bad)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, bad)
	}

	h, err := student.ParseHostel("pg")
	require.NoError(t, err)
	assert.Equal(t, student.Hostel("PG"), h)

	_, err = student.ParseHostel("Z")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStudent_UpdateProfile(t *testing.T) {
	s, err := student.NewStudent(kernel.NewUUID(), "asha@thapar.edu", "102103001", validProfile())
	require.NoError(t, err)

	err = s.UpdateProfile(student.Profile{Name: " ", Hostel: "A", Phone: "9876543210", Year: 3})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, "Asha", s.Profile().Name, "failed update must not change the profile")

	require.NoError(t, s.UpdateProfile(student.Profile{Name: "Asha K", Hostel: "A", Phone: "9876543210", Year: 3}))
	assert.Equal(t, "Asha K", s.Profile().Name)
}
