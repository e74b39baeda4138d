package queries_test

import (
	"errors"
	"testing"
	"time"

	"campusfood/internal/adapters/out/postgres/pgtest"
	"campusfood/internal/core/application/usecases/queries"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/shop"
	"campusfood/internal/core/domain/model/student"
	"campusfood/internal/core/ports"
	"campusfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListShopsQueryHandler(t *testing.T) {
	// Given
	db := pgtest.SQLite(t)
	seedShop(t, db, shopSeed{name: "Night Canteen", active: true, open: false, fee: "20", minimum: "50"})
	seedShop(t, db, shopSeed{name: "Juice Bar", active: true, open: true, fee: "10", freeDeliveryAbove: "200"})
	seedShop(t, db, shopSeed{name: "Abandoned Stall", active: false, open: true})

	// When
	got, err := queries.NewListShopsQueryHandler(db).Handle(t.Context(), queries.NewListShopsQuery())

	// Then
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Juice Bar", got[0].ShopName)
	assert.True(t, got[0].IsOpen)
	require.NotNil(t, got[0].FreeDeliveryAbove)
	assertAmount(t, "200", *got[0].FreeDeliveryAbove)
	assertAmount(t, "10", got[0].DeliveryFee)

	assert.Equal(t, "Night Canteen", got[1].ShopName)
	assert.False(t, got[1].IsOpen)
	assert.Nil(t, got[1].FreeDeliveryAbove)
	assertAmount(t, "50", got[1].MinimumOrder)
	assert.Equal(t, shop.LocationFoodCourt, got[1].Location)
	assert.Equal(t, shop.TypeIndian, got[1].Type)
}

func TestGetStudentProfileQueryHandler(t *testing.T) {
	db := pgtest.SQLite(t)
	ananya := seedStudent(t, db, "121110001")
	handler := queries.NewGetStudentProfileQueryHandler(db)

	t.Run("own_profile", func(t *testing.T) {
		query, err := queries.NewGetStudentProfileQuery(newActor(t, ananya.ID(), kernel.RoleStudent))
		require.NoError(t, err)

		got, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.True(t, got.ID.IsEqual(ananya.ID()))
		assert.Equal(t, student.RollNumber("121110001"), got.RollNumber)
		assert.Equal(t, "121110001@nitj.ac.in", got.Email)
		assert.Equal(t, student.Hostel("PG"), got.Hostel)
		assert.Equal(t, 2, got.Year)
	})

	t.Run("unknown_student", func(t *testing.T) {
		query, err := queries.NewGetStudentProfileQuery(newActor(t, kernel.NewUUID(), kernel.RoleStudent))
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("shop_is_forbidden", func(t *testing.T) {
		_, err := queries.NewGetStudentProfileQuery(newActor(t, kernel.NewUUID(), kernel.RoleShop))

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestGetShopProfileQueryHandler(t *testing.T) {
	db := pgtest.SQLite(t)
	canteen := seedShop(t, db, shopSeed{
		name: "Night Canteen", active: true, open: true, fee: "20", minimum: "50", freeDeliveryAbove: "300",
	})
	handler := queries.NewGetShopProfileQueryHandler(db)

	t.Run("own_profile", func(t *testing.T) {
		query, err := queries.NewGetShopProfileQuery(newActor(t, canteen.ID(), kernel.RoleShop))
		require.NoError(t, err)

		got, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.True(t, got.ID.IsEqual(canteen.ID()))
		assert.Equal(t, canteen.Email().String(), got.Email)
		assert.Equal(t, "Harpreet", got.OwnerName)
		assert.True(t, got.Verified)
		assert.True(t, got.Active)
		assertAmount(t, "20", got.DeliveryFee)
		require.NotNil(t, got.FreeDeliveryAbove)
		assertAmount(t, "300", *got.FreeDeliveryAbove)
	})

	t.Run("student_is_forbidden", func(t *testing.T) {
		_, err := queries.NewGetShopProfileQuery(newActor(t, canteen.ID(), kernel.RoleStudent))

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestLoginQueryHandler(t *testing.T) {
	principal := kernel.NewUUID()
	credential := ports.Credential{
		PrincipalID:  principal,
		Role:         kernel.RoleStudent,
		Email:        "121110001@nitj.ac.in",
		PasswordHash: "$2a$10$hash",
	}
	expiresAt := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)

	newQuery := func(t *testing.T, password string) queries.LoginQuery {
		t.Helper()
		q, err := queries.NewLoginQuery(" 121110001@NITJ.ac.in ", password, kernel.RoleStudent)
		require.NoError(t, err)
		return q
	}

	t.Run("issues_token", func(t *testing.T) {
		// Given
		creds := &MockCredentialRepository{}
		hasher := &MockHasher{}
		tokens := &MockTokenIssuer{}
		mock.InOrder(
			creds.On("GetByEmail", mock.Anything, kernel.Email("121110001@nitj.ac.in"), kernel.RoleStudent).
				Return(credential, nil).Once(),
			hasher.On("Compare", "$2a$10$hash", "s3cret!").Return(nil).Once(),
			tokens.On("Issue", mock.MatchedBy(func(a kernel.Actor) bool {
				return a.ID().IsEqual(principal) && a.IsStudent()
			})).Return("signed.jwt", expiresAt, nil).Once(),
		)

		// When
		got, err := queries.NewLoginQueryHandler(creds, hasher, tokens).Handle(t.Context(), newQuery(t, "s3cret!"))

		// Then
		require.NoError(t, err)
		assert.Equal(t, "signed.jwt", got.Token)
		assert.Equal(t, expiresAt, got.ExpiresAt)
		assert.True(t, got.ID.IsEqual(principal))
		assert.Equal(t, kernel.RoleStudent, got.Role)
		creds.AssertExpectations(t)
		hasher.AssertExpectations(t)
		tokens.AssertExpectations(t)
	})

	t.Run("unknown_email", func(t *testing.T) {
		creds := &MockCredentialRepository{}
		creds.On("GetByEmail", mock.Anything, mock.Anything, mock.Anything).
			Return(ports.Credential{}, errs.NewObjectNotFoundError("email", "x")).Once()
		hasher := &MockHasher{}
		tokens := &MockTokenIssuer{}

		_, err := queries.NewLoginQueryHandler(creds, hasher, tokens).Handle(t.Context(), newQuery(t, "s3cret!"))

		require.ErrorIs(t, err, queries.ErrInvalidCredentials)
		hasher.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
	})

	t.Run("wrong_password", func(t *testing.T) {
		creds := &MockCredentialRepository{}
		creds.On("GetByEmail", mock.Anything, mock.Anything, mock.Anything).Return(credential, nil).Once()
		hasher := &MockHasher{}
		hasher.On("Compare", mock.Anything, "nope").Return(errors.New("mismatch")).Once()
		tokens := &MockTokenIssuer{}

		_, err := queries.NewLoginQueryHandler(creds, hasher, tokens).Handle(t.Context(), newQuery(t, "nope"))

		require.ErrorIs(t, err, queries.ErrInvalidCredentials)
		tokens.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("storage_failure_is_not_masked", func(t *testing.T) {
		creds := &MockCredentialRepository{}
		boom := errors.New("db down")
		creds.On("GetByEmail", mock.Anything, mock.Anything, mock.Anything).Return(ports.Credential{}, boom).Once()

		_, err := queries.NewLoginQueryHandler(creds, &MockHasher{}, &MockTokenIssuer{}).
			Handle(t.Context(), newQuery(t, "s3cret!"))

		require.ErrorIs(t, err, boom)
	})
}

func TestNewLoginQuery(t *testing.T) {
	_, err := queries.NewLoginQuery("not-an-email", "", kernel.RoleUnknown)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "password")
}
