package shop_test

import (
	"testing"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/shop"
	"campusfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func validProfile() shop.Profile {
	return shop.Profile{
		OwnerName: "Ravi",
		Phone:     "9876543210",
		ShopName:  "Ravi's Rolls",
		Location:  shop.LocationFoodCourt,
		Type:      shop.TypeFastFood,
	}
}

func TestNewShop(t *testing.T) {
	t.Run("starts_verified_active_and_open", func(t *testing.T) {
		// When
		s, err := shop.NewShop(kernel.NewUUID(), "ravi@example.com", validProfile(), shop.FreeDeliveryPolicy())

		// Then
		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.IsVerified())
		assert.True(t, s.IsActive())
		assert.True(t, s.IsOpen())
		require.NoError(t, s.EnsureAcceptingOrders())
	})

	t.Run("collects_every_profile_problem", func(t *testing.T) {
		// Given
		p := shop.Profile{Location: "Library", Type: "Italian"}

		// When
		_, err := shop.NewShop(kernel.NewUUID(), "ravi@example.com", p, shop.FreeDeliveryPolicy())

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "shopName")
		assert.Contains(t, err.Error(), "shopLocation")
		assert.Contains(t, err.Error(), "shopType")
	})

	t.Run("rejects_unconstructed_policy", func(t *testing.T) {
		_, err := shop.NewShop(kernel.NewUUID(), "ravi@example.com", validProfile(), shop.DeliveryPolicy{})

		require.ErrorIs(t, err, shop.ErrDeliveryPolicyIsNotConstructed)
	})
}

func TestShop_EnsureAcceptingOrders(t *testing.T) {
	s, err := shop.RestoreShop(kernel.NewUUID(), "ravi@example.com", validProfile(), shop.FreeDeliveryPolicy(),
		true, true, false)
	require.NoError(t, err)

	require.ErrorIs(t, s.EnsureAcceptingOrders(), shop.ErrShopClosed)

	s.SetOpen(true)
	require.NoError(t, s.EnsureAcceptingOrders())

	inactive, err := shop.RestoreShop(kernel.NewUUID(), "x@example.com", validProfile(), shop.FreeDeliveryPolicy(),
		true, false, true)
	require.NoError(t, err)
	require.ErrorIs(t, inactive.EnsureAcceptingOrders(), shop.ErrShopClosed)
}

func TestNewDeliveryPolicy(t *testing.T) {
	t.Run("with_free_delivery_threshold", func(t *testing.T) {
		threshold := money(t, "200")

		p, err := shop.NewDeliveryPolicy(money(t, "20"), money(t, "50"), &threshold)

		require.NoError(t, err)
		got, ok := p.FreeDeliveryAbove()
		assert.True(t, ok)
		assert.Equal(t, "200.00", got.String())
		assert.Equal(t, "20.00", p.Fee().String())
		assert.Equal(t, "50.00", p.MinimumOrder().String())
	})

	t.Run("threshold_is_copied", func(t *testing.T) {
		threshold := money(t, "200")
		p, err := shop.NewDeliveryPolicy(money(t, "20"), kernel.ZeroMoney(), &threshold)
		require.NoError(t, err)

		threshold = money(t, "1")

		got, _ := p.FreeDeliveryAbove()
		assert.Equal(t, "200.00", got.String())
	})

	t.Run("without_threshold", func(t *testing.T) {
		p, err := shop.NewDeliveryPolicy(money(t, "10"), kernel.ZeroMoney(), nil)

		require.NoError(t, err)
		_, ok := p.FreeDeliveryAbove()
		assert.False(t, ok)
	})

	t.Run("rejects_unconstructed_amounts", func(t *testing.T) {
		_, err := shop.NewDeliveryPolicy(kernel.Money{}, kernel.ZeroMoney(), nil)

		require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})
}
