package queries_test

import (
	"context"
	"testing"
	"time"

	"campusfood/internal/adapters/out/postgres"
	"campusfood/internal/adapters/out/postgres/menurepo"
	"campusfood/internal/adapters/out/postgres/shoprepo"
	"campusfood/internal/adapters/out/postgres/studentrepo"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/menu"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/model/shop"
	"campusfood/internal/core/domain/model/student"
	"campusfood/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newActor(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return a
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

type shopSeed struct {
	name              string
	active, open      bool
	fee, minimum      string
	freeDeliveryAbove string
}

func seedShop(t *testing.T, db *gorm.DB, seed shopSeed) *shop.Shop {
	t.Helper()
	var above *kernel.Money
	if seed.freeDeliveryAbove != "" {
		m := money(t, seed.freeDeliveryAbove)
		above = &m
	}
	if seed.fee == "" {
		seed.fee = "0"
	}
	if seed.minimum == "" {
		seed.minimum = "0"
	}
	policy, err := shop.NewDeliveryPolicy(money(t, seed.fee), money(t, seed.minimum), above)
	require.NoError(t, err)

	s, err := shop.RestoreShop(kernel.NewUUID(), kernel.Email(kernel.NewUUID().String()+"@example.com"), shop.Profile{
		OwnerName: "Harpreet",
		Phone:     "9812345678",
		ShopName:  seed.name,
		Location:  shop.LocationFoodCourt,
		Type:      shop.TypeIndian,
	}, policy, true, seed.active, seed.open)
	require.NoError(t, err)
	require.NoError(t, shoprepo.NewGormShopRepository(db).Add(t.Context(), s))
	return s
}

func seedStudent(t *testing.T, db *gorm.DB, rollNumber string) *student.Student {
	t.Helper()
	s, err := student.NewStudent(kernel.NewUUID(), kernel.Email(rollNumber+"@nitj.ac.in"), student.RollNumber(rollNumber),
		student.Profile{Name: "Ananya", Hostel: "PG", Phone: "9876501234", Year: 2})
	require.NoError(t, err)
	require.NoError(t, studentrepo.NewGormStudentRepository(db).Add(t.Context(), s))
	return s
}

func seedItem(
	t *testing.T,
	db *gorm.DB,
	shopID kernel.UUID,
	name string,
	category menu.Category,
	price string,
	available bool,
) *menu.MenuItem {
	t.Helper()
	item, err := menu.RestoreMenuItem(kernel.NewUUID(), shopID, menu.Details{
		Name:               name,
		Price:              money(t, price),
		Description:        "Made fresh to order",
		Category:           category,
		Vegetarian:         true,
		PreparationMinutes: 15,
	}, available)
	require.NoError(t, err)
	require.NoError(t, menurepo.NewGormMenuRepository(db).Add(t.Context(), item))
	return item
}

// seedOrder places an order for qty of item and commits it through the unit of work.
func seedOrder(
	t *testing.T,
	db *gorm.DB,
	studentID, shopID kernel.UUID,
	item *menu.MenuItem,
	qty int,
	fee string,
	createdAt time.Time,
) *order.Order {
	t.Helper()
	line, err := order.NewLine(item.ID(), item.Name(), qty, item.Price())
	require.NoError(t, err)
	bill, err := order.NewBill(line.Amount(), money(t, fee))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), studentID, shopID, []order.Line{line}, bill, "Room 214", createdAt)
	require.NoError(t, err)

	ctx := t.Context()
	uow := postgres.NewGormUnitOfWorkFactory(db).Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.Commit(ctx))
	return o
}

// advance moves a committed order to target on behalf of actor.
func advance(t *testing.T, db *gorm.DB, id kernel.UUID, actor kernel.Actor, target order.Status) {
	t.Helper()
	ctx := t.Context()
	uow := postgres.NewGormUnitOfWorkFactory(db).Create()
	require.NoError(t, uow.Begin(ctx))
	o, err := uow.OrderRepository().Get(ctx, id)
	require.NoError(t, err)
	require.NoError(t, o.TransitionTo(actor, target, "", time.Now().UTC()))
	require.NoError(t, uow.OrderRepository().Update(ctx, o))
	require.NoError(t, uow.Commit(ctx))
}

// mocks

type MockCache struct{ mock.Mock }

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

type MockShopRepository struct{ mock.Mock }

func (m *MockShopRepository) Add(ctx context.Context, s *shop.Shop) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShopRepository) Update(ctx context.Context, s *shop.Shop) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShopRepository) Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) GetMany(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*menu.MenuItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]*menu.MenuItem), args.Error(1)
}

type MockCredentialRepository struct{ mock.Mock }

func (m *MockCredentialRepository) Add(ctx context.Context, c ports.Credential) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCredentialRepository) GetByEmail(
	ctx context.Context,
	email kernel.Email,
	role kernel.Role,
) (ports.Credential, error) {
	args := m.Called(ctx, email, role)
	return args.Get(0).(ports.Credential), args.Error(1)
}

type MockHasher struct{ mock.Mock }

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(actor kernel.Actor) (string, time.Time, error) {
	args := m.Called(actor)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenIssuer) Verify(token string) (kernel.Actor, error) {
	args := m.Called(token)
	return args.Get(0).(kernel.Actor), args.Error(1)
}
