package commands_test

import (
	"context"
	"testing"
	"time"

	"campusfood/internal/core/application/usecases/commands"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/menu"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/model/shop"
	"campusfood/internal/core/domain/model/student"
	"campusfood/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
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

type MockStudentRepository struct{ mock.Mock }

func (m *MockStudentRepository) Add(ctx context.Context, s *student.Student) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStudentRepository) Update(ctx context.Context, s *student.Student) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStudentRepository) Get(ctx context.Context, id kernel.UUID) (*student.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*student.Student), args.Error(1)
}

func (m *MockStudentRepository) ExistsByRollNumber(ctx context.Context, rollNumber student.RollNumber) (bool, error) {
	args := m.Called(ctx, rollNumber)
	return args.Bool(0), args.Error(1)
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

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []int64, at time.Time) error {
	return m.Called(ctx, ids, at).Error(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, messages []ports.OutboxMessage) error {
	return m.Called(ctx, messages).Error(0)
}

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

type MockHasher struct{ mock.Mock }

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

// MockUoW satisfies every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	return m.Called().Get(0).(ports.MenuRepository)
}

func (m *MockUoW) ShopRepository() ports.ShopRepository {
	return m.Called().Get(0).(ports.ShopRepository)
}

func (m *MockUoW) StudentRepository() ports.StudentRepository {
	return m.Called().Get(0).(ports.StudentRepository)
}

func (m *MockUoW) CredentialRepository() ports.CredentialRepository {
	return m.Called().Get(0).(ports.CredentialRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

// uowFactory hands out the same MockUoW for every narrowed factory interface.
type uowFactory struct {
	uow     *MockUoW
	created int
}

func (f *uowFactory) next() *MockUoW {
	f.created++
	return f.uow
}

type orderUoWFactory struct{ *uowFactory }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.next() }

type placeOrderUoWFactory struct{ *uowFactory }

func (f placeOrderUoWFactory) Create() commands.PlaceOrderUoW { return f.next() }

type menuUoWFactory struct{ *uowFactory }

func (f menuUoWFactory) Create() commands.MenuUoW { return f.next() }

type studentUoWFactory struct{ *uowFactory }

func (f studentUoWFactory) Create() commands.StudentUoW { return f.next() }

type shopUoWFactory struct{ *uowFactory }

func (f shopUoWFactory) Create() commands.ShopUoW { return f.next() }

type registrationUoWFactory struct{ *uowFactory }

func (f registrationUoWFactory) Create() commands.RegistrationUoW { return f.next() }

type outboxUoWFactory struct{ *uowFactory }

func (f outboxUoWFactory) Create() commands.OutboxUoW { return f.next() }

// fixtures

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

func newTestShop(t *testing.T, fee, minimum, freeAbove string) *shop.Shop {
	t.Helper()
	var above *kernel.Money
	if freeAbove != "" {
		m := money(t, freeAbove)
		above = &m
	}
	policy, err := shop.NewDeliveryPolicy(money(t, fee), money(t, minimum), above)
	require.NoError(t, err)

	s, err := shop.NewShop(kernel.NewUUID(), "tuck@example.com", shop.Profile{
		OwnerName: "Harpreet",
		Phone:     "9812345678",
		ShopName:  "Tuck Shop",
		Location:  shop.LocationCampus,
		Type:      shop.TypeSnacks,
	}, policy)
	require.NoError(t, err)
	return s
}

func newTestItem(t *testing.T, shopID kernel.UUID, price string) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(kernel.NewUUID(), shopID, testDetails(t, price))
	require.NoError(t, err)
	return item
}

func testDetails(t *testing.T, price string) menu.Details {
	t.Helper()
	return menu.Details{
		Name:               "Aloo Paratha",
		Description:        "With curd and pickle",
		Price:              money(t, price),
		Category:           menu.CategoryMainCourse,
		Vegetarian:         true,
		PreparationMinutes: 20,
	}
}

// storedOrder is an order as a repository would return it, at the given status.
func storedOrder(t *testing.T, id, studentID, shopID kernel.UUID, status order.Status, version int) *order.Order {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), "Aloo Paratha", 2, money(t, "40"))
	require.NoError(t, err)
	bill, err := order.NewBill(money(t, "80"), money(t, "20"))
	require.NoError(t, err)

	now := time.Now().UTC()
	o, err := order.RestoreOrder(order.Snapshot{
		ID:        id,
		StudentID: studentID,
		ShopID:    shopID,
		Lines:     []order.Line{line},
		Bill:      bill,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
		Version:   version,
	})
	require.NoError(t, err)
	return o
}
