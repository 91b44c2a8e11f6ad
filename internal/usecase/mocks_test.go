package usecase

import (
	"context"

	"wildsafari/internal/domain/model"
	repo "wildsafari/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks
// =====================

type CatalogRepoMock struct{ mock.Mock }

func (m *CatalogRepoMock) ResolveProduct(ctx context.Context, ref model.ProductRef) (model.Product, error) {
	args := m.Called(ctx, ref)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *CatalogRepoMock) CountByKind(ctx context.Context, kind model.ProductKind) (int64, error) {
	args := m.Called(ctx, kind)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartItemRepoMock) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartItemID)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *CartItemRepoMock) UpsertByUserAndProduct(ctx context.Context, userID int64, ref model.ProductRef, addQty int64) error {
	args := m.Called(ctx, userID, ref, addQty)
	return args.Error(0)
}

func (m *CartItemRepoMock) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	args := m.Called(ctx, cartItemID, qty)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByID(ctx context.Context, cartItemID int64) error {
	args := m.Called(ctx, cartItemID)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *CartItemRepoMock) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	id, _ := args.Get(0).(int64)
	return id, args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListRecent(ctx context.Context, limit int) ([]model.Order, error) {
	args := m.Called(ctx, limit)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

func (m *OrderRepoMock) Delete(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *OrderRepoMock) DeleteByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) DeleteByOrderID(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

func (m *UserRepoMock) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type WildlifeRepoMock struct{ mock.Mock }

func (m *WildlifeRepoMock) List(ctx context.Context, limit int) ([]model.Wildlife, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]model.Wildlife)
	return items, args.Error(1)
}

func (m *WildlifeRepoMock) FindByID(ctx context.Context, id int64) (model.Wildlife, error) {
	args := m.Called(ctx, id)
	w, _ := args.Get(0).(model.Wildlife)
	return w, args.Error(1)
}

func (m *WildlifeRepoMock) ListSimilar(ctx context.Context, category string, excludeID int64, limit int) ([]model.Wildlife, error) {
	args := m.Called(ctx, category, excludeID, limit)
	items, _ := args.Get(0).([]model.Wildlife)
	return items, args.Error(1)
}

func (m *WildlifeRepoMock) Create(ctx context.Context, w model.Wildlife) (model.Wildlife, error) {
	args := m.Called(ctx, w)
	created, _ := args.Get(0).(model.Wildlife)
	return created, args.Error(1)
}

func (m *WildlifeRepoMock) Update(ctx context.Context, w model.Wildlife) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *WildlifeRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type SafariRepoMock struct{ mock.Mock }

func (m *SafariRepoMock) List(ctx context.Context, limit int) ([]model.Safari, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]model.Safari)
	return items, args.Error(1)
}

func (m *SafariRepoMock) FindByID(ctx context.Context, id int64) (model.Safari, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Safari)
	return s, args.Error(1)
}

func (m *SafariRepoMock) ListSimilar(ctx context.Context, tier string, excludeID int64, limit int) ([]model.Safari, error) {
	args := m.Called(ctx, tier, excludeID, limit)
	items, _ := args.Get(0).([]model.Safari)
	return items, args.Error(1)
}

func (m *SafariRepoMock) Create(ctx context.Context, s model.Safari) (model.Safari, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(model.Safari)
	return created, args.Error(1)
}

func (m *SafariRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	cartItems  repo.CartItemRepository
	catalog    repo.CatalogRepository
	users      repo.UserRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *TxReposMock) CartItems() repo.CartItemRepository   { return r.cartItems }
func (r *TxReposMock) Catalog() repo.CatalogRepository      { return r.catalog }
func (r *TxReposMock) Users() repo.UserRepository           { return r.users }
