package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"wildsafari/internal/domain/model"
	repo "wildsafari/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCheckoutMocks() (*CheckoutUsecase, *OrderRepoMock, *OrderItemRepoMock, *CartItemRepoMock, *CatalogRepoMock) {
	orders := new(OrderRepoMock)
	orderItems := new(OrderItemRepoMock)
	cartItems := new(CartItemRepoMock)
	catalog := new(CatalogRepoMock)

	tx := &TxManagerMock{Repos: &TxReposMock{
		orders:     orders,
		orderItems: orderItems,
		cartItems:  cartItems,
		catalog:    catalog,
	}}
	tx.On("WithinTx", mock.Anything).Return(nil)

	return NewCheckoutUsecase(tx), orders, orderItems, cartItems, catalog
}

func TestCheckout_Success(t *testing.T) {
	uc, orders, orderItems, cartItems, catalog := newCheckoutMocks()

	cartItems.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, ProductKind: model.KindWildlife, ProductID: 7, Quantity: 2},
		{ID: 2, UserID: 1, ProductKind: model.KindSafari, ProductID: 3, Quantity: 1},
	}, nil)
	catalog.On("ResolveProduct", mock.Anything, model.ProductRef{Kind: model.KindWildlife, ID: 7}).
		Return(model.Product{ID: 7, Kind: model.KindWildlife, Price: 2999.99}, nil)
	catalog.On("ResolveProduct", mock.Anything, model.ProductRef{Kind: model.KindSafari, ID: 3}).
		Return(model.Product{ID: 3, Kind: model.KindSafari, Price: 20110}, nil)

	orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.UserID == 1 &&
			o.PaymentStatus == model.PaymentStatusPending &&
			o.ShippingAddress == "12 Forest Lane" &&
			math.Abs(o.TotalAmount-26109.98) < 0.001
	})).Return(int64(42), nil)

	orderItems.On("CreateBulk", mock.Anything, int64(42), mock.MatchedBy(func(items []model.OrderItem) bool {
		if len(items) != 2 {
			return false
		}
		// 確定時点の価格がスナップショットされている
		return math.Abs(items[0].Price-2999.99) < 0.001 &&
			items[0].Quantity == 2 &&
			math.Abs(items[1].Price-20110) < 0.001
	})).Return(nil)

	cartItems.On("DeleteByUserID", mock.Anything, int64(1)).Return(nil)

	out, err := uc.Checkout(context.Background(), 1, ShippingInput{
		Address: "12 Forest Lane",
		City:    "Nagpur",
		State:   "MH",
		Pincode: "440001",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), out.OrderID)
	assert.InDelta(t, 26109.98, out.TotalAmount, 0.001)
	orders.AssertExpectations(t)
	orderItems.AssertExpectations(t)
	cartItems.AssertExpectations(t)
}

func TestCheckout_EmptyCart(t *testing.T) {
	uc, orders, _, cartItems, _ := newCheckoutMocks()

	cartItems.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{}, nil)

	_, err := uc.Checkout(context.Background(), 1, ShippingInput{})

	var ec *EmptyCartError
	assert.ErrorAs(t, err, &ec)
	// 空カートでは注文もカート削除も走らない
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	cartItems.AssertNotCalled(t, "DeleteByUserID", mock.Anything, mock.Anything)
}

func TestCheckout_DeletedProductSnapshotsZero(t *testing.T) {
	uc, orders, orderItems, cartItems, catalog := newCheckoutMocks()

	cartItems.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, ProductKind: model.KindWildlife, ProductID: 7, Quantity: 2},
		{ID: 2, UserID: 1, ProductKind: model.KindWildlife, ProductID: 8, Quantity: 5},
	}, nil)
	catalog.On("ResolveProduct", mock.Anything, model.ProductRef{Kind: model.KindWildlife, ID: 7}).
		Return(model.Product{ID: 7, Kind: model.KindWildlife, Price: 2999.99}, nil)
	catalog.On("ResolveProduct", mock.Anything, model.ProductRef{Kind: model.KindWildlife, ID: 8}).
		Return(model.Product{}, repo.ErrNotFound)

	orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		// 消えた商品は合計に乗らない
		return math.Abs(o.TotalAmount-5999.98) < 0.001
	})).Return(int64(43), nil)

	orderItems.On("CreateBulk", mock.Anything, int64(43), mock.MatchedBy(func(items []model.OrderItem) bool {
		// 消えた商品も明細には価格0で記録される
		return len(items) == 2 && items[1].Price == 0 && items[1].Quantity == 5
	})).Return(nil)

	cartItems.On("DeleteByUserID", mock.Anything, int64(1)).Return(nil)

	out, err := uc.Checkout(context.Background(), 1, ShippingInput{})

	assert.NoError(t, err)
	assert.InDelta(t, 5999.98, out.TotalAmount, 0.001)
	orderItems.AssertExpectations(t)
}

func TestCheckout_OrderItemFailureAbortsCartClear(t *testing.T) {
	uc, orders, orderItems, cartItems, catalog := newCheckoutMocks()

	cartItems.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, ProductKind: model.KindSafari, ProductID: 3, Quantity: 1},
	}, nil)
	catalog.On("ResolveProduct", mock.Anything, mock.Anything).
		Return(model.Product{ID: 3, Kind: model.KindSafari, Price: 7100}, nil)
	orders.On("Create", mock.Anything, mock.Anything).Return(int64(44), nil)
	orderItems.On("CreateBulk", mock.Anything, int64(44), mock.Anything).
		Return(errors.New("insert failed"))

	_, err := uc.Checkout(context.Background(), 1, ShippingInput{})

	var se *StoreError
	assert.ErrorAs(t, err, &se)
	// エラーでTxが戻る前提なので、後続のカート削除には進まない
	cartItems.AssertNotCalled(t, "DeleteByUserID", mock.Anything, mock.Anything)
}

func TestCheckout_Unauthorized(t *testing.T) {
	uc := NewCheckoutUsecase(&TxManagerMock{})

	_, err := uc.Checkout(context.Background(), 0, ShippingInput{})

	var ae *AuthorizationError
	assert.ErrorAs(t, err, &ae)
}
