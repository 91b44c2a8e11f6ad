package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"wildsafari/internal/domain/model"
	"wildsafari/internal/infra/db"
	"wildsafari/internal/usecase"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// 実DBに対するリポジトリ検証。DBが無い環境ではスキップする
// （CIは DATABASE_URL か POSTGRES_* を渡して動かす）。
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("DATABASE_URL") == "" && os.Getenv("POSTGRES_HOST") == "" {
		t.Skip("database not configured")
	}

	gdb, err := db.Connect()
	if err != nil {
		t.Fatalf("db.Connect failed: %v", err)
	}

	if err := gdb.AutoMigrate(
		&model.User{},
		&model.Wildlife{},
		&model.Safari{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}

	return gdb
}

type dbFixture struct {
	userID   int64
	wildlife model.Wildlife
	safari   model.Safari
}

// テスト専用のユーザーと商品を作る。名前にタイムスタンプを入れて衝突を避ける。
func setupCartFixture(t *testing.T, gdb *gorm.DB) dbFixture {
	t.Helper()
	ctx := context.Background()

	stamp := time.Now().Format("20060102-150405.000000000")

	users := NewUserGormRepository(gdb)
	user := &model.User{
		Email:        "db-cart-" + stamp + "@example.com",
		PasswordHash: "not-a-real-hash",
		CreatedAt:    time.Now(),
	}
	if err := users.Create(ctx, user); err != nil {
		t.Fatalf("user create failed: %v", err)
	}

	wildlifeRepo := NewWildlifeGormRepository(gdb)
	w, err := wildlifeRepo.Create(ctx, model.Wildlife{
		Title:       "DB-SnowLeopard-" + stamp,
		Description: "x",
		ImageURL:    "leopard.jpg",
		Category:    "Big Cats",
		Price:       2999.99,
		Status:      "Available",
	})
	if err != nil {
		t.Fatalf("wildlife create failed: %v", err)
	}

	safariRepo := NewSafariGormRepository(gdb)
	s, err := safariRepo.Create(ctx, model.Safari{
		Name:        "DB-KanhaSafari-" + stamp,
		Price:       20110,
		Duration:    "3 days",
		SafariCount: 4,
		Tier:        "Premium",
	})
	if err != nil {
		t.Fatalf("safari create failed: %v", err)
	}

	t.Cleanup(func() {
		// ユーザー削除のカスケードでカート・注文・明細も消える
		_ = users.Delete(ctx, user.ID)
		_ = wildlifeRepo.Delete(ctx, w.ID)
		_ = safariRepo.Delete(ctx, s.ID)
	})

	return dbFixture{userID: user.ID, wildlife: w, safari: s}
}

func Test_CartUpsert_MergesSameProductRow(t *testing.T) {
	gdb := openTestDB(t)
	fx := setupCartFixture(t, gdb)
	ctx := context.Background()

	cartRepo := NewCartItemGormRepository(gdb)
	ref := model.ProductRef{Kind: model.KindWildlife, ID: fx.wildlife.ID}

	// 同じ商品を2回追加
	assert.NoError(t, cartRepo.UpsertByUserAndProduct(ctx, fx.userID, ref, 1))
	assert.NoError(t, cartRepo.UpsertByUserAndProduct(ctx, fx.userID, ref, 1))

	items, err := cartRepo.ListByUserID(ctx, fx.userID)
	assert.NoError(t, err)
	// 行は増えず、同一行の数量が2になる
	if assert.Len(t, items, 1) {
		assert.Equal(t, int64(2), items[0].Quantity)
		assert.Equal(t, model.KindWildlife, items[0].ProductKind)
		assert.Equal(t, fx.wildlife.ID, items[0].ProductID)
	}

	// さらに数量3を積むと同じ行が5になる
	assert.NoError(t, cartRepo.UpsertByUserAndProduct(ctx, fx.userID, ref, 3))

	items, err = cartRepo.ListByUserID(ctx, fx.userID)
	assert.NoError(t, err)
	if assert.Len(t, items, 1) {
		assert.Equal(t, int64(5), items[0].Quantity)
	}

	// 種別が違えば別行（同一性は種別＋IDのペア）
	other := model.ProductRef{Kind: model.KindSafari, ID: fx.safari.ID}
	assert.NoError(t, cartRepo.UpsertByUserAndProduct(ctx, fx.userID, other, 1))

	items, err = cartRepo.ListByUserID(ctx, fx.userID)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
}

func Test_Checkout_CreatesOrderAndClearsCart(t *testing.T) {
	gdb := openTestDB(t)
	fx := setupCartFixture(t, gdb)
	ctx := context.Background()

	cartRepo := NewCartItemGormRepository(gdb)
	assert.NoError(t, cartRepo.UpsertByUserAndProduct(
		ctx, fx.userID, model.ProductRef{Kind: model.KindWildlife, ID: fx.wildlife.ID}, 2))
	assert.NoError(t, cartRepo.UpsertByUserAndProduct(
		ctx, fx.userID, model.ProductRef{Kind: model.KindSafari, ID: fx.safari.ID}, 1))

	uc := usecase.NewCheckoutUsecase(NewTxManagerGorm(gdb))
	out, err := uc.Checkout(ctx, fx.userID, usecase.ShippingInput{
		Address: "12 Forest Lane",
		City:    "Nagpur",
		State:   "MH",
		Pincode: "440001",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	assert.InDelta(t, 26109.98, out.TotalAmount, 0.001)

	order, err := NewOrderGormRepository(gdb).FindByID(ctx, out.OrderID)
	assert.NoError(t, err)
	assert.Equal(t, fx.userID, order.UserID)
	assert.Equal(t, model.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, "12 Forest Lane", order.ShippingAddress)
	assert.InDelta(t, 26109.98, order.TotalAmount, 0.001)

	orderItems, err := NewOrderItemGormRepository(gdb).ListByOrderID(ctx, out.OrderID)
	assert.NoError(t, err)
	if assert.Len(t, orderItems, 2) {
		// 確定時点の価格スナップショットが明細に残る
		for _, it := range orderItems {
			switch it.ProductKind {
			case model.KindWildlife:
				assert.InDelta(t, 2999.99, it.Price, 0.001)
				assert.Equal(t, int64(2), it.Quantity)
			case model.KindSafari:
				assert.InDelta(t, 20110, it.Price, 0.001)
				assert.Equal(t, int64(1), it.Quantity)
			}
		}
	}

	// カートは空になっている
	items, err := cartRepo.ListByUserID(ctx, fx.userID)
	assert.NoError(t, err)
	assert.Len(t, items, 0)

	// 空カートの再実行は通らない
	_, err = uc.Checkout(ctx, fx.userID, usecase.ShippingInput{})
	var ec *usecase.EmptyCartError
	assert.ErrorAs(t, err, &ec)
}
