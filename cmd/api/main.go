package main

import (
	"log"
	"time"

	"wildsafari/internal/config"
	"wildsafari/internal/domain/model"
	"wildsafari/internal/handler"
	"wildsafari/internal/infra/db"
	infraRepo "wildsafari/internal/infra/repository"
	"wildsafari/internal/server"
	"wildsafari/internal/usecase"
	auth "wildsafari/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID int64, isAdmin bool, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":      userID,
		"is_admin": isAdmin,
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	// .envは無くてもよい（本番は実環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Wildlife{},
		&model.Safari{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	wildlifeRepo := infraRepo.NewWildlifeGormRepository(gormDB)
	safariRepo := infraRepo.NewSafariGormRepository(gormDB)
	catalogRepo := infraRepo.NewCatalogGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	clock := &realClock{}
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 15 * time.Minute,
	}

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, hasher, clock)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, issuer, clock)
	catalogUC := usecase.NewCatalogUsecase(wildlifeRepo, safariRepo)
	cartUC := usecase.NewCartUsecase(cartItemRepo, catalogRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager)
	orderQueryUC := usecase.NewOrderQueryUsecase(txManager)
	statsUC := usecase.NewAdminStatsUsecase(catalogRepo, orderRepo, userRepo)
	adminUserUC := usecase.NewAdminUserUsecase(userRepo)

	//開発用のサンプルデータ投入
	if cfg.GoEnv == "dev" {
		if err := seedSampleData(gormDB, hasher); err != nil {
			log.Fatal(err)
		}
	}

	//Handler生成
	h := server.Handlers{
		Auth:         handler.NewAuthHandler(registerUC, loginUC),
		Catalog:      handler.NewCatalogHandler(catalogUC),
		Cart:         handler.NewCartHandler(cartUC),
		Checkout:     handler.NewCheckoutHandler(checkoutUC, cartUC),
		Order:        handler.NewOrderHandler(orderQueryUC),
		AdminOrder:   handler.NewAdminOrderHandler(orderQueryUC, statsUC),
		AdminCatalog: handler.NewAdminCatalogHandler(catalogUC),
		AdminUser:    handler.NewAdminUserHandler(adminUserUC),
	}

	//Server起動
	if err := server.Start(cfg, h); err != nil {
		log.Fatal(err)
	}
}
