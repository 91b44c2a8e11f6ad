package auth

import (
	"context"
	"errors"
	"time"

	"wildsafari/internal/domain/model"
	"wildsafari/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// emailとpasswordのどちらが違うかは教えない
var ErrInvalidCredentials = errors.New("invalid credentials")

// ログインの入力
type LoginInput struct {
	Email    string
	Password string
}

// ログインの出力
type LoginOutput struct {
	User        model.User
	AccessToken string
	ExpiresAt   time.Time
}

// bcryptハッシュと平文を比較
type PasswordVerifier interface {
	Verify(hash string, plain string) bool
}

// アクセストークン発行の約束（実装はcmd/api側）
type TokenIssuer interface {
	Issue(userID int64, isAdmin bool, now time.Time) (string, time.Time, error)
}

type LoginUsecase struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
	issuer   TokenIssuer
	clock    Clock
}

// DI
func NewLoginUsecase(
	userRepo repository.UserRepository,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
	}
}

// ログイン実行
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	if in.Email == "" || in.Password == "" {
		return out, ErrInvalidCredentials
	}

	user, err := u.userRepo.FindByEmail(ctx, in.Email)
	if errors.Is(err, repository.ErrUserNotFound) || user == nil {
		return out, ErrInvalidCredentials
	}
	if err != nil {
		return out, err
	}

	if !u.verifier.Verify(user.PasswordHash, in.Password) {
		return out, ErrInvalidCredentials
	}

	token, expiresAt, err := u.issuer.Issue(user.ID, user.IsAdmin, u.clock.Now())
	if err != nil {
		return out, err
	}

	out.User = *user
	out.AccessToken = token
	out.ExpiresAt = expiresAt
	return out, nil
}

type BcryptPasswordVerifier struct{}

// DI
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
