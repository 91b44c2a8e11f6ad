package repository

import (
	"context"
	"errors"

	"wildsafari/internal/domain/model"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Count(ctx context.Context) (int64, error)
	// ユーザー削除。カート明細・注文・注文明細も消す（明示カスケード）
	Delete(ctx context.Context, userID int64) error
}
