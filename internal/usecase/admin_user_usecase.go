package usecase

import (
	"context"
	"errors"

	repo "wildsafari/internal/repository"
)

// AdminUserUsecase は管理者によるユーザー操作。
type AdminUserUsecase struct {
	userRepo repo.UserRepository
}

func NewAdminUserUsecase(userRepo repo.UserRepository) *AdminUserUsecase {
	return &AdminUserUsecase{userRepo: userRepo}
}

// DeleteUser はユーザーと所有データ（カート明細・注文・注文明細）を削除する。
// カスケードはリポジトリ層で同一Txにまとめている。
func (u *AdminUserUsecase) DeleteUser(ctx context.Context, actorAdminID int64, userID int64) error {
	if actorAdminID <= 0 {
		return NewAuthorization("unauthorized")
	}
	if userID <= 0 {
		return NewValidation("invalid id")
	}
	// 自分自身は消させない
	if userID == actorAdminID {
		return NewValidation("cannot delete yourself")
	}

	err := u.userRepo.Delete(ctx, userID)
	if errors.Is(err, repo.ErrUserNotFound) {
		return NewNotFound("user")
	}
	if err != nil {
		return NewStore(err)
	}
	return nil
}
