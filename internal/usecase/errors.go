package usecase

import "fmt"

// usecase層のエラー分類。
// handler側の writeError が 404 / 403 / 400 / 500 に変換する。

// 参照先（商品・カート明細・注文）が存在しない
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// 所有者でも管理者でもない
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return e.Reason
}

func NewAuthorization(reason string) error {
	return &AuthorizationError{Reason: reason}
}

// 空カートでのチェックアウト
type EmptyCartError struct{}

func (e *EmptyCartError) Error() string {
	return "cart is empty"
}

// 入力不正（数量・価格・種別タグなど）
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidation(reason string) error {
	return &ValidationError{Reason: reason}
}

// 永続化の失敗。元エラーは包んで保持する
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error: %v", e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStore(err error) error {
	return &StoreError{Err: err}
}
