package service

import (
	"errors"
	"fmt"

	"github.com/MateuszRostek/book-store/internal/infra/repository/db"
	"gorm.io/gorm"
)

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrCategoryNotFound  = errors.New("category not found")

	ErrAccessDenied      = errors.New("access denied")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("order status is terminal")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrMissingAddress    = errors.New("shipping address is required")
	ErrEmailExists       = errors.New("email already exists")
	ErrInvalidCredential = errors.New("invalid email or password")

	// ErrTxConflict transaction序列化衝突，caller可重試
	ErrTxConflict = errors.New("concurrent modification conflict")

	// ErrStorage 儲存層錯誤，與領域錯誤區分，對外不揭露細節
	ErrStorage = errors.New("storage error")
)

var domainErrs = []error{
	ErrBookNotFound, ErrCartItemNotFound, ErrOrderNotFound, ErrOrderItemNotFound,
	ErrUserNotFound, ErrCategoryNotFound, ErrAccessDenied, ErrEmptyCart,
	ErrInvalidStatus, ErrInvalidTransition, ErrInvalidQuantity, ErrMissingAddress,
	ErrEmailExists, ErrInvalidCredential, ErrTxConflict, ErrStorage,
}

// IsDomainError 判斷錯誤是否已經是領域錯誤，避免重複包裝
func IsDomainError(err error) bool {
	for _, de := range domainErrs {
		if errors.Is(err, de) {
			return true
		}
	}
	return false
}

func storageError(err error) error {
	if db.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %v", ErrTxConflict, err)
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}

// notFoundOrStorage 將gorm的record not found轉成對應領域錯誤，其餘視為儲存層錯誤
func notFoundOrStorage(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return storageError(err)
}

// ensureDomain ExecTx本身(begin/commit)也可能失敗，保證回傳的一定是領域錯誤
func ensureDomain(err error) error {
	if err == nil || IsDomainError(err) {
		return err
	}
	return storageError(err)
}
