package db

import (
	"context"

	"github.com/MateuszRostek/book-store/internal/model"
)

// Create - 創建用戶
func (d *DbDao) CreateUser(ctx context.Context, user *model.User) error {
	return d.WithContext(ctx).Create(user).Error
}

// Read - 根據Email查詢用戶
func (d *DbDao) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := d.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Read - 根據ID查詢用戶
func (d *DbDao) GetUserByID(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User
	err := d.WithContext(ctx).First(&user, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
