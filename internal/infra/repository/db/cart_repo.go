package db

import (
	"context"

	"github.com/MateuszRostek/book-store/internal/model"
	"gorm.io/gorm/clause"
)

// 購物車操作
// 合併邏輯(同書籍數量相加)在service層，這裡只負責原子讀寫
// GetCartWithItemsByUserID 會鎖定購物車row，防止兩個併發addItem同時判斷"項目不存在"的lost-update

// Read - 根據用戶ID查詢購物車與其項目
func (d *DbDao) GetCartWithItemsByUserID(ctx context.Context, userID uint) (*model.ShoppingCart, error) {
	var cart model.ShoppingCart
	err := d.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("CartItems").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Create - 創建購物車
func (d *DbDao) CreateCart(ctx context.Context, cart *model.ShoppingCart) error {
	return d.WithContext(ctx).Create(cart).Error
}

// Update - 保存購物車，級聯寫入新項目
func (d *DbDao) SaveCart(ctx context.Context, cart *model.ShoppingCart) error {
	return d.WithContext(ctx).Save(cart).Error
}

// Update - 保存單一購物車項目
func (d *DbDao) SaveCartItem(ctx context.Context, item *model.CartItem) error {
	return d.WithContext(ctx).Save(item).Error
}

// Read - 根據ID查詢購物車項目
func (d *DbDao) GetCartItemByID(ctx context.Context, cartItemID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := d.WithContext(ctx).First(&item, "cart_item_id = ?", cartItemID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Read - 根據ID查詢購物車
func (d *DbDao) GetCartByID(ctx context.Context, cartID uint) (*model.ShoppingCart, error) {
	var cart model.ShoppingCart
	err := d.WithContext(ctx).First(&cart, "cart_id = ?", cartID).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Delete - 軟刪除購物車項目
func (d *DbDao) DeleteCartItem(ctx context.Context, cartItemID uint) error {
	return d.WithContext(ctx).Where("cart_item_id = ?", cartItemID).Delete(&model.CartItem{}).Error
}

// Delete - 清空購物車所有項目，下單後使用
func (d *DbDao) DeleteAllCartItemsByCartID(ctx context.Context, cartID uint) error {
	return d.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&model.CartItem{}).Error
}
