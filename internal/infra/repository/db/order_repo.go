package db

import (
	"context"

	"github.com/MateuszRostek/book-store/internal/model"
)

// 訂單為不可變歷史資料，建立後只允許狀態欄位更新與軟刪除

// Create - 創建訂單，級聯寫入訂單項目
func (d *DbDao) CreateOrder(ctx context.Context, order *model.Order) error {
	return d.WithContext(ctx).Create(order).Error
}

// Read - 根據ID查詢訂單與其項目
func (d *DbDao) GetOrderWithItemsByID(ctx context.Context, orderID uint) (*model.Order, error) {
	var order model.Order
	err := d.WithContext(ctx).Preload("OrderItems").First(&order, "order_id = ?", orderID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Read - 根據用戶ID查詢訂單，新到舊排序，分頁時順序固定
func (d *DbDao) GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error) {
	var orders []model.Order
	err := d.WithContext(ctx).
		Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("order_date DESC, order_id DESC").
		Find(&orders).Error
	return orders, err
}

// Update - 更新訂單狀態
func (d *DbDao) UpdateOrderStatus(ctx context.Context, orderID uint, status model.OrderStatus) error {
	return d.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Update("status", status).Error
}
