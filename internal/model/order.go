package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusComplete   OrderStatus = "COMPLETE"
)

// ParseOrderStatus 驗證狀態字串是否為合法狀態
func ParseOrderStatus(value string) (OrderStatus, bool) {
	switch OrderStatus(value) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusComplete:
		return OrderStatus(value), true
	default:
		return "", false
	}
}

// IsTerminal 終結狀態不允許再轉移
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled || s == OrderStatusComplete
}

func (s OrderStatus) String() string {
	return string(s)
}

type Order struct {
	BaseModel
	OrderID         uint            `gorm:"primaryKey"`
	UserID          uint            `gorm:"not null;index"`
	Status          OrderStatus     `gorm:"not null;type:varchar(20);default:'PENDING'"`
	Total           decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	OrderDate       time.Time       `gorm:"not null"`
	ShippingAddress string          `gorm:"not null;type:varchar(255)"`
	OrderItems      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem 下單當下快照書籍價格，之後書價異動不影響歷史訂單
type OrderItem struct {
	BaseModel
	OrderItemID uint            `gorm:"primaryKey"`
	OrderID     uint            `gorm:"not null;index"`
	BookID      uint            `gorm:"not null"`
	Quantity    int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
}

// FindItemByID 尋找訂單內指定項目
func (o *Order) FindItemByID(orderItemID uint) *OrderItem {
	for i := range o.OrderItems {
		if o.OrderItems[i].OrderItemID == orderItemID {
			return &o.OrderItems[i]
		}
	}
	return nil
}
