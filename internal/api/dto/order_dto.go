package dto

import "time"

type PlaceOrderDTO struct {
	ShippingAddress string `json:"shipping_address"`
}

type UpdateOrderStatusDTO struct {
	Status string `json:"status"`
}

type OrderItemDTO struct {
	OrderItemID uint   `json:"order_item_id"`
	BookID      uint   `json:"book_id"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
}

type OrderDTO struct {
	OrderID         uint           `json:"order_id"`
	UserID          uint           `json:"user_id"`
	Status          string         `json:"status"`
	Total           string         `json:"total"`
	OrderDate       time.Time      `json:"order_date"`
	ShippingAddress string         `json:"shipping_address"`
	Items           []OrderItemDTO `json:"items"`
}
