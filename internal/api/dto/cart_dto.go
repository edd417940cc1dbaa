package dto

type AddCartItemDTO struct {
	BookID   uint `json:"book_id"`
	Quantity int  `json:"quantity"`
}

type UpdateCartItemDTO struct {
	Quantity int `json:"quantity"`
}

type CartItemDTO struct {
	CartItemID uint   `json:"cart_item_id"`
	BookID     uint   `json:"book_id"`
	Title      string `json:"title,omitempty"`
	Quantity   int    `json:"quantity"`
}

type CartDTO struct {
	CartID uint          `json:"cart_id"`
	UserID uint          `json:"user_id"`
	Items  []CartItemDTO `json:"items"`
}
