package model

// 一個用戶只有一台購物車，商品合併邏輯在 service 層處理
type ShoppingCart struct {
	BaseModel
	CartID    uint       `gorm:"primaryKey"`
	UserID    uint       `gorm:"not null;uniqueIndex"`
	CartItems []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

type CartItem struct {
	BaseModel
	CartItemID uint `gorm:"primaryKey"`
	CartID     uint `gorm:"not null;index"`
	BookID     uint `gorm:"not null"`
	Quantity   int  `gorm:"not null"`
}

// FindItemByBookID 尋找購物車內相同書籍的項目，合併數量時使用
func (c *ShoppingCart) FindItemByBookID(bookID uint) *CartItem {
	for i := range c.CartItems {
		if c.CartItems[i].BookID == bookID {
			return &c.CartItems[i]
		}
	}
	return nil
}
