package model

type User struct {
	BaseModel
	UserID          uint   `gorm:"primaryKey"`
	Email           string `gorm:"unique;not null;type:varchar(100)"`
	HashPassword    string `gorm:"not null;type:varchar(255)"`
	FirstName       string `gorm:"not null;type:varchar(50)"`
	LastName        string `gorm:"not null;type:varchar(50)"`
	ShippingAddress string `gorm:"type:varchar(255)"`
	IsAdmin         bool   `gorm:"not null;default:false"`
	Orders          []Order `gorm:"foreignKey:UserID"`
}
