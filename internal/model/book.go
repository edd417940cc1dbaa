package model

import (
	"github.com/shopspring/decimal"
)

type Book struct {
	BaseModel
	BookID      uint            `gorm:"primaryKey"`
	Title       string          `gorm:"not null;type:varchar(255)"`
	Author      string          `gorm:"not null;type:varchar(255)"`
	ISBN        string          `gorm:"not null;type:varchar(50);unique"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	Description string          `gorm:"type:text"`
	CoverImage  string          `gorm:"type:varchar(255)"`
	Categories  []Category      `gorm:"many2many:book_categories"`
}

type Category struct {
	BaseModel
	CategoryID  uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null;type:varchar(100);unique"`
	Description string `gorm:"type:text"`
}
