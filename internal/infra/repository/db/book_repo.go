package db

import (
	"context"

	"github.com/MateuszRostek/book-store/internal/model"
	"github.com/shopspring/decimal"
)

type BookSearchParams struct {
	Title    string
	Author   string
	ISBN     string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// Create - 創建書籍
func (d *DbDao) CreateBook(ctx context.Context, book *model.Book) error {
	return d.WithContext(ctx).Create(book).Error
}

// Read - 根據ID查詢書籍
func (d *DbDao) GetBookByID(ctx context.Context, bookID uint) (*model.Book, error) {
	var book model.Book
	err := d.WithContext(ctx).Preload("Categories").First(&book, "book_id = ?", bookID).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// 分頁查詢書籍
func (d *DbDao) GetBooksPaginated(ctx context.Context, page, pageSize int) ([]model.Book, int64, error) {
	var books []model.Book
	var total int64

	offset := (page - 1) * pageSize

	// 計算總數
	d.WithContext(ctx).Model(&model.Book{}).Count(&total)

	// 分頁查詢
	err := d.WithContext(ctx).Preload("Categories").
		Order("book_id").
		Offset(offset).Limit(pageSize).
		Find(&books).Error

	return books, total, err
}

// 根據條件查詢書籍
func (d *DbDao) SearchBooks(ctx context.Context, params BookSearchParams) ([]model.Book, error) {
	query := d.WithContext(ctx).Model(&model.Book{})

	if params.Title != "" {
		query = query.Where("title ILIKE ?", "%"+params.Title+"%")
	}
	if params.Author != "" {
		query = query.Where("author ILIKE ?", "%"+params.Author+"%")
	}
	if params.ISBN != "" {
		query = query.Where("isbn = ?", params.ISBN)
	}
	if params.MinPrice != nil {
		query = query.Where("price >= ?", params.MinPrice)
	}
	if params.MaxPrice != nil {
		query = query.Where("price <= ?", params.MaxPrice)
	}

	var books []model.Book
	err := query.Preload("Categories").Order("book_id").Find(&books).Error
	return books, err
}

// Update - 更新書籍
func (d *DbDao) UpdateBook(ctx context.Context, book *model.Book) error {
	return d.WithContext(ctx).Save(book).Error
}

// Delete - 軟刪除書籍，不影響已存在的訂單快照
func (d *DbDao) DeleteBook(ctx context.Context, bookID uint) error {
	return d.WithContext(ctx).Where("book_id = ?", bookID).Delete(&model.Book{}).Error
}

// Read - 根據分類查詢書籍
func (d *DbDao) GetBooksByCategoryID(ctx context.Context, categoryID uint) ([]model.Book, error) {
	var books []model.Book
	err := d.WithContext(ctx).
		Joins("JOIN book_categories ON book_categories.book_book_id = books.book_id").
		Where("book_categories.category_category_id = ?", categoryID).
		Find(&books).Error
	return books, err
}
