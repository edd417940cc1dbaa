package db

import (
	"context"

	"github.com/MateuszRostek/book-store/internal/model"
)

// Create - 創建分類
func (d *DbDao) CreateCategory(ctx context.Context, category *model.Category) error {
	return d.WithContext(ctx).Create(category).Error
}

// Read - 根據ID查詢分類
func (d *DbDao) GetCategoryByID(ctx context.Context, categoryID uint) (*model.Category, error) {
	var category model.Category
	err := d.WithContext(ctx).First(&category, "category_id = ?", categoryID).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Read - 查詢所有分類
func (d *DbDao) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := d.WithContext(ctx).Order("category_id").Find(&categories).Error
	return categories, err
}

// Update - 更新分類
func (d *DbDao) UpdateCategory(ctx context.Context, category *model.Category) error {
	return d.WithContext(ctx).Save(category).Error
}

// Delete - 軟刪除分類
func (d *DbDao) DeleteCategory(ctx context.Context, categoryID uint) error {
	return d.WithContext(ctx).Where("category_id = ?", categoryID).Delete(&model.Category{}).Error
}
