package service

import (
	"context"

	"github.com/MateuszRostek/book-store/internal/infra/repository/db"
	"github.com/MateuszRostek/book-store/internal/model"
)

type ICategoryService interface {
	CreateCategory(ctx context.Context, actor Actor, category *model.Category) (*model.Category, error)
	GetCategoryByID(ctx context.Context, categoryID uint) (*model.Category, error)
	GetAllCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, actor Actor, category *model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, actor Actor, categoryID uint) error
}

type CategoryService struct {
	categoryStore db.ICategoryStore
	guard         IAccessGuard
}

func NewCategoryService(categoryStore db.ICategoryStore, guard IAccessGuard) ICategoryService {
	return &CategoryService{
		categoryStore: categoryStore,
		guard:         guard,
	}
}

func (s *CategoryService) CreateCategory(ctx context.Context, actor Actor, category *model.Category) (*model.Category, error) {
	if err := s.guard.AuthorizeAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.categoryStore.CreateCategory(ctx, category); err != nil {
		return nil, storageError(err)
	}
	return category, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, categoryID uint) (*model.Category, error) {
	category, err := s.categoryStore.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, notFoundOrStorage(err, ErrCategoryNotFound)
	}
	return category, nil
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryStore.GetAllCategories(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return categories, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, actor Actor, category *model.Category) (*model.Category, error) {
	if err := s.guard.AuthorizeAdmin(actor); err != nil {
		return nil, err
	}
	if _, err := s.categoryStore.GetCategoryByID(ctx, category.CategoryID); err != nil {
		return nil, notFoundOrStorage(err, ErrCategoryNotFound)
	}
	if err := s.categoryStore.UpdateCategory(ctx, category); err != nil {
		return nil, storageError(err)
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, actor Actor, categoryID uint) error {
	if err := s.guard.AuthorizeAdmin(actor); err != nil {
		return err
	}
	if _, err := s.categoryStore.GetCategoryByID(ctx, categoryID); err != nil {
		return notFoundOrStorage(err, ErrCategoryNotFound)
	}
	if err := s.categoryStore.DeleteCategory(ctx, categoryID); err != nil {
		return storageError(err)
	}
	return nil
}
