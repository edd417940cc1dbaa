package service

import (
	"context"

	"github.com/MateuszRostek/book-store/internal/infra/repository/db"
	"github.com/MateuszRostek/book-store/internal/model"
)

type IBookService interface {
	CreateBook(ctx context.Context, actor Actor, book *model.Book) (*model.Book, error)
	GetBookByID(ctx context.Context, bookID uint) (*model.Book, error)
	GetBooksPaginated(ctx context.Context, page, pageSize int) ([]model.Book, int64, error)
	SearchBooks(ctx context.Context, params db.BookSearchParams) ([]model.Book, error)
	UpdateBook(ctx context.Context, actor Actor, book *model.Book) (*model.Book, error)
	DeleteBook(ctx context.Context, actor Actor, bookID uint) error
	GetBooksByCategoryID(ctx context.Context, categoryID uint) ([]model.Book, error)
}

// BookService 目錄維護，讀取開放，寫入僅管理員
// 書價異動不影響既有訂單，訂單項目持有下單當下的價格快照
type BookService struct {
	bookStore db.IBookStore
	guard     IAccessGuard
}

func NewBookService(bookStore db.IBookStore, guard IAccessGuard) IBookService {
	return &BookService{
		bookStore: bookStore,
		guard:     guard,
	}
}

func (s *BookService) CreateBook(ctx context.Context, actor Actor, book *model.Book) (*model.Book, error) {
	if err := s.guard.AuthorizeAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.bookStore.CreateBook(ctx, book); err != nil {
		return nil, storageError(err)
	}
	return book, nil
}

func (s *BookService) GetBookByID(ctx context.Context, bookID uint) (*model.Book, error) {
	book, err := s.bookStore.GetBookByID(ctx, bookID)
	if err != nil {
		return nil, notFoundOrStorage(err, ErrBookNotFound)
	}
	return book, nil
}

func (s *BookService) GetBooksPaginated(ctx context.Context, page, pageSize int) ([]model.Book, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	books, total, err := s.bookStore.GetBooksPaginated(ctx, page, pageSize)
	if err != nil {
		return nil, 0, storageError(err)
	}
	return books, total, nil
}

func (s *BookService) SearchBooks(ctx context.Context, params db.BookSearchParams) ([]model.Book, error) {
	books, err := s.bookStore.SearchBooks(ctx, params)
	if err != nil {
		return nil, storageError(err)
	}
	return books, nil
}

func (s *BookService) UpdateBook(ctx context.Context, actor Actor, book *model.Book) (*model.Book, error) {
	if err := s.guard.AuthorizeAdmin(actor); err != nil {
		return nil, err
	}
	if _, err := s.bookStore.GetBookByID(ctx, book.BookID); err != nil {
		return nil, notFoundOrStorage(err, ErrBookNotFound)
	}
	if err := s.bookStore.UpdateBook(ctx, book); err != nil {
		return nil, storageError(err)
	}
	return book, nil
}

func (s *BookService) DeleteBook(ctx context.Context, actor Actor, bookID uint) error {
	if err := s.guard.AuthorizeAdmin(actor); err != nil {
		return err
	}
	if _, err := s.bookStore.GetBookByID(ctx, bookID); err != nil {
		return notFoundOrStorage(err, ErrBookNotFound)
	}
	if err := s.bookStore.DeleteBook(ctx, bookID); err != nil {
		return storageError(err)
	}
	return nil
}

func (s *BookService) GetBooksByCategoryID(ctx context.Context, categoryID uint) ([]model.Book, error) {
	books, err := s.bookStore.GetBooksByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, storageError(err)
	}
	return books, nil
}
