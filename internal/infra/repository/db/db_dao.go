package db

import (
	"context"
	"errors"

	"github.com/MateuszRostek/book-store/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type ICartStore interface {
	GetCartWithItemsByUserID(ctx context.Context, userID uint) (*model.ShoppingCart, error)
	CreateCart(ctx context.Context, cart *model.ShoppingCart) error
	SaveCart(ctx context.Context, cart *model.ShoppingCart) error
	SaveCartItem(ctx context.Context, item *model.CartItem) error
	GetCartItemByID(ctx context.Context, cartItemID uint) (*model.CartItem, error)
	GetCartByID(ctx context.Context, cartID uint) (*model.ShoppingCart, error)
	DeleteCartItem(ctx context.Context, cartItemID uint) error
	DeleteAllCartItemsByCartID(ctx context.Context, cartID uint) error
}

type IOrderStore interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrderWithItemsByID(ctx context.Context, orderID uint) (*model.Order, error)
	GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, status model.OrderStatus) error
}

type IBookStore interface {
	CreateBook(ctx context.Context, book *model.Book) error
	GetBookByID(ctx context.Context, bookID uint) (*model.Book, error)
	GetBooksPaginated(ctx context.Context, page, pageSize int) ([]model.Book, int64, error)
	SearchBooks(ctx context.Context, params BookSearchParams) ([]model.Book, error)
	UpdateBook(ctx context.Context, book *model.Book) error
	DeleteBook(ctx context.Context, bookID uint) error
	GetBooksByCategoryID(ctx context.Context, categoryID uint) ([]model.Book, error)
}

type ICategoryStore interface {
	CreateCategory(ctx context.Context, category *model.Category) error
	GetCategoryByID(ctx context.Context, categoryID uint) (*model.Category, error)
	GetAllCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, categoryID uint) error
}

type IUserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, userID uint) (*model.User, error)
}

type IStore interface {
	ICartStore
	IOrderStore
	IBookStore
	ICategoryStore
	IUserStore

	// ExecTx 將fn內所有store操作包在同一個db transaction內，fn回傳錯誤則整筆rollback
	ExecTx(ctx context.Context, fn func(store IStore) error) error
}

type DbDao struct {
	*gorm.DB
}

func NewDbDao(conn *gorm.DB) *DbDao {
	return &DbDao{
		DB: conn,
	}
}

var _ IStore = (*DbDao)(nil)

// 初始化db schema
// 冪等性
func (d *DbDao) InitMigrate() error {
	return d.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Book{},
		&model.ShoppingCart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	)
}

func (d *DbDao) ExecTx(ctx context.Context, fn func(store IStore) error) error {
	return d.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewDbDao(tx))
	})
}

// IsSerializationFailure 判斷是否為transaction衝突類錯誤，caller可重試
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 40001: serialization_failure, 40P01: deadlock_detected
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}
