package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/MateuszRostek/book-store/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

func testDbEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type DbDaoTestSuite struct {
	suite.Suite
	db  *gorm.DB
	dao *DbDao
}

// SetupSuite 在測試套件開始前執行
func (suite *DbDaoTestSuite) SetupSuite() {
	db, err := GetDbConn(
		testDbEnv("POSTGRES_DB", "book_store_test"),
		testDbEnv("POSTGRES_HOST", "localhost"),
		testDbEnv("POSTGRES_PORT", "5432"),
		testDbEnv("POSTGRES_USER", "postgres"),
		testDbEnv("POSTGRES_PASSWORD", "postgres"),
	)
	require.NoError(suite.T(), err)

	dao := NewDbDao(db)
	err = dao.InitMigrate()
	require.NoError(suite.T(), err)

	suite.db = db
	suite.dao = dao
}

// SetupTest 在每個測試前執行
func (suite *DbDaoTestSuite) SetupTest() {
	// 清空資料表
	suite.db.Exec("DELETE FROM order_items")
	suite.db.Exec("DELETE FROM orders")
	suite.db.Exec("DELETE FROM cart_items")
	suite.db.Exec("DELETE FROM shopping_carts")
	suite.db.Exec("DELETE FROM book_categories")
	suite.db.Exec("DELETE FROM books")
	suite.db.Exec("DELETE FROM categories")
	suite.db.Exec("DELETE FROM users")
}

func (suite *DbDaoTestSuite) TearDownSuite() {
	db, err := suite.db.DB()
	require.NoError(suite.T(), err)
	db.Close()
}

func (suite *DbDaoTestSuite) createBook(title, price string) *model.Book {
	book := &model.Book{
		Title:  title,
		Author: "Tester",
		ISBN:   fmt.Sprintf("isbn-%s-%d", title, time.Now().UnixNano()),
		Price:  decimal.RequireFromString(price),
	}
	err := suite.dao.CreateBook(context.Background(), book)
	require.NoError(suite.T(), err)
	return book
}

func (suite *DbDaoTestSuite) createCartWithItem(userID uint, bookID uint, qty int) *model.ShoppingCart {
	cart := &model.ShoppingCart{UserID: userID}
	err := suite.dao.CreateCart(context.Background(), cart)
	require.NoError(suite.T(), err)

	err = suite.dao.SaveCartItem(context.Background(), &model.CartItem{
		CartID:   cart.CartID,
		BookID:   bookID,
		Quantity: qty,
	})
	require.NoError(suite.T(), err)
	return cart
}

func (suite *DbDaoTestSuite) TestCartRoundTrip() {
	ctx := context.Background()
	book := suite.createBook("Go in Action", "20.50")
	suite.createCartWithItem(5, book.BookID, 2)

	// 鎖定讀取需在transaction內
	err := suite.dao.ExecTx(ctx, func(tx IStore) error {
		cart, err := tx.GetCartWithItemsByUserID(ctx, 5)
		if err != nil {
			return err
		}
		require.Len(suite.T(), cart.CartItems, 1)
		require.Equal(suite.T(), 2, cart.CartItems[0].Quantity)
		return nil
	})
	require.NoError(suite.T(), err)
}

func (suite *DbDaoTestSuite) TestGetCartWithItemsByUserID_NotFound() {
	ctx := context.Background()
	err := suite.dao.ExecTx(ctx, func(tx IStore) error {
		_, err := tx.GetCartWithItemsByUserID(ctx, 404)
		return err
	})
	require.True(suite.T(), errors.Is(err, gorm.ErrRecordNotFound))
}

func (suite *DbDaoTestSuite) TestDeleteAllCartItemsByCartID() {
	ctx := context.Background()
	book := suite.createBook("Clean Code", "14.50")
	cart := suite.createCartWithItem(6, book.BookID, 3)

	err := suite.dao.DeleteAllCartItemsByCartID(ctx, cart.CartID)
	require.NoError(suite.T(), err)

	err = suite.dao.ExecTx(ctx, func(tx IStore) error {
		got, err := tx.GetCartWithItemsByUserID(ctx, 6)
		if err != nil {
			return err
		}
		require.Empty(suite.T(), got.CartItems)
		return nil
	})
	require.NoError(suite.T(), err)
}

func (suite *DbDaoTestSuite) TestCreateOrderCascadesItems() {
	ctx := context.Background()
	book := suite.createBook("DDD", "55.50")

	order := &model.Order{
		UserID:          7,
		Status:          model.OrderStatusPending,
		Total:           decimal.RequireFromString("55.50"),
		OrderDate:       time.Now(),
		ShippingAddress: "Zielona 15, Lodz",
		OrderItems: []model.OrderItem{
			{BookID: book.BookID, Quantity: 1, Price: book.Price},
		},
	}
	err := suite.dao.CreateOrder(ctx, order)
	require.NoError(suite.T(), err)
	require.NotZero(suite.T(), order.OrderID)

	got, err := suite.dao.GetOrderWithItemsByID(ctx, order.OrderID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), got.OrderItems, 1)
	require.True(suite.T(), got.Total.Equal(decimal.RequireFromString("55.50")))
}

func (suite *DbDaoTestSuite) TestGetOrdersByUserID_NewestFirst() {
	ctx := context.Background()
	book := suite.createBook("Refactoring", "30.00")

	older := &model.Order{
		UserID:    8,
		Status:    model.OrderStatusPending,
		Total:     book.Price,
		OrderDate: time.Now().Add(-time.Hour),
		OrderItems: []model.OrderItem{
			{BookID: book.BookID, Quantity: 1, Price: book.Price},
		},
	}
	require.NoError(suite.T(), suite.dao.CreateOrder(ctx, older))

	newer := &model.Order{
		UserID:    8,
		Status:    model.OrderStatusPending,
		Total:     book.Price,
		OrderDate: time.Now(),
		OrderItems: []model.OrderItem{
			{BookID: book.BookID, Quantity: 1, Price: book.Price},
		},
	}
	require.NoError(suite.T(), suite.dao.CreateOrder(ctx, newer))

	orders, err := suite.dao.GetOrdersByUserID(ctx, 8)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), orders, 2)
	require.Equal(suite.T(), newer.OrderID, orders[0].OrderID)
	require.Equal(suite.T(), older.OrderID, orders[1].OrderID)
}

func (suite *DbDaoTestSuite) TestUpdateOrderStatus() {
	ctx := context.Background()
	book := suite.createBook("TDD", "25.00")

	order := &model.Order{
		UserID:    9,
		Status:    model.OrderStatusPending,
		Total:     book.Price,
		OrderDate: time.Now(),
		OrderItems: []model.OrderItem{
			{BookID: book.BookID, Quantity: 1, Price: book.Price},
		},
	}
	require.NoError(suite.T(), suite.dao.CreateOrder(ctx, order))

	err := suite.dao.UpdateOrderStatus(ctx, order.OrderID, model.OrderStatusProcessing)
	require.NoError(suite.T(), err)

	got, err := suite.dao.GetOrderWithItemsByID(ctx, order.OrderID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), model.OrderStatusProcessing, got.Status)
}

func (suite *DbDaoTestSuite) TestExecTxRollback() {
	ctx := context.Background()
	book := suite.createBook("Rollback", "10.00")
	cart := suite.createCartWithItem(10, book.BookID, 1)

	failErr := errors.New("boom")
	err := suite.dao.ExecTx(ctx, func(tx IStore) error {
		if err := tx.DeleteAllCartItemsByCartID(ctx, cart.CartID); err != nil {
			return err
		}
		return failErr
	})
	require.ErrorIs(suite.T(), err, failErr)

	// rollback後購物車項目仍在
	err = suite.dao.ExecTx(ctx, func(tx IStore) error {
		got, err := tx.GetCartWithItemsByUserID(ctx, 10)
		if err != nil {
			return err
		}
		require.Len(suite.T(), got.CartItems, 1)
		return nil
	})
	require.NoError(suite.T(), err)
}

func (suite *DbDaoTestSuite) TestSearchBooks() {
	ctx := context.Background()
	suite.createBook("The Go Programming Language", "40.00")
	suite.createBook("Python Crash Course", "35.00")

	minPrice := decimal.RequireFromString("36.00")
	books, err := suite.dao.SearchBooks(ctx, BookSearchParams{Title: "go", MinPrice: &minPrice})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), books, 1)
	require.Equal(suite.T(), "The Go Programming Language", books[0].Title)
}

func TestDbDaoTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping db integration tests in short mode")
	}
	suite.Run(t, new(DbDaoTestSuite))
}
