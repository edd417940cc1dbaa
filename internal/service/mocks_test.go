package service

import (
	"context"
	"sort"
	"sync"

	"github.com/MateuszRostek/book-store/internal/infra/repository/db"
	"github.com/MateuszRostek/book-store/internal/model"
	"gorm.io/gorm"
)

// mockStore 記憶體版IStore
// ExecTx用txMu串化併發transaction並在fn失敗時還原快照，模擬rollback與row lock行為
type mockStore struct {
	mu   sync.Mutex
	txMu sync.Mutex

	books      map[uint]model.Book
	categories map[uint]model.Category
	users      map[uint]model.User
	carts      map[uint]model.ShoppingCart
	cartItems  map[uint]model.CartItem
	orders     map[uint]model.Order

	nextBookID     uint
	nextCategoryID uint
	nextUserID     uint
	nextCartID     uint
	nextCartItemID uint
	nextOrderID    uint
	nextOrderItmID uint

	// 錯誤注入
	createOrderErr        error
	deleteAllCartItemsErr error
	saveCartItemErr       error
}

func newMockStore() *mockStore {
	return &mockStore{
		books:      make(map[uint]model.Book),
		categories: make(map[uint]model.Category),
		users:      make(map[uint]model.User),
		carts:      make(map[uint]model.ShoppingCart),
		cartItems:  make(map[uint]model.CartItem),
		orders:     make(map[uint]model.Order),
	}
}

var _ db.IStore = (*mockStore)(nil)

type mockSnapshot struct {
	carts     map[uint]model.ShoppingCart
	cartItems map[uint]model.CartItem
	orders    map[uint]model.Order
	users     map[uint]model.User
}

func (m *mockStore) snapshot() mockSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := mockSnapshot{
		carts:     make(map[uint]model.ShoppingCart, len(m.carts)),
		cartItems: make(map[uint]model.CartItem, len(m.cartItems)),
		orders:    make(map[uint]model.Order, len(m.orders)),
		users:     make(map[uint]model.User, len(m.users)),
	}
	for k, v := range m.carts {
		snap.carts[k] = v
	}
	for k, v := range m.cartItems {
		snap.cartItems[k] = v
	}
	for k, v := range m.orders {
		snap.orders[k] = copyOrder(v)
	}
	for k, v := range m.users {
		snap.users[k] = v
	}
	return snap
}

func (m *mockStore) restore(snap mockSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts = snap.carts
	m.cartItems = snap.cartItems
	m.orders = snap.orders
	m.users = snap.users
}

func (m *mockStore) ExecTx(ctx context.Context, fn func(store db.IStore) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	snap := m.snapshot()
	if err := fn(m); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

func copyOrder(o model.Order) model.Order {
	out := o
	out.OrderItems = make([]model.OrderItem, len(o.OrderItems))
	copy(out.OrderItems, o.OrderItems)
	return out
}

// --- cart ---

func (m *mockStore) GetCartWithItemsByUserID(_ context.Context, userID uint) (*model.ShoppingCart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, cart := range m.carts {
		if cart.UserID == userID {
			out := cart
			out.CartItems = m.itemsOfCartLocked(cart.CartID)
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStore) itemsOfCartLocked(cartID uint) []model.CartItem {
	items := []model.CartItem{}
	for _, item := range m.cartItems {
		if item.CartID == cartID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CartItemID < items[j].CartItemID })
	return items
}

func (m *mockStore) CreateCart(_ context.Context, cart *model.ShoppingCart) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextCartID++
	cart.CartID = m.nextCartID
	m.carts[cart.CartID] = model.ShoppingCart{CartID: cart.CartID, UserID: cart.UserID, BaseModel: cart.BaseModel}
	return nil
}

func (m *mockStore) SaveCart(_ context.Context, cart *model.ShoppingCart) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.carts[cart.CartID] = model.ShoppingCart{CartID: cart.CartID, UserID: cart.UserID, BaseModel: cart.BaseModel}
	for i := range cart.CartItems {
		item := &cart.CartItems[i]
		if item.CartItemID == 0 {
			m.nextCartItemID++
			item.CartItemID = m.nextCartItemID
		}
		item.CartID = cart.CartID
		m.cartItems[item.CartItemID] = *item
	}
	return nil
}

func (m *mockStore) SaveCartItem(_ context.Context, item *model.CartItem) error {
	if m.saveCartItemErr != nil {
		return m.saveCartItemErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if item.CartItemID == 0 {
		m.nextCartItemID++
		item.CartItemID = m.nextCartItemID
	}
	m.cartItems[item.CartItemID] = *item
	return nil
}

func (m *mockStore) GetCartItemByID(_ context.Context, cartItemID uint) (*model.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.cartItems[cartItemID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := item
	return &out, nil
}

func (m *mockStore) GetCartByID(_ context.Context, cartID uint) (*model.ShoppingCart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cart, ok := m.carts[cartID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := cart
	return &out, nil
}

func (m *mockStore) DeleteCartItem(_ context.Context, cartItemID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.cartItems, cartItemID)
	return nil
}

func (m *mockStore) DeleteAllCartItemsByCartID(_ context.Context, cartID uint) error {
	if m.deleteAllCartItemsErr != nil {
		return m.deleteAllCartItemsErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, item := range m.cartItems {
		if item.CartID == cartID {
			delete(m.cartItems, id)
		}
	}
	return nil
}

// --- order ---

func (m *mockStore) CreateOrder(_ context.Context, order *model.Order) error {
	if m.createOrderErr != nil {
		return m.createOrderErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextOrderID++
	order.OrderID = m.nextOrderID
	for i := range order.OrderItems {
		m.nextOrderItmID++
		order.OrderItems[i].OrderItemID = m.nextOrderItmID
		order.OrderItems[i].OrderID = order.OrderID
	}
	m.orders[order.OrderID] = copyOrder(*order)
	return nil
}

func (m *mockStore) GetOrderWithItemsByID(_ context.Context, orderID uint) (*model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[orderID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := copyOrder(order)
	return &out, nil
}

func (m *mockStore) GetOrdersByUserID(_ context.Context, userID uint) ([]model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	orders := []model.Order{}
	for _, order := range m.orders {
		if order.UserID == userID {
			orders = append(orders, copyOrder(order))
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].OrderDate.Equal(orders[j].OrderDate) {
			return orders[i].OrderDate.After(orders[j].OrderDate)
		}
		return orders[i].OrderID > orders[j].OrderID
	})
	return orders, nil
}

func (m *mockStore) UpdateOrderStatus(_ context.Context, orderID uint, status model.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[orderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	m.orders[orderID] = order
	return nil
}

// --- book ---

func (m *mockStore) CreateBook(_ context.Context, book *model.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if book.BookID == 0 {
		m.nextBookID++
		book.BookID = m.nextBookID
	}
	m.books[book.BookID] = *book
	return nil
}

func (m *mockStore) GetBookByID(_ context.Context, bookID uint) (*model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	book, ok := m.books[bookID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := book
	return &out, nil
}

func (m *mockStore) GetBooksPaginated(_ context.Context, page, pageSize int) ([]model.Book, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	books := m.allBooksLocked()
	total := int64(len(books))
	start := (page - 1) * pageSize
	if start >= len(books) {
		return []model.Book{}, total, nil
	}
	end := start + pageSize
	if end > len(books) {
		end = len(books)
	}
	return books[start:end], total, nil
}

func (m *mockStore) allBooksLocked() []model.Book {
	books := []model.Book{}
	for _, book := range m.books {
		books = append(books, book)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].BookID < books[j].BookID })
	return books
}

func (m *mockStore) SearchBooks(_ context.Context, params db.BookSearchParams) ([]model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.allBooksLocked(), nil
}

func (m *mockStore) UpdateBook(_ context.Context, book *model.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.books[book.BookID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.books[book.BookID] = *book
	return nil
}

func (m *mockStore) DeleteBook(_ context.Context, bookID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.books, bookID)
	return nil
}

func (m *mockStore) GetBooksByCategoryID(_ context.Context, categoryID uint) ([]model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	books := []model.Book{}
	for _, book := range m.books {
		for _, c := range book.Categories {
			if c.CategoryID == categoryID {
				books = append(books, book)
				break
			}
		}
	}
	return books, nil
}

// --- category ---

func (m *mockStore) CreateCategory(_ context.Context, category *model.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if category.CategoryID == 0 {
		m.nextCategoryID++
		category.CategoryID = m.nextCategoryID
	}
	m.categories[category.CategoryID] = *category
	return nil
}

func (m *mockStore) GetCategoryByID(_ context.Context, categoryID uint) (*model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	category, ok := m.categories[categoryID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := category
	return &out, nil
}

func (m *mockStore) GetAllCategories(_ context.Context) ([]model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	categories := []model.Category{}
	for _, category := range m.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].CategoryID < categories[j].CategoryID })
	return categories, nil
}

func (m *mockStore) UpdateCategory(_ context.Context, category *model.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.categories[category.CategoryID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.categories[category.CategoryID] = *category
	return nil
}

func (m *mockStore) DeleteCategory(_ context.Context, categoryID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.categories, categoryID)
	return nil
}

// --- user ---

func (m *mockStore) CreateUser(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if user.UserID == 0 {
		m.nextUserID++
		user.UserID = m.nextUserID
	}
	m.users[user.UserID] = *user
	return nil
}

func (m *mockStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Email == email {
			out := user
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStore) GetUserByID(_ context.Context, userID uint) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := user
	return &out, nil
}

// mockEventProducer 收集service發出的事件
type mockEventProducer struct {
	mu     sync.Mutex
	events []string
	err    error
}

func (m *mockEventProducer) ProduceOrderPlacedEvent(_ context.Context, order *model.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, "order.placed")
	return nil
}

func (m *mockEventProducer) ProduceOrderStatusChangedEvent(_ context.Context, order *model.Order, from model.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, "order.status_changed")
	return nil
}
