package service

import (
	"context"
	"errors"
	"time"

	"github.com/MateuszRostek/book-store/internal/infra/producer"
	"github.com/MateuszRostek/book-store/internal/infra/repository/db"
	"github.com/MateuszRostek/book-store/internal/model"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type IOrderService interface {
	PlaceOrder(ctx context.Context, actor Actor, shippingAddress string) (*model.Order, error)
	GetOrderHistory(ctx context.Context, actor Actor) ([]model.Order, error)
	GetOrder(ctx context.Context, actor Actor, orderID uint) (*model.Order, error)
	GetAllItemsFromOrder(ctx context.Context, actor Actor, orderID uint) ([]model.OrderItem, error)
	GetItemFromOrder(ctx context.Context, actor Actor, orderID, orderItemID uint) (*model.OrderItem, error)
	UpdateOrderStatus(ctx context.Context, actor Actor, orderID uint, status string) (*model.Order, error)
}

type OrderService struct {
	store         db.IStore
	guard         IAccessGuard
	eventProducer producer.IOrderEventProducer
}

func NewOrderService(store db.IStore, guard IAccessGuard, eventProducer producer.IOrderEventProducer) IOrderService {
	return &OrderService{
		store:         store,
		guard:         guard,
		eventProducer: eventProducer,
	}
}

// PlaceOrder 將購物車轉為訂單
// 讀購物車、建訂單、清空購物車是同一個transaction，
// 任何一步失敗整筆rollback，不會出現訂單已建立但購物車沒清的狀態
// 訂單項目快照下單當下書價，總額用decimal精確計算
func (s *OrderService) PlaceOrder(ctx context.Context, actor Actor, shippingAddress string) (*model.Order, error) {
	if shippingAddress == "" {
		return nil, ErrMissingAddress
	}

	var placed *model.Order
	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		cart, err := tx.GetCartWithItemsByUserID(ctx, actor.UserID)
		if err != nil {
			return notFoundOrStorage(err, ErrEmptyCart)
		}
		if len(cart.CartItems) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		orderItems := make([]model.OrderItem, 0, len(cart.CartItems))
		for _, cartItem := range cart.CartItems {
			book, err := tx.GetBookByID(ctx, cartItem.BookID)
			if err != nil {
				return notFoundOrStorage(err, ErrBookNotFound)
			}

			total = total.Add(book.Price.Mul(decimal.NewFromInt(int64(cartItem.Quantity))))
			orderItems = append(orderItems, model.OrderItem{
				BookID:   cartItem.BookID,
				Quantity: cartItem.Quantity,
				Price:    book.Price,
			})
		}

		order := &model.Order{
			UserID:          actor.UserID,
			Status:          model.OrderStatusPending,
			Total:           total,
			OrderDate:       time.Now(),
			ShippingAddress: shippingAddress,
			OrderItems:      orderItems,
		}
		if err := tx.CreateOrder(ctx, order); err != nil {
			return storageError(err)
		}

		if err := tx.DeleteAllCartItemsByCartID(ctx, cart.CartID); err != nil {
			return storageError(err)
		}

		placed = order
		return nil
	})
	if err != nil {
		return nil, ensureDomain(err)
	}

	// 事件發布在commit之後，db才是資料真實來源，發送失敗只記log不回滾訂單
	if err := s.eventProducer.ProduceOrderPlacedEvent(ctx, placed); err != nil {
		log.Warn().Err(err).Uint("order_id", placed.OrderID).Msg("produce order placed event failed")
	}

	return placed, nil
}

// GetOrderHistory 取得操作者自己的訂單(含項目)，新到舊排序
func (s *OrderService) GetOrderHistory(ctx context.Context, actor Actor) ([]model.Order, error) {
	orders, err := s.store.GetOrdersByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, storageError(err)
	}
	return orders, nil
}

// GetOrder 取得單筆訂單(含項目)，擁有者或管理員才可讀取
func (s *OrderService) GetOrder(ctx context.Context, actor Actor, orderID uint) (*model.Order, error) {
	return s.findOrderForActor(ctx, actor, orderID)
}

// GetAllItemsFromOrder 取得訂單所有項目，擁有者或管理員才可讀取
func (s *OrderService) GetAllItemsFromOrder(ctx context.Context, actor Actor, orderID uint) ([]model.OrderItem, error) {
	order, err := s.findOrderForActor(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	return order.OrderItems, nil
}

// GetItemFromOrder 取得訂單內指定項目
func (s *OrderService) GetItemFromOrder(ctx context.Context, actor Actor, orderID, orderItemID uint) (*model.OrderItem, error) {
	order, err := s.findOrderForActor(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}

	item := order.FindItemByID(orderItemID)
	if item == nil {
		return nil, ErrOrderItemNotFound
	}
	return item, nil
}

// UpdateOrderStatus 訂單狀態轉移，僅管理員可操作
// 狀態字串先驗證再讀db，終結狀態不允許再轉移
func (s *OrderService) UpdateOrderStatus(ctx context.Context, actor Actor, orderID uint, status string) (*model.Order, error) {
	if err := s.guard.AuthorizeAdmin(actor); err != nil {
		return nil, err
	}

	newStatus, ok := model.ParseOrderStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	var updated *model.Order
	var from model.OrderStatus
	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		order, err := tx.GetOrderWithItemsByID(ctx, orderID)
		if err != nil {
			return notFoundOrStorage(err, ErrOrderNotFound)
		}
		if order.Status.IsTerminal() {
			return ErrInvalidTransition
		}

		if err := tx.UpdateOrderStatus(ctx, orderID, newStatus); err != nil {
			return storageError(err)
		}

		from = order.Status
		order.Status = newStatus
		updated = order
		return nil
	})
	if err != nil {
		return nil, ensureDomain(err)
	}

	if err := s.eventProducer.ProduceOrderStatusChangedEvent(ctx, updated, from); err != nil {
		log.Warn().Err(err).Uint("order_id", updated.OrderID).Msg("produce order status changed event failed")
	}

	return updated, nil
}

func (s *OrderService) findOrderForActor(ctx context.Context, actor Actor, orderID uint) (*model.Order, error) {
	order, err := s.store.GetOrderWithItemsByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, storageError(err)
	}

	if err := s.guard.Authorize(actor, order.UserID); err != nil {
		return nil, err
	}
	return order, nil
}
