package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MateuszRostek/book-store/internal/model"
	"github.com/RoyceAzure/lab/rj_kafka/kafka/message"
	"github.com/RoyceAzure/lab/rj_kafka/kafka/producer"
	"github.com/shopspring/decimal"
)

// 需要根據userid做key分區，同一用戶的訂單事件保證順序
// topic: 由producer創建時設置

const (
	EventTypeOrderPlaced        = "order.placed"
	EventTypeOrderStatusChanged = "order.status_changed"
)

type OrderPlacedPayload struct {
	OrderID   uint                     `json:"order_id"`
	UserID    uint                     `json:"user_id"`
	Total     decimal.Decimal          `json:"total"`
	OrderDate time.Time                `json:"order_date"`
	Items     []OrderPlacedItemPayload `json:"items"`
}

type OrderPlacedItemPayload struct {
	BookID   uint            `json:"book_id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type OrderStatusChangedPayload struct {
	OrderID    uint              `json:"order_id"`
	UserID     uint              `json:"user_id"`
	FromStatus model.OrderStatus `json:"from_status"`
	ToStatus   model.OrderStatus `json:"to_status"`
}

type IOrderEventProducer interface {
	ProduceOrderPlacedEvent(ctx context.Context, order *model.Order) error
	ProduceOrderStatusChangedEvent(ctx context.Context, order *model.Order, from model.OrderStatus) error
}

type OrderEventProducer struct {
	producer producer.Producer
}

func NewOrderEventProducer(producer producer.Producer) IOrderEventProducer {
	return &OrderEventProducer{producer: producer}
}

func (p *OrderEventProducer) ProduceOrderPlacedEvent(ctx context.Context, order *model.Order) error {
	payload := OrderPlacedPayload{
		OrderID:   order.OrderID,
		UserID:    order.UserID,
		Total:     order.Total,
		OrderDate: order.OrderDate,
	}
	for _, item := range order.OrderItems {
		payload.Items = append(payload.Items, OrderPlacedItemPayload{
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	msg, err := p.convertToMessage(order.UserID, EventTypeOrderPlaced, payload)
	if err != nil {
		return err
	}
	return p.producer.Produce(ctx, []message.Message{msg})
}

func (p *OrderEventProducer) ProduceOrderStatusChangedEvent(ctx context.Context, order *model.Order, from model.OrderStatus) error {
	payload := OrderStatusChangedPayload{
		OrderID:    order.OrderID,
		UserID:     order.UserID,
		FromStatus: from,
		ToStatus:   order.Status,
	}

	msg, err := p.convertToMessage(order.UserID, EventTypeOrderStatusChanged, payload)
	if err != nil {
		return err
	}
	return p.producer.Produce(ctx, []message.Message{msg})
}

func (p *OrderEventProducer) convertToMessage(userID uint, eventType string, payload any) (message.Message, error) {
	value, err := json.Marshal(payload)
	if err != nil {
		return message.Message{}, err
	}

	msg := message.Message{
		Key:   []byte(fmt.Sprintf("%d", userID)),
		Value: value,
		Headers: []message.Header{
			{
				Key:   "event_type",
				Value: []byte(eventType),
			},
		},
	}
	return msg, nil
}
