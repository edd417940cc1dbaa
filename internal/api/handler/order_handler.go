package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MateuszRostek/book-store/internal/api/dto"
	"github.com/MateuszRostek/book-store/internal/service"
	"github.com/MateuszRostek/book-store/pkg/api"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderService service.IOrderService
	userService  service.IUserService
}

func NewOrderHandler(orderService service.IOrderService, userService service.IUserService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
		userService:  userService,
	}
}

func parseOrderID(r *http.Request) (uint, error) {
	orderID, err := strconv.ParseUint(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(orderID), nil
}

func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	var placeDTO dto.PlaceOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&placeDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	order, err := h.orderService.PlaceOrder(r.Context(), actor, placeDTO.ShippingAddress)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.CreatedJSON(w, convertOrderModelToDTO(order))
}

func (h *OrderHandler) GetOrderHistory(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	orders, err := h.orderService.GetOrderHistory(r.Context(), actor)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	res := make([]dto.OrderDTO, 0, len(orders))
	for i := range orders {
		res = append(res, convertOrderModelToDTO(&orders[i]))
	}
	api.SuccessJSON(w, res)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	orderID, err := parseOrderID(r)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid order id")
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), actor, orderID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertOrderModelToDTO(order))
}

func (h *OrderHandler) GetOrderItems(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	orderID, err := parseOrderID(r)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid order id")
		return
	}

	items, err := h.orderService.GetAllItemsFromOrder(r.Context(), actor, orderID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	res := make([]dto.OrderItemDTO, 0, len(items))
	for i := range items {
		res = append(res, convertOrderItemModelToDTO(&items[i]))
	}
	api.SuccessJSON(w, res)
}

func (h *OrderHandler) GetOrderItem(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	orderID, err := parseOrderID(r)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid order id")
		return
	}

	orderItemID, err := strconv.ParseUint(chi.URLParam(r, "orderItemID"), 10, 64)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid order item id")
		return
	}

	item, err := h.orderService.GetItemFromOrder(r.Context(), actor, orderID, uint(orderItemID))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertOrderItemModelToDTO(item))
}

func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	orderID, err := parseOrderID(r)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid order id")
		return
	}

	var statusDTO dto.UpdateOrderStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&statusDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	order, err := h.orderService.UpdateOrderStatus(r.Context(), actor, orderID, statusDTO.Status)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertOrderModelToDTO(order))
}
