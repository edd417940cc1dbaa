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

type CartHandler struct {
	cartService service.IShoppingCartService
	userService service.IUserService
}

func NewCartHandler(cartService service.IShoppingCartService, userService service.IUserService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &CartHandler{
		cartService: cartService,
		userService: userService,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	cart, err := h.cartService.GetCart(r.Context(), actor)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertCartModelToDTO(cart))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	var addDTO dto.AddCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&addDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	cart, err := h.cartService.AddItemToCart(r.Context(), actor, addDTO.BookID, addDTO.Quantity)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertCartModelToDTO(cart))
}

func (h *CartHandler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	cartItemID, err := strconv.ParseUint(chi.URLParam(r, "cartItemID"), 10, 64)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid cart item id")
		return
	}

	var updateDTO dto.UpdateCartItemDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	item, err := h.cartService.UpdateCartItemQuantity(r.Context(), actor, uint(cartItemID), updateDTO.Quantity)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.CartItemDTO{
		CartItemID: item.CartItemID,
		BookID:     item.BookID,
		Quantity:   item.Quantity,
	})
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	cartItemID, err := strconv.ParseUint(chi.URLParam(r, "cartItemID"), 10, 64)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid cart item id")
		return
	}

	if err := h.cartService.RemoveCartItem(r.Context(), actor, uint(cartItemID)); err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, "removed")
}
