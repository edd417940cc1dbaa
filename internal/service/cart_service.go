package service

import (
	"context"
	"errors"

	"github.com/MateuszRostek/book-store/internal/infra/repository/db"
	"github.com/MateuszRostek/book-store/internal/model"
	"gorm.io/gorm"
)

type IShoppingCartService interface {
	GetCart(ctx context.Context, actor Actor) (*model.ShoppingCart, error)
	AddItemToCart(ctx context.Context, actor Actor, bookID uint, quantity int) (*model.ShoppingCart, error)
	UpdateCartItemQuantity(ctx context.Context, actor Actor, cartItemID uint, quantity int) (*model.CartItem, error)
	RemoveCartItem(ctx context.Context, actor Actor, cartItemID uint) error
}

type ShoppingCartService struct {
	store db.IStore
	guard IAccessGuard
}

func NewShoppingCartService(store db.IStore, guard IAccessGuard) IShoppingCartService {
	return &ShoppingCartService{
		store: store,
		guard: guard,
	}
}

// GetCart 取得用戶購物車與其項目
// 購物車不存在時建立空車回傳，不視為錯誤
func (s *ShoppingCartService) GetCart(ctx context.Context, actor Actor) (*model.ShoppingCart, error) {
	var out *model.ShoppingCart
	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		cart, err := s.loadOrCreateCart(ctx, tx, actor.UserID)
		if err != nil {
			return err
		}
		out = cart
		return nil
	})
	if err != nil {
		return nil, ensureDomain(err)
	}
	return out, nil
}

// AddItemToCart 加入商品到購物車
// 同一本書已在車內則數量相加(合併，不覆蓋)，否則新增項目
// 讀取與寫入包在同一個transaction並鎖定購物車row，
// 避免兩個併發加入同本書都判斷"不存在"而產生兩筆項目
func (s *ShoppingCartService) AddItemToCart(ctx context.Context, actor Actor, bookID uint, quantity int) (*model.ShoppingCart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var out *model.ShoppingCart
	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		if _, err := tx.GetBookByID(ctx, bookID); err != nil {
			return notFoundOrStorage(err, ErrBookNotFound)
		}

		cart, err := s.loadOrCreateCart(ctx, tx, actor.UserID)
		if err != nil {
			return err
		}

		if existing := cart.FindItemByBookID(bookID); existing != nil {
			existing.Quantity += quantity
			if err := tx.SaveCartItem(ctx, existing); err != nil {
				return storageError(err)
			}
			out = cart
			return nil
		}

		cart.CartItems = append(cart.CartItems, model.CartItem{
			CartID:   cart.CartID,
			BookID:   bookID,
			Quantity: quantity,
		})
		if err := tx.SaveCart(ctx, cart); err != nil {
			return storageError(err)
		}
		out = cart
		return nil
	})
	if err != nil {
		return nil, ensureDomain(err)
	}
	return out, nil
}

// UpdateCartItemQuantity 覆蓋項目數量(非相加)
// 項目所屬購物車必須屬於操作者本人，管理員除外
func (s *ShoppingCartService) UpdateCartItemQuantity(ctx context.Context, actor Actor, cartItemID uint, quantity int) (*model.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var out *model.CartItem
	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		item, err := tx.GetCartItemByID(ctx, cartItemID)
		if err != nil {
			return notFoundOrStorage(err, ErrCartItemNotFound)
		}

		cart, err := tx.GetCartByID(ctx, item.CartID)
		if err != nil {
			return notFoundOrStorage(err, ErrCartItemNotFound)
		}
		if err := s.guard.Authorize(actor, cart.UserID); err != nil {
			return err
		}

		item.Quantity = quantity
		if err := tx.SaveCartItem(ctx, item); err != nil {
			return storageError(err)
		}
		out = item
		return nil
	})
	if err != nil {
		return nil, ensureDomain(err)
	}
	return out, nil
}

// RemoveCartItem 刪除購物車項目
// 項目已不存在視為已完成，重複刪除不回錯
func (s *ShoppingCartService) RemoveCartItem(ctx context.Context, actor Actor, cartItemID uint) error {
	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		item, err := tx.GetCartItemByID(ctx, cartItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return storageError(err)
		}

		cart, err := tx.GetCartByID(ctx, item.CartID)
		if err != nil {
			return notFoundOrStorage(err, ErrCartItemNotFound)
		}
		if err := s.guard.Authorize(actor, cart.UserID); err != nil {
			return err
		}

		if err := tx.DeleteCartItem(ctx, cartItemID); err != nil {
			return storageError(err)
		}
		return nil
	})
	return ensureDomain(err)
}

func (s *ShoppingCartService) loadOrCreateCart(ctx context.Context, tx db.IStore, userID uint) (*model.ShoppingCart, error) {
	cart, err := tx.GetCartWithItemsByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageError(err)
	}

	cart = &model.ShoppingCart{UserID: userID}
	if err := tx.CreateCart(ctx, cart); err != nil {
		return nil, storageError(err)
	}
	return cart, nil
}
