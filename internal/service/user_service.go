package service

import (
	"context"
	"errors"

	"github.com/MateuszRostek/book-store/internal/infra/repository/db"
	"github.com/MateuszRostek/book-store/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterUserModel struct {
	Email           string
	Password        string
	FirstName       string
	LastName        string
	ShippingAddress string
}

type IUserService interface {
	RegisterUser(ctx context.Context, arg RegisterUserModel) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, userID uint) (*model.User, error)
	ResolveActor(ctx context.Context, userID uint) (Actor, error)
}

type UserService struct {
	store db.IStore
}

func NewUserService(store db.IStore) IUserService {
	return &UserService{
		store: store,
	}
}

// RegisterUser 註冊用戶
// 用戶與其專屬購物車在同一個transaction建立
func (s *UserService) RegisterUser(ctx context.Context, arg RegisterUserModel) (*model.User, error) {
	// 檢查email是否已存在
	existing, err := s.GetUserByEmail(ctx, arg.Email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(arg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:           arg.Email,
		HashPassword:    string(hashed),
		FirstName:       arg.FirstName,
		LastName:        arg.LastName,
		ShippingAddress: arg.ShippingAddress,
	}

	err = s.store.ExecTx(ctx, func(tx db.IStore) error {
		if err := tx.CreateUser(ctx, user); err != nil {
			return storageError(err)
		}
		return tx.CreateCart(ctx, &model.ShoppingCart{UserID: user.UserID})
	})
	if err != nil {
		return nil, ensureDomain(err)
	}
	return user, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storageError(err)
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, notFoundOrStorage(err, ErrUserNotFound)
	}
	return user, nil
}

// ResolveActor 從token payload的userID解析出操作者身分(含角色)
func (s *UserService) ResolveActor(ctx context.Context, userID uint) (Actor, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return Actor{}, err
	}
	return Actor{UserID: user.UserID, IsAdmin: user.IsAdmin}, nil
}
