package service

import (
	"context"
	"testing"

	"github.com/MateuszRostek/book-store/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func registerTestUser(t *testing.T, svc IUserService, email string) uint {
	t.Helper()
	user, err := svc.RegisterUser(context.Background(), RegisterUserModel{
		Email:           email,
		Password:        "secret123",
		FirstName:       "Jan",
		LastName:        "Kowalski",
		ShippingAddress: "Zielona 15, Lodz",
	})
	require.NoError(t, err)
	return user.UserID
}

func TestRegisterUser(t *testing.T) {
	store := newMockStore()
	svc := NewUserService(store)

	user, err := svc.RegisterUser(context.Background(), RegisterUserModel{
		Email:    "jan@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotZero(t, user.UserID)
	assert.False(t, user.IsAdmin)

	// 密碼必須雜湊儲存
	assert.NotEqual(t, "secret123", user.HashPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashPassword), []byte("secret123")))

	// 註冊同時建立專屬購物車
	cart, err := store.GetCartWithItemsByUserID(context.Background(), user.UserID)
	require.NoError(t, err)
	assert.Empty(t, cart.CartItems)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	store := newMockStore()
	svc := NewUserService(store)

	registerTestUser(t, svc, "jan@example.com")

	_, err := svc.RegisterUser(context.Background(), RegisterUserModel{
		Email:    "jan@example.com",
		Password: "another",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestResolveActor(t *testing.T) {
	store := newMockStore()
	svc := NewUserService(store)
	userID := registerTestUser(t, svc, "jan@example.com")

	actor, err := svc.ResolveActor(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, actor.UserID)
	assert.False(t, actor.IsAdmin)

	_, err = svc.ResolveActor(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func newTestTokenMaker(t *testing.T) token.Maker[uint] {
	t.Helper()
	maker, err := token.NewPasetoMaker[uint]("01234567890123456789012345678901")
	require.NoError(t, err)
	return maker
}

func TestLogin(t *testing.T) {
	store := newMockStore()
	userSvc := NewUserService(store)
	userID := registerTestUser(t, userSvc, "jan@example.com")

	maker := newTestTokenMaker(t)
	authSvc := NewAuthService(userSvc, maker)

	res, err := authSvc.Login(context.Background(), "jan@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, userID, res.User.UserID)

	payload, err := maker.VertifyToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, payload.UserId)
	assert.Equal(t, "jan@example.com", payload.UPN)
}

func TestLogin_WrongPassword(t *testing.T) {
	store := newMockStore()
	userSvc := NewUserService(store)
	registerTestUser(t, userSvc, "jan@example.com")

	authSvc := NewAuthService(userSvc, newTestTokenMaker(t))

	_, err := authSvc.Login(context.Background(), "jan@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestLogin_UnknownEmail(t *testing.T) {
	store := newMockStore()
	authSvc := NewAuthService(NewUserService(store), newTestTokenMaker(t))

	_, err := authSvc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}
