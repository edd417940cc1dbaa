package service

import (
	"context"
	"errors"

	"github.com/MateuszRostek/book-store/internal/constants"
	"github.com/MateuszRostek/book-store/internal/model"
	"github.com/MateuszRostek/book-store/internal/token"
	"golang.org/x/crypto/bcrypt"
)

type LoginResult struct {
	AccessToken string
	User        *model.User
}

type IAuthService interface {
	Login(ctx context.Context, email string, password string) (*LoginResult, error)
}

type AuthService struct {
	userService IUserService
	tokenMaker  token.Maker[uint]
}

func NewAuthService(userService IUserService, tokenMaker token.Maker[uint]) IAuthService {
	return &AuthService{
		userService: userService,
		tokenMaker:  tokenMaker,
	}
}

// Login 驗證帳密並簽發access token
func (s *AuthService) Login(ctx context.Context, email string, password string) (*LoginResult, error) {
	user, err := s.userService.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}

	accessToken, _, err := s.tokenMaker.CreateToken(user.Email, user.UserID, constants.AccessTokenDuration)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: accessToken,
		User:        user,
	}, nil
}
