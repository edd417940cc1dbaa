package handler

import (
	"encoding/json"
	"net/http"

	"github.com/MateuszRostek/book-store/internal/api/dto"
	"github.com/MateuszRostek/book-store/internal/constants"
	"github.com/MateuszRostek/book-store/internal/service"
	"github.com/MateuszRostek/book-store/internal/util"
	"github.com/MateuszRostek/book-store/pkg/api"
)

type AuthHandler struct {
	authService service.IAuthService
	userService service.IUserService
}

func NewAuthHandler(authService service.IAuthService, userService service.IUserService) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

func (a *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var registerDTO dto.RegisterUserDTO
	if err := json.NewDecoder(r.Body).Decode(&registerDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if registerDTO.Email == "" || registerDTO.Password == "" {
		api.ErrorJSON(w, http.StatusBadRequest, nil, "email and password are required")
		return
	}

	user, err := a.userService.RegisterUser(r.Context(), service.RegisterUserModel{
		Email:           registerDTO.Email,
		Password:        registerDTO.Password,
		FirstName:       registerDTO.FirstName,
		LastName:        registerDTO.LastName,
		ShippingAddress: registerDTO.ShippingAddress,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.CreatedJSON(w, convertUserModelToDTO(user))
}

func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&loginDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	loginRes, err := a.authService.Login(r.Context(), loginDTO.Email, loginDTO.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.LoginResponse{
		AccessToken: dto.TokenInfo{
			Value:     loginRes.AccessToken,
			ExpiresIn: int(constants.AccessTokenDuration.Seconds()),
		},
		User: convertUserModelToDTO(loginRes.User),
	})
}

func (a *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	payload := util.GetTokenPayloadFromContext[uint](r.Context())
	if payload == nil {
		api.ErrorJSON(w, http.StatusUnauthorized, nil, "unauthenticated")
		return
	}

	user, err := a.userService.GetUserByID(r.Context(), payload.UserId)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertUserModelToDTO(user))
}
