package handler

import (
	"errors"
	"net/http"

	"github.com/MateuszRostek/book-store/internal/service"
	"github.com/MateuszRostek/book-store/internal/util"
	"github.com/MateuszRostek/book-store/pkg/api"
)

// 將domain error轉成對應的http status
func domainErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrBookNotFound),
		errors.Is(err, service.ErrCartItemNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrOrderItemNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, service.ErrInvalidCredential):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrMissingAddress):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrTxConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func handleServiceError(w http.ResponseWriter, err error) {
	status := domainErrorStatus(err)
	if status == http.StatusInternalServerError {
		api.ErrorJSON(w, status, nil, "internal server error")
		return
	}
	api.ErrorJSON(w, status, err, "")
}

// 從token payload解析操作者身分，未登入或用戶不存在回傳錯誤
func resolveActor(r *http.Request, userService service.IUserService) (service.Actor, error) {
	payload := util.GetTokenPayloadFromContext[uint](r.Context())
	if payload == nil {
		return service.Actor{}, service.ErrAccessDenied
	}
	return userService.ResolveActor(r.Context(), payload.UserId)
}
