package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MateuszRostek/book-store/internal/api/dto"
	"github.com/MateuszRostek/book-store/internal/model"
	"github.com/MateuszRostek/book-store/internal/service"
	"github.com/MateuszRostek/book-store/pkg/api"
	"github.com/go-chi/chi/v5"
)

type CategoryHandler struct {
	categoryService service.ICategoryService
	userService     service.IUserService
}

func NewCategoryHandler(categoryService service.ICategoryService, userService service.IUserService) *CategoryHandler {
	if categoryService == nil {
		panic("categoryService cannot be nil")
	}
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &CategoryHandler{
		categoryService: categoryService,
		userService:     userService,
	}
}

func parseCategoryID(r *http.Request) (uint, error) {
	categoryID, err := strconv.ParseUint(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(categoryID), nil
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	var createDTO dto.CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	category, err := h.categoryService.CreateCategory(r.Context(), actor, &model.Category{Name: createDTO.Name})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.CreatedJSON(w, convertCategoryModelToDTO(category))
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseCategoryID(r)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid category id")
		return
	}

	category, err := h.categoryService.GetCategoryByID(r.Context(), categoryID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertCategoryModelToDTO(category))
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.GetAllCategories(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	res := make([]dto.CategoryDTO, 0, len(categories))
	for i := range categories {
		res = append(res, convertCategoryModelToDTO(&categories[i]))
	}
	api.SuccessJSON(w, res)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	categoryID, err := parseCategoryID(r)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid category id")
		return
	}

	var updateDTO dto.CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	category, err := h.categoryService.UpdateCategory(r.Context(), actor, &model.Category{
		CategoryID: categoryID,
		Name:       updateDTO.Name,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertCategoryModelToDTO(category))
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	categoryID, err := parseCategoryID(r)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid category id")
		return
	}

	if err := h.categoryService.DeleteCategory(r.Context(), actor, categoryID); err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, "deleted")
}
