package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MateuszRostek/book-store/internal/api/dto"
	"github.com/MateuszRostek/book-store/internal/infra/repository/db"
	"github.com/MateuszRostek/book-store/internal/model"
	"github.com/MateuszRostek/book-store/internal/service"
	"github.com/MateuszRostek/book-store/pkg/api"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type BookHandler struct {
	bookService service.IBookService
	userService service.IUserService
}

func NewBookHandler(bookService service.IBookService, userService service.IUserService) *BookHandler {
	if bookService == nil {
		panic("bookService cannot be nil")
	}
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &BookHandler{
		bookService: bookService,
		userService: userService,
	}
}

func parseBookID(r *http.Request) (uint, error) {
	bookID, err := strconv.ParseUint(chi.URLParam(r, "bookID"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(bookID), nil
}

func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	var createDTO dto.CreateBookDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	price, err := decimal.NewFromString(createDTO.Price)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid price")
		return
	}

	categories := make([]model.Category, 0, len(createDTO.CategoryIDs))
	for _, id := range createDTO.CategoryIDs {
		categories = append(categories, model.Category{CategoryID: id})
	}

	book, err := h.bookService.CreateBook(r.Context(), actor, &model.Book{
		Title:       createDTO.Title,
		Author:      createDTO.Author,
		ISBN:        createDTO.ISBN,
		Price:       price,
		Description: createDTO.Description,
		CoverImage:  createDTO.CoverImage,
		Categories:  categories,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.CreatedJSON(w, convertBookModelToDTO(book))
}

func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := parseBookID(r)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid book id")
		return
	}

	book, err := h.bookService.GetBookByID(r.Context(), bookID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertBookModelToDTO(book))
}

func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	books, total, err := h.bookService.GetBooksPaginated(r.Context(), page, pageSize)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	res := make([]dto.BookDTO, 0, len(books))
	for i := range books {
		res = append(res, convertBookModelToDTO(&books[i]))
	}
	api.SuccessJSON(w, dto.BookPageDTO{
		Books:    res,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	})
}

func (h *BookHandler) SearchBooks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := db.BookSearchParams{
		Title:  query.Get("title"),
		Author: query.Get("author"),
		ISBN:   query.Get("isbn"),
	}

	if v := query.Get("min_price"); v != "" {
		minPrice, err := decimal.NewFromString(v)
		if err != nil {
			api.ErrorJSON(w, http.StatusBadRequest, err, "invalid min_price")
			return
		}
		params.MinPrice = &minPrice
	}
	if v := query.Get("max_price"); v != "" {
		maxPrice, err := decimal.NewFromString(v)
		if err != nil {
			api.ErrorJSON(w, http.StatusBadRequest, err, "invalid max_price")
			return
		}
		params.MaxPrice = &maxPrice
	}

	books, err := h.bookService.SearchBooks(r.Context(), params)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	res := make([]dto.BookDTO, 0, len(books))
	for i := range books {
		res = append(res, convertBookModelToDTO(&books[i]))
	}
	api.SuccessJSON(w, res)
}

func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	bookID, err := parseBookID(r)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid book id")
		return
	}

	var updateDTO dto.UpdateBookDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	price, err := decimal.NewFromString(updateDTO.Price)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid price")
		return
	}

	book, err := h.bookService.UpdateBook(r.Context(), actor, &model.Book{
		BookID:      bookID,
		Title:       updateDTO.Title,
		Author:      updateDTO.Author,
		ISBN:        updateDTO.ISBN,
		Price:       price,
		Description: updateDTO.Description,
		CoverImage:  updateDTO.CoverImage,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertBookModelToDTO(book))
}

func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	actor, err := resolveActor(r, h.userService)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	bookID, err := parseBookID(r)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid book id")
		return
	}

	if err := h.bookService.DeleteBook(r.Context(), actor, bookID); err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, "deleted")
}

func (h *BookHandler) GetBooksByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseUint(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid category id")
		return
	}

	books, err := h.bookService.GetBooksByCategoryID(r.Context(), uint(categoryID))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	res := make([]dto.BookDTO, 0, len(books))
	for i := range books {
		res = append(res, convertBookModelToDTO(&books[i]))
	}
	api.SuccessJSON(w, res)
}
