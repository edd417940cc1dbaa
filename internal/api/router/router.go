package router

import (
	"fmt"
	"net/http"

	"github.com/MateuszRostek/book-store/internal/api"
	m "github.com/MateuszRostek/book-store/internal/api/middleware"
	"github.com/MateuszRostek/book-store/internal/token"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, tokenMaker token.Maker[uint], logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(m.AuthPayloadMiddleware(tokenMaker))
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", server.AuthHandler.Register)
			r.Post("/login", server.AuthHandler.Login)
			r.With(m.AuthMiddleware).Get("/me", server.AuthHandler.Me)
		})

		// 目錄讀取開放，寫入在service層檢查管理員權限
		r.Route("/books", func(r chi.Router) {
			r.Get("/", server.BookHandler.ListBooks)
			r.Get("/search", server.BookHandler.SearchBooks)
			r.Get("/{bookID}", server.BookHandler.GetBook)
			r.With(m.AuthMiddleware).Post("/", server.BookHandler.CreateBook)
			r.With(m.AuthMiddleware).Put("/{bookID}", server.BookHandler.UpdateBook)
			r.With(m.AuthMiddleware).Delete("/{bookID}", server.BookHandler.DeleteBook)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", server.CategoryHandler.ListCategories)
			r.Get("/{categoryID}", server.CategoryHandler.GetCategory)
			r.Get("/{categoryID}/books", server.BookHandler.GetBooksByCategory)
			r.With(m.AuthMiddleware).Post("/", server.CategoryHandler.CreateCategory)
			r.With(m.AuthMiddleware).Put("/{categoryID}", server.CategoryHandler.UpdateCategory)
			r.With(m.AuthMiddleware).Delete("/{categoryID}", server.CategoryHandler.DeleteCategory)
		})

		r.Group(func(r chi.Router) {
			r.Use(m.AuthMiddleware)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", server.CartHandler.GetCart)
				r.Post("/items", server.CartHandler.AddItem)
				r.Put("/items/{cartItemID}", server.CartHandler.UpdateItemQuantity)
				r.Delete("/items/{cartItemID}", server.CartHandler.RemoveItem)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", server.OrderHandler.PlaceOrder)
				r.Get("/", server.OrderHandler.GetOrderHistory)
				r.Get("/{orderID}", server.OrderHandler.GetOrder)
				r.Get("/{orderID}/items", server.OrderHandler.GetOrderItems)
				r.Get("/{orderID}/items/{orderItemID}", server.OrderHandler.GetOrderItem)
				r.Patch("/{orderID}/status", server.OrderHandler.UpdateOrderStatus)
			})
		})
	})

	// 在設置完所有路由後打印路由樹
	fmt.Println(chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		fmt.Printf("%s %s\n", method, route)
		return nil
	}))
	return r
}
