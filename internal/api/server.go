package api

import "github.com/MateuszRostek/book-store/internal/api/handler"

type Server struct {
	AuthHandler     *handler.AuthHandler
	BookHandler     *handler.BookHandler
	CategoryHandler *handler.CategoryHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
}

func NewServer(
	authHandler *handler.AuthHandler,
	bookHandler *handler.BookHandler,
	categoryHandler *handler.CategoryHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
) *Server {
	return &Server{
		AuthHandler:     authHandler,
		BookHandler:     bookHandler,
		CategoryHandler: categoryHandler,
		CartHandler:     cartHandler,
		OrderHandler:    orderHandler,
	}
}
