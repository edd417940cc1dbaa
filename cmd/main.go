package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MateuszRostek/book-store/internal/api"
	"github.com/MateuszRostek/book-store/internal/api/handler"
	"github.com/MateuszRostek/book-store/internal/api/router"
	"github.com/MateuszRostek/book-store/internal/appcontext"
	"github.com/MateuszRostek/book-store/internal/config"
	"github.com/rs/zerolog"
)

func main() {
	app, err := appcontext.NewApplicationContext(config.GetConfig())
	if err != nil {
		log.Fatal(err)
		return
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// 初始化 handler
	authHandler := handler.NewAuthHandler(app.AuthService, app.UserService)
	bookHandler := handler.NewBookHandler(app.BookService, app.UserService)
	categoryHandler := handler.NewCategoryHandler(app.CategoryService, app.UserService)
	cartHandler := handler.NewCartHandler(app.CartService, app.UserService)
	orderHandler := handler.NewOrderHandler(app.OrderService, app.UserService)

	server := api.NewServer(authHandler, bookHandler, categoryHandler, cartHandler, orderHandler)

	// 設置路由
	r := router.SetupRouter(server, app.TokenMaker, &logger)

	// 設定服務器參數
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", app.Cf.ServerPort),
		Handler: r,
	}

	// 設置訊號監聽
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutDonwCompleted := make(chan struct{}, 1)
	// 監聽退出訊號
	go func() {
		<-sigChan
		log.Println("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		if err := app.Shutdown(shutdownCtx); err != nil {
			log.Printf("Application shutdown error: %v", err)
		}

		shutDonwCompleted <- struct{}{}
	}()

	// 啟動服務
	log.Printf("Server starting on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal(err)
	}
	<-shutDonwCompleted
	log.Printf("closed completed")
}
