package router

import (
	"github.com/labstack/echo/v4"

	"vidyashare/internal/adapter/api/handler"
	"vidyashare/internal/adapter/api/middleware"
)

func SetupBookRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	bookHandler := handler.GetBookHandler()

	books := e.Group("/api/books")
	books.GET("", bookHandler.ListBooks)
	books.GET("/:id", bookHandler.GetBook)
	books.POST("", bookHandler.CreateBook, authMiddleware.Authenticate)
}
