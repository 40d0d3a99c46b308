package router

import (
	"github.com/labstack/echo/v4"

	"vidyashare/internal/adapter/api/handler"
	"vidyashare/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	reviews := e.Group("/api/reviews")
	reviews.Use(authMiddleware.Authenticate)
	reviews.POST("/book/:bookId", reviewHandler.AddBookReview)
}
