package router

import (
	"github.com/labstack/echo/v4"

	"vidyashare/internal/adapter/api/handler"
	"vidyashare/internal/adapter/api/middleware"
)

func SetupTransactionRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	transactionHandler := handler.GetTransactionHandler()

	transactions := e.Group("/api/transactions")
	transactions.Use(authMiddleware.Authenticate)
	transactions.POST("/rent", transactionHandler.RentBook)
	transactions.GET("/:id", transactionHandler.GetTransaction)
}
