package router

import (
	"github.com/labstack/echo/v4"

	"vidyashare/internal/adapter/api/handler"
	"vidyashare/internal/adapter/api/middleware"
)

func SetupSubscriptionRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	subscriptionHandler := handler.GetSubscriptionHandler()

	premium := e.Group("/api/premium")
	premium.Use(authMiddleware.Authenticate)
	premium.POST("/subscribe", subscriptionHandler.Subscribe)
	premium.GET("/subscriptions", subscriptionHandler.ListSubscriptions)
}
