package router

import (
	"github.com/labstack/echo/v4"

	"vidyashare/internal/adapter/api/handler"
	"vidyashare/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authLimiter *middleware.RateLimiter) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/api/auth")
	auth.Use(authLimiter.Middleware())
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
}
