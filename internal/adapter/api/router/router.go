package router

import (
	"github.com/labstack/echo/v4"

	"vidyashare/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, authLimiter *middleware.RateLimiter) {
	SetupHealthRouter(e)
	SetupAuthRouter(e, authLimiter)
	SetupBookRouter(e, authMiddleware)
	SetupTransactionRouter(e, authMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupSubscriptionRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
}
