package router

import (
	"github.com/labstack/echo/v4"

	"vidyashare/internal/adapter/api/handler"
)

func SetupHealthRouter(e *echo.Echo) {
	healthHandler := handler.GetHealthHandler()

	e.GET("/api/health", healthHandler.HealthCheck)
}
