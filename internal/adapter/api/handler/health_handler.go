package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"vidyashare/pkg/response"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, echo.Map{
		"status":    "OK",
		"message":   "VidyaShare API is running!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
