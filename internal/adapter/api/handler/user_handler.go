package handler

import (
	"github.com/labstack/echo/v4"

	"vidyashare/internal/usecase"
	"vidyashare/pkg/errors"
	"vidyashare/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	user, stats, err := h.userUseCase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, echo.Map{
		"user":  user,
		"stats": stats,
	})
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	updates := make(map[string]interface{})
	if err := c.Bind(&updates); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	userID := c.Get("uid").(string)

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), userID, updates)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, echo.Map{
		"message": "Profile updated successfully",
		"user":    user,
	})
}
