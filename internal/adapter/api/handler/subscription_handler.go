package handler

import (
	"github.com/labstack/echo/v4"

	"vidyashare/internal/usecase"
	"vidyashare/pkg/errors"
	"vidyashare/pkg/response"
)

type SubscriptionHandler struct {
	subscriptionUseCase *usecase.SubscriptionUseCase
}

func NewSubscriptionHandler(subscriptionUseCase *usecase.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUseCase: subscriptionUseCase,
	}
}

type subscribeRequest struct {
	Plan string `json:"plan" validate:"required"`
}

func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	subscription, err := h.subscriptionUseCase.Subscribe(c.Request().Context(), userID, req.Plan)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, echo.Map{
		"message":      "Premium subscription activated",
		"subscription": subscription,
	})
}

func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	userID := c.Get("uid").(string)

	subscriptions, err := h.subscriptionUseCase.ListSubscriptions(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, echo.Map{
		"subscriptions": subscriptions,
	})
}
