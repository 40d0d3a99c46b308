package handler

import (
	"github.com/labstack/echo/v4"

	"vidyashare/internal/usecase"
	"vidyashare/pkg/errors"
	"vidyashare/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	FirstName string   `json:"firstName" validate:"required"`
	LastName  string   `json:"lastName" validate:"required"`
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=6"`
	Phone     string   `json:"phone" validate:"required"`
	Address   string   `json:"address" validate:"required"`
	City      string   `json:"city" validate:"required"`
	Pincode   string   `json:"pincode" validate:"required"`
	College   string   `json:"college"`
	Interests []string `json:"interests"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// registeredUser is the public projection returned at registration; it
// never carries the password digest.
type registeredUser struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsPremium bool   `json:"isPremium"`
}

type loggedInUser struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	IsPremium     bool    `json:"isPremium"`
	WalletBalance float64 `json:"walletBalance"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		Pincode:   req.Pincode,
		College:   req.College,
		Interests: req.Interests,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, echo.Map{
		"message": "Registration successful",
		"token":   result.Token,
		"user": registeredUser{
			ID:        result.User.ID,
			FirstName: result.User.FirstName,
			LastName:  result.User.LastName,
			Email:     result.User.Email,
			IsPremium: result.User.IsPremium,
		},
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, echo.Map{
		"message": "Login successful",
		"token":   result.Token,
		"user": loggedInUser{
			ID:            result.User.ID,
			FirstName:     result.User.FirstName,
			LastName:      result.User.LastName,
			Email:         result.User.Email,
			IsPremium:     result.User.IsPremium,
			WalletBalance: result.User.WalletBalance,
		},
	})
}
