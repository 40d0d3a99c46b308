package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "vidyashare/pkg/errors"
	"vidyashare/pkg/logger"
)

// ErrorBody is the only failure shape the API exposes: a single
// human-readable string, never internal error detail.
type ErrorBody struct {
	Error string `json:"error"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, ErrorBody{Error: validationMessage(validationErr)})
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			logger.Error("%s: %v", appErr.Message, appErr.Err)
		}
		return c.JSON(appErr.Status, ErrorBody{Error: appErr.Message})
	}

	logger.Error("unexpected error: %v", err)
	return c.JSON(http.StatusInternalServerError, ErrorBody{Error: "An unexpected error occurred"})
}

func validationMessage(validationErr validator.ValidationErrors) string {
	for _, err := range validationErr {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			return field + " is required"
		case "email":
			return field + " must be a valid email address"
		case "min":
			return field + " must be at least " + err.Param()
		case "max":
			return field + " must be at most " + err.Param()
		case "oneof":
			return field + " must be one of: " + err.Param()
		case "gte":
			return field + " must be " + err.Param() + " or more"
		default:
			return field + " is invalid"
		}
	}
	return "Invalid input data"
}
