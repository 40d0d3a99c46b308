package handler

import (
	"github.com/labstack/echo/v4"

	"vidyashare/internal/usecase"
	"vidyashare/pkg/errors"
	"vidyashare/pkg/response"
)

type TransactionHandler struct {
	transactionUseCase *usecase.TransactionUseCase
}

func NewTransactionHandler(transactionUseCase *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
	}
}

type rentBookRequest struct {
	BookID         string `json:"bookId" validate:"required"`
	RentalDuration int    `json:"rentalDuration" validate:"required,gte=1"` // in months
}

func (h *TransactionHandler) RentBook(c echo.Context) error {
	var req rentBookRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	buyerID := c.Get("uid").(string)

	result, err := h.transactionUseCase.CreateRental(c.Request().Context(), buyerID, usecase.RentBookInput{
		BookID:         req.BookID,
		RentalDuration: req.RentalDuration,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, echo.Map{
		"message":         "Rental transaction created",
		"transaction":     result.Transaction,
		"paymentRequired": result.PaymentRequired,
	})
}

func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	callerID := c.Get("uid").(string)

	transaction, err := h.transactionUseCase.GetTransaction(c.Request().Context(), callerID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, echo.Map{
		"transaction": transaction,
	})
}
