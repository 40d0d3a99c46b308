package handler

import (
	"github.com/labstack/echo/v4"

	"vidyashare/internal/usecase"
	"vidyashare/pkg/errors"
	"vidyashare/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type addReviewRequest struct {
	Rating  int      `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string   `json:"comment" validate:"required"`
	Images  []string `json:"images"`
}

func (h *ReviewHandler) AddBookReview(c echo.Context) error {
	var req addReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	reviewerID := c.Get("uid").(string)
	bookID := c.Param("bookId")

	review, err := h.reviewUseCase.AddBookReview(c.Request().Context(), reviewerID, bookID, usecase.CreateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
		Images:  req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, echo.Map{
		"message": "Review added successfully",
		"review":  review,
	})
}
