package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"vidyashare/internal/domain/entity"
	"vidyashare/internal/usecase"
	"vidyashare/pkg/errors"
	"vidyashare/pkg/response"
	"vidyashare/pkg/utils"
)

type BookHandler struct {
	bookUseCase *usecase.BookUseCase
}

func NewBookHandler(bookUseCase *usecase.BookUseCase) *BookHandler {
	return &BookHandler{
		bookUseCase: bookUseCase,
	}
}

type bookImagesRequest struct {
	FrontCover string   `json:"frontCover"`
	BackCover  string   `json:"backCover"`
	FirstPage  string   `json:"firstPage"`
	Additional []string `json:"additional"`
}

type bookLocationRequest struct {
	City    string `json:"city"`
	Area    string `json:"area"`
	Pincode string `json:"pincode"`
}

type createBookRequest struct {
	Title           string              `json:"title" validate:"required"`
	Author          string              `json:"author" validate:"required"`
	ISBN            string              `json:"isbn"`
	Category        string              `json:"category" validate:"required"`
	Language        string              `json:"language" validate:"required"`
	Publisher       string              `json:"publisher" validate:"required"`
	PublishYear     int                 `json:"publishYear" validate:"required"`
	Edition         string              `json:"edition"`
	Pages           int                 `json:"pages"`
	MRP             float64             `json:"mrp" validate:"required,gt=0"`
	SellingPrice    float64             `json:"sellingPrice" validate:"required,gt=0"`
	ListingType     string              `json:"listingType" validate:"required,oneof=rent sell"`
	Condition       string              `json:"condition" validate:"required,oneof=new excellent good fair"`
	ConditionNotes  string              `json:"conditionNotes"`
	Description     string              `json:"description" validate:"required"`
	Highlights      string              `json:"highlights"`
	Images          bookImagesRequest   `json:"images"`
	Location        bookLocationRequest `json:"location"`
	DeliveryOptions string              `json:"deliveryOptions" validate:"omitempty,oneof=pickup delivery both"`
	AvailableFrom   time.Time           `json:"availableFrom"`
	MinimumDuration int                 `json:"minimumDuration"`
}

func (h *BookHandler) ListBooks(c echo.Context) error {
	var minPrice, maxPrice float64
	if s := c.QueryParam("minPrice"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("Invalid minPrice", err))
		}
		minPrice = v
	}
	if s := c.QueryParam("maxPrice"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("Invalid maxPrice", err))
		}
		maxPrice = v
	}

	pagination := utils.GetPaginationParams(c)

	books, total, err := h.bookUseCase.ListBooks(c.Request().Context(), usecase.ListBooksInput{
		Category:    c.QueryParam("category"),
		Language:    c.QueryParam("language"),
		Condition:   c.QueryParam("condition"),
		ListingType: c.QueryParam("listingType"),
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
		Search:      c.QueryParam("search"),
		Sort:        c.QueryParam("sort"),
		Page:        pagination.Page,
		Limit:       pagination.PageSize,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, echo.Map{
		"books": books,
		"pagination": echo.Map{
			"total": total,
			"page":  pagination.Page,
			"pages": utils.TotalPages(total, pagination.PageSize),
		},
	})
}

func (h *BookHandler) GetBook(c echo.Context) error {
	book, err := h.bookUseCase.GetBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, book)
}

func (h *BookHandler) CreateBook(c echo.Context) error {
	var req createBookRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ownerID := c.Get("uid").(string)

	book, err := h.bookUseCase.CreateBook(c.Request().Context(), ownerID, usecase.CreateBookInput{
		Title:          req.Title,
		Author:         req.Author,
		ISBN:           req.ISBN,
		Category:       req.Category,
		Language:       req.Language,
		Publisher:      req.Publisher,
		PublishYear:    req.PublishYear,
		Edition:        req.Edition,
		Pages:          req.Pages,
		MRP:            req.MRP,
		SellingPrice:   req.SellingPrice,
		ListingType:    req.ListingType,
		Condition:      req.Condition,
		ConditionNotes: req.ConditionNotes,
		Description:    req.Description,
		Highlights:     req.Highlights,
		Images: entity.BookImages{
			FrontCover: req.Images.FrontCover,
			BackCover:  req.Images.BackCover,
			FirstPage:  req.Images.FirstPage,
			Additional: req.Images.Additional,
		},
		Location: entity.BookLocation{
			City:    req.Location.City,
			Area:    req.Location.Area,
			Pincode: req.Location.Pincode,
		},
		DeliveryOptions: req.DeliveryOptions,
		AvailableFrom:   req.AvailableFrom,
		MinimumDuration: req.MinimumDuration,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, echo.Map{
		"message": "Book listed successfully",
		"book":    book,
	})
}
