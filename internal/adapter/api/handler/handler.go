package handler

import (
	"vidyashare/internal/usecase"
)

var (
	healthHandler       *HealthHandler
	authHandler         *AuthHandler
	bookHandler         *BookHandler
	transactionHandler  *TransactionHandler
	reviewHandler       *ReviewHandler
	subscriptionHandler *SubscriptionHandler
	userHandler         *UserHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	bookUseCase *usecase.BookUseCase,
	transactionUseCase *usecase.TransactionUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	subscriptionUseCase *usecase.SubscriptionUseCase,
	userUseCase *usecase.UserUseCase,
) {
	healthHandler = NewHealthHandler()
	authHandler = NewAuthHandler(authUseCase)
	bookHandler = NewBookHandler(bookUseCase)
	transactionHandler = NewTransactionHandler(transactionUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	subscriptionHandler = NewSubscriptionHandler(subscriptionUseCase)
	userHandler = NewUserHandler(userUseCase)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetBookHandler() *BookHandler {
	return bookHandler
}

func GetTransactionHandler() *TransactionHandler {
	return transactionHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetSubscriptionHandler() *SubscriptionHandler {
	return subscriptionHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}
