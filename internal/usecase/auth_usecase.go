package usecase

import (
	"context"
	"time"

	"vidyashare/internal/domain/entity"
	"vidyashare/internal/domain/repository"
	"vidyashare/internal/infrastructure/auth"
	"vidyashare/pkg/errors"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenService
}

func NewAuthUseCase(userRepo repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Address   string
	City      string
	Pincode   string
	College   string
	Interests []string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("User already exists with this email", nil)
	}

	digest, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Internal("Registration failed", err)
	}

	now := time.Now()
	user := &entity.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  digest,
		Phone:     input.Phone,
		Address:   input.Address,
		City:      input.City,
		Pincode:   input.Pincode,
		College:   input.College,
		Interests: input.Interests,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, errors.Internal("Registration failed", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	// Unknown email and wrong password take different paths but must
	// produce the same response, so the account list cannot be enumerated.
	// Store failures are not part of that bargain and surface as such.
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.Unauthorized("Invalid credentials", nil)
		}
		return nil, err
	}

	if !uc.hasher.Verify(password, user.Password) {
		return nil, errors.Unauthorized("Invalid credentials", nil)
	}

	token, err := uc.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, errors.Internal("Login failed", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}
