package repository

import (
	"context"

	"vidyashare/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// UpdateFields applies a partial update; the caller is responsible for
	// stripping fields that must not be written through this path.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
}
