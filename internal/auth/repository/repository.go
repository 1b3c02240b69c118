package repository

import (
	"context"

	authdomain "konasal-backend/internal/auth/domain"
)

// UserRepository defines persistence for user identity records. Identity
// mutation belongs to the auth service; other modules only read.
type UserRepository interface {
	Create(ctx context.Context, user *authdomain.User) error
	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)
	FindByID(ctx context.Context, id string) (*authdomain.User, error)
	Update(ctx context.Context, user *authdomain.User) error
	MarkVerified(ctx context.Context, id string) error
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
}
