package user

import (
	"context"

	"shipping-service/internal/domain"
)

type userRepository interface {
	Create(ctx context.Context, u *domain.User) (string, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUserProfile(ctx context.Context, p *domain.UserProfile) error
	CreateCourierProfile(ctx context.Context, p *domain.CourierProfile) error
}
