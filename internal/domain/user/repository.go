package user

import (
	"context"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
