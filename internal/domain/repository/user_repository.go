package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
)

// UserRepository defines user data access. User administration is a
// super_admin concern, so these operations are not scope-parameterized; the
// usecase denies every other role before calling in.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, skip, limit int) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
	Count(ctx context.Context) (int64, error)
}
