package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
)

// SekolahRepository defines school data access
type SekolahRepository interface {
	Create(ctx context.Context, sekolah *entity.Sekolah) error
	Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*entity.Sekolah, error)
	List(ctx context.Context, scope access.Scope, skip, limit int) ([]*entity.Sekolah, error)
	Update(ctx context.Context, sekolah *entity.Sekolah) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, scope access.Scope) (int64, error)
}
