package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
)

// DinasRepository defines district data access
type DinasRepository interface {
	Create(ctx context.Context, dinas *entity.Dinas) error
	Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*entity.Dinas, error)
	List(ctx context.Context, scope access.Scope, skip, limit int) ([]*entity.Dinas, error)
	Update(ctx context.Context, dinas *entity.Dinas) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
