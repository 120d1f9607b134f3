package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
)

// PendaftaranRepository defines admission application data access
type PendaftaranRepository interface {
	Create(ctx context.Context, pendaftaran *entity.Pendaftaran) error
	Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*entity.Pendaftaran, error)
	List(ctx context.Context, scope access.Scope, skip, limit int) ([]*entity.Pendaftaran, error)
	Update(ctx context.Context, pendaftaran *entity.Pendaftaran) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, scope access.Scope) (int64, error)
}
