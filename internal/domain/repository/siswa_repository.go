package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
)

// SiswaRepository defines student profile data access. District and school
// scopes are resolved through the pendaftaran hierarchy: a student with zero
// applications is invisible to dinas/sekolah-scoped reads.
type SiswaRepository interface {
	Create(ctx context.Context, siswa *entity.Siswa) error
	Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*entity.Siswa, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Siswa, error)
	List(ctx context.Context, scope access.Scope, skip, limit int) ([]*entity.Siswa, error)
	Update(ctx context.Context, siswa *entity.Siswa) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, scope access.Scope) (int64, error)
}
