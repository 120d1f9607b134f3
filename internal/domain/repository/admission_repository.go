package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
)

// JalurRepository defines admission track data access. Jalur is global
// reference data, so reads are unscoped.
type JalurRepository interface {
	Create(ctx context.Context, jalur *entity.Jalur) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Jalur, error)
	List(ctx context.Context, skip, limit int) ([]*entity.Jalur, error)
	ListActive(ctx context.Context) ([]*entity.Jalur, error)
	Update(ctx context.Context, jalur *entity.Jalur) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TahunAjaranRepository defines academic year data access. SetActive must
// clear every other row's flag in the same transaction so at most one row is
// ever active.
type TahunAjaranRepository interface {
	Create(ctx context.Context, tahunAjaran *entity.TahunAjaran) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TahunAjaran, error)
	GetActive(ctx context.Context) (*entity.TahunAjaran, error)
	List(ctx context.Context) ([]*entity.TahunAjaran, error)
	Update(ctx context.Context, tahunAjaran *entity.TahunAjaran) error
	SetActive(ctx context.Context, id uuid.UUID) (*entity.TahunAjaran, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// KuotaRepository defines quota counter data access
type KuotaRepository interface {
	Create(ctx context.Context, kuota *entity.Kuota) error
	Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*entity.Kuota, error)
	List(ctx context.Context, scope access.Scope, skip, limit int) ([]*entity.Kuota, error)
	Update(ctx context.Context, kuota *entity.Kuota) error
	Delete(ctx context.Context, id uuid.UUID) error
}
