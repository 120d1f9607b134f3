package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
)

// PengumumanRepository defines announcement data access. ListPublished is the
// public read: published rows only, newest first.
type PengumumanRepository interface {
	Create(ctx context.Context, pengumuman *entity.Pengumuman) error
	Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*entity.Pengumuman, error)
	ListPublished(ctx context.Context, skip, limit int) ([]*entity.Pengumuman, error)
	List(ctx context.Context, scope access.Scope, skip, limit int) ([]*entity.Pengumuman, error)
	Update(ctx context.Context, pengumuman *entity.Pengumuman) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BeritaRepository defines news data access
type BeritaRepository interface {
	Create(ctx context.Context, berita *entity.Berita) error
	Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*entity.Berita, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Berita, error)
	ListPublished(ctx context.Context, skip, limit int) ([]*entity.Berita, error)
	List(ctx context.Context, scope access.Scope, skip, limit int) ([]*entity.Berita, error)
	Update(ctx context.Context, berita *entity.Berita) error
	Delete(ctx context.Context, id uuid.UUID) error
}
