package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
	"github.com/dikdasmen/spmb-backend/internal/domain/repository"
	apperrors "github.com/dikdasmen/spmb-backend/pkg/errors"
)

// PengumumanModel is the Gorm model for the pengumuman table
type PengumumanModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DinasID     *uuid.UUID `gorm:"type:uuid;index"`
	SekolahID   *uuid.UUID `gorm:"type:uuid;index"`
	Judul       string     `gorm:"size:255;not null"`
	Isi         string     `gorm:"type:text;not null"`
	Tipe        string     `gorm:"size:20;default:'info'"`
	IsPublished bool       `gorm:"default:false;index"`
	PublishedAt time.Time
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name
func (PengumumanModel) TableName() string {
	return "pengumuman"
}

// ToEntity converts PengumumanModel to entity.Pengumuman
func (m *PengumumanModel) ToEntity() *entity.Pengumuman {
	e := entity.Pengumuman(*m)
	return &e
}

// PengumumanModelFromEntity converts entity.Pengumuman to PengumumanModel
func PengumumanModelFromEntity(p *entity.Pengumuman) *PengumumanModel {
	m := PengumumanModel(*p)
	return &m
}

// BeritaModel is the Gorm model for the berita table
type BeritaModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DinasID     *uuid.UUID `gorm:"type:uuid;index"`
	SekolahID   *uuid.UUID `gorm:"type:uuid;index"`
	Judul       string     `gorm:"size:255;not null"`
	Slug        string     `gorm:"uniqueIndex;size:255;not null"`
	Ringkasan   string     `gorm:"type:text"`
	Isi         string     `gorm:"type:text;not null"`
	Gambar      string     `gorm:"size:500"`
	IsPublished bool       `gorm:"default:false;index"`
	PublishedAt time.Time
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name
func (BeritaModel) TableName() string {
	return "berita"
}

// ToEntity converts BeritaModel to entity.Berita
func (m *BeritaModel) ToEntity() *entity.Berita {
	e := entity.Berita(*m)
	return &e
}

// BeritaModelFromEntity converts entity.Berita to BeritaModel
func BeritaModelFromEntity(b *entity.Berita) *BeritaModel {
	m := BeritaModel(*b)
	return &m
}

// pengumumanRepository implements repository.PengumumanRepository
type pengumumanRepository struct {
	db *gorm.DB
}

// NewPengumumanRepository creates a new pengumuman repository
func NewPengumumanRepository(db *gorm.DB) repository.PengumumanRepository {
	return &pengumumanRepository{db: db}
}

func (r *pengumumanRepository) Create(ctx context.Context, pengumuman *entity.Pengumuman) error {
	if pengumuman.ID == uuid.Nil {
		pengumuman.ID = uuid.New()
	}
	pengumuman.CreatedAt = time.Now()
	pengumuman.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Create(PengumumanModelFromEntity(pengumuman)).Error
}

func (r *pengumumanRepository) Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*entity.Pengumuman, error) {
	var model PengumumanModel
	tx := scopedContent(r.db.WithContext(ctx), "pengumuman", scope)
	if err := tx.Where("pengumuman.id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

func (r *pengumumanRepository) ListPublished(ctx context.Context, skip, limit int) ([]*entity.Pengumuman, error) {
	var models []PengumumanModel
	err := r.db.WithContext(ctx).Where("is_published = ?", true).
		Order("published_at DESC").Offset(skip).Limit(limit).Find(&models).Error
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Pengumuman, len(models))
	for i := range models {
		list[i] = models[i].ToEntity()
	}
	return list, nil
}

func (r *pengumumanRepository) List(ctx context.Context, scope access.Scope, skip, limit int) ([]*entity.Pengumuman, error) {
	var models []PengumumanModel
	tx := scopedContent(r.db.WithContext(ctx), "pengumuman", scope)
	if err := tx.Order("created_at DESC").Offset(skip).Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}
	list := make([]*entity.Pengumuman, len(models))
	for i := range models {
		list[i] = models[i].ToEntity()
	}
	return list, nil
}

func (r *pengumumanRepository) Update(ctx context.Context, pengumuman *entity.Pengumuman) error {
	pengumuman.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(PengumumanModelFromEntity(pengumuman)).Error
}

func (r *pengumumanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&PengumumanModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// beritaRepository implements repository.BeritaRepository
type beritaRepository struct {
	db *gorm.DB
}

// NewBeritaRepository creates a new berita repository
func NewBeritaRepository(db *gorm.DB) repository.BeritaRepository {
	return &beritaRepository{db: db}
}

func (r *beritaRepository) Create(ctx context.Context, berita *entity.Berita) error {
	if berita.ID == uuid.Nil {
		berita.ID = uuid.New()
	}
	berita.CreatedAt = time.Now()
	berita.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Create(BeritaModelFromEntity(berita)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *beritaRepository) Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*entity.Berita, error) {
	var model BeritaModel
	tx := scopedContent(r.db.WithContext(ctx), "berita", scope)
	if err := tx.Where("berita.id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

func (r *beritaRepository) GetBySlug(ctx context.Context, slug string) (*entity.Berita, error) {
	var model BeritaModel
	err := r.db.WithContext(ctx).Where("slug = ? AND is_published = ?", slug, true).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

func (r *beritaRepository) ListPublished(ctx context.Context, skip, limit int) ([]*entity.Berita, error) {
	var models []BeritaModel
	err := r.db.WithContext(ctx).Where("is_published = ?", true).
		Order("published_at DESC").Offset(skip).Limit(limit).Find(&models).Error
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Berita, len(models))
	for i := range models {
		list[i] = models[i].ToEntity()
	}
	return list, nil
}

func (r *beritaRepository) List(ctx context.Context, scope access.Scope, skip, limit int) ([]*entity.Berita, error) {
	var models []BeritaModel
	tx := scopedContent(r.db.WithContext(ctx), "berita", scope)
	if err := tx.Order("created_at DESC").Offset(skip).Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}
	list := make([]*entity.Berita, len(models))
	for i := range models {
		list[i] = models[i].ToEntity()
	}
	return list, nil
}

func (r *beritaRepository) Update(ctx context.Context, berita *entity.Berita) error {
	berita.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Save(BeritaModelFromEntity(berita)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *beritaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&BeritaModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
