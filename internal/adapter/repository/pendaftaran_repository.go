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

// PendaftaranModel is the Gorm model for the pendaftaran table
type PendaftaranModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	SiswaID        uuid.UUID `gorm:"type:uuid;not null;index"`
	SekolahID      uuid.UUID `gorm:"type:uuid;not null;index"`
	JalurID        uuid.UUID `gorm:"type:uuid;not null"`
	TahunAjaranID  uuid.UUID `gorm:"type:uuid;not null"`
	NoPendaftaran  string    `gorm:"uniqueIndex;size:50;not null"`
	Status         string    `gorm:"size:30;default:'draft'"`
	JarakKeSekolah *float64
	NilaiRata      *float64
	SkorZonasi     *float64
	SkorPrestasi   *float64
	SubmittedAt    *time.Time
	VerifiedAt     *time.Time
	VerifiedBy     *uuid.UUID `gorm:"type:uuid"`
	RejectReason   string     `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName returns the table name
func (PendaftaranModel) TableName() string {
	return "pendaftaran"
}

// ToEntity converts PendaftaranModel to entity.Pendaftaran
func (m *PendaftaranModel) ToEntity() *entity.Pendaftaran {
	e := entity.Pendaftaran(*m)
	return &e
}

// PendaftaranModelFromEntity converts entity.Pendaftaran to PendaftaranModel
func PendaftaranModelFromEntity(p *entity.Pendaftaran) *PendaftaranModel {
	m := PendaftaranModel(*p)
	return &m
}

// pendaftaranRepository implements repository.PendaftaranRepository
type pendaftaranRepository struct {
	db *gorm.DB
}

// NewPendaftaranRepository creates a new pendaftaran repository
func NewPendaftaranRepository(db *gorm.DB) repository.PendaftaranRepository {
	return &pendaftaranRepository{db: db}
}

func (r *pendaftaranRepository) Create(ctx context.Context, pendaftaran *entity.Pendaftaran) error {
	if pendaftaran.ID == uuid.Nil {
		pendaftaran.ID = uuid.New()
	}
	pendaftaran.CreatedAt = time.Now()
	pendaftaran.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Create(PendaftaranModelFromEntity(pendaftaran)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *pendaftaranRepository) Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*entity.Pendaftaran, error) {
	db := r.db.WithContext(ctx)
	var model PendaftaranModel
	tx := scopedPendaftaran(db, db, scope)
	if err := tx.Where("pendaftaran.id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

func (r *pendaftaranRepository) List(ctx context.Context, scope access.Scope, skip, limit int) ([]*entity.Pendaftaran, error) {
	db := r.db.WithContext(ctx)
	var models []PendaftaranModel
	tx := scopedPendaftaran(db, db, scope)
	if err := tx.Offset(skip).Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}
	list := make([]*entity.Pendaftaran, len(models))
	for i := range models {
		list[i] = models[i].ToEntity()
	}
	return list, nil
}

func (r *pendaftaranRepository) Update(ctx context.Context, pendaftaran *entity.Pendaftaran) error {
	pendaftaran.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Save(PendaftaranModelFromEntity(pendaftaran)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *pendaftaranRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&PendaftaranModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *pendaftaranRepository) Count(ctx context.Context, scope access.Scope) (int64, error) {
	db := r.db.WithContext(ctx)
	var count int64
	tx := scopedPendaftaran(db, db.Model(&PendaftaranModel{}), scope)
	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
