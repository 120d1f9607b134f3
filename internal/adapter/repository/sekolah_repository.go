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

// SekolahModel is the Gorm model for the sekolah table
type SekolahModel struct {
	ID               uuid.UUID            `gorm:"type:uuid;primaryKey"`
	DinasID          uuid.UUID            `gorm:"type:uuid;not null;index"`
	NPSN             string               `gorm:"column:npsn;uniqueIndex;size:20;not null"`
	Name             string               `gorm:"size:255;not null"`
	Jenjang          entity.Jenjang       `gorm:"size:5;not null"`
	Alamat           string               `gorm:"size:500;not null"`
	Kelurahan        string               `gorm:"size:100;not null"`
	Kecamatan        string               `gorm:"size:100;not null"`
	Telepon          string               `gorm:"size:20;not null"`
	Email            string               `gorm:"size:255;not null"`
	Website          string               `gorm:"size:255"`
	Lat              *float64
	Lng              *float64
	Logo             string               `gorm:"size:255"`
	KepalaSekolah    string               `gorm:"size:255;not null"`
	NIPKepalaSekolah string               `gorm:"column:nip_kepala_sekolah;size:50;not null"`
	KetuaSPMB        string               `gorm:"column:ketua_spmb;size:255;not null"`
	Akreditasi       string               `gorm:"size:5"`
	Status           entity.StatusSekolah `gorm:"size:10;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName returns the table name
func (SekolahModel) TableName() string {
	return "sekolah"
}

// ToEntity converts SekolahModel to entity.Sekolah
func (m *SekolahModel) ToEntity() *entity.Sekolah {
	e := entity.Sekolah(*m)
	return &e
}

// SekolahModelFromEntity converts entity.Sekolah to SekolahModel
func SekolahModelFromEntity(s *entity.Sekolah) *SekolahModel {
	m := SekolahModel(*s)
	return &m
}

// sekolahRepository implements repository.SekolahRepository
type sekolahRepository struct {
	db *gorm.DB
}

// NewSekolahRepository creates a new sekolah repository
func NewSekolahRepository(db *gorm.DB) repository.SekolahRepository {
	return &sekolahRepository{db: db}
}

func (r *sekolahRepository) Create(ctx context.Context, sekolah *entity.Sekolah) error {
	if sekolah.ID == uuid.Nil {
		sekolah.ID = uuid.New()
	}
	sekolah.CreatedAt = time.Now()
	sekolah.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Create(SekolahModelFromEntity(sekolah)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *sekolahRepository) Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*entity.Sekolah, error) {
	var model SekolahModel
	tx := scopedSekolah(r.db.WithContext(ctx), scope)
	if err := tx.Where("sekolah.id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

func (r *sekolahRepository) List(ctx context.Context, scope access.Scope, skip, limit int) ([]*entity.Sekolah, error) {
	var models []SekolahModel
	tx := scopedSekolah(r.db.WithContext(ctx), scope)
	if err := tx.Offset(skip).Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}
	list := make([]*entity.Sekolah, len(models))
	for i := range models {
		list[i] = models[i].ToEntity()
	}
	return list, nil
}

func (r *sekolahRepository) Update(ctx context.Context, sekolah *entity.Sekolah) error {
	sekolah.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Save(SekolahModelFromEntity(sekolah)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *sekolahRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&SekolahModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *sekolahRepository) Count(ctx context.Context, scope access.Scope) (int64, error) {
	var count int64
	tx := scopedSekolah(r.db.WithContext(ctx).Model(&SekolahModel{}), scope)
	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
