package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
	"github.com/dikdasmen/spmb-backend/internal/domain/repository"
	apperrors "github.com/dikdasmen/spmb-backend/pkg/errors"
)

// DinasModel is the Gorm model for the dinas table
type DinasModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                 string    `gorm:"size:255;not null"`
	Kabupaten            string    `gorm:"size:100;not null"`
	Provinsi             string    `gorm:"size:100;not null"`
	Alamat               string    `gorm:"size:500;not null"`
	Telepon              string    `gorm:"size:20;not null"`
	Email                string    `gorm:"size:255;not null"`
	Website              string    `gorm:"size:255"`
	LogoDinas            string    `gorm:"size:255"`
	LogoKabupaten        string    `gorm:"size:255"`
	SignatureURL         string    `gorm:"size:255"`
	KepalaDinas          string    `gorm:"size:255;not null"`
	NIPKepalaDinas       string    `gorm:"column:nip_kepala_dinas;size:50;not null"`
	NotificationSettings datatypes.JSON
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName returns the table name
func (DinasModel) TableName() string {
	return "dinas"
}

// ToEntity converts DinasModel to entity.Dinas
func (m *DinasModel) ToEntity() *entity.Dinas {
	e := entity.Dinas(*m)
	return &e
}

// DinasModelFromEntity converts entity.Dinas to DinasModel
func DinasModelFromEntity(d *entity.Dinas) *DinasModel {
	m := DinasModel(*d)
	return &m
}

// dinasRepository implements repository.DinasRepository
type dinasRepository struct {
	db *gorm.DB
}

// NewDinasRepository creates a new dinas repository
func NewDinasRepository(db *gorm.DB) repository.DinasRepository {
	return &dinasRepository{db: db}
}

func (r *dinasRepository) Create(ctx context.Context, dinas *entity.Dinas) error {
	if dinas.ID == uuid.Nil {
		dinas.ID = uuid.New()
	}
	dinas.CreatedAt = time.Now()
	dinas.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Create(DinasModelFromEntity(dinas)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *dinasRepository) Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*entity.Dinas, error) {
	var model DinasModel
	tx := scopedDinas(r.db.WithContext(ctx), scope)
	if err := tx.Where("dinas.id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

func (r *dinasRepository) List(ctx context.Context, scope access.Scope, skip, limit int) ([]*entity.Dinas, error) {
	var models []DinasModel
	tx := scopedDinas(r.db.WithContext(ctx), scope)
	if err := tx.Offset(skip).Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}
	list := make([]*entity.Dinas, len(models))
	for i := range models {
		list[i] = models[i].ToEntity()
	}
	return list, nil
}

func (r *dinasRepository) Update(ctx context.Context, dinas *entity.Dinas) error {
	dinas.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(DinasModelFromEntity(dinas)).Error
}

func (r *dinasRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DinasModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *dinasRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DinasModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
