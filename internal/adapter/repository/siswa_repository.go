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

// SiswaModel is the Gorm model for the siswa table
type SiswaModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	NISN            string    `gorm:"column:nisn;uniqueIndex;size:20;not null"`
	NIK             string    `gorm:"column:nik;uniqueIndex;size:20;not null"`
	NamaLengkap     string    `gorm:"size:255;not null"`
	TempatLahir     string    `gorm:"size:100;not null"`
	TanggalLahir    time.Time `gorm:"not null"`
	JenisKelamin    string    `gorm:"size:1;not null"`
	Agama           string    `gorm:"size:20;not null"`
	Alamat          string    `gorm:"size:500;not null"`
	RT              string    `gorm:"column:rt;size:5"`
	RW              string    `gorm:"column:rw;size:5"`
	Kelurahan       string    `gorm:"size:100;not null"`
	Kecamatan       string    `gorm:"size:100;not null"`
	Kabupaten       string    `gorm:"size:100;not null"`
	Provinsi        string    `gorm:"size:100;not null"`
	KodePos         string    `gorm:"size:10"`
	KoordinatRumah  datatypes.JSON
	Telepon         string `gorm:"size:20"`
	Email           string `gorm:"size:255;not null"`
	AsalSekolah     string `gorm:"size:255"`
	NPSNAsalSekolah string `gorm:"column:npsn_asal_sekolah;size:20"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName returns the table name
func (SiswaModel) TableName() string {
	return "siswa"
}

// ToEntity converts SiswaModel to entity.Siswa
func (m *SiswaModel) ToEntity() *entity.Siswa {
	e := entity.Siswa(*m)
	return &e
}

// SiswaModelFromEntity converts entity.Siswa to SiswaModel
func SiswaModelFromEntity(s *entity.Siswa) *SiswaModel {
	m := SiswaModel(*s)
	return &m
}

// siswaRepository implements repository.SiswaRepository
type siswaRepository struct {
	db *gorm.DB
}

// NewSiswaRepository creates a new siswa repository
func NewSiswaRepository(db *gorm.DB) repository.SiswaRepository {
	return &siswaRepository{db: db}
}

func (r *siswaRepository) Create(ctx context.Context, siswa *entity.Siswa) error {
	if siswa.ID == uuid.Nil {
		siswa.ID = uuid.New()
	}
	siswa.CreatedAt = time.Now()
	siswa.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Create(SiswaModelFromEntity(siswa)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *siswaRepository) Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*entity.Siswa, error) {
	db := r.db.WithContext(ctx)
	var model SiswaModel
	tx := scopedSiswa(db, db, scope)
	if err := tx.Where("siswa.id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

func (r *siswaRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Siswa, error) {
	var model SiswaModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

func (r *siswaRepository) List(ctx context.Context, scope access.Scope, skip, limit int) ([]*entity.Siswa, error) {
	db := r.db.WithContext(ctx)
	var models []SiswaModel
	tx := scopedSiswa(db, db, scope)
	if err := tx.Offset(skip).Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}
	list := make([]*entity.Siswa, len(models))
	for i := range models {
		list[i] = models[i].ToEntity()
	}
	return list, nil
}

func (r *siswaRepository) Update(ctx context.Context, siswa *entity.Siswa) error {
	siswa.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Save(SiswaModelFromEntity(siswa)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *siswaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&SiswaModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *siswaRepository) Count(ctx context.Context, scope access.Scope) (int64, error) {
	db := r.db.WithContext(ctx)
	var count int64
	tx := scopedSiswa(db, db.Model(&SiswaModel{}), scope)
	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
