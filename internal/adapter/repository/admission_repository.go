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

// JalurModel is the Gorm model for the jalur table
type JalurModel struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name         string           `gorm:"size:100;not null"`
	Type         entity.JalurType `gorm:"size:30;not null"`
	Description  string           `gorm:"type:text"`
	Persyaratan  datatypes.JSON
	BerkasWajib  datatypes.JSON
	RadiusZonasi *int
	IsActive     bool
	Order        int `gorm:"column:sort_order;default:0"`
}

// TableName returns the table name
func (JalurModel) TableName() string {
	return "jalur"
}

// ToEntity converts JalurModel to entity.Jalur
func (m *JalurModel) ToEntity() *entity.Jalur {
	e := entity.Jalur(*m)
	return &e
}

// JalurModelFromEntity converts entity.Jalur to JalurModel
func JalurModelFromEntity(j *entity.Jalur) *JalurModel {
	m := JalurModel(*j)
	return &m
}

// TahunAjaranModel is the Gorm model for the tahun_ajaran table
type TahunAjaranModel struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Tahun                   string    `gorm:"uniqueIndex;size:20;not null"`
	IsActive                bool      `gorm:"default:false;index"`
	TanggalMulaiPendaftaran time.Time
	TanggalAkhirPendaftaran time.Time
	TanggalSeleksi          time.Time
	TanggalPengumuman       time.Time
	TanggalDaftarUlang      time.Time
	TanggalAkhirDaftarUlang time.Time
}

// TableName returns the table name
func (TahunAjaranModel) TableName() string {
	return "tahun_ajaran"
}

// ToEntity converts TahunAjaranModel to entity.TahunAjaran
func (m *TahunAjaranModel) ToEntity() *entity.TahunAjaran {
	e := entity.TahunAjaran(*m)
	return &e
}

// TahunAjaranModelFromEntity converts entity.TahunAjaran to TahunAjaranModel
func TahunAjaranModelFromEntity(t *entity.TahunAjaran) *TahunAjaranModel {
	m := TahunAjaranModel(*t)
	return &m
}

// KuotaModel is the Gorm model for the kuota table
type KuotaModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SekolahID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_kuota_key"`
	JalurID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_kuota_key"`
	TahunAjaran string    `gorm:"size:20;not null;uniqueIndex:idx_kuota_key"`
	Kuota       int       `gorm:"default:0"`
	Terisi      int       `gorm:"default:0"`
}

// TableName returns the table name
func (KuotaModel) TableName() string {
	return "kuota"
}

// ToEntity converts KuotaModel to entity.Kuota
func (m *KuotaModel) ToEntity() *entity.Kuota {
	e := entity.Kuota(*m)
	return &e
}

// KuotaModelFromEntity converts entity.Kuota to KuotaModel
func KuotaModelFromEntity(k *entity.Kuota) *KuotaModel {
	m := KuotaModel(*k)
	return &m
}

// jalurRepository implements repository.JalurRepository
type jalurRepository struct {
	db *gorm.DB
}

// NewJalurRepository creates a new jalur repository
func NewJalurRepository(db *gorm.DB) repository.JalurRepository {
	return &jalurRepository{db: db}
}

func (r *jalurRepository) Create(ctx context.Context, jalur *entity.Jalur) error {
	if jalur.ID == uuid.Nil {
		jalur.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(JalurModelFromEntity(jalur)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *jalurRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Jalur, error) {
	var model JalurModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

func (r *jalurRepository) List(ctx context.Context, skip, limit int) ([]*entity.Jalur, error) {
	var models []JalurModel
	if err := r.db.WithContext(ctx).Order("sort_order ASC").Offset(skip).Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}
	list := make([]*entity.Jalur, len(models))
	for i := range models {
		list[i] = models[i].ToEntity()
	}
	return list, nil
}

func (r *jalurRepository) ListActive(ctx context.Context) ([]*entity.Jalur, error) {
	var models []JalurModel
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("sort_order ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	list := make([]*entity.Jalur, len(models))
	for i := range models {
		list[i] = models[i].ToEntity()
	}
	return list, nil
}

func (r *jalurRepository) Update(ctx context.Context, jalur *entity.Jalur) error {
	if err := r.db.WithContext(ctx).Save(JalurModelFromEntity(jalur)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *jalurRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&JalurModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// tahunAjaranRepository implements repository.TahunAjaranRepository
type tahunAjaranRepository struct {
	db *gorm.DB
}

// NewTahunAjaranRepository creates a new tahun ajaran repository
func NewTahunAjaranRepository(db *gorm.DB) repository.TahunAjaranRepository {
	return &tahunAjaranRepository{db: db}
}

func (r *tahunAjaranRepository) Create(ctx context.Context, tahunAjaran *entity.TahunAjaran) error {
	if tahunAjaran.ID == uuid.Nil {
		tahunAjaran.ID = uuid.New()
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tahunAjaran.IsActive {
			if err := tx.Model(&TahunAjaranModel{}).Where("is_active = ?", true).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(TahunAjaranModelFromEntity(tahunAjaran)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *tahunAjaranRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TahunAjaran, error) {
	var model TahunAjaranModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

func (r *tahunAjaranRepository) GetActive(ctx context.Context) (*entity.TahunAjaran, error) {
	var model TahunAjaranModel
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

func (r *tahunAjaranRepository) List(ctx context.Context) ([]*entity.TahunAjaran, error) {
	var models []TahunAjaranModel
	if err := r.db.WithContext(ctx).Order("tahun DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	list := make([]*entity.TahunAjaran, len(models))
	for i := range models {
		list[i] = models[i].ToEntity()
	}
	return list, nil
}

func (r *tahunAjaranRepository) Update(ctx context.Context, tahunAjaran *entity.TahunAjaran) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tahunAjaran.IsActive {
			if err := tx.Model(&TahunAjaranModel{}).
				Where("is_active = ? AND id <> ?", true, tahunAjaran.ID).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Save(TahunAjaranModelFromEntity(tahunAjaran)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// SetActive marks one row active and clears every other row in the same
// transaction, keeping the single-active invariant.
func (r *tahunAjaranRepository) SetActive(ctx context.Context, id uuid.UUID) (*entity.TahunAjaran, error) {
	var model TahunAjaranModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}
		if err := tx.Model(&TahunAjaranModel{}).Where("id <> ?", id).
			Update("is_active", false).Error; err != nil {
			return err
		}
		if err := tx.Model(&TahunAjaranModel{}).Where("id = ?", id).
			Update("is_active", true).Error; err != nil {
			return err
		}
		model.IsActive = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return model.ToEntity(), nil
}

func (r *tahunAjaranRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TahunAjaranModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// kuotaRepository implements repository.KuotaRepository
type kuotaRepository struct {
	db *gorm.DB
}

// NewKuotaRepository creates a new kuota repository
func NewKuotaRepository(db *gorm.DB) repository.KuotaRepository {
	return &kuotaRepository{db: db}
}

func (r *kuotaRepository) Create(ctx context.Context, kuota *entity.Kuota) error {
	if kuota.ID == uuid.Nil {
		kuota.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(KuotaModelFromEntity(kuota)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *kuotaRepository) Get(ctx context.Context, id uuid.UUID, scope access.Scope) (*entity.Kuota, error) {
	db := r.db.WithContext(ctx)
	var model KuotaModel
	tx := scopedKuota(db, db, scope)
	if err := tx.Where("kuota.id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

func (r *kuotaRepository) List(ctx context.Context, scope access.Scope, skip, limit int) ([]*entity.Kuota, error) {
	db := r.db.WithContext(ctx)
	var models []KuotaModel
	tx := scopedKuota(db, db, scope)
	if err := tx.Offset(skip).Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}
	list := make([]*entity.Kuota, len(models))
	for i := range models {
		list[i] = models[i].ToEntity()
	}
	return list, nil
}

func (r *kuotaRepository) Update(ctx context.Context, kuota *entity.Kuota) error {
	if err := r.db.WithContext(ctx).Save(KuotaModelFromEntity(kuota)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *kuotaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&KuotaModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
