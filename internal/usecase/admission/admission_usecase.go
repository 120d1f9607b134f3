package admission

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
	"github.com/dikdasmen/spmb-backend/internal/domain/repository"
	apperrors "github.com/dikdasmen/spmb-backend/pkg/errors"
)

// UseCase defines the admission configuration use case: jalur and tahun ajaran
// reference data plus kuota counters. ListActiveJalur, ListTahunAjaran and
// GetActiveTahunAjaran back the public config endpoints.
type UseCase interface {
	CreateJalur(ctx context.Context, p access.Principal, input *JalurInput) (*entity.Jalur, error)
	ListJalur(ctx context.Context, skip, limit int) ([]*entity.Jalur, error)
	ListActiveJalur(ctx context.Context) ([]*entity.Jalur, error)
	UpdateJalur(ctx context.Context, p access.Principal, id uuid.UUID, input *JalurUpdateInput) (*entity.Jalur, error)
	DeleteJalur(ctx context.Context, p access.Principal, id uuid.UUID) error

	CreateTahunAjaran(ctx context.Context, p access.Principal, input *TahunAjaranInput) (*entity.TahunAjaran, error)
	ListTahunAjaran(ctx context.Context) ([]*entity.TahunAjaran, error)
	GetActiveTahunAjaran(ctx context.Context) (*entity.TahunAjaran, error)
	SetActiveTahunAjaran(ctx context.Context, p access.Principal, id uuid.UUID) (*entity.TahunAjaran, error)
	DeleteTahunAjaran(ctx context.Context, p access.Principal, id uuid.UUID) error

	CreateKuota(ctx context.Context, p access.Principal, input *KuotaInput) (*entity.Kuota, error)
	GetKuota(ctx context.Context, p access.Principal, id uuid.UUID) (*entity.Kuota, error)
	ListKuota(ctx context.Context, p access.Principal, skip, limit int) ([]*entity.Kuota, error)
	UpdateKuota(ctx context.Context, p access.Principal, id uuid.UUID, input *KuotaUpdateInput) (*entity.Kuota, error)
	DeleteKuota(ctx context.Context, p access.Principal, id uuid.UUID) error
}

// JalurInput represents jalur creation input
type JalurInput struct {
	Name         string         `json:"name" validate:"required,min=3,max=100"`
	Type         string         `json:"type" validate:"required,oneof=zonasi prestasi afirmasi perpindahan"`
	Description  string         `json:"description"`
	Persyaratan  datatypes.JSON `json:"persyaratan"`
	BerkasWajib  datatypes.JSON `json:"berkas_wajib"`
	RadiusZonasi *int           `json:"radius_zonasi"`
	IsActive     bool           `json:"is_active"`
	Order        int            `json:"order"`
}

// JalurUpdateInput represents jalur update input; nil fields are left untouched
type JalurUpdateInput struct {
	Name         *string         `json:"name"`
	Description  *string         `json:"description"`
	Persyaratan  *datatypes.JSON `json:"persyaratan"`
	BerkasWajib  *datatypes.JSON `json:"berkas_wajib"`
	RadiusZonasi *int            `json:"radius_zonasi"`
	IsActive     *bool           `json:"is_active"`
	Order        *int            `json:"order"`
}

// TahunAjaranInput represents academic year creation input
type TahunAjaranInput struct {
	Tahun                   string    `json:"tahun" validate:"required"`
	IsActive                bool      `json:"is_active"`
	TanggalMulaiPendaftaran time.Time `json:"tanggal_mulai_pendaftaran" validate:"required"`
	TanggalAkhirPendaftaran time.Time `json:"tanggal_akhir_pendaftaran" validate:"required"`
	TanggalSeleksi          time.Time `json:"tanggal_seleksi" validate:"required"`
	TanggalPengumuman       time.Time `json:"tanggal_pengumuman" validate:"required"`
	TanggalDaftarUlang      time.Time `json:"tanggal_daftar_ulang" validate:"required"`
	TanggalAkhirDaftarUlang time.Time `json:"tanggal_akhir_daftar_ulang" validate:"required"`
}

// KuotaInput represents quota creation input. SekolahID is taken from the
// caller's scope for admin_sekolah; super_admin must provide it.
type KuotaInput struct {
	SekolahID   *uuid.UUID `json:"sekolah_id"`
	JalurID     uuid.UUID  `json:"jalur_id" validate:"required"`
	TahunAjaran string     `json:"tahun_ajaran" validate:"required"`
	Kuota       int        `json:"kuota" validate:"gte=0"`
}

// KuotaUpdateInput represents quota update input
type KuotaUpdateInput struct {
	Kuota  *int `json:"kuota" validate:"omitempty,gte=0"`
	Terisi *int `json:"terisi" validate:"omitempty,gte=0"`
}

var validate = validator.New()

type admissionUseCase struct {
	jalurRepo       repository.JalurRepository
	tahunAjaranRepo repository.TahunAjaranRepository
	kuotaRepo       repository.KuotaRepository
}

// NewUseCase creates a new admission use case
func NewUseCase(
	jalurRepo repository.JalurRepository,
	tahunAjaranRepo repository.TahunAjaranRepository,
	kuotaRepo repository.KuotaRepository,
) UseCase {
	return &admissionUseCase{
		jalurRepo:       jalurRepo,
		tahunAjaranRepo: tahunAjaranRepo,
		kuotaRepo:       kuotaRepo,
	}
}

func (u *admissionUseCase) CreateJalur(ctx context.Context, p access.Principal, input *JalurInput) (*entity.Jalur, error) {
	if access.ScopeFor(p, access.EntityJalur, access.OpCreate).IsDenied() {
		return nil, apperrors.ForbiddenError("jalur management requires super_admin")
	}
	if err := validate.Struct(input); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	jalur := &entity.Jalur{
		ID:           uuid.New(),
		Name:         input.Name,
		Type:         entity.JalurType(input.Type),
		Description:  input.Description,
		Persyaratan:  input.Persyaratan,
		BerkasWajib:  input.BerkasWajib,
		RadiusZonasi: input.RadiusZonasi,
		IsActive:     input.IsActive,
		Order:        input.Order,
	}

	if err := u.jalurRepo.Create(ctx, jalur); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, apperrors.AlreadyExistsError("jalur")
		}
		return nil, apperrors.InternalError("failed to create jalur", err)
	}
	return jalur, nil
}

func (u *admissionUseCase) ListJalur(ctx context.Context, skip, limit int) ([]*entity.Jalur, error) {
	list, err := u.jalurRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, apperrors.InternalError("failed to list jalur", err)
	}
	return list, nil
}

func (u *admissionUseCase) ListActiveJalur(ctx context.Context) ([]*entity.Jalur, error) {
	list, err := u.jalurRepo.ListActive(ctx)
	if err != nil {
		return nil, apperrors.InternalError("failed to list jalur", err)
	}
	return list, nil
}

func (u *admissionUseCase) UpdateJalur(ctx context.Context, p access.Principal, id uuid.UUID, input *JalurUpdateInput) (*entity.Jalur, error) {
	if access.ScopeFor(p, access.EntityJalur, access.OpUpdate).IsDenied() {
		return nil, apperrors.ForbiddenError("jalur management requires super_admin")
	}

	jalur, err := u.jalurRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("jalur")
		}
		return nil, apperrors.InternalError("failed to get jalur", err)
	}

	if input.Name != nil {
		jalur.Name = *input.Name
	}
	if input.Description != nil {
		jalur.Description = *input.Description
	}
	if input.Persyaratan != nil {
		jalur.Persyaratan = *input.Persyaratan
	}
	if input.BerkasWajib != nil {
		jalur.BerkasWajib = *input.BerkasWajib
	}
	if input.RadiusZonasi != nil {
		jalur.RadiusZonasi = input.RadiusZonasi
	}
	if input.IsActive != nil {
		jalur.IsActive = *input.IsActive
	}
	if input.Order != nil {
		jalur.Order = *input.Order
	}

	if err := u.jalurRepo.Update(ctx, jalur); err != nil {
		return nil, apperrors.InternalError("failed to update jalur", err)
	}
	return jalur, nil
}

func (u *admissionUseCase) DeleteJalur(ctx context.Context, p access.Principal, id uuid.UUID) error {
	if access.ScopeFor(p, access.EntityJalur, access.OpDelete).IsDenied() {
		return apperrors.ForbiddenError("jalur management requires super_admin")
	}

	if err := u.jalurRepo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NotFoundError("jalur")
		}
		return apperrors.InternalError("failed to delete jalur", err)
	}
	return nil
}

func (u *admissionUseCase) CreateTahunAjaran(ctx context.Context, p access.Principal, input *TahunAjaranInput) (*entity.TahunAjaran, error) {
	if access.ScopeFor(p, access.EntityTahunAjaran, access.OpCreate).IsDenied() {
		return nil, apperrors.ForbiddenError("tahun ajaran management requires super_admin")
	}
	if err := validate.Struct(input); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	tahunAjaran := &entity.TahunAjaran{
		ID:                      uuid.New(),
		Tahun:                   input.Tahun,
		IsActive:                input.IsActive,
		TanggalMulaiPendaftaran: input.TanggalMulaiPendaftaran,
		TanggalAkhirPendaftaran: input.TanggalAkhirPendaftaran,
		TanggalSeleksi:          input.TanggalSeleksi,
		TanggalPengumuman:       input.TanggalPengumuman,
		TanggalDaftarUlang:      input.TanggalDaftarUlang,
		TanggalAkhirDaftarUlang: input.TanggalAkhirDaftarUlang,
	}

	if err := u.tahunAjaranRepo.Create(ctx, tahunAjaran); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, apperrors.AlreadyExistsError("tahun ajaran")
		}
		return nil, apperrors.InternalError("failed to create tahun ajaran", err)
	}
	return tahunAjaran, nil
}

func (u *admissionUseCase) ListTahunAjaran(ctx context.Context) ([]*entity.TahunAjaran, error) {
	list, err := u.tahunAjaranRepo.List(ctx)
	if err != nil {
		return nil, apperrors.InternalError("failed to list tahun ajaran", err)
	}
	return list, nil
}

func (u *admissionUseCase) GetActiveTahunAjaran(ctx context.Context) (*entity.TahunAjaran, error) {
	tahunAjaran, err := u.tahunAjaranRepo.GetActive(ctx)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("active tahun ajaran")
		}
		return nil, apperrors.InternalError("failed to get active tahun ajaran", err)
	}
	return tahunAjaran, nil
}

func (u *admissionUseCase) SetActiveTahunAjaran(ctx context.Context, p access.Principal, id uuid.UUID) (*entity.TahunAjaran, error) {
	if access.ScopeFor(p, access.EntityTahunAjaran, access.OpUpdate).IsDenied() {
		return nil, apperrors.ForbiddenError("tahun ajaran management requires super_admin")
	}

	tahunAjaran, err := u.tahunAjaranRepo.SetActive(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("tahun ajaran")
		}
		return nil, apperrors.InternalError("failed to activate tahun ajaran", err)
	}
	return tahunAjaran, nil
}

func (u *admissionUseCase) DeleteTahunAjaran(ctx context.Context, p access.Principal, id uuid.UUID) error {
	if access.ScopeFor(p, access.EntityTahunAjaran, access.OpDelete).IsDenied() {
		return apperrors.ForbiddenError("tahun ajaran management requires super_admin")
	}

	if err := u.tahunAjaranRepo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NotFoundError("tahun ajaran")
		}
		return apperrors.InternalError("failed to delete tahun ajaran", err)
	}
	return nil
}

func (u *admissionUseCase) CreateKuota(ctx context.Context, p access.Principal, input *KuotaInput) (*entity.Kuota, error) {
	scope := access.ScopeFor(p, access.EntityKuota, access.OpCreate)
	if scope.IsDenied() {
		return nil, apperrors.ForbiddenError("kuota creation not permitted")
	}
	if err := validate.Struct(input); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	// The owning school comes from the scope, never from the request, except
	// for super_admin.
	var sekolahID uuid.UUID
	switch scope.Kind {
	case access.BySekolah:
		sekolahID = scope.SekolahID
	case access.Unrestricted:
		if input.SekolahID == nil {
			return nil, apperrors.ValidationError("sekolah_id is required")
		}
		sekolahID = *input.SekolahID
	default:
		return nil, apperrors.ForbiddenError("kuota creation not permitted")
	}

	kuota := &entity.Kuota{
		ID:          uuid.New(),
		SekolahID:   sekolahID,
		JalurID:     input.JalurID,
		TahunAjaran: input.TahunAjaran,
		Kuota:       input.Kuota,
	}

	if err := u.kuotaRepo.Create(ctx, kuota); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, apperrors.AlreadyExistsError("kuota")
		}
		return nil, apperrors.InternalError("failed to create kuota", err)
	}
	return kuota, nil
}

func (u *admissionUseCase) GetKuota(ctx context.Context, p access.Principal, id uuid.UUID) (*entity.Kuota, error) {
	scope := access.ScopeFor(p, access.EntityKuota, access.OpRead)
	if scope.IsDenied() {
		return nil, apperrors.ForbiddenError("kuota read not permitted")
	}

	kuota, err := u.kuotaRepo.Get(ctx, id, scope)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("kuota")
		}
		return nil, apperrors.InternalError("failed to get kuota", err)
	}
	return kuota, nil
}

func (u *admissionUseCase) ListKuota(ctx context.Context, p access.Principal, skip, limit int) ([]*entity.Kuota, error) {
	scope := access.ScopeFor(p, access.EntityKuota, access.OpRead)
	if scope.IsDenied() {
		return nil, apperrors.ForbiddenError("kuota read not permitted")
	}

	list, err := u.kuotaRepo.List(ctx, scope, skip, limit)
	if err != nil {
		return nil, apperrors.InternalError("failed to list kuota", err)
	}
	return list, nil
}

func (u *admissionUseCase) UpdateKuota(ctx context.Context, p access.Principal, id uuid.UUID, input *KuotaUpdateInput) (*entity.Kuota, error) {
	scope := access.ScopeFor(p, access.EntityKuota, access.OpUpdate)
	if scope.IsDenied() {
		return nil, apperrors.ForbiddenError("kuota update not permitted")
	}
	if err := validate.Struct(input); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	kuota, err := u.kuotaRepo.Get(ctx, id, scope)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("kuota")
		}
		return nil, apperrors.InternalError("failed to get kuota", err)
	}

	if input.Kuota != nil {
		kuota.Kuota = *input.Kuota
	}
	if input.Terisi != nil {
		kuota.Terisi = *input.Terisi
	}

	if err := u.kuotaRepo.Update(ctx, kuota); err != nil {
		return nil, apperrors.InternalError("failed to update kuota", err)
	}
	return kuota, nil
}

func (u *admissionUseCase) DeleteKuota(ctx context.Context, p access.Principal, id uuid.UUID) error {
	scope := access.ScopeFor(p, access.EntityKuota, access.OpDelete)
	if scope.IsDenied() {
		return apperrors.ForbiddenError("kuota deletion not permitted")
	}

	// Confirm the row is inside the caller's scope before deleting.
	if _, err := u.kuotaRepo.Get(ctx, id, scope); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NotFoundError("kuota")
		}
		return apperrors.InternalError("failed to get kuota", err)
	}

	if err := u.kuotaRepo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NotFoundError("kuota")
		}
		return apperrors.InternalError("failed to delete kuota", err)
	}
	return nil
}
