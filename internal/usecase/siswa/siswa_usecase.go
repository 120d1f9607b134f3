package siswa

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

// UseCase defines the siswa use case interface. Admin reads go through the
// pendaftaran hierarchy: a student with no applications is invisible to
// dinas/sekolah scopes. Me and UpdateMe operate on the caller's own profile.
type UseCase interface {
	Me(ctx context.Context, p access.Principal) (*entity.Siswa, error)
	UpdateMe(ctx context.Context, p access.Principal, input *UpdateInput) (*entity.Siswa, error)
	Get(ctx context.Context, p access.Principal, id uuid.UUID) (*entity.Siswa, error)
	List(ctx context.Context, p access.Principal, skip, limit int) ([]*entity.Siswa, int64, error)
	Delete(ctx context.Context, p access.Principal, id uuid.UUID) error
}

// UpdateInput represents siswa profile update input; nil fields are left
// untouched
type UpdateInput struct {
	NamaLengkap     *string         `json:"nama_lengkap"`
	TempatLahir     *string         `json:"tempat_lahir"`
	TanggalLahir    *time.Time      `json:"tanggal_lahir"`
	JenisKelamin    *string         `json:"jenis_kelamin" validate:"omitempty,oneof=L P"`
	Agama           *string         `json:"agama"`
	Alamat          *string         `json:"alamat"`
	RT              *string         `json:"rt"`
	RW              *string         `json:"rw"`
	Kelurahan       *string         `json:"kelurahan"`
	Kecamatan       *string         `json:"kecamatan"`
	Kabupaten       *string         `json:"kabupaten"`
	Provinsi        *string         `json:"provinsi"`
	KodePos         *string         `json:"kode_pos"`
	KoordinatRumah  *datatypes.JSON `json:"koordinat_rumah"`
	Telepon         *string         `json:"telepon"`
	AsalSekolah     *string         `json:"asal_sekolah"`
	NPSNAsalSekolah *string         `json:"npsn_asal_sekolah"`
}

var validate = validator.New()

type siswaUseCase struct {
	siswaRepo repository.SiswaRepository
}

// NewUseCase creates a new siswa use case
func NewUseCase(siswaRepo repository.SiswaRepository) UseCase {
	return &siswaUseCase{siswaRepo: siswaRepo}
}

func (u *siswaUseCase) Me(ctx context.Context, p access.Principal) (*entity.Siswa, error) {
	if p.Role != entity.RoleSiswa {
		return nil, apperrors.ForbiddenError("only siswa accounts have a student profile")
	}

	siswa, err := u.siswaRepo.GetByUserID(ctx, p.UserID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("siswa profile")
		}
		return nil, apperrors.InternalError("failed to get siswa profile", err)
	}
	return siswa, nil
}

func (u *siswaUseCase) UpdateMe(ctx context.Context, p access.Principal, input *UpdateInput) (*entity.Siswa, error) {
	if access.ScopeFor(p, access.EntitySiswa, access.OpUpdate).Kind != access.Self {
		return nil, apperrors.ForbiddenError("only siswa accounts may update their profile")
	}
	if err := validate.Struct(input); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	siswa, err := u.siswaRepo.GetByUserID(ctx, p.UserID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("siswa profile")
		}
		return nil, apperrors.InternalError("failed to get siswa profile", err)
	}

	if input.NamaLengkap != nil {
		siswa.NamaLengkap = *input.NamaLengkap
	}
	if input.TempatLahir != nil {
		siswa.TempatLahir = *input.TempatLahir
	}
	if input.TanggalLahir != nil {
		siswa.TanggalLahir = *input.TanggalLahir
	}
	if input.JenisKelamin != nil {
		siswa.JenisKelamin = *input.JenisKelamin
	}
	if input.Agama != nil {
		siswa.Agama = *input.Agama
	}
	if input.Alamat != nil {
		siswa.Alamat = *input.Alamat
	}
	if input.RT != nil {
		siswa.RT = *input.RT
	}
	if input.RW != nil {
		siswa.RW = *input.RW
	}
	if input.Kelurahan != nil {
		siswa.Kelurahan = *input.Kelurahan
	}
	if input.Kecamatan != nil {
		siswa.Kecamatan = *input.Kecamatan
	}
	if input.Kabupaten != nil {
		siswa.Kabupaten = *input.Kabupaten
	}
	if input.Provinsi != nil {
		siswa.Provinsi = *input.Provinsi
	}
	if input.KodePos != nil {
		siswa.KodePos = *input.KodePos
	}
	if input.KoordinatRumah != nil {
		siswa.KoordinatRumah = *input.KoordinatRumah
	}
	if input.Telepon != nil {
		siswa.Telepon = *input.Telepon
	}
	if input.AsalSekolah != nil {
		siswa.AsalSekolah = *input.AsalSekolah
	}
	if input.NPSNAsalSekolah != nil {
		siswa.NPSNAsalSekolah = *input.NPSNAsalSekolah
	}

	if err := u.siswaRepo.Update(ctx, siswa); err != nil {
		return nil, apperrors.InternalError("failed to update siswa profile", err)
	}
	return siswa, nil
}

func (u *siswaUseCase) Get(ctx context.Context, p access.Principal, id uuid.UUID) (*entity.Siswa, error) {
	scope := access.ScopeFor(p, access.EntitySiswa, access.OpRead)
	if scope.IsDenied() {
		return nil, apperrors.ForbiddenError("siswa read not permitted")
	}

	siswa, err := u.siswaRepo.Get(ctx, id, scope)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("siswa")
		}
		return nil, apperrors.InternalError("failed to get siswa", err)
	}
	return siswa, nil
}

func (u *siswaUseCase) List(ctx context.Context, p access.Principal, skip, limit int) ([]*entity.Siswa, int64, error) {
	scope := access.ScopeFor(p, access.EntitySiswa, access.OpRead)
	if scope.IsDenied() {
		return nil, 0, apperrors.ForbiddenError("siswa read not permitted")
	}

	list, err := u.siswaRepo.List(ctx, scope, skip, limit)
	if err != nil {
		return nil, 0, apperrors.InternalError("failed to list siswa", err)
	}
	total, err := u.siswaRepo.Count(ctx, scope)
	if err != nil {
		return nil, 0, apperrors.InternalError("failed to count siswa", err)
	}
	return list, total, nil
}

func (u *siswaUseCase) Delete(ctx context.Context, p access.Principal, id uuid.UUID) error {
	if access.ScopeFor(p, access.EntitySiswa, access.OpDelete).IsDenied() {
		return apperrors.ForbiddenError("siswa deletion requires super_admin")
	}

	if err := u.siswaRepo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NotFoundError("siswa")
		}
		return apperrors.InternalError("failed to delete siswa", err)
	}
	return nil
}
