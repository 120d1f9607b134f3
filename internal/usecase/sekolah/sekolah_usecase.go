package sekolah

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
	"github.com/dikdasmen/spmb-backend/internal/domain/repository"
	apperrors "github.com/dikdasmen/spmb-backend/pkg/errors"
)

// UseCase defines the sekolah use case interface. ListPublic serves the
// unauthenticated school directory used during registration.
type UseCase interface {
	Create(ctx context.Context, p access.Principal, input *CreateInput) (*entity.Sekolah, error)
	Get(ctx context.Context, p access.Principal, id uuid.UUID) (*entity.Sekolah, error)
	List(ctx context.Context, p access.Principal, skip, limit int) ([]*entity.Sekolah, int64, error)
	ListPublic(ctx context.Context, skip, limit int) ([]*entity.Sekolah, error)
	Update(ctx context.Context, p access.Principal, id uuid.UUID, input *UpdateInput) (*entity.Sekolah, error)
	Delete(ctx context.Context, p access.Principal, id uuid.UUID) error
}

// CreateInput represents sekolah creation input
type CreateInput struct {
	DinasID       uuid.UUID `json:"dinas_id" validate:"required"`
	NPSN          string    `json:"npsn" validate:"required,len=8"`
	Name          string    `json:"name" validate:"required,min=3,max=255"`
	Jenjang       string    `json:"jenjang" validate:"required,oneof=SD SMP"`
	Alamat        string    `json:"alamat" validate:"required"`
	Kelurahan     string    `json:"kelurahan"`
	Kecamatan     string    `json:"kecamatan"`
	Telepon       string    `json:"telepon"`
	Email         string    `json:"email" validate:"omitempty,email"`
	Lat           *float64  `json:"lat"`
	Lng           *float64  `json:"lng"`
	KepalaSekolah string    `json:"kepala_sekolah"`
	Status        string    `json:"status" validate:"required,oneof=negeri swasta"`
}

// UpdateInput represents sekolah update input; nil fields are left untouched
type UpdateInput struct {
	Name             *string  `json:"name"`
	Alamat           *string  `json:"alamat"`
	Kelurahan        *string  `json:"kelurahan"`
	Kecamatan        *string  `json:"kecamatan"`
	Telepon          *string  `json:"telepon"`
	Email            *string  `json:"email" validate:"omitempty,email"`
	Website          *string  `json:"website"`
	Lat              *float64 `json:"lat"`
	Lng              *float64 `json:"lng"`
	Logo             *string  `json:"logo"`
	KepalaSekolah    *string  `json:"kepala_sekolah"`
	NIPKepalaSekolah *string  `json:"nip_kepala_sekolah"`
	KetuaSPMB        *string  `json:"ketua_spmb"`
	Akreditasi       *string  `json:"akreditasi"`
}

var validate = validator.New()

type sekolahUseCase struct {
	sekolahRepo repository.SekolahRepository
}

// NewUseCase creates a new sekolah use case
func NewUseCase(sekolahRepo repository.SekolahRepository) UseCase {
	return &sekolahUseCase{sekolahRepo: sekolahRepo}
}

func (u *sekolahUseCase) Create(ctx context.Context, p access.Principal, input *CreateInput) (*entity.Sekolah, error) {
	if access.ScopeFor(p, access.EntitySekolah, access.OpCreate).IsDenied() {
		return nil, apperrors.ForbiddenError("sekolah creation requires super_admin")
	}
	if err := validate.Struct(input); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	sekolah := &entity.Sekolah{
		ID:            uuid.New(),
		DinasID:       input.DinasID,
		NPSN:          input.NPSN,
		Name:          input.Name,
		Jenjang:       entity.Jenjang(input.Jenjang),
		Alamat:        input.Alamat,
		Kelurahan:     input.Kelurahan,
		Kecamatan:     input.Kecamatan,
		Telepon:       input.Telepon,
		Email:         input.Email,
		Lat:           input.Lat,
		Lng:           input.Lng,
		KepalaSekolah: input.KepalaSekolah,
		Status:        entity.StatusSekolah(input.Status),
	}

	if err := u.sekolahRepo.Create(ctx, sekolah); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, apperrors.AlreadyExistsError("npsn")
		}
		return nil, apperrors.InternalError("failed to create sekolah", err)
	}
	return sekolah, nil
}

func (u *sekolahUseCase) Get(ctx context.Context, p access.Principal, id uuid.UUID) (*entity.Sekolah, error) {
	scope := access.ScopeFor(p, access.EntitySekolah, access.OpRead)
	if scope.IsDenied() {
		return nil, apperrors.ForbiddenError("sekolah read not permitted")
	}

	sekolah, err := u.sekolahRepo.Get(ctx, id, scope)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("sekolah")
		}
		return nil, apperrors.InternalError("failed to get sekolah", err)
	}
	return sekolah, nil
}

func (u *sekolahUseCase) List(ctx context.Context, p access.Principal, skip, limit int) ([]*entity.Sekolah, int64, error) {
	scope := access.ScopeFor(p, access.EntitySekolah, access.OpRead)
	if scope.IsDenied() {
		return nil, 0, apperrors.ForbiddenError("sekolah read not permitted")
	}

	list, err := u.sekolahRepo.List(ctx, scope, skip, limit)
	if err != nil {
		return nil, 0, apperrors.InternalError("failed to list sekolah", err)
	}
	total, err := u.sekolahRepo.Count(ctx, scope)
	if err != nil {
		return nil, 0, apperrors.InternalError("failed to count sekolah", err)
	}
	return list, total, nil
}

// ListPublic lists schools without scoping, for the public directory.
func (u *sekolahUseCase) ListPublic(ctx context.Context, skip, limit int) ([]*entity.Sekolah, error) {
	list, err := u.sekolahRepo.List(ctx, access.Scope{Kind: access.Unrestricted}, skip, limit)
	if err != nil {
		return nil, apperrors.InternalError("failed to list sekolah", err)
	}
	return list, nil
}

func (u *sekolahUseCase) Update(ctx context.Context, p access.Principal, id uuid.UUID, input *UpdateInput) (*entity.Sekolah, error) {
	if access.ScopeFor(p, access.EntitySekolah, access.OpUpdate).IsDenied() {
		return nil, apperrors.ForbiddenError("sekolah update requires super_admin")
	}
	if err := validate.Struct(input); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	sekolah, err := u.sekolahRepo.Get(ctx, id, access.ScopeFor(p, access.EntitySekolah, access.OpRead))
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("sekolah")
		}
		return nil, apperrors.InternalError("failed to get sekolah", err)
	}

	if input.Name != nil {
		sekolah.Name = *input.Name
	}
	if input.Alamat != nil {
		sekolah.Alamat = *input.Alamat
	}
	if input.Kelurahan != nil {
		sekolah.Kelurahan = *input.Kelurahan
	}
	if input.Kecamatan != nil {
		sekolah.Kecamatan = *input.Kecamatan
	}
	if input.Telepon != nil {
		sekolah.Telepon = *input.Telepon
	}
	if input.Email != nil {
		sekolah.Email = *input.Email
	}
	if input.Website != nil {
		sekolah.Website = *input.Website
	}
	if input.Lat != nil {
		sekolah.Lat = input.Lat
	}
	if input.Lng != nil {
		sekolah.Lng = input.Lng
	}
	if input.Logo != nil {
		sekolah.Logo = *input.Logo
	}
	if input.KepalaSekolah != nil {
		sekolah.KepalaSekolah = *input.KepalaSekolah
	}
	if input.NIPKepalaSekolah != nil {
		sekolah.NIPKepalaSekolah = *input.NIPKepalaSekolah
	}
	if input.KetuaSPMB != nil {
		sekolah.KetuaSPMB = *input.KetuaSPMB
	}
	if input.Akreditasi != nil {
		sekolah.Akreditasi = *input.Akreditasi
	}

	if err := u.sekolahRepo.Update(ctx, sekolah); err != nil {
		return nil, apperrors.InternalError("failed to update sekolah", err)
	}
	return sekolah, nil
}

func (u *sekolahUseCase) Delete(ctx context.Context, p access.Principal, id uuid.UUID) error {
	if access.ScopeFor(p, access.EntitySekolah, access.OpDelete).IsDenied() {
		return apperrors.ForbiddenError("sekolah deletion requires super_admin")
	}

	if err := u.sekolahRepo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NotFoundError("sekolah")
		}
		return apperrors.InternalError("failed to delete sekolah", err)
	}
	return nil
}
