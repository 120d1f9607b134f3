package dinas

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
	"github.com/dikdasmen/spmb-backend/internal/domain/repository"
	apperrors "github.com/dikdasmen/spmb-backend/pkg/errors"
)

// UseCase defines the dinas use case interface
type UseCase interface {
	Create(ctx context.Context, p access.Principal, input *CreateInput) (*entity.Dinas, error)
	Get(ctx context.Context, p access.Principal, id uuid.UUID) (*entity.Dinas, error)
	List(ctx context.Context, p access.Principal, skip, limit int) ([]*entity.Dinas, error)
	Update(ctx context.Context, p access.Principal, id uuid.UUID, input *UpdateInput) (*entity.Dinas, error)
	Delete(ctx context.Context, p access.Principal, id uuid.UUID) error
}

// CreateInput represents dinas creation input
type CreateInput struct {
	Name           string `json:"name" validate:"required,min=3,max=255"`
	Kabupaten      string `json:"kabupaten" validate:"required"`
	Provinsi       string `json:"provinsi" validate:"required"`
	Alamat         string `json:"alamat" validate:"required"`
	Telepon        string `json:"telepon"`
	Email          string `json:"email" validate:"omitempty,email"`
	Website        string `json:"website"`
	KepalaDinas    string `json:"kepala_dinas"`
	NIPKepalaDinas string `json:"nip_kepala_dinas"`
}

// UpdateInput represents dinas update input; nil fields are left untouched
type UpdateInput struct {
	Name                 *string         `json:"name"`
	Kabupaten            *string         `json:"kabupaten"`
	Provinsi             *string         `json:"provinsi"`
	Alamat               *string         `json:"alamat"`
	Telepon              *string         `json:"telepon"`
	Email                *string         `json:"email" validate:"omitempty,email"`
	Website              *string         `json:"website"`
	LogoDinas            *string         `json:"logo_dinas"`
	LogoKabupaten        *string         `json:"logo_kabupaten"`
	SignatureURL         *string         `json:"signature_url"`
	KepalaDinas          *string         `json:"kepala_dinas"`
	NIPKepalaDinas       *string         `json:"nip_kepala_dinas"`
	NotificationSettings *datatypes.JSON `json:"notification_settings"`
}

var validate = validator.New()

type dinasUseCase struct {
	dinasRepo repository.DinasRepository
}

// NewUseCase creates a new dinas use case
func NewUseCase(dinasRepo repository.DinasRepository) UseCase {
	return &dinasUseCase{dinasRepo: dinasRepo}
}

func (u *dinasUseCase) Create(ctx context.Context, p access.Principal, input *CreateInput) (*entity.Dinas, error) {
	if access.ScopeFor(p, access.EntityDinas, access.OpCreate).IsDenied() {
		return nil, apperrors.ForbiddenError("dinas creation requires super_admin")
	}
	if err := validate.Struct(input); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	dinas := &entity.Dinas{
		ID:             uuid.New(),
		Name:           input.Name,
		Kabupaten:      input.Kabupaten,
		Provinsi:       input.Provinsi,
		Alamat:         input.Alamat,
		Telepon:        input.Telepon,
		Email:          input.Email,
		Website:        input.Website,
		KepalaDinas:    input.KepalaDinas,
		NIPKepalaDinas: input.NIPKepalaDinas,
	}

	if err := u.dinasRepo.Create(ctx, dinas); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, apperrors.AlreadyExistsError("dinas")
		}
		return nil, apperrors.InternalError("failed to create dinas", err)
	}
	return dinas, nil
}

func (u *dinasUseCase) Get(ctx context.Context, p access.Principal, id uuid.UUID) (*entity.Dinas, error) {
	scope := access.ScopeFor(p, access.EntityDinas, access.OpRead)
	if scope.IsDenied() {
		return nil, apperrors.ForbiddenError("dinas read not permitted")
	}

	dinas, err := u.dinasRepo.Get(ctx, id, scope)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("dinas")
		}
		return nil, apperrors.InternalError("failed to get dinas", err)
	}
	return dinas, nil
}

func (u *dinasUseCase) List(ctx context.Context, p access.Principal, skip, limit int) ([]*entity.Dinas, error) {
	scope := access.ScopeFor(p, access.EntityDinas, access.OpRead)
	if scope.IsDenied() {
		return nil, apperrors.ForbiddenError("dinas read not permitted")
	}

	list, err := u.dinasRepo.List(ctx, scope, skip, limit)
	if err != nil {
		return nil, apperrors.InternalError("failed to list dinas", err)
	}
	return list, nil
}

func (u *dinasUseCase) Update(ctx context.Context, p access.Principal, id uuid.UUID, input *UpdateInput) (*entity.Dinas, error) {
	if access.ScopeFor(p, access.EntityDinas, access.OpUpdate).IsDenied() {
		return nil, apperrors.ForbiddenError("dinas update requires super_admin")
	}
	if err := validate.Struct(input); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	dinas, err := u.dinasRepo.Get(ctx, id, access.ScopeFor(p, access.EntityDinas, access.OpRead))
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("dinas")
		}
		return nil, apperrors.InternalError("failed to get dinas", err)
	}

	if input.Name != nil {
		dinas.Name = *input.Name
	}
	if input.Kabupaten != nil {
		dinas.Kabupaten = *input.Kabupaten
	}
	if input.Provinsi != nil {
		dinas.Provinsi = *input.Provinsi
	}
	if input.Alamat != nil {
		dinas.Alamat = *input.Alamat
	}
	if input.Telepon != nil {
		dinas.Telepon = *input.Telepon
	}
	if input.Email != nil {
		dinas.Email = *input.Email
	}
	if input.Website != nil {
		dinas.Website = *input.Website
	}
	if input.LogoDinas != nil {
		dinas.LogoDinas = *input.LogoDinas
	}
	if input.LogoKabupaten != nil {
		dinas.LogoKabupaten = *input.LogoKabupaten
	}
	if input.SignatureURL != nil {
		dinas.SignatureURL = *input.SignatureURL
	}
	if input.KepalaDinas != nil {
		dinas.KepalaDinas = *input.KepalaDinas
	}
	if input.NIPKepalaDinas != nil {
		dinas.NIPKepalaDinas = *input.NIPKepalaDinas
	}
	if input.NotificationSettings != nil {
		dinas.NotificationSettings = *input.NotificationSettings
	}

	if err := u.dinasRepo.Update(ctx, dinas); err != nil {
		return nil, apperrors.InternalError("failed to update dinas", err)
	}
	return dinas, nil
}

func (u *dinasUseCase) Delete(ctx context.Context, p access.Principal, id uuid.UUID) error {
	if access.ScopeFor(p, access.EntityDinas, access.OpDelete).IsDenied() {
		return apperrors.ForbiddenError("dinas deletion requires super_admin")
	}

	if err := u.dinasRepo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NotFoundError("dinas")
		}
		return apperrors.InternalError("failed to delete dinas", err)
	}
	return nil
}
