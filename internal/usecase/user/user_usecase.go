package user

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
	"github.com/dikdasmen/spmb-backend/internal/domain/repository"
	apperrors "github.com/dikdasmen/spmb-backend/pkg/errors"
)

// UseCase defines the user administration use case interface. Every operation
// is super_admin only; other roles are denied before any data access.
type UseCase interface {
	Create(ctx context.Context, p access.Principal, input *CreateInput) (*entity.UserResponse, error)
	GetByID(ctx context.Context, p access.Principal, id uuid.UUID) (*entity.UserResponse, error)
	List(ctx context.Context, p access.Principal, skip, limit int) ([]*entity.UserResponse, int64, error)
	Update(ctx context.Context, p access.Principal, id uuid.UUID, input *UpdateInput) (*entity.UserResponse, error)
	Delete(ctx context.Context, p access.Principal, id uuid.UUID) error
}

// CreateInput represents user creation input. The tenant anchor must match the
// role: dinas_id for admin_dinas, sekolah_id for admin_sekolah, neither
// otherwise.
type CreateInput struct {
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"required,min=8"`
	Name      string     `json:"name" validate:"required,min=3,max=100"`
	Role      string     `json:"role" validate:"required,oneof=super_admin admin_dinas admin_sekolah siswa"`
	DinasID   *uuid.UUID `json:"dinas_id"`
	SekolahID *uuid.UUID `json:"sekolah_id"`
	Phone     string     `json:"phone"`
}

// UpdateInput represents user update input
type UpdateInput struct {
	Name     *string `json:"name"`
	Avatar   *string `json:"avatar"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"is_active"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

var validate = validator.New()

type userUseCase struct {
	userRepo repository.UserRepository
}

// NewUseCase creates a new user use case
func NewUseCase(userRepo repository.UserRepository) UseCase {
	return &userUseCase{userRepo: userRepo}
}

func requireSuperAdmin(p access.Principal, op access.Operation) error {
	if access.ScopeFor(p, access.EntityUser, op).IsDenied() {
		return apperrors.ForbiddenError("user administration requires super_admin")
	}
	return nil
}

func anchorsMatchRole(role entity.Role, dinasID, sekolahID *uuid.UUID) bool {
	switch role {
	case entity.RoleAdminDinas:
		return dinasID != nil && sekolahID == nil
	case entity.RoleAdminSekolah:
		return sekolahID != nil && dinasID == nil
	default:
		return dinasID == nil && sekolahID == nil
	}
}

func (u *userUseCase) Create(ctx context.Context, p access.Principal, input *CreateInput) (*entity.UserResponse, error) {
	if err := requireSuperAdmin(p, access.OpCreate); err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	role := entity.Role(input.Role)
	if !anchorsMatchRole(role, input.DinasID, input.SekolahID) {
		return nil, apperrors.ValidationError("tenant anchor does not match role")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.InternalError("failed to hash password", err)
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: string(passwordHash),
		Name:         input.Name,
		Role:         role,
		DinasID:      input.DinasID,
		SekolahID:    input.SekolahID,
		Phone:        input.Phone,
		IsActive:     true,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, apperrors.AlreadyExistsError("email")
		}
		return nil, apperrors.InternalError("failed to create user", err)
	}

	return user.ToResponse(), nil
}

func (u *userUseCase) GetByID(ctx context.Context, p access.Principal, id uuid.UUID) (*entity.UserResponse, error) {
	if err := requireSuperAdmin(p, access.OpRead); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("user")
		}
		return nil, apperrors.InternalError("failed to get user", err)
	}
	return user.ToResponse(), nil
}

func (u *userUseCase) List(ctx context.Context, p access.Principal, skip, limit int) ([]*entity.UserResponse, int64, error) {
	if err := requireSuperAdmin(p, access.OpRead); err != nil {
		return nil, 0, err
	}

	users, err := u.userRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, 0, apperrors.InternalError("failed to list users", err)
	}
	total, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, 0, apperrors.InternalError("failed to count users", err)
	}

	responses := make([]*entity.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, total, nil
}

func (u *userUseCase) Update(ctx context.Context, p access.Principal, id uuid.UUID, input *UpdateInput) (*entity.UserResponse, error) {
	if err := requireSuperAdmin(p, access.OpUpdate); err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("user")
		}
		return nil, apperrors.InternalError("failed to get user", err)
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Password != nil {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.InternalError("failed to hash password", err)
		}
		user.PasswordHash = string(passwordHash)
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.InternalError("failed to update user", err)
	}
	return user.ToResponse(), nil
}

// Delete removes a user account. A principal may never delete its own account,
// super_admin included.
func (u *userUseCase) Delete(ctx context.Context, p access.Principal, id uuid.UUID) error {
	if err := requireSuperAdmin(p, access.OpDelete); err != nil {
		return err
	}
	if p.UserID == id {
		return apperrors.SelfDeletionError()
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NotFoundError("user")
		}
		return apperrors.InternalError("failed to delete user", err)
	}
	return nil
}
