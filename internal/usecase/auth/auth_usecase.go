package auth

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
	"github.com/dikdasmen/spmb-backend/internal/domain/repository"
	apperrors "github.com/dikdasmen/spmb-backend/pkg/errors"
	"github.com/dikdasmen/spmb-backend/pkg/jwt"
)

// UseCase defines the auth use case interface
type UseCase interface {
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Me(ctx context.Context, userID uuid.UUID) (*entity.UserResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error
}

// LoginInput represents login input data
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput represents student self-registration input. Registration only
// ever creates siswa accounts; admin accounts are created by super_admin
// through user administration.
type RegisterInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Name        string `json:"name" validate:"required,min=3,max=100"`
	NISN        string `json:"nisn" validate:"required,len=10"`
	NIK         string `json:"nik" validate:"required,len=16"`
	NamaLengkap string `json:"nama_lengkap" validate:"required"`
}

// ChangePasswordInput represents password change input
type ChangePasswordInput struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// AuthOutput represents authentication output
type AuthOutput struct {
	User        *entity.UserResponse `json:"user"`
	AccessToken string               `json:"access_token"`
	TokenType   string               `json:"token_type"`
	ExpiresIn   int64                `json:"expires_in"`
}

var validate = validator.New()

type authUseCase struct {
	userRepo         repository.UserRepository
	registrationRepo repository.RegistrationRepository
	jwtManager       *jwt.JWTManager
}

// NewUseCase creates a new auth use case
func NewUseCase(
	userRepo repository.UserRepository,
	registrationRepo repository.RegistrationRepository,
	jwtManager *jwt.JWTManager,
) UseCase {
	return &authUseCase{
		userRepo:         userRepo,
		registrationRepo: registrationRepo,
		jwtManager:       jwtManager,
	}
}

func anchorString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func (u *authUseCase) issueToken(user *entity.User) (*AuthOutput, error) {
	token, err := u.jwtManager.GenerateAccessToken(
		user.ID.String(), user.Email, string(user.Role),
		anchorString(user.DinasID), anchorString(user.SekolahID))
	if err != nil {
		return nil, apperrors.InternalError("failed to generate token", err)
	}
	return &AuthOutput{
		User:        user.ToResponse(),
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(u.jwtManager.GetAccessTokenExpiry().Seconds()),
	}, nil
}

func (u *authUseCase) Login(ctx context.Context, input *LoginInput) (*AuthOutput, error) {
	if err := validate.Struct(input); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.UnauthorizedError("invalid credentials")
		}
		return nil, apperrors.InternalError("failed to get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperrors.UnauthorizedError("invalid credentials")
	}

	if !user.IsActive {
		return nil, apperrors.InactiveAccountError()
	}

	if err := u.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, apperrors.InternalError("failed to record login", err)
	}

	return u.issueToken(user)
}

func (u *authUseCase) Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error) {
	if err := validate.Struct(input); err != nil {
		return nil, apperrors.ValidationError(err.Error())
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
		Role:         entity.RoleSiswa,
		IsActive:     true,
	}
	siswa := &entity.Siswa{
		ID:          uuid.New(),
		UserID:      user.ID,
		NISN:        input.NISN,
		NIK:         input.NIK,
		NamaLengkap: input.NamaLengkap,
		Email:       input.Email,
	}

	// One transaction: a rejected NISN/NIK must not leave the email behind.
	if err := u.registrationRepo.CreateSiswaAccount(ctx, user, siswa); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, apperrors.InternalError("failed to register account", err)
	}

	return u.issueToken(user)
}

func (u *authUseCase) Me(ctx context.Context, userID uuid.UUID) (*entity.UserResponse, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("user")
		}
		return nil, apperrors.InternalError("failed to get user", err)
	}
	return user.ToResponse(), nil
}

func (u *authUseCase) ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error {
	if err := validate.Struct(input); err != nil {
		return apperrors.ValidationError(err.Error())
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NotFoundError("user")
		}
		return apperrors.InternalError("failed to get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)); err != nil {
		return apperrors.UnauthorizedError("invalid old password")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.InternalError("failed to hash password", err)
	}

	user.PasswordHash = string(newHash)
	if err := u.userRepo.Update(ctx, user); err != nil {
		return apperrors.InternalError("failed to update password", err)
	}
	return nil
}
