package auth

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	adapterrepo "github.com/dikdasmen/spmb-backend/internal/adapter/repository"
	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
	"github.com/dikdasmen/spmb-backend/internal/domain/repository"
	apperrors "github.com/dikdasmen/spmb-backend/pkg/errors"
	"github.com/dikdasmen/spmb-backend/pkg/jwt"
)

func newTestUseCase(t *testing.T) (UseCase, repository.UserRepository, repository.SiswaRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, adapterrepo.Migrate(db))

	userRepo := adapterrepo.NewUserRepository(db)
	siswaRepo := adapterrepo.NewSiswaRepository(db)
	registrationRepo := adapterrepo.NewRegistrationRepository(db)
	jwtManager := jwt.NewJWTManager("test-secret", time.Hour, "spmb-backend-test")
	return NewUseCase(userRepo, registrationRepo, jwtManager), userRepo, siswaRepo
}

func validRegisterInput() *RegisterInput {
	return &RegisterInput{
		Email:       "andi@mail.id",
		Password:    "rahasia-sekali",
		Name:        "Andi",
		NISN:        "0051234567",
		NIK:         "3404052012340001",
		NamaLengkap: "Andi Pratama",
	}
}

func TestRegisterCreatesSiswaAccount(t *testing.T) {
	uc, _, siswaRepo := newTestUseCase(t)
	ctx := context.Background()

	out, err := uc.Register(ctx, validRegisterInput())
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, entity.RoleSiswa, out.User.Role)
	assert.Nil(t, out.User.DinasID)
	assert.Nil(t, out.User.SekolahID)

	siswa, err := siswaRepo.GetByUserID(ctx, out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Andi Pratama", siswa.NamaLengkap)
	assert.Equal(t, "0051234567", siswa.NISN)
}

func TestRegisterValidation(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	badNISN := validRegisterInput()
	badNISN.NISN = "123"
	_, err := uc.Register(ctx, badNISN)
	assert.True(t, apperrors.IsValidation(err))

	shortPassword := validRegisterInput()
	shortPassword.Password = "pendek"
	_, err = uc.Register(ctx, shortPassword)
	assert.True(t, apperrors.IsValidation(err))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	again := validRegisterInput()
	again.NISN = "0059876543"
	again.NIK = "3404052012340002"
	_, err = uc.Register(ctx, again)
	assert.True(t, apperrors.IsAlreadyExists(err))
}

func TestRegisterRejectedProfileLeavesNoAccount(t *testing.T) {
	uc, userRepo, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	// Same NISN under a fresh email: the whole registration must roll back.
	dup := validRegisterInput()
	dup.Email = "budi@mail.id"
	dup.NIK = "3404052012340002"
	dup.NamaLengkap = "Budi Santoso"
	_, err = uc.Register(ctx, dup)
	assert.True(t, apperrors.IsAlreadyExists(err))

	_, err = userRepo.GetByEmail(ctx, "budi@mail.id")
	assert.True(t, apperrors.IsNotFound(err))

	// The email was never burned; a valid retry succeeds.
	retry := validRegisterInput()
	retry.Email = "budi@mail.id"
	retry.NISN = "0059876543"
	retry.NIK = "3404052012340002"
	retry.NamaLengkap = "Budi Santoso"
	_, err = uc.Register(ctx, retry)
	assert.NoError(t, err)
}

func TestLogin(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		out, err := uc.Login(ctx, &LoginInput{Email: "andi@mail.id", Password: "rahasia-sekali"})
		require.NoError(t, err)
		assert.NotEmpty(t, out.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Login(ctx, &LoginInput{Email: "andi@mail.id", Password: "salah"})
		assert.True(t, apperrors.IsUnauthorized(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := uc.Login(ctx, &LoginInput{Email: "nobody@mail.id", Password: "rahasia-sekali"})
		assert.True(t, apperrors.IsUnauthorized(err))
	})
}

func TestLoginInactiveAccount(t *testing.T) {
	uc, userRepo, _ := newTestUseCase(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia-sekali"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &entity.User{
		Email:        "nonaktif@mail.id",
		PasswordHash: string(hash),
		Name:         "Budi",
		Role:         entity.RoleSiswa,
		IsActive:     true,
	}
	require.NoError(t, userRepo.Create(ctx, user))
	user.IsActive = false
	require.NoError(t, userRepo.Update(ctx, user))

	_, err = uc.Login(ctx, &LoginInput{Email: "nonaktif@mail.id", Password: "rahasia-sekali"})
	assert.True(t, apperrors.IsInactiveAccount(err))

	// A wrong password must not reveal the account state.
	_, err = uc.Login(ctx, &LoginInput{Email: "nonaktif@mail.id", Password: "salah"})
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.False(t, apperrors.IsInactiveAccount(err))
}

func TestChangePassword(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	out, err := uc.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	err = uc.ChangePassword(ctx, out.User.ID, &ChangePasswordInput{
		OldPassword: "salah", NewPassword: "rahasia-baru-1",
	})
	assert.True(t, apperrors.IsUnauthorized(err))

	require.NoError(t, uc.ChangePassword(ctx, out.User.ID, &ChangePasswordInput{
		OldPassword: "rahasia-sekali", NewPassword: "rahasia-baru-1",
	}))

	_, err = uc.Login(ctx, &LoginInput{Email: "andi@mail.id", Password: "rahasia-sekali"})
	assert.True(t, apperrors.IsUnauthorized(err))

	_, err = uc.Login(ctx, &LoginInput{Email: "andi@mail.id", Password: "rahasia-baru-1"})
	assert.NoError(t, err)
}
