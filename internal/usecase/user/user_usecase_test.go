package user

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	adapterrepo "github.com/dikdasmen/spmb-backend/internal/adapter/repository"
	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	apperrors "github.com/dikdasmen/spmb-backend/pkg/errors"
)

func newTestUseCase(t *testing.T) UseCase {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, adapterrepo.Migrate(db))
	return NewUseCase(adapterrepo.NewUserRepository(db))
}

func adminDinasInput(dinasID uuid.UUID) *CreateInput {
	return &CreateInput{
		Email:    "dinas@disdik.go.id",
		Password: "rahasia-sekali",
		Name:     "Admin Dinas Sleman",
		Role:     "admin_dinas",
		DinasID:  &dinasID,
	}
}

func TestUserAdministrationRequiresSuperAdmin(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	principals := []access.Principal{
		access.AdminDinas(uuid.New(), uuid.New()),
		access.AdminSekolah(uuid.New(), uuid.New()),
		access.Siswa(uuid.New()),
	}
	for _, p := range principals {
		_, err := uc.Create(ctx, p, adminDinasInput(uuid.New()))
		assert.True(t, apperrors.IsForbidden(err), "role %s", p.Role)

		_, _, err = uc.List(ctx, p, 0, 20)
		assert.True(t, apperrors.IsForbidden(err), "role %s", p.Role)

		err = uc.Delete(ctx, p, uuid.New())
		assert.True(t, apperrors.IsForbidden(err), "role %s", p.Role)
	}
}

func TestCreateUserAnchorMustMatchRole(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()
	super := access.SuperAdmin(uuid.New())
	dinasID := uuid.New()
	sekolahID := uuid.New()

	tests := []struct {
		name  string
		input *CreateInput
		ok    bool
	}{
		{"admin_dinas with dinas anchor", &CreateInput{
			Email: "a@x.id", Password: "rahasia-sekali", Name: "Admin A",
			Role: "admin_dinas", DinasID: &dinasID,
		}, true},
		{"admin_dinas without anchor", &CreateInput{
			Email: "b@x.id", Password: "rahasia-sekali", Name: "Admin B",
			Role: "admin_dinas",
		}, false},
		{"admin_sekolah with dinas anchor", &CreateInput{
			Email: "c@x.id", Password: "rahasia-sekali", Name: "Admin C",
			Role: "admin_sekolah", DinasID: &dinasID,
		}, false},
		{"siswa with sekolah anchor", &CreateInput{
			Email: "d@x.id", Password: "rahasia-sekali", Name: "Siswa D",
			Role: "siswa", SekolahID: &sekolahID,
		}, false},
		{"super_admin without anchors", &CreateInput{
			Email: "e@x.id", Password: "rahasia-sekali", Name: "Super E",
			Role: "super_admin",
		}, true},
		{"unknown role", &CreateInput{
			Email: "f@x.id", Password: "rahasia-sekali", Name: "Op F",
			Role: "operator",
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(ctx, super, tt.input)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, apperrors.IsValidation(err))
			}
		})
	}
}

func TestDeleteUserSelfDeletionForbidden(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()
	super := access.SuperAdmin(uuid.New())

	created, err := uc.Create(ctx, super, &CreateInput{
		Email: "other@x.id", Password: "rahasia-sekali", Name: "Other Super",
		Role: "super_admin",
	})
	require.NoError(t, err)

	err = uc.Delete(ctx, super, super.UserID)
	assert.True(t, apperrors.IsSelfDeletion(err))

	require.NoError(t, uc.Delete(ctx, super, created.ID))

	err = uc.Delete(ctx, super, created.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateUserPartialFields(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()
	super := access.SuperAdmin(uuid.New())

	created, err := uc.Create(ctx, super, &CreateInput{
		Email: "andi@mail.id", Password: "rahasia-sekali", Name: "Andi",
		Role: "siswa", Phone: "0811111111",
	})
	require.NoError(t, err)

	name := "Andi Pratama"
	inactive := false
	updated, err := uc.Update(ctx, super, created.ID, &UpdateInput{
		Name: &name, IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Andi Pratama", updated.Name)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "0811111111", updated.Phone, "untouched fields keep their value")
}
