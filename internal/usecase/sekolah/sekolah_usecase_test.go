package sekolah

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
	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
	apperrors "github.com/dikdasmen/spmb-backend/pkg/errors"
)

func newTestUseCase(t *testing.T) (UseCase, uuid.UUID) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, adapterrepo.Migrate(db))

	dinas := &entity.Dinas{
		Name: "Dinas Sleman", Kabupaten: "Sleman", Provinsi: "DI Yogyakarta",
		Alamat: "Jl. Parasamya No. 1", Telepon: "0274-868405",
		Email: "disdik@slemankab.go.id", KepalaDinas: "Ery Widaryana",
		NIPKepalaDinas: "196501011990031001",
	}
	require.NoError(t, adapterrepo.NewDinasRepository(db).Create(context.Background(), dinas))

	return NewUseCase(adapterrepo.NewSekolahRepository(db)), dinas.ID
}

func validCreateInput(dinasID uuid.UUID) *CreateInput {
	return &CreateInput{
		DinasID:       dinasID,
		NPSN:          "20401234",
		Name:          "SMPN 1 Mlati",
		Jenjang:       "SMP",
		Alamat:        "Jl. Magelang Km 4",
		Kelurahan:     "Sinduadi",
		Kecamatan:     "Mlati",
		Telepon:       "0274-123456",
		Email:         "smpn1mlati@sch.id",
		KepalaSekolah: "Budi Santoso",
		Status:        "negeri",
	}
}

func TestCreateSekolah(t *testing.T) {
	uc, dinasID := newTestUseCase(t)
	ctx := context.Background()
	super := access.SuperAdmin(uuid.New())

	created, err := uc.Create(ctx, super, validCreateInput(dinasID))
	require.NoError(t, err)
	assert.Equal(t, entity.JenjangSMP, created.Jenjang)
	assert.Equal(t, entity.StatusNegeri, created.Status)

	t.Run("duplicate npsn", func(t *testing.T) {
		again := validCreateInput(dinasID)
		again.Name = "SMPN 2 Mlati"
		_, err := uc.Create(ctx, super, again)
		assert.True(t, apperrors.IsAlreadyExists(err))
	})

	t.Run("invalid npsn length", func(t *testing.T) {
		bad := validCreateInput(dinasID)
		bad.NPSN = "123"
		_, err := uc.Create(ctx, super, bad)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("non super_admin forbidden", func(t *testing.T) {
		dinasAdmin := access.AdminDinas(uuid.New(), dinasID)
		_, err := uc.Create(ctx, dinasAdmin, validCreateInput(dinasID))
		assert.True(t, apperrors.IsForbidden(err))
	})
}

func TestUpdateSekolahPartialFields(t *testing.T) {
	uc, dinasID := newTestUseCase(t)
	ctx := context.Background()
	super := access.SuperAdmin(uuid.New())

	created, err := uc.Create(ctx, super, validCreateInput(dinasID))
	require.NoError(t, err)

	// A payload carrying only a name must touch nothing else.
	name := "SMP Negeri 1 Mlati"
	updated, err := uc.Update(ctx, super, created.ID, &UpdateInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "SMP Negeri 1 Mlati", updated.Name)
	assert.Equal(t, created.NPSN, updated.NPSN)
	assert.Equal(t, created.Jenjang, updated.Jenjang)
	assert.Equal(t, created.Alamat, updated.Alamat)
	assert.Equal(t, created.Kelurahan, updated.Kelurahan)
	assert.Equal(t, created.Kecamatan, updated.Kecamatan)
	assert.Equal(t, created.Telepon, updated.Telepon)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.KepalaSekolah, updated.KepalaSekolah)
	assert.Equal(t, created.Status, updated.Status)
	assert.True(t, updated.UpdatedAt.After(created.CreatedAt) || updated.UpdatedAt.Equal(created.CreatedAt))

	got, err := uc.Get(ctx, super, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "SMP Negeri 1 Mlati", got.Name)
	assert.Equal(t, created.Alamat, got.Alamat)

	t.Run("second field leaves the first intact", func(t *testing.T) {
		ketua := "Sri Rahayu"
		updated, err := uc.Update(ctx, super, created.ID, &UpdateInput{KetuaSPMB: &ketua})
		require.NoError(t, err)
		assert.Equal(t, "Sri Rahayu", updated.KetuaSPMB)
		assert.Equal(t, "SMP Negeri 1 Mlati", updated.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := uc.Update(ctx, super, uuid.New(), &UpdateInput{Name: &name})
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestListSekolahScoping(t *testing.T) {
	uc, dinasID := newTestUseCase(t)
	ctx := context.Background()
	super := access.SuperAdmin(uuid.New())

	created, err := uc.Create(ctx, super, validCreateInput(dinasID))
	require.NoError(t, err)

	other := validCreateInput(dinasID)
	other.NPSN = "20405678"
	other.Name = "SDN Sinduadi 1"
	other.Jenjang = "SD"
	_, err = uc.Create(ctx, super, other)
	require.NoError(t, err)

	list, total, err := uc.List(ctx, super, 0, 20)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.EqualValues(t, 2, total)

	t.Run("school admin sees own school only", func(t *testing.T) {
		admin := access.AdminSekolah(uuid.New(), created.ID)
		list, total, err := uc.List(ctx, admin, 0, 20)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.EqualValues(t, 1, total)
		assert.Equal(t, created.ID, list[0].ID)
	})

	t.Run("public directory needs no principal", func(t *testing.T) {
		list, err := uc.ListPublic(ctx, 0, 20)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})
}

func TestDeleteSekolah(t *testing.T) {
	uc, dinasID := newTestUseCase(t)
	ctx := context.Background()
	super := access.SuperAdmin(uuid.New())

	created, err := uc.Create(ctx, super, validCreateInput(dinasID))
	require.NoError(t, err)

	admin := access.AdminSekolah(uuid.New(), created.ID)
	err = uc.Delete(ctx, admin, created.ID)
	assert.True(t, apperrors.IsForbidden(err))

	require.NoError(t, uc.Delete(ctx, super, created.ID))
	err = uc.Delete(ctx, super, created.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
