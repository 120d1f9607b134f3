package admission

import (
	"context"
	"testing"
	"time"

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

	return NewUseCase(
		adapterrepo.NewJalurRepository(db),
		adapterrepo.NewTahunAjaranRepository(db),
		adapterrepo.NewKuotaRepository(db),
	)
}

func TestJalurManagementSuperAdminOnly(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	input := &JalurInput{Name: "Zonasi", Type: "zonasi"}
	for _, p := range []access.Principal{
		access.AdminDinas(uuid.New(), uuid.New()),
		access.AdminSekolah(uuid.New(), uuid.New()),
		access.Siswa(uuid.New()),
	} {
		_, err := uc.CreateJalur(ctx, p, input)
		assert.True(t, apperrors.IsForbidden(err), "role %s", p.Role)
	}

	created, err := uc.CreateJalur(ctx, access.SuperAdmin(uuid.New()), input)
	require.NoError(t, err)
	assert.Equal(t, "Zonasi", created.Name)
}

func TestCreateKuotaStampsSchoolFromScope(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	ownSekolah := uuid.New()
	otherSekolah := uuid.New()
	admin := access.AdminSekolah(uuid.New(), ownSekolah)

	// The owning school comes from the caller, not the payload.
	created, err := uc.CreateKuota(ctx, admin, &KuotaInput{
		SekolahID:   &otherSekolah,
		JalurID:     uuid.New(),
		TahunAjaran: "2026/2027",
		Kuota:       120,
	})
	require.NoError(t, err)
	assert.Equal(t, ownSekolah, created.SekolahID)

	t.Run("super_admin must name the school", func(t *testing.T) {
		super := access.SuperAdmin(uuid.New())
		_, err := uc.CreateKuota(ctx, super, &KuotaInput{
			JalurID: uuid.New(), TahunAjaran: "2026/2027", Kuota: 60,
		})
		assert.True(t, apperrors.IsValidation(err))

		got, err := uc.CreateKuota(ctx, super, &KuotaInput{
			SekolahID: &otherSekolah, JalurID: uuid.New(), TahunAjaran: "2026/2027", Kuota: 60,
		})
		require.NoError(t, err)
		assert.Equal(t, otherSekolah, got.SekolahID)
	})

	t.Run("dinas admin cannot create kuota", func(t *testing.T) {
		_, err := uc.CreateKuota(ctx, access.AdminDinas(uuid.New(), uuid.New()), &KuotaInput{
			JalurID: uuid.New(), TahunAjaran: "2026/2027",
		})
		assert.True(t, apperrors.IsForbidden(err))
	})
}

func tahunAjaranInput(tahun string, active bool) *TahunAjaranInput {
	return &TahunAjaranInput{
		Tahun:                   tahun,
		IsActive:                active,
		TanggalMulaiPendaftaran: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		TanggalAkhirPendaftaran: time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC),
		TanggalSeleksi:          time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
		TanggalPengumuman:       time.Date(2026, 6, 28, 0, 0, 0, 0, time.UTC),
		TanggalDaftarUlang:      time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		TanggalAkhirDaftarUlang: time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestSetActiveTahunAjaranSuperAdminOnly(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()
	super := access.SuperAdmin(uuid.New())

	first, err := uc.CreateTahunAjaran(ctx, super, tahunAjaranInput("2025/2026", true))
	require.NoError(t, err)
	second, err := uc.CreateTahunAjaran(ctx, super, tahunAjaranInput("2026/2027", false))
	require.NoError(t, err)

	_, err = uc.SetActiveTahunAjaran(ctx, access.AdminDinas(uuid.New(), uuid.New()), second.ID)
	assert.True(t, apperrors.IsForbidden(err))

	activated, err := uc.SetActiveTahunAjaran(ctx, super, second.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)

	active, err := uc.GetActiveTahunAjaran(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
	assert.NotEqual(t, first.ID, active.ID)
}
