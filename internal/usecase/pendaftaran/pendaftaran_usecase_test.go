package pendaftaran

import (
	"context"
	"regexp"
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
	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
	"github.com/dikdasmen/spmb-backend/internal/domain/repository"
	apperrors "github.com/dikdasmen/spmb-backend/pkg/errors"
)

var noPendaftaranPattern = regexp.MustCompile(`^SPMB-\d{4}-[A-Z0-9]{8}$`)

type fixture struct {
	uc        UseCase
	siswaRepo repository.SiswaRepository
	dinasID   uuid.UUID
	sekolahID uuid.UUID
	userID    uuid.UUID
	siswaID   uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, adapterrepo.Migrate(db))

	ctx := context.Background()
	dinasRepo := adapterrepo.NewDinasRepository(db)
	sekolahRepo := adapterrepo.NewSekolahRepository(db)
	siswaRepo := adapterrepo.NewSiswaRepository(db)

	dinas := &entity.Dinas{
		Name: "Dinas Sleman", Kabupaten: "Sleman", Provinsi: "DI Yogyakarta",
		Alamat: "Jl. Parasamya No. 1", Telepon: "0274-868405", Email: "disdik@slemankab.go.id",
		KepalaDinas: "Ery Widaryana", NIPKepalaDinas: "196501011990031001",
	}
	require.NoError(t, dinasRepo.Create(ctx, dinas))

	sekolah := &entity.Sekolah{
		DinasID: dinas.ID, NPSN: "20401234", Name: "SMPN 1 Mlati",
		Jenjang: entity.JenjangSMP, Alamat: "Jl. Magelang Km 4",
		Kelurahan: "Sinduadi", Kecamatan: "Mlati", Telepon: "0274-123456",
		Email: "smpn1mlati@sch.id", KepalaSekolah: "Budi Santoso",
		NIPKepalaSekolah: "197001011995031002", KetuaSPMB: "Sri Rahayu",
		Status: entity.StatusNegeri,
	}
	require.NoError(t, sekolahRepo.Create(ctx, sekolah))

	userID := uuid.New()
	siswa := &entity.Siswa{
		UserID: userID, NISN: "0051234567", NIK: "3404052012340001",
		NamaLengkap: "Andi Pratama", TempatLahir: "Sleman",
		TanggalLahir: time.Date(2012, 5, 17, 0, 0, 0, 0, time.UTC),
		JenisKelamin: "L", Agama: "Islam", Alamat: "Jl. Kaliurang Km 7",
		Kelurahan: "Condongcatur", Kecamatan: "Depok", Kabupaten: "Sleman",
		Provinsi: "DI Yogyakarta", Email: "andi@mail.id",
	}
	require.NoError(t, siswaRepo.Create(ctx, siswa))

	return &fixture{
		uc:        NewUseCase(adapterrepo.NewPendaftaranRepository(db), siswaRepo),
		siswaRepo: siswaRepo,
		dinasID:   dinas.ID,
		sekolahID: sekolah.ID,
		userID:    userID,
		siswaID:   siswa.ID,
	}
}

func (f *fixture) createInput() *CreateInput {
	return &CreateInput{
		SekolahID:     f.sekolahID,
		JalurID:       uuid.New(),
		TahunAjaranID: uuid.New(),
	}
}

func TestGenerateNoPendaftaranFormat(t *testing.T) {
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 50; i++ {
		no, err := generateNoPendaftaran(now)
		require.NoError(t, err)
		assert.Regexp(t, noPendaftaranPattern, no)
	}
}

func TestCreatePendaftaran(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := access.Siswa(f.userID)

	created, err := f.uc.Create(ctx, p, f.createInput())
	require.NoError(t, err)
	assert.Equal(t, f.siswaID, created.SiswaID, "the applicant is resolved from the caller")
	assert.Equal(t, entity.StatusDraft, created.Status)
	assert.Regexp(t, noPendaftaranPattern, created.NoPendaftaran)
}

func TestCreatePendaftaranOnlySiswa(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, p := range []access.Principal{
		access.SuperAdmin(uuid.New()),
		access.AdminDinas(uuid.New(), f.dinasID),
		access.AdminSekolah(uuid.New(), f.sekolahID),
	} {
		_, err := f.uc.Create(ctx, p, f.createInput())
		assert.True(t, apperrors.IsForbidden(err), "role %s", p.Role)
	}
}

func TestCreatePendaftaranWithoutProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, access.Siswa(uuid.New()), f.createInput())
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSubmitPendaftaran(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := access.Siswa(f.userID)

	created, err := f.uc.Create(ctx, p, f.createInput())
	require.NoError(t, err)

	submitted, err := f.uc.Submit(ctx, p, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSubmitted, submitted.Status)
	assert.NotNil(t, submitted.SubmittedAt)

	_, err = f.uc.Submit(ctx, p, created.ID)
	assert.True(t, apperrors.IsValidation(err), "only drafts can be submitted")
}

func TestSubmitSomeoneElsesPendaftaran(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, access.Siswa(f.userID), f.createInput())
	require.NoError(t, err)

	otherUser := uuid.New()
	other := &entity.Siswa{
		UserID: otherUser, NISN: "0059876543", NIK: "3404052012340002",
		NamaLengkap: "Budi Setiawan", TempatLahir: "Sleman",
		TanggalLahir: time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC),
		JenisKelamin: "L", Agama: "Islam", Alamat: "Jl. Godean Km 5",
		Kelurahan: "Sidoarum", Kecamatan: "Godean", Kabupaten: "Sleman",
		Provinsi: "DI Yogyakarta", Email: "budi@mail.id",
	}
	require.NoError(t, f.siswaRepo.Create(ctx, other))

	_, err = f.uc.Submit(ctx, access.Siswa(otherUser), created.ID)
	assert.True(t, apperrors.IsNotFound(err), "foreign applications look absent")
}

func TestUpdateStatusByTenantAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	siswa := access.Siswa(f.userID)

	created, err := f.uc.Create(ctx, siswa, f.createInput())
	require.NoError(t, err)
	_, err = f.uc.Submit(ctx, siswa, created.ID)
	require.NoError(t, err)

	adminID := uuid.New()
	admin := access.AdminSekolah(adminID, f.sekolahID)
	skor := 87.5
	decided, err := f.uc.UpdateStatus(ctx, admin, created.ID, &UpdateStatusInput{
		Status: entity.StatusDiterima, SkorZonasi: &skor,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDiterima, decided.Status)
	require.NotNil(t, decided.VerifiedBy)
	assert.Equal(t, adminID, *decided.VerifiedBy)
	assert.NotNil(t, decided.VerifiedAt)

	t.Run("foreign school cannot decide", func(t *testing.T) {
		foreign := access.AdminSekolah(uuid.New(), uuid.New())
		_, err := f.uc.UpdateStatus(ctx, foreign, created.ID, &UpdateStatusInput{
			Status: entity.StatusDitolak,
		})
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("siswa cannot decide", func(t *testing.T) {
		_, err := f.uc.UpdateStatus(ctx, siswa, created.ID, &UpdateStatusInput{
			Status: entity.StatusDiterima,
		})
		assert.True(t, apperrors.IsForbidden(err))
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := f.uc.UpdateStatus(ctx, admin, created.ID, &UpdateStatusInput{
			Status: "lulus",
		})
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestDeletePendaftaranSuperAdminOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	siswa := access.Siswa(f.userID)

	created, err := f.uc.Create(ctx, siswa, f.createInput())
	require.NoError(t, err)

	assert.True(t, apperrors.IsForbidden(f.uc.Delete(ctx, siswa, created.ID)))
	assert.True(t, apperrors.IsForbidden(f.uc.Delete(ctx, access.AdminSekolah(uuid.New(), f.sekolahID), created.ID)))

	require.NoError(t, f.uc.Delete(ctx, access.SuperAdmin(uuid.New()), created.ID))
	err = f.uc.Delete(ctx, access.SuperAdmin(uuid.New()), created.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
