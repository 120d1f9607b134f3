package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func unrestricted() access.Scope {
	return access.Scope{Kind: access.Unrestricted}
}

func seedDinas(t *testing.T, db *gorm.DB, name string) *entity.Dinas {
	t.Helper()
	d := &entity.Dinas{
		Name:           name,
		Kabupaten:      "Sleman",
		Provinsi:       "DI Yogyakarta",
		Alamat:         "Jl. Parasamya No. 1",
		Telepon:        "0274-868405",
		Email:          fmt.Sprintf("%s@disdik.go.id", uuid.NewString()[:8]),
		KepalaDinas:    "Ery Widaryana",
		NIPKepalaDinas: "196501011990031001",
	}
	require.NoError(t, NewDinasRepository(db).Create(context.Background(), d))
	return d
}

func seedSekolah(t *testing.T, db *gorm.DB, dinasID uuid.UUID, name string) *entity.Sekolah {
	t.Helper()
	s := &entity.Sekolah{
		DinasID:          dinasID,
		NPSN:             uuid.NewString()[:8],
		Name:             name,
		Jenjang:          entity.JenjangSMP,
		Alamat:           "Jl. Magelang Km 4",
		Kelurahan:        "Sinduadi",
		Kecamatan:        "Mlati",
		Telepon:          "0274-123456",
		Email:            fmt.Sprintf("%s@sch.id", uuid.NewString()[:8]),
		KepalaSekolah:    "Budi Santoso",
		NIPKepalaSekolah: "197001011995031002",
		KetuaSPMB:        "Sri Rahayu",
		Status:           entity.StatusNegeri,
	}
	require.NoError(t, NewSekolahRepository(db).Create(context.Background(), s))
	return s
}

func seedSiswa(t *testing.T, db *gorm.DB, userID uuid.UUID, nama string) *entity.Siswa {
	t.Helper()
	s := &entity.Siswa{
		UserID:       userID,
		NISN:         uuid.NewString()[:10],
		NIK:          uuid.NewString()[:16],
		NamaLengkap:  nama,
		TempatLahir:  "Sleman",
		TanggalLahir: time.Date(2012, 5, 17, 0, 0, 0, 0, time.UTC),
		JenisKelamin: "L",
		Agama:        "Islam",
		Alamat:       "Jl. Kaliurang Km 7",
		Kelurahan:    "Condongcatur",
		Kecamatan:    "Depok",
		Kabupaten:    "Sleman",
		Provinsi:     "DI Yogyakarta",
		Email:        fmt.Sprintf("%s@mail.id", uuid.NewString()[:8]),
	}
	require.NoError(t, NewSiswaRepository(db).Create(context.Background(), s))
	return s
}

func seedPendaftaran(t *testing.T, db *gorm.DB, siswaID, sekolahID uuid.UUID) *entity.Pendaftaran {
	t.Helper()
	p := &entity.Pendaftaran{
		SiswaID:       siswaID,
		SekolahID:     sekolahID,
		JalurID:       uuid.New(),
		TahunAjaranID: uuid.New(),
		NoPendaftaran: fmt.Sprintf("SPMB-2026-%s", uuid.NewString()[:8]),
		Status:        entity.StatusDraft,
	}
	require.NoError(t, NewPendaftaranRepository(db).Create(context.Background(), p))
	return p
}
