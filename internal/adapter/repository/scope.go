package repository

import (
	"gorm.io/gorm"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
)

// This file is the single home of the hierarchy traversals. District scope
// reaches pendaftaran through sekolah (pendaftaran.sekolah_id ->
// sekolah.dinas_id) and reaches siswa through its pendaftaran rows. A siswa
// with zero pendaftaran therefore matches no dinas/sekolah scope and is
// visible only unrestricted or to itself.

// scopedDinas bounds a dinas query to the scope
func scopedDinas(tx *gorm.DB, s access.Scope) *gorm.DB {
	switch s.Kind {
	case access.Unrestricted:
		return tx
	case access.ByDinas:
		return tx.Where("dinas.id = ?", s.DinasID)
	default:
		return tx.Where("1 = 0")
	}
}

// scopedSekolah bounds a sekolah query to the scope
func scopedSekolah(tx *gorm.DB, s access.Scope) *gorm.DB {
	switch s.Kind {
	case access.Unrestricted:
		return tx
	case access.ByDinas:
		return tx.Where("sekolah.dinas_id = ?", s.DinasID)
	case access.BySekolah:
		return tx.Where("sekolah.id = ?", s.SekolahID)
	default:
		return tx.Where("1 = 0")
	}
}

// scopedPendaftaran bounds a pendaftaran query to the scope
func scopedPendaftaran(db *gorm.DB, tx *gorm.DB, s access.Scope) *gorm.DB {
	switch s.Kind {
	case access.Unrestricted:
		return tx
	case access.ByDinas:
		return tx.Where("pendaftaran.sekolah_id IN (?)",
			db.Table("sekolah").Select("sekolah.id").Where("sekolah.dinas_id = ?", s.DinasID))
	case access.BySekolah:
		return tx.Where("pendaftaran.sekolah_id = ?", s.SekolahID)
	case access.Self:
		return tx.Where("pendaftaran.siswa_id IN (?)",
			db.Table("siswa").Select("siswa.id").Where("siswa.user_id = ?", s.UserID))
	default:
		return tx.Where("1 = 0")
	}
}

// scopedSiswa bounds a siswa query to the scope
func scopedSiswa(db *gorm.DB, tx *gorm.DB, s access.Scope) *gorm.DB {
	switch s.Kind {
	case access.Unrestricted:
		return tx
	case access.ByDinas:
		return tx.Where("siswa.id IN (?)",
			db.Table("pendaftaran").Select("pendaftaran.siswa_id").
				Joins("JOIN sekolah ON sekolah.id = pendaftaran.sekolah_id").
				Where("sekolah.dinas_id = ?", s.DinasID))
	case access.BySekolah:
		return tx.Where("siswa.id IN (?)",
			db.Table("pendaftaran").Select("pendaftaran.siswa_id").
				Where("pendaftaran.sekolah_id = ?", s.SekolahID))
	case access.Self:
		return tx.Where("siswa.user_id = ?", s.UserID)
	default:
		return tx.Where("1 = 0")
	}
}

// scopedKuota bounds a kuota query to the scope
func scopedKuota(db *gorm.DB, tx *gorm.DB, s access.Scope) *gorm.DB {
	switch s.Kind {
	case access.Unrestricted:
		return tx
	case access.ByDinas:
		return tx.Where("kuota.sekolah_id IN (?)",
			db.Table("sekolah").Select("sekolah.id").Where("sekolah.dinas_id = ?", s.DinasID))
	case access.BySekolah:
		return tx.Where("kuota.sekolah_id = ?", s.SekolahID)
	default:
		return tx.Where("1 = 0")
	}
}

// scopedContent bounds pengumuman/berita queries to the scope. Content rows
// carry optional tenant columns directly.
func scopedContent(tx *gorm.DB, table string, s access.Scope) *gorm.DB {
	switch s.Kind {
	case access.Unrestricted:
		return tx
	case access.ByDinas:
		return tx.Where(table+".dinas_id = ?", s.DinasID)
	case access.BySekolah:
		return tx.Where(table+".sekolah_id = ?", s.SekolahID)
	default:
		return tx.Where("1 = 0")
	}
}
