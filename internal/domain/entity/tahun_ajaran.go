package entity

import (
	"time"

	"github.com/google/uuid"
)

// TahunAjaran is an academic year configuration record, including the
// admission milestone dates. At most one row is active at any time; the
// repository enforces this on write.
type TahunAjaran struct {
	ID                      uuid.UUID `json:"id"`
	Tahun                   string    `json:"tahun"`
	IsActive                bool      `json:"is_active"`
	TanggalMulaiPendaftaran time.Time `json:"tanggal_mulai_pendaftaran"`
	TanggalAkhirPendaftaran time.Time `json:"tanggal_akhir_pendaftaran"`
	TanggalSeleksi          time.Time `json:"tanggal_seleksi"`
	TanggalPengumuman       time.Time `json:"tanggal_pengumuman"`
	TanggalDaftarUlang      time.Time `json:"tanggal_daftar_ulang"`
	TanggalAkhirDaftarUlang time.Time `json:"tanggal_akhir_daftar_ulang"`
}
