package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pendaftaran statuses observed in the admission flow. Status is stored as
// free text; no transition graph is enforced.
const (
	StatusDraft      = "draft"
	StatusSubmitted  = "submitted"
	StatusVerifikasi = "verifikasi"
	StatusDiterima   = "diterima"
	StatusDitolak    = "ditolak"
)

// Pendaftaran is an admission application: the join point of the hierarchy,
// referencing one Siswa, one Sekolah, one Jalur and one TahunAjaran.
type Pendaftaran struct {
	ID            uuid.UUID  `json:"id"`
	SiswaID       uuid.UUID  `json:"siswa_id"`
	SekolahID     uuid.UUID  `json:"sekolah_id"`
	JalurID       uuid.UUID  `json:"jalur_id"`
	TahunAjaranID uuid.UUID  `json:"tahun_ajaran_id"`
	NoPendaftaran string     `json:"no_pendaftaran"`
	Status        string     `json:"status"`
	JarakKeSekolah *float64  `json:"jarak_ke_sekolah,omitempty"`
	NilaiRata     *float64   `json:"nilai_rata,omitempty"`
	SkorZonasi    *float64   `json:"skor_zonasi,omitempty"`
	SkorPrestasi  *float64   `json:"skor_prestasi,omitempty"`
	SubmittedAt   *time.Time `json:"submitted_at,omitempty"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	VerifiedBy    *uuid.UUID `json:"verified_by,omitempty"`
	RejectReason  string     `json:"reject_reason,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
