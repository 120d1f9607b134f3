package entity

import (
	"github.com/google/uuid"
)

// Kuota is a per (sekolah, jalur, tahun ajaran) capacity counter. The counters
// are stored and mutable but never enforced against pendaftaran creation.
type Kuota struct {
	ID          uuid.UUID `json:"id"`
	SekolahID   uuid.UUID `json:"sekolah_id"`
	JalurID     uuid.UUID `json:"jalur_id"`
	TahunAjaran string    `json:"tahun_ajaran"`
	Kuota       int       `json:"kuota"`
	Terisi      int       `json:"terisi"`
}
