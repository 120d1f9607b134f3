package entity

import (
	"time"

	"github.com/google/uuid"
)

// Jenjang is the school level (SD / SMP)
type Jenjang string

const (
	JenjangSD  Jenjang = "SD"
	JenjangSMP Jenjang = "SMP"
)

// StatusSekolah is the school ownership status
type StatusSekolah string

const (
	StatusNegeri StatusSekolah = "negeri"
	StatusSwasta StatusSekolah = "swasta"
)

// Sekolah is a school, belonging to exactly one Dinas.
type Sekolah struct {
	ID               uuid.UUID     `json:"id"`
	DinasID          uuid.UUID     `json:"dinas_id"`
	NPSN             string        `json:"npsn"`
	Name             string        `json:"name"`
	Jenjang          Jenjang       `json:"jenjang"`
	Alamat           string        `json:"alamat"`
	Kelurahan        string        `json:"kelurahan"`
	Kecamatan        string        `json:"kecamatan"`
	Telepon          string        `json:"telepon"`
	Email            string        `json:"email"`
	Website          string        `json:"website,omitempty"`
	Lat              *float64      `json:"lat,omitempty"`
	Lng              *float64      `json:"lng,omitempty"`
	Logo             string        `json:"logo,omitempty"`
	KepalaSekolah    string        `json:"kepala_sekolah"`
	NIPKepalaSekolah string        `json:"nip_kepala_sekolah"`
	KetuaSPMB        string        `json:"ketua_spmb"`
	Akreditasi       string        `json:"akreditasi,omitempty"`
	Status           StatusSekolah `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
