package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Siswa is a student profile, linked one-to-one with a User of role siswa.
// A student has no direct school reference; its association with a school
// exists only through its Pendaftaran rows.
type Siswa struct {
	ID              uuid.UUID      `json:"id"`
	UserID          uuid.UUID      `json:"user_id"`
	NISN            string         `json:"nisn"`
	NIK             string         `json:"nik"`
	NamaLengkap     string         `json:"nama_lengkap"`
	TempatLahir     string         `json:"tempat_lahir"`
	TanggalLahir    time.Time      `json:"tanggal_lahir"`
	JenisKelamin    string         `json:"jenis_kelamin"`
	Agama           string         `json:"agama"`
	Alamat          string         `json:"alamat"`
	RT              string         `json:"rt,omitempty"`
	RW              string         `json:"rw,omitempty"`
	Kelurahan       string         `json:"kelurahan"`
	Kecamatan       string         `json:"kecamatan"`
	Kabupaten       string         `json:"kabupaten"`
	Provinsi        string         `json:"provinsi"`
	KodePos         string         `json:"kode_pos,omitempty"`
	KoordinatRumah  datatypes.JSON `json:"koordinat_rumah,omitempty"`
	Telepon         string         `json:"telepon,omitempty"`
	Email           string         `json:"email"`
	AsalSekolah     string         `json:"asal_sekolah,omitempty"`
	NPSNAsalSekolah string         `json:"npsn_asal_sekolah,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
