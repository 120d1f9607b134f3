package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Dinas is a district education authority, the top of the tenant hierarchy.
type Dinas struct {
	ID                   uuid.UUID      `json:"id"`
	Name                 string         `json:"name"`
	Kabupaten            string         `json:"kabupaten"`
	Provinsi             string         `json:"provinsi"`
	Alamat               string         `json:"alamat"`
	Telepon              string         `json:"telepon"`
	Email                string         `json:"email"`
	Website              string         `json:"website,omitempty"`
	LogoDinas            string         `json:"logo_dinas,omitempty"`
	LogoKabupaten        string         `json:"logo_kabupaten,omitempty"`
	SignatureURL         string         `json:"signature_url,omitempty"`
	KepalaDinas          string         `json:"kepala_dinas"`
	NIPKepalaDinas       string         `json:"nip_kepala_dinas"`
	NotificationSettings datatypes.JSON `json:"notification_settings,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}
