package entity

import (
	"time"

	"github.com/google/uuid"
)

// PengumumanTipe enumerates announcement severities
const (
	TipeInfo    = "info"
	TipeWarning = "warning"
	TipeUrgent  = "urgent"
)

// Pengumuman is an announcement, optionally scoped to a dinas or sekolah.
// Public reads only see published rows.
type Pengumuman struct {
	ID          uuid.UUID  `json:"id"`
	DinasID     *uuid.UUID `json:"dinas_id,omitempty"`
	SekolahID   *uuid.UUID `json:"sekolah_id,omitempty"`
	Judul       string     `json:"judul"`
	Isi         string     `json:"isi"`
	Tipe        string     `json:"tipe"`
	IsPublished bool       `json:"is_published"`
	PublishedAt time.Time  `json:"published_at"`
	CreatedBy   uuid.UUID  `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Berita is a news article with a unique slug.
type Berita struct {
	ID          uuid.UUID  `json:"id"`
	DinasID     *uuid.UUID `json:"dinas_id,omitempty"`
	SekolahID   *uuid.UUID `json:"sekolah_id,omitempty"`
	Judul       string     `json:"judul"`
	Slug        string     `json:"slug"`
	Ringkasan   string     `json:"ringkasan,omitempty"`
	Isi         string     `json:"isi"`
	Gambar      string     `json:"gambar,omitempty"`
	IsPublished bool       `json:"is_published"`
	PublishedAt time.Time  `json:"published_at"`
	CreatedBy   uuid.UUID  `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
