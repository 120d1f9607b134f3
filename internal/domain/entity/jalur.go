package entity

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// JalurType enumerates the admission track kinds
type JalurType string

const (
	JalurZonasi      JalurType = "zonasi"
	JalurPrestasi    JalurType = "prestasi"
	JalurAfirmasi    JalurType = "afirmasi"
	JalurPerpindahan JalurType = "perpindahan"
)

// Jalur is a global admission track reference entity, not tenant-scoped.
type Jalur struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Type         JalurType      `json:"type"`
	Description  string         `json:"description,omitempty"`
	Persyaratan  datatypes.JSON `json:"persyaratan,omitempty"`
	BerkasWajib  datatypes.JSON `json:"berkas_wajib,omitempty"`
	RadiusZonasi *int           `json:"radius_zonasi,omitempty"`
	IsActive     bool           `json:"is_active"`
	Order        int            `json:"order"`
}
