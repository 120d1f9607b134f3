package access

import (
	"github.com/google/uuid"

	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
)

// Kind classifies a scope decision
type Kind int

const (
	// Denied means the role may not perform the operation at all
	Denied Kind = iota
	// Unrestricted applies no predicate; super_admin only
	Unrestricted
	// ByDinas bounds rows to those owned by the principal's district
	ByDinas
	// BySekolah bounds rows to those owned by the principal's school
	BySekolah
	// Self bounds rows to those owned by the principal's own account
	Self
)

// Scope is the predicate an entity repository must apply. A row that fails the
// predicate is indistinguishable from an absent row.
type Scope struct {
	Kind      Kind
	DinasID   uuid.UUID
	SekolahID uuid.UUID
	UserID    uuid.UUID
}

// IsDenied reports whether the operation is not permitted at all
func (s Scope) IsDenied() bool { return s.Kind == Denied }

// Entity names the entity types the scope calculator knows about
type Entity string

const (
	EntityDinas       Entity = "dinas"
	EntitySekolah     Entity = "sekolah"
	EntityUser        Entity = "user"
	EntitySiswa       Entity = "siswa"
	EntityPendaftaran Entity = "pendaftaran"
	EntityJalur       Entity = "jalur"
	EntityTahunAjaran Entity = "tahun_ajaran"
	EntityKuota       Entity = "kuota"
	EntityPengumuman  Entity = "pengumuman"
	EntityBerita      Entity = "berita"
)

// Operation names the operation kinds
type Operation int

const (
	OpRead Operation = iota
	OpCreate
	OpUpdate
	OpDelete
)

// ScopeFor computes the scope bounding the given principal's operation on the
// given entity type.
//
// The matrix, in words: super_admin is unrestricted everywhere. Org-structure
// writes (dinas, sekolah) and user administration belong to super_admin only.
// admin_dinas reads its own dinas record and everything under it (sekolah,
// siswa, pendaftaran, kuota) and may update pendaftaran in its district.
// admin_sekolah reads its own sekolah record, its applicants and their
// students, manages its kuota, and may update pendaftaran to its school.
// Content (pengumuman, berita) is writable by both admin roles within their
// tenant. Students touch only their own profile and applications. Jalur and
// tahun ajaran are global reference data: reads are served by the public
// config endpoints, writes are super_admin only.
func ScopeFor(p Principal, e Entity, op Operation) Scope {
	s := scopeFor(p, e, op)
	// Guard: only the exact super_admin role may ever be unrestricted.
	if s.Kind == Unrestricted && p.Role != entity.RoleSuperAdmin {
		return Scope{Kind: Denied}
	}
	return s
}

func scopeFor(p Principal, e Entity, op Operation) Scope {
	switch p.Role {
	case entity.RoleSuperAdmin:
		return Scope{Kind: Unrestricted}

	case entity.RoleAdminDinas:
		if p.DinasID == nil {
			return Scope{Kind: Denied}
		}
		byDinas := Scope{Kind: ByDinas, DinasID: *p.DinasID}
		switch e {
		case EntityDinas, EntitySekolah, EntitySiswa, EntityKuota:
			if op == OpRead {
				return byDinas
			}
		case EntityPendaftaran:
			if op == OpRead || op == OpUpdate {
				return byDinas
			}
		case EntityPengumuman, EntityBerita:
			return byDinas
		}
		return Scope{Kind: Denied}

	case entity.RoleAdminSekolah:
		if p.SekolahID == nil {
			return Scope{Kind: Denied}
		}
		bySekolah := Scope{Kind: BySekolah, SekolahID: *p.SekolahID}
		switch e {
		case EntitySekolah, EntitySiswa:
			if op == OpRead {
				return bySekolah
			}
		case EntityPendaftaran:
			if op == OpRead || op == OpUpdate {
				return bySekolah
			}
		case EntityKuota, EntityPengumuman, EntityBerita:
			return bySekolah
		}
		return Scope{Kind: Denied}

	case entity.RoleSiswa:
		self := Scope{Kind: Self, UserID: p.UserID}
		switch e {
		case EntitySiswa:
			if op == OpRead || op == OpCreate || op == OpUpdate {
				return self
			}
		case EntityPendaftaran:
			if op == OpRead || op == OpCreate {
				return self
			}
		}
		return Scope{Kind: Denied}
	}

	return Scope{Kind: Denied}
}
