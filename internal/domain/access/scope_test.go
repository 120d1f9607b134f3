package access

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
)

var allEntities = []Entity{
	EntityDinas, EntitySekolah, EntityUser, EntitySiswa, EntityPendaftaran,
	EntityJalur, EntityTahunAjaran, EntityKuota, EntityPengumuman, EntityBerita,
}

var allOps = []Operation{OpRead, OpCreate, OpUpdate, OpDelete}

func TestScopeForSuperAdmin(t *testing.T) {
	p := SuperAdmin(uuid.New())

	for _, e := range allEntities {
		for _, op := range allOps {
			s := ScopeFor(p, e, op)
			assert.Equal(t, Unrestricted, s.Kind, "entity %s op %d", e, op)
		}
	}
}

func TestScopeForAdminDinas(t *testing.T) {
	dinasID := uuid.New()
	p := AdminDinas(uuid.New(), dinasID)

	tests := []struct {
		name   string
		entity Entity
		op     Operation
		want   Kind
	}{
		{"read own dinas", EntityDinas, OpRead, ByDinas},
		{"update dinas denied", EntityDinas, OpUpdate, Denied},
		{"read sekolah", EntitySekolah, OpRead, ByDinas},
		{"create sekolah denied", EntitySekolah, OpCreate, Denied},
		{"read siswa", EntitySiswa, OpRead, ByDinas},
		{"update siswa denied", EntitySiswa, OpUpdate, Denied},
		{"read pendaftaran", EntityPendaftaran, OpRead, ByDinas},
		{"update pendaftaran", EntityPendaftaran, OpUpdate, ByDinas},
		{"create pendaftaran denied", EntityPendaftaran, OpCreate, Denied},
		{"delete pendaftaran denied", EntityPendaftaran, OpDelete, Denied},
		{"read kuota", EntityKuota, OpRead, ByDinas},
		{"create kuota denied", EntityKuota, OpCreate, Denied},
		{"create pengumuman", EntityPengumuman, OpCreate, ByDinas},
		{"delete pengumuman", EntityPengumuman, OpDelete, ByDinas},
		{"create berita", EntityBerita, OpCreate, ByDinas},
		{"user admin denied", EntityUser, OpRead, Denied},
		{"jalur write denied", EntityJalur, OpCreate, Denied},
		{"tahun ajaran write denied", EntityTahunAjaran, OpUpdate, Denied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScopeFor(p, tt.entity, tt.op)
			assert.Equal(t, tt.want, s.Kind)
			if tt.want == ByDinas {
				assert.Equal(t, dinasID, s.DinasID)
			}
		})
	}
}

func TestScopeForAdminSekolah(t *testing.T) {
	sekolahID := uuid.New()
	p := AdminSekolah(uuid.New(), sekolahID)

	tests := []struct {
		name   string
		entity Entity
		op     Operation
		want   Kind
	}{
		{"read own sekolah", EntitySekolah, OpRead, BySekolah},
		{"update sekolah denied", EntitySekolah, OpUpdate, Denied},
		{"read dinas denied", EntityDinas, OpRead, Denied},
		{"read siswa", EntitySiswa, OpRead, BySekolah},
		{"read pendaftaran", EntityPendaftaran, OpRead, BySekolah},
		{"update pendaftaran", EntityPendaftaran, OpUpdate, BySekolah},
		{"delete pendaftaran denied", EntityPendaftaran, OpDelete, Denied},
		{"create kuota", EntityKuota, OpCreate, BySekolah},
		{"delete kuota", EntityKuota, OpDelete, BySekolah},
		{"create pengumuman", EntityPengumuman, OpCreate, BySekolah},
		{"create berita", EntityBerita, OpCreate, BySekolah},
		{"user admin denied", EntityUser, OpRead, Denied},
		{"jalur write denied", EntityJalur, OpDelete, Denied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScopeFor(p, tt.entity, tt.op)
			assert.Equal(t, tt.want, s.Kind)
			if tt.want == BySekolah {
				assert.Equal(t, sekolahID, s.SekolahID)
			}
		})
	}
}

func TestScopeForSiswa(t *testing.T) {
	userID := uuid.New()
	p := Siswa(userID)

	tests := []struct {
		name   string
		entity Entity
		op     Operation
		want   Kind
	}{
		{"read own profile", EntitySiswa, OpRead, Self},
		{"create own profile", EntitySiswa, OpCreate, Self},
		{"update own profile", EntitySiswa, OpUpdate, Self},
		{"delete profile denied", EntitySiswa, OpDelete, Denied},
		{"read own pendaftaran", EntityPendaftaran, OpRead, Self},
		{"create pendaftaran", EntityPendaftaran, OpCreate, Self},
		{"update pendaftaran denied", EntityPendaftaran, OpUpdate, Denied},
		{"read sekolah denied", EntitySekolah, OpRead, Denied},
		{"read dinas denied", EntityDinas, OpRead, Denied},
		{"read kuota denied", EntityKuota, OpRead, Denied},
		{"pengumuman write denied", EntityPengumuman, OpCreate, Denied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScopeFor(p, tt.entity, tt.op)
			assert.Equal(t, tt.want, s.Kind)
			if tt.want == Self {
				assert.Equal(t, userID, s.UserID)
			}
		})
	}
}

func TestScopeForMissingAnchorDenied(t *testing.T) {
	// A tenant admin without its anchor must never see anything.
	dinasAdmin := Principal{UserID: uuid.New(), Role: entity.RoleAdminDinas}
	sekolahAdmin := Principal{UserID: uuid.New(), Role: entity.RoleAdminSekolah}

	for _, e := range allEntities {
		for _, op := range allOps {
			assert.True(t, ScopeFor(dinasAdmin, e, op).IsDenied(), "admin_dinas %s op %d", e, op)
			assert.True(t, ScopeFor(sekolahAdmin, e, op).IsDenied(), "admin_sekolah %s op %d", e, op)
		}
	}
}

func TestScopeForUnknownRoleDenied(t *testing.T) {
	p := Principal{UserID: uuid.New(), Role: entity.Role("operator")}

	for _, e := range allEntities {
		for _, op := range allOps {
			assert.True(t, ScopeFor(p, e, op).IsDenied())
		}
	}
}

func TestScopeForOnlySuperAdminUnrestricted(t *testing.T) {
	dinasID := uuid.New()
	sekolahID := uuid.New()
	principals := []Principal{
		AdminDinas(uuid.New(), dinasID),
		AdminSekolah(uuid.New(), sekolahID),
		Siswa(uuid.New()),
		{UserID: uuid.New(), Role: entity.Role("operator")},
	}

	for _, p := range principals {
		for _, e := range allEntities {
			for _, op := range allOps {
				s := ScopeFor(p, e, op)
				assert.NotEqual(t, Unrestricted, s.Kind, "role %s entity %s op %d", p.Role, e, op)
			}
		}
	}
}
