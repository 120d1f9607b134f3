package access

import (
	"github.com/google/uuid"

	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
	apperrors "github.com/dikdasmen/spmb-backend/pkg/errors"
)

// Principal is the resolved identity of an authenticated caller: its role and
// the tenant anchors that role carries. Construct it through the per-role
// constructors or FromUser so the role/anchor invariant always holds.
type Principal struct {
	UserID    uuid.UUID
	Role      entity.Role
	DinasID   *uuid.UUID
	SekolahID *uuid.UUID
}

// SuperAdmin returns a principal for the super_admin role
func SuperAdmin(userID uuid.UUID) Principal {
	return Principal{UserID: userID, Role: entity.RoleSuperAdmin}
}

// AdminDinas returns a principal anchored to a district
func AdminDinas(userID, dinasID uuid.UUID) Principal {
	return Principal{UserID: userID, Role: entity.RoleAdminDinas, DinasID: &dinasID}
}

// AdminSekolah returns a principal anchored to a school
func AdminSekolah(userID, sekolahID uuid.UUID) Principal {
	return Principal{UserID: userID, Role: entity.RoleAdminSekolah, SekolahID: &sekolahID}
}

// Siswa returns a principal for a student account
func Siswa(userID uuid.UUID) Principal {
	return Principal{UserID: userID, Role: entity.RoleSiswa}
}

// FromUser builds a principal from a user row, validating that the populated
// tenant anchor matches the role: dinas_id only for admin_dinas, sekolah_id
// only for admin_sekolah, neither for super_admin and siswa.
func FromUser(u *entity.User) (Principal, error) {
	if !u.Role.IsValid() {
		return Principal{}, apperrors.ForbiddenError("unknown role")
	}

	switch u.Role {
	case entity.RoleAdminDinas:
		if u.DinasID == nil || u.SekolahID != nil {
			return Principal{}, apperrors.ForbiddenError("admin_dinas account is not linked to exactly one dinas")
		}
		return AdminDinas(u.ID, *u.DinasID), nil
	case entity.RoleAdminSekolah:
		if u.SekolahID == nil || u.DinasID != nil {
			return Principal{}, apperrors.ForbiddenError("admin_sekolah account is not linked to exactly one sekolah")
		}
		return AdminSekolah(u.ID, *u.SekolahID), nil
	case entity.RoleSuperAdmin, entity.RoleSiswa:
		if u.DinasID != nil || u.SekolahID != nil {
			return Principal{}, apperrors.ForbiddenError("role does not allow tenant anchors")
		}
		if u.Role == entity.RoleSuperAdmin {
			return SuperAdmin(u.ID), nil
		}
		return Siswa(u.ID), nil
	}
	return Principal{}, apperrors.ForbiddenError("unknown role")
}
