package stats

import (
	"context"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
	"github.com/dikdasmen/spmb-backend/internal/domain/repository"
	apperrors "github.com/dikdasmen/spmb-backend/pkg/errors"
)

// UseCase defines the dashboard statistics use case
type UseCase interface {
	Summary(ctx context.Context, p access.Principal) (*Summary, error)
}

// Summary is the role-shaped dashboard payload. Which fields are populated
// depends on the caller: super_admin sees platform-wide totals, tenant admins
// see totals bounded to their scope, siswa sees only its own applications.
type Summary struct {
	TotalDinas       *int64           `json:"total_dinas,omitempty"`
	TotalSekolah     *int64           `json:"total_sekolah,omitempty"`
	TotalSiswa       *int64           `json:"total_siswa,omitempty"`
	TotalPendaftaran *int64           `json:"total_pendaftaran,omitempty"`
	UsersByRole      map[string]int64 `json:"users_by_role,omitempty"`
}

type statsUseCase struct {
	userRepo        repository.UserRepository
	dinasRepo       repository.DinasRepository
	sekolahRepo     repository.SekolahRepository
	siswaRepo       repository.SiswaRepository
	pendaftaranRepo repository.PendaftaranRepository
}

// NewUseCase creates a new stats use case
func NewUseCase(
	userRepo repository.UserRepository,
	dinasRepo repository.DinasRepository,
	sekolahRepo repository.SekolahRepository,
	siswaRepo repository.SiswaRepository,
	pendaftaranRepo repository.PendaftaranRepository,
) UseCase {
	return &statsUseCase{
		userRepo:        userRepo,
		dinasRepo:       dinasRepo,
		sekolahRepo:     sekolahRepo,
		siswaRepo:       siswaRepo,
		pendaftaranRepo: pendaftaranRepo,
	}
}

func (u *statsUseCase) Summary(ctx context.Context, p access.Principal) (*Summary, error) {
	summary := &Summary{}

	pendaftaranScope := access.ScopeFor(p, access.EntityPendaftaran, access.OpRead)
	if !pendaftaranScope.IsDenied() {
		total, err := u.pendaftaranRepo.Count(ctx, pendaftaranScope)
		if err != nil {
			return nil, apperrors.InternalError("failed to count pendaftaran", err)
		}
		summary.TotalPendaftaran = &total
	}

	siswaScope := access.ScopeFor(p, access.EntitySiswa, access.OpRead)
	if !siswaScope.IsDenied() && p.Role != entity.RoleSiswa {
		total, err := u.siswaRepo.Count(ctx, siswaScope)
		if err != nil {
			return nil, apperrors.InternalError("failed to count siswa", err)
		}
		summary.TotalSiswa = &total
	}

	sekolahScope := access.ScopeFor(p, access.EntitySekolah, access.OpRead)
	if !sekolahScope.IsDenied() && p.Role != entity.RoleSiswa {
		total, err := u.sekolahRepo.Count(ctx, sekolahScope)
		if err != nil {
			return nil, apperrors.InternalError("failed to count sekolah", err)
		}
		summary.TotalSekolah = &total
	}

	if p.Role == entity.RoleSuperAdmin {
		totalDinas, err := u.dinasRepo.Count(ctx)
		if err != nil {
			return nil, apperrors.InternalError("failed to count dinas", err)
		}
		summary.TotalDinas = &totalDinas

		byRole := make(map[string]int64, 4)
		for _, role := range []entity.Role{
			entity.RoleSuperAdmin,
			entity.RoleAdminDinas,
			entity.RoleAdminSekolah,
			entity.RoleSiswa,
		} {
			count, err := u.userRepo.CountByRole(ctx, role)
			if err != nil {
				return nil, apperrors.InternalError("failed to count users", err)
			}
			byRole[string(role)] = count
		}
		summary.UsersByRole = byRole
	}

	return summary, nil
}
