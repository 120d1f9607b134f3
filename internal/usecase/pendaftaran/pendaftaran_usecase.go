package pendaftaran

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
	"github.com/dikdasmen/spmb-backend/internal/domain/repository"
	apperrors "github.com/dikdasmen/spmb-backend/pkg/errors"
)

// UseCase defines the pendaftaran use case interface
type UseCase interface {
	Create(ctx context.Context, p access.Principal, input *CreateInput) (*entity.Pendaftaran, error)
	Get(ctx context.Context, p access.Principal, id uuid.UUID) (*entity.Pendaftaran, error)
	List(ctx context.Context, p access.Principal, skip, limit int) ([]*entity.Pendaftaran, int64, error)
	Submit(ctx context.Context, p access.Principal, id uuid.UUID) (*entity.Pendaftaran, error)
	UpdateStatus(ctx context.Context, p access.Principal, id uuid.UUID, input *UpdateStatusInput) (*entity.Pendaftaran, error)
	Delete(ctx context.Context, p access.Principal, id uuid.UUID) error
}

// CreateInput represents application creation input. The siswa row is resolved
// from the caller, never taken from the request.
type CreateInput struct {
	SekolahID      uuid.UUID `json:"sekolah_id" validate:"required"`
	JalurID        uuid.UUID `json:"jalur_id" validate:"required"`
	TahunAjaranID  uuid.UUID `json:"tahun_ajaran_id" validate:"required"`
	JarakKeSekolah *float64  `json:"jarak_ke_sekolah"`
	NilaiRata      *float64  `json:"nilai_rata"`
}

// UpdateStatusInput represents a verification decision on an application
type UpdateStatusInput struct {
	Status       string   `json:"status" validate:"required,oneof=draft submitted verifikasi diterima ditolak"`
	RejectReason string   `json:"reject_reason"`
	SkorZonasi   *float64 `json:"skor_zonasi"`
	SkorPrestasi *float64 `json:"skor_prestasi"`
}

var validate = validator.New()

// registration number retry bound; collisions over a 36^8 space are rare
// enough that three draws always suffice in practice
const maxNoPendaftaranAttempts = 3

const noPendaftaranCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type pendaftaranUseCase struct {
	pendaftaranRepo repository.PendaftaranRepository
	siswaRepo       repository.SiswaRepository
}

// NewUseCase creates a new pendaftaran use case
func NewUseCase(
	pendaftaranRepo repository.PendaftaranRepository,
	siswaRepo repository.SiswaRepository,
) UseCase {
	return &pendaftaranUseCase{
		pendaftaranRepo: pendaftaranRepo,
		siswaRepo:       siswaRepo,
	}
}

// generateNoPendaftaran draws a registration number SPMB-<year>-<8 chars>
func generateNoPendaftaran(now time.Time) (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = noPendaftaranCharset[int(buf[i])%len(noPendaftaranCharset)]
	}
	return fmt.Sprintf("SPMB-%d-%s", now.Year(), buf), nil
}

func (u *pendaftaranUseCase) Create(ctx context.Context, p access.Principal, input *CreateInput) (*entity.Pendaftaran, error) {
	scope := access.ScopeFor(p, access.EntityPendaftaran, access.OpCreate)
	if scope.Kind != access.Self {
		return nil, apperrors.ForbiddenError("only siswa accounts may create applications")
	}
	if err := validate.Struct(input); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	siswa, err := u.siswaRepo.GetByUserID(ctx, p.UserID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("siswa profile")
		}
		return nil, apperrors.InternalError("failed to resolve siswa profile", err)
	}

	pendaftaran := &entity.Pendaftaran{
		SiswaID:        siswa.ID,
		SekolahID:      input.SekolahID,
		JalurID:        input.JalurID,
		TahunAjaranID:  input.TahunAjaranID,
		Status:         entity.StatusDraft,
		JarakKeSekolah: input.JarakKeSekolah,
		NilaiRata:      input.NilaiRata,
	}

	// Retry on registration number collision, bounded.
	for attempt := 0; attempt < maxNoPendaftaranAttempts; attempt++ {
		no, err := generateNoPendaftaran(time.Now())
		if err != nil {
			return nil, apperrors.InternalError("failed to generate registration number", err)
		}
		pendaftaran.ID = uuid.Nil
		pendaftaran.NoPendaftaran = no

		err = u.pendaftaranRepo.Create(ctx, pendaftaran)
		if err == nil {
			return pendaftaran, nil
		}
		if !apperrors.IsAlreadyExists(err) {
			return nil, apperrors.InternalError("failed to create pendaftaran", err)
		}
	}
	return nil, apperrors.InternalError("failed to allocate registration number", apperrors.ErrAlreadyExists)
}

func (u *pendaftaranUseCase) Get(ctx context.Context, p access.Principal, id uuid.UUID) (*entity.Pendaftaran, error) {
	scope := access.ScopeFor(p, access.EntityPendaftaran, access.OpRead)
	if scope.IsDenied() {
		return nil, apperrors.ForbiddenError("pendaftaran read not permitted")
	}

	pendaftaran, err := u.pendaftaranRepo.Get(ctx, id, scope)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("pendaftaran")
		}
		return nil, apperrors.InternalError("failed to get pendaftaran", err)
	}
	return pendaftaran, nil
}

func (u *pendaftaranUseCase) List(ctx context.Context, p access.Principal, skip, limit int) ([]*entity.Pendaftaran, int64, error) {
	scope := access.ScopeFor(p, access.EntityPendaftaran, access.OpRead)
	if scope.IsDenied() {
		return nil, 0, apperrors.ForbiddenError("pendaftaran read not permitted")
	}

	list, err := u.pendaftaranRepo.List(ctx, scope, skip, limit)
	if err != nil {
		return nil, 0, apperrors.InternalError("failed to list pendaftaran", err)
	}
	total, err := u.pendaftaranRepo.Count(ctx, scope)
	if err != nil {
		return nil, 0, apperrors.InternalError("failed to count pendaftaran", err)
	}
	return list, total, nil
}

// Submit moves the caller's own draft application to submitted.
func (u *pendaftaranUseCase) Submit(ctx context.Context, p access.Principal, id uuid.UUID) (*entity.Pendaftaran, error) {
	scope := access.ScopeFor(p, access.EntityPendaftaran, access.OpRead)
	if scope.Kind != access.Self {
		return nil, apperrors.ForbiddenError("only siswa accounts may submit applications")
	}

	pendaftaran, err := u.pendaftaranRepo.Get(ctx, id, scope)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("pendaftaran")
		}
		return nil, apperrors.InternalError("failed to get pendaftaran", err)
	}

	if pendaftaran.Status != entity.StatusDraft {
		return nil, apperrors.ValidationError("only draft applications can be submitted")
	}

	now := time.Now()
	pendaftaran.Status = entity.StatusSubmitted
	pendaftaran.SubmittedAt = &now

	if err := u.pendaftaranRepo.Update(ctx, pendaftaran); err != nil {
		return nil, apperrors.InternalError("failed to submit pendaftaran", err)
	}
	return pendaftaran, nil
}

// UpdateStatus applies a verification decision. The scoped Get means an admin
// can only decide on applications to schools within its tenant.
func (u *pendaftaranUseCase) UpdateStatus(ctx context.Context, p access.Principal, id uuid.UUID, input *UpdateStatusInput) (*entity.Pendaftaran, error) {
	scope := access.ScopeFor(p, access.EntityPendaftaran, access.OpUpdate)
	if scope.IsDenied() {
		return nil, apperrors.ForbiddenError("pendaftaran status update not permitted")
	}
	if err := validate.Struct(input); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	pendaftaran, err := u.pendaftaranRepo.Get(ctx, id, scope)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("pendaftaran")
		}
		return nil, apperrors.InternalError("failed to get pendaftaran", err)
	}

	now := time.Now()
	pendaftaran.Status = input.Status
	pendaftaran.RejectReason = input.RejectReason
	if input.SkorZonasi != nil {
		pendaftaran.SkorZonasi = input.SkorZonasi
	}
	if input.SkorPrestasi != nil {
		pendaftaran.SkorPrestasi = input.SkorPrestasi
	}
	switch input.Status {
	case entity.StatusVerifikasi, entity.StatusDiterima, entity.StatusDitolak:
		pendaftaran.VerifiedAt = &now
		verifier := p.UserID
		pendaftaran.VerifiedBy = &verifier
	}

	if err := u.pendaftaranRepo.Update(ctx, pendaftaran); err != nil {
		return nil, apperrors.InternalError("failed to update pendaftaran", err)
	}
	return pendaftaran, nil
}

func (u *pendaftaranUseCase) Delete(ctx context.Context, p access.Principal, id uuid.UUID) error {
	if access.ScopeFor(p, access.EntityPendaftaran, access.OpDelete).IsDenied() {
		return apperrors.ForbiddenError("pendaftaran deletion requires super_admin")
	}

	if err := u.pendaftaranRepo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NotFoundError("pendaftaran")
		}
		return apperrors.InternalError("failed to delete pendaftaran", err)
	}
	return nil
}
