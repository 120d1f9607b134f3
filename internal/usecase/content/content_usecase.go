package content

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
	"github.com/dikdasmen/spmb-backend/internal/domain/repository"
	apperrors "github.com/dikdasmen/spmb-backend/pkg/errors"
)

// UseCase defines the content use case: pengumuman and berita. Admin writes
// are tenant-stamped from the caller's scope; the ListPublished* and
// GetBeritaBySlug reads are public.
type UseCase interface {
	CreatePengumuman(ctx context.Context, p access.Principal, input *PengumumanInput) (*entity.Pengumuman, error)
	GetPengumuman(ctx context.Context, p access.Principal, id uuid.UUID) (*entity.Pengumuman, error)
	ListPengumuman(ctx context.Context, p access.Principal, skip, limit int) ([]*entity.Pengumuman, error)
	ListPublishedPengumuman(ctx context.Context, skip, limit int) ([]*entity.Pengumuman, error)
	UpdatePengumuman(ctx context.Context, p access.Principal, id uuid.UUID, input *PengumumanUpdateInput) (*entity.Pengumuman, error)
	DeletePengumuman(ctx context.Context, p access.Principal, id uuid.UUID) error

	CreateBerita(ctx context.Context, p access.Principal, input *BeritaInput) (*entity.Berita, error)
	GetBerita(ctx context.Context, p access.Principal, id uuid.UUID) (*entity.Berita, error)
	GetBeritaBySlug(ctx context.Context, slug string) (*entity.Berita, error)
	ListBerita(ctx context.Context, p access.Principal, skip, limit int) ([]*entity.Berita, error)
	ListPublishedBerita(ctx context.Context, skip, limit int) ([]*entity.Berita, error)
	UpdateBerita(ctx context.Context, p access.Principal, id uuid.UUID, input *BeritaUpdateInput) (*entity.Berita, error)
	DeleteBerita(ctx context.Context, p access.Principal, id uuid.UUID) error
}

// PengumumanInput represents announcement creation input
type PengumumanInput struct {
	Judul       string `json:"judul" validate:"required,min=3,max=255"`
	Isi         string `json:"isi" validate:"required"`
	Tipe        string `json:"tipe" validate:"omitempty,oneof=info warning urgent"`
	IsPublished bool   `json:"is_published"`
}

// PengumumanUpdateInput represents announcement update input
type PengumumanUpdateInput struct {
	Judul       *string `json:"judul"`
	Isi         *string `json:"isi"`
	Tipe        *string `json:"tipe" validate:"omitempty,oneof=info warning urgent"`
	IsPublished *bool   `json:"is_published"`
}

// BeritaInput represents news creation input
type BeritaInput struct {
	Judul       string `json:"judul" validate:"required,min=3,max=255"`
	Ringkasan   string `json:"ringkasan"`
	Isi         string `json:"isi" validate:"required"`
	Gambar      string `json:"gambar"`
	IsPublished bool   `json:"is_published"`
}

// BeritaUpdateInput represents news update input
type BeritaUpdateInput struct {
	Judul       *string `json:"judul"`
	Ringkasan   *string `json:"ringkasan"`
	Isi         *string `json:"isi"`
	Gambar      *string `json:"gambar"`
	IsPublished *bool   `json:"is_published"`
}

var validate = validator.New()

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// slugify derives a URL slug from a title, suffixed with a short random token
// so two articles with the same title never collide.
func slugify(judul string) string {
	s := slugPattern.ReplaceAllString(strings.ToLower(judul), "-")
	s = strings.Trim(s, "-")
	return s + "-" + uuid.New().String()[:8]
}

type contentUseCase struct {
	pengumumanRepo repository.PengumumanRepository
	beritaRepo     repository.BeritaRepository
}

// NewUseCase creates a new content use case
func NewUseCase(
	pengumumanRepo repository.PengumumanRepository,
	beritaRepo repository.BeritaRepository,
) UseCase {
	return &contentUseCase{
		pengumumanRepo: pengumumanRepo,
		beritaRepo:     beritaRepo,
	}
}

// tenantAnchors resolves the dinas/sekolah columns stamped onto new content
// rows from the caller's scope.
func tenantAnchors(scope access.Scope) (*uuid.UUID, *uuid.UUID) {
	switch scope.Kind {
	case access.ByDinas:
		dinasID := scope.DinasID
		return &dinasID, nil
	case access.BySekolah:
		sekolahID := scope.SekolahID
		return nil, &sekolahID
	}
	return nil, nil
}

func (u *contentUseCase) CreatePengumuman(ctx context.Context, p access.Principal, input *PengumumanInput) (*entity.Pengumuman, error) {
	scope := access.ScopeFor(p, access.EntityPengumuman, access.OpCreate)
	if scope.IsDenied() {
		return nil, apperrors.ForbiddenError("pengumuman creation not permitted")
	}
	if err := validate.Struct(input); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	dinasID, sekolahID := tenantAnchors(scope)
	tipe := input.Tipe
	if tipe == "" {
		tipe = entity.TipeInfo
	}

	pengumuman := &entity.Pengumuman{
		ID:          uuid.New(),
		DinasID:     dinasID,
		SekolahID:   sekolahID,
		Judul:       input.Judul,
		Isi:         input.Isi,
		Tipe:        tipe,
		IsPublished: input.IsPublished,
		CreatedBy:   p.UserID,
	}
	if input.IsPublished {
		pengumuman.PublishedAt = time.Now()
	}

	if err := u.pengumumanRepo.Create(ctx, pengumuman); err != nil {
		return nil, apperrors.InternalError("failed to create pengumuman", err)
	}
	return pengumuman, nil
}

func (u *contentUseCase) GetPengumuman(ctx context.Context, p access.Principal, id uuid.UUID) (*entity.Pengumuman, error) {
	scope := access.ScopeFor(p, access.EntityPengumuman, access.OpRead)
	if scope.IsDenied() {
		return nil, apperrors.ForbiddenError("pengumuman read not permitted")
	}

	pengumuman, err := u.pengumumanRepo.Get(ctx, id, scope)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("pengumuman")
		}
		return nil, apperrors.InternalError("failed to get pengumuman", err)
	}
	return pengumuman, nil
}

func (u *contentUseCase) ListPengumuman(ctx context.Context, p access.Principal, skip, limit int) ([]*entity.Pengumuman, error) {
	scope := access.ScopeFor(p, access.EntityPengumuman, access.OpRead)
	if scope.IsDenied() {
		return nil, apperrors.ForbiddenError("pengumuman read not permitted")
	}

	list, err := u.pengumumanRepo.List(ctx, scope, skip, limit)
	if err != nil {
		return nil, apperrors.InternalError("failed to list pengumuman", err)
	}
	return list, nil
}

func (u *contentUseCase) ListPublishedPengumuman(ctx context.Context, skip, limit int) ([]*entity.Pengumuman, error) {
	list, err := u.pengumumanRepo.ListPublished(ctx, skip, limit)
	if err != nil {
		return nil, apperrors.InternalError("failed to list pengumuman", err)
	}
	return list, nil
}

func (u *contentUseCase) UpdatePengumuman(ctx context.Context, p access.Principal, id uuid.UUID, input *PengumumanUpdateInput) (*entity.Pengumuman, error) {
	scope := access.ScopeFor(p, access.EntityPengumuman, access.OpUpdate)
	if scope.IsDenied() {
		return nil, apperrors.ForbiddenError("pengumuman update not permitted")
	}
	if err := validate.Struct(input); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	pengumuman, err := u.pengumumanRepo.Get(ctx, id, scope)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("pengumuman")
		}
		return nil, apperrors.InternalError("failed to get pengumuman", err)
	}

	if input.Judul != nil {
		pengumuman.Judul = *input.Judul
	}
	if input.Isi != nil {
		pengumuman.Isi = *input.Isi
	}
	if input.Tipe != nil {
		pengumuman.Tipe = *input.Tipe
	}
	if input.IsPublished != nil {
		if *input.IsPublished && !pengumuman.IsPublished {
			pengumuman.PublishedAt = time.Now()
		}
		pengumuman.IsPublished = *input.IsPublished
	}

	if err := u.pengumumanRepo.Update(ctx, pengumuman); err != nil {
		return nil, apperrors.InternalError("failed to update pengumuman", err)
	}
	return pengumuman, nil
}

func (u *contentUseCase) DeletePengumuman(ctx context.Context, p access.Principal, id uuid.UUID) error {
	scope := access.ScopeFor(p, access.EntityPengumuman, access.OpDelete)
	if scope.IsDenied() {
		return apperrors.ForbiddenError("pengumuman deletion not permitted")
	}

	if _, err := u.pengumumanRepo.Get(ctx, id, scope); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NotFoundError("pengumuman")
		}
		return apperrors.InternalError("failed to get pengumuman", err)
	}

	if err := u.pengumumanRepo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NotFoundError("pengumuman")
		}
		return apperrors.InternalError("failed to delete pengumuman", err)
	}
	return nil
}

func (u *contentUseCase) CreateBerita(ctx context.Context, p access.Principal, input *BeritaInput) (*entity.Berita, error) {
	scope := access.ScopeFor(p, access.EntityBerita, access.OpCreate)
	if scope.IsDenied() {
		return nil, apperrors.ForbiddenError("berita creation not permitted")
	}
	if err := validate.Struct(input); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	dinasID, sekolahID := tenantAnchors(scope)

	berita := &entity.Berita{
		ID:          uuid.New(),
		DinasID:     dinasID,
		SekolahID:   sekolahID,
		Judul:       input.Judul,
		Slug:        slugify(input.Judul),
		Ringkasan:   input.Ringkasan,
		Isi:         input.Isi,
		Gambar:      input.Gambar,
		IsPublished: input.IsPublished,
		CreatedBy:   p.UserID,
	}
	if input.IsPublished {
		berita.PublishedAt = time.Now()
	}

	if err := u.beritaRepo.Create(ctx, berita); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, apperrors.AlreadyExistsError("slug")
		}
		return nil, apperrors.InternalError("failed to create berita", err)
	}
	return berita, nil
}

func (u *contentUseCase) GetBerita(ctx context.Context, p access.Principal, id uuid.UUID) (*entity.Berita, error) {
	scope := access.ScopeFor(p, access.EntityBerita, access.OpRead)
	if scope.IsDenied() {
		return nil, apperrors.ForbiddenError("berita read not permitted")
	}

	berita, err := u.beritaRepo.Get(ctx, id, scope)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("berita")
		}
		return nil, apperrors.InternalError("failed to get berita", err)
	}
	return berita, nil
}

func (u *contentUseCase) GetBeritaBySlug(ctx context.Context, slug string) (*entity.Berita, error) {
	berita, err := u.beritaRepo.GetBySlug(ctx, slug)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("berita")
		}
		return nil, apperrors.InternalError("failed to get berita", err)
	}
	return berita, nil
}

func (u *contentUseCase) ListBerita(ctx context.Context, p access.Principal, skip, limit int) ([]*entity.Berita, error) {
	scope := access.ScopeFor(p, access.EntityBerita, access.OpRead)
	if scope.IsDenied() {
		return nil, apperrors.ForbiddenError("berita read not permitted")
	}

	list, err := u.beritaRepo.List(ctx, scope, skip, limit)
	if err != nil {
		return nil, apperrors.InternalError("failed to list berita", err)
	}
	return list, nil
}

func (u *contentUseCase) ListPublishedBerita(ctx context.Context, skip, limit int) ([]*entity.Berita, error) {
	list, err := u.beritaRepo.ListPublished(ctx, skip, limit)
	if err != nil {
		return nil, apperrors.InternalError("failed to list berita", err)
	}
	return list, nil
}

func (u *contentUseCase) UpdateBerita(ctx context.Context, p access.Principal, id uuid.UUID, input *BeritaUpdateInput) (*entity.Berita, error) {
	scope := access.ScopeFor(p, access.EntityBerita, access.OpUpdate)
	if scope.IsDenied() {
		return nil, apperrors.ForbiddenError("berita update not permitted")
	}
	if err := validate.Struct(input); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	berita, err := u.beritaRepo.Get(ctx, id, scope)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("berita")
		}
		return nil, apperrors.InternalError("failed to get berita", err)
	}

	if input.Judul != nil {
		berita.Judul = *input.Judul
	}
	if input.Ringkasan != nil {
		berita.Ringkasan = *input.Ringkasan
	}
	if input.Isi != nil {
		berita.Isi = *input.Isi
	}
	if input.Gambar != nil {
		berita.Gambar = *input.Gambar
	}
	if input.IsPublished != nil {
		if *input.IsPublished && !berita.IsPublished {
			berita.PublishedAt = time.Now()
		}
		berita.IsPublished = *input.IsPublished
	}

	if err := u.beritaRepo.Update(ctx, berita); err != nil {
		return nil, apperrors.InternalError("failed to update berita", err)
	}
	return berita, nil
}

func (u *contentUseCase) DeleteBerita(ctx context.Context, p access.Principal, id uuid.UUID) error {
	scope := access.ScopeFor(p, access.EntityBerita, access.OpDelete)
	if scope.IsDenied() {
		return apperrors.ForbiddenError("berita deletion not permitted")
	}

	if _, err := u.beritaRepo.Get(ctx, id, scope); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NotFoundError("berita")
		}
		return apperrors.InternalError("failed to get berita", err)
	}

	if err := u.beritaRepo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NotFoundError("berita")
		}
		return apperrors.InternalError("failed to delete berita", err)
	}
	return nil
}
