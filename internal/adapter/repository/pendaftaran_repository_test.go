package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	"github.com/dikdasmen/spmb-backend/internal/domain/entity"
	apperrors "github.com/dikdasmen/spmb-backend/pkg/errors"
)

func TestPendaftaranRepositoryScopeVisibility(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPendaftaranRepository(db)

	dinasA := seedDinas(t, db, "Dinas Sleman")
	dinasB := seedDinas(t, db, "Dinas Bantul")
	sekolahA := seedSekolah(t, db, dinasA.ID, "SMPN 1 Mlati")
	sekolahB := seedSekolah(t, db, dinasB.ID, "SMPN 2 Sewon")

	userA, userB := uuid.New(), uuid.New()
	siswaA := seedSiswa(t, db, userA, "Andi Pratama")
	siswaB := seedSiswa(t, db, userB, "Budi Setiawan")

	pendA := seedPendaftaran(t, db, siswaA.ID, sekolahA.ID)
	pendB := seedPendaftaran(t, db, siswaB.ID, sekolahB.ID)

	t.Run("unrestricted sees all", func(t *testing.T) {
		list, err := repo.List(ctx, unrestricted(), 0, 100)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("dinas scope reaches applications through its schools", func(t *testing.T) {
		scope := access.Scope{Kind: access.ByDinas, DinasID: dinasA.ID}

		list, err := repo.List(ctx, scope, 0, 100)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, pendA.ID, list[0].ID)

		_, err = repo.Get(ctx, pendB.ID, scope)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)

		count, err := repo.Count(ctx, scope)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("sekolah scope sees its applications only", func(t *testing.T) {
		scope := access.Scope{Kind: access.BySekolah, SekolahID: sekolahB.ID}

		got, err := repo.Get(ctx, pendB.ID, scope)
		require.NoError(t, err)
		assert.Equal(t, pendB.NoPendaftaran, got.NoPendaftaran)

		_, err = repo.Get(ctx, pendA.ID, scope)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("self scope resolves through the student profile", func(t *testing.T) {
		scope := access.Scope{Kind: access.Self, UserID: userA}

		list, err := repo.List(ctx, scope, 0, 100)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, pendA.ID, list[0].ID)

		_, err = repo.Get(ctx, pendB.ID, scope)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("denied scope sees nothing", func(t *testing.T) {
		list, err := repo.List(ctx, access.Scope{Kind: access.Denied}, 0, 100)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestPendaftaranRepositoryDuplicateNumber(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPendaftaranRepository(db)

	dinas := seedDinas(t, db, "Dinas Sleman")
	sekolah := seedSekolah(t, db, dinas.ID, "SMPN 1 Mlati")
	siswa := seedSiswa(t, db, uuid.New(), "Andi Pratama")
	pend := seedPendaftaran(t, db, siswa.ID, sekolah.ID)

	dup := &entity.Pendaftaran{
		SiswaID:       siswa.ID,
		SekolahID:     sekolah.ID,
		JalurID:       uuid.New(),
		TahunAjaranID: uuid.New(),
		NoPendaftaran: pend.NoPendaftaran,
		Status:        entity.StatusDraft,
	}
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

func TestPendaftaranRepositoryUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPendaftaranRepository(db)

	dinas := seedDinas(t, db, "Dinas Sleman")
	sekolah := seedSekolah(t, db, dinas.ID, "SMPN 1 Mlati")
	siswa := seedSiswa(t, db, uuid.New(), "Andi Pratama")
	pend := seedPendaftaran(t, db, siswa.ID, sekolah.ID)

	pend.Status = entity.StatusSubmitted
	require.NoError(t, repo.Update(ctx, pend))

	got, err := repo.Get(ctx, pend.ID, unrestricted())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSubmitted, got.Status)

	require.NoError(t, repo.Delete(ctx, pend.ID))
	assert.ErrorIs(t, repo.Delete(ctx, pend.ID), apperrors.ErrNotFound)
}
