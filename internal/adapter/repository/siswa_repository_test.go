package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dikdasmen/spmb-backend/internal/domain/access"
	apperrors "github.com/dikdasmen/spmb-backend/pkg/errors"
)

func TestSiswaRepositoryScopeVisibility(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewSiswaRepository(db)

	dinasA := seedDinas(t, db, "Dinas Sleman")
	dinasB := seedDinas(t, db, "Dinas Bantul")
	sekolahA := seedSekolah(t, db, dinasA.ID, "SMPN 1 Mlati")
	sekolahB := seedSekolah(t, db, dinasB.ID, "SMPN 2 Sewon")

	user1, user2, user3 := uuid.New(), uuid.New(), uuid.New()
	siswa1 := seedSiswa(t, db, user1, "Andi Pratama")
	siswa2 := seedSiswa(t, db, user2, "Budi Setiawan")
	siswa3 := seedSiswa(t, db, user3, "Citra Dewi")

	seedPendaftaran(t, db, siswa1.ID, sekolahA.ID)
	seedPendaftaran(t, db, siswa2.ID, sekolahB.ID)
	// siswa3 has no application and is reachable only by itself.

	t.Run("unrestricted sees all", func(t *testing.T) {
		list, err := repo.List(ctx, unrestricted(), 0, 100)
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("dinas scope follows applications", func(t *testing.T) {
		scope := access.Scope{Kind: access.ByDinas, DinasID: dinasA.ID}

		list, err := repo.List(ctx, scope, 0, 100)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, siswa1.ID, list[0].ID)

		count, err := repo.Count(ctx, scope)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		_, err = repo.Get(ctx, siswa2.ID, scope)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("student without application invisible to tenants", func(t *testing.T) {
		for _, scope := range []access.Scope{
			{Kind: access.ByDinas, DinasID: dinasA.ID},
			{Kind: access.BySekolah, SekolahID: sekolahA.ID},
		} {
			_, err := repo.Get(ctx, siswa3.ID, scope)
			assert.ErrorIs(t, err, apperrors.ErrNotFound)
		}
	})

	t.Run("sekolah scope sees own applicants only", func(t *testing.T) {
		scope := access.Scope{Kind: access.BySekolah, SekolahID: sekolahB.ID}

		list, err := repo.List(ctx, scope, 0, 100)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, siswa2.ID, list[0].ID)
	})

	t.Run("self scope sees own row only", func(t *testing.T) {
		scope := access.Scope{Kind: access.Self, UserID: user3}

		got, err := repo.Get(ctx, siswa3.ID, scope)
		require.NoError(t, err)
		assert.Equal(t, "Citra Dewi", got.NamaLengkap)

		_, err = repo.Get(ctx, siswa1.ID, scope)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("denied scope sees nothing", func(t *testing.T) {
		scope := access.Scope{Kind: access.Denied}

		list, err := repo.List(ctx, scope, 0, 100)
		require.NoError(t, err)
		assert.Empty(t, list)

		_, err = repo.Get(ctx, siswa1.ID, scope)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestSiswaRepositoryGetByUserID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewSiswaRepository(db)

	userID := uuid.New()
	siswa := seedSiswa(t, db, userID, "Andi Pratama")

	got, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, siswa.ID, got.ID)

	_, err = repo.GetByUserID(ctx, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSiswaRepositoryDuplicateNISN(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewSiswaRepository(db)

	first := seedSiswa(t, db, uuid.New(), "Andi Pratama")

	dup := *seedSiswa(t, db, uuid.New(), "Budi Setiawan")
	dup.ID = uuid.Nil
	dup.UserID = uuid.New()
	dup.NISN = first.NISN
	dup.NIK = uuid.NewString()[:16]
	err := repo.Create(ctx, &dup)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

func TestSiswaRepositoryDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewSiswaRepository(db)

	siswa := seedSiswa(t, db, uuid.New(), "Andi Pratama")

	require.NoError(t, repo.Delete(ctx, siswa.ID))
	assert.ErrorIs(t, repo.Delete(ctx, siswa.ID), apperrors.ErrNotFound)
}
