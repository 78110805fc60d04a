package service_test

import (
	"context"
	"testing"

	"github.com/dangerclosesec/ukmhub/internal/audit"
	"github.com/dangerclosesec/ukmhub/internal/auth"
	"github.com/dangerclosesec/ukmhub/internal/domain"
	"github.com/dangerclosesec/ukmhub/internal/mocks"
	"github.com/dangerclosesec/ukmhub/internal/model"
	"github.com/dangerclosesec/ukmhub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newKomentarService(t *testing.T) (*service.KomentarService, *mocks.MockKomentarRepositoryIface, *mocks.MockUKMRepositoryIface) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockKomentarRepositoryIface(ctrl)
	ukmRepo := mocks.NewMockUKMRepositoryIface(ctrl)
	svc := service.NewKomentarService(inlineTx(ctrl), repo, ukmRepo, newCache(t), &audit.NoOpLogger{})
	return svc, repo, ukmRepo
}

func TestKomentarCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("exactly ten characters after trimming", func(t *testing.T) {
		svc, repo, ukmRepo := newKomentarService(t)

		ukmRepo.EXPECT().Exists(gomock.Any(), int64(5)).Return(true, nil)
		repo.EXPECT().HasActive(gomock.Any(), int64(5), int64(42)).Return(false, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		k, err := svc.Create(ctx, member, 5, service.KomentarInput{Komentar: "   0123456789   "})
		require.NoError(t, err)
		assert.Equal(t, "0123456789", k.Komentar)
		assert.Equal(t, model.DefaultRating, k.Rating)
		assert.True(t, k.IsActive)
		assert.Equal(t, int64(42), k.UserID)
	})

	t.Run("too short after trimming", func(t *testing.T) {
		svc, _, _ := newKomentarService(t)

		_, err := svc.Create(ctx, member, 5, service.KomentarInput{Komentar: "  012345678  "})
		assert.ErrorIs(t, err, domain.ErrKomentarTooShort)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rating out of range", func(t *testing.T) {
		svc, _, _ := newKomentarService(t)

		for _, rating := range []int{-1, 6} {
			_, err := svc.Create(ctx, member, 5, service.KomentarInput{Komentar: "Seru sekali kegiatannya", Rating: ptr(rating)})
			assert.ErrorIs(t, err, domain.ErrInvalidRating)
		}
	})

	t.Run("explicit rating is kept", func(t *testing.T) {
		svc, repo, ukmRepo := newKomentarService(t)

		ukmRepo.EXPECT().Exists(gomock.Any(), int64(5)).Return(true, nil)
		repo.EXPECT().HasActive(gomock.Any(), int64(5), int64(42)).Return(false, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		k, err := svc.Create(ctx, member, 5, service.KomentarInput{Komentar: "Seru sekali kegiatannya", Rating: ptr(3)})
		require.NoError(t, err)
		assert.Equal(t, 3, k.Rating)
	})

	t.Run("one active comment per ukm", func(t *testing.T) {
		svc, repo, ukmRepo := newKomentarService(t)

		ukmRepo.EXPECT().Exists(gomock.Any(), int64(5)).Return(true, nil)
		repo.EXPECT().HasActive(gomock.Any(), int64(5), int64(42)).Return(true, nil)

		_, err := svc.Create(ctx, member, 5, service.KomentarInput{Komentar: "Seru sekali kegiatannya"})
		assert.ErrorIs(t, err, domain.ErrAlreadyCommented)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("unknown ukm", func(t *testing.T) {
		svc, _, ukmRepo := newKomentarService(t)

		ukmRepo.EXPECT().Exists(gomock.Any(), int64(99)).Return(false, nil)

		_, err := svc.Create(ctx, member, 99, service.KomentarInput{Komentar: "Seru sekali kegiatannya"})
		assert.ErrorIs(t, err, domain.ErrUKMNotFound)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		svc, _, _ := newKomentarService(t)

		_, err := svc.Create(ctx, auth.Identity{}, 5, service.KomentarInput{Komentar: "Seru sekali kegiatannya"})
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}

func TestKomentarUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("owner edits", func(t *testing.T) {
		svc, repo, _ := newKomentarService(t)

		repo.EXPECT().
			UpdateOwned(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, k *model.Komentar) error {
				assert.Equal(t, int64(9), k.ID)
				assert.Equal(t, int64(42), k.UserID)
				assert.Equal(t, 5, k.Rating)
				k.UKMID = 5
				return nil
			})

		k, err := svc.Update(ctx, member, 9, service.KomentarInput{Komentar: "Sudah diperbaiki ya"})
		require.NoError(t, err)
		assert.Equal(t, "Sudah diperbaiki ya", k.Komentar)
	})

	t.Run("someone else's comment", func(t *testing.T) {
		svc, repo, _ := newKomentarService(t)

		repo.EXPECT().UpdateOwned(gomock.Any(), gomock.Any()).Return(domain.ErrKomentarNotOwned)

		_, err := svc.Update(ctx, member, 9, service.KomentarInput{Komentar: "Sudah diperbaiki ya"})
		assert.ErrorIs(t, err, domain.ErrKomentarNotOwned)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("validation runs before lookup", func(t *testing.T) {
		svc, _, _ := newKomentarService(t)

		_, err := svc.Update(ctx, member, 9, service.KomentarInput{Komentar: "pendek"})
		assert.ErrorIs(t, err, domain.ErrKomentarTooShort)
	})
}

func TestKomentarDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		svc, repo, _ := newKomentarService(t)

		repo.EXPECT().Deactivate(gomock.Any(), int64(9), int64(42), false).Return(&model.Komentar{ID: 9, UKMID: 5, UserID: 42}, nil)

		require.NoError(t, svc.Delete(ctx, member, 9))
	})

	t.Run("admin deletes any comment", func(t *testing.T) {
		svc, repo, _ := newKomentarService(t)

		repo.EXPECT().Deactivate(gomock.Any(), int64(9), int64(1), true).Return(&model.Komentar{ID: 9, UKMID: 5, UserID: 42}, nil)

		require.NoError(t, svc.Delete(ctx, admin, 9))
	})

	t.Run("non-owner sees not found", func(t *testing.T) {
		svc, repo, _ := newKomentarService(t)

		repo.EXPECT().Deactivate(gomock.Any(), int64(9), int64(42), false).Return(nil, domain.ErrKomentarNotFound)

		err := svc.Delete(ctx, member, 9)
		assert.ErrorIs(t, err, domain.ErrKomentarNotFound)
	})
}

func TestKomentarRecreateAfterDelete(t *testing.T) {
	ctx := context.Background()
	svc, repo, ukmRepo := newKomentarService(t)

	// Rows behave like komentar_ukm: HasActive only sees is_active rows.
	var rows []*model.Komentar
	ukmRepo.EXPECT().Exists(gomock.Any(), int64(5)).Return(true, nil).AnyTimes()
	repo.EXPECT().
		HasActive(gomock.Any(), int64(5), int64(42)).
		DoAndReturn(func(_ context.Context, ukmID, userID int64) (bool, error) {
			for _, k := range rows {
				if k.UKMID == ukmID && k.UserID == userID && k.IsActive {
					return true, nil
				}
			}
			return false, nil
		}).
		AnyTimes()
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, k *model.Komentar) error {
			k.ID = int64(len(rows) + 1)
			rows = append(rows, k)
			return nil
		}).
		AnyTimes()
	repo.EXPECT().
		Deactivate(gomock.Any(), gomock.Any(), int64(42), false).
		DoAndReturn(func(_ context.Context, id, userID int64, _ bool) (*model.Komentar, error) {
			for _, k := range rows {
				if k.ID == id && k.UserID == userID && k.IsActive {
					k.IsActive = false
					return k, nil
				}
			}
			return nil, domain.ErrKomentarNotFound
		})

	first, err := svc.Create(ctx, member, 5, service.KomentarInput{Komentar: "Komentar pertama saya"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, member, 5, service.KomentarInput{Komentar: "Komentar kedua saya"})
	require.ErrorIs(t, err, domain.ErrAlreadyCommented)

	require.NoError(t, svc.Delete(ctx, member, first.ID))

	again, err := svc.Create(ctx, member, 5, service.KomentarInput{Komentar: "Komentar baru setelah hapus"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, again.ID)
	assert.True(t, again.IsActive)
	assert.False(t, first.IsActive)
}
