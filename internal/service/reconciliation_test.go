package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dangerclosesec/ukmhub/internal/domain"
	"github.com/dangerclosesec/ukmhub/internal/mocks"
	"github.com/dangerclosesec/ukmhub/internal/model"
	"github.com/dangerclosesec/ukmhub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReconcileMemberFlags(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	page1 := []model.UKM{
		{ID: 1, TerdaftarAnggota: true},
		{ID: 2, TerdaftarAnggota: false},
	}
	page2 := []model.UKM{
		{ID: 3, TerdaftarAnggota: true},
	}

	setup := func(t *testing.T, cache *service.CacheService) (*service.ReconciliationService, *mocks.MockUKMRepositoryIface, *mocks.MockAnggotaRepositoryIface) {
		ctrl := gomock.NewController(t)
		ukmRepo := mocks.NewMockUKMRepositoryIface(ctrl)
		anggotaRepo := mocks.NewMockAnggotaRepositoryIface(ctrl)

		ukmRepo.EXPECT().FindAllPaginated(gomock.Any(), 0, 2).Return(page1, int64(3), nil)
		ukmRepo.EXPECT().FindAllPaginated(gomock.Any(), 2, 2).Return(page2, int64(3), nil)
		anggotaRepo.EXPECT().Count(gomock.Any(), int64(1)).Return(int64(4), nil)
		anggotaRepo.EXPECT().Count(gomock.Any(), int64(2)).Return(int64(1), nil)
		anggotaRepo.EXPECT().Count(gomock.Any(), int64(3)).Return(int64(0), nil)

		svc := service.NewReconciliationService(ukmRepo, anggotaRepo, cache, time.Hour, logger)
		svc.SetBatchSize(2)
		return svc, ukmRepo, anggotaRepo
	}

	t.Run("fixes drifted flags", func(t *testing.T) {
		cache := newCache(t)
		svc, ukmRepo, _ := setup(t, cache)
		require.NoError(t, cache.Set(ctx, "ukm:list", []string{"stale"}))
		require.NoError(t, cache.Set(ctx, "ukm:1", "stale"))

		ukmRepo.EXPECT().SetMemberFlag(gomock.Any(), int64(2), true).Return(nil)
		ukmRepo.EXPECT().SetMemberFlag(gomock.Any(), int64(3), false).Return(nil)

		result, err := svc.ReconcileMemberFlags(ctx)
		require.NoError(t, err)
		assert.Equal(t, service.ReconcileResult{Checked: 3, Drifted: 2, Fixed: 2}, result)

		var cached interface{}
		assert.ErrorIs(t, cache.Get(ctx, "ukm:list", &cached), domain.ErrNotFound)
		assert.ErrorIs(t, cache.Get(ctx, "ukm:1", &cached), domain.ErrNotFound)
	})

	t.Run("dry run changes nothing", func(t *testing.T) {
		cache := newCache(t)
		svc, _, _ := setup(t, cache)
		svc.SetDryRun(true)
		require.NoError(t, cache.Set(ctx, "ukm:list", []string{"kept"}))

		result, err := svc.ReconcileMemberFlags(ctx)
		require.NoError(t, err)
		assert.Equal(t, service.ReconcileResult{Checked: 3, Drifted: 2}, result)

		var cached []string
		require.NoError(t, cache.Get(ctx, "ukm:list", &cached))
		assert.Equal(t, []string{"kept"}, cached)
	})
}

func TestReconciliationStopWithoutStart(t *testing.T) {
	svc := service.NewReconciliationService(nil, nil, nil, time.Hour, nil)

	done := make(chan struct{})
	go func() {
		svc.Stop()
		svc.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked")
	}
}
