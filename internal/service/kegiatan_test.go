package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/ukmhub/internal/audit"
	"github.com/dangerclosesec/ukmhub/internal/domain"
	"github.com/dangerclosesec/ukmhub/internal/mocks"
	"github.com/dangerclosesec/ukmhub/internal/model"
	"github.com/dangerclosesec/ukmhub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestKegiatanService(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*service.KegiatanService, *mocks.MockUKMRepositoryIface, *mocks.MockKegiatanRepositoryIface) {
		ctrl := gomock.NewController(t)
		ukmRepo := mocks.NewMockUKMRepositoryIface(ctrl)
		repo := mocks.NewMockKegiatanRepositoryIface(ctrl)
		return service.NewKegiatanService(ukmRepo, repo, newCache(t), &audit.NoOpLogger{}), ukmRepo, repo
	}

	t.Run("create", func(t *testing.T) {
		svc, ukmRepo, repo := setup(t)

		ukmRepo.EXPECT().Exists(gomock.Any(), int64(5)).Return(true, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		tanggal := model.NewDate(2024, time.August, 17)
		k, err := svc.Create(ctx, 5, service.KegiatanInput{Nama: "Lomba", Tanggal: &tanggal})
		require.NoError(t, err)
		assert.Equal(t, int64(5), k.UKMID)
		assert.Equal(t, &tanggal, k.Tanggal)
	})

	t.Run("create under missing ukm", func(t *testing.T) {
		svc, ukmRepo, _ := setup(t)

		ukmRepo.EXPECT().Exists(gomock.Any(), int64(5)).Return(false, nil)

		_, err := svc.Create(ctx, 5, service.KegiatanInput{Nama: "Lomba"})
		assert.ErrorIs(t, err, domain.ErrUKMNotFound)
	})

	t.Run("nama required", func(t *testing.T) {
		svc, _, _ := setup(t)

		_, err := svc.Create(ctx, 5, service.KegiatanInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("delete wrong ukm", func(t *testing.T) {
		svc, _, repo := setup(t)

		repo.EXPECT().Delete(gomock.Any(), int64(6), int64(10)).Return(domain.ErrKegiatanNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, 6, 10), domain.ErrKegiatanNotFound)
	})
}

func TestLaporanService(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*service.LaporanService, *mocks.MockUKMRepositoryIface, *mocks.MockLaporanRepositoryIface) {
		ctrl := gomock.NewController(t)
		ukmRepo := mocks.NewMockUKMRepositoryIface(ctrl)
		repo := mocks.NewMockLaporanRepositoryIface(ctrl)
		return service.NewLaporanService(ukmRepo, repo, newCache(t), &audit.NoOpLogger{}), ukmRepo, repo
	}

	t.Run("create", func(t *testing.T) {
		svc, ukmRepo, repo := setup(t)

		ukmRepo.EXPECT().Exists(gomock.Any(), int64(5)).Return(true, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		l, err := svc.Create(ctx, 5, service.LaporanInput{Kegiatan: "Lomba", Peserta: 30, Biaya: 1500000})
		require.NoError(t, err)
		assert.Equal(t, 30, l.Peserta)
		assert.Equal(t, 1500000.0, l.Biaya)
	})

	t.Run("negative biaya", func(t *testing.T) {
		svc, _, _ := setup(t)

		_, err := svc.Create(ctx, 5, service.LaporanInput{Kegiatan: "Lomba", Biaya: -1})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.EqualError(t, err, "biaya tidak valid")
	})

	t.Run("update wrong ukm", func(t *testing.T) {
		svc, _, repo := setup(t)

		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(domain.ErrLaporanNotFound)

		_, err := svc.Update(ctx, 6, 10, service.LaporanInput{Kegiatan: "Lomba"})
		assert.ErrorIs(t, err, domain.ErrLaporanNotFound)
	})
}
