package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/ukmhub/internal/auth"
	"github.com/dangerclosesec/ukmhub/internal/mocks"
	"github.com/dangerclosesec/ukmhub/internal/model"
	"github.com/dangerclosesec/ukmhub/internal/service"
	"go.uber.org/mock/gomock"
)

var (
	admin  = auth.Identity{UserID: 1, Role: model.RoleAdmin}
	member = auth.Identity{UserID: 42, Role: model.RoleMember}
)

// inlineTx returns a Transactor mock that runs fn directly.
func inlineTx(ctrl *gomock.Controller) *mocks.MockTransactor {
	tx := mocks.NewMockTransactor(ctrl)
	tx.EXPECT().
		Transact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
	return tx
}

func newCache(t *testing.T) *service.CacheService {
	t.Helper()
	c := service.NewCacheService(service.CacheConfig{TTL: time.Minute, CleanupFreq: time.Minute})
	t.Cleanup(c.Close)
	return c
}

func ptr[T any](v T) *T {
	return &v
}
