package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/content-admin-service/internal/content/domain"
	persistencemock "github.com/klwxsrx/content-admin-service/pkg/persistence/mock"
	pkgtime "github.com/klwxsrx/content-admin-service/pkg/time"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testContext() (context.Context, pkgtime.Clock) {
	clock := pkgtime.NewAdjustableClock()
	return clock.Set(context.Background(), now), clock
}

func ptr[T any](v T) *T {
	return &v
}

func newCategoryID() domain.CategoryID {
	return domain.CategoryID{UUID: uuid.New()}
}

// inPlaceTransaction runs every function directly in the caller's context.
func inPlaceTransaction(ctrl *gomock.Controller) *persistencemock.Transaction {
	tx := persistencemock.NewTransaction(ctrl)
	tx.EXPECT().Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error, _ ...string) error {
			return fn(ctx)
		}).AnyTimes()
	tx.EXPECT().WithLock(gomock.Any()).DoAndReturn(func(ctx context.Context) context.Context {
		return ctx
	}).AnyTimes()

	return tx
}
