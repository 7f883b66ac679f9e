package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"oper-review-backend/internal/mocks"
	"oper-review-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHealthService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHealthCheckRepositoryInterface(ctrl)
	svc := service.NewHealthService(repo)
	ctx := context.Background()

	t.Run("records an RFC3339 timestamp", func(t *testing.T) {
		repo.EXPECT().Record(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, checkedAt string) error {
			_, err := time.Parse(time.RFC3339Nano, checkedAt)
			assert.NoError(t, err)
			return nil
		})
		assert.NoError(t, svc.Check(ctx))
	})

	t.Run("write failure", func(t *testing.T) {
		repo.EXPECT().Record(ctx, gomock.Any()).Return(errors.New("read-only database"))
		err := svc.Check(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "read-only database")
	})
}

func TestHealthService_Ready(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHealthCheckRepositoryInterface(ctrl)
	svc := service.NewHealthService(repo)
	ctx := context.Background()

	repo.EXPECT().Ping(ctx).Return(nil)
	assert.NoError(t, svc.Ready(ctx))

	repo.EXPECT().Ping(ctx).Return(errors.New("refused"))
	assert.ErrorContains(t, svc.Ready(ctx), "database not reachable")
}
