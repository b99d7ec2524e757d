package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPayoutService_CreateHold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPayoutHoldRepository(ctrl)
	svc := NewPayoutService(repo, newTestLogger())
	ctx := context.Background()

	repo.EXPECT().GetActiveByMerchant(ctx, int64(77)).Return(nil, nil)
	repo.EXPECT().CreateIfAbsent(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, h *domain.PayoutHold) (bool, error) {
		assert.Equal(t, "fraud review", h.Reason)
		h.ID = 4
		h.Status = domain.PayoutHoldStatusActive
		return true, nil
	})

	hold, err := svc.CreateHold(ctx, 77, "  fraud review ")
	require.NoError(t, err)
	assert.Equal(t, int64(4), hold.ID)
	assert.Equal(t, domain.PayoutHoldStatusActive, hold.Status)
}

func TestPayoutService_CreateHold_ExistingReturnedUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPayoutHoldRepository(ctrl)
	svc := NewPayoutService(repo, newTestLogger())
	ctx := context.Background()

	existing := &domain.PayoutHold{ID: 4, MerchantID: 77, Reason: "first reason", Status: domain.PayoutHoldStatusActive}
	repo.EXPECT().GetActiveByMerchant(ctx, int64(77)).Return(existing, nil)

	hold, err := svc.CreateHold(ctx, 77, "second reason")
	require.NoError(t, err)
	assert.Equal(t, existing, hold)
}

func TestPayoutService_CreateHold_LostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPayoutHoldRepository(ctrl)
	svc := NewPayoutService(repo, newTestLogger())
	ctx := context.Background()

	winner := &domain.PayoutHold{ID: 5, MerchantID: 77, Reason: "other", Status: domain.PayoutHoldStatusActive}
	gomock.InOrder(
		repo.EXPECT().GetActiveByMerchant(ctx, int64(77)).Return(nil, nil),
		repo.EXPECT().CreateIfAbsent(ctx, gomock.Any()).Return(false, nil),
		repo.EXPECT().GetActiveByMerchant(ctx, int64(77)).Return(winner, nil),
	)

	hold, err := svc.CreateHold(ctx, 77, "mine")
	require.NoError(t, err)
	assert.Equal(t, int64(5), hold.ID)
}

func TestPayoutService_CreateHold_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewPayoutService(mocks.NewMockPayoutHoldRepository(ctrl), newTestLogger())

	_, err := svc.CreateHold(context.Background(), 0, "reason")
	assertAppError(t, err, "GEN_400")

	_, err = svc.CreateHold(context.Background(), 77, "   ")
	assertAppError(t, err, "GEN_400")
}

func TestPayoutService_ListActiveHolds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPayoutHoldRepository(ctrl)
	svc := NewPayoutService(repo, newTestLogger())
	ctx := context.Background()

	repo.EXPECT().ListActive(ctx).Return([]domain.PayoutHold{{ID: 1}, {ID: 2}}, nil)
	holds, err := svc.ListActiveHolds(ctx)
	require.NoError(t, err)
	assert.Len(t, holds, 2)

	repo.EXPECT().ListActive(ctx).Return(nil, errors.New("db down"))
	_, err = svc.ListActiveHolds(ctx)
	assertAppError(t, err, "SYS_001")
}
