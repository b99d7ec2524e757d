package service

import (
	"context"
	"testing"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports/mocks"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestAuditService_Log_PersistsToRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(mockRepo, newTestLogger())

	done := make(chan struct{})
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, log *domain.AuditLog) error {
			if log.Action != domain.AuditActionRedeem {
				t.Errorf("expected REDEEM, got %s", log.Action)
			}
			if _, ok := ctx.Deadline(); !ok {
				t.Error("expected audit write to carry a deadline")
			}
			close(done)
			return nil
		},
	)

	// The request context is cancelled before the write happens.
	ctx, cancel := context.WithCancel(context.Background())
	svc.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		ActorID:      int64Ptr(42),
		Action:       domain.AuditActionRedeem,
		ResourceType: "wallet_voucher",
		ResourceID:   "KADO-ABCD-1234",
		IPAddress:    "127.0.0.1",
		CreatedAt:    time.Now(),
	})
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("audit log not persisted in time")
	}
}

func TestAuditService_Log_NilRepo(t *testing.T) {
	svc := NewAuditService(nil, newTestLogger())

	// Should not panic
	svc.Log(context.Background(), &domain.AuditLog{
		ID:           uuid.New(),
		Action:       domain.AuditActionPayoutHold,
		ResourceType: "payout_hold",
		IPAddress:    "10.0.0.1",
		CreatedAt:    time.Now(),
	})

	time.Sleep(50 * time.Millisecond) // let goroutine run
}
