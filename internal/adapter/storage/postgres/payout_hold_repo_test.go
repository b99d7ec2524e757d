package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayoutHoldRepo_CreateIfAbsent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayoutHoldRepo(mock)
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO payout_holds .+ ON CONFLICT \\(merchant_id\\) WHERE status = 'ACTIVE' DO NOTHING").
		WithArgs(int64(3), "chargeback review").
		WillReturnRows(pgxmock.NewRows([]string{"id", "status", "created_at"}).
			AddRow(int64(1), domain.PayoutHoldStatusActive, now))

	h := &domain.PayoutHold{MerchantID: 3, Reason: "chargeback review"}
	created, err := repo.CreateIfAbsent(context.Background(), h)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(1), h.ID)
	assert.Equal(t, domain.PayoutHoldStatusActive, h.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayoutHoldRepo_CreateIfAbsent_Conflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayoutHoldRepo(mock)

	mock.ExpectQuery("INSERT INTO payout_holds").
		WithArgs(int64(3), "again").
		WillReturnRows(pgxmock.NewRows([]string{"id", "status", "created_at"}))

	created, err := repo.CreateIfAbsent(context.Background(), &domain.PayoutHold{MerchantID: 3, Reason: "again"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayoutHoldRepo_ListActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayoutHoldRepo(mock)
	now := time.Now().UTC()
	var released *time.Time
	cols := []string{"id", "merchant_id", "reason", "status", "created_at", "released_at"}

	mock.ExpectQuery("SELECT .+ FROM payout_holds WHERE status = 'ACTIVE'").
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(int64(1), int64(3), "fraud", domain.PayoutHoldStatusActive, now, released).
			AddRow(int64(2), int64(4), "kyc", domain.PayoutHoldStatusActive, now, released))

	holds, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, holds, 2)
	assert.Equal(t, int64(4), holds[1].MerchantID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayoutHoldRepo_GetActiveByMerchant_None(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayoutHoldRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM payout_holds WHERE merchant_id").
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "merchant_id", "reason", "status", "created_at", "released_at"}))

	h, err := repo.GetActiveByMerchant(context.Background(), 3)
	assert.NoError(t, err)
	assert.Nil(t, h)
	assert.NoError(t, mock.ExpectationsWereMet())
}
