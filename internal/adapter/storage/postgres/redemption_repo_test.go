package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedemption() *domain.Redemption {
	return &domain.Redemption{
		RedemptionCode:  "RDM-0001",
		WalletVoucherID: 5,
		VoucherCode:     "KADO-ABCD-1234",
		MerchantID:      3,
		Amount:          decimal.NewFromInt(50),
		Status:          domain.RedemptionStatusConfirmed,
		RedeemedAt:      time.Now().UTC(),
	}
}

func TestRedemptionRepo_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRedemptionRepo(mock)
	rd := newTestRedemption()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO redemptions .+ ON CONFLICT \\(voucher_code\\) DO NOTHING").
		WithArgs(rd.RedemptionCode, rd.WalletVoucherID, rd.VoucherCode, rd.MerchantID,
			rd.RedeemedByUserID, "50.00", rd.Location, rd.Status, rd.RedeemedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(9)))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	inserted, err := repo.Insert(context.Background(), tx, rd)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, int64(9), rd.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedemptionRepo_Insert_AlreadyRedeemed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRedemptionRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO redemptions").
		WithArgs(anyArgs(9)...).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	inserted, err := repo.Insert(context.Background(), tx, newTestRedemption())
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedemptionRepo_GetByVoucherCode(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRedemptionRepo(mock)
	now := time.Now().UTC()
	var by *int64
	loc := "Phnom Penh"

	mock.ExpectQuery("SELECT .+ FROM redemptions WHERE voucher_code").
		WithArgs("KADO-ABCD-1234").
		WillReturnRows(pgxmock.NewRows([]string{"id", "redemption_code", "wallet_voucher_id", "voucher_code",
			"merchant_id", "redeemed_by_user_id", "amount", "location", "status", "redeemed_at"}).
			AddRow(int64(9), "RDM-0001", int64(5), "KADO-ABCD-1234", int64(3), by, "50.00", &loc,
				domain.RedemptionStatusConfirmed, now))

	rd, err := repo.GetByVoucherCode(context.Background(), "KADO-ABCD-1234")
	require.NoError(t, err)
	require.NotNil(t, rd)
	assert.Equal(t, int64(9), rd.ID)
	assert.True(t, rd.Amount.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "Phnom Penh", *rd.Location)
	assert.NoError(t, mock.ExpectationsWereMet())
}
