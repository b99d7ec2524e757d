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

func voucherCols() []string {
	return []string{"id", "merchant_id", "title", "denominations", "stock_quantity", "unlimited_stock",
		"total_sold", "valid_from", "valid_until", "status", "created_at", "updated_at"}
}

func voucherRow(id int64, stock *int) *pgxmock.Rows {
	now := time.Now().UTC().Truncate(time.Microsecond)
	var from, until *time.Time
	return pgxmock.NewRows(voucherCols()).AddRow(
		id, int64(3), "Coffee voucher", []string{"25.00", "50.00"}, stock, false,
		4, from, until, domain.VoucherStatusActive, now, now,
	)
}

func TestVoucherRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewVoucherRepo(mock)
	stock := 10

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM vouchers WHERE id = .+ FOR UPDATE").
		WithArgs(int64(11)).
		WillReturnRows(voucherRow(11, &stock))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	v, err := repo.GetByIDForUpdate(context.Background(), tx, 11)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, int64(11), v.ID)
	assert.Equal(t, int64(3), v.MerchantID)
	require.Len(t, v.Denominations, 2)
	assert.True(t, v.Denominations[1].Equal(decimal.NewFromInt(50)))
	require.NotNil(t, v.StockQuantity)
	assert.Equal(t, 10, *v.StockQuantity)
	assert.Equal(t, domain.VoucherStatusActive, v.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVoucherRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewVoucherRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM vouchers WHERE id").
		WithArgs(int64(404)).
		WillReturnRows(pgxmock.NewRows(voucherCols()))

	v, err := repo.GetByID(context.Background(), 404)
	assert.NoError(t, err)
	assert.Nil(t, v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVoucherRepo_UpdateStock(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewVoucherRepo(mock)
	stock := 7

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE vouchers SET stock_quantity").
		WithArgs(&stock, 5, int64(11)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.UpdateStock(context.Background(), tx, 11, &stock, 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVoucherRepo_UpdateStock_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewVoucherRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE vouchers SET stock_quantity").
		WithArgs(pgxmock.AnyArg(), 1, int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateStock(context.Background(), tx, 99, nil, 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "voucher 99 not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVoucherRepo_PauseActiveByMerchant(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewVoucherRepo(mock)

	mock.ExpectExec("UPDATE vouchers SET status").
		WithArgs(domain.VoucherStatusPaused, int64(3), domain.VoucherStatusActive).
		WillReturnResult(pgxmock.NewResult("UPDATE", 4))

	n, err := repo.PauseActiveByMerchant(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
