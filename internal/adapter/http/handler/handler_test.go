package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/internal/adapter/http/middleware"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/domain"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports"
	"github.com/kado24mv-star/kado24-platform-sub000/internal/core/ports/mocks"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/apperror"
	"github.com/kado24mv-star/kado24-platform-sub000/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "internal-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router      *gin.Engine
	stock       *mocks.MockStockLedger
	orders      *mocks.MockOrderLedger
	payments    *mocks.MockPaymentService
	wallet      *mocks.MockWalletService
	redemptions *mocks.MockRedemptionService
	payouts     *mocks.MockPayoutService
}

func newTestEnv(t *testing.T, checkers ...ports.HealthChecker) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		stock:       mocks.NewMockStockLedger(ctrl),
		orders:      mocks.NewMockOrderLedger(ctrl),
		payments:    mocks.NewMockPaymentService(ctrl),
		wallet:      mocks.NewMockWalletService(ctrl),
		redemptions: mocks.NewMockRedemptionService(ctrl),
		payouts:     mocks.NewMockPayoutService(ctrl),
	}
	env.router = SetupRouter(RouterDeps{
		Stock:          env.stock,
		Orders:         env.orders,
		Payments:       env.payments,
		Wallet:         env.wallet,
		Redemptions:    env.redemptions,
		Payouts:        env.payouts,
		InternalSecret: testSecret,
		HealthCheckers: checkers,
		Logger:         zerolog.Nop(),
	})
	return env
}

// do sends a request. userID 0 omits X-User-Id; internal adds the secret.
func (e *testEnv) do(method, path string, body interface{}, userID int64, internal bool) *httptest.ResponseRecorder {
	headers := map[string]string{}
	if userID > 0 {
		headers[middleware.HeaderUserID] = jsonNumber(userID)
	}
	if internal {
		headers[middleware.HeaderInternalSecret] = testSecret
	}
	return e.doWithHeaders(method, path, body, headers)
}

// redeem posts a scan as user 42 acting for merchantID. merchantID 0 omits
// X-Merchant-Id.
func (e *testEnv) redeem(body string, merchantID int64) *httptest.ResponseRecorder {
	headers := map[string]string{middleware.HeaderUserID: "42"}
	if merchantID > 0 {
		headers[middleware.HeaderMerchantID] = jsonNumber(merchantID)
	}
	return e.doWithHeaders(http.MethodPost, "/api/v1/redemptions", body, headers)
}

func (e *testEnv) doWithHeaders(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func jsonNumber(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}

type envelope struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Data       json.RawMessage      `json:"data"`
	Error      *response.ErrorBody  `json:"error"`
	Pagination *response.Pagination `json:"pagination"`
	RequestID  string               `json:"request_id"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assert.Equal(t, status, w.Code, w.Body.String())
	env := decode(t, w)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, code, env.Error.Code)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// --- Stock ---

func TestReserve_Success(t *testing.T) {
	env := newTestEnv(t)
	remaining := 8

	env.stock.EXPECT().Reserve(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.ReserveRequest) (*domain.ReservationResult, error) {
			assert.Equal(t, int64(5), req.VoucherID)
			assert.True(t, req.Denomination.Equal(dec("25")))
			assert.Equal(t, 2, req.Quantity)
			return &domain.ReservationResult{
				VoucherID: 5, MerchantID: 11, Denomination: req.Denomination,
				Quantity: 2, RemainingStock: &remaining,
			}, nil
		})

	w := env.do(http.MethodPost, "/api/v1/vouchers/5/reserve", `{"denomination":"25.00","quantity":2}`, 0, true)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res domain.ReservationResult
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &res))
	assert.Equal(t, int64(11), res.MerchantID)
	require.NotNil(t, res.RemainingStock)
	assert.Equal(t, 8, *res.RemainingStock)
}

func TestReserve_RequiresInternalSecret(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/vouchers/5/reserve", `{"denomination":"25.00","quantity":2}`, 7, false)
	assertErrorCode(t, w, http.StatusUnauthorized, "SEC_001")
}

func TestReserve_ValidationErrors(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		path string
		body string
	}{
		{"zero denomination", "/api/v1/vouchers/5/reserve", `{"denomination":"0","quantity":2}`},
		{"fractional cents", "/api/v1/vouchers/5/reserve", `{"denomination":"25.001","quantity":2}`},
		{"zero quantity", "/api/v1/vouchers/5/reserve", `{"denomination":"25","quantity":0}`},
		{"bad voucher id", "/api/v1/vouchers/abc/reserve", `{"denomination":"25","quantity":1}`},
		{"malformed json", "/api/v1/vouchers/5/reserve", `{"denomination":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodPost, tt.path, tt.body, 0, true)
			assertErrorCode(t, w, http.StatusBadRequest, "GEN_400")
		})
	}
}

func TestReserve_MapsDomainErrors(t *testing.T) {
	env := newTestEnv(t)
	env.stock.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInsufficientStock())

	w := env.do(http.MethodPost, "/api/v1/vouchers/5/reserve", `{"denomination":"25","quantity":20}`, 0, true)
	assertErrorCode(t, w, http.StatusConflict, "VCH_003")
}

func TestRelease_Success(t *testing.T) {
	env := newTestEnv(t)
	env.stock.EXPECT().Release(gomock.Any(), int64(5), 3).Return(nil)

	w := env.do(http.MethodPost, "/api/v1/vouchers/5/release", `{"quantity":3}`, 0, true)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

// --- Wallet issuance ---

func TestIssue_Success(t *testing.T) {
	env := newTestEnv(t)
	validUntil := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)

	env.wallet.EXPECT().CreateInstances(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.IssueRequest) ([]domain.WalletVoucher, error) {
			assert.Equal(t, int64(100), req.OrderID)
			assert.Equal(t, int64(7), req.UserID)
			assert.Equal(t, 2, req.Quantity)
			out := make([]domain.WalletVoucher, req.Quantity)
			for i := range out {
				out[i] = domain.WalletVoucher{
					ID: int64(i + 1), VoucherCode: "KADO-ABCD-000" + jsonNumber(int64(i)),
					QRPayload: "secret-payload", UserID: req.UserID, OrderID: req.OrderID,
					Denomination: req.Denomination, Status: domain.WalletVoucherStatusActive,
					ValidUntil: validUntil,
				}
			}
			return out, nil
		})

	body := map[string]interface{}{
		"order_id": 100, "user_id": 7, "voucher_id": 5, "merchant_id": 11,
		"denomination": "25.00", "quantity": 2,
	}
	w := env.do(http.MethodPost, "/api/v1/wallet/issue", body, 0, true)

	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var issued []map[string]interface{}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &issued))
	require.Len(t, issued, 2)
	assert.Equal(t, "ACTIVE", issued[0]["status"])
	assert.NotContains(t, w.Body.String(), "secret-payload")
}

func TestIssue_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/wallet/issue", `{"order_id":100,"quantity":2}`, 0, true)
	assertErrorCode(t, w, http.StatusBadRequest, "GEN_400")
}

// --- Orders ---

func TestCreateOrder_Success(t *testing.T) {
	env := newTestEnv(t)

	env.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.CreateOrderRequest) (*domain.Order, error) {
			assert.Equal(t, int64(7), req.UserID)
			assert.Equal(t, int64(5), req.VoucherID)
			return &domain.Order{
				ID: 100, OrderNumber: "ORD-20261015-ABCDEF", UserID: 7, VoucherID: 5,
				Quantity: req.Quantity, Denomination: req.Denomination,
				TotalAmount:   req.Denomination.Mul(decimal.NewFromInt(int64(req.Quantity))),
				PaymentStatus: domain.PaymentStatusPending, OrderStatus: domain.OrderStatusPending,
			}, nil
		})

	w := env.do(http.MethodPost, "/api/v1/orders", `{"voucher_id":5,"denomination":"25.00","quantity":2}`, 7, false)

	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order domain.Order
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &order))
	assert.Equal(t, "ORD-20261015-ABCDEF", order.OrderNumber)
	assert.True(t, order.TotalAmount.Equal(dec("50")))
}

func TestCreateOrder_MissingUser(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/orders", `{"voucher_id":5,"denomination":"25","quantity":2}`, 0, false)
	assertErrorCode(t, w, http.StatusUnauthorized, "SEC_002")
}

func TestListOrders_Paginates(t *testing.T) {
	env := newTestEnv(t)
	env.orders.EXPECT().ListOrders(gomock.Any(), int64(7), 1, 5).
		Return([]domain.Order{{ID: 6}, {ID: 7}}, int64(7), nil)

	w := env.do(http.MethodGet, "/api/v1/orders?page=1&size=5", nil, 7, false)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	p := decode(t, w).Pagination
	require.NotNil(t, p)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 5, p.Size)
	assert.Equal(t, int64(7), p.TotalElements)
	assert.Equal(t, 2, p.TotalPages)
}

func TestListOrders_DefaultPageSize(t *testing.T) {
	env := newTestEnv(t)
	env.orders.EXPECT().ListOrders(gomock.Any(), int64(7), 0, 20).Return(nil, int64(0), nil)

	w := env.do(http.MethodGet, "/api/v1/orders", nil, 7, false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListOrders_RejectsOversizedPage(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/orders?size=500", nil, 7, false)
	assertErrorCode(t, w, http.StatusBadRequest, "GEN_400")
}

func TestGetOrder(t *testing.T) {
	env := newTestEnv(t)
	env.orders.EXPECT().GetOrder(gomock.Any(), int64(7), int64(100)).Return(&domain.Order{ID: 100, UserID: 7}, nil)
	env.orders.EXPECT().GetOrder(gomock.Any(), int64(7), int64(101)).Return(nil, apperror.ErrNotFound("Order"))

	w := env.do(http.MethodGet, "/api/v1/orders/100", nil, 7, false)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/v1/orders/101", nil, 7, false)
	assertErrorCode(t, w, http.StatusNotFound, "GEN_404")

	w = env.do(http.MethodGet, "/api/v1/orders/-1", nil, 7, false)
	assertErrorCode(t, w, http.StatusBadRequest, "GEN_400")
}

func TestCancelOrder(t *testing.T) {
	env := newTestEnv(t)
	env.orders.EXPECT().CancelOrder(gomock.Any(), int64(100), int64(7)).Return(nil)
	env.orders.EXPECT().CancelOrder(gomock.Any(), int64(101), int64(7)).
		Return(apperror.ErrInvalidState("Order cannot be cancelled"))

	w := env.do(http.MethodPost, "/api/v1/orders/100/cancel", nil, 7, false)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(http.MethodPost, "/api/v1/orders/101/cancel", nil, 7, false)
	assertErrorCode(t, w, http.StatusConflict, "GEN_409")
}

// --- Payments ---

func TestProcessPayment_Success(t *testing.T) {
	env := newTestEnv(t)

	env.payments.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.PaymentRequest) (*ports.PaymentResult, error) {
			assert.Equal(t, int64(7), req.UserID)
			assert.Equal(t, int64(100), req.OrderID)
			assert.Equal(t, "ABA_PAY", req.PaymentMethod)
			assert.True(t, req.Amount.Equal(dec("50")))
			return &ports.PaymentResult{
				OrderID: 100, PaymentID: "PAY-ABA_PAY-1", PaymentStatus: domain.PaymentStatusCompleted,
				Amount: req.Amount, Message: "Payment completed", IssuedVouchers: 2,
			}, nil
		})

	w := env.do(http.MethodPost, "/api/v1/payments", `{"order_id":100,"payment_method":"ABA_PAY","amount":"50.00"}`, 7, false)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	env2 := decode(t, w)
	assert.Equal(t, "Payment completed", env2.Message)
	var res ports.PaymentResult
	require.NoError(t, json.Unmarshal(env2.Data, &res))
	assert.Equal(t, 2, res.IssuedVouchers)
}

func TestProcessPayment_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"in progress", apperror.ErrPaymentInProgress(), http.StatusConflict, "PAY_003"},
		{"amount mismatch", apperror.ErrAmountMismatch(), http.StatusBadRequest, "PAY_001"},
		{"reservation failed", apperror.ErrReservationFailed(errors.New("sold out")), http.StatusConflict, "PAY_002"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "SYS_000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.payments.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			w := env.do(http.MethodPost, "/api/v1/payments", `{"order_id":100,"payment_method":"ABA_PAY","amount":"50"}`, 7, false)
			assertErrorCode(t, w, tt.status, tt.code)
			assert.NotContains(t, w.Body.String(), "sold out")
		})
	}
}

func TestProcessPayment_RejectsUnsafeMethod(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/payments", `{"order_id":100,"payment_method":"card; drop","amount":"50"}`, 7, false)
	assertErrorCode(t, w, http.StatusBadRequest, "GEN_400")
}

func TestGetPaymentStatus(t *testing.T) {
	env := newTestEnv(t)
	env.payments.EXPECT().GetPaymentStatus(gomock.Any(), int64(7), int64(100)).
		Return(&ports.PaymentResult{OrderID: 100, PaymentStatus: domain.PaymentStatusPending}, nil)

	w := env.do(http.MethodGet, "/api/v1/payments/100", nil, 7, false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"payment_status":"PENDING"`)
}

// --- Wallet ---

func TestListWalletVouchers_StatusFilter(t *testing.T) {
	env := newTestEnv(t)

	env.wallet.EXPECT().ListVouchers(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p ports.WalletVoucherListParams) ([]domain.WalletVoucher, int64, error) {
			assert.Equal(t, int64(7), p.UserID)
			require.NotNil(t, p.Status)
			assert.Equal(t, domain.WalletVoucherStatusActive, *p.Status)
			assert.Equal(t, 0, p.Page)
			assert.Equal(t, 10, p.Size)
			return []domain.WalletVoucher{{ID: 1, Status: domain.WalletVoucherStatusActive}}, 1, nil
		})

	w := env.do(http.MethodGet, "/api/v1/wallet/vouchers?status=ACTIVE&size=10", nil, 7, false)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, int64(1), decode(t, w).Pagination.TotalElements)
}

func TestListWalletVouchers_UnknownStatus(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/wallet/vouchers?status=BOGUS", nil, 7, false)
	assertErrorCode(t, w, http.StatusBadRequest, "GEN_400")
}

func TestGift(t *testing.T) {
	env := newTestEnv(t)

	env.wallet.EXPECT().Gift(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.GiftRequest) (*domain.WalletVoucher, error) {
			assert.Equal(t, ports.GiftRequest{
				SenderUserID: 7, WalletVoucherID: 9, RecipientUserID: 8,
				Message: "happy birthday &lt;3",
			}, req)
			to := req.RecipientUserID
			return &domain.WalletVoucher{ID: 9, UserID: 7, IsGift: true, GiftedToUserID: &to,
				Status: domain.WalletVoucherStatusGifted}, nil
		})

	w := env.do(http.MethodPost, "/api/v1/wallet/vouchers/9/gift", `{"recipient_user_id":8,"message":" happy birthday <3 "}`, 7, false)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	env.wallet.EXPECT().Gift(gomock.Any(), gomock.Any()).Return(nil, apperror.Validation("cannot gift a voucher to yourself"))
	w = env.do(http.MethodPost, "/api/v1/wallet/vouchers/9/gift", `{"recipient_user_id":7}`, 7, false)
	assertErrorCode(t, w, http.StatusBadRequest, "GEN_400")
}

// --- Redemptions ---

func TestRedeem_ByCode(t *testing.T) {
	env := newTestEnv(t)

	env.redemptions.EXPECT().Redeem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.RedeemRequest) (*domain.Redemption, error) {
			assert.Equal(t, "KADO-ABCD-1234", req.VoucherCode)
			assert.Empty(t, req.QRPayload)
			assert.Equal(t, int64(11), req.MerchantID)
			require.NotNil(t, req.RedeemedByUserID)
			assert.Equal(t, int64(42), *req.RedeemedByUserID)
			assert.Nil(t, req.Amount)
			return &domain.Redemption{
				ID: 1, RedemptionCode: "RDM-1", VoucherCode: req.VoucherCode, MerchantID: 11,
				Amount: dec("25"), Status: domain.RedemptionStatusConfirmed,
			}, nil
		})

	w := env.redeem(`{"voucher_code":"KADO-ABCD-1234"}`, 11)

	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"redemption_code":"RDM-1"`)
}

func TestRedeem_PartialAmount(t *testing.T) {
	env := newTestEnv(t)

	env.redemptions.EXPECT().Redeem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.RedeemRequest) (*domain.Redemption, error) {
			require.NotNil(t, req.Amount)
			assert.True(t, req.Amount.Equal(dec("10")))
			assert.Equal(t, "qr.payload.sig", req.QRPayload)
			return &domain.Redemption{ID: 2, Amount: *req.Amount}, nil
		})

	w := env.redeem(`{"qr_payload":"qr.payload.sig","merchant_id":11,"amount":"10.00"}`, 11)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestRedeem_Validation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body string
	}{
		{"no code or payload", `{"merchant_id":11}`},
		{"malformed code", `{"voucher_code":"ABCD","merchant_id":11}`},
		{"non-positive merchant", `{"voucher_code":"KADO-ABCD-1234","merchant_id":-1}`},
		{"negative amount", `{"voucher_code":"KADO-ABCD-1234","merchant_id":11,"amount":"-5"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.redeem(tt.body, 11)
			assertErrorCode(t, w, http.StatusBadRequest, "GEN_400")
		})
	}
}

func TestRedeem_AlreadyUsed(t *testing.T) {
	env := newTestEnv(t)
	env.redemptions.EXPECT().Redeem(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInvalidState("Voucher is not redeemable"))

	w := env.redeem(`{"voucher_code":"KADO-ABCD-1234","merchant_id":11}`, 11)
	assertErrorCode(t, w, http.StatusConflict, "GEN_409")
}

func TestRedeem_MerchantComesFromGatewayHeader(t *testing.T) {
	env := newTestEnv(t)

	w := env.redeem(`{"voucher_code":"KADO-ABCD-1234","merchant_id":11}`, 0)
	assertErrorCode(t, w, http.StatusUnauthorized, "SEC_002")

	w = env.redeem(`{"voucher_code":"KADO-ABCD-1234","merchant_id":11}`, 12)
	assertErrorCode(t, w, http.StatusForbidden, "GEN_403")

	env.redemptions.EXPECT().Redeem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.RedeemRequest) (*domain.Redemption, error) {
			assert.Equal(t, int64(12), req.MerchantID)
			return &domain.Redemption{ID: 3, MerchantID: req.MerchantID}, nil
		})
	w = env.redeem(`{"voucher_code":"KADO-ABCD-1234"}`, 12)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

// --- Payout holds ---

func TestPayoutHolds(t *testing.T) {
	env := newTestEnv(t)
	env.payouts.EXPECT().CreateHold(gomock.Any(), int64(11), "Merchant suspended").
		Return(&domain.PayoutHold{ID: 1, MerchantID: 11, Reason: "Merchant suspended", Status: domain.PayoutHoldStatusActive}, nil)
	env.payouts.EXPECT().ListActiveHolds(gomock.Any()).
		Return([]domain.PayoutHold{{ID: 1, MerchantID: 11, Status: domain.PayoutHoldStatusActive}}, nil)

	w := env.do(http.MethodPost, "/api/v1/payouts/holds", `{"merchant_id":11,"reason":"Merchant suspended"}`, 0, true)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.do(http.MethodGet, "/api/v1/payouts/holds", nil, 0, true)
	assert.Equal(t, http.StatusOK, w.Code)
	var holds []domain.PayoutHold
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &holds))
	assert.Len(t, holds, 1)

	w = env.do(http.MethodGet, "/api/v1/payouts/holds", nil, 7, false)
	assertErrorCode(t, w, http.StatusUnauthorized, "SEC_001")
}

// --- Health ---

func healthChecker(ctrl *gomock.Controller, name string, err error) *mocks.MockHealthChecker {
	hc := mocks.NewMockHealthChecker(ctrl)
	hc.EXPECT().Name().Return(name).AnyTimes()
	hc.EXPECT().Ping(gomock.Any()).Return(err)
	return hc
}

func TestHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)

	env := newTestEnv(t, healthChecker(ctrl, "postgresql", nil), healthChecker(ctrl, "redis", nil))
	w := env.do(http.MethodGet, "/health", nil, 0, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)

	env = newTestEnv(t, healthChecker(ctrl, "postgresql", nil), healthChecker(ctrl, "redis", errors.New("connection refused")))
	w = env.do(http.MethodGet, "/health", nil, 0, false)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestRequestIDPropagates(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/abc", nil)
	req.Header.Set(middleware.HeaderUserID, "7")
	req.Header.Set(middleware.HeaderRequestID, "trace-1")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, "trace-1", decode(t, w).RequestID)
}
