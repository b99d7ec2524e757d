package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

const voucherCodeLetters = "ABCDEFGHJKLMNPQRSTUVWXYZ"

// newOrderNumber returns ORD-<yyyyMMdd>-<6 digits>.
func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%06d", now.UTC().Format("20060102"), randomInt(1_000_000))
}

// newPaymentID returns <METHOD>-<12 hex>.
func newPaymentID(method string) string {
	return strings.ToUpper(method) + "-" + shortHex()
}

func newRedemptionCode() string {
	return "RDM-" + shortHex()
}

// newVoucherCode returns KADO-XXXX-9999. Ambiguous letters I and O are
// left out so codes can be read aloud at the till.
func newVoucherCode() string {
	var b strings.Builder
	b.WriteString("KADO-")
	for i := 0; i < 4; i++ {
		b.WriteByte(voucherCodeLetters[randomInt(int64(len(voucherCodeLetters)))])
	}
	fmt.Fprintf(&b, "-%04d", randomInt(10_000))
	return b.String()
}

func shortHex() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

func randomInt(n int64) int64 {
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		panic(fmt.Sprintf("crypto/rand: %v", err))
	}
	return v.Int64()
}
