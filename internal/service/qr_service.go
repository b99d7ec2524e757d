package service

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/hkdf"
)

const (
	qrKeyInfo      = "kado24/wallet-voucher-qr/v1"
	minQRSecretLen = 16
)

// ErrQRSecretTooShort is returned when the configured signing secret is
// too short to derive a key from.
var ErrQRSecretTooShort = errors.New("qr signing secret must be at least 16 bytes")

// QRService implements ports.QRCodec. The payload printed in a voucher's
// QR code is an HS256 JWT whose subject is the voucher code. The signing
// key is derived from the configured secret with HKDF so the raw secret
// never signs anything directly.
type QRService struct {
	key    []byte
	issuer string
	now    func() time.Time
}

// NewQRService derives the signing key from secret.
func NewQRService(secret, issuer string) (*QRService, error) {
	if len(secret) < minQRSecretLen {
		return nil, ErrQRSecretTooShort
	}

	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(qrKeyInfo)), key); err != nil {
		return nil, fmt.Errorf("derive qr key: %w", err)
	}
	return &QRService{key: key, issuer: issuer, now: time.Now}, nil
}

// Encode signs voucherCode. validUntil is carried as exp for scanners that
// display it; Decode does not enforce it, expiry is checked against the
// stored instance.
func (s *QRService) Encode(voucherCode string, validUntil time.Time) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   voucherCode,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(validUntil),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("signing qr payload: %w", err)
	}
	return signed, nil
}

// Decode verifies payload and returns the voucher code it carries.
func (s *QRService) Decode(payload string) (string, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(payload, &claims, func(*jwt.Token) (interface{}, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return "", fmt.Errorf("parsing qr payload: %w", err)
	}
	if !token.Valid {
		return "", errors.New("invalid qr payload")
	}
	if claims.Issuer != s.issuer {
		return "", fmt.Errorf("unexpected qr issuer %q", claims.Issuer)
	}
	if claims.Subject == "" {
		return "", errors.New("qr payload has no voucher code")
	}
	return claims.Subject, nil
}
