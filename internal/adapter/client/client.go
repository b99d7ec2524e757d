// Package client calls the voucher and wallet services over HTTP when they
// run out of process.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kado24mv-star/kado24-platform-sub000/pkg/apperror"
)

// InternalSecretHeader carries the shared secret on service-to-service calls.
const InternalSecretHeader = "X-Internal-Secret"

const maxResponseBytes = 1 << 20

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

type base struct {
	name    string
	baseURL string
	secret  string
	http    *http.Client
}

func newBase(name, baseURL, secret string, timeout time.Duration) base {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return base{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		http:    &http.Client{Timeout: timeout},
	}
}

// post sends body as JSON and decodes the envelope's data into out.
// Transport failures and 5xx responses become SYS_003; other error
// envelopes are returned with the remote code intact.
func (b base) post(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", b.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build %s request: %w", b.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(InternalSecretHeader, b.secret)

	resp, err := b.http.Do(req)
	if err != nil {
		return apperror.ErrDownstreamUnavailable(b.name, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return apperror.ErrDownstreamUnavailable(b.name, err)
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return apperror.ErrDownstreamUnavailable(b.name,
			fmt.Errorf("status %d: undecodable body: %w", resp.StatusCode, err))
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return apperror.ErrDownstreamUnavailable(b.name, fmt.Errorf("status %d: %s", resp.StatusCode, env.Message))
	}
	if !env.Success || resp.StatusCode >= http.StatusBadRequest {
		code := "SYS_000"
		if env.Error != nil && env.Error.Code != "" {
			code = env.Error.Code
		}
		return apperror.New(code, env.Message, resp.StatusCode)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", b.name, err)
	}
	return nil
}
