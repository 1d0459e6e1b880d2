// Package fundsapi provides the single HTTP client for the external fund
// platform REST API. Every response arrives wrapped in the uniform envelope
// {success, data, message, error, details}; this client unwraps it before
// any domain value reaches a caller.
package fundsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/jdvalencia/fondos-dashboard-go/internal/domain"
	"github.com/jdvalencia/fondos-dashboard-go/internal/infra/observability"
	"github.com/jdvalencia/fondos-dashboard-go/internal/infra/resilience"
)

var tracer = otel.Tracer("fundsapi")

// Client wraps HTTP calls to the fund platform API.
//
// Failures are never retried: a network error, timeout or non-2xx status
// propagates to the caller as a typed domain error.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cb         *gobreaker.CircuitBreaker
	bulkhead   *resilience.Bulkhead
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewClient creates a fund platform API client.
func NewClient(httpClient *http.Client, baseURL string, cb *gobreaker.CircuitBreaker, bulkhead *resilience.Bulkhead, metrics *observability.Metrics, logger *zap.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		cb:         cb,
		bulkhead:   bulkhead,
		metrics:    metrics,
		logger:     logger,
	}
}

// do executes one request against the API and returns the decoded envelope.
// Non-2xx responses become ErrServer carrying the envelope's message when
// one is parseable; network failures become ErrTransport.
func (c *Client) do(ctx context.Context, method, operation, path string, body any) (*domain.Envelope, error) {
	ctx, span := tracer.Start(ctx, "FundsAPI."+operation)
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	)

	start := time.Now()
	defer func() {
		c.metrics.RecordAPIRequestDuration(operation, time.Since(start))
	}()

	if err := c.bulkhead.Acquire(ctx); err != nil {
		return nil, &domain.ErrTransport{Op: operation, Err: err}
	}
	defer c.bulkhead.Release()

	result, err := c.cb.Execute(func() (any, error) {
		return c.roundTrip(ctx, method, operation, path, body)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.metrics.IncrAPIError(operation)
			return nil, &domain.ErrCircuitOpen{Service: "funds-api"}
		}
		c.metrics.IncrAPIError(operation)
		return nil, err
	}

	return result.(*domain.Envelope), nil
}

func (c *Client) roundTrip(ctx context.Context, method, operation, path string, body any) (*domain.Envelope, error) {
	url := c.baseURL + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, &domain.ErrTransport{Op: operation, Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, &domain.ErrTransport{Op: operation, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("api response read failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, &domain.ErrTransport{Op: operation, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("api non-2xx response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(raw)),
		)
		// The platform wraps errors in the same envelope shape; surface its
		// message when present.
		var env domain.Envelope
		msg := ""
		if jsonErr := json.Unmarshal(raw, &env); jsonErr == nil {
			msg = env.Message
			if msg == "" {
				msg = env.Error
			}
		}
		return nil, &domain.ErrServer{Status: resp.StatusCode, Message: msg}
	}

	var env domain.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	c.logger.Debug("api response",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	return &env, nil
}

// getOne unwraps a single-entity envelope. A missing data field means the
// entity does not exist: the envelope's message travels in the error.
func getOne[T any](ctx context.Context, c *Client, operation, path, resource string) (*T, error) {
	env, err := c.do(ctx, http.MethodGet, operation, path, nil)
	if err != nil {
		return nil, err
	}
	if !env.HasData() {
		return nil, &domain.ErrNotFound{Resource: resource, Message: env.Message}
	}
	var v T
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", resource, err)
	}
	return &v, nil
}

// getList unwraps a listing envelope. A missing data field yields an empty
// slice, never an error.
func getList[T any](ctx context.Context, c *Client, operation, path string) ([]T, error) {
	env, err := c.do(ctx, http.MethodGet, operation, path, nil)
	if err != nil {
		return nil, err
	}
	if !env.HasData() {
		return []T{}, nil
	}
	var v []T
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	if v == nil {
		v = []T{}
	}
	return v, nil
}

// --- Funds API (implements port.FundReader, port.FundMutator) ---

// ListFunds fetches the fund catalog.
func (c *Client) ListFunds(ctx context.Context) ([]domain.Fund, error) {
	return getList[domain.Fund](ctx, c, "ListFunds", "/funds/")
}

// GetFund fetches a single fund.
func (c *Client) GetFund(ctx context.Context, fundID string) (*domain.Fund, error) {
	return getOne[domain.Fund](ctx, c, "GetFund", fmt.Sprintf("/funds/%s/", fundID), "fund")
}

// Subscribe opens a subscription to a fund. The mutation envelope comes
// back whole so the caller can show the server's message.
func (c *Client) Subscribe(ctx context.Context, fundID string) (*domain.Envelope, error) {
	return c.do(ctx, http.MethodPost, "Subscribe", fmt.Sprintf("/funds/%s/subscribe/", fundID), nil)
}

// Cancel closes an active subscription to a fund.
func (c *Client) Cancel(ctx context.Context, fundID string) (*domain.Envelope, error) {
	return c.do(ctx, http.MethodPost, "Cancel", fmt.Sprintf("/funds/%s/cancel/", fundID), nil)
}

// --- User API (implements port.UserReader) ---

// GetUser fetches the current user.
func (c *Client) GetUser(ctx context.Context) (*domain.User, error) {
	return getOne[domain.User](ctx, c, "GetUser", "/user/", "user")
}

// GetBalance fetches the user's available balance.
func (c *Client) GetBalance(ctx context.Context) (*domain.Balance, error) {
	return getOne[domain.Balance](ctx, c, "GetBalance", "/user/balance/", "balance")
}

// GetUserFunds fetches the user's fund subscriptions.
func (c *Client) GetUserFunds(ctx context.Context) ([]domain.UserFund, error) {
	return getList[domain.UserFund](ctx, c, "GetUserFunds", "/user/funds/")
}

// GetTransactions fetches the user's most recent transactions, newest
// first, bounded to limit.
func (c *Client) GetTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	return getList[domain.Transaction](ctx, c, "GetTransactions", fmt.Sprintf("/user/transactions/?limit=%d", limit))
}

// --- Notifications API (implements port.NotificationStore) ---

// GetPreferences fetches the user's notification preferences.
func (c *Client) GetPreferences(ctx context.Context) (*domain.NotificationPreferences, error) {
	return getOne[domain.NotificationPreferences](ctx, c, "GetPreferences", "/user/notifications/", "notification preferences")
}

// UpdatePreferences submits the full desired preference set and returns the
// server's confirmed result.
func (c *Client) UpdatePreferences(ctx context.Context, update domain.PreferencesUpdate) (*domain.NotificationPreferences, error) {
	env, err := c.do(ctx, http.MethodPut, "UpdatePreferences", "/user/notifications/update/", update)
	if err != nil {
		return nil, err
	}
	if !env.HasData() {
		return nil, &domain.ErrNotFound{Resource: "notification preferences", Message: env.Message}
	}
	var prefs domain.NotificationPreferences
	if err := json.Unmarshal(env.Data, &prefs); err != nil {
		return nil, fmt.Errorf("decode notification preferences: %w", err)
	}
	return &prefs, nil
}
