// Package price reads the live token price from an exchange ticker.
package price

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/tapearn/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Millisecond * 200
	tickerPath    = "/api/v3/ticker/price"
)

var ErrPriceUnavailable = errors.New("price unavailable")

type tickerResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

type Binance struct {
	url           string
	client        clients.HTTPClientI
	retryInterval time.Duration
}

func NewBinance(address, symbol string, client clients.HTTPClientI) *Binance {
	q := url.Values{}
	q.Set("symbol", symbol)
	return &Binance{
		url:           address + tickerPath + "?" + q.Encode(),
		client:        client,
		retryInterval: retryInterval,
	}
}

// CurrentPrice returns the USD price of one token. Transport faults, 429 and
// 5xx responses are retried; every failure ends in ErrPriceUnavailable.
func (b *Binance) CurrentPrice(ctx context.Context) (float64, error) {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if attempt > 1 {
			if err := b.wait(ctx, attempt-1); err != nil {
				return 0, fmt.Errorf("%w: %v", ErrPriceUnavailable, err)
			}
		}

		statusCode, respBody, _, err := b.client.Get(ctx, b.url, nil)
		if err != nil {
			zap.L().Warn("price request failed", zap.Int("attempt", attempt), zap.Error(err))
			lastErr = err
			continue
		}

		switch {
		case statusCode == http.StatusOK:
			return parsePrice(respBody)
		case statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError:
			zap.L().Warn("price source is unavailable, retrying", zap.Int("status", statusCode), zap.Int("attempt", attempt))
			lastErr = fmt.Errorf("unexpected status code %d", statusCode)
		default:
			zap.L().Error("unexpected status code from price source", zap.Int("status", statusCode))
			return 0, fmt.Errorf("%w: unexpected status code %d", ErrPriceUnavailable, statusCode)
		}
	}
	zap.L().Error("failed to fetch price", zap.Int("retries", maxRetries), zap.Error(lastErr))
	return 0, fmt.Errorf("%w: after %d retries: %v", ErrPriceUnavailable, maxRetries, lastErr)
}

func (b *Binance) wait(ctx context.Context, attempt int) error {
	timer := time.NewTimer(b.retryInterval * time.Duration(attempt))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func parsePrice(body []byte) (float64, error) {
	var resp tickerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("%w: failed to parse response body: %v", ErrPriceUnavailable, err)
	}
	price, err := strconv.ParseFloat(resp.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid price %q", ErrPriceUnavailable, resp.Price)
	}
	if price <= 0 {
		return 0, fmt.Errorf("%w: non-positive price %v", ErrPriceUnavailable, price)
	}
	return price, nil
}
