// Package payment creates payment intents with the external card gateway.
package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
)

var (
	// ErrInvalidAmount is returned for a missing, zero, negative or
	// non-numeric fee. No gateway call is made.
	ErrInvalidAmount = errors.New("fees is required")

	// ErrUpstream wraps every gateway failure, timeouts included.
	ErrUpstream = errors.New("payment gateway failure")
)

// IntentRequest describes a card payment intent in minor currency units.
type IntentRequest struct {
	Amount   int64
	Currency string
}

// IntentCreator is the gateway side of the client.
type IntentCreator interface {
	CreateIntent(ctx context.Context, req IntentRequest) (clientSecret string, err error)
}

// Client validates fees and requests payment intents. Calls are not retried
// and carry no idempotency key, so a caller retrying after a timeout may
// create a second intent.
type Client struct {
	gateway  IntentCreator
	currency string
	timeout  time.Duration
	log      *zerolog.Logger
}

// NewClient constructs a Client. Each gateway call is bounded by timeout.
func NewClient(gateway IntentCreator, currency string, timeout time.Duration, log *zerolog.Logger) *Client {
	return &Client{gateway: gateway, currency: currency, timeout: timeout, log: log}
}

// CreateIntent returns the gateway client secret for a payment of fee.
func (c *Client) CreateIntent(ctx context.Context, fee *model.Fee) (string, error) {
	if fee == nil || !fee.Positive() {
		return "", ErrInvalidAmount
	}
	amount, err := fee.MinorUnits()
	if err != nil || amount <= 0 {
		return "", ErrInvalidAmount
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	secret, err := c.gateway.CreateIntent(callCtx, IntentRequest{Amount: amount, Currency: c.currency})
	if err != nil {
		c.log.Error().Err(err).Int64("amount", amount).Str("currency", c.currency).Msg("payment intent failed")
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	c.log.Debug().Int64("amount", amount).Str("currency", c.currency).Msg("payment intent created")
	return secret, nil
}
