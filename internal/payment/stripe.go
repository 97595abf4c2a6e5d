package payment

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// StripeCreator creates card payment intents through the Stripe API.
type StripeCreator struct {
	intents *paymentintent.Client
}

// NewStripeCreator builds a Stripe client with its own backend so the
// secret key and HTTP timeout are not taken from stripe package globals.
// Stripe's built-in network retries are disabled.
func NewStripeCreator(secretKey string, timeout time.Duration, log *zerolog.Logger) *StripeCreator {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: timeout},
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     stripeLogger{log: log},
	})
	return &StripeCreator{intents: &paymentintent.Client{B: backend, Key: secretKey}}
}

func (s *StripeCreator) CreateIntent(ctx context.Context, req IntentRequest) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.Amount),
		Currency:           stripe.String(req.Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := s.intents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}

// stripeLogger routes Stripe client logs through zerolog.
type stripeLogger struct {
	log *zerolog.Logger
}

func (l stripeLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug().Str("component", "stripe").Msgf(format, v...)
}

func (l stripeLogger) Infof(format string, v ...interface{}) {
	l.log.Info().Str("component", "stripe").Msgf(format, v...)
}

func (l stripeLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn().Str("component", "stripe").Msgf(format, v...)
}

func (l stripeLogger) Errorf(format string, v ...interface{}) {
	l.log.Error().Str("component", "stripe").Msgf(format, v...)
}
