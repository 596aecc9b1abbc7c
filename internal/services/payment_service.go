package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"storefront-api/internal/infra/exchange"
	"storefront-api/internal/infra/payments"

	"go.uber.org/zap"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrAmountTooLow  = errors.New("amount too low for card payment")
)

// Stripe rejects card charges under 50 cents.
const minChargeCents = 50

type PaymentService struct {
	rates   exchange.RateClientInterface
	intents payments.IntentCreatorInterface
	log     *zap.SugaredLogger
}

func NewPaymentService(rates exchange.RateClientInterface, intents payments.IntentCreatorInterface, log *zap.SugaredLogger) *PaymentService {
	return &PaymentService{rates: rates, intents: intents, log: log}
}

// CreatePaymentIntent charges in USD; PKR amounts are converted at the
// current rate first.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, amount float64, currency string) (string, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	if currency == "" {
		currency = "pkr"
	}

	usdAmount := amount
	if strings.EqualFold(currency, "pkr") {
		rate, err := s.rates.USDToPKR(ctx)
		if err != nil {
			return "", err
		}
		usdAmount = amount / rate
	}

	cents := int64(math.Round(usdAmount * 100))
	if cents < minChargeCents {
		return "", ErrAmountTooLow
	}

	secret, err := s.intents.CreateIntent(ctx, cents, "usd")
	if err != nil {
		s.log.Errorw("payment intent creation failed", "amountCents", cents, "error", err)
		return "", err
	}
	return secret, nil
}
