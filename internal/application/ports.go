package application

import (
	"context"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/domain"
)

// PaymentSDK is the port for the vendor card SDK.
type PaymentSDK interface {
	ConfigureEnvironment(ctx context.Context, env domain.Environment) error
	FetchSessionID(ctx context.Context) (string, error)
	// SubmitCardForTokenization returns immediately; the callback fires once
	// the processor answers.
	SubmitCardForTokenization(ctx context.Context, req TokenizationRequest, callback TokenCallback)
}

type TokenizationRequest struct {
	UserID string
	Email  string
	Card   *domain.Card
}

// TokenCallback receives the outcome of a tokenization. A nil card on
// success means the processor answered without card data.
type TokenCallback interface {
	OnSuccess(card *domain.TokenizedCard)
	OnError(err *domain.ProcessorError)
}
