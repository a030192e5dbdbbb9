package services

import (
	"context"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/application"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/domain"
)

func (b *Bridge) sessionID(ctx context.Context, future *application.Future) {
	var sessionID string
	err := guard(func() error {
		var err error
		sessionID, err = b.sdk.FetchSessionID(ctx)
		return err
	})
	if err != nil {
		future.Fail(domain.NewSessionError(err))
		return
	}

	future.Success(sessionID)
}
