package services

import (
	"context"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/application"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/domain"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/i18n"
)

type expiryRange struct {
	Month int `validate:"min=1,max=12"`
	Year  int `validate:"min=0"`
}

func (b *Bridge) tokenizeCard(ctx context.Context, cmd application.TokenizeCardCommand, future *application.Future) {
	if err := b.validate.Struct(expiryRange{Month: cmd.ExpMonth, Year: cmd.ExpYear}); err != nil {
		future.Fail(domain.NewValidationError(i18n.Sprintf(ctx, domain.MsgInvalidExpiration), err))
		return
	}

	card := domain.NewCardBuilder(cmd.CardNumber, cmd.ExpMonth, cmd.ExpYear, cmd.CVC).
		Name(cmd.HolderName).
		Build()

	if !card.ValidateNumber() || !card.ValidateExpiryDateAt(b.now()) || !card.ValidateCVC() {
		future.Fail(domain.NewValidationError(i18n.Sprintf(ctx, domain.MsgInvalidCardData), nil))
		return
	}

	b.logger.Debug("submitting card for tokenization",
		"user_id", cmd.UserID,
		"card_type", card.Type(),
		"last4", card.Last4(),
	)

	callback := &tokenCallback{ctx: ctx, future: future}
	req := application.TokenizationRequest{
		UserID: cmd.UserID,
		Email:  cmd.Email,
		Card:   card,
	}

	err := guard(func() error {
		b.sdk.SubmitCardForTokenization(ctx, req, callback)
		return nil
	})
	if err != nil {
		callback.OnError(&domain.ProcessorError{Type: "sdk", Description: err.Error()})
	}
}

// tokenCallback adapts SDK callbacks onto the call's future.
type tokenCallback struct {
	ctx    context.Context
	future *application.Future
}

func (c *tokenCallback) OnSuccess(card *domain.TokenizedCard) {
	if card == nil {
		c.future.Fail(domain.NewCardNullError(i18n.Sprintf(c.ctx, domain.MsgCardNull)))
		return
	}
	c.future.Success(card.Envelope())
}

func (c *tokenCallback) OnError(err *domain.ProcessorError) {
	c.future.Fail(domain.NewTokenizeError(err, i18n.Sprintf(c.ctx, domain.MsgUnknownError)))
}
