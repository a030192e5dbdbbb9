package services

import (
	"context"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/application"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/domain"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/i18n"
)

func (b *Bridge) initialize(ctx context.Context, cmd application.InitCommand, future *application.Future) {
	env := domain.Environment{
		TestMode:      cmd.TestMode,
		ClientAppCode: cmd.ClientAppCode,
		ClientAppKey:  cmd.ClientAppKey,
	}

	err := guard(func() error {
		return b.sdk.ConfigureEnvironment(ctx, env)
	})
	if err != nil {
		future.Fail(domain.NewInitError(err))
		return
	}

	b.logger.Info("sdk environment configured", "test_mode", cmd.TestMode)
	future.Success(i18n.Sprintf(ctx, domain.MsgInitialized))
}
