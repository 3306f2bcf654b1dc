package types

import (
	"errors"

	"github.com/spf13/cobra"

	"chipadmin/internal/app/client"
)

type contextKey string

// ClientAppKey - ключ, под которым root-команда кладет *client.App в контекст
const ClientAppKey contextKey = "app"

var ErrAppNotInitialized = errors.New("приложение не инициализировано")

// App достает приложение из контекста команды
func App(cmd *cobra.Command) (*client.App, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, ErrAppNotInitialized
	}
	app, ok := ctx.Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, ErrAppNotInitialized
	}
	return app, nil
}
