package client

import (
	"fmt"

	"golang.org/x/exp/slog"

	"chipadmin/internal/api/chipform"
	"chipadmin/internal/api/information"
	"chipadmin/internal/api/resource"
	"chipadmin/internal/api/users"
	"chipadmin/internal/app/client/config"
	"chipadmin/internal/router"
	"chipadmin/internal/router/modules"
	"chipadmin/internal/utils/httpclient"
	"chipadmin/pkg/metrics"
)

// App связывает конфигурацию, HTTP-помощник и API ресурсов панели
type App struct {
	config *config.Config
	log    *slog.Logger

	ChipForm    *chipform.API
	Information *information.API
	Users       *users.API
}

func New(cfg *config.Config, log *slog.Logger, m *metrics.Manager) (*App, error) {
	httpCl, err := httpclient.New(cfg, log, m)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	return NewWithRequester(cfg, log, httpCl), nil
}

// NewWithRequester собирает приложение поверх произвольного помощника запросов
func NewWithRequester(cfg *config.Config, log *slog.Logger, r resource.Requester) *App {
	return &App{
		config:      cfg,
		log:         log,
		ChipForm:    chipform.New(r),
		Information: information.New(r),
		Users:       users.New(r),
	}
}

// Routes возвращает навигационное дерево с учетом HIDE_HOME из конфигурации
func (a *App) Routes(locale string) []router.Route {
	return modules.All(a.config.HideHome, router.Locale(locale))
}

func (a *App) Logger() *slog.Logger {
	return a.log
}
