package logger

import (
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"chipadmin/internal/utils/logger/slogpretty"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// New создает логгер в зависимости от окружения:
// local - цветной вывод, dev - JSON с уровнем debug, prod - JSON с уровнем info.
// Непустой level (debug, info, warn, error) заменяет уровень окружения;
// нераспознанное значение игнорируется.
func New(env, level string) *slog.Logger {
	var lvl slog.Level

	switch env {
	case EnvLocal, EnvDev:
		lvl = slog.LevelDebug
	default:
		lvl = slog.LevelInfo
	}

	if parsed, ok := parseLevel(level); ok {
		lvl = parsed
	}

	if env == EnvLocal {
		return setupPrettySlog(lvl)
	}

	return slog.New(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}),
	)
}

func parseLevel(level string) (slog.Level, bool) {
	level = strings.TrimSpace(level)
	if level == "" {
		return 0, false
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return 0, false
	}
	return lvl, true
}

func setupPrettySlog(level slog.Level) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	handler := opts.NewPrettyHandler(os.Stderr)

	return slog.New(handler)
}
