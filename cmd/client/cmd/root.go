// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"chipadmin/cmd/client/cmd/types"
	"chipadmin/internal/app/client"
	"chipadmin/internal/app/client/config"
	"chipadmin/internal/utils/logger"
	"chipadmin/pkg/metrics"
)

var (
	cfgFile     string
	serverURL   string
	debug       bool
	showMetrics bool

	// registry собирает метрики запросов к бэкенду за время одной команды
	registry *prometheus.Registry
)

var rootCmd = &cobra.Command{
	Use:   "chipadmin",
	Short: "ChipAdmin - консольный клиент админ-панели",
	Long: `ChipAdmin — консольный клиент админ-панели для управления формами чипов,
справочником опций и пользователями через REST API бэкенда.

Все команды ресурсов повторяют маршруты бэкенда:
list, add, update, delete, search (и options для формы чипов).`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: dumpMetrics,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	if err := readConfigFile(v); err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Флаги командной строки важнее конфигурации
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if debug {
		cfg.Env = "local"
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg.Env, cfg.LogLevel)
	registry = prometheus.NewRegistry()

	app, err := client.New(cfg, log, metrics.NewManager(metrics.WithPrometheusRegistry(registry)))
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))

	return nil
}

func dumpMetrics(cmd *cobra.Command, _ []string) error {
	if !showMetrics || registry == nil {
		return nil
	}
	return writeMetrics(cmd.ErrOrStderr(), registry)
}

// writeMetrics выводит собранные метрики в текстовом формате Prometheus
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("ошибка сбора метрик: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("ошибка вывода метрик: %w", err)
		}
	}

	return nil
}

func readConfigFile(v *viper.Viper) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		v.AddConfigPath(filepath.Join(home, ".chipadmin"))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес бэкенда (host:port или http(s)://host:port) вместо адреса по умолчанию")
	rootCmd.PersistentFlags().BoolVar(&showMetrics, "metrics", false, "вывести метрики запросов в stderr после выполнения команды")
}
