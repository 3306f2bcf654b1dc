package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"chipadmin/internal/utils/logger"
)

const (
	envPath = ".env"

	EnvLocal = logger.EnvLocal
	EnvDev   = logger.EnvDev
	EnvProd  = logger.EnvProd

	defaultRunAddress = "localhost:8848"
	defaultLocale     = "zh-CN"
)

type Config struct {
	Env    string
	Server server
	Logger logging
	Panel  panel
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

// logging - пустой уровень означает уровень по умолчанию для окружения
type logging struct {
	LogLevel string `env:"LOG_LEVEL"`
}

// panel - настройки навигации админ-панели
type panel struct {
	HideHome string `env:"HIDE_HOME"`
	Locale   string `env:"LOCALE" envDefault:"zh-CN"`
}

// MustLoad загружает конфигурацию сервера панели из .env и переменных окружения
func MustLoad() *Config {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Printf("ошибка загрузки .env файла: %v", err)
		}
	}

	return Load(viper.New())
}

// Load читает конфигурацию из переданного экземпляра viper
func Load(v *viper.Viper) *Config {
	v.AutomaticEnv()

	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", defaultRunAddress)
	v.SetDefault("log_level", "")
	v.SetDefault("hide_home", "false")
	v.SetDefault("locale", defaultLocale)

	return &Config{
		Env:    v.GetString("app_env"),
		Server: server{RunAddress: v.GetString("run_address")},
		Logger: logging{LogLevel: v.GetString("log_level")},
		Panel: panel{
			HideHome: v.GetString("hide_home"),
			Locale:   v.GetString("locale"),
		},
	}
}
