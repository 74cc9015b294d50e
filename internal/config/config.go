package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Upload    Upload    `mapstructure:",squash"`
	Analysis  Analysis  `mapstructure:",squash"`
	Retention Retention `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Upload struct {
	Dir               string   `mapstructure:"upload_dir"`
	MaxBytes          int64    `mapstructure:"max_upload_bytes"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
	RatePerMinute     int      `mapstructure:"upload_rate_per_minute"`
}

type Analysis struct {
	ForecastPeriods int `mapstructure:"forecast_periods"`
	PreviewRows     int `mapstructure:"preview_rows"`
}

type Retention struct {
	CronSchedule string        `mapstructure:"artifact_retention_cron"`
	MaxAge       time.Duration `mapstructure:"artifact_retention_max_age"`
	Enabled      bool          `mapstructure:"artifact_retention_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})

	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("MAX_UPLOAD_BYTES", 16*1024*1024) // 16 MiB
	viper.SetDefault("ALLOWED_EXTENSIONS", []string{"csv", "xlsx"})
	viper.SetDefault("UPLOAD_RATE_PER_MINUTE", 30) // 0 desabilita o limite

	viper.SetDefault("FORECAST_PERIODS", 2)
	viper.SetDefault("PREVIEW_ROWS", 5)

	viper.SetDefault("ARTIFACT_RETENTION_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("ARTIFACT_RETENTION_MAX_AGE", "24h")
	viper.SetDefault("ARTIFACT_RETENTION_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	if err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	)); err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
