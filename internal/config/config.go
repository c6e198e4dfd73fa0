package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Facebook     Facebook     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Cache        Cache        `mapstructure:",squash"`
	CampaignSync CampaignSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Facebook struct {
	BaseURL        string        `mapstructure:"facebook_base_url"`
	Version        string        `mapstructure:"facebook_graph_version"`
	URL            string        `mapstructure:"-"`
	AppID          string        `mapstructure:"facebook_app_id"`
	AppSecret      string        `mapstructure:"facebook_app_secret"`
	RedirectURL    string        `mapstructure:"facebook_redirect_url"`
	RequestTimeout time.Duration `mapstructure:"facebook_request_timeout"`
	RetryAttempts  int           `mapstructure:"facebook_retry_attempts"`
	RetryDelay     time.Duration `mapstructure:"facebook_retry_delay"`
}

type Auth struct {
	Secret        string        `mapstructure:"auth_secret"`
	TokenDuration time.Duration `mapstructure:"auth_token_duration"`
}

type Cache struct {
	TTLMinutes   int    `mapstructure:"cache_ttl_minutes"`
	CleanupCron  string `mapstructure:"cache_cleanup_cron"`
	SweepEnabled bool   `mapstructure:"cache_sweep_enabled"`
}

type CampaignSync struct {
	InsightsChunkSize int           `mapstructure:"campaign_sync_insights_chunk_size"`
	ChunkDelay        time.Duration `mapstructure:"campaign_sync_chunk_delay"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 4000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/snapix")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("FACEBOOK_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("FACEBOOK_GRAPH_VERSION", "v18.0")
	viper.SetDefault("FACEBOOK_APP_ID", "your_app_id")
	viper.SetDefault("FACEBOOK_APP_SECRET", "your_app_secret")
	viper.SetDefault("FACEBOOK_REDIRECT_URL", "http://localhost:3000/auth-facebook")
	viper.SetDefault("FACEBOOK_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("FACEBOOK_RETRY_ATTEMPTS", 3)    // Tentativas por chamada à Graph API
	viper.SetDefault("FACEBOOK_RETRY_DELAY", "1s")    // Backoff linear: delay * tentativa

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_TOKEN_DURATION", "24h")

	viper.SetDefault("CACHE_TTL_MINUTES", 15)          // TTL do cache de respostas
	viper.SetDefault("CACHE_CLEANUP_CRON", "*/30 * * * *") // Varredura de entradas expiradas
	viper.SetDefault("CACHE_SWEEP_ENABLED", true)

	viper.SetDefault("CAMPAIGN_SYNC_INSIGHTS_CHUNK_SIZE", 40) // Campanhas por lote de insights
	viper.SetDefault("CAMPAIGN_SYNC_CHUNK_DELAY", "100ms")    // Pausa entre lotes

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Facebook.URL = fmt.Sprintf("%s/%s", config.Facebook.BaseURL, config.Facebook.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

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
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
