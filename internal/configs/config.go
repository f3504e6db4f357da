package configs

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const ProductionMode = "production"

var (
	ErrMissingCredentials   = errors.New("missing TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID")
	ErrUnsupportedParseMode = errors.New("unsupported telegram parse mode")
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Logger    LoggerConfig    `mapstructure:"logger"`
}
type AppConfig struct {
	Mode     string `mapstructure:"mode"`
	Timezone string `mapstructure:"timezone"`
}
type ServerConfig struct {
	Port             string        `mapstructure:"port"`
	StaticDir        string        `mapstructure:"static_dir"`
	MaxUploadSize    int64         `mapstructure:"max_upload_size"`
	ReadTimeout      time.Duration `mapstructure:"read_timeout"`
	WriteTimeout     time.Duration `mapstructure:"write_timeout"`
	GracefulShutdown time.Duration `mapstructure:"graceful_shutdown"`
	TrustedProxies   []string      `mapstructure:"trusted_proxies"`
}
type TelegramConfig struct {
	BotToken       string        `mapstructure:"bot_token"`
	ChatID         string        `mapstructure:"chat_id"`
	BaseURL        string        `mapstructure:"base_url"`
	ParseMode      string        `mapstructure:"parse_mode"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}
type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	RPS     float64       `mapstructure:"rps"`
	Burst   int           `mapstructure:"burst"`
	TTL     time.Duration `mapstructure:"ttl"`
}
type KafkaConfig struct {
	BootstrapServers string `mapstructure:"bootstrap_servers"`
	RetryBackoffMs   int    `mapstructure:"retry_backoff_ms"`
	BatchSize        int    `mapstructure:"batch_size"`
	Acks             string `mapstructure:"acks"`
	Workers          int    `mapstructure:"workers"`
	BufferSize       int    `mapstructure:"buffer_size"`
}
type LoggerConfig struct {
	Level    string         `mapstructure:"level"`
	File     string         `mapstructure:"file"`
	Rotation RotationConfig `mapstructure:"rotation"`
}
type RotationConfig struct {
	MaxSize    int  `mapstructure:"max_size"`
	MaxAge     int  `mapstructure:"max_age"`
	MaxBackups int  `mapstructure:"max_backups"`
	Compress   bool `mapstructure:"compress"`
}

// LoadConfig reads .env from the working directory, then config.yml from path,
// then environment overrides. A missing .env or config.yml is not an error.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()
	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}
	bindings := [][]string{
		{"telegram.bot_token", "TELEGRAM_BOT_TOKEN"},
		{"telegram.chat_id", "TELEGRAM_CHAT_ID"},
		{"telegram.base_url", "TELEGRAM_BASE_URL"},
		{"server.port", "PORT"},
		{"server.trusted_proxies", "TRUSTED_PROXIES"},
		{"app.mode", "APP_MODE", "NODE_ENV"},
		{"kafka.bootstrap_servers", "KAFKA_BOOTSTRAP_SERVERS"},
		{"logger.level", "LOG_LEVEL"},
	}
	for _, b := range bindings {
		if err := v.BindEnv(b...); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", b[0], err)
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	// Only legacy Markdown and plain text have an escaper.
	if mode := config.Telegram.ParseMode; mode != "Markdown" && mode != "" {
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedParseMode, mode)
	}
	return config, nil
}
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.mode", "development")
	v.SetDefault("app.timezone", "Asia/Beirut")
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.static_dir", "public")
	v.SetDefault("server.max_upload_size", 10<<20)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.graceful_shutdown", "5s")
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("telegram.base_url", "https://api.telegram.org")
	v.SetDefault("telegram.parse_mode", "Markdown")
	v.SetDefault("telegram.request_timeout", "10s")
	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.rps", 0.25)
	v.SetDefault("ratelimit.burst", 5)
	v.SetDefault("ratelimit.ttl", "5m")
	v.SetDefault("kafka.retry_backoff_ms", 100)
	v.SetDefault("kafka.batch_size", 1)
	v.SetDefault("kafka.acks", "1")
	v.SetDefault("kafka.workers", 3)
	v.SetDefault("kafka.buffer_size", 1000)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.rotation.max_size", 10)
	v.SetDefault("logger.rotation.max_age", 7)
	v.SetDefault("logger.rotation.max_backups", 3)
}

func (c Config) IsProduction() bool {
	return c.App.Mode == ProductionMode
}

// Validate reports missing Telegram credentials. Outside production mode the
// caller treats the error as fatal; in production it is only logged.
func (c Config) Validate() error {
	if c.Telegram.BotToken == "" || c.Telegram.ChatID == "" {
		return ErrMissingCredentials
	}
	return nil
}
