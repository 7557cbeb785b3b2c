package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration (preview session cache).
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// External booking-records service.
	RecordsBaseURL    string `mapstructure:"RECORDS_BASE_URL"`
	RecordsTimeoutSec int    `mapstructure:"RECORDS_TIMEOUT_SEC"`

	// Scheduling engine settings. All interval arithmetic happens in the
	// configured timezone; timestamps on the wire are RFC3339 instants.
	Timezone      string `mapstructure:"TIMEZONE"`
	OpenHour      int    `mapstructure:"OPEN_HOUR"`
	CloseHour     int    `mapstructure:"CLOSE_HOUR"`
	SessionTTLMin int    `mapstructure:"SESSION_TTL_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("RECORDS_BASE_URL", "http://localhost:9090")
	viper.SetDefault("RECORDS_TIMEOUT_SEC", 10)
	viper.SetDefault("TIMEZONE", "UTC")
	viper.SetDefault("OPEN_HOUR", 7)
	viper.SetDefault("CLOSE_HOUR", 20)
	viper.SetDefault("SESSION_TTL_MIN", 15)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
