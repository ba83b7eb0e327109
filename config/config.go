package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port                string
	DatabaseURL         string
	JWTSecret           string
	AdminActivationCode string
	RedisAddr           string
	KafkaBrokers        []string
	PrintTimeout        time.Duration
}

// Load reads configuration from the environment with local defaults.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "4000")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("ADMIN_ACTIVATION_CODE", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("PRINT_TIMEOUT_MS", 5000)

	var brokers []string
	if raw := v.GetString("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	return Config{
		Port:                v.GetString("PORT"),
		DatabaseURL:         v.GetString("DATABASE_URL"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		AdminActivationCode: v.GetString("ADMIN_ACTIVATION_CODE"),
		RedisAddr:           v.GetString("REDIS_ADDR"),
		KafkaBrokers:        brokers,
		PrintTimeout:        time.Duration(v.GetInt("PRINT_TIMEOUT_MS")) * time.Millisecond,
	}
}
