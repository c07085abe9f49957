package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort          string `mapstructure:"APP_PORT"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	Env              string `mapstructure:"ENV"`
	JWTSecret        string `mapstructure:"JWT_SECRET"`
	TokenTTLMinutes  int    `mapstructure:"TOKEN_TTL_MINUTES"`
	GoogleClientID   string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleSecret     string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectTo string `mapstructure:"GOOGLE_REDIRECT_URL"`
}

// Load reads config.yaml if present and overlays environment variables.
func Load() (Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("TOKEN_TTL_MINUTES", 1440)
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
