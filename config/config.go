package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from a .env file (if present), an optional
// config.yaml, and the environment. Environment variables override file
// settings; keys with dots map to underscored env vars (bot.schedule ->
// BOT_SCHEDULE).
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, skipping")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("PORT", 3000)
	viper.SetDefault("bot.schedule", "@daily")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Info("No config.yaml found, using environment variables and defaults")
		} else {
			panic(fmt.Errorf("fatal error reading config file: %w", err))
		}
	}
}
