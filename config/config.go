package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Streak   Streak
}

type Server struct {
	Port string
}

type Database struct {
	Path string
}

// Streak configures the daily streak-bonus job.
type Streak struct {
	BonusEnabled bool
	BonusMinDays int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "quizforge.db")
	viper.SetDefault("STREAK_BONUS_ENABLED", true)
	viper.SetDefault("STREAK_BONUS_MIN_DAYS", 3)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Path = viper.GetString("DATABASE_PATH")
	config.Streak.BonusEnabled = viper.GetBool("STREAK_BONUS_ENABLED")
	config.Streak.BonusMinDays = viper.GetInt("STREAK_BONUS_MIN_DAYS")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
