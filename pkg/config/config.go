package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the service configuration, loaded from environment
// variables with an optional .env file for local development.
type Config struct {
	Port     string `mapstructure:"PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Scoring
	DefaultVariant string `mapstructure:"DEFAULT_VARIANT"`

	// Lineup construction
	SalaryCap         int      `mapstructure:"SALARY_CAP"`
	RosterPositions   []string `mapstructure:"ROSTER_POSITIONS"`
	MaxPlayersPerTeam int      `mapstructure:"MAX_PLAYERS_PER_TEAM"`
	MaxLineups        int      `mapstructure:"MAX_LINEUPS"`

	// Demo slate
	FixtureSeed int64 `mapstructure:"FIXTURE_SEED"`
}

// LoadConfig reads configuration with sane defaults for every knob.
func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("DEFAULT_VARIANT", "stats_weighted")
	viper.SetDefault("SALARY_CAP", 50000)
	viper.SetDefault("ROSTER_POSITIONS", "G,G,F,F,UTIL,UTIL")
	viper.SetDefault("MAX_PLAYERS_PER_TEAM", 3)
	viper.SetDefault("MAX_LINEUPS", 20)
	viper.SetDefault("FIXTURE_SEED", 0)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if positions := viper.GetString("ROSTER_POSITIONS"); positions != "" {
		config.RosterPositions = strings.Split(positions, ",")
		for i := range config.RosterPositions {
			config.RosterPositions[i] = strings.TrimSpace(config.RosterPositions[i])
		}
	}

	if config.SalaryCap <= 0 {
		return nil, fmt.Errorf("SALARY_CAP must be positive, got %d", config.SalaryCap)
	}
	if len(config.RosterPositions) == 0 {
		return nil, fmt.Errorf("ROSTER_POSITIONS must not be empty")
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
