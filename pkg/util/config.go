package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ReadConfig loads config.yaml from ./data/ (or from configFile when given) and lets
// environment variables override every key. A missing default config file is not an error.
func ReadConfig(configFile string) error {
	setDefaults()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./data/")
	}

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "5s")

	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_RPS", 20.0)
	viper.SetDefault("RATE_LIMIT_BURST", 40)

	viper.SetDefault("DATA_FILE", "./data/indoor.osm")
	viper.SetDefault("LEVEL_PENALTY", 2.5)
	viper.SetDefault("GRAPH_CACHE_SIZE", 8)
	viper.SetDefault("NEAREST_SEARCH_RADIUS", 25.0) // meters
	viper.SetDefault("PREWARM_AVOID", []string{"", "stairs", "elevator", "escalator,stairs"})
	viper.SetDefault("PREWARM_WORKERS", 4)
}
