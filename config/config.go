package config

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server Server
	Search Search
	Icon   Icon
}

type Server struct {
	Port string
}

type Search struct {
	Endpoint string
	Locale   string
	Enabled  bool
}

type Icon struct {
	File string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SEARCH_ENDPOINT", "https://html.duckduckgo.com/html/")
	viper.SetDefault("SEARCH_LOCALE", "us-en")
	viper.SetDefault("SEARCH_ENABLED", true)
	viper.SetDefault("ICON_FILE", "LOGO.png")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Search.Endpoint = viper.GetString("SEARCH_ENDPOINT")
	config.Search.Locale = viper.GetString("SEARCH_LOCALE")
	config.Search.Enabled = viper.GetBool("SEARCH_ENABLED")
	config.Icon.File = viper.GetString("ICON_FILE")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}

// ResolveIconPath looks for the configured icon file in the working directory
// first, then under assets/. An absent icon is not an error; the caller just
// skips registering the route.
func (c *Config) ResolveIconPath() (string, bool) {
	for _, candidate := range []string{c.Icon.File, filepath.Join("assets", c.Icon.File)} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
