// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"errors"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	DataFile        string `mapstructure:"DATA_FILE"`
	Environment     string `mapstructure:"GO_ENV"`
	HistoryPageSize int    `mapstructure:"HISTORY_PAGE_SIZE"`
}

// Load reads configuration from file or environment variables. A missing
// config file is not an error; the defaults apply.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("DATA_FILE", "cuentas.json")
	viper.SetDefault("GO_ENV", "production")
	viper.SetDefault("HISTORY_PAGE_SIZE", 5)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	if err := viper.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}
