package app

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	DataFile          string // network file loaded at start, e.g. rodovias.txt
	LogLevel          string // zap level name
	LogDevelopment    bool   // console encoder instead of JSON
	AskConsent        bool   // show the usage guidelines before the menu
	ConfirmSaveOnExit bool   // offer to save unsaved changes when leaving the menu
}

// Config keys, also the names used in highways.yaml and (upper-cased, with
// the HIGHWAYS_ prefix) in the environment.
const (
	KeyDataFile          = "data_file"
	KeyLogLevel          = "log_level"
	KeyLogDevelopment    = "log_development"
	KeyAskConsent        = "ask_consent"
	KeyConfirmSaveOnExit = "confirm_save_on_exit"
)

// LoadConfig reads configuration into v and returns it. When file is empty
// highways.yaml is searched for in the working directory and in
// $HOME/.highways; a missing file is not an error, an explicit one is.
func LoadConfig(v *viper.Viper, file string) (Config, error) {
	v.SetDefault(KeyDataFile, "")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogDevelopment, false)
	v.SetDefault(KeyAskConsent, true)
	v.SetDefault(KeyConfirmSaveOnExit, true)

	v.SetEnvPrefix("HIGHWAYS")
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("highways")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.highways")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("fatal error config file: %w", err)
		}
	}

	return Config{
		DataFile:          v.GetString(KeyDataFile),
		LogLevel:          v.GetString(KeyLogLevel),
		LogDevelopment:    v.GetBool(KeyLogDevelopment),
		AskConsent:        v.GetBool(KeyAskConsent),
		ConfirmSaveOnExit: v.GetBool(KeyConfirmSaveOnExit),
	}, nil
}
