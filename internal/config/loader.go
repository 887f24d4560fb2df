package config

import (
	"errors"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/leighmacdonald/bizcard/internal/panel"
	"github.com/leighmacdonald/bizcard/internal/profile"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader creates a loader searching the XDG config dir and the working directory. When configFile
// is set, only that file is used.
func NewLoader(changes chan<- Config, configFile string) *Loader {
	defaults := profile.Default()
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("name", defaults.Name)
	loader.SetDefault("occupation", defaults.Occupation)
	loader.SetDefault("github_username", defaults.Username)
	loader.SetDefault("photo_description", defaults.Description)
	loader.SetDefault("portfolio", panel.DefaultItems())
	loader.SetDefault("portfolio_subtitle", DefaultPortfolioSubtitle)
	loader.SetDefault("browser", true)
	loader.SetDefault("mouse", true)
	loader.SetDefault("fps", 30)
	loader.SetDefault("log_level", "info")
	loader.SetDefault("debug", false)
	loader.SetConfigType("yaml")
	if configFile != "" {
		loader.SetConfigFile(configFile)
	} else {
		loader.SetConfigName(DefaultConfigName)
		loader.AddConfigPath(Path(""))
		loader.AddConfigPath(".")
	}
	loader.SetEnvPrefix(EnvPrefix)
	loader.AutomaticEnv()

	return &loader
}

// Watch starts watching the config file in use for external changes.
func (cl *Loader) Watch() {
	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Rename) && !in.Has(fsnotify.Create) {
		return
	}

	slog.Debug("External config reload triggered", slog.String("path", in.Name))
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	if cl.changes != nil {
		cl.changes <- config
	}
}

func (cl *Loader) set(config Config) {
	cl.Set("name", config.Name)
	cl.Set("occupation", config.Occupation)
	cl.Set("github_username", config.GitHubUsername)
	cl.Set("photo_description", config.PhotoDescription)
	cl.Set("portfolio", config.Portfolio)
	cl.Set("portfolio_subtitle", config.PortfolioSubtitle)
	cl.Set("browser", config.Browser)
	cl.Set("mouse", config.Mouse)
	cl.Set("fps", config.FPS)
	cl.Set("log_level", config.LogLevel)
	cl.Set("debug", config.Debug)
}

// WriteAs writes the config to a new file at path. Existing files are not overwritten.
func (cl *Loader) WriteAs(config Config, path string) error {
	cl.set(config)

	if err := cl.SafeWriteConfigAs(path); err != nil {
		return errors.Join(err, errConfigWrite)
	}

	return nil
}

// Read loads the config file if one exists. A missing config file is not an error, the
// defaults are used instead.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}
