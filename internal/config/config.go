package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/leighmacdonald/bizcard/internal/panel"
	"github.com/leighmacdonald/bizcard/internal/profile"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
)

const (
	DefaultPortfolioSubtitle = "test"

	ConfigDirName     = "bizcard"
	DefaultConfigName = "bizcard"
	DefaultLogName    = "bizcard.log"
	EnvPrefix         = "bizcard"
)

type Config struct {
	Name       string `mapstructure:"name"`
	Occupation string `mapstructure:"occupation"`
	// GitHubUsername is appended to https://github.com/ to build the profile link.
	GitHubUsername   string   `mapstructure:"github_username"`
	PhotoDescription string   `mapstructure:"photo_description"`
	Portfolio        []string `mapstructure:"portfolio"`
	// PortfolioSubtitle is the secondary line shown under every portfolio item.
	PortfolioSubtitle string `mapstructure:"portfolio_subtitle"`
	// Browser controls if links are opened in the system browser or just logged.
	Browser  bool   `mapstructure:"browser"`
	Mouse    bool   `mapstructure:"mouse"`
	FPS      int    `mapstructure:"fps"`
	LogLevel string `mapstructure:"log_level"`
	Debug    bool   `mapstructure:"debug"`
}

// Profile returns the card identity described by the config.
func (c Config) Profile() profile.Profile {
	return profile.Profile{
		Name:        c.Name,
		Occupation:  c.Occupation,
		Username:    c.GitHubUsername,
		Description: c.PhotoDescription,
	}
}

// Items returns the configured portfolio, falling back to the built in list.
func (c Config) Items() []string {
	if len(c.Portfolio) == 0 {
		return panel.DefaultItems()
	}

	return slices.Clone(c.Portfolio)
}

// Level maps the log_level value onto a slog.Level. Debug mode always logs at debug.
func (c Config) Level() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
