package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/leighmacdonald/bizcard/internal/config"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "bizcard.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(body), 0o600))

	return configPath
}

func TestReadDefaults(t *testing.T) {
	conf, err := config.NewLoader(nil, writeConfig(t, "")).Read()
	require.NoError(t, err)
	require.Equal(t, "Justin Wehrman", conf.Name)
	require.Equal(t, "Senior Software Engineer", conf.Occupation)
	require.Equal(t, "WehrHaus", conf.GitHubUsername)
	require.Equal(t, "Justin Wehrman's Bio Picture", conf.PhotoDescription)
	require.Equal(t, "test", conf.PortfolioSubtitle)
	require.Equal(t, []string{"Project 1", "Project 2", "Project 3", "Project 4"}, conf.Items())
	require.Equal(t, "https://github.com/WehrHaus", conf.Profile().GitHubURL())
	require.True(t, conf.Browser)
	require.Equal(t, 30, conf.FPS)
	require.Equal(t, slog.LevelInfo, conf.Level())
}

func TestReadOverrides(t *testing.T) {
	const body = `name: Ada Lovelace
occupation: Analyst
github_username: ada
portfolio:
  - Engine
  - Notes
portfolio_subtitle: Go
browser: false
log_level: warn
`
	conf, err := config.NewLoader(nil, writeConfig(t, body)).Read()
	require.NoError(t, err)

	card := conf.Profile()
	require.Equal(t, "Ada Lovelace", card.Name)
	require.Equal(t, "Analyst", card.Occupation)
	require.Equal(t, "https://github.com/ada", card.GitHubURL())
	require.Equal(t, "Justin Wehrman's Bio Picture", card.Description)
	require.Equal(t, "Go", conf.PortfolioSubtitle)
	require.Equal(t, []string{"Engine", "Notes"}, conf.Items())
	require.False(t, conf.Browser)
	require.Equal(t, slog.LevelWarn, conf.Level())
}

func TestItemsIsCopy(t *testing.T) {
	conf := config.Config{Portfolio: []string{"Engine"}}
	items := conf.Items()
	items[0] = "changed"
	require.Equal(t, []string{"Engine"}, conf.Items())

	defaults := config.Config{}.Items()
	defaults[0] = "changed"
	require.Equal(t, "Project 1", config.Config{}.Items()[0])
}

func TestReadInvalid(t *testing.T) {
	_, err := config.NewLoader(nil, writeConfig(t, "name: [unclosed")).Read()
	require.Error(t, err)
}

func TestWriteAs(t *testing.T) {
	conf, err := config.NewLoader(nil, writeConfig(t, "")).Read()
	require.NoError(t, err)

	conf.Name = "Grace Hopper"
	conf.Portfolio = []string{"COBOL"}

	outPath := filepath.Join(t.TempDir(), "new.yaml")
	require.NoError(t, config.NewLoader(nil, outPath).WriteAs(conf, outPath))
	require.Error(t, config.NewLoader(nil, outPath).WriteAs(conf, outPath), "must not overwrite")

	loaded, errRead := config.NewLoader(nil, outPath).Read()
	require.NoError(t, errRead)
	require.Equal(t, "Grace Hopper", loaded.Name)
	require.Equal(t, []string{"COBOL"}, loaded.Items())
}

func TestLevel(t *testing.T) {
	cases := []struct {
		conf  config.Config
		level slog.Level
	}{
		{conf: config.Config{}, level: slog.LevelInfo},
		{conf: config.Config{LogLevel: "DEBUG"}, level: slog.LevelDebug},
		{conf: config.Config{LogLevel: "error"}, level: slog.LevelError},
		{conf: config.Config{LogLevel: "error", Debug: true}, level: slog.LevelDebug},
	}

	for _, testCase := range cases {
		require.Equal(t, testCase.level, testCase.conf.Level())
	}
}
