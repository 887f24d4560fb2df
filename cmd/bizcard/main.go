package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/bizcard/internal/config"
	"github.com/leighmacdonald/bizcard/internal/panel"
	"github.com/leighmacdonald/bizcard/internal/profile"
	"github.com/leighmacdonald/bizcard/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	noBrowser      bool
	rootCmd        = &cobra.Command{
		Use:   "bizcard",
		Short: "Terminal business card",
		Long:  `bizcard - Your profile, GitHub link and portfolio as a terminal business card`,
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	initCmd = &cobra.Command{
		Use:               "init [path]",
		Short:             "Write a default config file",
		Long:              "Write a config file populated with the default values. Existing files are never overwritten.",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              initConfig,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about bizcard",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path")
	rootCmd.Flags().BoolVar(&noBrowser, "no-browser", false, "Log links instead of opening them")
	rootCmd.AddCommand(initCmd, versionCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("bizcard - Terminal Business Card\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)        //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)         //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)           //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)    //nolint:forbidigo
}

func initConfig(cmd *cobra.Command, args []string) error {
	outPath := config.Path(config.DefaultConfigName + ".yaml")
	if len(args) == 1 {
		outPath = args[0]
	}

	loader := config.NewLoader(nil, cfgFile)
	defaults, errRead := loader.Read()
	if errRead != nil {
		return errors.Join(errRead, errApp)
	}

	if err := loader.WriteAs(defaults, outPath); err != nil {
		return errors.Join(err, errApp)
	}

	cmd.Printf("Wrote config to %s\n", outPath)

	return nil
}

// run is the main entry point of bizcard.
func run(cmd *cobra.Command, _ []string) error {
	// If PROFILE is set, it will be used as the output file path for the profiler.
	if len(os.Getenv("PROFILE")) > 0 {
		f, err := os.Create(os.Getenv("PROFILE"))
		if err != nil {
			return errors.Join(err, errApp)
		}

		if errStart := pprof.StartCPUProfile(f); errStart != nil {
			return errors.Join(errStart, errApp)
		}
		defer pprof.StopCPUProfile()
	}

	// Make sure our config home exists, the log file lives there too.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)
	configLoader := config.NewLoader(configUpdates, cfgFile)
	userConfig, errConfig := configLoader.Read()
	if errConfig != nil {
		return errors.Join(errApp, errConfig)
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, userConfig.Level())
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting bizcard", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()), slog.String("config", configLoader.Path()))

	if configLoader.Path() != "" {
		configLoader.Watch()
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// The panel state belongs to this one screen and is dropped when it closes.
	state := panel.New(userConfig.Items()...)
	opener := profile.NewOpener(userConfig.Browser && !noBrowser)
	app := NewApp(state, configUpdates)
	app.ui = ui.New(ctx, userConfig, state, opener, BuildVersion, configLoader.Path())

	tasks, taskCtx := errgroup.WithContext(ctx)
	tasks.Go(func() error {
		defer cancel()

		return app.ui.Run()
	})
	tasks.Go(func() error {
		app.Start(taskCtx)

		return nil
	})

	if err := tasks.Wait(); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}
