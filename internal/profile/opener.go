package profile

import (
	"errors"
	"log/slog"

	"github.com/cli/browser"
)

var errOpen = errors.New("failed to open link")

// Opener hands a URL off to something outside the app.
type Opener interface {
	Open(url string) error
}

// BrowserOpener opens links using the system default web browser.
type BrowserOpener struct{}

func (BrowserOpener) Open(url string) error {
	slog.Debug("Opening link", slog.String("url", url))
	if err := browser.OpenURL(url); err != nil {
		return errors.Join(err, errOpen)
	}

	return nil
}

// LogOpener only logs the link. Useful on headless hosts.
type LogOpener struct{}

func (LogOpener) Open(url string) error {
	slog.Info("Link selected", slog.String("url", url))

	return nil
}

// NewOpener returns the Opener to use for the given mode.
func NewOpener(useBrowser bool) Opener {
	if useBrowser {
		return BrowserOpener{}
	}

	return LogOpener{}
}
