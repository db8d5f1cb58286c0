package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/ytget/prosody-desktop/internal/analysis"
	prosodycli "github.com/ytget/prosody-desktop/internal/cli"
	"github.com/ytget/prosody-desktop/internal/config"
	"github.com/ytget/prosody-desktop/internal/platform"
	"github.com/ytget/prosody-desktop/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.prosody"
	AppName = "Prosody"
)

func main() {
	cliApp := &cli.App{
		Name:    "prosody",
		Usage:   "desktop client for prosody analysis",
		Version: version,
		Flags:   prosodycli.CommonFlags(),
		Action:  run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal("prosody failed", "err", err)
	}
}

func run(c *cli.Context) error {
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp)
	session, err := prosodycli.NewSession(c, settings, AppName)
	if err != nil {
		return err
	}

	log.Info("starting", "version", version, "backend", session.BackendURL,
		"language", session.Localization.GetCurrentLanguage())

	if err := platform.CreateDirectoryIfNotExists(settings.GetAudioDirectory()); err != nil {
		log.Warn("failed to ensure audio dir", "err", err)
	}

	window := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	window.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	client := analysis.NewClient(nil, session.BackendURL)
	ui.NewRootUI(window, myApp, client, settings, session.Localization, platform.NewPlaylistExpander())

	window.ShowAndRun()
	return nil
}
