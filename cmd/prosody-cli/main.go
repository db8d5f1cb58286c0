package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/ytget/prosody-desktop/internal/analysis"
	prosodycli "github.com/ytget/prosody-desktop/internal/cli"
	"github.com/ytget/prosody-desktop/internal/headless"
	"github.com/ytget/prosody-desktop/internal/submit"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "prosody-cli",
		Usage:   "submit links or audio files for prosody analysis",
		Version: version,
		Flags:   prosodycli.CommonFlags(),
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "analyze remote links",
				ArgsUsage: "URL[@MINUTE]...",
				Flags:     []cli.Flag{prosodycli.MinuteFlag()},
				Action: func(c *cli.Context) error {
					return runSubmission(c, "links",
						headless.ArgsSource{Args: c.Args().Slice(), DefaultMinute: c.String(prosodycli.FlagMinute)})
				},
			},
			{
				Name:      "upload",
				Usage:     "analyze local audio files",
				ArgsUsage: "FILE...",
				Flags:     []cli.Flag{prosodycli.MinuteFlag()},
				Action: func(c *cli.Context) error {
					return runSubmission(c, "upload",
						headless.FileSource{Paths: c.Args().Slice(), StartMinute: c.String(prosodycli.FlagMinute)})
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error("prosody-cli failed", "err", err)
		os.Exit(1)
	}
}

func runSubmission(c *cli.Context, form string, source submit.Source) error {
	session, err := prosodycli.NewSession(c, nil, "prosody-cli")
	if err != nil {
		return err
	}

	client := analysis.NewClient(nil, session.BackendURL)
	ctrl := submit.NewController(form,
		source,
		client,
		headless.Control{Form: form},
		headless.NewNotifier(os.Stderr),
		headless.NewRenderer(os.Stdout, session.Localization, client.ResolveURL),
		session.Localization,
	)

	// The notifier already printed the reason
	if err := ctrl.Submit(context.Background()); err != nil {
		return cli.Exit("", 1)
	}
	return nil
}
