package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/ytget/prosody-desktop/internal/config"
)

// Environment variables
const (
	EnvBackendURL = "PROSODY_BACKEND_URL"
	EnvProfile    = "PROSODY_PROFILE"
	EnvLanguage   = "PROSODY_LANG"
	EnvLogLevel   = "PROSODY_LOG_LEVEL"
)

// Flag names
const (
	FlagBackend  = "backend"
	FlagProfile  = "profile"
	FlagLanguage = "lang"
	FlagLogLevel = "log-level"
	FlagMinute   = "minute"
)

// CommonFlags are accepted by both binaries
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagBackend,
			Usage:   "analysis backend base URL",
			EnvVars: []string{EnvBackendURL},
		},
		&cli.StringFlag{
			Name:    FlagProfile,
			Usage:   "YAML deployment profile (locale, backend_url, strings)",
			EnvVars: []string{EnvProfile},
		},
		&cli.StringFlag{
			Name:    FlagLanguage,
			Usage:   "interface language (en, fr)",
			EnvVars: []string{EnvLanguage},
		},
		&cli.StringFlag{
			Name:    FlagLogLevel,
			Usage:   "log level (debug, info, warn, error)",
			Value:   config.DefaultLogLevel,
			EnvVars: []string{EnvLogLevel},
		},
	}
}

// MinuteFlag is the default start minute of a headless command
func MinuteFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    FlagMinute,
		Aliases: []string{"m"},
		Usage:   "start minute used when an argument does not carry one",
		Value:   "10",
	}
}
