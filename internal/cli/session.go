package cli

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ytget/prosody-desktop/internal/config"
	"github.com/ytget/prosody-desktop/internal/i18n"
)

// Session is the resolved configuration of one run
type Session struct {
	Profile      *config.Profile
	Localization *i18n.Localization
	BackendURL   string
}

// NewSession configures logging, loads the profile and resolves language and
// backend. settings may be nil when no preferences store exists.
func NewSession(c *cli.Context, settings *config.Settings, logPrefix string) (*Session, error) {
	if err := config.ConfigureLogging(os.Stderr, c.String(FlagLogLevel), logPrefix); err != nil {
		return nil, err
	}

	profile, err := config.LoadProfile(c.String(FlagProfile))
	if err != nil {
		return nil, err
	}

	var prefLanguage string
	if settings != nil {
		prefLanguage = settings.GetLanguage()
	}

	localization := i18n.NewLocalization()
	profile.Apply(localization)
	localization.SetLanguage(config.Resolve(c.String(FlagLanguage), profile.Locale, prefLanguage))

	backend, err := config.ResolveBackendURL(c.String(FlagBackend), profile, settings)
	if err != nil {
		return nil, err
	}

	return &Session{
		Profile:      profile,
		Localization: localization,
		BackendURL:   backend,
	}, nil
}
