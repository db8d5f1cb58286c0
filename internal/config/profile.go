package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ytget/prosody-desktop/internal/i18n"
	"gopkg.in/yaml.v3"
)

// Profile is a per-deployment override file:
//
//	locale: fr
//	backend_url: https://prosody.example.org
//	strings:
//	  fr:
//	    submit_urls: Lancer l'analyse
type Profile struct {
	Locale     string                       `yaml:"locale"`
	BackendURL string                       `yaml:"backend_url"`
	Strings    map[string]map[string]string `yaml:"strings"`
}

// LoadProfile reads a YAML profile. An empty path yields an empty profile.
func LoadProfile(path string) (*Profile, error) {
	if path == "" {
		return &Profile{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("config: parse profile %s: %w", path, err)
	}

	if p.BackendURL != "" {
		normalized, err := NormalizeBackendURL(p.BackendURL)
		if err != nil {
			return nil, fmt.Errorf("config: profile %s: %w", path, err)
		}
		p.BackendURL = normalized
	}

	log.Debug("profile loaded", "path", path, "locale", p.Locale, "backend", p.BackendURL)
	return &p, nil
}

// Apply installs the profile's string overrides
func (p *Profile) Apply(l *i18n.Localization) {
	if p == nil {
		return
	}
	for lang, texts := range p.Strings {
		l.Override(lang, texts)
	}
}

// Resolve returns the first non-blank value, in priority order
func Resolve(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// ResolveBackendURL applies flag > profile > preference > default
func ResolveBackendURL(flagValue string, profile *Profile, settings *Settings) (string, error) {
	var profileValue, prefValue string
	if profile != nil {
		profileValue = profile.BackendURL
	}
	if settings != nil {
		prefValue = settings.GetBackendURL()
	}

	raw := Resolve(flagValue, profileValue, prefValue, DefaultBackendURL)
	backend, err := NormalizeBackendURL(raw)
	if err != nil {
		return "", errors.Join(fmt.Errorf("config: backend %q", raw), err)
	}
	return backend, nil
}
