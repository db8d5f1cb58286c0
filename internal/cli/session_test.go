package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/ytget/prosody-desktop/internal/config"
	"github.com/ytget/prosody-desktop/internal/i18n"
)

func runSession(t *testing.T, args ...string) (*Session, error) {
	t.Helper()
	previous := log.Default()
	t.Cleanup(func() { log.SetDefault(previous) })

	var session *Session
	var sessionErr error
	app := &cli.App{
		Name:  "test",
		Flags: CommonFlags(),
		Action: func(c *cli.Context) error {
			session, sessionErr = NewSession(c, nil, "test")
			return nil
		},
	}
	if err := app.Run(append([]string{"test"}, args...)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return session, sessionErr
}

func TestNewSession_Defaults(t *testing.T) {
	s, err := runSession(t)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if s.BackendURL != config.DefaultBackendURL {
		t.Errorf("BackendURL = %q, expected %q", s.BackendURL, config.DefaultBackendURL)
	}
	if s.Localization.GetCurrentLanguage() != i18n.LangEnglish {
		t.Errorf("Language = %q", s.Localization.GetCurrentLanguage())
	}
}

func TestNewSession_FlagsOverrideProfile(t *testing.T) {
	profile := filepath.Join(t.TempDir(), "profile.yaml")
	content := "locale: fr\nbackend_url: https://profile.example.org\nstrings:\n  fr:\n    submit_urls: Go\n"
	if err := os.WriteFile(profile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := runSession(t, "--profile", profile)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if s.BackendURL != "https://profile.example.org" {
		t.Errorf("BackendURL = %q", s.BackendURL)
	}
	if s.Localization.GetText(i18n.KeySubmitURLs) != "Go" {
		t.Errorf("Profile strings should apply, got %q", s.Localization.GetText(i18n.KeySubmitURLs))
	}

	s, err = runSession(t, "--profile", profile, "--backend", "https://flag.example.org/", "--lang", "en")
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if s.BackendURL != "https://flag.example.org" {
		t.Errorf("BackendURL = %q", s.BackendURL)
	}
	if s.Localization.GetCurrentLanguage() != i18n.LangEnglish {
		t.Errorf("Flag language should win, got %q", s.Localization.GetCurrentLanguage())
	}
}

func TestNewSession_Env(t *testing.T) {
	t.Setenv(EnvBackendURL, "https://env.example.org")

	s, err := runSession(t)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if s.BackendURL != "https://env.example.org" {
		t.Errorf("BackendURL = %q", s.BackendURL)
	}
}

func TestNewSession_Errors(t *testing.T) {
	if _, err := runSession(t, "--log-level", "loud"); err == nil {
		t.Error("Expected error for unknown log level")
	}
	if _, err := runSession(t, "--backend", "nope"); err == nil {
		t.Error("Expected error for invalid backend")
	}
	if _, err := runSession(t, "--profile", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing profile")
	}
}
