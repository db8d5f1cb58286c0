package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/ytget/prosody-desktop/internal/i18n"
	"github.com/ytget/prosody-desktop/internal/model"
	"github.com/ytget/prosody-desktop/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyBackendURL         = "backend_url"
	KeyLanguage           = "app_language"
	KeyDefaultStartMinute = "default_start_minute"
	KeyAudioDir           = "audio_directory"
	KeyAutoRevealSaved    = "auto_reveal_saved_audio"
)

// Default values
const (
	DefaultBackendURL      = "http://127.0.0.1:8000"
	DefaultLanguage        = i18n.LangSystem
	DefaultAutoRevealSaved = true
	AudioSubdir            = "Prosody"
)

// ErrInvalidBackendURL is returned for backend addresses that are not absolute http(s) URLs
var ErrInvalidBackendURL = errors.New("backend URL must be an absolute http or https URL")

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBackendURL returns the configured backend, or the local default
func (s *Settings) GetBackendURL() string {
	raw := s.app.Preferences().String(KeyBackendURL)
	if raw == "" {
		return DefaultBackendURL
	}
	return raw
}

// SetBackendURL validates and stores the backend address
func (s *Settings) SetBackendURL(raw string) error {
	normalized, err := NormalizeBackendURL(raw)
	if err != nil {
		return err
	}
	s.app.Preferences().SetString(KeyBackendURL, normalized)
	return nil
}

// NormalizeBackendURL trims the address and drops a trailing slash
func NormalizeBackendURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBackendURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", ErrInvalidBackendURL
	}
	return strings.TrimRight(raw, "/"), nil
}

// GetDefaultStartMinute returns the offset seeded into new rows
func (s *Settings) GetDefaultStartMinute() int {
	return s.app.Preferences().IntWithFallback(KeyDefaultStartMinute, model.DefaultStartMinute)
}

// SetDefaultStartMinute stores the offset seeded into new rows as is,
// negative values included
func (s *Settings) SetDefaultStartMinute(minute int) {
	s.app.Preferences().SetInt(KeyDefaultStartMinute, minute)
}

// GetAudioDirectory returns the folder saved segments are written to
func (s *Settings) GetAudioDirectory() string {
	dir := s.app.Preferences().String(KeyAudioDir)
	if dir == "" {
		downloads, err := platform.GetHomeDownloadsDir()
		if err != nil {
			downloads = os.TempDir()
		}
		dir = filepath.Join(downloads, AudioSubdir)
		s.SetAudioDirectory(dir)
	}
	return dir
}

// SetAudioDirectory sets the folder saved segments are written to
func (s *Settings) SetAudioDirectory(dir string) {
	s.app.Preferences().SetString(KeyAudioDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealSaved returns whether saved segments are revealed in the file manager
func (s *Settings) GetAutoRevealSaved() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealSaved, DefaultAutoRevealSaved)
}

// SetAutoRevealSaved sets whether saved segments are revealed in the file manager
func (s *Settings) SetAutoRevealSaved(reveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealSaved, reveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		i18n.LangSystem:  "System Default",
		i18n.LangEnglish: "English",
		i18n.LangFrench:  "Français",
	}
}
