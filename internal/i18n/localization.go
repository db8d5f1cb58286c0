package i18n

import (
	"fmt"
	"sync"
)

// Language codes
const (
	LangSystem  = "system"
	LangEnglish = "en"
	LangFrench  = "fr"
)

// Localization manages UI text translations
type Localization struct {
	mu              sync.RWMutex
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyTargetsHeading    = "targets_heading"
	KeyURLPlaceholder    = "url_placeholder"
	KeyMinuteLabel       = "minute_label"
	KeyAddRow            = "add_row"
	KeyRemoveRow         = "remove_row"
	KeyImportPlaylist    = "import_playlist"
	KeyPlaylistURL       = "playlist_url"
	KeyPlaylistImported  = "playlist_imported"
	KeyPlaylistFailed    = "playlist_failed"
	KeySubmitURLs        = "submit_urls"
	KeyUploadHeading     = "upload_heading"
	KeyAddFile           = "add_file"
	KeyNoFileChosen      = "no_file_chosen"
	KeySubmitUpload      = "submit_upload"
	KeyAnalyzing         = "analyzing"
	KeyNoTargets         = "no_targets"
	KeyNoFiles           = "no_files"
	KeyAnalysisFailed    = "analysis_failed"
	KeyResultsHeading    = "results_heading"
	KeySegmentFormat     = "segment_format"
	KeyMelody            = "melody"
	KeyFrequency         = "frequency"
	KeyOverall           = "overall"
	KeyShareTitle        = "share_title"
	KeyShare             = "share"
	KeyPlay              = "play"
	KeySaveAudio         = "save_audio"
	KeyShareCancelled    = "share_cancelled"
	KeyCopied            = "copied"
	KeyCopyFailed        = "copy_failed"
	KeyAudioSaved        = "audio_saved"
	KeyAudioSaveFailed   = "audio_save_failed"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyBackendURL        = "backend_url"
	KeyDefaultMinute     = "default_minute"
	KeyAudioDirectory    = "audio_directory"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyInvalidBackendURL = "invalid_backend_url"
	KeyAutoReveal        = "auto_reveal"
	KeyPlayFailed        = "play_failed"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == LangSystem || lang == "" {
		lang = LangEnglish
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[LangEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key used as a format string
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LangEnglish: "English",
		LangFrench:  "Français",
	}
}

// Override replaces texts of a language with deployment-supplied strings.
// Unknown languages are ignored.
func (l *Localization) Override(lang string, texts map[string]string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	table, exists := l.texts[lang]
	if !exists {
		return
	}
	for key, text := range texts {
		table[key] = text
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts[LangEnglish] = map[string]string{
		KeyAppTitle:          "Prosody",
		KeyTargetsHeading:    "Links to analyze",
		KeyURLPlaceholder:    "https://www.youtube.com/watch?v=...",
		KeyMinuteLabel:       "Start minute",
		KeyAddRow:            "Add link",
		KeyRemoveRow:         "Remove",
		KeyImportPlaylist:    "Import playlist",
		KeyPlaylistURL:       "Playlist URL",
		KeyPlaylistImported:  "%d links added from playlist",
		KeyPlaylistFailed:    "Playlist import failed",
		KeySubmitURLs:        "Analyze prosody",
		KeyUploadHeading:     "Or upload audio files",
		KeyAddFile:           "Add file",
		KeyNoFileChosen:      "No file chosen",
		KeySubmitUpload:      "Analyze MP3",
		KeyAnalyzing:         "Analyzing...",
		KeyNoTargets:         "Add at least one link.",
		KeyNoFiles:           "Choose at least one audio file.",
		KeyAnalysisFailed:    "Analysis error.",
		KeyResultsHeading:    "Results",
		KeySegmentFormat:     "Analyzed segment: %d → %d min",
		KeyMelody:            "Melody",
		KeyFrequency:         "Frequency",
		KeyOverall:           "Overall prosody",
		KeyShareTitle:        "Prosody results",
		KeyShare:             "Share",
		KeyPlay:              "Listen",
		KeySaveAudio:         "Save",
		KeyShareCancelled:    "Share cancelled.",
		KeyCopied:            "Result copied to clipboard.",
		KeyCopyFailed:        "Unable to copy result.",
		KeyAudioSaved:        "Segment saved",
		KeyAudioSaveFailed:   "Unable to save segment",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyBackendURL:        "Backend URL",
		KeyDefaultMinute:     "Default start minute",
		KeyAudioDirectory:    "Audio Directory",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyInvalidBackendURL: "Backend URL must start with http:// or https://",
		KeyAutoReveal:        "Show saved segments in file manager",
		KeyPlayFailed:        "Unable to open audio",
	}

	// French texts
	l.texts[LangFrench] = map[string]string{
		KeyAppTitle:          "Prosodie",
		KeyTargetsHeading:    "Liens à analyser",
		KeyURLPlaceholder:    "https://www.youtube.com/watch?v=...",
		KeyMinuteLabel:       "Minute de départ",
		KeyAddRow:            "Ajouter un lien",
		KeyRemoveRow:         "Retirer",
		KeyImportPlaylist:    "Importer une playlist",
		KeyPlaylistURL:       "URL de la playlist",
		KeyPlaylistImported:  "%d liens ajoutés depuis la playlist",
		KeyPlaylistFailed:    "Échec de l'import de la playlist",
		KeySubmitURLs:        "Analyser la prosodie",
		KeyUploadHeading:     "Ou envoyer des fichiers audio",
		KeyAddFile:           "Ajouter un fichier",
		KeyNoFileChosen:      "Aucun fichier choisi",
		KeySubmitUpload:      "Analyser le MP3",
		KeyAnalyzing:         "Analyse en cours...",
		KeyNoTargets:         "Ajoutez au moins un lien.",
		KeyNoFiles:           "Choisissez au moins un fichier audio.",
		KeyAnalysisFailed:    "Erreur d'analyse.",
		KeyResultsHeading:    "Résultats",
		KeySegmentFormat:     "Segment analysé : %d → %d min",
		KeyMelody:            "Mélodie",
		KeyFrequency:         "Fréquence",
		KeyOverall:           "Prosodie globale",
		KeyShareTitle:        "Résultats de prosodie",
		KeyShare:             "Partager",
		KeyPlay:              "Écouter",
		KeySaveAudio:         "Enregistrer",
		KeyShareCancelled:    "Partage annulé.",
		KeyCopied:            "Résultat copié dans le presse-papiers.",
		KeyCopyFailed:        "Impossible de copier le résultat.",
		KeyAudioSaved:        "Segment enregistré",
		KeyAudioSaveFailed:   "Impossible d'enregistrer le segment",
		KeySettings:          "Paramètres",
		KeyFile:              "Fichier",
		KeyLanguage:          "Langue",
		KeyBackendURL:        "URL du serveur",
		KeyDefaultMinute:     "Minute de départ par défaut",
		KeyAudioDirectory:    "Dossier audio",
		KeySave:              "Enregistrer",
		KeyCancel:            "Annuler",
		KeyBrowse:            "Parcourir",
		KeySettingsSaved:     "Paramètres enregistrés !",
		KeyInvalidBackendURL: "L'URL du serveur doit commencer par http:// ou https://",
		KeyAutoReveal:        "Afficher les extraits enregistrés dans le gestionnaire de fichiers",
		KeyPlayFailed:        "Impossible d'ouvrir l'audio",
	}
}
