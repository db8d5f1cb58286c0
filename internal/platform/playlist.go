package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ytget/prosody-desktop/internal/model"
	"github.com/ytget/ytdlp/v2"
)

// Timeout constants
const (
	DefaultParseTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// PlaylistEntry is one video of an expanded playlist
type PlaylistEntry struct {
	VideoID string
	Title   string
}

// PlaylistLister lists every entry of a playlist by ID
type PlaylistLister func(ctx context.Context, playlistID string) ([]PlaylistEntry, error)

// PlaylistExpander turns a playlist link into analysis targets, one per video
type PlaylistExpander struct {
	timeout time.Duration
	list    PlaylistLister
}

// NewPlaylistExpander creates an expander backed by ytdlp
func NewPlaylistExpander() *PlaylistExpander {
	return &PlaylistExpander{
		timeout: DefaultParseTimeout,
		list:    listWithYTDLP,
	}
}

// SetTimeout sets the timeout for expansion
func (p *PlaylistExpander) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// Expand resolves the playlist behind url and returns one target per video,
// each starting at startMinute.
func (p *PlaylistExpander) Expand(ctx context.Context, url string, startMinute int) ([]model.Target, error) {
	url = model.CleanURL(url)
	if !IsPlaylistURL(url) {
		return nil, fmt.Errorf("invalid playlist URL: %s", url)
	}

	playlistID := ExtractPlaylistID(url)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", url)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	entries, err := p.list(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	targets := make([]model.Target, 0, len(entries))
	for _, e := range entries {
		if e.VideoID == "" {
			continue
		}
		targets = append(targets, model.Target{
			URL:         fmt.Sprintf(YouTubeVideoURLTemplate, e.VideoID),
			StartMinute: startMinute,
		})
	}
	log.Debug("playlist expanded", "playlist", playlistID, "targets", len(targets))

	return targets, nil
}

// IsPlaylistURL checks if the URL carries a playlist parameter
func IsPlaylistURL(url string) bool {
	return strings.Contains(url, PlaylistParam)
}

// ExtractPlaylistID extracts the playlist ID from watch and playlist URLs
func ExtractPlaylistID(url string) string {
	_, rest, found := strings.Cut(url, PlaylistParam)
	if !found {
		return ""
	}
	id, _, _ := strings.Cut(rest, ParamSeparator)
	return id
}

func listWithYTDLP(ctx context.Context, playlistID string) ([]PlaylistEntry, error) {
	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}

	entries := make([]PlaylistEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, PlaylistEntry{VideoID: it.VideoID, Title: it.Title})
	}
	return entries, nil
}
