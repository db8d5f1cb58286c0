package headless

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/ytget/prosody-desktop/internal/i18n"
	"github.com/ytget/prosody-desktop/internal/model"
)

// IconAudio prefixes the audio link of a card
const IconAudio = "♪"

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1).
			MarginBottom(1)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	segmentStyle = lipgloss.NewStyle().Faint(true)
	overallStyle = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// Renderer prints result cards
type Renderer struct {
	out   io.Writer
	texts *i18n.Localization
	// resolve turns audio links into absolute URLs; nil prints them as received
	resolve func(string) string
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer, texts *i18n.Localization, resolve func(string) string) *Renderer {
	return &Renderer{out: out, texts: texts, resolve: resolve}
}

// Replace prints every result in order. A terminal has nothing to clear.
func (r *Renderer) Replace(results []model.Result) {
	for _, res := range results {
		fmt.Fprintln(r.out, r.Card(res))
	}
}

// Card renders one result
func (r *Renderer) Card(res model.Result) string {
	lines := []string{
		titleStyle.Render(res.GetDisplayTitle()),
		segmentStyle.Render(r.texts.Format(i18n.KeySegmentFormat, res.StartMinute, res.EndMinute)),
		fmt.Sprintf("%s: %s", r.texts.GetText(i18n.KeyMelody), model.FormatScore(res.MelodyScore)),
		fmt.Sprintf("%s: %s", r.texts.GetText(i18n.KeyFrequency), model.FormatScore(res.FrequencyScore)),
		overallStyle.Render(fmt.Sprintf("%s: %s", r.texts.GetText(i18n.KeyOverall), model.FormatScore(res.CombinedScore))),
	}
	if res.AudioURL != "" {
		audio := res.AudioURL
		if r.resolve != nil {
			audio = r.resolve(audio)
		}
		lines = append(lines, segmentStyle.Render(IconAudio+" "+audio))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

// Notifier prints notifications
type Notifier struct {
	out io.Writer
}

// NewNotifier creates a notifier writing to out
func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

// Notify prints message on its own line
func (n *Notifier) Notify(message string) {
	fmt.Fprintln(n.out, errorStyle.Render(message))
}

// Control reports the busy state through the logger
type Control struct {
	Form string
}

// SetBusy logs the start and end of a submission
func (c Control) SetBusy(busy bool) {
	if busy {
		log.Info("analyzing", "form", c.Form)
		return
	}
	log.Debug("ready", "form", c.Form)
}
