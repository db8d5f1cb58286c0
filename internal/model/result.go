package model

import (
	"fmt"
	"strings"
)

// ScoreFormat renders a score with two decimals and a percent sign
const ScoreFormat = "%.2f%%"

// Result is one analysed segment as returned by the backend
type Result struct {
	URL            string  `json:"url"`
	StartMinute    int     `json:"start_minute"`
	EndMinute      int     `json:"end_minute"`
	MelodyScore    float64 `json:"melody_score"`
	FrequencyScore float64 `json:"frequency_score"`
	CombinedScore  float64 `json:"combined_score"`
	AudioURL       string  `json:"audio_url"`
}

// AnalysisResponse is the success body of both analyze endpoints
type AnalysisResponse struct {
	Results []Result `json:"results"`
}

// SummaryLabels are the display strings used in a share summary
type SummaryLabels struct {
	Title     string
	Melody    string
	Frequency string
	Overall   string
}

// FormatScore formats a score for display. Values are not clamped.
func FormatScore(value float64) string {
	return fmt.Sprintf(ScoreFormat, value)
}

// Summary returns the multi-line text exported by the share action
func (r Result) Summary(labels SummaryLabels) string {
	var b strings.Builder
	b.WriteString(labels.Title)
	b.WriteString("\n")
	b.WriteString(r.URL)
	b.WriteString(fmt.Sprintf("\n%s: %s", labels.Melody, FormatScore(r.MelodyScore)))
	b.WriteString(fmt.Sprintf("\n%s: %s", labels.Frequency, FormatScore(r.FrequencyScore)))
	b.WriteString(fmt.Sprintf("\n%s: %s", labels.Overall, FormatScore(r.CombinedScore)))
	return b.String()
}

// GetDisplayTitle returns the source URL with pasted whitespace removed
func (r Result) GetDisplayTitle() string {
	return CleanURL(r.URL)
}
