package model

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// DefaultStartMinute is the offset used when a row's minute field is empty or invalid
const DefaultStartMinute = 10

// Target is one analysis input: a source URL and the minute to start at
type Target struct {
	URL         string `json:"url"`
	StartMinute int    `json:"start_minute"`
}

// TargetInput is the raw text of one editor row at read time
type TargetInput struct {
	URL         string
	StartMinute string
}

// AnalysisRequest is the JSON body of a URL batch
type AnalysisRequest struct {
	Items []Target `json:"items"`
}

// AudioFile is one local file selected for upload
type AudioFile struct {
	Name string
	Size int64 // bytes, 0 if unknown
	Open func() (io.ReadCloser, error)
}

// ParseStartMinute coerces a minute field to a number.
// Empty, non-numeric and non-finite values fall back to DefaultStartMinute;
// fractional values are truncated toward zero. No range is enforced.
func ParseStartMinute(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultStartMinute
	}

	if n, err := strconv.ParseInt(raw, 10, 32); err == nil {
		return int(n)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return DefaultStartMinute
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return DefaultStartMinute
	}
	return int(math.Trunc(f))
}

// CleanURL strips control whitespace pasted along with a link. It is meant
// for display and playlist links; the payload only trims.
func CleanURL(raw string) string {
	clean := strings.ReplaceAll(raw, "\n", "")
	clean = strings.ReplaceAll(clean, "\r", "")
	clean = strings.ReplaceAll(clean, "\t", " ")
	return strings.TrimSpace(clean)
}

// BuildRequest derives the request body from the rows in display order.
// Rows with an empty URL are skipped; order is kept because the backend
// answers in request order.
func BuildRequest(inputs []TargetInput) AnalysisRequest {
	items := make([]Target, 0, len(inputs))
	for _, in := range inputs {
		url := strings.TrimSpace(in.URL)
		if url == "" {
			continue
		}
		items = append(items, Target{
			URL:         url,
			StartMinute: ParseStartMinute(in.StartMinute),
		})
	}
	return AnalysisRequest{Items: items}
}
