package model

import (
	"encoding/json"
	"testing"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{87.5, "87.50%"},
		{100, "100.00%"},
		{0, "0.00%"},
		{150, "150.00%"},
		{-4.256, "-4.26%"},
		{33.333, "33.33%"},
	}

	for _, test := range tests {
		result := FormatScore(test.value)
		if result != test.expected {
			t.Errorf("FormatScore(%v) = %s, expected %s", test.value, result, test.expected)
		}
	}
}

func TestResult_Summary(t *testing.T) {
	r := Result{
		URL:            "https://a.example/song",
		MelodyScore:    87.5,
		FrequencyScore: 42,
		CombinedScore:  64.75,
	}

	labels := SummaryLabels{
		Title:     "Prosody results",
		Melody:    "Melody",
		Frequency: "Frequency",
		Overall:   "Overall prosody",
	}

	expected := "Prosody results\nhttps://a.example/song\nMelody: 87.50%\nFrequency: 42.00%\nOverall prosody: 64.75%"
	result := r.Summary(labels)
	if result != expected {
		t.Errorf("Summary() = %q, expected %q", result, expected)
	}
}

func TestAnalysisResponse_Decode(t *testing.T) {
	body := `{"results":[{"url":"https://a.example","start_minute":5,"end_minute":6,
		"melody_score":87.5,"frequency_score":10,"combined_score":48.75,"audio_url":"/audio/x/segment.mp3"}]}`

	var resp AnalysisResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if len(resp.Results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(resp.Results))
	}

	r := resp.Results[0]
	if r.StartMinute != 5 || r.EndMinute != 6 {
		t.Errorf("Expected segment 5-6, got %d-%d", r.StartMinute, r.EndMinute)
	}
	if r.AudioURL != "/audio/x/segment.mp3" {
		t.Errorf("Expected audio URL '/audio/x/segment.mp3', got '%s'", r.AudioURL)
	}
	if r.CombinedScore != 48.75 {
		t.Errorf("Expected combined score 48.75, got %v", r.CombinedScore)
	}
}
