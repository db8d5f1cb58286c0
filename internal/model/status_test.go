package model

import "testing"

func TestSubmissionState_IsBusy(t *testing.T) {
	tests := []struct {
		state    SubmissionState
		expected bool
	}{
		{StateIdle, false},
		{StateValidating, true},
		{StateSubmitting, true},
		{StateSucceeded, false},
		{StateFailed, false},
	}

	for _, test := range tests {
		result := test.state.IsBusy()
		if result != test.expected {
			t.Errorf("SubmissionState(%s).IsBusy() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestSubmissionState_IsTerminal(t *testing.T) {
	tests := []struct {
		state    SubmissionState
		expected bool
	}{
		{StateIdle, false},
		{StateValidating, false},
		{StateSubmitting, false},
		{StateSucceeded, true},
		{StateFailed, true},
	}

	for _, test := range tests {
		result := test.state.IsTerminal()
		if result != test.expected {
			t.Errorf("SubmissionState(%s).IsTerminal() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestSubmissionState_String(t *testing.T) {
	state := StateSubmitting
	expected := "Submitting"
	result := state.String()

	if result != expected {
		t.Errorf("SubmissionState.String() = %s, expected %s", result, expected)
	}
}
