package model

// SubmissionState represents where a form's submission currently is
type SubmissionState string

const (
	// StateIdle means no submission is running and the form accepts input
	StateIdle SubmissionState = "Idle"

	// StateValidating means the batch is being collected and checked
	StateValidating SubmissionState = "Validating"

	// StateSubmitting means the request is on the wire
	StateSubmitting SubmissionState = "Submitting"

	// StateSucceeded means results were received and rendered
	StateSucceeded SubmissionState = "Succeeded"

	// StateFailed means the attempt ended with a notification
	StateFailed SubmissionState = "Failed"
)

// String returns the string representation of SubmissionState
func (s SubmissionState) String() string {
	return string(s)
}

// IsBusy returns true while the submit control must stay disabled
func (s SubmissionState) IsBusy() bool {
	return s == StateValidating || s == StateSubmitting
}

// IsTerminal returns true for the outcome states of one attempt
func (s SubmissionState) IsTerminal() bool {
	return s == StateSucceeded || s == StateFailed
}
