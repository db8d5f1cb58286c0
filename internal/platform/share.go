package platform

import (
	"errors"
	"fmt"
)

// ErrShareUnsupported is returned when the platform has no native share sheet
var ErrShareUnsupported = errors.New("native share is not available on this platform")

// Android share intent parameters
const (
	ShareAction    = "android.intent.action.SEND"
	ShareExtraText = "android.intent.extra.TEXT"
	ShareMIMEType  = "text/plain"
)

// CanShare reports whether a native share sheet can be opened
func CanShare() bool {
	return IsAndroid()
}

// ShareText hands text to the platform share sheet. An error means the
// sheet could not be shown or the user backed out of it.
func ShareText(text string) error {
	if !CanShare() {
		return ErrShareUnsupported
	}

	if err := execCommand(AndroidAMTool, shareArgs(text)...).Run(); err != nil {
		return fmt.Errorf("share: %w", err)
	}
	return nil
}

// shareArgs builds the `am start` arguments for a plain-text share
func shareArgs(text string) []string {
	return []string{
		"start",
		"-a", ShareAction,
		"-t", ShareMIMEType,
		"--es", ShareExtraText, text,
	}
}
