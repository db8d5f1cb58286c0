package headless

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ytget/prosody-desktop/internal/analysis"
	"github.com/ytget/prosody-desktop/internal/model"
)

// MinuteSeparator splits an optional start minute off a link argument
const MinuteSeparator = "@"

// ParseTargetArg reads "URL" or "URL@MINUTE". Without a minute suffix the
// default minute text is used.
func ParseTargetArg(arg, defaultMinute string) model.TargetInput {
	if i := strings.LastIndex(arg, MinuteSeparator); i > 0 {
		suffix := arg[i+1:]
		if _, err := strconv.ParseFloat(suffix, 64); err == nil {
			return model.TargetInput{URL: arg[:i], StartMinute: suffix}
		}
	}
	return model.TargetInput{URL: arg, StartMinute: defaultMinute}
}

// ArgsSource is a link batch taken from command-line arguments
type ArgsSource struct {
	Args          []string
	DefaultMinute string
}

// Collect builds the link batch
func (s ArgsSource) Collect() (analysis.Batch, error) {
	inputs := make([]model.TargetInput, 0, len(s.Args))
	for _, arg := range s.Args {
		inputs = append(inputs, ParseTargetArg(arg, s.DefaultMinute))
	}
	return analysis.NewURLBatch(inputs), nil
}

// FileSource is an upload batch of local paths
type FileSource struct {
	Paths       []string
	StartMinute string
}

// Collect checks every path and builds the upload batch
func (s FileSource) Collect() (analysis.Batch, error) {
	files := make([]model.AudioFile, 0, len(s.Paths))
	for _, path := range s.Paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("headless: %w", err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("headless: %s is a directory", path)
		}

		p := path
		files = append(files, model.AudioFile{
			Name: filepath.Base(p),
			Size: info.Size(),
			Open: func() (io.ReadCloser, error) { return os.Open(p) },
		})
	}
	return analysis.NewUploadBatch(files, s.StartMinute), nil
}
