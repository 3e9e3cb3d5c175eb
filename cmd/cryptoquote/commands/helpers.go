package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vdparikh/cryptoquote/internal/config"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// ReadText returns args joined by spaces, or the whole of r when args is
// empty, so quotes can be piped in.
func ReadText(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if r == nil {
		return "", nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read quote: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// parseFormat normalizes an output format, defaulting to text.
func parseFormat(format string) (string, error) {
	switch strings.ToLower(format) {
	case "", config.FormatText:
		return config.FormatText, nil
	case config.FormatJSON:
		return config.FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}
