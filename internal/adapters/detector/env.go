// Package detector inspects the process environment to pick an output format.
package detector

import (
	"os"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// LogFormat is the format diagnostics are written in.
type LogFormat int

const (
	// FormatPretty writes colored, human-readable lines.
	FormatPretty LogFormat = iota
	// FormatJSON writes one JSON object per record.
	FormatJSON
)

// String returns the flag value selecting f.
func (f LogFormat) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "pretty"
}

// DetectEnvironment returns the recommended log format.
// JSON is chosen when stderr is not a terminal and a CI environment variable is set.
func DetectEnvironment() LogFormat {
	return detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) LogFormat {
	isCI := ci == "true" || ci == "1"
	if !isTTY && isCI {
		return FormatJSON
	}
	return FormatPretty
}

// ResolveFormat applies the user's --log-format flag to the detected format.
// flag is one of "auto", "pretty", "json" or empty.
func ResolveFormat(autoDetected LogFormat, flag string) (LogFormat, error) {
	switch flag {
	case "pretty":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	case "auto", "":
		return autoDetected, nil
	default:
		return autoDetected, zerr.With(domain.ErrUnknownLogFormat, "log_format", flag)
	}
}
