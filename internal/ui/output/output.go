// Package output builds termenv outputs for kiln's diagnostic streams.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// plain reports whether the environment asks for uncolored output.
func plain() bool {
	return os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb"
}

// Profile returns the detected color profile of the terminal.
// NO_COLOR or TERM=dumb force Ascii.
func Profile() termenv.Profile {
	if plain() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ProfileANSI returns the basic 16-color profile used for progress lines,
// which usually end up in CI logs. NO_COLOR or TERM=dumb force Ascii.
func ProfileANSI() termenv.Profile {
	if plain() {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New creates an output on w using the detected profile.
// A nil w writes to stderr.
func New(w io.Writer) *termenv.Output {
	return NewWithProfile(w, Profile)
}

// NewWithProfile creates an output on w using the profile returned by profileFn.
// A nil w writes to stderr.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(profileFn()), termenv.WithTTY(true))
}
