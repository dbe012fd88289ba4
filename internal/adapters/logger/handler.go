// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/kiln/internal/ui/output"
	"go.trai.ch/kiln/internal/ui/style"
)

// PrettyHandler is a slog.Handler writing one colored line per record.
// Warnings and errors are prefixed with an icon, attributes follow the
// message as key=value pairs.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string   // group qualifier for attributes added from now on
	attrs  []string // preformatted handler attributes
}

// NewPrettyHandler creates a new PrettyHandler writing to w. A nil w writes to stderr.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record as a single line.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	color := termenv.RGBColor(string(style.Slate))

	switch {
	case r.Level >= slog.LevelError:
		b.WriteString(style.Cross + " ")
		color = termenv.RGBColor(string(style.Red))
	case r.Level >= slog.LevelWarn:
		b.WriteString(style.Warning + " ")
		color = termenv.RGBColor(string(style.Yellow))
	}
	b.WriteString(r.Message)

	parts := h.attrs
	r.Attrs(func(attr slog.Attr) bool {
		parts = appendAttr(parts, h.prefix, attr)
		return true
	})
	for _, part := range parts {
		b.WriteString(" " + part)
	}

	_, err := h.out.WriteString(h.out.String(b.String()).Foreground(color).String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
// They keep the groups opened so far, not the ones opened later.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	formatted := make([]string, len(h.attrs), len(h.attrs)+len(attrs))
	copy(formatted, h.attrs)
	for _, attr := range attrs {
		formatted = appendAttr(formatted, h.prefix, attr)
	}

	clone := *h
	clone.attrs = formatted
	return &clone
}

// WithGroup returns a new Handler qualifying later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

// appendAttr formats attr as key=value pairs, flattening groups into dotted keys.
func appendAttr(parts []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return parts
	}
	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			parts = appendAttr(parts, prefix, member)
		}
		return parts
	}
	return append(parts, prefix+attr.Key+"="+attr.Value.String())
}
