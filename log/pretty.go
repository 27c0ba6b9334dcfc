package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by prettyHandler. Styles are bound to a
// renderer for the output writer, so color is dropped automatically when the
// writer is not a terminal.
type palette struct {
	key, str, num, boolTrue, boolFalse, dur, ts lipgloss.Style
	trace, debug, info, warn, fail              lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:       fg("8"),
		str:       fg("6"),
		num:       fg("3"),
		boolTrue:  fg("2"),
		boolFalse: fg("1"),
		dur:       fg("5"),
		ts:        fg("4"),
		trace:     fg("8").Bold(true),
		debug:     fg("4").Bold(true),
		info:      fg("2").Bold(true),
		warn:      fg("3").Bold(true),
		fail:      fg("1").Bold(true),
	}
}

func (p palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.fail
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// prettyHandler renders records for humans. In line mode each record is a
// single "key=value" line; in block mode (pretty JSON) each attribute gets its
// own indented line.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	style  palette
	attrs  []slog.Attr
	groups []string
	block  bool
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	block bool,
) *prettyHandler {
	return &prettyHandler{
		opts:  *opts,
		mu:    &sync.Mutex{},
		w:     w,
		style: newPalette(w),
		block: block,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var fields []slog.Attr

	if !r.Time.IsZero() {
		fields = h.appendReplaced(fields, nil, slog.Time(slog.TimeKey, r.Time))
	}

	fields = h.appendReplaced(fields, nil, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil && src.File != "" {
			fields = append(fields, slog.String(
				slog.SourceKey, src.File+":"+strconv.Itoa(src.Line),
			))
		}
	}

	fields = append(fields, slog.String(slog.MessageKey, r.Message))

	for _, a := range h.attrs {
		fields = h.appendReplaced(fields, h.groups, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		fields = h.appendReplaced(fields, h.groups, h.qualify(a))

		return true
	})

	buf := new(bytes.Buffer)

	if h.block {
		buf.WriteString("{\n")
	}

	for i, a := range fields {
		h.writeAttr(buf, i, a)
	}

	if h.block {
		buf.WriteString("\n}")
	}

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h

	qualified := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		qualified = append(qualified, h.qualify(a))
	}

	c.attrs = append(slices.Clip(h.attrs), qualified...)

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.groups = append(slices.Clip(h.groups), name)

	return &c
}

// qualify prefixes the attribute key with the active group path.
func (h *prettyHandler) qualify(a slog.Attr) slog.Attr {
	if len(h.groups) == 0 {
		return a
	}

	a.Key = strings.Join(h.groups, ".") + "." + a.Key

	return a
}

// appendReplaced applies ReplaceAttr, resolves LogValuers, and flattens
// groups into dotted keys.
func (h *prettyHandler) appendReplaced(
	dst []slog.Attr,
	groups []string,
	a slog.Attr,
) []slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		for _, g := range a.Value.Group() {
			if a.Key != "" {
				g.Key = a.Key + "." + g.Key
			}

			dst = h.appendReplaced(dst, groups, g)
		}

		return dst
	}

	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(groups, a)
	}

	if a.Equal(slog.Attr{}) {
		return dst
	}

	return append(dst, a)
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, i int, a slog.Attr) {
	switch {
	case h.block && i > 0:
		buf.WriteString(",\n  ")
	case h.block:
		buf.WriteString("  ")
	case i > 0:
		buf.WriteByte(' ')
	}

	sep := "="
	if h.block {
		sep = ": "
	}

	buf.WriteString(h.style.key.Render(a.Key))
	buf.WriteString(sep)
	buf.WriteString(h.renderValue(a.Key, a.Value))
}

func (h *prettyHandler) renderValue(key string, v slog.Value) string {
	s := h.style

	switch v.Kind() {
	case slog.KindString:
		str := v.String()
		if key == slog.LevelKey {
			return s.level(ParseLevel(str).slog()).Render(str)
		}

		return s.str.Render(str)

	case slog.KindInt64:
		return s.num.Render(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return s.num.Render(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return s.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			return s.boolTrue.Render("true")
		}

		return s.boolFalse.Render("false")

	case slog.KindDuration:
		return s.dur.Render(v.Duration().String())

	case slog.KindTime:
		return s.ts.Render(v.Time().Format(time.RFC3339))

	default:
		if level, ok := v.Any().(slog.Level); ok {
			return s.level(level).Render(level.String())
		}

		return s.str.Render(fmt.Sprint(v.Any()))
	}
}

func (l Level) slog() slog.Level { return slog.Level(l) }
