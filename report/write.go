package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/eqscript/pkg"
)

// ErrFormat reports an unknown output format name.
var ErrFormat = pkg.NewError("unknown output format")

// Format selects how a [Report] is written.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{string(FormatText), string(FormatYAML), string(FormatJSON)}
}

// Write writes r to w in the given format.
func Write(w io.Writer, r Report, f Format) error {
	switch f {
	case FormatText, "":
		return Text(w, r)
	case FormatYAML:
		return YAML(w, r)
	case FormatJSON:
		return JSON(w, r)
	default:
		return ErrFormat.Wrapf("%q", string(f))
	}
}

type styles struct {
	heading lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	warn    lipgloss.Style
}

// newStyles binds styles to w so that color is only emitted to terminals.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		label:   r.NewStyle().Foreground(lipgloss.Color("8")),
		value:   r.NewStyle().Foreground(lipgloss.Color("15")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Text writes a human-readable rendering of r.
func Text(w io.Writer, r Report) error {
	st := newStyles(w)

	var b strings.Builder

	if r.System != nil {
		b.WriteString(st.heading.Render("ChemicalSystem") + "\n")

		for _, p := range r.System.Phases {
			row(&b, st, p.Kind, p.Name+"  "+strings.Join(p.Species, " "))
		}
	}

	for _, s := range r.States {
		writeState(&b, st, s)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// StateText writes a human-readable rendering of a single state.
func StateText(w io.Writer, s State) error {
	var b strings.Builder

	writeState(&b, newStyles(w), s)

	_, err := io.WriteString(w, b.String())

	return err
}

func writeState(b *strings.Builder, st styles, s State) {
	b.WriteString(st.heading.Render("Equilibrium "+s.ID) + "\n")

	row(b, st, "Temperature", formatFloat(s.Temperature)+" K")
	row(b, st, "Pressure", formatFloat(s.Pressure)+" Pa")

	if s.Status != "" {
		status := fmt.Sprintf("%s (%d iterations, %s)",
			s.Status, s.Iterations, s.ElapsedDuration())
		if !s.Converged {
			status = st.warn.Render(status)
		}

		row(b, st, "Status", status)
	}

	if len(s.Species) > 0 {
		b.WriteString("  " + st.label.Render("Species") + "\n")

		for _, a := range s.Species {
			row(b, st, "  "+a.Species, formatFloat(a.Value)+" "+a.Unit)
		}
	}

	if len(s.Volumes) > 0 {
		b.WriteString("  " + st.label.Render("Volumes") + "\n")

		for _, v := range s.Volumes {
			row(b, st, "  "+v.Phase, formatFloat(v.Value)+" m3")
		}
	}
}

func row(b *strings.Builder, st styles, label, value string) {
	const width = 16

	pad := max(width-lipgloss.Width(label), 1)

	b.WriteString("  " + st.label.Render(label) + strings.Repeat(" ", pad) +
		st.value.Render(value) + "\n")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// YAML writes r as a YAML document keyed by state identifier, in order.
func YAML(w io.Writer, r Report) error {
	states := make(yaml.MapSlice, 0, len(r.States))
	for _, s := range r.States {
		states = append(states, yaml.MapItem{Key: s.ID, Value: s})
	}

	doc := yaml.MapSlice{}
	if r.System != nil {
		doc = append(doc, yaml.MapItem{Key: "system", Value: r.System})
	}

	doc = append(doc, yaml.MapItem{Key: "states", Value: states})

	out, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}

	_, err = w.Write(out)

	return err
}

// JSON writes r as indented JSON.
func JSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// Value writes a query result: strings verbatim, anything else as YAML.
func Value(w io.Writer, v any) error {
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(w, s)

		return err
	}

	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}

	_, err = w.Write(out)

	return err
}
