package repl

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/eqscript/log"
	"github.com/ardnew/eqscript/report"
)

func newTestModel(t *testing.T) model {
	t.Helper()

	cfg := Config{
		Eval: func(context.Context, []byte) (report.Report, error) {
			return testReport(), nil
		},
		Logger: log.Make(io.Discard),
		Name:   "feed.yaml",
		Source: []byte("unused"),
	}

	h := NewHistory(filepath.Join(t.TempDir(), baseHistory))

	return newModel(t.Context(), cfg, testReport(), h)
}

func typeText(m model, s string) model {
	for _, r := range s {
		m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	return m
}

func TestModel_Query(t *testing.T) {
	m := newTestModel(t)

	tests := []struct {
		query string
		want  string
	}{
		{"states.Feed.status", "ok"},
		{`states.Feed.species["Na+"]`, "0.1"},
		{`join(ids, ",")`, "Feed"},
	}

	for _, tt := range tests {
		got, err := m.query(tt.query)
		if err != nil || got != tt.want {
			t.Errorf("query(%q) = %q, %v; want %q", tt.query, got, err, tt.want)
		}
	}

	if _, err := m.query("states."); !errors.Is(err, report.ErrQueryCompile) {
		t.Errorf("query(states.) error = %v, want ErrQueryCompile", err)
	}
}

func TestModel_ExecuteRecordsHistory(t *testing.T) {
	m := typeText(newTestModel(t), "ids")

	m, cmd := m.executeInput()
	if cmd == nil {
		t.Fatal("executeInput returned no command")
	}

	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}

	if e, err := m.history.Entry(0); err != nil || e != (HistoryEntry{"ids", modeEval}) {
		t.Errorf("history entry = %+v, %v", e, err)
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyUp})
	if m.input.Value() != "ids" {
		t.Errorf("history up = %q, want ids", m.input.Value())
	}
}

func TestModel_Commands(t *testing.T) {
	m := newTestModel(t)

	if got := m.listStates(); !strings.Contains(got, "Feed") || !strings.Contains(got, "feed.yaml") {
		t.Errorf("listStates() = %q", got)
	}

	if got := m.showSystem(); !strings.Contains(got, "Aqueous") || !strings.Contains(got, "Na+") {
		t.Errorf("showSystem() = %q", got)
	}

	if got, err := m.showStates([]string{"Feed"}); err != nil || !strings.Contains(got, "Equilibrium Feed") {
		t.Errorf("showStates(Feed) = %q, %v", got, err)
	}

	for _, ids := range [][]string{nil, {"Nope"}} {
		if _, err := m.showStates(ids); !errors.Is(err, ErrUnknownState) {
			t.Errorf("showStates(%v) error = %v, want ErrUnknownState", ids, err)
		}
	}
}

func TestModel_ToggleMode(t *testing.T) {
	m := typeText(newTestModel(t), "ids")

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeCtrl || m.input.Value() != "" {
		t.Fatalf("after Esc: mode=%v input=%q", m.mode, m.input.Value())
	}

	m = typeText(m, "li")
	if len(m.matches) == 0 || m.matches[0].Str != "list" {
		t.Errorf("ctrl matches = %v", m.matches)
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeEval || m.input.Value() != "ids" {
		t.Errorf("after second Esc: mode=%v input=%q", m.mode, m.input.Value())
	}
}

func TestModel_Completion(t *testing.T) {
	m := typeText(newTestModel(t), "states.")

	if len(m.matches) != 1 || m.matches[0].Str != "Feed" {
		t.Fatalf("matches after states. = %v", m.matches)
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.input.Value(); got != "states.Feed" {
		t.Fatalf("after Tab input = %q", got)
	}

	m = typeText(m, ".temp")
	if len(m.matches) == 0 || m.matches[0].Str != "temperature" {
		t.Errorf("matches after .temp = %v", m.matches)
	}

	m = typeText(newTestModel(t), "convert(1, ")
	if got := m.View(); !strings.Contains(got, "from") {
		t.Errorf("View() lacks signature hint: %q", got)
	}
}
