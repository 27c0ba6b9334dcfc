package repl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/eqscript/log"
	"github.com/ardnew/eqscript/report"
)

// Evaluator interprets script text and returns the resulting report.
type Evaluator func(ctx context.Context, text []byte) (report.Report, error)

// Config describes a REPL session.
type Config struct {
	Eval     Evaluator
	Logger   log.Logger
	Name     string // script name shown by the list command
	CacheDir string // directory holding the history file
	Source   []byte
}

// editScriptMsg is sent when the script was edited and re-interpreted.
type editScriptMsg struct {
	rep    report.Report
	source []byte
}

// editCancelledMsg is sent when the user cleared the editor content.
type editCancelledMsg struct{}

// editDeclinedMsg is sent when the user declined to re-edit after an error.
type editDeclinedMsg struct{}

// editErrorMsg is sent when the edit process fails for any other reason.
type editErrorMsg struct{ err error }

const (
	evalPrompt = "➜ "
	ctrlPrompt = " :"
)

func helpMessage() string {
	return `
: Commands (press Esc to toggle mode):

  help         Print this cruft
  list         List equilibrium states
  show <id>    Print the report of one state
  system       Print the chemical system
  edit         Edit the script in $EDITOR and interpret it again
  clear        Clear screen
  quit         Exit REPL

Usage:
  Type a query to evaluate it against the session, for example
    states.Feed.temperature
    convert(states.Feed.pressure, "Pa", "bar")
    map(ids, states[#].status)
  Completions appear automatically as you type
  Press Tab / Shift-Tab to cycle through candidates
  Press Space to accept the current candidate
  Use Up/Down arrows for history navigation (mode switches automatically)
  Use Shift+Up/Shift+Down for history navigation within current mode only
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

// inputMode represents the current input mode.
type inputMode int

const (
	modeEval inputMode = iota
	modeCtrl
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ctrlPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

func formatCommand(input string, mode inputMode) string {
	if mode == modeCtrl {
		return ctrlPromptStyle.Render(ctrlPrompt) + inputStyle.Render(input)
	}

	return promptStyle.Render(evalPrompt) + inputStyle.Render(input)
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc    func() context.Context
	eval       Evaluator
	env        map[string]any
	history    *History
	logger     log.Logger
	name       string
	source     []byte
	rep        report.Report
	input      textinput.Model
	matches    fuzzy.Matches // current fuzzy match results
	evalText   string
	ctrlText   string
	historyIdx int
	wordStart  int // byte offset of current word start
	wordEnd    int // byte offset of current word end
	suggIdx    int // selected candidate index
	preTabPos  int
	evalCursor int
	ctrlCursor int
	width      int
	preTabText string
	mode       inputMode
	tabActive  bool
	quitting   bool
}

// Run interprets cfg.Source and starts an interactive query session over
// the result.
func Run(ctx context.Context, cfg Config) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if cfg.Eval == nil || len(cfg.Source) == 0 {
		return ErrNoScript
	}

	rep, err := cfg.Eval(ctx, cfg.Source)
	if err != nil {
		return err
	}

	cfg.Logger.TraceContext(ctx, "repl start",
		slog.String("cache_dir", cfg.CacheDir),
		slog.Int("states", len(rep.States)),
	)

	history := NewHistory(filepath.Join(cfg.CacheDir, baseHistory))
	if err := history.Load(); err != nil {
		cfg.Logger.WarnContext(ctx, "could not load history", slog.Any("error", err))
	}

	m := newModel(ctx, cfg, rep, history)

	_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()

	return err
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	cfg Config,
	rep report.Report,
	history *History,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(evalPrompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		eval:       cfg.Eval,
		env:        report.Env(rep),
		history:    history,
		logger:     cfg.Logger,
		name:       cfg.Name,
		source:     cfg.Source,
		rep:        rep,
		input:      ti,
		historyIdx: history.Len(),
		suggIdx:    -1,
		width:      defaultWidth,
		mode:       modeEval,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(evalPrompt) - 2

		return m, nil

	case editScriptMsg:
		m.source = msg.source
		m.rep = msg.rep
		m.env = report.Env(msg.rep)

		return m, tea.Println(resultStyle.Render(
			fmt.Sprintf("✔ interpreted %d states", len(msg.rep.States)),
		))

	case editCancelledMsg:
		return m, tea.Println(hintStyle.Render("edit cancelled"))

	case editDeclinedMsg:
		m.quitting = true

		return m, tea.Quit

	case editErrorMsg:
		return m, tea.Println(errorStyle.Render("error: " + msg.err.Error()))
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	input := m.input.Value()
	call := detectFunctionCall(input, m.input.Position())

	switch {
	case m.historyIdx < m.history.Len():
		pos := lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(m.historyIdx + 1))
		b.WriteString(hintStyle.Render(fmt.Sprintf("%s/%d", pos, m.history.Len())))

	case strings.TrimSpace(input) == "":
		hint := "Type a query or press Esc for commands"
		if m.mode == modeCtrl {
			hint = "Type: " + strings.Join(ctrlCommands, ", ") + " (press Esc to return)"
		}

		b.WriteString(hintStyle.Render(hint))

	case call.inCall && m.mode == modeEval && signatureOf(call.name) != nil:
		b.WriteString(renderSignatureHint(call.name, signatureOf(call.name), call.argIndex))

	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(m.matches, m.suggIdx, m.tabActive, m.width))
	}

	b.WriteString("\n")

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		refreshMatches(&m, false)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if !m.tabActive || len(m.matches) == 0 {
			return m.executeInput()
		}

		m.tabActive = false
		refreshMatches(&m, true)

		return m, nil

	case tea.KeyTab:
		return m.cycle(1), nil

	case tea.KeyShiftTab:
		return m.cycle(-1), nil

	case tea.KeyUp:
		return m.historyStep(-1, false), nil

	case tea.KeyDown:
		return m.historyStep(1, false), nil

	case tea.KeyShiftUp:
		return m.historyStep(-1, true), nil

	case tea.KeyShiftDown:
		return m.historyStep(1, true), nil

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabPos)
			refreshMatches(&m, false)

			return m, nil
		}

		if m.mode == modeEval {
			return m.switchToMode(modeCtrl), nil
		}

		return m.switchToMode(modeEval), nil

	case tea.KeyRunes:
		if m.tabActive && msg.String() == " " {
			m.tabActive = false
		}

		var cmd tea.Cmd

		m.historyIdx = m.history.Len()
		m.input, cmd = m.input.Update(msg)
		refreshMatches(&m, true)

		return m, cmd
	}

	var cmd tea.Cmd

	m.tabActive = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	refreshMatches(&m, false)

	return m, cmd
}

// cycle moves the selected candidate by step, wrapping at either end. A
// single candidate is completed immediately.
func (m model) cycle(step int) model {
	n := len(m.matches)
	if n == 0 {
		return m
	}

	if n == 1 {
		replaceCurrentWord(&m, m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m
	}

	if !m.tabActive {
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabPos = m.input.Position()

		m.suggIdx = 0
		if step < 0 {
			m.suggIdx = n - 1
		}
	} else {
		m.suggIdx = (m.suggIdx + step + n) % n
	}

	replaceCurrentWord(&m, m.matches[m.suggIdx].Str)

	return m
}

// replaceCurrentWord replaces the current word in the input and moves the
// cursor to its end.
func replaceCurrentWord(m *model, replacement string) {
	input := m.input.Value()
	m.input.SetValue(input[:m.wordStart] + replacement + input[m.wordEnd:])
	m.wordEnd = m.wordStart + len(replacement)
	m.input.SetCursor(m.wordEnd)
}

// refreshMatches recomputes fuzzy matches for the current input. With
// autoConfirm, a word that already equals the sole candidate is accepted.
func refreshMatches(m *model, autoConfirm bool) {
	m.matches, m.wordStart, m.wordEnd = m.computeMatches()

	if !m.tabActive {
		m.suggIdx = -1
	}

	if !autoConfirm || len(m.matches) != 1 {
		return
	}

	if m.input.Value()[m.wordStart:m.wordEnd] == m.matches[0].Str {
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil
	}
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.evalText, m.evalCursor = "", 0
	m.ctrlText, m.ctrlCursor = "", 0
	m.input.SetValue("")
	m.matches = nil

	if err := m.history.Add(input, m.mode); err != nil {
		m.logger.DebugContext(m.ctxFunc(), "history write failed", slog.Any("error", err))
	}

	m.historyIdx = m.history.Len()

	echo := tea.Println(formatCommand(input, m.mode))

	if m.mode == modeCtrl {
		return m.executeCommand(echo, input)
	}

	m.logger.TraceContext(m.ctxFunc(), "repl query", slog.String("input", input))

	out, err := m.query(input)
	if err != nil {
		return m, tea.Sequence(echo, tea.Println(errorStyle.Render("error: "+err.Error())))
	}

	return m, tea.Sequence(echo, tea.Println(resultStyle.Render(out)))
}

// query evaluates input against the current report and formats the result.
func (m model) query(input string) (string, error) {
	v, err := report.Query(m.rep, input)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := report.Value(&b, v); err != nil {
		return "", err
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

func (m model) executeCommand(echo tea.Cmd, input string) (model, tea.Cmd) {
	parts := strings.Fields(input)
	cmd, args := parts[0], parts[1:]

	m.logger.TraceContext(m.ctxFunc(), "repl command",
		slog.String("command", cmd),
		slog.Any("args", args),
	)

	switch cmd {
	case "q", "quit", "exit":
		m.quitting = true

		return m, tea.Sequence(echo, tea.Quit)

	case "h", "help":
		return m, tea.Sequence(echo, tea.Println(helpMessage()))

	case "l", "list":
		return m, tea.Sequence(echo, tea.Println(m.listStates()))

	case "s", "show":
		out, err := m.showStates(args)
		if err != nil {
			return m, tea.Sequence(echo, tea.Println(errorStyle.Render("error: "+err.Error())))
		}

		return m, tea.Sequence(echo, tea.Println(out))

	case "system":
		return m, tea.Sequence(echo, tea.Println(m.showSystem()))

	case "c", "clear":
		return m, tea.ClearScreen

	case "e", "edit":
		return m, tea.Sequence(echo, m.edit())

	default:
		return m, tea.Println(errorStyle.Render("Unknown command: " + cmd + " (try 'help')"))
	}
}

func (m model) listStates() string {
	var b strings.Builder

	if m.name != "" {
		b.WriteString(hintStyle.Render("# "+m.name) + "\n")
	}

	for _, s := range m.rep.States {
		fmt.Fprintf(&b, "  %s %s\n", s.ID, hintStyle.Render(fmt.Sprintf(
			"T=%g K P=%g Pa, %d species, %s",
			s.Temperature, s.Pressure, len(s.Species), s.Status,
		)))
	}

	if len(m.rep.States) == 0 {
		b.WriteString(hintStyle.Render("  (no states)") + "\n")
	}

	return b.String()
}

func (m model) showStates(ids []string) (string, error) {
	if len(ids) == 0 {
		return "", ErrUnknownState.Wrapf("usage: show <id>...")
	}

	var b strings.Builder

	for _, id := range ids {
		i := slices.IndexFunc(m.rep.States, func(s report.State) bool { return s.ID == id })
		if i < 0 {
			return "", ErrUnknownState.With(slog.String("id", id))
		}

		if err := report.StateText(&b, m.rep.States[i]); err != nil {
			return "", err
		}
	}

	return b.String(), nil
}

func (m model) showSystem() string {
	if m.rep.System == nil {
		return hintStyle.Render("  (no chemical system)")
	}

	var b strings.Builder
	for _, p := range m.rep.System.Phases {
		fmt.Fprintf(&b, "  %s %s %s\n", p.Name,
			hintStyle.Render(p.Kind), strings.Join(p.Species, " "))
	}

	return b.String()
}

func (m model) edit() tea.Cmd {
	cmd := &editScriptCommand{
		source:  m.source,
		eval:    m.eval,
		ctxFunc: m.ctxFunc,
		logger:  m.logger,
	}

	return tea.Exec(cmd, func(err error) tea.Msg {
		switch {
		case errors.Is(err, ErrEditDeclined):
			return editDeclinedMsg{}
		case err != nil:
			return editErrorMsg{err: err}
		case cmd.result == nil:
			return editCancelledMsg{}
		default:
			return editScriptMsg{rep: *cmd.result, source: cmd.edited}
		}
	})
}

// historyStep moves through history by dir (-1 older, +1 newer). With
// sameMode, entries from the other mode are skipped; otherwise the input
// mode follows the selected entry.
func (m model) historyStep(dir int, sameMode bool) model {
	for i := m.historyIdx + dir; i >= 0 && i < m.history.Len(); i += dir {
		entry, err := m.history.Entry(i)
		if err != nil {
			break
		}

		if sameMode && entry.Mode != m.mode {
			continue
		}

		if entry.Mode != m.mode {
			m = m.switchToMode(entry.Mode)
		}

		m.historyIdx = i
		m.input.SetValue(entry.Line)
		m.input.SetCursor(len(entry.Line))
		refreshMatches(&m, false)

		return m
	}

	if dir > 0 && m.historyIdx < m.history.Len() {
		m.historyIdx = m.history.Len()
		m.input.SetValue("")
		refreshMatches(&m, false)
	}

	return m
}

// switchToMode switches input mode, keeping each mode's pending input.
func (m model) switchToMode(mode inputMode) model {
	if m.mode == modeEval {
		m.evalText, m.evalCursor = m.input.Value(), m.input.Position()
	} else {
		m.ctrlText, m.ctrlCursor = m.input.Value(), m.input.Position()
	}

	m.mode = mode
	if mode == modeEval {
		m.input.Prompt = promptStyle.Render(evalPrompt)
		m.input.SetValue(m.evalText)
		m.input.SetCursor(m.evalCursor)
	} else {
		m.input.Prompt = ctrlPromptStyle.Render(ctrlPrompt)
		m.input.SetValue(m.ctrlText)
		m.input.SetCursor(m.ctrlCursor)
	}

	refreshMatches(&m, false)

	return m
}
