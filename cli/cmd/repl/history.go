package repl

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"
	"sync"
)

const baseHistory = "history.utf8"

// HistoryEntry is a single input line and the mode it was entered in.
type HistoryEntry struct {
	Line string
	Mode inputMode
}

// History is a mode-aware input history persisted to a file. Each line of
// the file carries a mode prefix, "Q:" for queries and "C:" for commands.
type History struct {
	path    string
	entries []HistoryEntry
	mu      sync.RWMutex
}

// NewHistory returns a History backed by the file at path.
func NewHistory(path string) *History {
	return &History{path: path}
}

func (m inputMode) prefix() string {
	if m == modeCtrl {
		return "C:"
	}

	return "Q:"
}

// Load replaces the entries with those read from the history file. A
// missing file is not an error.
func (h *History) Load() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	file, err := os.Open(h.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return err
	}
	defer file.Close()

	h.entries = nil

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		entry := HistoryEntry{Line: line, Mode: modeEval}

		if s, ok := strings.CutPrefix(line, modeCtrl.prefix()); ok {
			entry = HistoryEntry{Line: s, Mode: modeCtrl}
		} else if s, ok := strings.CutPrefix(line, modeEval.prefix()); ok {
			entry.Line = s
		}

		h.entries = append(h.entries, entry)
	}

	return scanner.Err()
}

// Add appends line to the history. An earlier identical entry in the same
// mode is moved to the end rather than duplicated.
func (h *History) Add(line string, mode inputMode) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	entry := HistoryEntry{Line: line, Mode: mode}

	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		return nil
	}

	if i := slices.Index(h.entries, entry); i >= 0 {
		h.entries = slices.Delete(h.entries, i, i+1)
		h.entries = append(h.entries, entry)

		return h.rewrite()
	}

	h.entries = append(h.entries, entry)

	file, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(mode.prefix() + line + "\n")

	return err
}

// Entry returns the entry at index i; index 0 is the oldest.
func (h *History) Entry(i int) (HistoryEntry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if i < 0 || i >= len(h.entries) {
		return HistoryEntry{}, ErrOutOfBounds
	}

	return h.entries[i], nil
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.entries)
}

// rewrite replaces the history file with the current entries.
// Must be called with h.mu held.
func (h *History) rewrite() error {
	var b strings.Builder
	for _, e := range h.entries {
		b.WriteString(e.Mode.prefix() + e.Line + "\n")
	}

	return os.WriteFile(h.path, []byte(b.String()), 0o600)
}
