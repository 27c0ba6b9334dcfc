package repl

import (
	"maps"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/eqscript/report"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "list", "show", "system", "edit", "clear", "quit"}

// isWordBoundary reports whether r delimits a word for completion: spaces,
// the member-access dot, and expr-lang operators and punctuation.
func isWordBoundary(r rune) bool {
	switch r {
	case '.', ' ', '\t',
		'(', ')', '[', ']', '{', '}',
		'+', '-', '*', '/', '%', '^',
		'<', '>', '=', '!',
		'&', '|', ',', '?', ':', ';', '#', '"', '\'':
		return true
	}

	return false
}

// wordBounds returns the word under the cursor and its byte boundaries. The
// word is empty when the cursor sits on a boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(cursor, len(input))

	start = cursor
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor
	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// parentPath returns the member-access chain leading up to the word at
// wordStart. For "x + states.Feed.te" with word "te" it returns
// "states.Feed". Top-level words have an empty parent.
func parentPath(input string, wordStart int) string {
	prefix := strings.TrimRight(input[:wordStart], ".")

	pos := len(prefix)
	for pos > 0 {
		r, size := utf8.DecodeLastRuneInString(prefix[:pos])
		if r != '.' && isWordBoundary(r) {
			break
		}

		pos -= size
	}

	return strings.TrimSpace(prefix[pos:])
}

// childCandidates returns the completions available under parent in env.
// The top level offers query variables, convert, and the expr builtins.
// Nested levels offer the keys of the map the path resolves to, limited to
// names usable with member access.
func childCandidates(rep report.Report, env map[string]any, parent string) []string {
	if parent == "" {
		return append(report.Names(rep), builtinNames()...)
	}

	var cur any = env

	for seg := range strings.SplitSeq(parent, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}

		if cur, ok = m[seg]; !ok {
			return nil
		}
	}

	m, ok := cur.(map[string]any)
	if !ok {
		return nil
	}

	var names []string

	for _, k := range slices.Sorted(maps.Keys(m)) {
		if isIdent(k) {
			names = append(names, k)
		}
	}

	return names
}

// isIdent reports whether s can follow a dot in an expr-lang member access.
func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}

		return false
	}

	return true
}

// computeMatches returns the ranked fuzzy matches for the word at the
// cursor and the word's boundaries. An empty word right after a dot matches
// every child so members can be browsed.
func (m model) computeMatches() (matches fuzzy.Matches, wordStart, wordEnd int) {
	input := m.input.Value()

	word, wordStart, wordEnd := wordBounds(input, m.input.Position())

	var candidates []string

	if m.mode == modeCtrl {
		if word == "" || wordStart > 0 {
			return nil, wordStart, wordEnd
		}

		candidates = ctrlCommands
	} else {
		parent := parentPath(input, wordStart)
		candidates = childCandidates(m.rep, m.env, parent)

		if word == "" {
			if parent == "" {
				return nil, wordStart, wordEnd
			}

			for i, c := range candidates {
				matches = append(matches, fuzzy.Match{Str: c, Index: i})
			}

			return matches, wordStart, wordEnd
		}
	}

	return fuzzy.Find(word, candidates), wordStart, wordEnd
}

// renderCandidateBar renders matches on one line, ellipsized to width. The
// selected candidate is highlighted while tab-cycling.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	ellipsis := hintStyle.Render("...")
	reserve := lipgloss.Width(sep) + lipgloss.Width(ellipsis)

	var b strings.Builder

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)

		if i > 0 {
			need := lipgloss.Width(b.String()) + lipgloss.Width(sep+rendered)
			if i < len(matches)-1 {
				need += reserve
			}

			if need > width {
				b.WriteString(sep + ellipsis)

				break
			}

			b.WriteString(sep)
		}

		b.WriteString(rendered)
	}

	return b.String()
}

// renderCandidate renders a candidate with its matched characters in bold.
// Functions get a "()" suffix.
func renderCandidate(match fuzzy.Match, selected bool) string {
	base := suggestionStyle
	if selected {
		base = selectedStyle
	}

	highlight := base.Bold(true)

	var b strings.Builder

	for i, r := range match.Str {
		if slices.Contains(match.MatchedIndexes, i) {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	if signatureOf(match.Str) != nil {
		b.WriteString(base.Render("()"))
	}

	return b.String()
}
