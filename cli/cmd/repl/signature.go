package repl

import (
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// signatures lists the parameters of the functions a query can call: the
// expr-lang builtins most useful on reports, plus convert.
var signatures = map[string][]string{
	"convert":   {"value", "from", "to"},
	"len":       {"v"},
	"all":       {"array", "predicate"},
	"any":       {"array", "predicate"},
	"one":       {"array", "predicate"},
	"none":      {"array", "predicate"},
	"map":       {"array", "mapper"},
	"filter":    {"array", "predicate"},
	"find":      {"array", "predicate"},
	"findIndex": {"array", "predicate"},
	"groupBy":   {"array", "mapper"},
	"sortBy":    {"array", "mapper", "order"},
	"count":     {"array", "predicate"},
	"sum":       {"array"},
	"mean":      {"array"},
	"median":    {"array"},
	"min":       {"...values"},
	"max":       {"...values"},
	"abs":       {"v"},
	"round":     {"v"},
	"floor":     {"v"},
	"ceil":      {"v"},
	"keys":      {"map"},
	"values":    {"map"},
	"join":      {"array", "separator"},
	"split":     {"string", "separator"},
	"upper":     {"string"},
	"lower":     {"string"},
	"int":       {"v"},
	"float":     {"v"},
	"string":    {"v"},
	"type":      {"v"},
}

// builtinNames returns the callable names other than convert, sorted.
func builtinNames() []string {
	names := slices.Sorted(maps.Keys(signatures))

	return slices.DeleteFunc(names, func(s string) bool { return s == "convert" })
}

// signatureOf returns the parameter names of function name, or nil.
func signatureOf(name string) []string { return signatures[name] }

var (
	signatureStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	signatureNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true)
	currentParamStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)
)

// functionCall describes the call whose argument list holds the cursor.
type functionCall struct {
	name     string
	argIndex int
	inCall   bool
}

// detectFunctionCall finds the innermost unclosed call before cursor and
// the index of the argument being typed.
func detectFunctionCall(input string, cursor int) functionCall {
	cursor = min(cursor, len(input))

	open, depth := -1, 0

	for i := cursor - 1; i >= 0 && open < 0; i-- {
		switch input[i] {
		case ')':
			depth++
		case '(':
			if depth == 0 {
				open = i
			}

			depth--
		}
	}

	if open < 0 {
		return functionCall{}
	}

	start := open
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if r != '_' && r != '.' && !isIdentRune(r) {
			break
		}

		start -= size
	}

	name := input[start:open]
	if name == "" {
		return functionCall{}
	}

	arg := 0
	depth = 0

	for _, r := range input[open+1 : cursor] {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				arg++
			}
		}
	}

	return functionCall{name: name, argIndex: arg, inCall: true}
}

func isIdentRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// renderSignatureHint renders name(params...) with the parameter at argIdx
// highlighted. A variadic parameter stays highlighted for every later index.
func renderSignatureHint(name string, params []string, argIdx int) string {
	var b strings.Builder

	b.WriteString(signatureNameStyle.Render(name))
	b.WriteString(signatureStyle.Render("("))

	for i, p := range params {
		if i > 0 {
			b.WriteString(signatureStyle.Render(", "))
		}

		variadic := strings.HasPrefix(p, "...")
		if argIdx == i || (variadic && argIdx > i) {
			b.WriteString(currentParamStyle.Render(p))
		} else {
			b.WriteString(signatureStyle.Render(p))
		}
	}

	b.WriteString(signatureStyle.Render(")"))

	return b.String()
}
