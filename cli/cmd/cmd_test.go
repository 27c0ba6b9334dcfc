package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func readSources(t *testing.T, srcs sources) (names, contents []string) {
	t.Helper()

	for _, src := range srcs {
		data, err := io.ReadAll(src)
		if err != nil {
			t.Fatalf("read %s: %v", src.name, err)
		}

		names = append(names, src.name)
		contents = append(contents, string(data))
	}

	return names, contents
}

func TestOpenSources(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", "A")
	b := writeFile(t, dir, "b.yaml", "B")

	link := filepath.Join(dir, "link.yaml")
	if err := os.Symlink(a, link); err != nil {
		t.Fatal(err)
	}

	rel, err := filepath.Rel(mustGetwd(t), b)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		args  []string
		want  []string
		names []string
	}{
		{"default_stdin", nil, []string{"IN"}, []string{"<stdin>"}},
		{"single", []string{a}, []string{"A"}, []string{a}},
		{"in_order", []string{b, a}, []string{"B", "A"}, []string{b, a}},
		{"duplicate_path", []string{a, a}, []string{"A"}, []string{a}},
		{"symlink_duplicate", []string{a, link}, []string{"A"}, []string{a}},
		{"relative_duplicate", []string{b, rel}, []string{"B"}, []string{b}},
		{"stdin_in_place", []string{a, "-", b}, []string{"A", "IN", "B"}, []string{a, "<stdin>", b}},
		{"stdin_once", []string{"-", "-"}, []string{"IN"}, []string{"<stdin>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := WithStreams(t.Context(), Streams{In: strings.NewReader("IN")})

			srcs, err := openSources(ctx, tt.args)
			if err != nil {
				t.Fatalf("openSources: %v", err)
			}
			defer srcs.Close()

			names, contents := readSources(t, srcs)
			if !slices.Equal(contents, tt.want) {
				t.Errorf("contents = %q, want %q", contents, tt.want)
			}

			if !slices.Equal(names, tt.names) {
				t.Errorf("names = %q, want %q", names, tt.names)
			}
		})
	}
}

func TestOpenSources_Errors(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", "A")

	for _, args := range [][]string{
		{filepath.Join(dir, "missing.yaml")},
		{a, filepath.Join(dir, "missing.yaml")},
		{dir},
	} {
		_, err := openSources(t.Context(), args)
		if !errors.Is(err, ErrOpenScript) {
			t.Errorf("openSources(%q) error = %v, want ErrOpenScript", args, err)
		}
	}
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()

	if strictFrom(ctx) {
		t.Error("strictFrom(empty) = true")
	}

	if !strictFrom(WithStrict(ctx, true)) {
		t.Error("strictFrom(WithStrict(true)) = false")
	}

	if kongContextFrom(ctx) != nil {
		t.Error("kongContextFrom(empty) != nil")
	}

	s := streamsFrom(ctx)
	if s.In != os.Stdin || s.Out != os.Stdout {
		t.Error("streamsFrom(empty) does not default to the process streams")
	}
}

func mustGetwd(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	return wd
}
