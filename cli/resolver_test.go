package cli

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func TestResolve_Flatten(t *testing.T) {
	const text = `
strict: true
log:
  level: debug
  time_layout: Kitchen
log-pretty: false
pprof_mode: cpu
scripts: [a.yaml, b.yaml]
depth: 3
empty:
`

	r, err := resolve(strings.NewReader(text))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	got := r.(config)
	want := config{
		"strict":          "true",
		"log-level":       "debug",
		"log-time-layout": "Kitchen",
		"log-pretty":      "false",
		"pprof-mode":      "cpu",
		"scripts":         "a.yaml,b.yaml",
		"depth":           "3",
	}

	if !maps.Equal(got, want) {
		t.Errorf("config = %v, want %v", got, want)
	}
}

func TestResolve_Malformed(t *testing.T) {
	for _, text := range []string{"- a\n- b\n", "a: [1, 2\n"} {
		if _, err := resolve(strings.NewReader(text)); err == nil {
			t.Errorf("resolve(%q) succeeded, want error", text)
		}
	}
}

func TestResolve_Kong(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseConfig)

	const text = "log:\n  level: debug\n  pretty: false\nstrict: true\nnames: [x, y]\ndepth: 4\n"
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		t.Fatal(err)
	}

	var v struct {
		Log struct {
			Level  string `default:"info"`
			Pretty bool   `default:"true" negatable:""`
		} `embed:"" prefix:"log-"`

		Strict bool
		Names  []string
		Depth  int `default:"2"`
	}

	parser, err := kong.New(&v,
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
		kong.Configuration(resolve, path),
	)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.Parse([]string{"--depth=5"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if v.Log.Level != "debug" || v.Log.Pretty || !v.Strict {
		t.Errorf("parsed %+v", v)
	}

	if !slices.Equal(v.Names, []string{"x", "y"}) {
		t.Errorf("Names = %v, want [x y]", v.Names)
	}

	// Flags override configuration.
	if v.Depth != 5 {
		t.Errorf("Depth = %d, want 5", v.Depth)
	}
}
