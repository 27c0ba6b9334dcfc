package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/eqscript/script"
)

type initCLI struct {
	Log struct {
		Level  string `default:"info"`
		Pretty bool   `default:"true" negatable:""`
	} `embed:"" prefix:"log-"`

	Version   kong.VersionFlag
	Strict    bool
	Output    string
	PprofMode string   `default:"cpu"`
	Hidden    string   `default:"x"   hidden:""`
	Count     int      `default:"3"`
	Names     []string `default:"a,b"`
	Ratio     float64  `default:"0.5"`
}

func parseInit(t *testing.T, confPath string, args ...string) *kong.Context {
	t.Helper()

	var cli initCLI

	parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: confPath, "version": "test"})
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		t.Fatal(err)
	}

	return ktx
}

func TestInit_Run(t *testing.T) {
	tests := []struct {
		name    string
		force   bool
		exists  bool
		wantErr error
	}{
		{name: "create"},
		{name: "overwrite_with_force", force: true, exists: true},
		{name: "refuse_without_force", exists: true, wantErr: ErrFileExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confPath := filepath.Join(t.TempDir(), "config.yaml")

			if tt.exists {
				if err := os.WriteFile(confPath, []byte("existing: true\n"), 0o600); err != nil {
					t.Fatal(err)
				}
			}

			ctx := WithContext(t.Context(), parseInit(t, confPath, "--strict", "--log-level=debug"))

			err := (&Init{Force: tt.force}).Run(ctx)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || !errors.Is(err, ErrWriteConfig) {
					t.Fatalf("Init error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Init: %v", err)
			}

			data, err := os.ReadFile(confPath)
			if err != nil {
				t.Fatal(err)
			}

			doc, err := script.Load(data)
			if err != nil {
				t.Fatalf("config does not load: %v\n%s", err, data)
			}

			want := []string{"log-level", "log-pretty", "strict", "count", "names", "ratio"}
			if got := doc.Keys(); !reflect.DeepEqual(got, want) {
				t.Errorf("keys = %v, want %v", got, want)
			}

			if v, _ := doc.Get("log-level"); v != "debug" {
				t.Errorf("log-level = %v", v)
			}

			if v, _ := doc.Get("strict"); v != true {
				t.Errorf("strict = %v", v)
			}
		})
	}
}

func TestInit_Settings(t *testing.T) {
	ktx := parseInit(t, "unused", "--output=o.txt", "--no-log-pretty")

	got := settings(ktx)
	want := yaml.MapSlice{
		{Key: "log-level", Value: "info"},
		{Key: "log-pretty", Value: false},
		{Key: "strict", Value: false},
		{Key: "output", Value: "o.txt"},
		{Key: "count", Value: int64(3)},
		{Key: "names", Value: []any{"a", "b"}},
		{Key: "ratio", Value: 0.5},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("settings =\n%v\nwant\n%v", got, want)
	}
}
