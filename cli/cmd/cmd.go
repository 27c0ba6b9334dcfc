package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
)

type (
	contextKey struct{}
	strictKey  struct{}
	streamsKey struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, _ := ctx.Value(contextKey{}).(*kong.Context)

	return ktx
}

// WithStrict returns a new context.Context recording whether a calculation
// that does not converge is an error.
func WithStrict(ctx context.Context, strict bool) context.Context {
	return context.WithValue(ctx, strictKey{}, strict)
}

func strictFrom(ctx context.Context) bool {
	strict, _ := ctx.Value(strictKey{}).(bool)

	return strict
}

// Streams are the standard streams used by commands.
type Streams struct {
	In  io.Reader
	Out io.Writer
}

// WithStreams returns a new context.Context whose commands read "-" from
// s.In and write results to s.Out instead of the process streams.
func WithStreams(ctx context.Context, s Streams) context.Context {
	return context.WithValue(ctx, streamsKey{}, s)
}

func streamsFrom(ctx context.Context) Streams {
	s, _ := ctx.Value(streamsKey{}).(Streams)
	if s.In == nil {
		s.In = os.Stdin
	}

	if s.Out == nil {
		s.Out = os.Stdout
	}

	return s
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// source is one opened script.
type source struct {
	io.Reader

	name  string
	close func() error
}

// sources is the ordered set of scripts named on the command line.
type sources []source

// Close closes every opened file.
func (s sources) Close() error {
	var first error

	for _, src := range s {
		if src.close == nil {
			continue
		}

		if err := src.close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// fileKey uniquely identifies a file by its device and inode numbers, so
// that symlinks and relative paths to one file are opened once.
type fileKey struct {
	dev uint64
	ino uint64
}

// openSources opens the named scripts in order. "-" reads the input stream
// and may appear once; later occurrences, and later names for a file already
// opened, are skipped. A script that cannot be opened is an error.
func openSources(ctx context.Context, names []string) (sources, error) {
	if len(names) == 0 {
		names = []string{stdinSource}
	}

	var (
		out   sources
		stdin bool
	)

	seen := make(map[fileKey]struct{})

	for _, name := range names {
		if name == stdinSource {
			if !stdin {
				stdin = true
				out = append(out, source{Reader: streamsFrom(ctx).In, name: "<stdin>"})
			}

			continue
		}

		src, ok, err := openUnique(name, seen)
		if err != nil {
			_ = out.Close()

			return nil, ErrOpenScript.With(slog.String("script", name)).Wrap(err)
		}

		if ok {
			out = append(out, src)
		}
	}

	return out, nil
}

// openUnique opens the file at path unless it was seen before.
func openUnique(path string, seen map[fileKey]struct{}) (source, bool, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return source{}, false, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return source{}, false, err
	}

	if info.IsDir() {
		return source{}, false, syscall.EISDIR
	}

	if key, ok := makeFileKey(info); ok {
		if _, dup := seen[key]; dup {
			return source{}, false, nil
		}

		seen[key] = struct{}{}
	}

	file, err := os.Open(resolved)
	if err != nil {
		return source{}, false, err
	}

	return source{Reader: file, name: path, close: file.Close}, true, nil
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (fileKey, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fileKey{}, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true //nolint:unconvert
}
