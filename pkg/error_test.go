package pkg

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

var errSentinel = NewError("sentinel failure")

func TestError_IsSentinel(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"sentinel", errSentinel},
		{"with", errSentinel.With(slog.String("block", "X"))},
		{"wrap", errSentinel.Wrap(io.EOF)},
		{"wrapf", errSentinel.Wrapf("line %d", 3)},
		{"chained", errSentinel.With(slog.Int("n", 1)).Wrap(io.EOF)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, errSentinel) {
				t.Errorf("errors.Is(%v, sentinel) = false", tt.err)
			}
		})
	}

	other := NewError("sentinel failure")
	if errors.Is(errSentinel.With(slog.String("k", "v")), other) {
		t.Error("distinct sentinels with equal messages must not match")
	}
}

func TestError_UnwrapCause(t *testing.T) {
	err := errSentinel.Wrap(io.EOF)
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected wrapped cause to match io.EOF, got %v", err)
	}
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"plain", errSentinel, "sentinel failure"},
		{
			"attrs",
			errSentinel.With(slog.String("block", "Feed1")),
			"sentinel failure (block=Feed1)",
		},
		{
			"attrs and cause",
			errSentinel.With(slog.String("block", "Feed1")).Wrap(io.EOF),
			"sentinel failure (block=Feed1): EOF",
		},
		{"cause only", WrapError(io.EOF), "EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapError_ReturnsExisting(t *testing.T) {
	base := errSentinel.With(slog.String("k", "v"))
	if got := WrapError(base); got != base {
		t.Errorf("WrapError should return the existing *Error")
	}
}
