package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsFollowsWrapChain(t *testing.T) {
	base := New(ErrCodeInvalidConfig, "room count must be positive, got %d", 0)
	wrapped := fmt.Errorf("generate: %w", base)

	if !Is(wrapped, ErrCodeInvalidConfig) {
		t.Fatal("Is should find the code through fmt.Errorf wrapping")
	}
	if Is(wrapped, ErrCodeTriangulation) {
		t.Error("Is matched the wrong code")
	}
	if GetCode(wrapped) != ErrCodeInvalidConfig {
		t.Errorf("GetCode = %q, want %q", GetCode(wrapped), ErrCodeInvalidConfig)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("collinear points")
	err := Wrap(ErrCodeTriangulation, cause, "triangulate %d points", 4)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
	want := "TRIANGULATION: triangulate 4 points: collinear points"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidFormat, "unknown format %q", "xml")); got != `unknown format "xml"` {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage = %q", got)
	}
	nested := Wrap(ErrCodeInvalidConfig, Wrap(ErrCodeInternal, errors.New("eof"), "parse"), "read config %s", "a.toml")
	if got := UserMessage(nested); got != "read config a.toml: parse: eof" {
		t.Errorf("UserMessage = %q", got)
	}
	if GetCode(errors.New("plain")) != "" {
		t.Error("GetCode of a plain error should be empty")
	}
}
