package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samdwyer/dungeongen/internal/errors"
)

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	defer SetVersion("", "", "")

	if version != "1.0.0" {
		t.Errorf("version = %q, want %q", version, "1.0.0")
	}
	if commit != "abc123" {
		t.Errorf("commit = %q, want %q", commit, "abc123")
	}
	if date != "2024-01-01" {
		t.Errorf("date = %q, want %q", date, "2024-01-01")
	}
}

func TestGenerateJSONFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dungeon.json")
	root := newRootCmd()
	root.SetArgs([]string{"generate", "--rooms", "30", "--radius", "20", "--seed", "3", "--format", "json", "-o", out})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var got struct {
		Rooms []json.RawMessage `json:"rooms"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(got.Rooms) != 30 {
		t.Errorf("Expected 30 rooms, got %d", len(got.Rooms))
	}
}

func TestGenerateStdout(t *testing.T) {
	var buf strings.Builder
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"generate", "--rooms", "25", "--radius", "15", "--seed", "8"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.Contains(buf.String(), "rooms:      25") {
		t.Errorf("Expected text summary on stdout, got:\n%s", buf.String())
	}
}

func TestGenerateUnknownFormat(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"generate", "--format", "png"})
	root.SetErr(&strings.Builder{})

	err := root.ExecuteContext(context.Background())
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Expected INVALID_FORMAT, got %v", err)
	}
}

func TestPresetsCommand(t *testing.T) {
	var buf strings.Builder
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"presets"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("presets failed: %v", err)
	}
	for _, id := range []string{"default", "small", "large", "labyrinth", "halls", "showcase"} {
		if !strings.Contains(buf.String(), id) {
			t.Errorf("Expected preset %q in listing:\n%s", id, buf.String())
		}
	}
}
