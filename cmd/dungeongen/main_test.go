package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	dgerrors "github.com/samdwyer/dungeongen/internal/errors"
)

func TestReport(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantText string
	}{
		{
			name:     "invalid config",
			err:      dgerrors.New(dgerrors.ErrCodeInvalidConfig, "unknown preset %q", "castle"),
			wantCode: 2,
			wantText: "Error: unknown preset \"castle\"\n",
		},
		{
			name:     "invalid format with cause",
			err:      dgerrors.Wrap(dgerrors.ErrCodeInvalidFormat, errors.New("xml"), "unknown format"),
			wantCode: 2,
			wantText: "Error: unknown format: xml\n",
		},
		{
			name:     "triangulation",
			err:      dgerrors.Wrap(dgerrors.ErrCodeTriangulation, errors.New("boom"), "triangulate 5 main rooms"),
			wantCode: 1,
			wantText: "Error: triangulate 5 main rooms: boom\n",
		},
		{
			name:     "plain",
			err:      errors.New("disk full"),
			wantCode: 1,
			wantText: "Error: disk full\n",
		},
		{
			name:     "canceled",
			err:      fmt.Errorf("generate: %w", context.Canceled),
			wantCode: 130,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			if got := report(&buf, tt.err); got != tt.wantCode {
				t.Errorf("Expected exit status %d, got %d", tt.wantCode, got)
			}
			if buf.String() != tt.wantText {
				t.Errorf("Expected output %q, got %q", tt.wantText, buf.String())
			}
		})
	}
}
