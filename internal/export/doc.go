// Package export writes a generated dungeon for people and other tools.
//
// Formats:
//   - text: counts, diagnostics, every hallway and an ASCII map
//   - json: rooms, main rooms, hallways and both edge sets
//   - dot:  Graphviz source of the candidate graph with retained edges solid
//   - svg:  the dot graph rendered through Graphviz
//
// Output is one-way; nothing here reads a dungeon back.
package export

import (
	"fmt"
	"io"

	"github.com/samdwyer/dungeongen/internal/errors"
	"github.com/samdwyer/dungeongen/internal/world"
)

// Supported format names.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// Formats lists every supported format.
var Formats = []string{FormatText, FormatJSON, FormatDOT, FormatSVG}

// Write renders d in the named format.
func Write(w io.Writer, format string, d *world.Dungeon) error {
	switch format {
	case FormatText:
		return WriteText(w, d)
	case FormatJSON:
		return WriteJSON(w, d)
	case FormatDOT:
		_, err := io.WriteString(w, ToDOT(d))
		return err
	case FormatSVG:
		svg, err := RenderSVG(ToDOT(d))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		_, err = w.Write(svg)
		return err
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (must be one of %v)", format, Formats)
	}
}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (must be one of %v)", format, Formats)
}

func fmtPoint(p world.Point) string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
