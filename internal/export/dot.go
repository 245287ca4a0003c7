package export

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/samdwyer/dungeongen/internal/world"
)

// unitsPerInch converts dungeon units to Graphviz inches.
const unitsPerInch = 10

// ToDOT converts the connection graph of d to an undirected Graphviz graph.
// Every main room is a node pinned at its center. Retained connections are
// drawn solid and candidate-only connections dashed grey, so the chosen
// graph can be compared with the full triangulation.
func ToDOT(d *world.Dungeon) string {
	var buf bytes.Buffer
	buf.WriteString("graph dungeon {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=filled, fillcolor=white, fontsize=10];\n")
	buf.WriteString("\n")

	for _, idx := range d.MainRooms {
		r := d.Rooms[idx]
		// Graphviz y grows upward.
		fmt.Fprintf(&buf, "  r%d [label=\"%d\", pos=\"%s,%s!\", width=%s, height=%s];\n",
			idx, idx,
			fmtFloat(r.Center.X/unitsPerInch), fmtFloat(-r.Center.Y/unitsPerInch),
			fmtFloat(r.Width/unitsPerInch), fmtFloat(r.Height/unitsPerInch))
	}

	buf.WriteString("\n")
	retained := make(map[[2]int]bool, len(d.Graph.Retained))
	for _, e := range d.Graph.Retained {
		retained[undirected(e)] = true
	}
	written := make(map[[2]int]bool, len(d.Graph.Candidates)/2)
	for _, e := range d.Graph.Candidates {
		key := undirected(e)
		if written[key] {
			continue
		}
		written[key] = true
		if retained[key] {
			fmt.Fprintf(&buf, "  r%d -- r%d [penwidth=2];\n", key[0], key[1])
		} else {
			fmt.Fprintf(&buf, "  r%d -- r%d [style=dashed, color=grey];\n", key[0], key[1])
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func undirected(e world.Edge) [2]int {
	if e.Src > e.Dest {
		return [2]int{e.Dest, e.Src}
	}
	return [2]int{e.Src, e.Dest}
}

func fmtFloat(f float64) string {
	if f == 0 {
		f = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using Graphviz with pinned node
// positions.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the root svg tag so the drawing scales to its
// container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
