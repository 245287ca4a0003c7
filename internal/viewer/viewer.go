package viewer

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeongen/internal/telemetry"
	"github.com/samdwyer/dungeongen/internal/ui"
	"github.com/samdwyer/dungeongen/internal/world"
)

const (
	zoomStep = 1.25
	// maxZoom caps zooming in, in cells per dungeon unit.
	maxZoom = 64
	// panCells is how far one arrow press moves the view, in cells.
	panCells = 4
)

// Viewer holds the viewer state for one dungeon.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	dungeon  *world.Dungeon
	cfg      Config

	rooms    RoomView
	overlay  Overlay
	hallways int

	// zoom is zero until the view is fitted to the screen.
	zoom             float64
	offsetX, offsetY float64

	// frame indexes Dungeon.History during playback, -1 shows the result.
	frame   int
	playing atomic.Bool
	running bool
}

// New creates a viewer for d on the terminal.
func New(d *world.Dungeon, cfg Config) (*Viewer, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	v := newViewer(d, cfg)
	v.screen = screen
	v.renderer = ui.NewRenderer(screen)
	return v, nil
}

func newViewer(d *world.Dungeon, cfg Config) *Viewer {
	if cfg.FrameDelay <= 0 {
		cfg.FrameDelay = DefaultFrameDelay
	}
	return &Viewer{
		dungeon:  d,
		cfg:      cfg,
		rooms:    RoomsAll,
		overlay:  OverlayNone,
		hallways: d.HallwayCount(),
		frame:    -1,
		running:  true,
	}
}

// Run executes the viewer loop until the user quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("viewer")

	_, initSpan := tracer.Start(ctx, "viewer.init")
	initSpan.SetAttributes(
		attribute.Int("dungeon.rooms", len(v.dungeon.Rooms)),
		attribute.Int("dungeon.hallways", v.dungeon.HallwayCount()),
		attribute.Int("viewer.history_frames", len(v.dungeon.History)),
	)
	initSpan.End()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go v.tick(ctx)

	for v.running && ctx.Err() == nil {
		cols, rows := v.screen.Size()
		// Last row is the status line
		v.renderer.Render(v.frameFor(cols, rows-1))

		// Handle input (blocking)
		v.handleInput()
	}

	v.screen.Close()
	return nil
}

// tick wakes the loop once per frame delay while playback runs.
func (v *Viewer) tick(ctx context.Context) {
	t := time.NewTicker(v.cfg.FrameDelay)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			v.screen.Interrupt()
			return
		case <-t.C:
			if v.playing.Load() {
				v.screen.Interrupt()
			}
		}
	}
}

// handleInput processes a single input event.
func (v *Viewer) handleInput() {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ev)
	case *tcell.EventInterrupt:
		v.advance()
	case *tcell.EventResize:
		v.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ev *tcell.EventKey) {
	step := panCells / v.effectiveZoom()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyUp:
		v.offsetY += step
	case tcell.KeyDown:
		v.offsetY -= step
	case tcell.KeyLeft:
		v.offsetX += step
	case tcell.KeyRight:
		v.offsetX -= step

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case '+', '=':
			z := v.effectiveZoom()
			v.zoom = min(z*zoomStep, max(z, maxZoom))
		case '-', '_':
			v.zoom = v.effectiveZoom() / zoomStep
		case ' ':
			v.rooms = v.rooms.Next()
		case '1':
			v.hallways = max(v.hallways-1, 0)
		case '2':
			v.hallways = min(v.hallways+1, v.dungeon.HallwayCount())
		case '3':
			if v.hallways > 0 {
				v.hallways = 0
			} else {
				v.hallways = v.dungeon.HallwayCount()
			}
		case '4':
			v.overlay = v.overlay.Next()
		case 'a', 'A':
			v.togglePlayback()
		}
	}
}

func (v *Viewer) effectiveZoom() float64 {
	if v.zoom <= 0 {
		return 1
	}
	return v.zoom
}

// togglePlayback starts separation playback from the first recorded
// iteration, or stops it and returns to the final layout.
func (v *Viewer) togglePlayback() {
	if v.playing.Load() {
		v.playing.Store(false)
		v.frame = -1
		return
	}
	if len(v.dungeon.History) == 0 {
		return
	}
	v.frame = 0
	v.playing.Store(true)
}

// advance moves playback one iteration forward and stops after the last.
func (v *Viewer) advance() {
	if !v.playing.Load() {
		return
	}
	v.frame++
	if v.frame >= len(v.dungeon.History) {
		v.frame = -1
		v.playing.Store(false)
	}
}

// frameFor builds the frame for a cols x rows viewport. The first call fits
// the view to the dungeon.
func (v *Viewer) frameFor(cols, rows int) ui.Frame {
	if v.zoom <= 0 {
		fit := world.Fit(v.dungeon.Rooms, cols, rows)
		v.zoom, v.offsetX, v.offsetY = fit.Zoom, fit.OffsetX, fit.OffsetY
	}

	f := ui.Frame{
		Viewport: world.Viewport{
			Cols:    cols,
			Rows:    rows,
			Zoom:    v.zoom,
			OffsetX: v.offsetX,
			OffsetY: v.offsetY,
		},
		Paint: world.PaintOptions{Rooms: v.rooms.Filter()},
	}

	if v.frame >= 0 && v.frame < len(v.dungeon.History) {
		f.Rooms = v.dungeon.History[v.frame]
		f.Status = fmt.Sprintf("separation %d/%d  zoom %.2f  [a] stop  [q] quit",
			v.frame, len(v.dungeon.History)-1, v.zoom)
		return f
	}

	f.Rooms = v.dungeon.Rooms
	f.Hallways = v.dungeon.Hallways
	f.Paint.Hallways = v.hallways
	f.Overlay = v.overlay.Edges(v.dungeon)
	f.Status = fmt.Sprintf("rooms %s  hallways %d/%d  overlay %s  zoom %.2f",
		v.rooms, v.hallways, v.dungeon.HallwayCount(), v.overlay, v.zoom)
	return f
}
