package world

import (
	"context"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/dungeongen/internal/telemetry"
)

// Dungeon is the result of a generation run. All later stages index into
// the same fixed Rooms slice.
type Dungeon struct {
	Rooms []Room
	// MainRooms lists the indices of main rooms in ascending order.
	MainRooms []int
	Hallways  []Hallway

	// Graph holds the candidate and retained connections the hallways
	// were built from.
	Graph SpanningResult

	// Iterations and Converged report how the separation solver finished.
	Iterations int
	Converged  bool

	// Connected reports whether the spanning tree reaches every main room.
	// It is false when the triangulation left some main room without
	// candidate edges.
	Connected bool

	// History holds one room snapshot per separation iteration when
	// recording was requested.
	History [][]Room

	// TruncatedIndices counts triangulation indices ignored because they
	// did not form a whole triangle.
	TruncatedIndices int
}

// MainRoomCount returns the number of main rooms.
func (d *Dungeon) MainRoomCount() int {
	return len(d.MainRooms)
}

// HallwayCount returns the number of hallways.
func (d *Dungeon) HallwayCount() int {
	return len(d.Hallways)
}

// IncludedCount returns the number of rooms flagged as included.
func (d *Dungeon) IncludedCount() int {
	n := 0
	for _, r := range d.Rooms {
		if r.Flags.Included() {
			n++
		}
	}
	return n
}

// Option configures Generate.
type Option func(*options)

type options struct {
	logger       *log.Logger
	triangulator Triangulator
	record       bool
}

// WithLogger sets the logger stages report progress to.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTriangulator replaces the Delaunay triangulator.
func WithTriangulator(t Triangulator) Option {
	return func(o *options) { o.triangulator = t }
}

// WithHistory records every separation iteration in Dungeon.History.
func WithHistory() Option {
	return func(o *options) { o.record = true }
}

// Generate runs the whole pipeline: sample, separate, connect, build
// hallways and classify inclusion. Each stage completes before the next
// begins. Configuration and triangulation failures are returned as errors;
// separation hitting its cap is reported through Dungeon.Converged.
func Generate(ctx context.Context, cfg Config, opts ...Option) (*Dungeon, error) {
	o := options{
		logger:       log.New(io.Discard),
		triangulator: DelaunayTriangulator{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid config")
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	// Sample rooms
	_, sampleSpan := tracer.Start(ctx, "dungeon.sample")
	d, err := Sample(cfg, rng)
	if err != nil {
		sampleSpan.End()
		return nil, err
	}
	sampleSpan.SetAttributes(
		attribute.Int("dungeon.rooms", len(d.Rooms)),
		attribute.Int("dungeon.main_rooms", len(d.MainRooms)),
	)
	sampleSpan.End()
	o.logger.Debug("sampled rooms", "rooms", len(d.Rooms), "main_rooms", len(d.MainRooms))

	// Separate
	_, sepSpan := tracer.Start(ctx, "dungeon.separate")
	sep := d.Separate(SeparateOptions{
		MaxIterations: cfg.MaxIterations,
		Workers:       cfg.Workers,
		Record:        o.record,
	})
	sepSpan.SetAttributes(
		attribute.Int("separate.iterations", sep.Iterations),
		attribute.Bool("separate.converged", sep.Converged),
	)
	sepSpan.End()
	if sep.Converged {
		o.logger.Debug("separated rooms", "iterations", sep.Iterations)
	} else {
		o.logger.Warn("separation hit iteration cap, rooms may overlap", "iterations", sep.Iterations)
	}

	// Candidate graph
	_, graphSpan := tracer.Start(ctx, "dungeon.graph")
	candidates, err := BuildGraph(d, o.triangulator)
	if err != nil {
		graphSpan.RecordError(err)
		graphSpan.SetStatus(codes.Error, "triangulation failed")
		graphSpan.End()
		span.SetStatus(codes.Error, "triangulation failed")
		return nil, err
	}
	graphSpan.SetAttributes(attribute.Int("graph.candidate_edges", len(candidates.Edges)))
	graphSpan.End()
	d.TruncatedIndices = candidates.Truncated
	if candidates.Truncated > 0 {
		o.logger.Warn("triangulation returned a partial triangle", "ignored_indices", candidates.Truncated)
	}

	// Spanning tree plus loops
	_, treeSpan := tracer.Start(ctx, "dungeon.spanning")
	d.Graph = BuildSpanningGraph(candidates.Edges, len(d.MainRooms), cfg.ExtraEdgeProbability, rng)
	d.Connected = len(d.Graph.Tree) == max(len(d.MainRooms)-1, 0)
	treeSpan.SetAttributes(
		attribute.Int("spanning.tree_edges", len(d.Graph.Tree)),
		attribute.Int("spanning.retained_edges", len(d.Graph.Retained)),
		attribute.Bool("spanning.connected", d.Connected),
	)
	treeSpan.End()
	if !d.Connected {
		o.logger.Warn("spanning tree does not reach every main room",
			"tree", len(d.Graph.Tree), "main_rooms", len(d.MainRooms))
	}
	o.logger.Debug("built spanning graph",
		"candidates", len(candidates.Edges),
		"tree", len(d.Graph.Tree),
		"retained", len(d.Graph.Retained))

	// Hallways and inclusion
	_, hallSpan := tracer.Start(ctx, "dungeon.hallways")
	d.Hallways = BuildHallways(d, d.Graph)
	hallSpan.SetAttributes(attribute.Int("dungeon.hallways", len(d.Hallways)))
	hallSpan.End()

	_, inclSpan := tracer.Start(ctx, "dungeon.inclusion")
	d.ClassifyInclusion()
	inclSpan.SetAttributes(attribute.Int("dungeon.included_rooms", d.IncludedCount()))
	inclSpan.End()
	o.logger.Debug("classified rooms", "hallways", len(d.Hallways), "included", d.IncludedCount())

	span.SetAttributes(
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.main_room_count", len(d.MainRooms)),
		attribute.Int("dungeon.hallway_count", len(d.Hallways)),
		attribute.Bool("dungeon.converged", d.Converged),
		attribute.Bool("dungeon.connected", d.Connected),
		attribute.Int64("dungeon.seed", cfg.Seed),
	)

	return d, nil
}
