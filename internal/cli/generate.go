package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeongen/internal/export"
	"github.com/samdwyer/dungeongen/internal/telemetry"
	"github.com/samdwyer/dungeongen/internal/world"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	gen    genOpts
	format string // output format: text, json, dot, svg
	output string // output file path, stdout when empty
}

func newGenerateCmd() *cobra.Command {
	opts := generateOpts{format: export.FormatText}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dungeon and write it out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := export.ValidateFormat(opts.format); err != nil {
				return err
			}
			cfg, err := buildConfig(cmd, &opts.gen)
			if err != nil {
				return err
			}
			return runGenerate(cmd.Context(), cfg, &opts, cmd.OutOrStdout())
		},
	}

	addGenFlags(cmd, &opts.gen)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text (default), json, dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func runGenerate(ctx context.Context, cfg world.Config, opts *generateOpts, stdout io.Writer) error {
	ctx, logger, span := startRun(ctx, "cli.generate", cfg)
	defer span.End()

	d, err := world.Generate(ctx, cfg, world.WithLogger(logger))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		return err
	}
	logger.Info("generated dungeon",
		"rooms", len(d.Rooms),
		"main_rooms", d.MainRoomCount(),
		"hallways", d.HallwayCount(),
		"included", d.IncludedCount())

	if opts.output == "" {
		return export.Write(stdout, opts.format, d)
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err := export.Write(f, opts.format, d); err != nil {
		f.Close()
		span.RecordError(err)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("wrote dungeon", "path", opts.output, "format", opts.format)
	return nil
}

// startRun opens the root span of one CLI invocation and tags it and the
// logger with a fresh run ID.
func startRun(ctx context.Context, name string, cfg world.Config) (context.Context, *log.Logger, trace.Span) {
	runID := uuid.NewString()
	logger := loggerFromContext(ctx).With("run", runID[:8])

	ctx, span := telemetry.Tracer("cli").Start(ctx, name, trace.WithAttributes(
		attribute.String("run.id", runID),
		attribute.Int64("dungeon.seed", cfg.Seed),
		attribute.Int("dungeon.room_count", cfg.RoomCount),
	))
	logger.Debug("starting run", "seed", cfg.Seed, "rooms", cfg.RoomCount)
	return withLogger(ctx, logger), logger, span
}
