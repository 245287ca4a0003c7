package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeongen/internal/viewer"
	"github.com/samdwyer/dungeongen/internal/world"
)

func newViewCmd() *cobra.Command {
	var (
		opts  genOpts
		delay time.Duration
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Generate a dungeon and explore it in the terminal",
		Long: `Generate a dungeon and open it in an interactive terminal viewer.

Keys:
  arrows  pan            +/-  zoom
  space   cycle rooms    4    cycle graph overlay
  1/2     fewer/more hallways
  3       all/no hallways
  a       play back room separation
  q, Esc  quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, &opts)
			if err != nil {
				return err
			}
			return runView(cmd.Context(), cfg, viewer.Config{FrameDelay: delay})
		},
	}

	addGenFlags(cmd, &opts)
	cmd.Flags().DurationVar(&delay, "frame-delay", viewer.DefaultFrameDelay, "time between separation playback frames")

	return cmd
}

func runView(ctx context.Context, cfg world.Config, vcfg viewer.Config) error {
	ctx, logger, span := startRun(ctx, "cli.view", cfg)
	defer span.End()

	d, err := world.Generate(ctx, cfg, world.WithLogger(logger), world.WithHistory())
	if err != nil {
		span.RecordError(err)
		return err
	}

	v, err := viewer.New(d, vcfg)
	if err != nil {
		return err
	}
	return v.Run(ctx)
}
