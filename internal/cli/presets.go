package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeongen/internal/preset"
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36")).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
	styleBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in generation presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := preset.LoadRegistry()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), presetTable(registry.All()))
			return nil
		},
	}
}

func presetTable(defs []preset.Def) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleBorder).
		Headers("ID", "ROOMS", "RADIUS", "LOOPS", "DESCRIPTION").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		})

	for _, def := range defs {
		t.Row(
			def.ID,
			strconv.Itoa(def.Config.RoomCount),
			strconv.FormatFloat(def.Config.Radius, 'g', -1, 64),
			strconv.FormatFloat(def.Config.ExtraEdgeProbability, 'g', -1, 64),
			def.Description,
		)
	}
	return t
}
