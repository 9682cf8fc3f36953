package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timemap/internal/parser"
	"github.com/balkashynov/timemap/internal/ui"
)

var calCmd = &cobra.Command{
	Use:   "cal [yyyy-mm]",
	Short: "Show a month with its busy days",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := ""
		if len(args) == 1 {
			input = args[0]
		}
		now := cli.now()
		year, month, err := parser.ParseMonth(input, now)
		if err != nil {
			return err
		}

		stats, err := cli.store.MonthStats(year, month)
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(cmd, stats)
		}

		marked, err := cli.store.MarkedDays(year, month)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.RenderMonth(year, month, stats, now))
		if len(marked) == 0 {
			fmt.Fprintln(out, ui.MutedStyle.Render("Nothing this month."))
			return nil
		}
		fmt.Fprintln(out, ui.RenderDayLegend(year, month, stats))
		fmt.Fprintf(out, "%d day(s) with items\n", len(marked))
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats [yyyy]",
	Short: "Show monthly totals for a year",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := ""
		if len(args) == 1 {
			input = args[0]
		}
		year, err := parser.ParseYear(input, cli.now())
		if err != nil {
			return err
		}

		stats, err := cli.store.YearStats(year)
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(cmd, stats)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderYear(stats))
		return nil
	},
}

func init() {
	calCmd.Flags().Bool("json", false, "output day counts as JSON")
	statsCmd.Flags().Bool("json", false, "output as JSON")
}
