package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timemap/internal/ui"
)

var showCmd = &cobra.Command{
	Use:     "show [date]",
	Aliases: []string{"ls"},
	Short:   "Show everything on a day",
	Long: `Show the files, notes and diary entries of a day along with every
todo that was open on it. Defaults to today.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := "today"
		if len(args) == 1 {
			input = args[0]
		}
		day, err := cli.parseDate(input)
		if err != nil {
			return err
		}

		items, err := cli.store.GetItemsFor(day)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.HeaderStyle.Render(day))
		if len(items) == 0 {
			fmt.Fprintln(out, ui.MutedStyle.Render("Nothing here yet."))
			return nil
		}
		for _, item := range items {
			fmt.Fprintln(out, ui.ItemLine(item))
		}
		return nil
	},
}

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Export every item, trashed ones included",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := cli.store.GetAllEntries()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(cmd, entries)
		}

		for _, e := range entries {
			line := fmt.Sprintf("%s  %-5s  ", e.Date, e.Type)
			if e.Alias != nil && *e.Alias != "" {
				line += *e.Alias + ": "
			}
			line += e.Content
			if e.Mood != nil && *e.Mood != "" {
				line += ui.MutedStyle.Render(" (mood: " + *e.Mood + ")")
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

// writeJSON prints v as indented JSON
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	entriesCmd.Flags().Bool("json", false, "output as JSON")
}
