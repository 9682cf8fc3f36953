package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timemap/internal/models"
)

var openerCmd = &cobra.Command{
	Use:   "opener <id>",
	Short: "Print the command configured to open an item",
	Long: `Print the command line that opens an item: the [defaults] opener for
the file extension (xdg-open when unset) for files, the editor for the rest.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		item, err := cli.store.GetItem(id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if item.Type == models.TypeFile {
			fmt.Fprintf(out, "%s %q\n", cli.cfg.OpenCommand(item.Content), item.Content)
			return nil
		}
		fmt.Fprintln(out, cli.cfg.Editor())
		return nil
	},
}
