package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timemap/internal/db"
	"github.com/balkashynov/timemap/internal/models"
	"github.com/balkashynov/timemap/internal/ui"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Move an item to the trash",
	Long: fmt.Sprintf(`Move an item to the trash. The trash keeps the %d most recently
removed items; older ones are deleted for good. --hard skips the trash.`, db.TrashCapacity),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		item, err := findItem(id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if hard, _ := cmd.Flags().GetBool("hard"); hard {
			if err := cli.store.DeleteItem(id); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s\n", ui.SuccessStyle.Render("Deleted"), ui.ItemLine(*item))
			return nil
		}

		if item.IsTrashed() {
			return fmt.Errorf("item #%d is already in the trash", id)
		}
		if err := cli.store.SoftDelete(id); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", ui.SuccessStyle.Render("Trashed"), ui.ItemLine(*item))
		return nil
	},
}

var trashCmd = &cobra.Command{
	Use:   "trash",
	Short: "Inspect, recover or empty the trash",
	Args:  cobra.NoArgs,
	RunE:  listTrash,
}

var trashLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List trashed items, newest first",
	Args:    cobra.NoArgs,
	RunE:    listTrash,
}

var trashRecoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "Restore the most recently trashed item",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := cli.store.ListTrash()
		if err != nil {
			return err
		}
		ok, err := cli.store.RecoverLast()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !ok || len(items) == 0 {
			fmt.Fprintln(out, ui.MutedStyle.Render("Trash is empty."))
			return nil
		}
		item, err := cli.store.GetItem(items[0].ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", ui.SuccessStyle.Render("Recovered"), ui.ItemLine(*item))
		return nil
	},
}

var trashEmptyCmd = &cobra.Command{
	Use:   "empty",
	Short: "Delete every trashed item for good",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := cli.store.EmptyTrash()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d item(s) from the trash\n", n)
		return nil
	},
}

func listTrash(cmd *cobra.Command, args []string) error {
	items, err := cli.store.ListTrash()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, ui.MutedStyle.Render("Trash is empty."))
		return nil
	}
	for _, item := range items {
		fmt.Fprintln(out, ui.ItemLine(item))
	}
	return nil
}

// findItem looks an item up among live items, then in the trash
func findItem(id uint) (*models.Item, error) {
	item, err := cli.store.GetItem(id)
	if err == nil || !errors.Is(err, db.ErrNotFound) {
		return item, err
	}

	trashed, lerr := cli.store.ListTrash()
	if lerr != nil {
		return nil, lerr
	}
	for i := range trashed {
		if trashed[i].ID == id {
			return &trashed[i], nil
		}
	}
	return nil, err
}

func init() {
	rmCmd.Flags().Bool("hard", false, "delete permanently")

	trashCmd.AddCommand(trashLsCmd)
	trashCmd.AddCommand(trashRecoverCmd)
	trashCmd.AddCommand(trashEmptyCmd)
}
