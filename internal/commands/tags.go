package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timemap/internal/parser"
	"github.com/balkashynov/timemap/internal/ui"
)

var tagCmd = &cobra.Command{
	Use:   "tag <id> [tags...]",
	Short: "Replace the tags of an item",
	Long: `Replace the tags of an item. Tags that end up unused are removed.
Give no tags to clear them all.

Example:
  timemap tag 12 work "#errands,home"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if _, err := cli.store.GetItem(id); err != nil {
			return err
		}

		names := parser.SplitTags(strings.Join(args[1:], ","))
		if err := cli.store.UpdateItemTags(id, names); err != nil {
			return err
		}

		tags, err := cli.store.GetTagsForItem(id)
		if err != nil {
			return err
		}
		chips := make([]string, 0, len(tags))
		for _, tag := range tags {
			chips = append(chips, ui.TagChip(tag))
		}

		out := cmd.OutOrStdout()
		if len(chips) == 0 {
			fmt.Fprintf(out, "Cleared tags of #%d\n", id)
			return nil
		}
		fmt.Fprintf(out, "Tagged #%d: %s\n", id, strings.Join(chips, " "))
		return nil
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags [tag-id]",
	Short: "List tags, or the items carrying one tag",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			tagID, err := parseID(args[0])
			if err != nil {
				return err
			}
			items, err := cli.store.GetItemsByTag(tagID)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(out, ui.MutedStyle.Render("No items with this tag."))
				return nil
			}
			for _, item := range items {
				fmt.Fprintf(out, "%s  %s\n", item.Date, ui.ItemLine(item))
			}
			return nil
		}

		tags, err := cli.store.GetAllTags()
		if err != nil {
			return err
		}
		if len(tags) == 0 {
			fmt.Fprintln(out, ui.MutedStyle.Render("No tags yet. Add some with 'timemap tag <id> <names...>'."))
			return nil
		}
		for _, tag := range tags {
			fmt.Fprintf(out, "%-4d %s\n", tag.ID, ui.TagLine(tag))
		}
		return nil
	},
}
