package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timemap/internal/models"
	"github.com/balkashynov/timemap/internal/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change the content or alias of an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		contentSet := flags.Changed("content")
		aliasSet := flags.Changed("alias")
		if !contentSet && !aliasSet {
			return errors.New("nothing to change, use --content or --alias")
		}

		if _, err := cli.store.GetItem(id); err != nil {
			return err
		}
		if contentSet {
			content, _ := flags.GetString("content")
			if err := cli.store.UpdateItemContent(id, content); err != nil {
				return err
			}
		}
		if aliasSet {
			alias, _ := flags.GetString("alias")
			if err := cli.store.UpdateItemAlias(id, alias); err != nil {
				return err
			}
		}
		return printUpdated(cmd, id)
	},
}

var editDiaryCmd = &cobra.Command{
	Use:   "edit-diary <id>",
	Short: "Rewrite a diary entry",
	Long: `Rewrite the title, mood and text of a diary entry.
Flags that are not given keep their current value.`,
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
		if item.Type != models.TypeDiary {
			return fmt.Errorf("item #%d is a %s, not a diary entry", id, item.Type)
		}

		flags := cmd.Flags()
		title, mood, content := item.DisplayAlias(), item.DisplayMood(), item.Content
		if flags.Changed("title") {
			title, _ = flags.GetString("title")
		}
		if flags.Changed("mood") {
			mood, _ = flags.GetString("mood")
		}
		if flags.Changed("content") {
			content, _ = flags.GetString("content")
		}

		if err := cli.store.UpdateDiaryItem(id, title, mood, content); err != nil {
			return err
		}
		return printUpdated(cmd, id)
	},
}

func printUpdated(cmd *cobra.Command, id uint) error {
	item, err := cli.store.GetItem(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.SuccessStyle.Render("Updated"), ui.ItemLine(*item))
	return nil
}

func init() {
	editCmd.Flags().StringP("content", "c", "", "new content (path for files)")
	editCmd.Flags().StringP("alias", "a", "", "new alias, empty to clear")

	editDiaryCmd.Flags().String("title", "", "entry title")
	editDiaryCmd.Flags().StringP("mood", "m", "", "mood of the day")
	editDiaryCmd.Flags().StringP("content", "c", "", "entry text")
}
