package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timemap/internal/models"
	"github.com/balkashynov/timemap/internal/ui"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a todo as done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dateStr, _ := cmd.Flags().GetString("date")
		finish, err := cli.parseDate(dateStr)
		if err != nil {
			return err
		}
		return setTodoDone(cmd, args[0], true, finish)
	},
}

var undoneCmd = &cobra.Command{
	Use:   "undone <id>",
	Short: "Reopen a finished todo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTodoDone(cmd, args[0], false, "")
	},
}

// setTodoDone toggles the todo only when it is not already in the wanted state
func setTodoDone(cmd *cobra.Command, arg string, done bool, finish string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	item, err := cli.store.GetItem(id)
	if err != nil {
		return err
	}
	if item.Type != models.TypeTodo {
		return fmt.Errorf("item #%d is a %s, not a todo", id, item.Type)
	}

	out := cmd.OutOrStdout()
	if item.IsDone == done {
		fmt.Fprintf(out, "Nothing to do: %s\n", ui.ItemLine(*item))
		return nil
	}

	if err := cli.store.ToggleTodoStatus(id, finish); err != nil {
		return err
	}
	if item, err = cli.store.GetItem(id); err != nil {
		return err
	}

	verb := "Reopened"
	if done {
		verb = "Done"
	}
	fmt.Fprintf(out, "%s %s\n", ui.SuccessStyle.Render(verb), ui.ItemLine(*item))
	return nil
}

func init() {
	doneCmd.Flags().StringP("date", "d", "", "day the todo was finished (default today)")
}
