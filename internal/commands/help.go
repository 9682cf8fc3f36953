package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:         "help [command]",
	Short:       "Show help for timemap or one of its commands",
	Annotations: map[string]string{noStoreAnnotation: ""},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			target, _, err := cmd.Root().Find(args)
			if err != nil {
				return err
			}
			return target.Help()
		}
		fmt.Fprint(cmd.OutOrStdout(), helpText)
		return nil
	},
}

const helpText = `
timemap - files, notes, todos and diary on a calendar

ITEMS:

  add <path>              Link a file to a day
    -d, --date            Day (yyyy-mm-dd, dd/mm/yyyy, today, yesterday, N days ago)
    -a, --alias           Display name
    -t, --tags            Comma-separated tags
  note <text>             Add a note; inline #tags are extracted
  todo <text>             Add a todo; it stays on the calendar until done
  diary <text>            Write a diary entry
    --title, -m/--mood    Title and mood of the entry

  show [date]             Everything on a day, open todos included
  done <id> [-d date]     Mark a todo as done
  undone <id>             Reopen a todo
  edit <id>               Change --content or --alias
  edit-diary <id>         Change --title, --mood or --content of a diary entry
  opener <id>             Print the command that opens an item

TAGS:

  tag <id> [tags...]      Replace the tags of an item
  tags [tag-id]           List tags with counts, or items with one tag

TRASH:

  rm <id> [--hard]        Trash an item (the trash keeps the last 3)
  trash [ls]              List the trash
  trash recover           Restore the most recently trashed item
  trash empty             Delete everything in the trash

CALENDAR:

  cal [yyyy-mm]           Month grid with busy days
  stats [yyyy]            Monthly totals of a year
  entries [--json]        Export every item

GLOBAL FLAGS:

  --config <file>         Config file (default ~/.config/timemap/config.toml)
  --db <file>             Database file
  --debug                 Verbose logging to stderr

`

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{noStoreAnnotation: ""},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "timemap %s (commit %s, built %s)\n", version, commit, date)
	},
}
