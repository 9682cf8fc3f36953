package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/timemap/internal/db"
	"github.com/balkashynov/timemap/internal/models"
	"github.com/balkashynov/timemap/internal/parser"
	"github.com/balkashynov/timemap/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Link a file to a day",
	Long: `Link a file to a day. The path is stored as an absolute path.

Example:
  timemap add ./slides.pdf --date yesterday --alias "Kickoff slides" -t work`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path '%s': %w", args[0], err)
		}
		dateStr, _ := cmd.Flags().GetString("date")
		date, err := cli.parseDate(dateStr)
		if err != nil {
			return err
		}
		alias, _ := cmd.Flags().GetString("alias")

		item, err := cli.store.AddItem(db.AddItemRequest{
			Type:    models.TypeFile,
			Content: path,
			Date:    date,
			Alias:   alias,
			Tags:    tagsFlag(cmd),
		})
		if err != nil {
			return err
		}
		return printAdded(cmd, item.ID)
	},
}

var noteCmd = textItemCmd(models.TypeNote, "Add a note to a day")

var todoCmd = textItemCmd(models.TypeTodo, "Add a todo, open until marked done")

// textItemCmd builds the note and todo commands, which only differ in type
func textItemCmd(typ models.ItemType, short string) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <text>", typ),
		Short: short,
		Long: fmt.Sprintf(`%s

Inline #tags are pulled out of the text:
  timemap %s "Call the bank #money,errands"`, short, typ),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := parser.ParseContent(strings.Join(args, " "))
			if parsed.Text == "" {
				return errors.New("text is required")
			}
			dateStr, _ := cmd.Flags().GetString("date")
			date, err := cli.parseDate(dateStr)
			if err != nil {
				return err
			}

			item, err := cli.store.AddItem(db.AddItemRequest{
				Type:    typ,
				Content: parsed.Text,
				Date:    date,
				Tags:    append(parsed.Tags, tagsFlag(cmd)...),
			})
			if err != nil {
				return err
			}
			return printAdded(cmd, item.ID)
		},
	}
}

var diaryCmd = &cobra.Command{
	Use:   "diary <text>",
	Short: "Write a diary entry",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dateStr, _ := cmd.Flags().GetString("date")
		date, err := cli.parseDate(dateStr)
		if err != nil {
			return err
		}
		title, _ := cmd.Flags().GetString("title")
		mood, _ := cmd.Flags().GetString("mood")

		item, err := cli.store.AddItem(db.AddItemRequest{
			Type:    models.TypeDiary,
			Content: strings.Join(args, " "),
			Date:    date,
			Alias:   title,
			Mood:    mood,
		})
		if err != nil {
			return err
		}
		return printAdded(cmd, item.ID)
	},
}

// tagsFlag reads --tags, dropping any leading #
func tagsFlag(cmd *cobra.Command) []string {
	tags, _ := cmd.Flags().GetStringSlice("tags")
	return parser.SplitTags(strings.Join(tags, ","))
}

// printAdded reloads the item so its tags are shown
func printAdded(cmd *cobra.Command, id uint) error {
	item, err := cli.store.GetItem(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.SuccessStyle.Render("Added"), ui.ItemLine(*item))
	return nil
}

func init() {
	addCmd.Flags().StringP("date", "d", "", "day to file the item under (default today)")
	addCmd.Flags().StringP("alias", "a", "", "display name for the file")
	addCmd.Flags().StringSliceP("tags", "t", nil, "comma-separated tags")

	for _, cmd := range []*cobra.Command{noteCmd, todoCmd} {
		cmd.Flags().StringP("date", "d", "", "day to file the item under (default today)")
		cmd.Flags().StringSliceP("tags", "t", nil, "comma-separated tags")
	}

	diaryCmd.Flags().StringP("date", "d", "", "day of the entry (default today)")
	diaryCmd.Flags().String("title", "", "entry title")
	diaryCmd.Flags().StringP("mood", "m", "", "mood of the day")
}
