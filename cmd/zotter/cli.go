package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/zotter/internal/config"
	"github.com/hpungsan/zotter/internal/errors"
	"github.com/hpungsan/zotter/internal/ops"
	"github.com/hpungsan/zotter/internal/storage"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(store *storage.Store, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "zotter",
		Usage:   "Capture notes, search them and keep a recoverable trash",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Print results as JSON instead of tables"},
		},
		Commands: []*cli.Command{
			addCmd(store),
			listCmd(store),
			peekCmd(store),
			searchCmd(store),
			deleteCmd(store),
			trashCmd(store),
			recoverCmd(store),
			burnCmd(store),
			incinerateCmd(store),
			exportCmd(store, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// addCmd creates the add command.
func addCmd(store *storage.Store) *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Capture a new note",
		ArgsUsage: "TITLE [CONTENT]",
		Category:  "Active Notes",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Value: "General", Usage: "Category label"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 || c.Args().First() == "" {
				return outputError(errors.NewInvalidRequest("TITLE is required"))
			}

			output, err := ops.Add(store, ops.AddInput{
				Title:    c.Args().Get(0),
				Content:  c.Args().Get(1),
				Category: c.String("category"),
			})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(c.App.Writer, output)
			}
			return newView(c.App.Writer).added(output)
		},
	}
}

// listCmd creates the list command.
func listCmd(store *storage.Store) *cli.Command {
	return &cli.Command{
		Name:     "list",
		Usage:    "Show all active notes",
		Category: "Active Notes",
		Action: func(c *cli.Context) error {
			output, err := ops.List(store)
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(c.App.Writer, output)
			}
			return newView(c.App.Writer).noteList(output)
		},
	}
}

// peekCmd creates the peek command.
func peekCmd(store *storage.Store) *cli.Command {
	return &cli.Command{
		Name:      "peek",
		Usage:     "Read the full content of one note",
		ArgsUsage: "INDEX",
		Category:  "Active Notes",
		Action: func(c *cli.Context) error {
			index, err := parseIndex(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Peek(store, ops.PeekInput{Index: index})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(c.App.Writer, output)
			}
			return newView(c.App.Writer).peek(output)
		},
	}
}

// searchCmd creates the search command.
func searchCmd(store *storage.Store) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Find notes by keyword in title or content",
		ArgsUsage: "QUERY",
		Category:  "Active Notes",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "fuzzy", Aliases: []string{"f"}, Usage: "Match characters in order instead of a substring"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Search(store, ops.SearchInput{
				Query: c.Args().First(),
				Fuzzy: c.Bool("fuzzy"),
			})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(c.App.Writer, output)
			}
			return newView(c.App.Writer).searchResults(output)
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd(store *storage.Store) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Move a note to the trash",
		ArgsUsage: "INDEX",
		Category:  "Active Notes",
		Action: func(c *cli.Context) error {
			index, err := parseIndex(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Delete(store, ops.DeleteInput{Index: index})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(c.App.Writer, output)
			}
			return newView(c.App.Writer).message(styleWarn, "Moved to Trash:", output.Note.Title)
		},
	}
}

// trashCmd creates the trash command.
func trashCmd(store *storage.Store) *cli.Command {
	return &cli.Command{
		Name:     "trash",
		Usage:    "Show discarded notes",
		Category: "Trash Management",
		Action: func(c *cli.Context) error {
			output, err := ops.Trash(store)
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(c.App.Writer, output)
			}
			return newView(c.App.Writer).trashList(output)
		},
	}
}

// recoverCmd creates the recover command.
func recoverCmd(store *storage.Store) *cli.Command {
	return &cli.Command{
		Name:      "recover",
		Usage:     "Restore a discarded note to the end of the active notes",
		ArgsUsage: "INDEX",
		Category:  "Trash Management",
		Action: func(c *cli.Context) error {
			index, err := parseIndex(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Recover(store, ops.RecoverInput{Index: index})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(c.App.Writer, output)
			}
			return newView(c.App.Writer).message(styleOK, "Recovered:", output.Note.Title)
		},
	}
}

// burnCmd creates the burn command.
func burnCmd(store *storage.Store) *cli.Command {
	return &cli.Command{
		Name:      "burn",
		Usage:     "Permanently destroy one discarded note",
		ArgsUsage: "INDEX",
		Category:  "Trash Management",
		Action: func(c *cli.Context) error {
			index, err := parseIndex(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Burn(store, ops.BurnInput{Index: index})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(c.App.Writer, output)
			}
			return newView(c.App.Writer).message(styleDanger, "Permanently destroyed:", output.Note.Title)
		},
	}
}

// incinerateCmd creates the incinerate command.
func incinerateCmd(store *storage.Store) *cli.Command {
	return &cli.Command{
		Name:     "incinerate",
		Usage:    "Permanently destroy everything in the trash",
		Category: "Trash Management",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Skip the confirmation prompt"},
		},
		Action: func(c *cli.Context) error {
			confirm := promptConfirm(c.App.Reader, c.App.ErrWriter,
				"Are you sure you want to incinerate all items in Trash? This action cannot be undone.")
			if c.Bool("yes") {
				confirm = func() (bool, error) { return true, nil }
			}

			output, err := ops.Incinerate(store, ops.IncinerateInput{Confirm: confirm})
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(c.App.Writer, output)
			}
			return newView(c.App.Writer).incinerated(output)
		},
	}
}

// exportCmd creates the export command.
func exportCmd(store *storage.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export notes to JSONL or HTML",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Output file path (default: <export_dir>/<collection>-<ulid>.<format>)"},
			&cli.StringFlag{Name: "format", Value: string(ops.ExportFormatJSONL), Usage: "Output format: jsonl|html"},
			&cli.BoolFlag{Name: "trash", Usage: "Export the trash instead of the active notes"},
		},
		Action: func(c *cli.Context) error {
			input := ops.ExportInput{
				Path:       c.String("path"),
				Format:     ops.ExportFormat(c.String("format")),
				Collection: errors.CollectionActive,
			}
			if c.Bool("trash") {
				input.Collection = errors.CollectionTrash
			}

			output, err := ops.Export(store, cfg, input)
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(c.App.Writer, output)
			}
			return newView(c.App.Writer).exported(output)
		},
	}
}

// Helper functions

// outputJSON writes v as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if zErr, ok := err.(*errors.ZotterError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", zErr.Code, zErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// parseIndex reads the 1-based INDEX positional argument.
func parseIndex(c *cli.Context) (int, error) {
	if c.NArg() < 1 {
		return 0, errors.NewInvalidRequest("INDEX is required")
	}
	raw := c.Args().First()
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewInvalidRequest(fmt.Sprintf("INDEX must be a whole number, got %q", raw))
	}
	return index, nil
}

// promptConfirm returns a confirmation gate that asks question on w and reads
// one line from r. Only "y" or "yes" confirms; end of input declines.
func promptConfirm(r io.Reader, w io.Writer, question string) func() (bool, error) {
	return func() (bool, error) {
		fmt.Fprintf(w, "%s [y/N]: ", question)

		line, err := bufio.NewReader(r).ReadString('\n')
		if err != nil && err != io.EOF {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}
