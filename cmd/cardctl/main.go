// Package main implements cardctl, a command-line companion to the
// cardforge server: it parses notes files into cards and moves sets in and
// out of the same local store the server uses.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cardforge/cardforge/internal/domain"
	"github.com/cardforge/cardforge/internal/editor"
	"github.com/cardforge/cardforge/internal/parser"
	"github.com/cardforge/cardforge/internal/platform/sqlite"
	"github.com/cardforge/cardforge/internal/service"
	"github.com/cardforge/cardforge/internal/store"
)

var dbPath string

func main() {
	root := &cobra.Command{
		Use:           "cardctl",
		Short:         "Manage cardforge flashcard sets from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "cardforge.db", "path to the cardforge store")

	root.AddCommand(parseCmd(), listCmd(), importCmd(), exportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openService opens the store at --db and builds the collection service
// over it. The returned closer must be called when done.
func openService() (*service.CollectionService, func(), error) {
	gateway, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store at %q: %w", dbPath, err)
	}

	// Keep CLI output clean: log warnings and errors only.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	sets := store.NewKVCollectionStore(gateway, logger)
	svc := service.NewCollectionService(sets, logger)

	closer := func() {
		if err := gateway.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "warning: failed to close store:", err)
		}
	}
	return svc, closer, nil
}

// parseCmd parses a notes file (or stdin) into cards. With --save the cards
// become a new set in the store; otherwise they are printed as JSON.
func parseCmd() *cobra.Command {
	var saveName string
	var tagsText string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a notes file into question/answer cards",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text []byte
			var err error
			if len(args) == 1 {
				text, err = os.ReadFile(args[0])
			} else {
				text, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			cards := parser.Parse(string(text))
			if len(cards) == 0 {
				return fmt.Errorf("no cards recognized in input")
			}

			if saveName == "" {
				return printJSON(cmd.OutOrStdout(), cards)
			}

			set, err := domain.NewSet(saveName, editor.ParseTags(tagsText), cards)
			if err != nil {
				return err
			}

			svc, closer, err := openService()
			if err != nil {
				return err
			}
			defer closer()

			if err := svc.Create(context.Background(), *set); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved set %q with %d card(s)\n", set.Name, len(set.Cards))
			return nil
		},
	}
	cmd.Flags().StringVar(&saveName, "save", "", "save the parsed cards as a set with this name")
	cmd.Flags().StringVar(&tagsText, "tags", "", "comma-separated tags for the saved set")
	return cmd
}

// listCmd prints the stored sets, most recent first.
func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the stored flashcard sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closer, err := openService()
			if err != nil {
				return err
			}
			defer closer()

			sets, err := svc.List(context.Background(), service.Query{})
			if err != nil {
				return err
			}
			if len(sets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sets stored.")
				return nil
			}

			for _, set := range sets {
				created := time.UnixMilli(set.Created).Format("2006-01-02 15:04")
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-30s %3d card(s)  %s\n",
					set.ID, set.Name, len(set.Cards), created)
			}
			return nil
		},
	}
}

// importCmd adds a previously exported set file to the store.
func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import an exported set file into the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %q: %w", args[0], err)
			}

			svc, closer, err := openService()
			if err != nil {
				return err
			}
			defer closer()

			set, err := svc.Import(context.Background(), data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported set %q with %d card(s)\n", set.Name, len(set.Cards))
			return nil
		},
	}
}

// exportCmd writes one set to a JSON file named after the set.
func exportCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export <set-id>",
		Short: "Export a set to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid set ID %q: %w", args[0], err)
			}

			svc, closer, err := openService()
			if err != nil {
				return err
			}
			defer closer()

			filename, data, err := svc.Export(context.Background(), id)
			if err != nil {
				return err
			}

			path := filepath.Join(outDir, filename)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %q: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", ".", "directory to write the exported file into")
	return cmd
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
