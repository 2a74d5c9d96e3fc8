package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"clubhub/internal/adapters/catalog"
	"clubhub/internal/adapters/editor"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the spot catalog fresh cards are drawn from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := newTable(cmd.OutOrStdout())
		t.AppendHeader(header("#", "NAME", "TYPE", "URL"))
		for i, s := range GetRuntime().Catalog.Batch() {
			t.AppendRow(table.Row{i + 1, s.Name, s.Type, shorten(s.URL, 48)})
		}
		source := GetRuntime().Config.CatalogPath
		if source == "" {
			source = "builtin"
		}
		t.SetCaption("source: %s", source)
		t.Render()
		return nil
	},
}

var catalogEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the catalog file in $EDITOR",
	Long: `Open the catalog file in $VISUAL or $EDITOR. When the file does not
exist yet it is seeded with the builtin clubs. A running clubhub picks up
the saved file and reloads the stack.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{offline: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.CatalogPath
		if path == "" {
			return fmt.Errorf("no catalog file configured: set catalog_path or $CLUBHUB_CATALOG")
		}
		if err := seedCatalog(path); err != nil {
			return err
		}
		if err := editor.New().Edit(path); err != nil {
			return err
		}
		if _, err := catalog.ReadFile(path); err != nil {
			return fmt.Errorf("catalog saved but invalid: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Catalog saved:", path)
		return nil
	},
}

func seedCatalog(path string) error {
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		return err
	}
	data, err := catalog.Marshal(catalog.Builtin().Batch())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogEditCmd)
}
