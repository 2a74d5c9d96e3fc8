package cmd

import (
	"github.com/spf13/cobra"

	"clubhub/internal/adapters/catalog"
	"clubhub/internal/application/commands"
)

var diffCmd = &cobra.Command{
	Use:   "diff <old.yaml> <new.yaml>",
	Short: "Print the edit script between two spot sequences",
	Long: `Reconcile two spot sequences and print the edits that turn the first
into the second: removals, insertions, moves and updates, in the order
they must be applied.

Both files use the catalog layout with explicit ids:

  spots:
    - id: 1
      name: Squirrel Watchers
      type: Social`,
	Args:        cobra.ExactArgs(2),
	Annotations: map[string]string{offline: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		old, err := catalog.ReadFile(args[0])
		if err != nil {
			return err
		}
		updated, err := catalog.ReadFile(args[1])
		if err != nil {
			return err
		}

		result, err := commands.NewDiffCommand(old, updated).Execute(cmd.Context())
		if err != nil {
			return err
		}
		renderScript(cmd.OutOrStdout(), result.Script)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
