package cmd

import (
	"github.com/spf13/cobra"

	"clubhub/internal/application/commands"
)

var showEdits bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the card stack",
	RunE: func(cmd *cobra.Command, args []string) error {
		deck, err := commands.NewShowCommand(GetRuntime().Session).Execute(cmd.Context())
		if err != nil {
			return err
		}
		renderDeck(cmd.OutOrStdout(), deck)
		return nil
	},
}

// operationCmd builds the subcommand for a drawer operation
func operationCmd(op commands.Operation, short string) *cobra.Command {
	use := op.Name
	args := cobra.NoArgs
	if op.TakesCount {
		use += " [count]"
		args = cobra.MaximumNArgs(1)
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			count := 1
			if len(args) == 1 {
				n, err := parseCount(args[0])
				if err != nil {
					return err
				}
				count = n
			}

			c, err := commands.NewOperationCommand(GetRuntime().Session, op.Name, count)
			if err != nil {
				return err
			}
			result, err := c.Execute(cmd.Context())
			if err != nil {
				return err
			}
			renderResult(cmd.OutOrStdout(), result, showEdits)
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.PersistentFlags().BoolVarP(&showEdits, "edits", "e", false, "print the edit script of each change")

	shorts := map[string]string{
		commands.OpReload:      "Replace the stack with a fresh page from the catalog",
		commands.OpAddFirst:    "Insert spots on top of the stack",
		commands.OpAddLast:     "Append spots at the end of the stack",
		commands.OpRemoveFirst: "Remove spots starting at the top",
		commands.OpRemoveLast:  "Remove spots from the end",
		commands.OpReplace:     "Replace the card on top with a new spot",
		commands.OpSwap:        "Swap the card on top with the last card",
	}
	for _, op := range commands.Operations {
		rootCmd.AddCommand(operationCmd(op, shorts[op.Name]))
	}
	rootCmd.AddCommand(operationCmd(
		commands.Operation{Name: commands.OpPaginate},
		"Append a fresh page of spots at the end",
	))
}
