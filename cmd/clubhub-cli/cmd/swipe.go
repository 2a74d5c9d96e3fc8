package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"clubhub/internal/application"
	"clubhub/internal/application/commands"
	"clubhub/internal/domain"
)

var swipeCmd = &cobra.Command{
	Use:   "swipe <like|skip|right|left>",
	Short: "Swipe the card on top",
	Long: `Swipe the card on top of the stack. Right (like) records the spot in
your likes, left (skip) passes on it. When five or fewer cards remain a
fresh page is appended.

Examples:
  clubhub-cli swipe like
  clubhub-cli swipe left`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"like", "skip", "right", "left"},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := domain.ParseDirection(args[0])
		if err != nil {
			return err
		}
		return swipe(cmd, dir)
	},
}

var likeCmd = &cobra.Command{
	Use:   "like",
	Short: "Like the card on top",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return swipe(cmd, domain.DirectionRight)
	},
}

var skipCmd = &cobra.Command{
	Use:   "skip",
	Short: "Skip the card on top",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return swipe(cmd, domain.DirectionLeft)
	},
}

var rewindCmd = &cobra.Command{
	Use:   "rewind",
	Short: "Bring the last swiped card back on top",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRewindCommand(GetRuntime().Session).Execute(cmd.Context())
		if err != nil {
			return err
		}
		renderResult(cmd.OutOrStdout(), result, showEdits)
		return nil
	},
}

var likesAll bool

var likesCmd = &cobra.Command{
	Use:   "likes",
	Short: "List liked spots, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := domain.DirectionRight
		if likesAll {
			dir = domain.DirectionNone
		}
		swipes, err := commands.NewListSwipesCommand(GetRuntime().Store, dir).Execute(cmd.Context())
		if err != nil {
			return err
		}
		renderSwipes(cmd.OutOrStdout(), swipes)
		return nil
	},
}

func swipe(cmd *cobra.Command, dir domain.Direction) error {
	result, err := commands.NewSwipeCommand(GetRuntime().Session, dir).Execute(cmd.Context())
	if err != nil {
		return err
	}
	renderResult(cmd.OutOrStdout(), result, showEdits)
	return nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &application.ValidationError{Field: "count", Message: fmt.Sprintf("%q is not a number", s)}
	}
	return n, application.ValidateCount("count", n)
}

func init() {
	rootCmd.AddCommand(swipeCmd)
	rootCmd.AddCommand(likeCmd)
	rootCmd.AddCommand(skipCmd)
	rootCmd.AddCommand(rewindCmd)
	rootCmd.AddCommand(likesCmd)
	likesCmd.Flags().BoolVarP(&likesAll, "all", "a", false, "include skipped spots")
}
