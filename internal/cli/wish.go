package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kupikrutcher/relationship-app/internal/model"
	"github.com/kupikrutcher/relationship-app/internal/records"
)

var wishCmd = &cobra.Command{
	Use:   "wish",
	Short: "Manage the wish list",
}

var (
	wishCategory    string
	wishDescription string
	wishOpen        bool
	wishFulfilled   bool
)

var wishAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a wish",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishAdd,
}

var wishListCmd = &cobra.Command{
	Use:   "list",
	Short: "List wishes",
	Args:  cobra.NoArgs,
	RunE:  runWishList,
}

var wishFulfillCmd = &cobra.Command{
	Use:   "fulfill <id>",
	Short: "Mark a wish fulfilled today",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishFulfill,
}

func init() {
	wishAddCmd.Flags().StringVarP(&wishCategory, "category", "c", "", "wish category")
	wishAddCmd.Flags().StringVar(&wishDescription, "description", "", "wish description")
	wishListCmd.Flags().BoolVar(&wishOpen, "open", false, "only unfulfilled wishes")
	wishListCmd.Flags().BoolVar(&wishFulfilled, "fulfilled", false, "only fulfilled wishes")
	wishListCmd.MarkFlagsMutuallyExclusive("open", "fulfilled")

	wishCmd.AddCommand(wishAddCmd)
	wishCmd.AddCommand(wishListCmd)
	wishCmd.AddCommand(wishFulfillCmd)
}

func runWishAdd(cmd *cobra.Command, args []string) error {
	in := model.WishInput{Title: args[0]}
	if wishCategory != "" {
		in.Category = &wishCategory
	}
	if wishDescription != "" {
		in.Description = &wishDescription
	}
	if err := in.Validate(); err != nil {
		return err
	}
	return withJournal(cmd.Context(), func(j *journal) error {
		w := j.AddWish(in)
		fmt.Fprintf(cmd.OutOrStdout(), "added wish %s\n", w.ID)
		return nil
	})
}

func runWishList(cmd *cobra.Command, args []string) error {
	filter := records.AllWishes
	switch {
	case wishOpen:
		filter = records.OpenWishes
	case wishFulfilled:
		filter = records.FulfilledWishes
	}
	return withJournal(cmd.Context(), func(j *journal) error {
		out := cmd.OutOrStdout()
		wishes := j.Wishes(filter)
		if len(wishes) == 0 {
			fmt.Fprintln(out, "No wishes.")
			return nil
		}
		for _, w := range wishes {
			mark := " "
			if w.Fulfilled {
				mark = "x"
			}
			fmt.Fprintf(out, "[%s] %s  (%s)", mark, w.Title, w.ID)
			if w.Category != nil {
				fmt.Fprintf(out, "  #%s", *w.Category)
			}
			fmt.Fprintln(out)
		}
		return nil
	})
}

func runWishFulfill(cmd *cobra.Command, args []string) error {
	return withJournal(cmd.Context(), func(j *journal) error {
		if !j.FulfillWish(args[0]) {
			return fmt.Errorf("wish %s not found", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "fulfilled %s\n", args[0])
		return nil
	})
}
