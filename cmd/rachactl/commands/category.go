package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"racha/internal/core"
)

func categoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage expense categories",
	}
	cmd.AddCommand(categoryAddCmd(), categoryListCmd(), categoryRmCmd())
	return cmd
}

func categoryAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := svc.AddCategory(cmd.Context(), core.Category{Name: args[0]})
			if err != nil {
				return err
			}
			fmt.Printf("Added %s (id %d)\n", c.Name, c.ID)
			return nil
		},
	}
}

func categoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range svc.Categories() {
				fmt.Printf("%d\t%s\n", c.ID, c.Name)
			}
			return nil
		},
	}
}

func categoryRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a category (expenses keep their history)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return svc.DeleteCategory(cmd.Context(), id)
		},
	}
}
