package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"racha/internal/core"
)

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Manage shared expenses",
	}
	cmd.AddCommand(expenseAddCmd(), expenseListCmd(), expenseRmCmd())
	return cmd
}

func expenseAddCmd() *cobra.Command {
	var (
		amount   string
		paidBy   int64
		category int64
		notes    string
		date     string
	)
	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := core.ParseAmount(amount)
			if err != nil {
				return err
			}
			when, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			e, err := svc.AddExpense(cmd.Context(), core.Expense{
				Description: args[0],
				Amount:      parsed,
				PaidBy:      paidBy,
				CategoryID:  category,
				Notes:       notes,
				Date:        when,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Added %s %s paid by %s (id %d)\n",
				e.Description, core.FormatAmount(e.Amount), svc.PersonLabel(e.PaidBy), e.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "expense amount (required)")
	cmd.Flags().Int64Var(&paidBy, "paid-by", 0, "id of the person who paid (required)")
	cmd.Flags().Int64Var(&category, "category", 0, "category id")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("paid-by")
	return cmd
}

func expenseListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, e := range svc.Expenses() {
				fmt.Printf("%d\t%s\t%s\t%s\t%s\t%s\n",
					e.ID,
					e.Date.Format("2006-01-02"),
					e.Description,
					core.FormatAmount(e.Amount),
					svc.PersonLabel(e.PaidBy),
					svc.CategoryLabel(e.CategoryID))
			}
			return nil
		},
	}
}

func expenseRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return svc.DeleteExpense(cmd.Context(), id)
		},
	}
}
