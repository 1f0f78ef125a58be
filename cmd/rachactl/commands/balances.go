package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"racha/internal/core"
)

func balancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show who owes whom",
		RunE: func(cmd *cobra.Command, args []string) error {
			balances := svc.Balances()

			ids := make([]int64, 0, len(balances))
			for id := range balances {
				ids = append(ids, id)
			}
			sort.Slice(ids, func(i, j int) bool {
				return balances[ids[i]].Name < balances[ids[j]].Name
			})

			fmt.Printf("%-20s %12s %12s %12s\n", "NAME", "PAID", "OWES", "BALANCE")
			for _, id := range ids {
				b := balances[id]
				state := ""
				switch {
				case b.Settled():
					state = "settled"
				case b.Creditor():
					state = "is owed"
				default:
					state = "owes"
				}
				fmt.Printf("%-20s %12s %12s %12s  %s\n",
					b.Name,
					core.FormatAmount(b.Paid),
					core.FormatAmount(b.Owes),
					core.FormatAmount(b.Balance),
					state)
			}
			return nil
		},
	}
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show ledger totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := svc.Summary()
			fmt.Printf("Total expenses: %s\n", core.FormatAmount(s.TotalExpenses))
			fmt.Printf("Total payments: %s\n", core.FormatAmount(s.TotalPayments))
			fmt.Printf("Active people:  %d\n", s.ActivePeople)
			fmt.Printf("Categories:     %d\n", s.Categories)
			return nil
		},
	}
}
