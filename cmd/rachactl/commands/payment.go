package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"racha/internal/core"
)

func paymentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Manage settlement payments",
	}
	cmd.AddCommand(paymentAddCmd(), paymentListCmd(), paymentRmCmd())
	return cmd
}

func paymentAddCmd() *cobra.Command {
	var (
		from   int64
		to     int64
		amount string
		notes  string
		date   string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a payment between two people",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := core.ParseAmount(amount)
			if err != nil {
				return err
			}
			when, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			p, err := svc.AddPayment(cmd.Context(), core.Payment{
				FromID: from,
				ToID:   to,
				Amount: parsed,
				Notes:  notes,
				Date:   when,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Recorded %s from %s to %s (id %d)\n",
				core.FormatAmount(p.Amount), svc.PersonLabel(p.FromID), svc.PersonLabel(p.ToID), p.ID)
			return nil
		},
	}
	cmd.Flags().Int64Var(&from, "from", 0, "id of the person paying (required)")
	cmd.Flags().Int64Var(&to, "to", 0, "id of the person receiving (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "payment amount (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func paymentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range svc.Payments() {
				fmt.Printf("%d\t%s\t%s -> %s\t%s\t%s\n",
					p.ID,
					p.Date.Format("2006-01-02"),
					svc.PersonLabel(p.FromID),
					svc.PersonLabel(p.ToID),
					core.FormatAmount(p.Amount),
					p.Notes)
			}
			return nil
		},
	}
}

func paymentRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return svc.DeletePayment(cmd.Context(), id)
		},
	}
}
