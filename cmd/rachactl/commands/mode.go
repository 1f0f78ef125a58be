package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"racha/internal/core"
)

func modeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode",
		Short: "Show or change the division mode",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Show the current division mode",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Println(svc.Mode())
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <equal|proportional>",
			Short: "Switch the division mode",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				mode := core.DivisionMode(args[0])
				if err := svc.SetDivisionMode(cmd.Context(), mode); err != nil {
					return err
				}
				fmt.Printf("Division mode set to %s\n", mode)
				return nil
			},
		},
	)
	return cmd
}
