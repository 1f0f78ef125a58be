package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"racha/internal/core"
)

func personCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Manage household members",
	}
	cmd.AddCommand(personAddCmd(), personListCmd(), personRmCmd(), personSetCmd())
	return cmd
}

func personAddCmd() *cobra.Command {
	var (
		salary   string
		inactive bool
	)
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := 0.0
			if salary != "" {
				var err error
				parsed, err = core.ParseSalary(salary)
				if err != nil {
					return err
				}
			}

			p, err := svc.AddPerson(cmd.Context(), core.Person{
				Name:   args[0],
				Salary: parsed,
				Active: !inactive,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Added %s (id %d)\n", p.Name, p.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&salary, "salary", "", "monthly salary, used by proportional splitting")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "exclude from the balance pool")
	return cmd
}

func personListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List people",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range svc.People() {
				status := "active"
				if !p.Active {
					status = "inactive"
				}
				fmt.Printf("%d\t%s\t%s\t%s\n", p.ID, p.Name, core.FormatAmount(p.Salary), status)
			}
			return nil
		},
	}
}

func personRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return svc.DeletePerson(cmd.Context(), id)
		},
	}
}

func personSetCmd() *cobra.Command {
	var (
		name     string
		salary   string
		inactive bool
		active   bool
	)
	cmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Update a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			current, found := findPerson(id)
			if !found {
				return core.ErrNotFound
			}
			if name != "" {
				current.Name = name
			}
			if salary != "" {
				parsed, err := core.ParseSalary(salary)
				if err != nil {
					return err
				}
				current.Salary = parsed
			}
			if inactive {
				current.Active = false
			}
			if active {
				current.Active = true
			}

			return svc.UpdatePerson(cmd.Context(), current)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&salary, "salary", "", "new salary")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "exclude from the balance pool")
	cmd.Flags().BoolVar(&active, "active", false, "include in the balance pool")
	return cmd
}

func findPerson(id int64) (core.Person, bool) {
	for _, p := range svc.People() {
		if p.ID == id {
			return p, true
		}
	}
	return core.Person{}, false
}
