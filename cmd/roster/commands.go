package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/saltyorg/roster/internal/database"
	"github.com/saltyorg/roster/internal/roster"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid worker id %q", arg)
	}
	return id, nil
}

func (a *app) initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database file and workers table if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Database ready: %s\n", a.mgr.Path())
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all workers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd.OutOrStdout(), format, a.svc.List())
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", formatTable, "Output format: table, json or yaml")
	return cmd
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one worker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			w, ok := a.svc.Get(id)
			if !ok {
				return fmt.Errorf("worker %d not found", id)
			}
			out := cmd.OutOrStdout()
			if err := render(out, formatTable, []database.Worker{*w}); err != nil {
				return err
			}
			fmt.Fprintln(out, roster.Describe(*w))
			return nil
		},
	}
}

// workerFlags binds the editable worker fields to a command's flags.
type workerFlags struct {
	name, surname, lastname string
	age                     int
	city, position          string
}

func (f *workerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "First name")
	cmd.Flags().StringVar(&f.surname, "surname", "", "Surname")
	cmd.Flags().StringVar(&f.lastname, "lastname", "", "Patronymic")
	cmd.Flags().IntVar(&f.age, "age", 0, "Age (0-120)")
	cmd.Flags().StringVar(&f.city, "city", "", "City")
	cmd.Flags().StringVar(&f.position, "position", "", "Position")
}

// apply copies the flags the user set onto w.
func (f *workerFlags) apply(cmd *cobra.Command, w *database.Worker) {
	changed := cmd.Flags().Changed
	if changed("name") {
		w.Name = f.name
	}
	if changed("surname") {
		w.Surname = f.surname
	}
	if changed("lastname") {
		w.Lastname = f.lastname
	}
	if changed("age") {
		w.Age = f.age
	}
	if changed("city") {
		w.City = f.city
	}
	if changed("position") {
		w.Position = f.position
	}
}

func (a *app) addCmd() *cobra.Command {
	var flags workerFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new worker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := &database.Worker{}
			flags.apply(cmd, w)
			if err := roster.Validate(w); err != nil {
				return err
			}

			saved := a.svc.Add(w)
			if !saved.Persisted() {
				return fmt.Errorf("worker %s was not saved, see log for details", w.Surname)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added worker %d\n", saved.ID)
			return nil
		},
	}
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("surname")
	return cmd
}

func (a *app) updateCmd() *cobra.Command {
	var flags workerFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an existing worker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			w, ok := a.svc.Get(id)
			if !ok {
				return fmt.Errorf("worker %d not found", id)
			}

			flags.apply(cmd, w)
			if err := roster.Validate(w); err != nil {
				return err
			}

			if _, ok := a.svc.Edit(w); !ok {
				return fmt.Errorf("worker %d was not updated, see log for details", w.ID)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated worker %d\n", w.ID)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a worker",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !a.svc.Remove(id) {
				fmt.Fprintf(cmd.OutOrStdout(), "Worker %d not found, nothing deleted\n", id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted worker %d\n", id)
			return nil
		},
	}
}

func (a *app) searchCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "search [text]",
		Short: "Find workers whose surname or position contains text",
		Long:  `Find workers whose surname or position contains text. Without text every worker is listed.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return render(cmd.OutOrStdout(), format, a.svc.Search(query))
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", formatTable, "Output format: table, json or yaml")
	return cmd
}

func (a *app) vacuumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vacuum",
		Short: "Refresh planner statistics and compact the database file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.mgr.Optimize(); err != nil {
				return err
			}
			if err := a.mgr.Vacuum(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Database compacted")
			return nil
		},
	}
}
