package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/martinhruska/scopeburn/internal/cli/formatter"
	"github.com/martinhruska/scopeburn/internal/domain"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage the project backlog",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectUpdateCmd(app),
		newProjectProgressCmd(app),
		newProjectRoleCmd(app),
		newProjectStartCmd(app),
		newProjectStatusCmd(app),
		newProjectArchiveCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

// parseRoleSpec parses "role=planned" or "role=planned:done".
func parseRoleSpec(spec string) (role string, planned, done float64, err error) {
	parts := strings.SplitN(spec, "=", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", 0, 0, fmt.Errorf("invalid role spec %q, expected role=planned[:done]", spec)
	}
	role = parts[0]

	values := strings.SplitN(parts[1], ":", 2)
	planned, err = strconv.ParseFloat(values[0], 64)
	if err != nil || planned < 0 {
		return "", 0, 0, fmt.Errorf("invalid planned mandays in %q", spec)
	}
	if len(values) == 2 {
		done, err = strconv.ParseFloat(values[1], 64)
		if err != nil || done < 0 {
			return "", 0, 0, fmt.Errorf("invalid done value in %q", spec)
		}
	}
	return role, planned, done, nil
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, deadline, startDay string
	var priority int
	var roles []string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return runProjectWizard(app, cmd)
			}
			if name == "" {
				return fmt.Errorf("--name is required (or use --interactive)")
			}

			p := &domain.Project{
				ID:       uuid.New().String(),
				Name:     name,
				Priority: priority,
				Status:   domain.ProjectNotStarted,
				Roles:    make(map[string]domain.RoleEffort),
			}
			if deadline != "" {
				d, err := parseDateFlag("deadline", deadline)
				if err != nil {
					return err
				}
				p.Deadline = &d
			}
			if startDay != "" {
				d, err := parseDateFlag("start day", startDay)
				if err != nil {
					return err
				}
				p.StartDay = &d
			}
			for _, spec := range roles {
				role, planned, done, err := parseRoleSpec(spec)
				if err != nil {
					return err
				}
				p.Roles[role] = domain.RoleEffort{PlannedMandays: planned, DoneValue: done}
			}

			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s (%s)\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().IntVar(&priority, "priority", 100, "Priority (lower = scheduled earlier)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().StringVar(&startDay, "start-day", "", "Earliest start day (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&roles, "role", nil, "Role plan, e.g. fe=20 or be=30:12 (repeatable)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Collect project details via a form")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived projects")

	return cmd
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect PROJECT",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatProjectInspect(p))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, deadline, startDay string
	var priority int

	cmd := &cobra.Command{
		Use:   "update PROJECT",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var changed int
			cmd.Flags().Visit(func(*pflag.Flag) { changed++ })
			if changed == 0 {
				return fmt.Errorf("nothing to update, pass at least one flag")
			}

			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("priority") {
				p.Priority = priority
			}
			if cmd.Flags().Changed("deadline") {
				if deadline == "" {
					p.Deadline = nil
				} else {
					d, err := parseDateFlag("deadline", deadline)
					if err != nil {
						return err
					}
					p.Deadline = &d
				}
			}
			if cmd.Flags().Changed("start-day") {
				if startDay == "" {
					p.StartDay = nil
				} else {
					d, err := parseDateFlag("start day", startDay)
					if err != nil {
						return err
					}
					p.StartDay = &d
				}
			}

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated project %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().IntVar(&priority, "priority", 0, "Priority (lower = scheduled earlier)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVar(&startDay, "start-day", "", "Earliest start day (YYYY-MM-DD, empty clears)")

	return cmd
}

func newProjectProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress PROJECT ROLE DONE",
		Short: "Record progress on a role (mandays spent or percent)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			done, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid done value %q", args[2])
			}
			if err := app.Projects.SetProgress(ctx, projectID, args[1], done); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s done on %s\n", args[2], args[1])
			return nil
		},
	}
}

func newProjectRoleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "role",
		Short: "Manage a project's role plan",
	}

	var done float64
	set := &cobra.Command{
		Use:   "set PROJECT ROLE PLANNED",
		Short: "Set or update a role's planned mandays",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			planned, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid planned mandays %q", args[2])
			}
			if err := app.Projects.SetRoleEffort(ctx, projectID, args[1], planned, done); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %smd\n", args[1], args[2])
			return nil
		},
	}
	set.Flags().Float64Var(&done, "done", 0, "Done value (mandays spent or percent)")

	remove := &cobra.Command{
		Use:   "remove PROJECT ROLE",
		Short: "Remove a role from the plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.RemoveRole(ctx, projectID, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed role %s\n", args[1])
			return nil
		},
	}

	cmd.AddCommand(set, remove)
	return cmd
}

func newProjectStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start PROJECT",
		Short: "Mark a project in progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Start(ctx, projectID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started project %s\n", args[0])
			return nil
		},
	}
}

func newProjectStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status PROJECT STATUS",
		Short: "Set a project's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.SetStatus(ctx, projectID, domain.ProjectStatus(args[1])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Project %s is now %s\n", args[0], args[1])
			return nil
		},
	}
}

func newProjectArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive PROJECT",
		Short: "Archive a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Archive(ctx, projectID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Archived project %s\n", args[0])
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove PROJECT",
		Short: "Remove a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, projectID, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed project %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove even when not archived")

	return cmd
}
