package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martinhruska/scopeburn/internal/cli/formatter"
	"github.com/martinhruska/scopeburn/internal/domain"
)

func newWorkflowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflow",
		Short: "Manage role ordering within a project",
		Long: "Manage role ordering within a project. Dependencies delay a " +
			"role until its upstream roles finish; parallel mode ignores the " +
			"graph and runs all roles concurrently.",
	}

	cmd.AddCommand(
		newWorkflowShowCmd(app),
		newWorkflowDepCmd(app),
		newWorkflowParallelCmd(app),
		newWorkflowStatusCmd(app),
	)

	return cmd
}

func newWorkflowShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PROJECT",
		Short: "Show a project's workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			wf, err := app.Workflows.Get(ctx, projectID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if wf == nil || (!wf.HasDependencies() && len(wf.Statuses) == 0 && !wf.Parallel) {
				fmt.Fprintln(out, "No workflow configured; roles run concurrently.")
				return nil
			}
			if wf.Parallel {
				fmt.Fprintln(out, "Mode: parallel (dependencies ignored)")
			} else {
				fmt.Fprintln(out, "Mode: dependency-ordered")
			}
			for _, d := range wf.Dependencies {
				fmt.Fprintf(out, "  %s -> %s\n", formatter.RoleBadge(d.FromRole), formatter.RoleBadge(d.ToRole))
			}
			for role, status := range wf.Statuses {
				if status != domain.WorkerActive {
					fmt.Fprintf(out, "  %s %s\n", formatter.RoleBadge(role), formatter.WorkerPill(status))
				}
			}
			cycle, err := app.Workflows.HasCycle(ctx, projectID)
			if err == nil && cycle {
				fmt.Fprintf(out, "%s\n", formatter.Dim("warning: dependency cycle, roles will be estimated concurrently"))
			}
			return nil
		},
	}
}

func newWorkflowDepCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dep",
		Short: "Manage role dependencies",
	}

	add := &cobra.Command{
		Use:   "add PROJECT FROM TO",
		Short: "Require FROM to finish before TO starts",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Workflows.AddDependency(ctx, projectID, args[1], args[2]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added dependency %s -> %s\n", args[1], args[2])
			if cycle, err := app.Workflows.HasCycle(ctx, projectID); err == nil && cycle {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n",
					formatter.Dim("warning: dependency cycle, roles will be estimated concurrently"))
			}
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove PROJECT FROM TO",
		Short: "Remove a role dependency",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Workflows.RemoveDependency(ctx, projectID, args[1], args[2]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed dependency %s -> %s\n", args[1], args[2])
			return nil
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}

func newWorkflowParallelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "parallel PROJECT on|off",
		Short: "Toggle parallel mode",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			var parallel bool
			switch args[1] {
			case "on":
				parallel = true
			case "off":
				parallel = false
			default:
				return fmt.Errorf("expected on or off, got %q", args[1])
			}
			if err := app.Workflows.SetParallel(ctx, projectID, parallel); err != nil {
				return err
			}
			if parallel {
				fmt.Fprintln(cmd.OutOrStdout(), "Parallel mode on; dependencies are ignored")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Parallel mode off; dependencies apply")
			}
			return nil
		},
	}
}

func newWorkflowStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status PROJECT ROLE STATUS",
		Short: "Set a role's worker status (active|waiting|blocked)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			status := domain.WorkerStatus(args[2])
			if err := app.Workflows.SetWorkerStatus(ctx, projectID, args[1], status); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Role %s is now %s\n", args[1], formatter.WorkerPill(status))
			return nil
		},
	}
}
