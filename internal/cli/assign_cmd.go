package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martinhruska/scopeburn/internal/cli/formatter"
)

func newAssignCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Pin members to project roles",
		Long: "Pin members to project roles. A project with at least one " +
			"assignment is estimated from its assignments only; unassigned " +
			"roles with remaining work make it unschedulable.",
	}

	cmd.AddCommand(
		newAssignSetCmd(app),
		newAssignClearCmd(app),
		newAssignListCmd(app),
	)

	return cmd
}

func newAssignSetCmd(app *App) *cobra.Command {
	var allocation float64

	cmd := &cobra.Command{
		Use:   "set PROJECT MEMBER ROLE",
		Short: "Assign a member to a project role",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			memberID, err := resolveMemberID(ctx, app, args[1])
			if err != nil {
				return err
			}
			if err := app.Assignments.Assign(ctx, projectID, memberID, args[2], allocation); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Assigned %s to %s as %s (%s FTE)\n",
				args[1], args[0], args[2], formatter.FormatFTE(allocation))
			return nil
		},
	}

	cmd.Flags().Float64Var(&allocation, "fte", 1.0, "Share of the member's time on this project")

	return cmd
}

func newAssignClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear PROJECT MEMBER",
		Short: "Remove a member's assignment from a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			memberID, err := resolveMemberID(ctx, app, args[1])
			if err != nil {
				return err
			}
			if err := app.Assignments.Unassign(ctx, projectID, memberID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared assignment of %s on %s\n", args[1], args[0])
			return nil
		},
	}
}

func newAssignListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT",
		Short: "List a project's assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			assignments, err := app.Assignments.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			if len(assignments) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No assignments; the project is estimated from the whole team.")
				return nil
			}

			headers := []string{"MEMBER", "ROLE", "FTE"}
			rows := make([][]string, 0, len(assignments))
			for _, a := range assignments {
				name := a.MemberID
				if m, err := app.Team.GetMember(ctx, a.MemberID); err == nil {
					name = m.Name
				}
				rows = append(rows, []string{
					formatter.Bold(name),
					formatter.RoleBadge(a.Role),
					formatter.FormatFTE(a.AllocationFTE),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.RenderTable(headers, rows))
			return nil
		},
	}
}
