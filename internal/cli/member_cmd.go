package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martinhruska/scopeburn/internal/cli/formatter"
	"github.com/martinhruska/scopeburn/internal/domain"
)

func newMemberCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage the team",
	}

	cmd.AddCommand(
		newMemberAddCmd(app),
		newMemberListCmd(app),
		newMemberUpdateCmd(app),
		newMemberRemoveCmd(app),
		newMemberVacationCmd(app),
	)

	return cmd
}

func newMemberAddCmd(app *App) *cobra.Command {
	var name, role string
	var fte float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a team member",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := &domain.TeamMember{Name: name, Role: role, FTE: fte}
			if err := app.Team.AddMember(context.Background(), m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s, %s FTE)\n", m.Name, m.Role, formatter.FormatFTE(m.FTE))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Member name")
	cmd.Flags().StringVar(&role, "role", "", "Role (fe|be|qa|pm|dpl or custom)")
	cmd.Flags().Float64Var(&fte, "fte", 1.0, "Capacity as a fraction of full time")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func newMemberListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List team members",
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := app.Team.ListMembers(context.Background())
			if err != nil {
				return err
			}
			if len(members) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No team members yet.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatMemberList(members))
			return nil
		},
	}
}

func newMemberUpdateCmd(app *App) *cobra.Command {
	var name, role string
	var fte float64

	cmd := &cobra.Command{
		Use:   "update MEMBER",
		Short: "Update a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			memberID, err := resolveMemberID(ctx, app, args[0])
			if err != nil {
				return err
			}
			m, err := app.Team.GetMember(ctx, memberID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				m.Name = name
			}
			if cmd.Flags().Changed("role") {
				m.Role = role
			}
			if cmd.Flags().Changed("fte") {
				m.FTE = fte
			}

			if err := app.Team.UpdateMember(ctx, m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", m.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Member name")
	cmd.Flags().StringVar(&role, "role", "", "Role")
	cmd.Flags().Float64Var(&fte, "fte", 1.0, "Capacity as a fraction of full time")

	return cmd
}

func newMemberRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove MEMBER",
		Short: "Remove a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			memberID, err := resolveMemberID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Team.RemoveMember(ctx, memberID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed member %s\n", args[0])
			return nil
		},
	}
}

func newMemberVacationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vacation",
		Short: "Manage member vacations",
	}

	var note string
	add := &cobra.Command{
		Use:   "add MEMBER START END",
		Short: "Record a vacation interval (inclusive, YYYY-MM-DD)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			memberID, err := resolveMemberID(ctx, app, args[0])
			if err != nil {
				return err
			}
			start, err := parseDateFlag("start date", args[1])
			if err != nil {
				return err
			}
			end, err := parseDateFlag("end date", args[2])
			if err != nil {
				return err
			}
			v := &domain.Vacation{MemberID: memberID, StartDate: start, EndDate: end, Note: note}
			if err := app.Team.AddVacation(ctx, v); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded vacation %s to %s\n", args[1], args[2])
			return nil
		},
	}
	add.Flags().StringVar(&note, "note", "", "Optional note")

	list := &cobra.Command{
		Use:   "list MEMBER",
		Short: "List a member's vacations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			memberID, err := resolveMemberID(ctx, app, args[0])
			if err != nil {
				return err
			}
			m, err := app.Team.GetMember(ctx, memberID)
			if err != nil {
				return err
			}
			if len(m.Vacations) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No vacations recorded for %s.\n", m.Name)
				return nil
			}
			headers := []string{"ID", "START", "END", "NOTE"}
			rows := make([][]string, 0, len(m.Vacations))
			for _, v := range m.Vacations {
				rows = append(rows, []string{
					formatter.TruncID(v.ID),
					v.StartDate.Format("2006-01-02"),
					v.EndDate.Format("2006-01-02"),
					v.Note,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.RenderTable(headers, rows))
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove VACATION_ID",
		Short: "Delete a vacation record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Team.RemoveVacation(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed vacation")
			return nil
		},
	}

	cmd.AddCommand(add, list, remove)
	return cmd
}
