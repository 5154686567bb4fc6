package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martinhruska/scopeburn/internal/app"
	"github.com/martinhruska/scopeburn/internal/cli/formatter"
)

func newForecastCmd(appRef *App) *cobra.Command {
	var on string
	var includeArchived bool

	cmd := &cobra.Command{
		Use:   "forecast [PROJECT]",
		Short: "Estimate delivery dates for the backlog",
		Long: "Estimate delivery dates for the backlog. Without arguments the " +
			"whole scope is forecast in priority order; with a project the " +
			"report focuses on that project's roles.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var req app.ForecastRequest
			req.IncludeArchived = includeArchived
			if on != "" {
				day, err := parseDateFlag("forecast date", on)
				if err != nil {
					return err
				}
				req.Now = &day
			}

			if len(args) == 1 {
				projectID, err := resolveProjectID(ctx, appRef, args[0])
				if err != nil {
					return err
				}
				view, err := appRef.Forecast.ForecastProject(ctx, projectID, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatProjectForecast(view))
				return nil
			}

			resp, err := appRef.Forecast.Forecast(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatForecast(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&on, "on", "", "Forecast as of this date (YYYY-MM-DD) instead of today")
	cmd.Flags().BoolVar(&includeArchived, "all", false, "Include archived projects")

	return cmd
}

func newTimelineCmd(appRef *App) *cobra.Command {
	var on string

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the priority-ordered delivery timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req app.ForecastRequest
			if on != "" {
				day, err := parseDateFlag("forecast date", on)
				if err != nil {
					return err
				}
				req.Now = &day
			}

			entries, err := appRef.Forecast.Timeline(context.Background(), req)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to schedule.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatTimeline(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&on, "on", "", "Forecast as of this date (YYYY-MM-DD) instead of today")

	return cmd
}

func newSlipCmd(appRef *App) *cobra.Command {
	var on string

	cmd := &cobra.Command{
		Use:   "slip",
		Short: "Summarize slippage and reserve across the scope",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req app.ForecastRequest
			if on != "" {
				day, err := parseDateFlag("forecast date", on)
				if err != nil {
					return err
				}
				req.Now = &day
			}

			resp, err := appRef.Forecast.Forecast(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatSlipReport(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&on, "on", "", "Forecast as of this date (YYYY-MM-DD) instead of today")

	return cmd
}
