package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martinhruska/scopeburn/internal/cli/formatter"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Configure the working calendar",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show calendar settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(context.Background())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if s.IncludeHolidays {
				region := s.Country
				if s.Subdivision != "" {
					region += "/" + s.Subdivision
				}
				fmt.Fprintf(out, "Holidays: %s (%s)\n", formatter.Bold("observed"), region)
			} else {
				fmt.Fprintf(out, "Holidays: %s\n", formatter.Dim("ignored, weekends only"))
			}
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var holidays bool
	var country, subdivision string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update calendar settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("holidays") {
				s.IncludeHolidays = holidays
			}
			if cmd.Flags().Changed("country") {
				s.Country = country
			}
			if cmd.Flags().Changed("subdivision") {
				s.Subdivision = subdivision
			}

			if err := app.Settings.Update(ctx, s); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Settings updated")
			return nil
		},
	}

	cmd.Flags().BoolVar(&holidays, "holidays", true, "Observe public holidays as non-working days")
	cmd.Flags().StringVar(&country, "country", "", "ISO 3166-1 alpha-2 country code for holidays")
	cmd.Flags().StringVar(&subdivision, "subdivision", "", "Optional region code, empty clears")

	return cmd
}
