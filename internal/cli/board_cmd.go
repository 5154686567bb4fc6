package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/martinhruska/scopeburn/internal/app"
)

func newBoardCmd(appRef *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Interactive delivery board",
		Long: "Interactive delivery board. Shows the forecast for the whole " +
			"scope with a detail pane per project; refresh recomputes the " +
			"forecast without leaving the board.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if appRef.IsInteractive == nil || !appRef.IsInteractive() {
				return fmt.Errorf("the board requires an interactive terminal")
			}

			resp, err := appRef.Forecast.Forecast(context.Background(), app.ForecastRequest{})
			if err != nil {
				return err
			}

			m := newBoardModel(appRef, resp)
			p := tea.NewProgram(m, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}
