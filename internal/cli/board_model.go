package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/martinhruska/scopeburn/internal/app"
	"github.com/martinhruska/scopeburn/internal/cli/formatter"
)

type boardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func newBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type forecastLoadedMsg struct {
	resp *app.ForecastResponse
}

type forecastFailedMsg struct {
	err error
}

// boardModel renders the scope forecast as a two-pane board: a project list
// on the left and the selected project's role breakdown on the right.
type boardModel struct {
	app     *App
	keys    boardKeyMap
	resp    *app.ForecastResponse
	cursor  int
	width   int
	height  int
	loading bool
	err     error
}

func newBoardModel(appRef *App, resp *app.ForecastResponse) boardModel {
	return boardModel{
		app:  appRef,
		keys: newBoardKeyMap(),
		resp: resp,
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) refreshCmd() tea.Cmd {
	appRef := m.app
	return func() tea.Msg {
		resp, err := appRef.Forecast.Forecast(context.Background(), app.ForecastRequest{})
		if err != nil {
			return forecastFailedMsg{err: err}
		}
		return forecastLoadedMsg{resp: resp}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case forecastLoadedMsg:
		m.resp = msg.resp
		m.loading = false
		m.err = nil
		if m.cursor >= len(m.resp.Projects) {
			m.cursor = len(m.resp.Projects) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case forecastFailedMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.resp.Projects)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.refreshCmd()
		}
	}

	return m, nil
}

func (m boardModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Delivery Board"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("forecast failed: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	if len(m.resp.Projects) == 0 {
		b.WriteString(formatter.Dim("No schedulable projects."))
	} else {
		list := m.renderList()
		detail := formatter.FormatProjectForecast(&m.resp.Projects[m.cursor])
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail))
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())

	return b.String()
}

func (m boardModel) renderList() string {
	var rows []string
	for i, p := range m.resp.Projects {
		marker := "  "
		nameStyle := formatter.StyleFg
		if i == m.cursor {
			marker = formatter.StyleHeader.Render("> ")
			nameStyle = formatter.StyleBold
		}
		line := fmt.Sprintf("%s%s %s %s",
			marker,
			formatter.Dim(fmt.Sprintf("%3d", p.Priority)),
			nameStyle.Render(p.ProjectName),
			formatter.SlipIndicator(p.SlipDays),
		)
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}

func (m boardModel) renderStatusLine() string {
	if m.loading {
		return formatter.Dim("refreshing…")
	}
	s := m.resp.Summary
	summary := fmt.Sprintf("%d projects · %d delayed · %d on time · %d ahead",
		s.Total, s.Delayed, s.OnTime, s.Ahead)
	help := "↑/↓ select · r refresh · q quit"
	return formatter.Dim(summary + "   " + help)
}
