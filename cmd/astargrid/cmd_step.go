package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/astargrid/astar"
	"github.com/katalvlaran/astargrid/render"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("51")).
			Bold(true).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)
)

func newStepCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "step",
		Short: "Step through a search interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.newEngine(astar.Hooks{})
			if err != nil {
				return err
			}
			p := tea.NewProgram(newStepModel(e),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
}

// stepModel is the bubbletea model of the interactive stepper.
// The engine is shared by value copies of the model.
type stepModel struct {
	engine   *astar.Engine
	theme    render.Theme
	err      error
	quitting bool
}

func newStepModel(e *astar.Engine) stepModel {
	return stepModel{engine: e, theme: render.DefaultTheme()}
}

func (m stepModel) Init() tea.Cmd { return nil }

func (m stepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case " ", "enter", "n":
		_, m.err = m.engine.Step()
	case "r":
		_, m.err = m.engine.Run()
	case "x":
		m.engine.Reset()
		m.err = nil
	}
	return m, nil
}

func (m stepModel) View() string {
	if m.quitting {
		return ""
	}
	e := m.engine
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("A* %s", e.RunID())))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "status: %s  iterations: %d  frontier: %d  current: %v\n\n",
		e.Status(), e.Iterations(), e.FrontierLen(), e.Grid().Coordinate(e.Current()))
	b.WriteString(render.Styled(e, m.theme))
	b.WriteString("\n")
	b.WriteString(render.Legend(m.theme))
	b.WriteString("\n")

	if res := e.Result(); res.Status == astar.StatusFound {
		fmt.Fprintf(&b, "\ncost: %d  path: %s\n", res.Cost, formatPath(e.Grid(), res.Path))
	}
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	}

	b.WriteString(footerStyle.Render("space/enter: step  r: run  x: reset  q: quit"))
	b.WriteString("\n")
	return b.String()
}
