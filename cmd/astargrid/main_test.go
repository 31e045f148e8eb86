package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astargrid/astar"
	"github.com/katalvlaran/astargrid/grid"
)

// cornerConfig is a 3×3 grid with only the centre blocked.
const cornerConfig = `
grid:
  rows: 3
  cols: 3
search:
  start_row: 0
  start_col: 0
  goal_row: 2
  goal_col: 2
layout:
  name: wall
  wall_col: 1
  gaps: [0, 2]
log:
  level: warn
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "astargrid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), err
}

func TestRun_Plain(t *testing.T) {
	out, err := execute(t, "run", "--plain", "--verify", "--config", writeConfig(t, cornerConfig))
	require.NoError(t, err)

	assert.Contains(t, out, "| @ & A |\n| A # & |\n| . A @ |\n")
	assert.Contains(t, out, "status=found iterations=3")
	assert.Contains(t, out, "cost=34 path=(0,0)(0,1)(1,2)(2,2)")
	assert.Contains(t, out, "verify: ok")
}

func TestRun_ForbidCornerCuttingFromEnv(t *testing.T) {
	t.Setenv("ASTARGRID_SEARCH_CORNER_CUTTING", "false")

	out, err := execute(t, "run", "--plain", "--verify", "--config", writeConfig(t, cornerConfig))
	require.NoError(t, err)
	assert.Contains(t, out, "cost=40")
}

func TestRun_CostsTable(t *testing.T) {
	out, err := execute(t, "run", "--plain", "--costs", "f", "--config", writeConfig(t, cornerConfig))
	require.NoError(t, err)
	assert.Contains(t, out, "f costs:\n   28   34   40\n")

	_, err = execute(t, "run", "--costs", "z", "--config", writeConfig(t, cornerConfig))
	assert.Error(t, err)
}

func TestRun_MetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "astargrid.prom")
	_, err := execute(t, "run", "--plain", "--metrics-file", path, "--config", writeConfig(t, cornerConfig))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `astargrid_searches_total{status="found"} 1`)
	assert.Contains(t, string(data), "astargrid_path_cost_sum 34")
}

func TestRun_Aborted(t *testing.T) {
	t.Setenv("ASTARGRID_SEARCH_MAX_ITERATIONS", "1")

	out, err := execute(t, "run", "--plain", "--config", writeConfig(t, cornerConfig))
	require.ErrorIs(t, err, astar.ErrAborted)
	assert.Contains(t, out, "status=aborted")
}

func TestRun_DefaultScenario(t *testing.T) {
	out, err := execute(t, "run", "--log-level", "error", "--verify")
	require.NoError(t, err)
	assert.Contains(t, out, "status=found")
	assert.Contains(t, out, "verify: ok")
}

func TestRun_InvalidConfig(t *testing.T) {
	_, err := execute(t, "run", "--config", writeConfig(t, "grid:\n  rows: 0\n"))
	assert.Error(t, err)

	_, err = execute(t, "run", "--log-level", "loud", "--config", writeConfig(t, cornerConfig))
	assert.Error(t, err)
}

func TestInspect(t *testing.T) {
	out, err := execute(t, "inspect", "--config", writeConfig(t, cornerConfig))
	require.NoError(t, err)

	assert.Contains(t, out, "...\n.#.\n...\n")
	assert.Contains(t, out, "boundary codes:\n123\n405\n678\n")
	assert.Contains(t, out, "size=3x3 obstacles=1")
	assert.Contains(t, out, "regions(conn8)=1 connected=true")
}

func newTestModel(t *testing.T) stepModel {
	t.Helper()
	g, marks, err := grid.Parse("S.#\n..#\n..G")
	require.NoError(t, err)
	e, err := astar.New(g, *marks.Start, *marks.Goal)
	require.NoError(t, err)
	return newStepModel(e)
}

func press(m stepModel, msg tea.KeyMsg) (stepModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(stepModel), cmd
}

func TestStepModel_Keys(t *testing.T) {
	m := newTestModel(t)
	assert.Nil(t, m.Init())

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.engine.Iterations())
	assert.Equal(t, astar.StatusRunning, m.engine.Status())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 2, m.engine.Iterations())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.Equal(t, astar.StatusFound, m.engine.Status())
	assert.NoError(t, m.err)
	assert.Contains(t, m.View(), "status: found")
	assert.Contains(t, m.View(), "cost: ")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Equal(t, 0, m.engine.Iterations())
	assert.Equal(t, astar.StatusRunning, m.engine.Status())

	m, cmd = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestStepModel_IgnoresOtherMessages(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, next.(stepModel).engine.Iterations())
}
