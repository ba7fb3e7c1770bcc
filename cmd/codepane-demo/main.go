package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codepane/editor"
)

const sample = `package main

import "fmt"

// greet prints a friendly greeting n times.
func greet(name string, n int) {
	for i := 0; i < n; i++ {
		fmt.Printf("hello, %s (%d)\n", name, i)
	}
}

func main() {
	greet("codepane", 3)
}
`

type snapshotUpdated struct{}

type model struct {
	editor editor.Model
	status lipgloss.Style
}

func newModel(onSnapshot func()) model {
	cfg := editor.Config{
		Value:        sample,
		Language:     "go",
		ShowLineNums: true,
		Style:        editor.DefaultStyle(),
		OnSnapshot:   onSnapshot,
	}
	return model{
		editor: editor.New(cfg),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.editor.Close()
			return m, tea.Quit
		}
	case snapshotUpdated:
		// Repaint with the converged highlight snapshot.
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	pos := m.editor.CursorPosition()
	status := m.status.Render(fmt.Sprintf(" %d:%d  ctrl+c to quit", pos.Line+1, pos.Col+1))
	return m.editor.View() + "\n" + status
}

func main() {
	var prog *tea.Program
	m := newModel(func() {
		if prog != nil {
			prog.Send(snapshotUpdated{})
		}
	})

	prog = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := prog.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "codepane-demo:", err)
		os.Exit(1)
	}
}
