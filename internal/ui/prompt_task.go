package ui

import (
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
)

// ErrInputCancelled is returned by PromptTask when the user presses Esc or Ctrl+C.
var ErrInputCancelled = errors.New("task input cancelled")

// PromptTask reads a single-line task interactively. The editor is drawn
// on out and keys are read from in, which should be a terminal.
func PromptTask(in io.Reader, out io.Writer, title string) (string, error) {
	p := tea.NewProgram(newTaskModel(title), tea.WithInput(in), tea.WithOutput(out))
	finalModel, err := p.Run()
	if err != nil {
		return "", errors.Wrap(err, "run task prompt")
	}

	result := finalModel.(taskModel)
	if result.quit {
		return "", ErrInputCancelled
	}
	return result.value, nil
}

type taskModel struct {
	title     string
	textInput textinput.Model
	value     string
	done      bool
	quit      bool
}

func newTaskModel(title string) taskModel {
	ti := textinput.New()
	ti.Placeholder = "describe the problem to solve"
	ti.Focus()
	ti.Width = 60
	return taskModel{title: title, textInput: ti}
}

func (m taskModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m taskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.value = m.textInput.Value()
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m taskModel) View() string {
	// Leave the submitted line on screen instead of the editor.
	if m.done {
		return StyleTitle.Render(m.title) + " " + m.value + "\n"
	}
	if m.quit {
		return ""
	}
	s := StyleTitle.Render(m.title) + "\n"
	s += m.textInput.View() + "\n"
	s += StyleSubtle.Render("Press Enter to run • Esc to cancel") + "\n"
	return s
}
