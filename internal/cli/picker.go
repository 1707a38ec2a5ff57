package cli

import (
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"atest-finder/internal/ports"
)

var pickerStyle = lipgloss.NewStyle().Margin(1, 2)

// candidateItem wraps one search hit for the list display.
type candidateItem string

func (i candidateItem) Title() string       { return filepath.Base(string(i)) }
func (i candidateItem) Description() string { return string(i) }
func (i candidateItem) FilterValue() string { return string(i) }

// pickerSelection is the interactive selection strategy: a filterable
// list of the matched files.
type pickerSelection struct{}

func (pickerSelection) Choose(candidates []string) (int, error) {
	if len(candidates) == 0 {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no candidates to choose from")
	}
	if len(candidates) == 1 {
		return 0, nil
	}

	model := newPickerModel(candidates)
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("selection prompt failed").
			WithCause(err)
	}
	picked, ok := final.(pickerModel)
	if !ok || picked.choice == "" {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("selection cancelled")
	}
	for i, candidate := range candidates {
		if candidate == picked.choice {
			return i, nil
		}
	}
	return 0, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("selected candidate not in list")
}

type pickerModel struct {
	list   list.Model
	choice string
}

func newPickerModel(candidates []string) pickerModel {
	items := make([]list.Item, 0, len(candidates))
	for _, candidate := range candidates {
		items = append(items, candidateItem(candidate))
	}
	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = "Multiple tests found"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	return pickerModel{list: l}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := pickerStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(candidateItem); ok {
				m.choice = string(item)
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return pickerStyle.Render(m.list.View())
}

var _ ports.SelectionPort = pickerSelection{}
