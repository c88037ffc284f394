package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tasksift/internal/filter"
	"github.com/sandeepkv93/tasksift/internal/model"
	"github.com/sandeepkv93/tasksift/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		keyStr := typed.String()
		if keyStr == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}

		switch keyStr {
		case m.Keys.NextFocus:
			m.cycleFocus()
			return m, nil
		case m.Keys.SwitchMode:
			if m.Mode == filter.ModeSigil {
				m.switchMode(filter.ModeStructured)
			} else {
				m.switchMode(filter.ModeSigil)
			}
			return m, nil
		case "esc":
			m.setFocus(FocusList)
			return m, nil
		}

		switch m.Focus {
		case FocusAdd:
			return m.handleAddKey(typed), nil
		case FocusFilter:
			return m.handleFilterKey(typed), nil
		default:
			return m.handleListKey(typed)
		}
	case SwitchModeMsg:
		m.switchMode(typed.Mode)
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		if typed.Err != nil {
			m.setError(typed.Err)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleAddKey(msg tea.KeyMsg) Model {
	if msg.String() != "enter" {
		m.addInput = editInput(m.addInput, msg)
		return m
	}
	task, ok, err := m.List.AddTask(m.ctx, m.addInput.Value())
	switch {
	case err != nil:
		m.setError(err)
	case !ok:
		m.Status = StatusBar{Text: "nothing to add"}
	default:
		m.addInput.SetValue("")
		m.clampCursor()
		m.Status = StatusBar{Text: fmt.Sprintf("added %s task: %s", task.Priority, task.Label)}
	}
	return m
}

func (m Model) handleFilterKey(msg tea.KeyMsg) Model {
	if msg.String() == "enter" {
		m.setFocus(FocusList)
		return m
	}
	m.filterInput = editInput(m.filterInput, msg)
	m.applyFilter()
	return m
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	visible := m.List.VisibleTasks()
	switch msg.String() {
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Palette:
		m.Palette = CommandPaletteState{Active: true}
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
	case "a":
		m.setFocus(FocusAdd)
	case "f":
		m.setFocus(FocusFilter)
	case "j", "down":
		if m.Cursor < len(visible)-1 {
			m.Cursor++
		}
	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case " ", "x":
		if len(visible) > 0 {
			m = m.toggleTask(visible[m.Cursor].ID)
		}
	case "d":
		if len(visible) > 0 {
			m = m.deleteTask(visible[m.Cursor].ID)
		}
	case "c":
		m.clearFilter()
		m.Status = StatusBar{Text: "filter cleared"}
	case "1", "2", "3", "4", "5":
		m = m.toggleCheckbox(msg.String())
	}
	return m, nil
}

// toggleCheckbox maps 1-3 to the priority boxes and 4-5 to the status boxes.
func (m Model) toggleCheckbox(k string) Model {
	if m.Mode != filter.ModeStructured {
		m.Status = StatusBar{Text: "checkbox keys apply to structured mode (ctrl+f)"}
		return m
	}
	idx := int(k[0] - '1')
	if idx < len(model.Priorities) {
		m.Structured = m.Structured.TogglePriority(model.Priorities[idx])
	} else {
		m.Structured = m.Structured.ToggleStatus(model.Statuses[idx-len(model.Priorities)])
	}
	m.applyFilter()
	return m
}

func (m Model) toggleTask(id string) Model {
	found, err := m.List.ToggleComplete(m.ctx, id)
	switch {
	case err != nil:
		m.setError(err)
	case !found:
		m.Status = StatusBar{Text: "no task with id " + id, IsError: true}
	default:
		m.clampCursor()
		m.Status = StatusBar{Text: "toggled " + id}
	}
	return m
}

func (m Model) deleteTask(id string) Model {
	found, err := m.List.DeleteTask(m.ctx, id)
	switch {
	case err != nil:
		m.setError(err)
	case !found:
		m.Status = StatusBar{Text: "no task with id " + id, IsError: true}
	default:
		m.clampCursor()
		m.Status = StatusBar{Text: "deleted " + id}
	}
	return m
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	counts := m.List.Counts()
	visible := m.List.VisibleTasks()
	items := make([]views.TaskItemData, 0, len(visible))
	for _, t := range visible {
		items = append(items, views.TaskItemData{
			ID:          t.ID,
			Label:       t.Label,
			Priority:    string(t.Priority),
			IsCompleted: t.IsCompleted,
		})
	}
	left := views.RenderTaskList(views.TaskListData{
		AddView:  m.addInput.View(),
		Items:    items,
		Cursor:   m.Cursor,
		Focused:  m.Focus == FocusList,
		Total:    counts.Total,
		Pending:  counts.Pending,
		Finished: counts.Completed,
	})

	right := m.renderFilterPanel() +
		views.RenderCommandPalette(m.Palette.Active, m.commandInput.Value()) +
		m.renderHelpIfVisible()

	pane := views.PaneTasks
	if m.Focus == FocusFilter {
		pane = views.PaneFilter
	}
	status := m.Status.Text
	if status == "" {
		status = "focus: " + string(m.Focus)
	}
	return views.RenderApp(views.AppData{
		Title:       "tasksift",
		Mode:        string(m.Mode),
		Visible:     counts.Visible,
		Total:       counts.Total,
		ActivePane:  pane,
		TasksPane:   left,
		FilterPane:  right,
		StatusLine:  status,
		StatusError: m.Status.IsError,
		Footer:      "tab focus | ctrl+f mode | / command | ? help | q quit",
	})
}

func (m Model) renderFilterPanel() string {
	data := views.FilterPanelData{
		Mode:      string(m.Mode),
		InputView: m.filterInput.View(),
	}
	if m.Mode == filter.ModeSigil {
		parsed := filter.ParseSigilString(m.SigilFilter)
		data.Options = parsed.Options
		data.Label = parsed.Label
		return views.RenderFilterPanel(data)
	}
	for i, p := range model.Priorities {
		data.Priorities = append(data.Priorities, views.CheckboxData{
			Key:     fmt.Sprint(i + 1),
			Label:   string(p),
			Checked: m.Structured.Priorities[p],
		})
	}
	for i, st := range model.Statuses {
		data.Statuses = append(data.Statuses, views.CheckboxData{
			Key:     fmt.Sprint(len(model.Priorities) + i + 1),
			Label:   string(st),
			Checked: m.Structured.Statuses[st],
		})
	}
	return views.RenderFilterPanel(data)
}

// editInput applies one keystroke to in. Runes and backspace are handled
// directly so the result does not depend on the input's focus state.
func editInput(in textinput.Model, msg tea.KeyMsg) textinput.Model {
	switch msg.Type {
	case tea.KeyRunes:
		in.SetValue(in.Value() + string(msg.Runes))
	case tea.KeySpace:
		in.SetValue(in.Value() + " ")
	case tea.KeyBackspace:
		runes := []rune(in.Value())
		if len(runes) > 0 {
			in.SetValue(string(runes[:len(runes)-1]))
		}
	default:
		in, _ = in.Update(msg)
		return in
	}
	in.CursorEnd()
	return in
}
