package update

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tasksift/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		m.commandInput = editInput(m.commandInput, msg)
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) closePalette() Model {
	m.Palette = CommandPaletteState{}
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

func (m Model) executePaletteCommand() Model {
	cmd, err := commands.Parse(m.Palette.Input)
	if err != nil {
		m = m.closePalette()
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task, ok, err := m.List.AddTask(m.ctx, a.Raw)
			if err != nil {
				return commands.Result{}, err
			}
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "label is empty after priority sigil"}
			}
			return commands.Result{Message: fmt.Sprintf("added %s task: %s", task.Priority, task.Label)}, nil
		},
		Toggle: func(t commands.TargetArgs) (commands.Result, error) {
			found, err := m.List.ToggleComplete(m.ctx, t.ID)
			if err != nil {
				return commands.Result{}, err
			}
			if !found {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no task with id " + t.ID}
			}
			return commands.Result{Message: "toggled " + t.ID}, nil
		},
		Delete: func(t commands.TargetArgs) (commands.Result, error) {
			found, err := m.List.DeleteTask(m.ctx, t.ID)
			if err != nil {
				return commands.Result{}, err
			}
			if !found {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no task with id " + t.ID}
			}
			return commands.Result{Message: "deleted " + t.ID}, nil
		},
		Filter: func(f commands.FilterArgs) (commands.Result, error) {
			m.filterInput.SetValue(f.Expr)
			m.filterInput.CursorEnd()
			m.applyFilter()
			return commands.Result{Message: fmt.Sprintf("filter set: %q", f.Expr)}, nil
		},
		Mode: func(a commands.ModeArgs) (commands.Result, error) {
			m.switchMode(a.Mode)
			return commands.Result{Message: "filter mode: " + string(a.Mode)}, nil
		},
		Clear: func() (commands.Result, error) {
			m.clearFilter()
			return commands.Result{Message: "filter cleared"}, nil
		},
	})
	m = m.closePalette()
	m.clampCursor()
	if err != nil {
		var cmdErr *commands.CommandError
		if !errors.As(err, &cmdErr) {
			m.LastError = err
		}
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: res.Message}
	return m
}
