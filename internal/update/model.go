package update

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/tasksift/internal/filter"
	"github.com/sandeepkv93/tasksift/internal/tasklist"
)

type Focus string

const (
	FocusList   Focus = "list"
	FocusAdd    Focus = "add"
	FocusFilter Focus = "filter"
)

var focusOrder = []Focus{FocusList, FocusAdd, FocusFilter}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Help       string
	Quit       string
	Palette    string
	NextFocus  string
	SwitchMode string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Model is the interactive shell around a task list. Both filter forms are
// kept so switching modes restores what the user last typed in each.
type Model struct {
	List        *tasklist.List
	Mode        filter.Mode
	Focus       Focus
	Cursor      int
	Structured  filter.Structured
	SigilFilter string
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	ctx          context.Context
	addInput     textinput.Model
	filterInput  textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type SwitchModeMsg struct {
	Mode filter.Mode
}

func DefaultKeyMap() GlobalKeyMap {
	return GlobalKeyMap{
		Help:       "?",
		Quit:       "q",
		Palette:    "/",
		NextFocus:  "tab",
		SwitchMode: "ctrl+f",
	}
}

// NewModel wraps list. The list's current filter seeds the matching mode's
// state; an invalid mode falls back to sigil.
func NewModel(ctx context.Context, list *tasklist.List, mode filter.Mode) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if !mode.IsValid() {
		mode = filter.ModeSigil
	}

	add := textinput.New()
	add.Prompt = "add> "
	add.Placeholder = "!Buy milk"
	add.CharLimit = 256

	search := textinput.New()
	search.CharLimit = 256

	command := textinput.New()
	command.Prompt = "/"
	command.Placeholder = "add *Ship release"
	command.CharLimit = 256

	m := Model{
		List:         list,
		Mode:         mode,
		Focus:        FocusList,
		Structured:   filter.DefaultStructured(),
		Keys:         DefaultKeyMap(),
		ctx:          ctx,
		addInput:     add,
		filterInput:  search,
		commandInput: command,
		helpModel:    help.New(),
	}

	switch current := list.Filter().(type) {
	case filter.Structured:
		m.Structured = current
	case filter.SigilString:
		m.SigilFilter = string(current)
	}
	m.loadFilterInput()
	m.applyFilter()
	return m
}

func (m *Model) loadFilterInput() {
	if m.Mode == filter.ModeStructured {
		m.filterInput.Prompt = "search> "
		m.filterInput.Placeholder = "label text"
		m.filterInput.SetValue(m.Structured.SearchText)
	} else {
		m.filterInput.Prompt = "filter> "
		m.filterInput.Placeholder = "?!*@# then label"
		m.filterInput.SetValue(m.SigilFilter)
	}
	m.filterInput.CursorEnd()
}

// applyFilter pushes the filter input into the active mode's state and
// hands that state to the list.
func (m *Model) applyFilter() {
	value := m.filterInput.Value()
	if m.Mode == filter.ModeStructured {
		m.Structured.SearchText = value
		m.List.SetFilter(m.Structured)
	} else {
		m.SigilFilter = value
		m.List.SetFilter(filter.SigilString(value))
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.List.VisibleTasks())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m *Model) setFocus(f Focus) {
	m.Focus = f
	m.addInput.Blur()
	m.filterInput.Blur()
	switch f {
	case FocusAdd:
		m.addInput.Focus()
	case FocusFilter:
		m.filterInput.Focus()
	}
}

func (m *Model) cycleFocus() {
	for i, f := range focusOrder {
		if f == m.Focus {
			m.setFocus(focusOrder[(i+1)%len(focusOrder)])
			return
		}
	}
	m.setFocus(FocusList)
}

func (m *Model) switchMode(mode filter.Mode) {
	if !mode.IsValid() || mode == m.Mode {
		return
	}
	m.applyFilter()
	m.Mode = mode
	m.loadFilterInput()
	m.applyFilter()
	m.Status = StatusBar{Text: "filter mode: " + string(mode)}
}

func (m *Model) clearFilter() {
	if m.Mode == filter.ModeStructured {
		m.Structured = filter.DefaultStructured()
	} else {
		m.SigilFilter = ""
	}
	m.loadFilterInput()
	m.applyFilter()
}

func (m *Model) setError(err error) {
	m.LastError = err
	m.Status = StatusBar{Text: "error: " + err.Error(), IsError: true}
}
