package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/tasksift/internal/filter"
	"github.com/sandeepkv93/tasksift/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

const sigilHelp = `Add: prefix ` + "`!`" + ` for medium or ` + "`*`" + ` for high priority.

Filter: leading sigils then label text.

| sigil | meaning |
|---|---|
| ` + "`?`" + ` | low |
| ` + "`!`" + ` | medium |
| ` + "`*`" + ` | high |
| ` + "`@`" + ` | pending |
| ` + "`#`" + ` | completed |
`

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	bindings := m.helpBindings()
	return views.RenderHelpPanel(views.HelpPanelData{
		Markdown: sigilHelp + "\n" + m.bindingsMarkdown(),
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) bindingsMarkdown() string {
	var b strings.Builder
	for _, kb := range m.modeBindings() {
		b.WriteString(fmt.Sprintf("- `%s`: %s\n", kb.Key, kb.Action))
	}
	return b.String()
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.NextFocus, Action: "cycle focus"},
		{Key: m.Keys.SwitchMode, Action: "switch filter mode"},
		{Key: m.Keys.Palette, Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) modeBindings() []KeyBinding {
	out := []KeyBinding{
		{Key: "a/f", Action: "focus add / filter input"},
		{Key: "j/k", Action: "move cursor"},
		{Key: "space", Action: "toggle selected task"},
		{Key: "d", Action: "delete selected task"},
		{Key: "c", Action: "clear filter"},
	}
	if m.Mode == filter.ModeStructured {
		out = append(out,
			KeyBinding{Key: "1/2/3", Action: "toggle low/medium/high"},
			KeyBinding{Key: "4/5", Action: "toggle pending/completed"},
		)
	}
	return out
}

func (m Model) helpBindings() []key.Binding {
	global := m.globalBindings()
	out := make([]key.Binding, 0, len(global))
	for _, kb := range global {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
