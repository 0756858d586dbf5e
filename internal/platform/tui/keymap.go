package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bdaygames/internal/core"
)

// actionBinding ties a game action to the keys that trigger it.
type actionBinding struct {
	action  core.Action
	binding key.Binding
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	quit    key.Binding
	actions []actionBinding
	menu    MenuKeyMap
}

// NewKeyMapper creates a key mapper with the arcade bindings.
func NewKeyMapper() *KeyMapper {
	bind := func(a core.Action, keys ...string) actionBinding {
		return actionBinding{a, key.NewBinding(key.WithKeys(keys...))}
	}
	return &KeyMapper{
		quit: key.NewBinding(key.WithKeys("ctrl+c", "q")),
		actions: []actionBinding{
			bind(core.ActionUp, "w", "up"),
			bind(core.ActionDown, "s", "down"),
			bind(core.ActionLeft, "a", "left"),
			bind(core.ActionRight, "d", "right"),
			bind(core.ActionJump, " "),
			bind(core.ActionConfirm, "enter"),
			bind(core.ActionBack, "b", "esc"),
			bind(core.ActionPause, "p"),
			bind(core.ActionRestart, "r"),
		},
		menu: DefaultMenuKeyMap(),
	}
}

// MapKey translates a key message to an action. isQuit is set for the quit
// keys, which never reach the game.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.quit) {
		return core.ActionQuit, true
	}
	for _, ab := range km.actions {
		if key.Matches(msg, ab.binding) {
			return ab.action, false
		}
	}
	return core.ActionNone, false
}

// MenuAction is what a key does on the game picker.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
	MenuActionCharacter
)

// MenuKeyMap holds the game picker bindings. It doubles as the picker's
// help line.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Character  key.Binding
	Scoreboard key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp implements help.KeyMap.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Character, k.Scoreboard, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Back}}
}

// DefaultMenuKeyMap returns the game picker bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:         key.NewBinding(key.WithKeys("w", "up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("s", "down", "j"), key.WithHelp("↓/j", "down")),
		Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		Character:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "character")),
		Scoreboard: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Back:       key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b", "back")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	k := km.menu
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	case key.Matches(msg, k.Select):
		return MenuActionSelect
	case key.Matches(msg, k.Back):
		return MenuActionBack
	case key.Matches(msg, k.Scoreboard):
		return MenuActionScoreboard
	case key.Matches(msg, k.Character):
		return MenuActionCharacter
	}
	return MenuActionNone
}
