package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kitty-cannon/internal/core"
)

// GameKeyMap holds the in-game bindings. It doubles as the help bar source.
type GameKeyMap struct {
	AimUp      key.Binding
	AimDown    key.Binding
	YawLeft    key.Binding
	YawRight   key.Binding
	PowerUp    key.Binding
	PowerDown  key.Binding
	Fire       key.Binding
	Form       key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AimUp, k.YawLeft, k.PowerUp, k.Fire, k.Form, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AimUp, k.AimDown, k.YawLeft, k.YawRight},
		{k.PowerUp, k.PowerDown, k.Fire, k.Form},
		{k.Confirm, k.Back, k.Pause, k.Restart},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		AimUp:      key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/↑", "raise")),
		AimDown:    key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s/↓", "lower")),
		YawLeft:    key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/←", "yaw left")),
		YawRight:   key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/→", "yaw right")),
		PowerUp:    key.NewBinding(key.WithKeys("+", "=", "]"), key.WithHelp("+", "power up")),
		PowerDown:  key.NewBinding(key.WithKeys("-", "_", "["), key.WithHelp("-", "power down")),
		Fire:       key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "fire")),
		Form:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "type shot")),
		Confirm:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Back:       key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b/esc", "back")),
		Pause:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys    GameKeyMap
	actions []boundAction
}

type boundAction struct {
	binding *key.Binding
	action  core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{keys: DefaultGameKeyMap()}
	k := &km.keys
	km.actions = []boundAction{
		{&k.Quit, core.ActionQuit},
		{&k.AimUp, core.ActionAimUp},
		{&k.AimDown, core.ActionAimDown},
		{&k.YawLeft, core.ActionYawLeft},
		{&k.YawRight, core.ActionYawRight},
		{&k.PowerUp, core.ActionPowerUp},
		{&k.PowerDown, core.ActionPowerDown},
		{&k.Fire, core.ActionFire},
		{&k.Confirm, core.ActionConfirm},
		{&k.Back, core.ActionBack},
		{&k.Pause, core.ActionPause},
		{&k.Restart, core.ActionRestart},
	}
	return km
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.actions {
		if key.Matches(msg, *b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
