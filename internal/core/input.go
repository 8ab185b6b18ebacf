package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionAimUp            // W, Up arrow - raise the barrel
	ActionAimDown          // S, Down arrow - lower the barrel
	ActionYawLeft          // A, Left arrow - turn the barrel left
	ActionYawRight         // D, Right arrow - turn the barrel right
	ActionPowerUp          // +, ] - more muzzle speed
	ActionPowerDown        // -, [ - less muzzle speed
	ActionFire             // Space - fire with the current aim, or the form values when present
	ActionConfirm          // Enter - start a round from the menu
	ActionBack             // B, Escape - go back to the menu
	ActionRestart          // R - start a new round after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAimUp:
		return "AimUp"
	case ActionAimDown:
		return "AimDown"
	case ActionYawLeft:
		return "YawLeft"
	case ActionYawRight:
		return "YawRight"
	case ActionPowerUp:
		return "PowerUp"
	case ActionPowerDown:
		return "PowerDown"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Form field names submitted alongside ActionFire.
const (
	FieldPower = "power"
	FieldAngle = "angle"
)

// InputFrame represents the input for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Fields carries raw text typed into the platform's form, keyed by field name.
	Fields map[string]string
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// SetField records raw text for a form field.
func (f *InputFrame) SetField(name, value string) {
	if f.Fields == nil {
		f.Fields = make(map[string]string)
	}
	f.Fields[name] = value
}

// Field returns the text for a form field and whether it was submitted.
func (f InputFrame) Field(name string) (string, bool) {
	v, ok := f.Fields[name]
	return v, ok
}

// Clear resets all actions and fields for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Fields {
		delete(f.Fields, k)
	}
}
