package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kitty-cannon/internal/core"
)

// FormResult tells the caller what the last key did to the form.
type FormResult int

const (
	FormEditing FormResult = iota
	FormSubmitted
	FormCancelled
)

// FireForm is the one-line form for typing muzzle speed and elevation.
// Blank or malformed text is passed through; the game substitutes its
// defaults.
type FireForm struct {
	inputs [2]textinput.Model
	focus  int
}

var formHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// NewFireForm creates a form with the power field focused.
func NewFireForm() FireForm {
	power := textinput.New()
	power.Prompt = "Power: "
	power.Placeholder = "m/s"
	power.CharLimit = 8
	power.Width = 8
	power.Focus()

	angle := textinput.New()
	angle.Prompt = "Angle: "
	angle.Placeholder = "deg"
	angle.CharLimit = 8
	angle.Width = 8

	return FireForm{inputs: [2]textinput.Model{power, angle}}
}

// Update handles a key press. Enter on the power field moves to the angle
// field; enter on the angle field submits.
func (f FireForm) Update(msg tea.KeyMsg) (FireForm, FormResult, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return f, FormCancelled, nil
	case "enter":
		if f.focus == len(f.inputs)-1 {
			return f, FormSubmitted, nil
		}
		return f, FormEditing, f.setFocus(f.focus + 1)
	case "tab", "down":
		return f, FormEditing, f.setFocus((f.focus + 1) % len(f.inputs))
	case "shift+tab", "up":
		return f, FormEditing, f.setFocus((f.focus + len(f.inputs) - 1) % len(f.inputs))
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, FormEditing, cmd
}

func (f *FireForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[i].Focus()
}

// Values returns the raw text of both fields.
func (f FireForm) Values() (power, angle string) {
	return f.inputs[0].Value(), f.inputs[1].Value()
}

// Apply writes a fire request carrying the typed values into frame.
func (f FireForm) Apply(frame *core.InputFrame) {
	power, angle := f.Values()
	frame.Set(core.ActionFire)
	frame.SetField(core.FieldPower, power)
	frame.SetField(core.FieldAngle, angle)
}

// View renders the form on a single line.
func (f FireForm) View() string {
	return f.inputs[0].View() + "  " + f.inputs[1].View() + "  " +
		formHintStyle.Render("enter fire · tab switch · esc cancel")
}
