package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// certifyForm collects the supervisor name and PIN. The PIN is never
// echoed.
type certifyForm struct {
	inspectionID string
	supervisor   textinput.Model
	pin          textinput.Model
	focus        int
}

func newCertifyForm(inspectionID string) certifyForm {
	supervisor := textinput.New()
	supervisor.Width = 40
	supervisor.CharLimit = 200
	supervisor.Focus()

	pin := textinput.New()
	pin.Width = 12
	pin.CharLimit = 32
	pin.EchoMode = textinput.EchoPassword
	pin.EchoCharacter = '*'

	return certifyForm{inspectionID: inspectionID, supervisor: supervisor, pin: pin}
}

func (f certifyForm) move() certifyForm {
	if f.focus == 0 {
		f.focus = 1
		f.supervisor.Blur()
		f.pin.Focus()
	} else {
		f.focus = 0
		f.pin.Blur()
		f.supervisor.Focus()
	}
	return f
}

func (f certifyForm) update(msg tea.Msg) (certifyForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.focus == 0 {
		f.supervisor, cmd = f.supervisor.Update(msg)
	} else {
		f.pin, cmd = f.pin.Update(msg)
	}
	return f, cmd
}

func (f certifyForm) values() (supervisor, pin string) {
	return strings.TrimSpace(f.supervisor.Value()), f.pin.Value()
}

func (f certifyForm) View() string {
	var b strings.Builder
	b.WriteString(cursor(f.focus == 0))
	b.WriteString("Supervisor: [")
	b.WriteString(f.supervisor.View())
	b.WriteString("]\n")
	b.WriteString(cursor(f.focus == 1))
	b.WriteString("PIN:        [")
	b.WriteString(f.pin.View())
	b.WriteString("]\n")
	return renderPage("CERTIFY "+f.inspectionID, b.String(), "tab: next field  enter: certify  esc: cancel")
}
