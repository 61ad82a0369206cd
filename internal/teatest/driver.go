// Package teatest drives bubbletea models synchronously in tests.
//
// Messages go straight to Update, and each returned Cmd is run and its
// message fed back until the chain ends. A Cmd that does not return within
// cmdTimeout is dropped.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxChain bounds how many Cmd results one input may feed back.
const maxChain = 50

// cmdTimeout bounds a single Cmd. Practice Cmds read and write an in-memory
// SQLite database.
const cmdTimeout = 250 * time.Millisecond

// Driver stands in for tea.Program around one model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a Cmd yields tea.QuitMsg.
	Quitting bool
}

// New wraps model. Call DrainInit to run its Init command.
func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	return &Driver{T: t, Model: model}
}

func (d *Driver) DrainInit() {
	d.T.Helper()
	d.run(d.Model.Init())
}

// Send updates the model with msg and runs the resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.run(cmd)
}

func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

func (d *Driver) PressTab() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyTab})
}

func (d *Driver) PressRight() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRight})
}

func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) run(cmd tea.Cmd) {
	d.T.Helper()
	for n := 0; cmd != nil; n++ {
		if n == maxChain {
			d.T.Logf("teatest: stopped after %d chained commands", maxChain)
			return
		}
		msg := await(cmd)
		switch msg.(type) {
		case nil:
			return
		case tea.QuitMsg:
			d.Quitting = true
			d.Model, _ = d.Model.Update(msg)
			return
		}
		d.Model, cmd = d.Model.Update(msg)
	}
}

// await runs cmd and returns its message, or nil after cmdTimeout.
func await(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}
