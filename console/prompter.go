package console

import (
	"fmt"
	"strings"

	"github.com/peterh/liner"
)

// UserPrompter reads lines from the user and keeps their history.
type UserPrompter interface {
	PromptInput(prompt string) (string, error)

	SetHistory(history []string)

	AppendHistory(command string)

	ClearHistory()

	Close() error
}

type terminalPrompter struct {
	*liner.State
	supported  bool
	normalMode liner.ModeApplier
	rawMode    liner.ModeApplier
}

func newTerminalPrompter() *terminalPrompter {
	p := new(terminalPrompter)

	normalMode, _ := liner.TerminalMode()

	p.State = liner.NewLiner()
	rawMode, err := liner.TerminalMode()
	if err != nil || !liner.TerminalSupported() {
		p.supported = false
	} else {
		p.supported = true
		p.normalMode = normalMode
		p.rawMode = rawMode

		normalMode.ApplyMode()
	}
	p.SetCtrlCAborts(true)
	p.SetMultiLineMode(true)
	return p
}

func (p *terminalPrompter) PromptInput(prompt string) (string, error) {
	if p.supported {
		p.rawMode.ApplyMode()
		defer p.normalMode.ApplyMode()
	} else {
		fmt.Print(prompt)
		prompt = ""
		defer fmt.Println()
	}
	return p.State.Prompt(prompt)
}

func (p *terminalPrompter) SetHistory(history []string) {
	p.State.ReadHistory(strings.NewReader(strings.Join(history, "\n")))
}

func (p *terminalPrompter) AppendHistory(command string) {
	p.State.AppendHistory(command)
}

func (p *terminalPrompter) ClearHistory() {
	p.State.ClearHistory()
}
