package main

type Command int

const (
	CmdNone Command = iota
	CmdJump
	CmdSearch
)

type CommandInput struct {
	cmd Command
	buf string
}

func CommandFromPrefix(r rune) Command {
	switch r {
	case ':':
		return CmdJump
	case '/':
		return CmdSearch
	default:
		return CmdNone
	}
}

func (m *model) commandBadge(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "[SEARCH]"
	case CmdJump:
		return "[JUMP]"
	default:
		return "[NORMAL]"
	}
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "search: "
	case CmdJump:
		return "panel: "
	default:
		return ""
	}
}

// activeCommandLine returns the command prompt text for the footer status line.
func (m *model) activeCommandLine() string {
	badge := m.commandBadge(m.ui.command.cmd)
	prompt := m.commandPrompt(m.ui.command.cmd)
	return badge + " " + prompt + m.ui.command.buf
}

func (m *model) enterCommandMode(cmd Command) {
	m.ui.command = CommandInput{cmd: cmd}
	m.ui.mode = modeCommand
}
