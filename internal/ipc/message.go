package ipc

import (
	"fmt"
	"strings"
)

// Command is a parsed IPC message.
type Command struct {
	Kind string
	Arg  string
}

const (
	CmdToggle = "toggle"
	CmdShow   = "show"
	CmdHide   = "hide"
	CmdCancel = "cancel"
	CmdNext   = "next"
	CmdRun    = "run"
	CmdQuery  = "query"
)

const queryPrefix = CmdQuery + ":"

// ParseMessage parses one line sent over the socket. Query text after the
// "query:" prefix is kept verbatim, including surrounding spaces.
func ParseMessage(message string) (Command, error) {
	if strings.HasPrefix(message, queryPrefix) {
		return Command{Kind: CmdQuery, Arg: strings.TrimRight(strings.TrimPrefix(message, queryPrefix), "\r\n")}, nil
	}

	switch kind := strings.TrimSpace(message); kind {
	case CmdToggle, CmdShow, CmdHide, CmdCancel, CmdNext, CmdRun:
		return Command{Kind: kind}, nil
	case "":
		return Command{}, fmt.Errorf("empty message")
	default:
		return Command{}, fmt.Errorf("unknown message %q", kind)
	}
}

// String is the wire form of the command.
func (c Command) String() string {
	if c.Kind == CmdQuery {
		return queryPrefix + c.Arg
	}
	return c.Kind
}
