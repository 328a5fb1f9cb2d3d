package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is an external program invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory of the process. Empty means the current directory.
	Dir string
}

// NewCommand returns a Command running name with args in dir.
func NewCommand(dir, name string, args ...string) Command {
	return Command{Name: name, Args: args, Dir: dir}
}

// String renders the command line as it would be typed in a shell.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quoteArg(c.Name))
	for _, arg := range c.Args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"'") {
		return strconv.Quote(s)
	}
	return s
}

// CommandError reports a command that ran to completion with a non-zero exit status.
type CommandError struct {
	Command  Command
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q exited with code %d", e.Command.String(), e.ExitCode)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
