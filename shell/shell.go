// Package shell runs toolchain probes such as `which ruby` or
// `bundle version` and captures what they print.
package shell

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// A program and its arguments. Commands are executed directly, never through
// a shell, so arguments are passed verbatim.
type Command struct {
	Program string
	Args    []string
}

// Captured output of one command execution
type Result struct {
	Command  Command
	Stdout   string
	Stderr   string
	Output   string // stdout and stderr interleaved, only set by RunCombined
	ExitCode int
	Status   string
}

type Runner interface {
	Run(command Command) (*Result, error)
	RunCombined(command Command) (*Result, error)
}

// Runs commands on the host with os/exec
type Executor struct {
	Dir string
	Env []string
}

// Splits a command line on whitespace. Quoting is not supported.
func ParseCommand(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}
	}
	return Command{Program: fields[0], Args: fields[1:]}
}

// Parses each line with ParseCommand
func ParseCommands(lines ...string) []Command {
	commands := make([]Command, 0, len(lines))
	for _, line := range lines {
		commands = append(commands, ParseCommand(line))
	}
	return commands
}

func (c Command) String() string {
	return strings.TrimSpace(c.Program + " " + strings.Join(c.Args, " "))
}

func NewExecutor() *Executor {
	return &Executor{}
}

// Runs the command and captures stdout and stderr separately
func (e *Executor) Run(command Command) (*Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := e.command(command)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result, err := wait(command, cmd)
	if err != nil {
		return nil, err
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result, nil
}

// Runs the command with stdout and stderr captured as a single stream
func (e *Executor) RunCombined(command Command) (*Result, error) {
	var output bytes.Buffer

	cmd := e.command(command)
	cmd.Stdout = &output
	cmd.Stderr = &output

	result, err := wait(command, cmd)
	if err != nil {
		return nil, err
	}

	result.Output = output.String()
	return result, nil
}

func (e *Executor) command(command Command) *exec.Cmd {
	cmd := exec.Command(command.Program, command.Args...)
	cmd.Dir = e.Dir
	if e.Env != nil {
		cmd.Env = e.Env
	}
	return cmd
}

// A non-zero exit is reported in the result. Only a failure to start the
// process is an error.
func wait(command Command, cmd *exec.Cmd) (*Result, error) {
	if command.Program == "" {
		return nil, errors.New("empty command")
	}

	err := cmd.Run()

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, fmt.Errorf("failed to run %q: %w", command.String(), err)
	}

	return &Result{
		Command:  command,
		ExitCode: cmd.ProcessState.ExitCode(),
		Status:   cmd.ProcessState.String(),
	}, nil
}
