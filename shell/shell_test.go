package shell

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	command := ParseCommand("bundle version")
	assert.Equal(t, "bundle", command.Program)
	assert.Equal(t, []string{"version"}, command.Args)
	assert.Equal(t, "bundle version", command.String())

	command = ParseCommand("  ruby   --version ")
	assert.Equal(t, Command{Program: "ruby", Args: []string{"--version"}}, command)

	assert.Equal(t, Command{}, ParseCommand("   "))
	assert.Equal(t, "which", ParseCommand("which").String())
}

func TestParseCommands(t *testing.T) {
	commands := ParseCommands("which bundler", "bundle version", "which ruby", "ruby --version")

	names := []string{}
	for _, command := range commands {
		names = append(names, command.String())
	}

	assert.Equal(t, []string{"which bundler", "bundle version", "which ruby", "ruby --version"}, names)
}

func TestRunCapturesSeparateStreams(t *testing.T) {
	command := Command{Program: "sh", Args: []string{"-c", "echo out; echo err 1>&2; exit 3"}}

	result, err := NewExecutor().Run(command)
	require.NoError(t, err)

	assert.Equal(t, "out\n", result.Stdout)
	assert.Equal(t, "err\n", result.Stderr)
	assert.Equal(t, "", result.Output)
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "exit status 3", result.Status)
	assert.Equal(t, command, result.Command)
}

func TestRunCombined(t *testing.T) {
	command := Command{Program: "sh", Args: []string{"-c", "echo one; echo two 1>&2; echo three"}}

	result, err := NewExecutor().RunCombined(command)
	require.NoError(t, err)

	assert.Equal(t, "one\ntwo\nthree\n", result.Output)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "exit status 0", result.Status)
}

func TestRunDoesNotUseShell(t *testing.T) {
	result, err := NewExecutor().Run(ParseCommand("echo $HOME;"))
	require.NoError(t, err)

	assert.Equal(t, "$HOME;\n", result.Stdout)
}

func TestRunInDirectory(t *testing.T) {
	dir := t.TempDir()

	executor := NewExecutor()
	executor.Dir = dir

	result, err := executor.Run(ParseCommand("pwd"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(dir), filepath.Base(strings.TrimSpace(result.Stdout)))
}

func TestRunMissingProgram(t *testing.T) {
	_, err := NewExecutor().Run(ParseCommand("no-such-program-for-stub-tests version"))
	assert.ErrorContains(t, err, "no-such-program-for-stub-tests version")

	_, err = NewExecutor().RunCombined(Command{})
	assert.Error(t, err)
}
