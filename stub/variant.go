package stub

import (
	"github.com/paketo-buildpacks/bundler/response"
	"github.com/paketo-buildpacks/bundler/shell"
)

// Writes the body of a response after the preamble. Results are returned
// for logging, including those of commands whose block failed to write.
type Variant interface {
	Respond(w *response.Writer, runner shell.Runner) ([]*shell.Result, error)
}

// Greets the client and reports the bundler version with its exit status and
// separate stdout and stderr blocks.
type Greeting struct {
	Command shell.Command
}

// Echoes each command followed by its combined output
type Diagnostics struct {
	Commands []shell.Command
}

func NewGreeting() *Greeting {
	return &Greeting{Command: shell.ParseCommand("bundle version")}
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{
		Commands: shell.ParseCommands(
			"which bundler",
			"bundle version",
			"which ruby",
			"ruby --version",
		),
	}
}

func (g *Greeting) Respond(w *response.Writer, runner shell.Runner) ([]*shell.Result, error) {
	if err := w.Append("Hello World!\n"); err != nil {
		return nil, err
	}

	result, err := runner.Run(g.Command)
	if err != nil {
		return nil, err
	}
	results := []*shell.Result{result}

	if err := w.Appendf("status: %s\n", result.Status); err != nil {
		return results, err
	}

	if err := w.Appendf("stdout:\n%s", result.Stdout); err != nil {
		return results, err
	}

	if result.Stderr != "" {
		if err := w.Appendf("stderr:\n%s", result.Stderr); err != nil {
			return results, err
		}
	}

	return results, nil
}

func (d *Diagnostics) Respond(w *response.Writer, runner shell.Runner) ([]*shell.Result, error) {
	results := []*shell.Result{}

	for _, command := range d.Commands {
		result, err := runner.RunCombined(command)
		if err != nil {
			return results, err
		}
		results = append(results, result)

		if err := w.Appendf("$ %s\n%s\n", command, result.Output); err != nil {
			return results, err
		}
	}

	return results, nil
}
