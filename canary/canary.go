// Package canary checks that a dependency manifest can be evaluated and
// reports the library version as a single line of JSON.
package canary

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

type Options struct {
	// Evaluate the manifest without honoring the lock file
	Unlock bool
}

type Definition interface {
	Version() string
}

type Evaluator interface {
	Evaluate(manifestPath string, lockfilePath string, opts Options) (Definition, error)
	LibraryVersion() (string, error)
}

// Anything printed while probing goes to Diagnostics. Results only ever
// receives the final result line.
type Probe struct {
	Evaluator   Evaluator
	Diagnostics io.Writer
	Results     io.Writer
}

func NewProbe(evaluator Evaluator, diagnostics io.Writer, results io.Writer) *Probe {
	return &Probe{Evaluator: evaluator, Diagnostics: diagnostics, Results: results}
}

// Evaluates the manifest and writes the result line
func (p *Probe) Run(manifestPath string, lockfilePath string, opts Options) (Result, error) {
	result := p.evaluate(manifestPath, lockfilePath, opts)

	line, err := json.Marshal(result)
	if err != nil {
		return result, err
	}

	if _, err := fmt.Fprintf(p.Results, "%s\n", line); err != nil {
		return result, fmt.Errorf("failed to write result: %w", err)
	}

	return result, nil
}

func (p *Probe) evaluate(manifestPath string, lockfilePath string, opts Options) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Failure(fmt.Sprint(r))
		}
	}()

	definition, err := p.Evaluator.Evaluate(manifestPath, lockfilePath, opts)
	if err != nil {
		return Failure(err.Error())
	}

	version, err := p.Evaluator.LibraryVersion()
	if err != nil {
		return Failure(err.Error())
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.Diagnostics)
	t.AppendRow(table.Row{"Manifest", manifestPath, definition.Version()})
	t.AppendSeparator()
	t.AppendRow(table.Row{"Library", "", version})
	t.Render()

	return Success(version)
}
