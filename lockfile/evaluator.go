package lockfile

import (
	"fmt"
	"os"
	"regexp"

	"github.com/Masterminds/semver"
	"github.com/paketo-buildpacks/bundler/canary"
	"github.com/paketo-buildpacks/bundler/shell"
	log "github.com/sirupsen/logrus"
)

var bundlerVersionPattern = regexp.MustCompile(`Bundler version (\S+)`)

// Result of evaluating a Gemfile against its lock file
type Definition struct {
	ManifestPath string
	LockfilePath string
	BundledWith  string
}

func (d Definition) Version() string {
	return d.BundledWith
}

// Evaluates Gemfiles and asks the installed bundler for its version
type Evaluator struct {
	Parser  Parser
	Runner  shell.Runner
	Command shell.Command
}

func NewEvaluator(runner shell.Runner) *Evaluator {
	return &Evaluator{
		Parser:  NewParser(),
		Runner:  runner,
		Command: shell.ParseCommand("bundle version"),
	}
}

func (e *Evaluator) Evaluate(manifestPath string, lockfilePath string, opts canary.Options) (canary.Definition, error) {
	info, err := os.Stat(manifestPath)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", manifestPath)
	}

	definition := Definition{ManifestPath: manifestPath}
	if opts.Unlock {
		log.Debug("Ignoring lock file ", lockfilePath)
		return definition, nil
	}

	version, err := e.Parser.ParseVersion(lockfilePath)
	if err != nil {
		return nil, err
	}

	definition.LockfilePath = lockfilePath
	definition.BundledWith = version
	return definition, nil
}

// Runs `bundle version` and extracts the version from its output
func (e *Evaluator) LibraryVersion() (string, error) {
	result, err := e.Runner.Run(e.Command)
	if err != nil {
		return "", err
	}

	if result.ExitCode != 0 {
		return "", fmt.Errorf("%s failed with %s: %s", e.Command, result.Status, result.Stderr)
	}

	return ParseBundlerVersion(result.Stdout)
}

// Parses output such as "Bundler version 2.4.10 (2023-03-27 commit abc)"
func ParseBundlerVersion(output string) (string, error) {
	match := bundlerVersionPattern.FindStringSubmatch(output)
	if match == nil {
		return "", fmt.Errorf("unexpected bundler output: %q", output)
	}

	version, err := semver.NewVersion(match[1])
	if err != nil {
		return "", fmt.Errorf("invalid bundler version %q: %w", match[1], err)
	}

	return version.String(), nil
}
