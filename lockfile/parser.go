// Package lockfile reads bundler manifests and lock files.
package lockfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver"
)

const BUNDLED_WITH = "BUNDLED WITH"

type Parser struct{}

func NewParser() Parser {
	return Parser{}
}

// Returns the bundler version recorded under BUNDLED WITH. A missing lock
// file or a lock file without that section yields an empty version.
func (p Parser) ParseVersion(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}

		return "", fmt.Errorf("failed to parse Gemfile.lock: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != BUNDLED_WITH {
			continue
		}

		if !scanner.Scan() {
			break
		}

		version, err := semver.NewVersion(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return "", fmt.Errorf("failed to parse Gemfile.lock: %w", err)
		}

		return version.String(), nil
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to parse Gemfile.lock: %w", err)
	}

	return "", nil
}

// Returns a constraint matching any release with the same major version,
// e.g. 2.*.* for 2.4.10
func MajorConstraint(version string) (string, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d.*.*", v.Major()), nil
}
