package main

import (
	"flag"
	"os"

	"github.com/paketo-buildpacks/bundler/canary"
	"github.com/paketo-buildpacks/bundler/common"
	"github.com/paketo-buildpacks/bundler/lockfile"
	"github.com/paketo-buildpacks/bundler/shell"
	log "github.com/sirupsen/logrus"
)

// Usage: go run ./main/canary [-l level] [-unlock] [Gemfile] [Gemfile.lock]
//
// Only the result line is written to stdout.
func main() {
	var level string
	var unlock bool

	flag.StringVar(&level, "l", common.DEFAULT_LEVEL, "log level")
	flag.BoolVar(&unlock, "unlock", false, "ignore the lock file")
	flag.Parse()

	common.Setup(level)

	manifest := common.MANIFEST_FILE
	lock := common.LOCKFILE_FILE

	if flag.NArg() > 0 {
		manifest = flag.Arg(0)
	}
	if flag.NArg() > 1 {
		lock = flag.Arg(1)
	}

	probe := canary.NewProbe(lockfile.NewEvaluator(shell.NewExecutor()), os.Stderr, os.Stdout)

	result, err := probe.Run(manifest, lock, canary.Options{Unlock: unlock})
	if err != nil {
		log.Fatal(err)
	}

	if !result.OK() {
		log.Warn("Canary failed: ", result.Message())
	}
}
