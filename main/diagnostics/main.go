package main

import (
	"flag"

	"github.com/paketo-buildpacks/bundler/common"
	"github.com/paketo-buildpacks/bundler/shell"
	"github.com/paketo-buildpacks/bundler/stub"
	log "github.com/sirupsen/logrus"
)

// Usage: go run ./main/diagnostics [-l level]
func main() {
	var level string

	flag.StringVar(&level, "l", common.DEFAULT_LEVEL, "log level")
	flag.Parse()

	common.Setup(level)

	handler := stub.NewHandler(stub.NewDiagnostics(), shell.NewExecutor())
	server := stub.NewServer(common.DEFAULT_PORT, handler)

	if err := server.Start(); err != nil {
		log.Fatal(err)
	}
}
