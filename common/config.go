package common

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	DEFAULT_PORT = 8080

	STATUS_LINE    = "HTTP/1.1 200\r\n"
	CONTENT_TYPE   = "Content-Type: text/html\r\n"
	HEADER_END     = "\r\n"
	DEFAULT_LEVEL  = "info"
	MANIFEST_FILE  = "Gemfile"
	LOCKFILE_FILE  = "Gemfile.lock"
	TIMESTAMP_FORM = "2006-01-02 15:04:05"
)

// Configures the global logger. Logs always go to stderr so that stdout stays
// free for machine readable output.
func Setup(level string) {
	customFormatter := new(log.TextFormatter)
	customFormatter.TimestampFormat = TIMESTAMP_FORM
	customFormatter.FullTimestamp = true
	log.SetFormatter(customFormatter)

	log.SetReportCaller(false)
	log.SetOutput(os.Stderr)
	log.SetLevel(ParseLevel(level))
}

// Returns the log level for the given name, falling back to info
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	}
	return log.InfoLevel
}
