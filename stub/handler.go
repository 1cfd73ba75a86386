package stub

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/paketo-buildpacks/bundler/common"
	"github.com/paketo-buildpacks/bundler/response"
	"github.com/paketo-buildpacks/bundler/shell"
	log "github.com/sirupsen/logrus"
)

// Serves exactly one request per connection
type Handler struct {
	Variant Variant
	Runner  shell.Runner
}

func NewHandler(variant Variant, runner shell.Runner) *Handler {
	return &Handler{Variant: variant, Runner: runner}
}

// Reads the request line, writes the response and closes the connection. A
// peer that disconnects early is logged and not treated as an error.
func (h *Handler) Handle(conn net.Conn) error {
	defer conn.Close()

	logger := log.WithField("remote", conn.RemoteAddr())

	err := h.serve(conn, logger)
	if err != nil && common.IsDisconnect(err) {
		logger.Warn("Connection broke: ", err)
		return nil
	}

	return err
}

func (h *Handler) serve(conn net.Conn, logger *log.Entry) error {
	request, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read request: %w", err)
	}

	logger.Info("Request: ", strings.TrimRight(request, "\r\n"))

	w := response.NewWriter(conn)
	if err := w.Begin(); err != nil {
		return err
	}

	results, err := h.Variant.Respond(w, h.Runner)
	if log.IsLevelEnabled(log.DebugLevel) && len(results) > 0 {
		logger.Debug("Commands:\n", summarize(results))
	}
	logger.Debugf("Sent %d bytes", w.Written())

	return err
}

func summarize(results []*shell.Result) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Command", "Exit Code"})

	for _, result := range results {
		t.AppendRow(table.Row{result.Command.String(), result.ExitCode})
	}

	return t.Render()
}
