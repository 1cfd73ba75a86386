package stub

import (
	"bytes"
	"net"
	"os"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/paketo-buildpacks/bundler/shell"
)

var brokenPipe = &net.OpError{Op: "write", Net: "tcp", Err: os.NewSyscallError("write", syscall.EPIPE)}

// Answers commands from a table and records the order they were run in
type fakeRunner struct {
	mutex   sync.Mutex
	results map[string]*shell.Result
	err     error
	delay   time.Duration
	calls   []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{results: map[string]*shell.Result{}}
}

func (r *fakeRunner) Run(command shell.Command) (*shell.Result, error) {
	return r.run(command)
}

func (r *fakeRunner) RunCombined(command shell.Command) (*shell.Result, error) {
	return r.run(command)
}

func (r *fakeRunner) Calls() []string {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return append([]string{}, r.calls...)
}

func (r *fakeRunner) run(command shell.Command) (*shell.Result, error) {
	time.Sleep(r.delay)

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.calls = append(r.calls, command.String())
	if r.err != nil {
		return nil, r.err
	}

	result, ok := r.results[command.String()]
	if !ok {
		return &shell.Result{Command: command, Status: "exit status 0"}, nil
	}

	copied := *result
	copied.Command = command
	return &copied, nil
}

// In memory connection. Writes fail with err once limit writes succeeded.
type fakeConn struct {
	request *strings.Reader
	written bytes.Buffer
	writes  int
	limit   int
	err     error
	closed  bool
}

func newFakeConn(request string) *fakeConn {
	return &fakeConn{request: strings.NewReader(request)}
}

func (c *fakeConn) Read(p []byte) (int, error) {
	return c.request.Read(p)
}

func (c *fakeConn) Write(p []byte) (int, error) {
	if c.err != nil && c.writes >= c.limit {
		return 0, c.err
	}
	c.writes++
	return c.written.Write(p)
}

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

func (c *fakeConn) LocalAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080}
}

func (c *fakeConn) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 54321}
}

func (c *fakeConn) SetDeadline(t time.Time) error      { return nil }
func (c *fakeConn) SetReadDeadline(t time.Time) error  { return nil }
func (c *fakeConn) SetWriteDeadline(t time.Time) error { return nil }
