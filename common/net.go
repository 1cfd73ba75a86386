package common

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	set "github.com/deckarep/golang-set/v2"
)

// Errors which mean the peer went away while we were talking to it
var disconnectErrors = set.NewSet[syscall.Errno](
	syscall.EPIPE,
	syscall.ECONNRESET,
	syscall.ECONNABORTED,
)

func GetAddress(hostname string, port int) string {
	return fmt.Sprintf("%s:%d", hostname, port)
}

// Returns true if err was caused by the peer closing its side of the connection
func IsDisconnect(err error) bool {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return false
	}
	return disconnectErrors.Contains(errno)
}

// Writes all bytes of message to w. A short write without an error is
// reported as io.ErrShortWrite.
func SendAll(w io.Writer, message []byte) (int, error) {
	sent := 0

	for sent < len(message) {
		n, err := w.Write(message[sent:])
		sent += n
		if err != nil {
			return sent, err
		}
		if n == 0 {
			return sent, io.ErrShortWrite
		}
	}

	return sent, nil
}
