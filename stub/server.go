// Package stub implements the fake HTTP backends used by the integration
// tests. A server accepts one connection at a time and answers every request
// with the output of a few toolchain probes.
package stub

import (
	"fmt"
	"net"

	"github.com/paketo-buildpacks/bundler/common"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	Port    int
	Handler *Handler
}

func NewServer(port int, handler *Handler) *Server {
	return &Server{Port: port, Handler: handler}
}

// Binds the port on all interfaces and serves until an error occurs
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", common.GetAddress("", s.Port))
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	log.Println("Stub server is listening on port", s.Port)

	return s.Serve(listener)
}

// Accepts connections one after another. Each connection is fully handled
// before the next one is accepted.
func (s *Server) Serve(listener net.Listener) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			return err
		}

		log.Debug("Accepted connection from ", conn.RemoteAddr())

		if err := s.Handler.Handle(conn); err != nil {
			return err
		}
	}
}
