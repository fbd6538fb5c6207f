// Package ipc implements the Unix socket used to drive the panel from
// outside the process, e.g. from a window manager keybinding.
package ipc

import (
	"fmt"
	"log"
	"net"
	"os"
	"sync"
)

// Handler receives commands on the UI thread.
type Handler interface {
	ToggleActivity()
	Show()
	Hide()
	Cancel()
	Next()
	SubmitOrRun()
	SetQuery(text string)
}

// Dispatcher runs fn on the UI thread.
type Dispatcher func(fn func())

type Server struct {
	socketPath string
	handler    Handler
	dispatch   Dispatcher
	listener   net.Listener
	mu         sync.Mutex
	running    bool
	wg         sync.WaitGroup
}

func NewServer(socketPath string, handler Handler, dispatch Dispatcher) *Server {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Server{
		socketPath: socketPath,
		handler:    handler,
		dispatch:   dispatch,
	}
}

func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("IPC server already running")
	}

	// Remove a stale socket left by a previous run
	if _, err := os.Stat(s.socketPath); err == nil {
		os.Remove(s.socketPath)
	}

	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create socket listener: %w", err)
	}

	s.listener = listener
	s.running = true

	log.Printf("IPC server listening on %s", s.socketPath)

	s.wg.Add(1)
	go s.acceptConnections(listener)

	return nil
}

func (s *Server) isRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Server) acceptConnections(listener net.Listener) {
	defer s.wg.Done()
	for {
		conn, err := listener.Accept()
		if err != nil {
			if !s.isRunning() {
				return
			}
			log.Printf("Error accepting connection: %v", err)
			continue
		}
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	buf := make([]byte, maxMessageSize)
	n, err := conn.Read(buf)
	if err != nil {
		log.Printf("Error reading from connection: %v", err)
		return
	}

	message := string(buf[:n])
	log.Printf("Received IPC message: %q", message)

	cmd, err := ParseMessage(message)
	if err != nil {
		log.Printf("Ignoring IPC message: %v", err)
		return
	}
	s.handleCommand(cmd)
}

func (s *Server) handleCommand(cmd Command) {
	s.dispatch(func() {
		switch cmd.Kind {
		case CmdToggle:
			s.handler.ToggleActivity()
		case CmdShow:
			s.handler.Show()
		case CmdHide:
			s.handler.Hide()
		case CmdCancel:
			s.handler.Cancel()
		case CmdNext:
			s.handler.Next()
		case CmdRun:
			s.handler.SubmitOrRun()
		case CmdQuery:
			s.handler.SetQuery(cmd.Arg)
		}
	})
}

func (s *Server) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	listener := s.listener
	s.mu.Unlock()

	listener.Close()
	s.wg.Wait()

	if _, err := os.Stat(s.socketPath); err == nil {
		os.Remove(s.socketPath)
	}

	log.Println("IPC server stopped")
	return nil
}
