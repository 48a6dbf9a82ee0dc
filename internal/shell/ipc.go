package shell

import (
	"fmt"
	"log"
	"net"
	"os"
	"strings"
)

// IPCServer accepts shell commands over a Unix socket. Messages are
// "action" or "action arg" lines; parsed commands land in the control
// queue and take effect at the next frame boundary.
type IPCServer struct {
	control    *ControlQueue
	socketPath string
	server     *net.UnixListener
	running    bool
}

// NewIPCServer creates a server pushing into control.
func NewIPCServer(control *ControlQueue, socketPath string) *IPCServer {
	return &IPCServer{
		control:    control,
		socketPath: socketPath,
		running:    false,
	}
}

// Start binds the socket and begins accepting connections.
func (s *IPCServer) Start() error {
	if s.running {
		return fmt.Errorf("IPC server already running")
	}

	// Remove existing socket file if it exists
	if _, err := os.Stat(s.socketPath); err == nil {
		os.Remove(s.socketPath)
	}

	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create socket listener: %w", err)
	}

	s.server = listener.(*net.UnixListener)
	s.running = true

	log.Printf("IPC server listening on %s", s.socketPath)

	go s.acceptConnections()

	return nil
}

func (s *IPCServer) acceptConnections() {
	for s.running {
		conn, err := s.server.Accept()
		if err != nil {
			if s.running {
				log.Printf("Error accepting connection: %v", err)
			}
			continue
		}

		unixConn, ok := conn.(*net.UnixConn)
		if !ok {
			log.Printf("Not a Unix connection")
			conn.Close()
			continue
		}

		go s.handleConnection(unixConn)
	}
}

func (s *IPCServer) handleConnection(conn *net.UnixConn) {
	defer conn.Close()

	buf := make([]byte, 1024)
	n, err := conn.Read(buf)
	if err != nil {
		log.Printf("Error reading from connection: %v", err)
		return
	}

	message := strings.TrimSpace(string(buf[:n]))
	log.Printf("Received IPC message: %s", message)

	if err := s.handleMessage(message); err != nil {
		log.Printf("Rejected IPC message: %v", err)
	}
}

func (s *IPCServer) handleMessage(message string) error {
	name, arg := message, ""
	if i := strings.IndexByte(message, ' '); i >= 0 {
		name, arg = message[:i], strings.TrimSpace(message[i+1:])
	}

	action, err := ParseAction(name)
	if err != nil {
		return err
	}

	s.control.Push(Command{Action: action, Arg: arg})
	return nil
}

// Stop closes the listener and removes the socket file.
func (s *IPCServer) Stop() error {
	if !s.running {
		return nil
	}

	s.running = false

	if s.server != nil {
		s.server.Close()
	}

	if _, err := os.Stat(s.socketPath); err == nil {
		os.Remove(s.socketPath)
	}

	log.Println("IPC server stopped")
	return nil
}
