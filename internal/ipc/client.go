package ipc

import (
	"fmt"
	"net"
	"time"
)

const (
	maxMessageSize = 4096
	dialTimeout    = 2 * time.Second
)

// Send writes a single command to the panel socket.
func Send(socketPath string, cmd Command) error {
	message := cmd.String()
	if len(message) > maxMessageSize {
		return fmt.Errorf("message too long: %d bytes (max %d)", len(message), maxMessageSize)
	}

	conn, err := net.DialTimeout("unix", socketPath, dialTimeout)
	if err != nil {
		return fmt.Errorf("failed to connect to walter socket: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(message)); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
