package main

import (
	"fmt"
	"net"
	"os"
	"strings"
)

const defaultSocketPath = "/tmp/mirage_socket"

func sendMessage(message string) error {
	socketPath := os.Getenv("MIRAGE_SOCKET")
	if socketPath == "" {
		socketPath = defaultSocketPath
	}

	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return fmt.Errorf("failed to connect to mirage socket: %w", err)
	}
	defer conn.Close()

	_, err = conn.Write([]byte(message))
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: mirage-client <action> [arg]\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  mirage-client notify \"Disk:Almost full\"\n")
		fmt.Fprintf(os.Stderr, "  mirage-client window-open \"Notes:blank\"\n")
		fmt.Fprintf(os.Stderr, "  mirage-client search-show\n")
		os.Exit(1)
	}

	message := strings.Join(os.Args[1:], " ")
	if err := sendMessage(message); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
