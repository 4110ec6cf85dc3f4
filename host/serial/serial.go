package serial

import (
	"io"

	"picofw/core"
)

// Port represents a serial port interface
// This abstraction allows for different implementations:
// - Native serial (using github.com/tarm/serial)
// - Mock serial (for testing)
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate of the fabric UART
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns the configuration matching the firmware's debug UART
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        core.UARTBaudRate,
		ReadTimeout: 100, // 100ms read timeout
	}
}
