//go:build !linux

package devmem

import (
	"errors"
	"fmt"
)

// DefaultPath is the physical memory device on Linux
const DefaultPath = "/dev/mem"

var errUnsupported = errors.New("devmem: physical memory mapping requires linux")

// Open is only available on Linux.
func Open(path string, base uintptr, span int) (*Window, error) {
	return nil, fmt.Errorf("could not open %s at 0x%x: %w", path, base, errUnsupported)
}
