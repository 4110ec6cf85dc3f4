//go:build linux

package devmem

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sys/unix"
)

// DefaultPath is the physical memory device on Linux
const DefaultPath = "/dev/mem"

// Open maps span bytes of physical memory starting at the page holding base.
// The mapping is shared and uncached (O_SYNC), so every register access
// reaches the bus.
func Open(path string, base uintptr, span int) (*Window, error) {
	if span <= 0 {
		return nil, fmt.Errorf("devmem: invalid span %d", span)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("devmem: could not open %s: %w", path, err)
	}
	// The mapping outlives the descriptor
	defer f.Close()

	page := uintptr(os.Getpagesize())
	start := base &^ (page - 1)
	length := int(base-start) + span
	length = (length + int(page) - 1) &^ (int(page) - 1)

	data, err := unix.Mmap(
		int(f.Fd()),
		int64(start), length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_SHARED,
	)
	if err != nil {
		return nil, fmt.Errorf("devmem: could not mmap 0x%x+%d: %w", start, length, err)
	}
	if data == nil || len(data) != length {
		return nil, fmt.Errorf("devmem: invalid mmap'd data: %d", len(data))
	}

	w := &Window{
		base:  start,
		data:  data,
		unmap: unix.Munmap,
	}
	runtime.SetFinalizer(w, (*Window).Close)
	return w, nil
}
