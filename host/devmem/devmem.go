// Package devmem maps a window of physical memory through /dev/mem and
// exposes its 32-bit cells as core.Register values.
//
// It lets the core drivers run from a Linux host that sees the fabric's
// peripherals on its own bus (an SoC FPGA bridge, for instance).
package devmem

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"unsafe"

	"picofw/core"
)

var (
	// ErrClosed is returned when using a window after Close
	ErrClosed = errors.New("devmem: closed")
)

// Window is an mmap'd span of physical memory.
type Window struct {
	base uintptr // Physical address of data[0]
	data []byte
	// unmap releases data; nil for windows built with WindowFrom
	unmap func([]byte) error
}

// WindowFrom wraps an existing byte slice as if it were mapped at base.
// It is used for testing and for memory obtained by other means.
func WindowFrom(base uintptr, data []byte) *Window {
	return &Window{base: base, data: data}
}

// Base returns the physical address of the first byte of the window.
func (w *Window) Base() uintptr {
	return w.base
}

// Len returns the size of the window in bytes.
func (w *Window) Len() int {
	return len(w.data)
}

// Close unmaps the window. Registers obtained from it must not be used afterwards.
func (w *Window) Close() error {
	if w == nil {
		return os.ErrInvalid
	}
	if w.data == nil {
		return nil
	}
	data := w.data
	w.data = nil
	runtime.SetFinalizer(w, nil)

	if w.unmap == nil {
		return nil
	}
	if err := w.unmap(data); err != nil {
		return fmt.Errorf("devmem: could not unmap window at 0x%x: %w", w.base, err)
	}
	return nil
}

// Register returns the 32-bit register at physical address addr.
// addr must be 4-byte aligned and lie inside the window.
func (w *Window) Register(addr uintptr) (*Register, error) {
	if w == nil {
		return nil, os.ErrInvalid
	}
	if w.data == nil {
		return nil, ErrClosed
	}
	if addr%4 != 0 {
		return nil, fmt.Errorf("devmem: unaligned register address 0x%x", addr)
	}
	if addr < w.base || addr+4 > w.base+uintptr(len(w.data)) {
		return nil, fmt.Errorf(
			"devmem: register 0x%x outside window [0x%x, 0x%x)",
			addr, w.base, w.base+uintptr(len(w.data)),
		)
	}
	off := addr - w.base
	return &Register{
		addr: addr,
		cell: (*uint32)(unsafe.Pointer(&w.data[off])),
	}, nil
}

// Register is one 32-bit cell of a mapped window.
// Accesses are single aligned 32-bit loads and stores that the compiler
// may neither merge nor elide.
type Register struct {
	addr uintptr
	cell *uint32
}

var _ core.Register = (*Register)(nil)

// Addr returns the physical address of the register.
func (r *Register) Addr() uintptr {
	return r.addr
}

// Get loads the register.
func (r *Register) Get() uint32 {
	return atomic.LoadUint32(r.cell)
}

// Set stores value into the register.
func (r *Register) Set(value uint32) {
	atomic.StoreUint32(r.cell, value)
}
