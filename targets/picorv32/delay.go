//go:build picorv32

package main

import (
	"picofw/core"
	"runtime/volatile"
)

// The core is synthesized with ENABLE_COUNTERS=0, so there is no cycle
// counter to poll. Delays are counted spins over a volatile cell that the
// compiler cannot remove.
const (
	spinCycles     = 8 // Approximate cycles per iteration (load, store, branch)
	uartFrameSpins = core.UARTFrameCycles/spinCycles + 1
)

var spinCell volatile.Register32

// spin busy-waits for n iterations
func spin(n uint32) {
	for i := uint32(0); i < n; i++ {
		spinCell.Set(spinCell.Get() + 1)
	}
}

// waitUARTFrame blocks for at least one UART character time
func waitUARTFrame() {
	spin(uartFrameSpins)
}
