package core

// Register is a single memory-mapped 32-bit cell.
//
// Every Get and Set must reach the hardware exactly once, in program order,
// and never be served from a cache. On the firmware target this is satisfied
// by *volatile.Register32; on a Linux host by devmem.Register.
// Implementations perform no validation of the address they wrap.
type Register interface {
	// Get returns the value currently latched at the address
	Get() uint32

	// Set stores value at the address
	Set(value uint32)
}
