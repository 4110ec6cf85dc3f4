// UART transmit driver
// The fabric exposes a write-only 8-bit data register and no status flag,
// so the driver paces itself one frame time per byte.
package core

import "io"

// UARTFrameCycles is one character time in CPU clock cycles
const UARTFrameCycles = UARTClockFreq * UARTFrameBits / UARTBaudRate

// UART writes bytes to the fabric's transmit register.
type UART struct {
	data Register
	pace func() // Blocks for one frame time, nil = no pacing
}

var _ io.Writer = (*UART)(nil)

// NewUART creates a transmitter over the data register.
// pace is called after every byte and must wait at least UARTFrameCycles.
func NewUART(data Register, pace func()) *UART {
	return &UART{
		data: data,
		pace: pace,
	}
}

// WriteByte transmits one byte. It never fails.
func (u *UART) WriteByte(c byte) error {
	u.data.Set(uint32(c))
	if u.pace != nil {
		u.pace()
	}
	return nil
}

// Write transmits p in order. It always writes all of p.
func (u *UART) Write(p []byte) (int, error) {
	for _, c := range p {
		u.WriteByte(c)
	}
	return len(p), nil
}

// Println transmits s followed by CRLF.
// Its signature matches DebugWriter so the UART can carry debug output.
func (u *UART) Println(s string) {
	for i := 0; i < len(s); i++ {
		u.WriteByte(s[i])
	}
	u.WriteByte('\r')
	u.WriteByte('\n')
}
