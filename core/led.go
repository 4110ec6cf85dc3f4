package core

// LED drives the single-bit LED output.
// The driver owns every bit of its register, so writes are full overwrites.
type LED struct {
	reg Register
}

// NewLED creates a driver over the LED control register.
func NewLED(reg Register) *LED {
	return &LED{reg: reg}
}

// Enable turns the LED on or off with one unconditional register write.
func (l *LED) Enable(on bool) {
	l.reg.Set(Ctrl(0).Set(CtrlEnable, on).Encode())
}
