package core

// Each peripheral has exactly one driver for the life of the program.
// Target code registers it once at startup; registering a second driver
// for the same peripheral would alias its registers and panics.
var (
	ncoDriver *NCO
	ledDriver *LED
)

// SetNCO is called by target-specific code to register the NCO driver.
func SetNCO(n *NCO) {
	if ncoDriver != nil {
		panic("NCO driver already configured")
	}
	ncoDriver = n
}

// MustNCO returns the configured driver or panics if missing.
func MustNCO() *NCO {
	if ncoDriver == nil {
		panic("NCO driver not configured")
	}
	return ncoDriver
}

// SetLED is called by target-specific code to register the LED driver.
func SetLED(l *LED) {
	if ledDriver != nil {
		panic("LED driver already configured")
	}
	ledDriver = l
}

// MustLED returns the configured driver or panics if missing.
func MustLED() *LED {
	if ledDriver == nil {
		panic("LED driver not configured")
	}
	return ledDriver
}
