package core

// StartupConfig is the peripheral state the firmware establishes at boot
type StartupConfig struct {
	Frequency float32 // NCO output frequency in Hz
	NCOEnable bool    // Start the oscillator after programming it
	LEDEnable bool    // Drive the LED
}

// DefaultStartupConfig returns the stock boot configuration:
// a 32768.5 Hz tone with the oscillator and LED both on.
func DefaultStartupConfig() StartupConfig {
	return StartupConfig{
		Frequency: 32768.5,
		NCOEnable: true,
		LEDEnable: true,
	}
}

// Startup programs the registered peripherals in a fixed order:
// NCO frequency, NCO enable, then LED.
// The frequency is written before enabling so the oscillator never runs
// with a stale phase step.
func Startup(cfg StartupConfig) {
	nco := MustNCO()
	nco.SetFrequency(cfg.Frequency)
	nco.Enable(cfg.NCOEnable)

	MustLED().Enable(cfg.LEDEnable)

	DebugPrintln("startup: done")
}
