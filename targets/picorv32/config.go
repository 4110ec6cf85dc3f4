//go:build picorv32

package main

import "picofw/core"

// bootConfig determines what the firmware programs at startup
type bootConfig struct {
	core.StartupConfig

	// Route core debug output to the UART
	Debug bool
}

// getBootConfig returns the boot configuration
// This is fixed at compile time; the firmware has no configuration input
func getBootConfig() bootConfig {
	return bootConfig{
		StartupConfig: core.DefaultStartupConfig(),
		Debug:         debugBuild,
	}
}
