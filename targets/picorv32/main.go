//go:build picorv32

package main

import "picofw/core"

func main() {
	cfg := getBootConfig()

	uart := initPeripherals()
	if cfg.Debug {
		core.SetDebugWriter(uart.Println)
		core.SetDebugEnabled(true)
		core.DebugPrintln("picofw: boot")
	}

	core.Startup(cfg.StartupConfig)

	// Nothing left to do; the NCO and LED run on their own
	for {
	}
}
