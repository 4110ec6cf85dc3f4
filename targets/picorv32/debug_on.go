//go:build picorv32 && debug

package main

// Built with -tags debug: trace peripheral programming over the UART
const debugBuild = true
