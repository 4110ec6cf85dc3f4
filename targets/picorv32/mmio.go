//go:build picorv32

package main

import (
	"picofw/core"
	"runtime/volatile"
	"unsafe"
)

// ncoRegs is the NCO register block at core.NCOBase
type ncoRegs struct {
	CTRL       volatile.Register32 // 0x00
	PHASE_STEP volatile.Register32 // 0x04
}

// uartRegs is the UART transmit block at core.UARTBase
type uartRegs struct {
	DATA volatile.Register32 // 0x00, low 8 bits, write only
}

// ledRegs is the LED block at core.LEDBase
type ledRegs struct {
	CTRL volatile.Register32 // 0x00, bit 0 = enable
}

// Fixed peripheral windows. These are the only places the firmware turns
// an address into a pointer; everything else goes through core drivers.
var (
	ncoBlock  = (*ncoRegs)(unsafe.Pointer(uintptr(core.NCOBase)))
	uartBlock = (*uartRegs)(unsafe.Pointer(uintptr(core.UARTBase)))
	ledBlock  = (*ledRegs)(unsafe.Pointer(uintptr(core.LEDBase)))
)

// initPeripherals creates the one driver for each peripheral and registers it
func initPeripherals() *core.UART {
	core.SetNCO(core.NewNCO(&ncoBlock.CTRL, &ncoBlock.PHASE_STEP))
	core.SetLED(core.NewLED(&ledBlock.CTRL))
	return core.NewUART(&uartBlock.DATA, waitUARTFrame)
}
