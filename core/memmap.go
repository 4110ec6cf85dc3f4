package core

// PicoRV32 fabric memory map
const (
	NCOBase            = 0xf0000000
	NCOCtrlOffset      = 0x0 // Control word (bit 0 = enable, rest reserved)
	NCOPhaseStepOffset = 0x4 // Phase accumulator increment

	UARTBase = 0xf0000008 // 8-bit transmit data, write only

	LEDBase = 0xcafebab0 // Single control word, bit 0 = enable
)

// UART line settings of the fabric
const (
	UARTClockFreq = 16000000
	UARTBaudRate  = 9600
	UARTFrameBits = 10 // start + 8 data + stop
)
