package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBoard registers drivers for every peripheral at its fixed address
func newTestBoard(t *testing.T) *fakeBus {
	resetPeripherals()
	t.Cleanup(resetPeripherals)

	bus := newFakeBus()
	SetNCO(NewNCO(bus.reg(NCOBase+NCOCtrlOffset), bus.reg(NCOBase+NCOPhaseStepOffset)))
	SetLED(NewLED(bus.reg(LEDBase)))
	return bus
}

func TestStartupDefault(t *testing.T) {
	bus := newTestBoard(t)
	bus.cells[NCOBase+NCOCtrlOffset] = 0x80000100

	Startup(DefaultStartupConfig())

	assert.Equal(t, uint32(8796227), bus.cells[NCOBase+NCOPhaseStepOffset])
	assert.Equal(t, uint32(0x80000101), bus.cells[NCOBase+NCOCtrlOffset])
	assert.Equal(t, uint32(1), bus.cells[LEDBase])

	// Program order: phase step, ctrl read, ctrl write, LED
	require.Len(t, bus.log, 4)
	assert.Equal(t, []uint32{
		NCOBase + NCOPhaseStepOffset,
		NCOBase + NCOCtrlOffset,
		NCOBase + NCOCtrlOffset,
		LEDBase,
	}, []uint32{bus.log[0].Addr, bus.log[1].Addr, bus.log[2].Addr, bus.log[3].Addr})
}

func TestStartupDisabled(t *testing.T) {
	bus := newTestBoard(t)
	bus.cells[NCOBase+NCOCtrlOffset] = 0xffffffff

	Startup(StartupConfig{Frequency: 1000})

	assert.Equal(t, uint32(268435), bus.cells[NCOBase+NCOPhaseStepOffset])
	assert.Equal(t, uint32(0xfffffffe), bus.cells[NCOBase+NCOCtrlOffset])
	assert.Equal(t, uint32(0), bus.cells[LEDBase])
}

func TestPeripheralSingletons(t *testing.T) {
	resetPeripherals()
	t.Cleanup(resetPeripherals)

	assert.PanicsWithValue(t, "NCO driver not configured", func() { MustNCO() })
	assert.PanicsWithValue(t, "LED driver not configured", func() { MustLED() })

	bus := newFakeBus()
	nco := NewNCO(bus.reg(NCOBase), bus.reg(NCOBase+4))
	led := NewLED(bus.reg(LEDBase))
	SetNCO(nco)
	SetLED(led)

	assert.Same(t, nco, MustNCO())
	assert.Same(t, led, MustLED())

	assert.PanicsWithValue(t, "NCO driver already configured", func() {
		SetNCO(NewNCO(bus.reg(NCOBase), bus.reg(NCOBase+4)))
	})
	assert.PanicsWithValue(t, "LED driver already configured", func() {
		SetLED(NewLED(bus.reg(LEDBase)))
	})
	assert.Same(t, nco, MustNCO())
}
