// NCO (numerically-controlled oscillator) driver
// Drives the fabric's sine/cosine NCO through its control and phase-step registers
package core

// NCO owns the two registers of one NCO peripheral.
//
// The driver holds no state of its own; everything durable lives in the
// hardware. It is not safe for concurrent use (see Enable).
type NCO struct {
	ctrl      Register // Control word, bit 0 = enable
	phaseStep Register // Phase accumulator increment
}

// NewNCO creates a driver over the peripheral's control and phase-step registers.
func NewNCO(ctrl, phaseStep Register) *NCO {
	return &NCO{
		ctrl:      ctrl,
		phaseStep: phaseStep,
	}
}

// Enable starts (true) or stops (false) the oscillator output.
//
// This is a read-modify-write of the control register: one Get, one Set,
// with reserved bits written back as read. The pair is not atomic. The
// firmware runs on a single thread with interrupts unused; if an interrupt
// handler or second goroutine ever touches the control register, callers
// must serialize Enable against it.
func (n *NCO) Enable(on bool) {
	flags := DecodeCtrl(n.ctrl.Get()).Set(CtrlEnable, on)
	n.ctrl.Set(flags.Encode())

	if debugEnabled {
		DebugPrintln("nco: ctrl=" + flags.String())
	}
}

// SetFrequency programs the output frequency in Hz.
// The phase-step register is overwritten in full; see PhaseStep for the
// quantization and the wrap-around of out-of-range requests.
func (n *NCO) SetFrequency(freq float32) {
	step := PhaseStep(freq)
	n.phaseStep.Set(step)

	if debugEnabled {
		DebugPrintln("nco: phase_step=" + hex32(step) + " (" + utoa(step) + ")")
	}
}
