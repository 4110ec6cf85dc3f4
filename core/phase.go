package core

import "math"

// NCOClockFrequency is the reference clock of the NCO phase accumulator in Hz
const NCOClockFrequency = 16000000.0

// phaseModulus is the range of the 32-bit phase accumulator (2^32)
const phaseModulus = 4294967296.0

// PhaseStep converts a requested output frequency in Hz into the
// per-clock phase increment of the NCO:
//
//	round(2^32 * freq / NCOClockFrequency) mod 2^32
//
// The computation runs in float64 and rounds half away from zero.
// The result wraps rather than saturates: a frequency at or above the
// clock aliases to a lower one (NCOClockFrequency gives 0), which is how
// the phase accumulator itself behaves.
//
// Callers must pass a finite, non-negative frequency. A negative value
// wraps to a large step (-1 Hz gives 2^32-268) and NaN or Inf give 0.
func PhaseStep(freq float32) uint32 {
	step := math.Round(phaseModulus * float64(freq) / NCOClockFrequency)
	return wrapUint32(step)
}

// Frequency returns the output frequency in Hz produced by a phase step.
func Frequency(step uint32) float64 {
	return float64(step) * NCOClockFrequency / phaseModulus
}

// wrapUint32 reduces an integral float64 modulo 2^32.
// Go leaves out-of-range float to integer conversions implementation
// defined, so the reduction is done in floating point first.
func wrapUint32(v float64) uint32 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	v = math.Mod(v, phaseModulus)
	if v < 0 {
		v += phaseModulus
	}
	return uint32(v)
}
