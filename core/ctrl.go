package core

// Ctrl is the flag view of a peripheral control word.
//
// Only the bits named below carry meaning for software. Every other bit is
// reserved by the hardware and is carried through Set and Encode unchanged.
type Ctrl uint32

// Control word flags
const (
	CtrlEnable Ctrl = 1 << 0 // Peripheral output enabled
)

// ctrlKnown is the set of flags software understands
const ctrlKnown = CtrlEnable

// DecodeCtrl interprets a raw control word. Unknown bits are kept verbatim.
func DecodeCtrl(raw uint32) Ctrl {
	return Ctrl(raw)
}

// Encode returns the raw control word for c.
func (c Ctrl) Encode() uint32 {
	return uint32(c)
}

// Set returns c with flag set (on) or cleared, all other bits untouched.
func (c Ctrl) Set(flag Ctrl, on bool) Ctrl {
	if on {
		return c | flag
	}
	return c &^ flag
}

// Has reports whether every bit of flag is set in c.
func (c Ctrl) Has(flag Ctrl) bool {
	return c&flag == flag
}

// Reserved returns the bits of c that software does not know about.
func (c Ctrl) Reserved() uint32 {
	return uint32(c &^ ctrlKnown)
}

// String renders known flags by name and reserved bits in hex,
// e.g. "ENABLE|0x80000000". A zero word is "0".
func (c Ctrl) String() string {
	s := ""
	if c.Has(CtrlEnable) {
		s = "ENABLE"
	}
	if r := c.Reserved(); r != 0 {
		if s != "" {
			s += "|"
		}
		s += hex32(r)
	}
	if s == "" {
		return "0"
	}
	return s
}
