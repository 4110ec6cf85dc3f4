package core

// regAccess records one access to a fake register
type regAccess struct {
	Addr  uint32
	Write bool
	Value uint32
}

// fakeBus is a sparse register file that logs every access in order
type fakeBus struct {
	cells map[uint32]uint32
	log   []regAccess
}

func newFakeBus() *fakeBus {
	return &fakeBus{cells: make(map[uint32]uint32)}
}

// reg returns the register at addr
func (b *fakeBus) reg(addr uint32) *fakeRegister {
	return &fakeRegister{bus: b, addr: addr}
}

func (b *fakeBus) accesses(addr uint32) []regAccess {
	var out []regAccess
	for _, a := range b.log {
		if a.Addr == addr {
			out = append(out, a)
		}
	}
	return out
}

type fakeRegister struct {
	bus  *fakeBus
	addr uint32
}

func (r *fakeRegister) Get() uint32 {
	v := r.bus.cells[r.addr]
	r.bus.log = append(r.bus.log, regAccess{Addr: r.addr, Value: v})
	return v
}

func (r *fakeRegister) Set(value uint32) {
	r.bus.cells[r.addr] = value
	r.bus.log = append(r.bus.log, regAccess{Addr: r.addr, Write: true, Value: value})
}

// resetPeripherals clears the driver singletons between tests
func resetPeripherals() {
	ncoDriver = nil
	ledDriver = nil
}

// captureDebug enables debug output into a slice for the duration of a test
func captureDebug(t interface{ Cleanup(func()) }) *[]string {
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	SetDebugEnabled(true)
	t.Cleanup(func() {
		SetDebugWriter(func(string) {})
		SetDebugEnabled(false)
	})
	return &lines
}
