package stepper

import "github.com/donaldintech/fpga-fsm"

// pin names shared by the parts below
const (
	pIn    = "in"
	pOut   = "out"
	pRst   = "rst"
	pSync  = "sync"
	pDeb   = "deb"
	pPress = "press"
)

// Sync2 returns a two-stage input synchronizer.
//
//	Inputs: in
//	Outputs: s0, s1
//	Function: s0(t) = in(t-1); s1(t) = s0(t-1)
func Sync2(conns string) fpgafsm.Part {
	return (&fpgafsm.PartSpec{
		Name:    "SYNC2",
		Inputs:  []string{pIn},
		Outputs: []string{"s0", "s1"},
		Mount: func(s *fpgafsm.Socket) []fpgafsm.Component {
			in, o0, o1 := s.Pin(pIn), s.Pin("s0"), s.Pin("s1")
			reg := sync2{s0: true, s1: true}
			return []fpgafsm.Component{func(c *fpgafsm.Circuit) {
				if c.AtTick() {
					reg.shift(c.Get(in))
				}
				c.Set(o0, reg.s0)
				c.Set(o1, reg.s1)
			}}
		}}).NewPart(conns)
}

// ButtonDebounce returns the button conditioning stage: a registered copy
// of the synchronized button line, forced to the released level while the
// raw reset line is asserted. The force path bypasses the clock, like an
// asynchronous preset.
//
//	Inputs: rst (raw reset, active low), sync (synchronizer stage s1)
//	Outputs: out (high = button released)
func ButtonDebounce(conns string) fpgafsm.Part {
	return (&fpgafsm.PartSpec{
		Name:    "BTNDEB",
		Inputs:  []string{pRst, pSync},
		Outputs: []string{pOut},
		Mount: func(s *fpgafsm.Socket) []fpgafsm.Component {
			rst, in, out := s.Pin(pRst), s.Pin(pSync), s.Pin(pOut)
			level := true
			return []fpgafsm.Component{func(c *fpgafsm.Circuit) {
				if !c.Get(rst) {
					level = true
				} else if c.AtTick() {
					level = c.Get(in)
				}
				c.Set(out, level)
			}}
		}}).NewPart(conns)
}

// ResetDebounce returns the reset conditioning stage: cleared while the
// synchronized reset line is low, released at the first clock edge after
// the line goes high. Release therefore lags the synchronized line by one
// tick while assertion does not wait for an edge.
//
//	Inputs: sync (synchronizer stage s1)
//	Outputs: out (high = reset released)
func ResetDebounce(conns string) fpgafsm.Part {
	return (&fpgafsm.PartSpec{
		Name:    "RSTDEB",
		Inputs:  []string{pSync},
		Outputs: []string{pOut},
		Mount: func(s *fpgafsm.Socket) []fpgafsm.Component {
			in, out := s.Pin(pSync), s.Pin(pOut)
			level := true
			return []fpgafsm.Component{func(c *fpgafsm.Circuit) {
				if !c.Get(in) {
					level = false
				} else if c.AtTick() {
					level = true
				}
				c.Set(out, level)
			}}
		}}).NewPart(conns)
}

// PressDetect returns the press event stage. Its output goes low for
// exactly one clock cycle when the debounce level still reads pressed
// while the synchronized line has already returned high, which is the
// trailing edge of a press. Holding the button yields a single event per
// press/release cycle.
//
//	Inputs: rst (debounced reset), deb (debounce level), sync (stage s1)
//	Outputs: out (low = press event)
func PressDetect(conns string) fpgafsm.Part {
	return (&fpgafsm.PartSpec{
		Name:    "PRESS",
		Inputs:  []string{pRst, pDeb, pSync},
		Outputs: []string{pOut},
		Mount: func(s *fpgafsm.Socket) []fpgafsm.Component {
			rst, deb, in, out := s.Pin(pRst), s.Pin(pDeb), s.Pin(pSync), s.Pin(pOut)
			level := true
			return []fpgafsm.Component{func(c *fpgafsm.Circuit) {
				if !c.Get(rst) {
					level = true
				} else if c.AtTick() {
					level = !(!c.Get(deb) && c.Get(in))
				}
				c.Set(out, level)
			}}
		}}).NewPart(conns)
}

// StateReg returns the state register. It advances to the next state in
// the A, B, C, D cycle at each clock edge where the press input is low,
// and resets to state A whenever the debounced reset input is low, on the
// same cycle the reset is seen.
//
//	Inputs: rst (debounced reset), press
//	Outputs: st[2] (state number, st[0] is lsb)
func StateReg(conns string) fpgafsm.Part {
	return (&fpgafsm.PartSpec{
		Name:    "STATEREG",
		Inputs:  []string{pRst, pPress},
		Outputs: fpgafsm.IO("st[2]"),
		Mount: func(s *fpgafsm.Socket) []fpgafsm.Component {
			rst, press := s.Pin(pRst), s.Pin(pPress)
			st := s.Bus("st", 2)
			cur := StateA
			return []fpgafsm.Component{func(c *fpgafsm.Circuit) {
				if !c.Get(rst) {
					cur = StateA
				} else if c.AtTick() && !c.Get(press) {
					cur = cur.next()
				}
				c.Set(st[0], cur&1 != 0)
				c.Set(st[1], cur&2 != 0)
			}}
		}}).NewPart(conns)
}

// Decoder returns the output decoder, a pure combinational mapping from
// the state bus to the four indicator lines.
//
//	Inputs: st[2]
//	Outputs: led[4]
//	Function: led[n] = (st == n)
func Decoder(conns string) fpgafsm.Part {
	return (&fpgafsm.PartSpec{
		Name:    "DECODER",
		Inputs:  fpgafsm.IO("st[2]"),
		Outputs: fpgafsm.IO("led[4]"),
		Mount: func(s *fpgafsm.Socket) []fpgafsm.Component {
			st := s.Bus("st", 2)
			led := s.Bus("led", 4)
			return []fpgafsm.Component{func(c *fpgafsm.Circuit) {
				n := 0
				if c.Get(st[0]) {
					n |= 1
				}
				if c.Get(st[1]) {
					n |= 2
				}
				o := Decode(State(n))
				c.Set(led[0], o.Led1)
				c.Set(led[1], o.Led2)
				c.Set(led[2], o.Led3)
				c.Set(led[3], o.Led4)
			}}
		}}).NewPart(conns)
}

// Chip composes the full pipeline into a single part: raw samples in,
// indicator levels out.
//
//	Inputs: btn, rst (raw samples, active low)
//	Outputs: led[4]
func Chip() (fpgafsm.NewPartFn, error) {
	return fpgafsm.Chip("BTNFSM", "btn, rst", "led[4]",
		Sync2("in=btn, s1=btnSync"),
		Sync2("in=rst, s1=rstSync"),
		ButtonDebounce("rst=rst, sync=btnSync, out=btnDeb"),
		ResetDebounce("sync=rstSync, out=rstDeb"),
		PressDetect("rst=rstDeb, deb=btnDeb, sync=btnSync, out=btnPrs"),
		StateReg("rst=rstDeb, press=btnPrs, st[0..1]=st[0..1]"),
		Decoder("st[0..1]=st[0..1], led[0..3]=led[0..3]"),
	)
}

// CorePart mounts a behavioral Core as a single part with the same pin
// interface as Chip, latching the raw samples once per clock cycle. It is
// mainly useful to check the structural circuit against the behavioral
// core (see the simtest package).
func CorePart() fpgafsm.NewPartFn {
	return (&fpgafsm.PartSpec{
		Name:    "BTNFSMCORE",
		Inputs:  []string{"btn", "rst"},
		Outputs: fpgafsm.IO("led[4]"),
		Mount: func(s *fpgafsm.Socket) []fpgafsm.Component {
			btn, rst := s.Pin("btn"), s.Pin("rst")
			led := s.Bus("led", 4)
			core := New()
			out := core.Outputs()
			return []fpgafsm.Component{func(c *fpgafsm.Circuit) {
				if c.AtTick() {
					out = core.Advance(c.Get(btn), c.Get(rst))
				}
				c.Set(led[0], out.Led1)
				c.Set(led[1], out.Led2)
				c.Set(led[2], out.Led3)
				c.Set(led[3], out.Led4)
			}}
		}}).NewPart
}
