// Package logic provides a library of reusable parts for fpgafsm
// circuits.
package logic

import "github.com/donaldintech/fpga-fsm"

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pIn  = "in"
	pSel = "sel"
	pOut = "out"
)

var notGate = fpgafsm.PartSpec{
	Name:    "NOT",
	Inputs:  []string{pIn},
	Outputs: []string{pOut},
	Mount: func(s *fpgafsm.Socket) []fpgafsm.Component {
		in, out := s.Pin(pIn), s.Pin(pOut)
		return []fpgafsm.Component{
			func(c *fpgafsm.Circuit) { c.Set(out, !c.Get(in)) },
		}
	},
}

// Not returns a NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
func Not(conns string) fpgafsm.Part {
	return notGate.NewPart(conns)
}

// other gates
type gate func(a, b bool) bool

func (g gate) mount(s *fpgafsm.Socket) []fpgafsm.Component {
	a, b, out := s.Pin(pA), s.Pin(pB), s.Pin(pOut)
	return []fpgafsm.Component{
		func(c *fpgafsm.Circuit) { c.Set(out, g(c.Get(a), c.Get(b))) },
	}
}

func newGate(name string, fn func(a, b bool) bool) *fpgafsm.PartSpec {
	return &fpgafsm.PartSpec{
		Name:    name,
		Inputs:  []string{pA, pB},
		Outputs: []string{pOut},
		Mount:   gate(fn).mount,
	}
}

var (
	and  = newGate("AND", func(a, b bool) bool { return a && b })
	nand = newGate("NAND", func(a, b bool) bool { return !(a && b) })
	or   = newGate("OR", func(a, b bool) bool { return a || b })
	nor  = newGate("NOR", func(a, b bool) bool { return !(a || b) })
	xor  = newGate("XOR", func(a, b bool) bool { return a && !b || !a && b })
)

// And returns an AND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
func And(conns string) fpgafsm.Part { return and.NewPart(conns) }

// Nand returns a NAND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
func Nand(conns string) fpgafsm.Part { return nand.NewPart(conns) }

// Or returns an OR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
func Or(conns string) fpgafsm.Part { return or.NewPart(conns) }

// Nor returns a NOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a || b)
func Nor(conns string) fpgafsm.Part { return nor.NewPart(conns) }

// Xor returns a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = (a && !b) || (!a && b)
func Xor(conns string) fpgafsm.Part { return xor.NewPart(conns) }

// Mux returns a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
func Mux(conns string) fpgafsm.Part { return mux.NewPart(conns) }

var mux = fpgafsm.PartSpec{
	Name:    "MUX",
	Inputs:  []string{pA, pB, pSel},
	Outputs: []string{pOut},
	Mount: func(s *fpgafsm.Socket) []fpgafsm.Component {
		a, b, sel, out := s.Pin(pA), s.Pin(pB), s.Pin(pSel), s.Pin(pOut)
		return []fpgafsm.Component{func(c *fpgafsm.Circuit) {
			if c.Get(sel) {
				c.Set(out, c.Get(b))
			} else {
				c.Set(out, c.Get(a))
			}
		}}
	},
}

// DMux returns a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
func DMux(conns string) fpgafsm.Part { return dmux.NewPart(conns) }

var dmux = fpgafsm.PartSpec{
	Name:    "DMUX",
	Inputs:  []string{pIn, pSel},
	Outputs: []string{pA, pB},
	Mount: func(s *fpgafsm.Socket) []fpgafsm.Component {
		in, sel, a, b := s.Pin(pIn), s.Pin(pSel), s.Pin(pA), s.Pin(pB)
		return []fpgafsm.Component{func(c *fpgafsm.Circuit) {
			if c.Get(sel) {
				c.Set(a, false)
				c.Set(b, c.Get(in))
			} else {
				c.Set(a, c.Get(in))
				c.Set(b, false)
			}
		}}
	},
}
