package logic

import (
	"strconv"

	"github.com/donaldintech/fpga-fsm"
)

// Input creates a function based input.
//
//	Outputs: out
//	Function: out = f()
func Input(f func() bool) fpgafsm.NewPartFn {
	p := &fpgafsm.PartSpec{
		Name:    "Input",
		Inputs:  nil,
		Outputs: []string{pOut},
		Mount: func(s *fpgafsm.Socket) []fpgafsm.Component {
			pin := s.Pin(pOut)
			return []fpgafsm.Component{
				func(c *fpgafsm.Circuit) { c.Set(pin, f()) },
			}
		},
	}
	return p.NewPart
}

// Output creates an output or probe. The f function is called with the
// connected pin's state on every simulation step.
//
//	Inputs: in
//	Function: f(in)
func Output(f func(bool)) fpgafsm.NewPartFn {
	p := &fpgafsm.PartSpec{
		Name:    "Output",
		Inputs:  []string{pIn},
		Outputs: nil,
		Mount: func(s *fpgafsm.Socket) []fpgafsm.Component {
			in := s.Pin(pIn)
			return []fpgafsm.Component{
				func(c *fpgafsm.Circuit) { f(c.Get(in)) },
			}
		},
	}
	return p.NewPart
}

// OutputBus creates an output bus of the given bits size. The f function
// receives the bus value with in[0] as least significant bit.
//
//	Inputs: in[bits]
//	Function: f(in)
func OutputBus(bits int, f func(int64)) fpgafsm.NewPartFn {
	return (&fpgafsm.PartSpec{
		Name:    "OUTPUTBUS" + strconv.Itoa(bits),
		Inputs:  fpgafsm.IO("in[" + strconv.Itoa(bits) + "]"),
		Outputs: nil,
		Mount: func(s *fpgafsm.Socket) []fpgafsm.Component {
			pins := s.Bus(pIn, bits)
			return []fpgafsm.Component{func(c *fpgafsm.Circuit) {
				var v int64
				for bit := range pins {
					if c.Get(pins[bit]) {
						v |= 1 << uint(bit)
					}
				}
				f(v)
			}}
		}}).NewPart
}

// InputBus creates an input bus of the given bits size, with out[0] as
// least significant bit.
//
//	Outputs: out[bits]
//	Function: out = f()
func InputBus(bits int, f func() int64) fpgafsm.NewPartFn {
	return (&fpgafsm.PartSpec{
		Name:    "INPUTBUS" + strconv.Itoa(bits),
		Inputs:  nil,
		Outputs: fpgafsm.IO("out[" + strconv.Itoa(bits) + "]"),
		Mount: func(s *fpgafsm.Socket) []fpgafsm.Component {
			pins := s.Bus(pOut, bits)
			return []fpgafsm.Component{func(c *fpgafsm.Circuit) {
				v := f()
				for bit := range pins {
					c.Set(pins[bit], v&(1<<uint(bit)) != 0)
				}
			}}
		}}).NewPart
}
