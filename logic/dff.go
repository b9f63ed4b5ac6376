package logic

import "github.com/donaldintech/fpga-fsm"

// DFF returns a clocked data flip flop.
//
//	Inputs: in
//	Outputs: out
//	Function: out(t) = in(t-1) // where t is the current clock cycle.
func DFF(conns string) fpgafsm.Part {
	return (&fpgafsm.PartSpec{
		Name:    "DFF",
		Inputs:  []string{pIn},
		Outputs: []string{pOut},
		Mount: func(s *fpgafsm.Socket) []fpgafsm.Component {
			in, out := s.Pin(pIn), s.Pin(pOut)
			var cur bool
			return []fpgafsm.Component{
				func(c *fpgafsm.Circuit) {
					// rising edge?
					if c.AtTick() {
						cur = c.Get(in)
					}
					c.Set(out, cur)
				}}
		}}).NewPart(conns)
}
