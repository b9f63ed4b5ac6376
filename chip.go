package fpgafsm

import "github.com/pkg/errors"

type chip struct {
	PartSpec             // PartSpec for this chip
	parts    []*PartSpec // sub parts
	// wires maps pins used in the chip to internal wire names, which may
	// be the name of any input/output of the chip or generated (__0, __1…)
	wires map[pin]string
}

func (c *chip) mount(s *Socket) []Component {
	var updaters []Component

	for i, p := range c.parts {
		// sub-socket for p.
		// k is the exported pin name, subK the name in the part's own
		// namespace.
		sub := newSocket(s.c)
		for k, subK := range p.Pinout {
			if subK == "" {
				continue
			}
			if n := c.wires[pin{i, k}]; n != "" {
				sub.m[subK] = s.PinOrNew(n)
			} else {
				// wire unconnected pins to False.
				// Chip makes sure that only inputs can be unconnected.
				sub.m[subK] = cstFalse
			}
		}
		updaters = append(updaters, p.Mount(sub)...)
	}
	return updaters
}

// Chip composes existing parts into a new part packaged into a chip. The
// inputs and outputs arguments are pin specification strings (see IO)
// declaring the chip's interface.
//
// An Xor gate could be created like this:
//
//	xor, err := Chip("XOR", "a, b", "out",
//		logic.Nand("a=a, b=b, out=nandAB"),
//		logic.Nand("a=a, b=nandAB, out=w0"),
//		logic.Nand("a=b, b=nandAB, out=w1"),
//		logic.Nand("a=w0, b=w1, out=out"),
//	)
//
// The returned value is a NewPartFn that can be used to compose the new
// part with others into larger chips.
func Chip(name string, inputs, outputs string, parts ...Part) (NewPartFn, error) {
	ins, err := parseIOSpec(inputs)
	if err != nil {
		return nil, errors.Wrap(err, name+" inputs")
	}
	outs, err := parseIOSpec(outputs)
	if err != nil {
		return nil, errors.Wrap(err, name+" outputs")
	}

	nl := newNetlist(ins, outs)
	specs := make([]*PartSpec, len(parts))

	for pnum, p := range parts {
		sp := p.PartSpec
		specs[pnum] = sp
		conns := p.wires()

		// check that all bound pins match the part's interface
		for k := range conns {
			if _, ok := sp.Pinout[k]; !ok {
				return nil, errors.New("invalid pin name " + k + " for part " + sp.Name)
			}
		}
		for _, k := range sp.Inputs {
			vs, ok := conns[k]
			if !ok {
				continue
			}
			if len(vs) > 1 {
				return nil, errors.New(sp.Name + " input pin " + k + " connected to more than one output")
			}
			i, o := pin{-1, vs[0]}, pin{pnum, k}
			if err := nl.connect(i, kindUnknown, o, kindInput); err != nil {
				return nil, errors.Wrap(err, pinName(specs, i)+":"+pinName(specs, o))
			}
		}
		for _, k := range sp.Outputs {
			vs, ok := conns[k]
			if !ok {
				// unconnected part output: keep the net so a wire is
				// still allocated for it
				p := pin{pnum, k}
				nl.nets[p] = &net{pin: p, kind: kindOutput}
				continue
			}
			for _, v := range vs {
				i, o := pin{pnum, k}, pin{-1, v}
				if err := nl.connect(i, kindOutput, o, kindUnknown); err != nil {
					return nil, errors.Wrap(err, pinName(specs, i)+":"+pinName(specs, o))
				}
			}
		}
	}

	wires, err := nl.resolve(specs)
	if err != nil {
		return nil, err
	}

	pinout := make(map[string]string, len(ins)+len(outs))
	// map all interface pins, even unused ones; mount ignores pins with
	// an empty wire name.
	for _, i := range ins {
		pinout[i] = wires[pin{-1, i}]
	}
	for _, o := range outs {
		pinout[o] = wires[pin{-1, o}]
	}

	c := &chip{
		PartSpec{
			Name:    name,
			Inputs:  ins,
			Outputs: outs,
			Pinout:  pinout,
		},
		specs,
		wires,
	}
	c.PartSpec.Mount = c.mount
	return c.PartSpec.NewPart, nil
}
