package fpgafsm

import (
	"strconv"

	"github.com/pkg/errors"
)

// A pin is identified by the part it belongs to and its name in that
// part's interface. part is the index of the part within its chip, or -1
// for the chip's own interface pins.
type pin struct {
	part int
	name string
}

const (
	kindUnknown = iota
	kindInput
	kindOutput
)

// A net is one node of a chip's connection graph: at most one source
// driving it and any number of destinations fed by it.
type net struct {
	name string // assigned wire name
	pin  pin
	src  *net
	dst  []*net
	kind int
}

// A netlist accumulates the nets of a chip under construction. root is a
// synthetic source marking the chip's own input pins, which are driven
// from outside the chip.
type netlist struct {
	nets map[pin]*net
	root *net
}

func newNetlist(ins, outs []string) *netlist {
	nl := &netlist{
		nets: make(map[pin]*net, len(ins)+len(outs)+2),
		root: &net{pin: pin{-1, "__INPUT__"}, kind: kindInput},
	}
	// constants behave like chip inputs
	for _, cst := range []string{False, True} {
		p := pin{-1, cst}
		nl.nets[p] = &net{pin: p, src: nl.root}
	}
	for _, in := range ins {
		p := pin{-1, in}
		n := &net{pin: p, src: nl.root}
		nl.nets[p] = n
		nl.root.dst = append(nl.root.dst, n)
	}
	for _, out := range outs {
		p := pin{-1, out}
		nl.nets[p] = &net{pin: p, kind: kindOutput}
	}
	return nl
}

// connect adds an edge from pin in to pin out. Exactly one of the two pins
// belongs to a part; the other is a chip-level name.
func (nl *netlist) connect(in pin, iKind int, out pin, oKind int) error {
	if out.part < 0 {
		switch out.name {
		case True:
			return errors.New("output pin connected to constant true input")
		case False:
			return errors.New("output pin connected to constant false input")
		}
	}
	src := nl.nets[in]
	if src == nil {
		src = &net{pin: in, kind: iKind}
		nl.nets[in] = src
	}
	dst := nl.nets[out]
	switch {
	case dst == nil:
		dst = &net{pin: out, src: src, kind: oKind}
		nl.nets[out] = dst
	case dst.src == nl.root:
		return errors.New("chip input pin used as output")
	case dst.src != nil:
		return errors.New("output pin already used as output")
	default:
		dst.src = src
	}
	src.dst = append(src.dst, dst)
	return nil
}

// resolve checks the completed graph and assigns a wire name to every pin.
// All pins reachable from the same source share one wire name: the chip
// input's name when the source is the chip interface, a generated internal
// name otherwise.
func (nl *netlist) resolve(specs []*PartSpec) (map[pin]string, error) {
	for _, n := range nl.nets {
		if n.kind != kindOutput && n.src == nil {
			return nil, errors.New("pin " + pinName(specs, n.pin) + " not connected to any output")
		}
		// chip-level names that something drives but nothing reads are
		// almost certainly typos
		if n.pin.part < 0 && n.kind == kindUnknown && n.src != nl.root && len(n.dst) == 0 {
			return nil, errors.New("pin " + pinName(specs, n.pin) + " not connected to any input")
		}
	}

	wires := make(map[pin]string, len(nl.nets))
	num := 0
	for _, n := range nl.nets {
		// walk up to the net that names the wire. Part input nets are
		// never sources, so the walk terminates.
		t := n
		for t.src != nil && t.src != nl.root {
			t = t.src
		}
		if t.name == "" {
			if t.src == nl.root {
				t.name = t.pin.name
			} else {
				t.name = "__" + strconv.Itoa(num)
				num++
			}
		}
		wires[n.pin] = t.name
	}
	return wires, nil
}

func pinName(specs []*PartSpec, p pin) string {
	if p.part < 0 {
		return p.name
	}
	return specs[p.part].Name + "." + p.name
}
