package fpgafsm

import "github.com/pkg/errors"

// A Component updates part of a circuit's state. Component closures read
// pin states from the previous simulation step with Circuit.Get and write
// states for the next step with Circuit.Set.
type Component func(c *Circuit)

// A MountFn mounts a part into socket s. It should query the socket for
// assigned pin numbers and return closures around these pin numbers.
//
// For example, a Not gate can be defined like this:
//
//	not := &PartSpec{
//		Name:    "NOT",
//		Inputs:  []string{"in"},
//		Outputs: []string{"out"},
//		Mount: func(s *Socket) []Component {
//			in, out := s.Pin("in"), s.Pin("out")
//			return []Component{
//				func(c *Circuit) { c.Set(out, !c.Get(in)) },
//			}
//		}}
type MountFn func(s *Socket) []Component

// A PartSpec wraps a part specification (its blueprint). Custom parts are
// implemented by creating a PartSpec and exposing its NewPart method:
//
//	func Not(conns string) Part { return notSpec.NewPart(conns) }
type PartSpec struct {
	// Part name.
	Name string
	// Input pin names. Must be distinct. Use IO() to expand a
	// specification like "a, b, bus[2]".
	Inputs []string
	// Output pin names. Must be distinct.
	Outputs []string
	// Pinout maps the public pin names of the part to the names used
	// internally by its mount function. Left nil, pins map one to one;
	// most parts should leave it nil.
	Pinout map[string]string

	// Mount function (see MountFn).
	Mount MountFn
}

// NewPart wraps p together with the given connections into a Part. It
// panics if the connection string does not parse; part wiring is meant to
// be declared statically.
func (p *PartSpec) NewPart(conns string) Part {
	cs, err := ParseConnections(conns)
	if err != nil {
		panic(err)
	}
	if p.Pinout == nil {
		p.Pinout = make(map[string]string, len(p.Inputs)+len(p.Outputs))
		for _, i := range p.Inputs {
			p.Pinout[i] = i
		}
		for _, o := range p.Outputs {
			p.Pinout[o] = o
		}
	}
	return Part{p, cs}
}

// A NewPartFn takes a connection configuration and returns a new Part.
// See ParseConnections for the configuration syntax.
type NewPartFn func(conns string) Part

// A Part wraps a part specification together with its connections within
// a host chip.
type Part struct {
	*PartSpec
	Conns []Connection
}

// wires regroups the part's connections per part pin name.
func (p *Part) wires() map[string][]string {
	w := make(map[string][]string, len(p.Conns))
	for _, c := range p.Conns {
		w[c.PP] = append(w[c.PP], c.CP)
	}
	return w
}

// Circuit is a runnable circuit simulation.
//
// Pin states live in two frames: components read the frame produced by the
// previous step and write into the next one, which Step commits by swapping
// the frames. A component therefore never observes a half-updated step.
type Circuit struct {
	s0    []bool // pin states, previous step
	s1    []bool // pin states, next step
	comps []Component
	count int  // allocated pin count
	spc   uint // steps per clock cycle
	steps uint
}

// NewCircuit builds a runnable circuit from the given parts.
//
// stepsPerCycle sets how many simulation steps make up one clock cycle. It
// is rounded up to a power of two, minimum 4. Combinational logic settles
// one part per step, so stepsPerCycle must exceed the longest combinational
// chain between two clocked parts.
func NewCircuit(stepsPerCycle uint, parts ...Part) (*Circuit, error) {
	if len(parts) == 0 {
		return nil, errors.New("empty part list")
	}

	if stepsPerCycle < 4 {
		stepsPerCycle = 4
	}
	stepsPerCycle--
	stepsPerCycle |= stepsPerCycle >> 1
	stepsPerCycle |= stepsPerCycle >> 2
	stepsPerCycle |= stepsPerCycle >> 4
	stepsPerCycle |= stepsPerCycle >> 8
	stepsPerCycle |= stepsPerCycle >> 16
	stepsPerCycle |= stepsPerCycle >> 32
	stepsPerCycle++

	// new circuit with room for the constant pins
	c := &Circuit{count: cstCount, spc: stepsPerCycle}
	wrap, err := Chip("CIRCUIT", "", "", parts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chip wrapper")
	}
	c.comps = wrap("").Mount(newSocket(c))
	c.s0 = make([]bool, c.count)
	c.s1 = make([]bool, c.count)
	// constant pins are never driven by components, set them in both frames
	c.s0[cstTrue] = true
	c.s1[cstTrue] = true
	return c, nil
}

// allocPin allocates a pin and returns its number.
func (c *Circuit) allocPin() int {
	n := c.count
	c.count++
	return n
}

// Steps returns the value of the step counter.
func (c *Circuit) Steps() uint {
	return c.steps
}

// SPC returns the number of simulation steps per clock cycle.
func (c *Circuit) SPC() uint {
	return c.spc
}

// AtTick returns true if the current step is at the beginning of a clock
// cycle (rising edge of the clock). Clocked parts should latch their
// inputs when AtTick reports true.
func (c *Circuit) AtTick() bool {
	return c.steps&(c.spc-1) == 0
}

// AtTock returns true if the current step is at the beginning of the
// second half of a clock cycle (falling edge of the clock).
func (c *Circuit) AtTock() bool {
	return (c.steps+c.spc/2)&(c.spc-1) == 0
}

// Get returns the state of pin n as of the previous simulation step. The
// value of n should be obtained in a MountFn by a call to one of the
// Socket methods.
func (c *Circuit) Get(n int) bool {
	return c.s0[n]
}

// Set sets the state of pin n for the next simulation step.
func (c *Circuit) Set(n int, s bool) {
	c.s1[n] = s
}

// Step advances the simulation by one step.
func (c *Circuit) Step() {
	for _, f := range c.comps {
		f(c)
	}
	c.steps++
	c.s0, c.s1 = c.s1, c.s0
}

// Tick runs the simulation until the beginning of the next half clock
// cycle.
func (c *Circuit) Tick() {
	for !c.AtTock() {
		c.Step()
	}
}

// Tock runs the simulation until the beginning of the next clock cycle.
// Once Tock returns, the outputs of clocked parts have stabilized.
func (c *Circuit) Tock() {
	for !c.AtTick() {
		c.Step()
	}
}

// TickTock runs the simulation for a whole clock cycle.
func (c *Circuit) TickTock() {
	c.Tick()
	c.Tock()
}

// Size returns the component count in the circuit.
func (c *Circuit) Size() int { return len(c.comps) }
