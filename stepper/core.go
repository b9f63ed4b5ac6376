/*
Package stepper models a push-button driven four-state indicator circuit:
a debounced button advances a state machine through states A, B, C and D
in a cycle, each state lighting exactly one of four indicator outputs, and
a debounced reset line forces the machine back to state A.

The circuit exists in two equivalent renditions. Core is the behavioral
one: a single struct owning the full register set, advanced one clock tick
at a time by Advance. The parts in this package are the structural one:
each stage of the pipeline as an fpgafsm part, composed into a complete
circuit by Chip.

Both raw input lines are active low: false means pressed (button) or
asserted (reset), matching the idle-high wiring of a physical push-button.
*/
package stepper

import "strconv"

// State identifies one of the machine's states.
type State int

// The four states, in press order.
const (
	StateA State = iota
	StateB
	StateC
	StateD
)

func (s State) String() string {
	switch s {
	case StateA:
		return "A"
	case StateB:
		return "B"
	case StateC:
		return "C"
	case StateD:
		return "D"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// next returns the successor in the cyclic press order A, B, C, D, A.
// Values outside the four states map to StateA.
func (s State) next() State {
	switch s {
	case StateA:
		return StateB
	case StateB:
		return StateC
	case StateC:
		return StateD
	default:
		return StateA
	}
}

// Outputs holds the four indicator levels. Exactly one is lit for states
// A through D; all four are dark for any other state value.
type Outputs struct {
	Led1, Led2, Led3, Led4 bool
}

// Decode maps a state to its indicator pattern. Decode is a pure function
// recomputed from the current state; it holds no registers.
func Decode(s State) Outputs {
	switch s {
	case StateA:
		return Outputs{Led1: true}
	case StateB:
		return Outputs{Led2: true}
	case StateC:
		return Outputs{Led3: true}
	case StateD:
		return Outputs{Led4: true}
	}
	return Outputs{}
}

// sync2 is a two-stage shift register synchronizing an asynchronous line
// into the clock domain. s1 holds the sample from two ticks ago.
type sync2 struct {
	s0, s1 bool
}

func (r *sync2) shift(raw bool) {
	r.s1, r.s0 = r.s0, raw
}

// Core owns the full register set of the circuit. It is advanced exactly
// once per clock tick through Advance and must not be shared between
// goroutines.
type Core struct {
	btnSync sync2
	rstSync sync2
	btnDeb  bool // high = button released
	rstDeb  bool // high = reset released
	btnPrs  bool // low for one tick per completed press
	state   State
}

// New returns a core in its power-on state: all lines idle high, no press
// pending, state A.
func New() *Core {
	return &Core{
		btnSync: sync2{s0: true, s1: true},
		rstSync: sync2{s0: true, s1: true},
		btnDeb:  true,
		rstDeb:  true,
		btnPrs:  true,
		state:   StateA,
	}
}

// State returns the current state.
func (c *Core) State() State { return c.state }

// Outputs returns the indicator levels decoded from the current state.
func (c *Core) Outputs() Outputs { return Decode(c.state) }

// Advance runs one clock tick: it samples the two raw input lines,
// updates every register from the snapshot of the previous tick and
// returns the indicator levels decoded from the new state.
//
// Clocked updates read the previous tick's register values; the
// asynchronous reset paths are evaluated first and win on the very tick
// the reset condition is seen, without waiting for the next edge.
func (c *Core) Advance(rawButton, rawReset bool) Outputs {
	prev := *c

	c.btnSync.shift(rawButton)
	c.rstSync.shift(rawReset)

	// button debouncer: the raw reset line forces the released level
	// regardless of the clock
	if !rawReset {
		c.btnDeb = true
	} else {
		c.btnDeb = prev.btnSync.s1
	}

	// reset debouncer: cleared combinationally while the synchronized
	// line is low, released one tick after it goes high
	c.rstDeb = prev.rstSync.s1 && c.rstSync.s1

	// press detector: fires for one tick on the trailing edge of a
	// debounced press, held off while reset is active
	if !c.rstDeb {
		c.btnPrs = true
	} else {
		c.btnPrs = !(!prev.btnDeb && prev.btnSync.s1)
	}

	// state register: reset wins on the same tick it is detected
	switch {
	case !c.rstDeb:
		c.state = StateA
	case !prev.btnPrs:
		c.state = prev.state.next()
	}

	return Decode(c.state)
}
