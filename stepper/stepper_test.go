package stepper_test

import (
	"testing"

	"github.com/donaldintech/fpga-fsm/stepper"
)

// advance runs n ticks with the raw lines held at the given levels and
// returns the outputs after the last tick.
func advance(c *stepper.Core, btn, rst bool, n int) stepper.Outputs {
	var out stepper.Outputs
	for i := 0; i < n; i++ {
		out = c.Advance(btn, rst)
	}
	return out
}

func TestPressCycle(t *testing.T) {
	c := stepper.New()

	// power on with reset asserted: the machine sits in state A
	if out := advance(c, true, false, 4); out != (stepper.Outputs{Led1: true}) {
		t.Fatalf("under reset: outputs = %+v", out)
	}
	if c.State() != stepper.StateA {
		t.Fatalf("under reset: state = %v", c.State())
	}

	// release reset; the debounced release takes three ticks (two for the
	// synchronizer, one for the registered release) and must not advance
	// the state
	if out := advance(c, true, true, 4); out != (stepper.Outputs{Led1: true}) {
		t.Fatalf("after reset release: outputs = %+v", out)
	}

	// four full press/release cycles walk A -> B -> C -> D -> A
	want := []stepper.Outputs{
		{Led2: true},
		{Led3: true},
		{Led4: true},
		{Led1: true},
	}
	for i, w := range want {
		advance(c, false, true, 3)
		if out := advance(c, true, true, 5); out != w {
			t.Fatalf("press %d: outputs = %+v, expected %+v", i+1, out, w)
		}
	}
}

func TestHeldButtonAdvancesOnce(t *testing.T) {
	c := stepper.New()
	advance(c, true, false, 4)
	advance(c, true, true, 4)

	// holding the button must not advance the state: the press event
	// fires on release only
	advance(c, false, true, 50)
	if c.State() != stepper.StateA {
		t.Fatalf("state advanced to %v while button held", c.State())
	}
	if out := advance(c, true, true, 5); out != (stepper.Outputs{Led2: true}) {
		t.Fatalf("after release: outputs = %+v, expected LED2", out)
	}
	// and no further advance while the lines stay idle
	if out := advance(c, true, true, 20); out != (stepper.Outputs{Led2: true}) {
		t.Fatalf("idle: outputs = %+v, expected LED2", out)
	}
}

func TestResetMidSequence(t *testing.T) {
	c := stepper.New()
	advance(c, true, false, 4)
	advance(c, true, true, 4)

	// two presses: A -> B -> C
	for i := 0; i < 2; i++ {
		advance(c, false, true, 3)
		advance(c, true, true, 5)
	}
	if c.State() != stepper.StateC {
		t.Fatalf("setup failed: state = %v, expected C", c.State())
	}

	// reset while the button is held down. The assertion needs two ticks
	// to cross the synchronizer, then forces state A on that same tick.
	advance(c, false, true, 1)
	if out := advance(c, false, false, 2); out != (stepper.Outputs{Led1: true}) {
		t.Fatalf("after reset: outputs = %+v, expected LED1", out)
	}
	if c.State() != stepper.StateA {
		t.Fatalf("after reset: state = %v, expected A", c.State())
	}
	// held reset keeps the machine in A regardless of the button
	for i := 0; i < 8; i++ {
		if out := c.Advance(i&1 == 0, false); out != (stepper.Outputs{Led1: true}) {
			t.Fatalf("held reset, tick %d: outputs = %+v", i, out)
		}
	}
}

func TestDecode(t *testing.T) {
	data := []struct {
		state stepper.State
		out   stepper.Outputs
	}{
		{stepper.StateA, stepper.Outputs{Led1: true}},
		{stepper.StateB, stepper.Outputs{Led2: true}},
		{stepper.StateC, stepper.Outputs{Led3: true}},
		{stepper.StateD, stepper.Outputs{Led4: true}},
		{stepper.State(4), stepper.Outputs{}},
		{stepper.State(-1), stepper.Outputs{}},
	}
	for _, d := range data {
		if out := stepper.Decode(d.state); out != d.out {
			t.Errorf("Decode(%v) = %+v, expected %+v", d.state, out, d.out)
		}
		lit := 0
		for _, b := range []bool{d.out.Led1, d.out.Led2, d.out.Led3, d.out.Led4} {
			if b {
				lit++
			}
		}
		if d.state >= stepper.StateA && d.state <= stepper.StateD {
			if lit != 1 {
				t.Errorf("Decode(%v): %d outputs lit, expected exactly 1", d.state, lit)
			}
		} else if lit != 0 {
			t.Errorf("Decode(%v): %d outputs lit, expected none", d.state, lit)
		}
	}
}
