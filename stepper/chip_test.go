package stepper_test

import (
	"math/rand"
	"testing"

	"github.com/donaldintech/fpga-fsm"
	"github.com/donaldintech/fpga-fsm/logic"
	"github.com/donaldintech/fpga-fsm/simtest"
	"github.com/donaldintech/fpga-fsm/stepper"
)

func TestChip(t *testing.T) {
	fsm, err := stepper.Chip()
	if err != nil {
		t.Fatal(err)
	}
	btn, rst := true, false
	var leds int64
	c, err := fpgafsm.NewCircuit(8,
		logic.Input(func() bool { return btn })("out=btn"),
		logic.Input(func() bool { return rst })("out=rst"),
		fsm("btn=btn, rst=rst, led[0..3]=led[0..3]"),
		logic.OutputBus(4, func(v int64) { leds = v })("in[0..3]=led[0..3]"),
	)
	if err != nil {
		t.Fatal(err)
	}

	cycles := func(n int) {
		for i := 0; i < n; i++ {
			c.TickTock()
		}
	}

	// power on under reset
	cycles(4)
	if leds != 1 {
		t.Fatalf("under reset: leds = %04b, expected 0001", leds)
	}
	rst = true
	cycles(4)
	if leds != 1 {
		t.Fatalf("after reset release: leds = %04b, expected 0001", leds)
	}

	for i, want := range []int64{2, 4, 8, 1} {
		btn = false
		cycles(4)
		btn = true
		cycles(6)
		if leds != want {
			t.Fatalf("press %d: leds = %04b, expected %04b", i+1, leds, want)
		}
	}
}

// TestCoreMatchesChip checks the wired circuit against the behavioral
// core cycle by cycle under a randomized button line and periodic reset
// pulses. The button is held released around reset assertion, as the
// asynchronous preset in the button debouncer acts within the cycle
// while the behavioral core applies it at the clock edge.
func TestCoreMatchesChip(t *testing.T) {
	fsm, err := stepper.Chip()
	if err != nil {
		t.Fatal(err)
	}

	const cycles = 600
	rnd := rand.New(rand.NewSource(42))
	btns := make([]bool, cycles)
	rsts := make([]bool, cycles)
	inReset := func(cycle int) bool {
		return cycle < 6 || (cycle >= 200 && cycle < 208) || (cycle >= 400 && cycle < 408)
	}
	for i := range btns {
		btns[i] = rnd.Intn(2) == 0
		rsts[i] = !inReset(i)
	}
	// release the button a few cycles ahead of each reset pulse and keep
	// it released until the pulse ends
	for i := range btns {
		for d := 0; d <= 5; d++ {
			if j := i + d; j < cycles && inReset(j) {
				btns[i] = true
			}
		}
	}

	simtest.CompareParts(t, 8, stepper.CorePart(), fsm, cycles,
		func(cycle int, in []bool) {
			in[0] = btns[cycle] // btn
			in[1] = rsts[cycle] // rst
		})
}
