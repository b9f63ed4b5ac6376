// Command stepper runs the push-button FSM circuit with a scripted
// sequence of press/release cycles and logs the indicator outputs.
package main

import (
	"flag"
	"log"

	"github.com/donaldintech/fpga-fsm"
	"github.com/donaldintech/fpga-fsm/logic"
	"github.com/donaldintech/fpga-fsm/stepper"
)

func main() {
	presses := flag.Int("presses", 8, "press/release cycles to simulate")
	hold := flag.Int("hold", 3, "clock ticks the button is held down")
	flag.Parse()

	// raw lines idle high; reset asserted at power-on
	btn, rst := true, false
	var leds int64

	chip, err := stepper.Chip()
	if err != nil {
		log.Fatal(err)
	}
	c, err := fpgafsm.NewCircuit(8,
		logic.Input(func() bool { return btn })("out=btn"),
		logic.Input(func() bool { return rst })("out=rst"),
		chip("btn=btn, rst=rst, led[0..3]=led[0..3]"),
		logic.OutputBus(4, func(v int64) { leds = v })("in[0..3]=led[0..3]"),
	)
	if err != nil {
		log.Fatal(err)
	}

	ticks := func(n int) {
		for i := 0; i < n; i++ {
			c.TickTock()
		}
	}

	ticks(4)
	rst = true
	ticks(4)
	log.Printf("reset released, leds=%04b", leds)

	for p := 1; p <= *presses; p++ {
		btn = false
		ticks(*hold)
		btn = true
		ticks(5)
		log.Printf("press %d: leds=%04b", p, leds)
	}
}
