// Package simtest provides utility functions for testing circuits.
package simtest

import (
	"strings"
	"testing"

	"github.com/donaldintech/fpga-fsm"
	"github.com/donaldintech/fpga-fsm/logic"
)

// CompareParts mounts two parts with the same input/output interface in
// one circuit, feeds them identical inputs and fails t whenever their
// outputs differ at the end of a clock cycle.
//
// The circuit runs for the given number of clock cycles. Before each
// cycle, setInputs is called with the cycle number and the input slice to
// fill in, in the order of the parts' declared input pins. Inputs take
// effect with the usual one cycle latency, which is identical for both
// parts and therefore does not affect the comparison.
func CompareParts(t *testing.T, spc uint, part1, part2 fpgafsm.NewPartFn, cycles int, setInputs func(cycle int, in []bool)) {
	t.Helper()

	ps1, ps2 := part1(""), part2("")
	if len(ps1.Inputs) != len(ps2.Inputs) {
		t.Fatalf("input pin count mismatch: %d != %d", len(ps1.Inputs), len(ps2.Inputs))
	}
	if len(ps1.Outputs) != len(ps2.Outputs) {
		t.Fatalf("output pin count mismatch: %d != %d", len(ps1.Outputs), len(ps2.Outputs))
	}
	for i := range ps1.Inputs {
		if ps1.Inputs[i] != ps2.Inputs[i] {
			t.Fatalf("input pin %d: %q != %q", i, ps1.Inputs[i], ps2.Inputs[i])
		}
	}
	for i := range ps1.Outputs {
		if ps1.Outputs[i] != ps2.Outputs[i] {
			t.Fatalf("output pin %d: %q != %q", i, ps1.Outputs[i], ps2.Outputs[i])
		}
	}

	inputs := make([]bool, len(ps1.Inputs))
	out1 := make([]bool, len(ps1.Outputs))
	out2 := make([]bool, len(ps2.Outputs))

	var parts []fpgafsm.Part
	for i, n := range ps1.Inputs {
		in := &inputs[i]
		parts = append(parts, logic.Input(func() bool { return *in })("out="+n))
	}
	parts = append(parts,
		part1(connString(ps1.Inputs, ps1.Outputs, "p1_")),
		part2(connString(ps2.Inputs, ps2.Outputs, "p2_")),
	)
	for i, n := range ps1.Outputs {
		o1, o2 := &out1[i], &out2[i]
		parts = append(parts,
			logic.Output(func(b bool) { *o1 = b })("in=p1_"+n),
			logic.Output(func(b bool) { *o2 = b })("in=p2_"+n),
		)
	}

	c, err := fpgafsm.NewCircuit(spc, parts...)
	if err != nil {
		t.Fatal(err)
	}

	for cycle := 0; cycle < cycles; cycle++ {
		setInputs(cycle, inputs)
		c.TickTock()
		for o := range out1 {
			if out1[o] != out2[o] {
				t.Fatalf("cycle %d: inputs %s: output %s: %s = %v, %s = %v",
					cycle, inputString(ps1.Inputs, inputs), ps1.Outputs[o],
					ps1.Name, out1[o], ps2.Name, out2[o])
			}
		}
	}
}

// connString wires a part one to one to container pins, prefixing output
// wire names so two parts under comparison drive distinct wires.
func connString(in, out []string, prefix string) string {
	var b strings.Builder
	for _, n := range in {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteByte('=')
		b.WriteString(n)
	}
	for _, n := range out {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteByte('=')
		b.WriteString(prefix)
		b.WriteString(n)
	}
	return b.String()
}

func inputString(names []string, values []bool) string {
	var b strings.Builder
	for i, n := range names {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteByte('=')
		if values[i] {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	}
	return b.String()
}
