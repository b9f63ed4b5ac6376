package fpgafsm_test

import (
	"reflect"
	"testing"

	fsm "github.com/donaldintech/fpga-fsm"
)

func TestIO(t *testing.T) {
	data := []struct {
		spec string
		pins []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a, b", []string{"a", "b"}},
		{"a,b, bus[2]", []string{"a", "b", "bus[0]", "bus[1]"}},
		{"led[4]", []string{"led[0]", "led[1]", "led[2]", "led[3]"}},
	}
	for _, d := range data {
		if pins := fsm.IO(d.spec); !reflect.DeepEqual(pins, d.pins) {
			t.Errorf("IO(%q) = %v, expected %v", d.spec, pins, d.pins)
		}
	}

	bad := []string{"a,", "[2]", "a[", "a[]", "a[x]", "a[0]", "a b", "1a"}
	for _, spec := range bad {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("IO(%q): expected panic", spec)
				}
			}()
			fsm.IO(spec)
		}()
	}
}

func TestParseConnections(t *testing.T) {
	data := []struct {
		conns string
		exp   []fsm.Connection
	}{
		{"", nil},
		{"a=x", []fsm.Connection{{PP: "a", CP: "x"}}},
		{"a=x, b = y", []fsm.Connection{{PP: "a", CP: "x"}, {PP: "b", CP: "y"}}},
		{"in[0..1]=x[2..3]", []fsm.Connection{
			{PP: "in[0]", CP: "x[2]"},
			{PP: "in[1]", CP: "x[3]"},
		}},
		{"out=o[0..1]", []fsm.Connection{
			{PP: "out", CP: "o[0]"},
			{PP: "out", CP: "o[1]"},
		}},
		{"in[0..1]=x", []fsm.Connection{
			{PP: "in[0]", CP: "x"},
			{PP: "in[1]", CP: "x"},
		}},
		{"sel[1]=s", []fsm.Connection{{PP: "sel[1]", CP: "s"}}},
	}
	for _, d := range data {
		got, err := fsm.ParseConnections(d.conns)
		if err != nil {
			t.Errorf("ParseConnections(%q): %v", d.conns, err)
			continue
		}
		if !reflect.DeepEqual(got, d.exp) {
			t.Errorf("ParseConnections(%q) = %v, expected %v", d.conns, got, d.exp)
		}
	}

	bad := []string{"a", "a=", "=x", "a=x=y", "a[0..2]=b[0..1]", "a[2..0]=b[0..2]", "a[-1]=b"}
	for _, conns := range bad {
		if _, err := fsm.ParseConnections(conns); err == nil {
			t.Errorf("ParseConnections(%q): expected error", conns)
		}
	}
}
