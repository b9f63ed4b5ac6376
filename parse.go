package fpgafsm

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Connection binds a part's I/O pin to a pin of the enclosing chip.
type Connection struct {
	PP string // part pin name
	CP string // chip pin name
}

// busPinName returns the name of pin i of bus b.
func busPinName(b string, i int) string {
	return b + "[" + strconv.Itoa(i) + "]"
}

// IO expands a pin specification string to individual pin names. Buses are
// declared as name[size]:
//
//	IO("a, b, bus[2]") // equivalent to []string{"a", "b", "bus[0]", "bus[1]"}
//
// IO panics if the specification does not parse. It is meant to be used in
// static PartSpec declarations.
func IO(spec string) []string {
	pins, err := parseIOSpec(spec)
	if err != nil {
		panic(err)
	}
	return pins
}

// parseIOSpec parses a comma separated list of pin names, expanding bus
// declarations name[size] to individual pin names.
func parseIOSpec(spec string) ([]string, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	var out []string
	for _, field := range strings.Split(spec, ",") {
		field = strings.TrimSpace(field)
		name, sub, err := splitPinRef(field)
		if err != nil {
			return nil, errors.Wrap(err, "in "+strconv.Quote(spec))
		}
		if sub == "" {
			out = append(out, name)
			continue
		}
		size, err := strconv.Atoi(sub)
		if err != nil || size < 1 {
			return nil, errors.Errorf("in %q: invalid bus size %q", spec, sub)
		}
		for i := 0; i < size; i++ {
			out = append(out, busPinName(name, i))
		}
	}
	return out, nil
}

// ParseConnections parses a connection configuration string:
//
//	"partPin=chipPin, in[0..1]=data[2..3], out=o1, out=o2"
//
// The left hand side of each binding names a pin of the part, the right
// hand side a pin of the enclosing chip. Bus ranges expand element-wise
// when both sides have the same length; a single pin on either side fans
// out to (or from) every pin of the other side.
func ParseConnections(conns string) ([]Connection, error) {
	if strings.TrimSpace(conns) == "" {
		return nil, nil
	}
	var out []Connection
	for _, field := range strings.Split(conns, ",") {
		field = strings.TrimSpace(field)
		eq := strings.IndexByte(field, '=')
		if eq < 0 {
			return nil, errors.Errorf("in %q: binding %q has no = sign", conns, field)
		}
		ks, err := expandPinRange(strings.TrimSpace(field[:eq]))
		if err != nil {
			return nil, errors.Wrap(err, "in "+strconv.Quote(conns))
		}
		vs, err := expandPinRange(strings.TrimSpace(field[eq+1:]))
		if err != nil {
			return nil, errors.Wrap(err, "in "+strconv.Quote(conns))
		}
		switch {
		case len(ks) == len(vs):
			for i := range ks {
				out = append(out, Connection{PP: ks[i], CP: vs[i]})
			}
		case len(ks) == 1:
			for _, v := range vs {
				out = append(out, Connection{PP: ks[0], CP: v})
			}
		case len(vs) == 1:
			for _, k := range ks {
				out = append(out, Connection{PP: k, CP: vs[0]})
			}
		default:
			return nil, errors.Errorf("in %q: pin count mismatch in binding %q", conns, field)
		}
	}
	return out, nil
}

// expandPinRange expands a pin reference to individual pin names: "a" to
// just a, "bus[2]" to bus[2], "bus[0..2]" to bus[0] bus[1] bus[2].
func expandPinRange(ref string) ([]string, error) {
	name, sub, err := splitPinRef(ref)
	if err != nil {
		return nil, err
	}
	if sub == "" {
		return []string{name}, nil
	}
	dots := strings.Index(sub, "..")
	if dots < 0 {
		i, err := strconv.Atoi(sub)
		if err != nil || i < 0 {
			return nil, errors.Errorf("invalid bus index %q in %q", sub, ref)
		}
		return []string{busPinName(name, i)}, nil
	}
	lo, err := strconv.Atoi(sub[:dots])
	if err != nil || lo < 0 {
		return nil, errors.Errorf("invalid bus range start in %q", ref)
	}
	hi, err := strconv.Atoi(sub[dots+2:])
	if err != nil || hi < lo {
		return nil, errors.Errorf("invalid bus range end in %q", ref)
	}
	out := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, busPinName(name, i))
	}
	return out, nil
}

// splitPinRef splits a pin reference into its base name and the text
// between brackets, validating the base name.
func splitPinRef(ref string) (name, sub string, err error) {
	name = ref
	if b := strings.IndexByte(ref, '['); b >= 0 {
		if !strings.HasSuffix(ref, "]") {
			return "", "", errors.Errorf("missing closing bracket in %q", ref)
		}
		name, sub = ref[:b], ref[b+1:len(ref)-1]
		if sub == "" {
			return "", "", errors.Errorf("empty bus subscript in %q", ref)
		}
	}
	if name == "" {
		return "", "", errors.Errorf("expected pin name in %q", ref)
	}
	for i, r := range name {
		switch {
		case r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z':
		case i > 0 && '0' <= r && r <= '9':
		default:
			return "", "", errors.Errorf("invalid pin name %q", name)
		}
	}
	return name, sub, nil
}
