package netlist

import "bytes"

// Direction is a port direction as seen from inside the module.
// Values are ordered Input < Output < InOut and usable as map keys.
type Direction int

const (
	Input Direction = iota
	Output
	InOut
)

func (d Direction) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	case InOut:
		return "inout"
	}
	return "invalid"
}

// MarshalJSON writes the wire form: "input", "output" or "inout".
func (d Direction) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts "input", "output" or "inout".
func (d *Direction) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) >= 2 && data[0] == '"' {
		switch string(data[1 : len(data)-1]) {
		case "input":
			*d = Input
			return nil
		case "output":
			*d = Output
			return nil
		case "inout":
			*d = InOut
			return nil
		}
	}
	return &TypeError{Want: `"input", "output" or "inout"`, Got: string(data)}
}
