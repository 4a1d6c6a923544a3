package netlist

import (
	"bytes"
	"strconv"
)

// Bit references a single wire inside a module: either a numbered
// signal or one of four constant states. Signal identifiers are
// non-negative and scoped to their module; the constants occupy
// reserved negative values, so Bit is comparable, totally ordered and
// usable as a map key.
type Bit int64

const (
	// Bit0 is the constant logic-0 driver, "0" on the wire.
	Bit0 Bit = -4
	// Bit1 is the constant logic-1 driver, "1" on the wire.
	Bit1 Bit = -3
	// BitZ is the high-impedance state, "z" on the wire.
	BitZ Bit = -2
	// BitX is the undefined state, "x" on the wire.
	BitX Bit = -1
)

// Signal returns the Bit naming signal id, which must be non-negative.
func Signal(id int64) Bit {
	return Bit(id)
}

// IsSignal reports whether b names a signal rather than a constant.
func (b Bit) IsSignal() bool {
	return b >= 0
}

// SignalID returns the signal id and true, or 0 and false when b is
// one of the constants.
func (b Bit) SignalID() (int64, bool) {
	if b < 0 {
		return 0, false
	}
	return int64(b), true
}

func (b Bit) String() string {
	switch b {
	case Bit0:
		return `"0"`
	case Bit1:
		return `"1"`
	case BitZ:
		return `"z"`
	case BitX:
		return `"x"`
	}
	return strconv.FormatInt(int64(b), 10)
}

// MarshalJSON writes a signal as a JSON integer and a constant as its
// single-character string.
func (b Bit) MarshalJSON() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalJSON accepts a non-negative JSON integer or one of the
// strings "0", "1", "z", "x" (lowercase only).
func (b *Bit) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) >= 2 && data[0] == '"' {
		switch string(data[1 : len(data)-1]) {
		case "0":
			*b = Bit0
		case "1":
			*b = Bit1
		case "z":
			*b = BitZ
		case "x":
			*b = BitX
		default:
			return &InvalidBitError{Value: string(data)}
		}
		return nil
	}
	id, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil || id < 0 {
		return &InvalidBitError{Value: string(data)}
	}
	*b = Signal(id)
	return nil
}
