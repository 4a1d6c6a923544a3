package netlist

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/ohler55/ojg/oj"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Encoding writes known fields in schema order (defaults included, the
// way the reference producer does), then passthrough fields in their
// stored order. Strings go through ojg, which escapes only what JSON
// requires; encoding/json would additionally escape <, > and &, and
// that breaks byte-stable round trips.

func writeString(buf *bytes.Buffer, s string) {
	buf.WriteString(oj.JSON(s))
}

// writeFlag emits the wire form of a boolean field. The reference
// producer writes 0 here even for true values and downstream tools
// expect that, so the logical value is deliberately ignored.
func writeFlag(buf *bytes.Buffer, _ bool) {
	buf.WriteByte('0')
}

// writeValue emits a generic JSON tree as produced by the decoder.
// Values of other Go types (possible in programmatically built
// attributes) fall back to encoding/json, which at least serializes
// plain maps with deterministic key order.
func writeValue(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		buf.WriteString(strconv.FormatBool(x))
	case string:
		writeString(buf, x)
	case json.Number:
		buf.WriteString(string(x))
	case Bit:
		buf.WriteString(x.String())
	case []any:
		buf.WriteByte('[')
		for i, item := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *Object:
		buf.WriteByte('{')
		first := true
		if x != nil {
			for pair := x.Oldest(); pair != nil; pair = pair.Next() {
				if !first {
					buf.WriteByte(',')
				}
				first = false
				writeString(buf, pair.Key)
				buf.WriteByte(':')
				if err := writeValue(buf, pair.Value); err != nil {
					return err
				}
			}
		}
		buf.WriteByte('}')
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(raw)
	}
	return nil
}

// writeMap emits a named ordered map with write handling each value.
// A nil map encodes as {}.
func writeMap[T any](buf *bytes.Buffer, m *orderedmap.OrderedMap[string, T],
	write func(T, *bytes.Buffer) error) error {

	buf.WriteByte('{')
	if m != nil {
		first := true
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			writeString(buf, pair.Key)
			buf.WriteByte(':')
			if err := write(pair.Value, buf); err != nil {
				return err
			}
		}
	}
	buf.WriteByte('}')
	return nil
}

// writeExtra appends passthrough fields. Callers always have at least
// one known field in the buffer already, so every entry starts with a
// comma.
func writeExtra(buf *bytes.Buffer, extra *Object) error {
	if extra == nil {
		return nil
	}
	for pair := extra.Oldest(); pair != nil; pair = pair.Next() {
		buf.WriteByte(',')
		writeString(buf, pair.Key)
		buf.WriteByte(':')
		if err := writeValue(buf, pair.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeBits(bits []Bit, buf *bytes.Buffer) error {
	buf.WriteByte('[')
	for i, b := range bits {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(b.String())
	}
	buf.WriteByte(']')
	return nil
}

func (d Direction) appendJSON(buf *bytes.Buffer) error {
	buf.WriteString(`"` + d.String() + `"`)
	return nil
}

func (n *Netlist) appendJSON(buf *bytes.Buffer) error {
	buf.WriteString(`{"creator":`)
	writeString(buf, n.Creator)
	buf.WriteString(`,"modules":`)
	if err := writeMap(buf, n.Modules, (*Module).appendJSON); err != nil {
		return err
	}
	if err := writeExtra(buf, n.Extra); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

// MarshalJSON emits the full document.
func (n *Netlist) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *Module) appendJSON(buf *bytes.Buffer) error {
	buf.WriteString(`{"attributes":`)
	if err := writeValue(buf, m.Attributes); err != nil {
		return err
	}
	buf.WriteString(`,"ports":`)
	if err := writeMap(buf, m.Ports, (*Port).appendJSON); err != nil {
		return err
	}
	buf.WriteString(`,"cells":`)
	if err := writeMap(buf, m.Cells, (*Cell).appendJSON); err != nil {
		return err
	}
	buf.WriteString(`,"memories":`)
	if err := writeMap(buf, m.Memories, (*Memory).appendJSON); err != nil {
		return err
	}
	buf.WriteString(`,"netnames":`)
	if err := writeMap(buf, m.Nets, (*Net).appendJSON); err != nil {
		return err
	}
	if err := writeExtra(buf, m.Extra); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

func (m *Module) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Port) appendJSON(buf *bytes.Buffer) error {
	buf.WriteString(`{"direction":`)
	_ = p.Direction.appendJSON(buf)
	buf.WriteString(`,"bits":`)
	_ = writeBits(p.Bits, buf)
	buf.WriteString(`,"offset":`)
	buf.WriteString(strconv.Itoa(p.Offset))
	buf.WriteString(`,"upto":`)
	buf.WriteString(strconv.Itoa(p.Upto))
	buf.WriteString(`,"signed":`)
	writeFlag(buf, p.Signed)
	if err := writeExtra(buf, p.Extra); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

func (p *Port) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Cell) appendJSON(buf *bytes.Buffer) error {
	buf.WriteString(`{"hide_name":`)
	writeFlag(buf, c.HideName)
	buf.WriteString(`,"type":`)
	writeString(buf, c.Type)
	buf.WriteString(`,"attributes":`)
	if err := writeValue(buf, c.Attributes); err != nil {
		return err
	}
	buf.WriteString(`,"parameters":`)
	if err := writeValue(buf, c.Parameters); err != nil {
		return err
	}
	buf.WriteString(`,"port_directions":`)
	if err := writeMap(buf, c.PortDirections, Direction.appendJSON); err != nil {
		return err
	}
	buf.WriteString(`,"connections":`)
	if err := writeMap(buf, c.Connections, writeBits); err != nil {
		return err
	}
	if err := writeExtra(buf, c.Extra); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

func (c *Cell) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (mem *Memory) appendJSON(buf *bytes.Buffer) error {
	buf.WriteString(`{"hide_name":`)
	writeFlag(buf, mem.HideName)
	buf.WriteString(`,"attributes":`)
	if err := writeValue(buf, mem.Attributes); err != nil {
		return err
	}
	buf.WriteString(`,"width":`)
	buf.WriteString(strconv.Itoa(mem.Width))
	buf.WriteString(`,"size":`)
	buf.WriteString(strconv.Itoa(mem.Size))
	buf.WriteString(`,"start_offset":`)
	buf.WriteString(strconv.Itoa(mem.StartOffset))
	if err := writeExtra(buf, mem.Extra); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

func (mem *Memory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := mem.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (nt *Net) appendJSON(buf *bytes.Buffer) error {
	buf.WriteString(`{"hide_name":`)
	writeFlag(buf, nt.HideName)
	buf.WriteString(`,"attributes":`)
	if err := writeValue(buf, nt.Attributes); err != nil {
		return err
	}
	buf.WriteString(`,"bits":`)
	_ = writeBits(nt.Bits, buf)
	buf.WriteString(`,"offset":`)
	buf.WriteString(strconv.Itoa(nt.Offset))
	buf.WriteString(`,"upto":`)
	buf.WriteString(strconv.Itoa(nt.Upto))
	buf.WriteString(`,"signed":`)
	writeFlag(buf, nt.Signed)
	if err := writeExtra(buf, nt.Extra); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

func (nt *Net) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := nt.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
