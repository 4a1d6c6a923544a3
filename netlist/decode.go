package netlist

import (
	"fmt"

	"github.com/buger/jsonparser"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// joinPath appends a key to a dotted field path.
func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func typeName(vt jsonparser.ValueType) string {
	switch vt {
	case jsonparser.String:
		return "string"
	case jsonparser.Number:
		return "number"
	case jsonparser.Object:
		return "object"
	case jsonparser.Array:
		return "array"
	case jsonparser.Boolean:
		return "boolean"
	case jsonparser.Null:
		return "null"
	}
	return "unknown"
}

// fragment renders a raw jsonparser value for error messages.
// jsonparser strips the quotes from strings and hands null through as
// empty bytes; put both back.
func fragment(value []byte, vt jsonparser.ValueType) string {
	switch vt {
	case jsonparser.String:
		return `"` + string(value) + `"`
	case jsonparser.Null:
		return "null"
	}
	return string(value)
}

// sniffType classifies raw JSON bytes by their first significant byte.
// Only used at entry points where jsonparser has not told us the type.
func sniffType(data []byte) jsonparser.ValueType {
	for _, c := range data {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return jsonparser.Object
		case '[':
			return jsonparser.Array
		case '"':
			return jsonparser.String
		case 't', 'f':
			return jsonparser.Boolean
		case 'n':
			return jsonparser.Null
		default:
			return jsonparser.Number
		}
	}
	return jsonparser.Unknown
}

// eachKey walks the members of a JSON object in document order.
// Object member order is the whole point of this codec, and jsonparser
// is the one JSON walker that exposes it.
func eachKey(data []byte, path string, fn func(key string, value []byte, vt jsonparser.ValueType) error) error {
	if vt := sniffType(data); vt != jsonparser.Object {
		return &TypeError{Path: path, Want: "object", Got: typeName(vt)}
	}
	return jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		k, err := jsonparser.ParseString(key)
		if err != nil {
			return fmt.Errorf("%s: parse key: %w", path, err)
		}
		return fn(k, value, vt)
	})
}

func decodeString(value []byte, vt jsonparser.ValueType, path string) (string, error) {
	if vt != jsonparser.String {
		return "", &TypeError{Path: path, Want: "string", Got: typeName(vt)}
	}
	s, err := jsonparser.ParseString(value)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func decodeUint(value []byte, vt jsonparser.ValueType, path string) (int, error) {
	if vt != jsonparser.Number {
		return 0, &TypeError{Path: path, Want: "unsigned integer", Got: typeName(vt)}
	}
	n, err := jsonparser.ParseInt(value)
	if err != nil || n < 0 {
		return 0, &TypeError{Path: path, Want: "unsigned integer", Got: string(value)}
	}
	return int(n), nil
}

// decodeFlag reads the integer encoding used for boolean fields:
// 1 is true, any other integer (negative included) is false.
func decodeFlag(value []byte, vt jsonparser.ValueType, path string) (bool, error) {
	if vt != jsonparser.Number {
		return false, &InvalidFlagError{Path: path, Value: fragment(value, vt)}
	}
	n, err := jsonparser.ParseInt(value)
	if err != nil {
		// Integers past the int64 range still count, and only 1 is
		// true, so they all decode false.
		if isIntegerLiteral(value) {
			return false, nil
		}
		return false, &InvalidFlagError{Path: path, Value: string(value)}
	}
	return n == 1, nil
}

// isIntegerLiteral reports whether value is a JSON number literal with
// no fraction or exponent part.
func isIntegerLiteral(value []byte) bool {
	digits := value
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func decodeBit(value []byte, vt jsonparser.ValueType, path string) (Bit, error) {
	switch vt {
	case jsonparser.Number:
		id, err := jsonparser.ParseInt(value)
		if err == nil && id >= 0 {
			return Signal(id), nil
		}
	case jsonparser.String:
		switch string(value) {
		case "0":
			return Bit0, nil
		case "1":
			return Bit1, nil
		case "z":
			return BitZ, nil
		case "x":
			return BitX, nil
		}
	}
	return BitX, &InvalidBitError{Path: path, Value: fragment(value, vt)}
}

func decodeBits(value []byte, vt jsonparser.ValueType, path string) ([]Bit, error) {
	if vt != jsonparser.Array {
		return nil, &TypeError{Path: path, Want: "array", Got: typeName(vt)}
	}
	bits := []Bit{}
	var cbErr error
	i := 0
	_, err := jsonparser.ArrayEach(value, func(item []byte, ivt jsonparser.ValueType, _ int, _ error) {
		if cbErr != nil {
			return
		}
		b, e := decodeBit(item, ivt, fmt.Sprintf("%s[%d]", path, i))
		i++
		if e != nil {
			cbErr = e
			return
		}
		bits = append(bits, b)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cbErr != nil {
		return nil, cbErr
	}
	return bits, nil
}

func decodeObject(value []byte, vt jsonparser.ValueType, path string) (*Object, error) {
	if vt != jsonparser.Object {
		return nil, &TypeError{Path: path, Want: "object", Got: typeName(vt)}
	}
	v, err := parseValue(value, vt, path)
	if err != nil {
		return nil, err
	}
	return v.(*Object), nil
}

func decodeDirection(value []byte, vt jsonparser.ValueType, path string) (Direction, error) {
	if vt != jsonparser.String {
		return 0, &TypeError{Path: path, Want: "string", Got: typeName(vt)}
	}
	switch string(value) {
	case "input":
		return Input, nil
	case "output":
		return Output, nil
	case "inout":
		return InOut, nil
	}
	return 0, &TypeError{Path: path, Want: `"input", "output" or "inout"`, Got: fragment(value, vt)}
}

// decodeMap decodes an object of named values, preserving key order.
func decodeMap[T any](value []byte, vt jsonparser.ValueType, path string,
	decode func([]byte, jsonparser.ValueType, string) (T, error)) (*orderedmap.OrderedMap[string, T], error) {

	if vt != jsonparser.Object {
		return nil, &TypeError{Path: path, Want: "object", Got: typeName(vt)}
	}
	m := orderedmap.New[string, T]()
	err := eachKey(value, path, func(key string, item []byte, ivt jsonparser.ValueType) error {
		v, err := decode(item, ivt, joinPath(path, key))
		if err != nil {
			return err
		}
		m.Set(key, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (n *Netlist) decode(data []byte, path string) error {
	*n = Netlist{
		Modules: orderedmap.New[string, *Module](),
		Extra:   NewObject(),
	}
	var hasCreator, hasModules bool
	err := eachKey(data, path, func(key string, value []byte, vt jsonparser.ValueType) error {
		fp := joinPath(path, key)
		var err error
		switch key {
		case "creator":
			n.Creator, err = decodeString(value, vt, fp)
			hasCreator = true
		case "modules":
			n.Modules, err = decodeMap(value, vt, fp, decodeModule)
			hasModules = true
		default:
			var v any
			if v, err = parseValue(value, vt, fp); err == nil {
				n.Extra.Set(key, v)
			}
		}
		return err
	})
	if err != nil {
		return err
	}
	if !hasCreator {
		return &MissingFieldError{Path: path, Field: "creator"}
	}
	if !hasModules {
		return &MissingFieldError{Path: path, Field: "modules"}
	}
	return nil
}

// UnmarshalJSON decodes a full netlist document, so the type composes
// with encoding/json as well as the From* entry points.
func (n *Netlist) UnmarshalJSON(data []byte) error {
	return n.decode(data, "")
}

func decodeModule(data []byte, vt jsonparser.ValueType, path string) (*Module, error) {
	if vt != jsonparser.Object {
		return nil, &TypeError{Path: path, Want: "object", Got: typeName(vt)}
	}
	m := new(Module)
	if err := m.decode(data, path); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Module) decode(data []byte, path string) error {
	*m = *NewModule()
	return eachKey(data, path, func(key string, value []byte, vt jsonparser.ValueType) error {
		fp := joinPath(path, key)
		var err error
		switch key {
		case "attributes":
			m.Attributes, err = decodeObject(value, vt, fp)
		case "ports":
			m.Ports, err = decodeMap(value, vt, fp, decodePort)
		case "cells":
			m.Cells, err = decodeMap(value, vt, fp, decodeCell)
		case "memories":
			m.Memories, err = decodeMap(value, vt, fp, decodeMemory)
		case "netnames":
			m.Nets, err = decodeMap(value, vt, fp, decodeNet)
		default:
			var v any
			if v, err = parseValue(value, vt, fp); err == nil {
				m.Extra.Set(key, v)
			}
		}
		return err
	})
}

func (m *Module) UnmarshalJSON(data []byte) error {
	return m.decode(data, "")
}

func decodePort(data []byte, vt jsonparser.ValueType, path string) (*Port, error) {
	if vt != jsonparser.Object {
		return nil, &TypeError{Path: path, Want: "object", Got: typeName(vt)}
	}
	p := new(Port)
	if err := p.decode(data, path); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Port) decode(data []byte, path string) error {
	*p = Port{Extra: NewObject()}
	var hasDirection, hasBits bool
	err := eachKey(data, path, func(key string, value []byte, vt jsonparser.ValueType) error {
		fp := joinPath(path, key)
		var err error
		switch key {
		case "direction":
			p.Direction, err = decodeDirection(value, vt, fp)
			hasDirection = true
		case "bits":
			p.Bits, err = decodeBits(value, vt, fp)
			hasBits = true
		case "offset":
			p.Offset, err = decodeUint(value, vt, fp)
		case "upto":
			p.Upto, err = decodeUint(value, vt, fp)
		case "signed":
			p.Signed, err = decodeFlag(value, vt, fp)
		default:
			var v any
			if v, err = parseValue(value, vt, fp); err == nil {
				p.Extra.Set(key, v)
			}
		}
		return err
	})
	if err != nil {
		return err
	}
	if !hasDirection {
		return &MissingFieldError{Path: path, Field: "direction"}
	}
	if !hasBits {
		return &MissingFieldError{Path: path, Field: "bits"}
	}
	return nil
}

func (p *Port) UnmarshalJSON(data []byte) error {
	return p.decode(data, "")
}

func decodeCell(data []byte, vt jsonparser.ValueType, path string) (*Cell, error) {
	if vt != jsonparser.Object {
		return nil, &TypeError{Path: path, Want: "object", Got: typeName(vt)}
	}
	c := new(Cell)
	if err := c.decode(data, path); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cell) decode(data []byte, path string) error {
	*c = *NewCell("")
	var hasType bool
	err := eachKey(data, path, func(key string, value []byte, vt jsonparser.ValueType) error {
		fp := joinPath(path, key)
		var err error
		switch key {
		case "hide_name":
			c.HideName, err = decodeFlag(value, vt, fp)
		case "type":
			c.Type, err = decodeString(value, vt, fp)
			hasType = true
		case "attributes":
			c.Attributes, err = decodeObject(value, vt, fp)
		case "parameters":
			c.Parameters, err = decodeObject(value, vt, fp)
		case "port_directions":
			c.PortDirections, err = decodeMap(value, vt, fp, decodeDirection)
		case "connections":
			c.Connections, err = decodeMap(value, vt, fp, decodeBits)
		default:
			var v any
			if v, err = parseValue(value, vt, fp); err == nil {
				c.Extra.Set(key, v)
			}
		}
		return err
	})
	if err != nil {
		return err
	}
	if !hasType {
		return &MissingFieldError{Path: path, Field: "type"}
	}
	return nil
}

func (c *Cell) UnmarshalJSON(data []byte) error {
	return c.decode(data, "")
}

func decodeMemory(data []byte, vt jsonparser.ValueType, path string) (*Memory, error) {
	if vt != jsonparser.Object {
		return nil, &TypeError{Path: path, Want: "object", Got: typeName(vt)}
	}
	mem := new(Memory)
	if err := mem.decode(data, path); err != nil {
		return nil, err
	}
	return mem, nil
}

func (mem *Memory) decode(data []byte, path string) error {
	*mem = Memory{Attributes: NewObject(), Extra: NewObject()}
	var hasWidth, hasSize bool
	err := eachKey(data, path, func(key string, value []byte, vt jsonparser.ValueType) error {
		fp := joinPath(path, key)
		var err error
		switch key {
		case "hide_name":
			mem.HideName, err = decodeFlag(value, vt, fp)
		case "attributes":
			mem.Attributes, err = decodeObject(value, vt, fp)
		case "width":
			mem.Width, err = decodeUint(value, vt, fp)
			hasWidth = true
		case "size":
			mem.Size, err = decodeUint(value, vt, fp)
			hasSize = true
		case "start_offset":
			mem.StartOffset, err = decodeUint(value, vt, fp)
		default:
			var v any
			if v, err = parseValue(value, vt, fp); err == nil {
				mem.Extra.Set(key, v)
			}
		}
		return err
	})
	if err != nil {
		return err
	}
	if !hasWidth {
		return &MissingFieldError{Path: path, Field: "width"}
	}
	if !hasSize {
		return &MissingFieldError{Path: path, Field: "size"}
	}
	return nil
}

func (mem *Memory) UnmarshalJSON(data []byte) error {
	return mem.decode(data, "")
}

func decodeNet(data []byte, vt jsonparser.ValueType, path string) (*Net, error) {
	if vt != jsonparser.Object {
		return nil, &TypeError{Path: path, Want: "object", Got: typeName(vt)}
	}
	nt := new(Net)
	if err := nt.decode(data, path); err != nil {
		return nil, err
	}
	return nt, nil
}

func (nt *Net) decode(data []byte, path string) error {
	*nt = Net{Attributes: NewObject(), Extra: NewObject()}
	var hasBits bool
	err := eachKey(data, path, func(key string, value []byte, vt jsonparser.ValueType) error {
		fp := joinPath(path, key)
		var err error
		switch key {
		case "hide_name":
			nt.HideName, err = decodeFlag(value, vt, fp)
		case "attributes":
			nt.Attributes, err = decodeObject(value, vt, fp)
		case "bits":
			nt.Bits, err = decodeBits(value, vt, fp)
			hasBits = true
		case "offset":
			nt.Offset, err = decodeUint(value, vt, fp)
		case "upto":
			nt.Upto, err = decodeUint(value, vt, fp)
		case "signed":
			nt.Signed, err = decodeFlag(value, vt, fp)
		default:
			var v any
			if v, err = parseValue(value, vt, fp); err == nil {
				nt.Extra.Set(key, v)
			}
		}
		return err
	})
	if err != nil {
		return err
	}
	if !hasBits {
		return &MissingFieldError{Path: path, Field: "bits"}
	}
	return nil
}

func (nt *Net) UnmarshalJSON(data []byte) error {
	return nt.decode(data, "")
}
