package netlist

import (
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is an insertion-ordered JSON object. It backs attribute and
// parameter maps as well as the passthrough store for unrecognized
// fields. Values are generic JSON trees: nil, bool, json.Number,
// string, []any or *Object.
type Object = orderedmap.OrderedMap[string, any]

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return orderedmap.New[string, any]()
}

// parseValue converts a raw jsonparser value into a generic tree.
// Objects become *Object (key order kept), numbers keep their exact
// source text as json.Number.
func parseValue(value []byte, vt jsonparser.ValueType, path string) (any, error) {
	switch vt {
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return s, nil
	case jsonparser.Number:
		return json.Number(value), nil
	case jsonparser.Boolean:
		return string(value) == "true", nil
	case jsonparser.Null:
		return nil, nil
	case jsonparser.Array:
		arr := []any{}
		var cbErr error
		_, err := jsonparser.ArrayEach(value, func(item []byte, ivt jsonparser.ValueType, _ int, _ error) {
			if cbErr != nil {
				return
			}
			v, e := parseValue(item, ivt, path)
			if e != nil {
				cbErr = e
				return
			}
			arr = append(arr, v)
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if cbErr != nil {
			return nil, cbErr
		}
		return arr, nil
	case jsonparser.Object:
		obj := NewObject()
		err := eachKey(value, path, func(key string, item []byte, ivt jsonparser.ValueType) error {
			v, e := parseValue(item, ivt, joinPath(path, key))
			if e != nil {
				return e
			}
			obj.Set(key, v)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return obj, nil
	}
	return nil, &TypeError{Path: path, Want: "JSON value", Got: typeName(vt)}
}
