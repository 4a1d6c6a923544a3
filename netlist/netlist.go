package netlist

import (
	"encoding/json"
	"io"

	"github.com/ohler55/ojg/oj"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Netlist is the top-level document: the tool that produced it and its
// modules, in emission order.
type Netlist struct {
	Creator string
	Modules *orderedmap.OrderedMap[string, *Module]
	Extra   *Object
}

// New returns an empty netlist attributed to creator.
func New(creator string) *Netlist {
	return &Netlist{
		Creator: creator,
		Modules: orderedmap.New[string, *Module](),
		Extra:   NewObject(),
	}
}

// FromReader decodes a netlist document from r. Read errors propagate
// unmodified.
func FromReader(r io.Reader) (*Netlist, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return FromSlice(data)
}

// FromSlice decodes a netlist document from raw JSON bytes. Syntax
// errors from the JSON validator are returned as-is; a syntactically
// valid document that does not match the schema yields one of the
// typed errors in this package.
func FromSlice(data []byte) (*Netlist, error) {
	if err := oj.Validate(data); err != nil {
		return nil, err
	}
	n := new(Netlist)
	if err := n.decode(data, ""); err != nil {
		return nil, err
	}
	return n, nil
}

// FromString decodes a netlist document from a string.
func FromString(s string) (*Netlist, error) {
	return FromSlice([]byte(s))
}

// FromValue decodes a netlist from an already parsed generic JSON
// value, such as the result of oj.Parse or json.Unmarshal. Key order
// survives only where v itself holds order-preserving objects; plain
// maps are serialized with sorted keys.
func FromValue(v any) (*Netlist, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return FromSlice(data)
}

// ToWriter encodes the netlist as a single JSON document to w. Write
// errors propagate unmodified.
func (n *Netlist) ToWriter(w io.Writer) error {
	data, err := n.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ToString returns the JSON encoding of the netlist.
func (n *Netlist) ToString() (string, error) {
	data, err := n.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(data), nil
}
