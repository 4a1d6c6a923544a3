package netlist

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Module is a named circuit definition: ports at its boundary, cell
// instances and memories inside it, and named nets over its signals.
// All collections keep document order; Extra holds any fields the
// schema does not recognize.
type Module struct {
	Attributes *Object
	Ports      *orderedmap.OrderedMap[string, *Port]
	Cells      *orderedmap.OrderedMap[string, *Cell]
	Memories   *orderedmap.OrderedMap[string, *Memory]
	// Nets is keyed "netnames" on the wire.
	Nets  *orderedmap.OrderedMap[string, *Net]
	Extra *Object
}

// NewModule returns a Module with all collections initialized.
func NewModule() *Module {
	return &Module{
		Attributes: NewObject(),
		Ports:      orderedmap.New[string, *Port](),
		Cells:      orderedmap.New[string, *Cell](),
		Memories:   orderedmap.New[string, *Memory](),
		Nets:       orderedmap.New[string, *Net](),
		Extra:      NewObject(),
	}
}

// Port is a module boundary connection. Bits lists the connected
// signals least-significant first. Offset and Upto carry the source
// HDL bit numbering (e.g. wire [7:0] vs wire [0:7]).
type Port struct {
	Direction Direction
	Bits      []Bit
	Offset    int
	Upto      int
	Signed    bool
	Extra     *Object
}

// Cell is an instance of another module or of a primitive. Type names
// the instantiated module; Connections maps each cell port to the bits
// it is wired to.
type Cell struct {
	HideName       bool
	Type           string
	Attributes     *Object
	Parameters     *Object
	PortDirections *orderedmap.OrderedMap[string, Direction]
	Connections    *orderedmap.OrderedMap[string, []Bit]
	Extra          *Object
}

// NewCell returns a Cell of the given type with all maps initialized.
func NewCell(typ string) *Cell {
	return &Cell{
		Type:           typ,
		Attributes:     NewObject(),
		Parameters:     NewObject(),
		PortDirections: orderedmap.New[string, Direction](),
		Connections:    orderedmap.New[string, []Bit](),
		Extra:          NewObject(),
	}
}

// Memory is a memory block: Size words of Width bits each, addressed
// from StartOffset.
type Memory struct {
	HideName    bool
	Attributes  *Object
	Width       int
	Size        int
	StartOffset int
	Extra       *Object
}

// Net is a named bundle of bits inside a module. A net may cover the
// same signals as a port; the codec does not cross-check that.
type Net struct {
	HideName   bool
	Attributes *Object
	Bits       []Bit
	Offset     int
	Upto       int
	Signed     bool
	Extra      *Object
}
