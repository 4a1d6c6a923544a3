package netlist

import (
	"errors"
	"strings"
	"testing"

	"github.com/buger/jsonparser"
	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_EndToEnd(t *testing.T) {
	n, err := FromString(`{"creator":"t","modules":{"m":{"ports":{"p":{"direction":"input","bits":[0,"1","x"]}}}}}`)
	require.NoError(t, err)

	assert.Equal(t, "t", n.Creator)
	require.Equal(t, 1, n.Modules.Len())

	m, ok := n.Modules.Get("m")
	require.True(t, ok)
	require.Equal(t, 1, m.Ports.Len())
	assert.Equal(t, 0, m.Cells.Len())
	assert.Equal(t, 0, m.Memories.Len())
	assert.Equal(t, 0, m.Nets.Len())

	p, ok := m.Ports.Get("p")
	require.True(t, ok)
	assert.Equal(t, Input, p.Direction)
	assert.Equal(t, []Bit{Signal(0), Bit1, BitX}, p.Bits)
	assert.Equal(t, 0, p.Offset)
	assert.Equal(t, 0, p.Upto)
	assert.False(t, p.Signed)
	assert.Equal(t, 0, p.Extra.Len())
}

func TestDecode_MissingCollectionsDefaultEmpty(t *testing.T) {
	n, err := FromString(`{"creator":"t","modules":{"m":{}}}`)
	require.NoError(t, err)

	m, ok := n.Modules.Get("m")
	require.True(t, ok)
	assert.Equal(t, 0, m.Attributes.Len())
	assert.Equal(t, 0, m.Ports.Len())
	assert.Equal(t, 0, m.Cells.Len())
	assert.Equal(t, 0, m.Memories.Len())
	assert.Equal(t, 0, m.Nets.Len())
	assert.Equal(t, 0, m.Extra.Len())
}

func TestDecode_UnknownFieldsPassThrough(t *testing.T) {
	n, err := FromString(`{"creator":"t","foo":1,"modules":{},"bar":{"nested":{"b":2,"a":1}}}`)
	require.NoError(t, err)
	require.Equal(t, 2, n.Extra.Len())

	// Relative order of unknown keys survives.
	first := n.Extra.Oldest()
	assert.Equal(t, "foo", first.Key)
	assert.Equal(t, "bar", first.Next().Key)

	out, err := n.ToString()
	require.NoError(t, err)
	// Known fields first, passthrough appended, nested key order kept.
	assert.Equal(t, `{"creator":"t","modules":{},"foo":1,"bar":{"nested":{"b":2,"a":1}}}`, out)
}

func TestDecode_EntityPassthrough(t *testing.T) {
	n, err := FromString(`{"creator":"t","modules":{"m":{
		"vendor_weird": ["a", {"k": "v"}],
		"ports":{"p":{"direction":"output","bits":[2],"vendor_tag":"keep me"}}}}}`)
	require.NoError(t, err)

	m, _ := n.Modules.Get("m")
	v, ok := m.Extra.Get("vendor_weird")
	require.True(t, ok)
	arr, ok := v.([]any)
	require.True(t, ok)
	require.Len(t, arr, 2)
	assert.Equal(t, "a", arr[0])

	p, _ := m.Ports.Get("p")
	tag, ok := p.Extra.Get("vendor_tag")
	require.True(t, ok)
	assert.Equal(t, "keep me", tag)
}

func TestDecode_NamedMapOrder(t *testing.T) {
	n, err := FromString(`{"creator":"t","modules":{
		"zeta":{},"alpha":{},"mid":{}}}`)
	require.NoError(t, err)

	var names []string
	for pair := n.Modules.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names)
}

func TestDecode_MissingRequiredFields(t *testing.T) {
	cases := []struct {
		name  string
		doc   string
		field string
	}{
		{"creator", `{"modules":{}}`, "creator"},
		{"modules", `{"creator":"t"}`, "modules"},
		{"port direction", `{"creator":"t","modules":{"m":{"ports":{"p":{"bits":[1]}}}}}`, "direction"},
		{"port bits", `{"creator":"t","modules":{"m":{"ports":{"p":{"direction":"input"}}}}}`, "bits"},
		{"cell type", `{"creator":"t","modules":{"m":{"cells":{"c":{}}}}}`, "type"},
		{"memory width", `{"creator":"t","modules":{"m":{"memories":{"r":{"size":16}}}}}`, "width"},
		{"memory size", `{"creator":"t","modules":{"m":{"memories":{"r":{"width":8}}}}}`, "size"},
		{"net bits", `{"creator":"t","modules":{"m":{"netnames":{"w":{}}}}}`, "bits"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromString(tc.doc)
			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tc.field, missing.Field)
		})
	}
}

func TestDecode_TypeMismatch(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		path string
	}{
		{"modules not object", `{"creator":"t","modules":[]}`, "modules"},
		{"bits not array", `{"creator":"t","modules":{"m":{"netnames":{"w":{"bits":5}}}}}`, "modules.m.netnames.w.bits"},
		{"attributes not object", `{"creator":"t","modules":{"m":{"attributes":[1]}}}`, "modules.m.attributes"},
		{"creator not string", `{"creator":3,"modules":{}}`, "creator"},
		{"offset not integer", `{"creator":"t","modules":{"m":{"ports":{"p":{"direction":"input","bits":[],"offset":-1}}}}}`, "modules.m.ports.p.offset"},
		{"direction not known", `{"creator":"t","modules":{"m":{"ports":{"p":{"direction":"up","bits":[]}}}}}`, "modules.m.ports.p.direction"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromString(tc.doc)
			var typeErr *TypeError
			require.ErrorAs(t, err, &typeErr)
			assert.Equal(t, tc.path, typeErr.Path)
		})
	}
}

func TestDecode_InvalidBitNamesValue(t *testing.T) {
	_, err := FromString(`{"creator":"t","modules":{"m":{"netnames":{"w":{"bits":[1,"Q"]}}}}}`)
	var bitErr *InvalidBitError
	require.ErrorAs(t, err, &bitErr)
	assert.Equal(t, `"Q"`, bitErr.Value)
	assert.Equal(t, "modules.m.netnames.w.bits[1]", bitErr.Path)
}

func TestDecodeFlag(t *testing.T) {
	cases := []struct {
		wire string
		want bool
	}{
		{`1`, true},
		{`0`, false},
		{`-5`, false},
		{`7`, false},
		{`99999999999`, false},
		{`9223372036854775808`, false},
		{`18446744073709551616`, false},
		{`-9223372036854775809`, false},
	}
	for _, tc := range cases {
		got, err := decodeFlag([]byte(tc.wire), jsonparser.Number, "f")
		require.NoError(t, err, tc.wire)
		assert.Equal(t, tc.want, got, tc.wire)
	}

	for _, tc := range []struct {
		value []byte
		vt    jsonparser.ValueType
	}{
		{[]byte(`x`), jsonparser.String},
		{[]byte(`true`), jsonparser.Boolean},
		{[]byte(`1.5`), jsonparser.Number},
		{[]byte(`1e3`), jsonparser.Number},
	} {
		_, err := decodeFlag(tc.value, tc.vt, "f")
		var flagErr *InvalidFlagError
		require.ErrorAs(t, err, &flagErr)
	}
}

func TestDecode_FlagFields(t *testing.T) {
	n, err := FromString(`{"creator":"t","modules":{"m":{
		"netnames":{"w":{"hide_name":1,"bits":[3],"signed":1}},
		"cells":{"c":{"hide_name":0,"type":"$not"}}}}}`)
	require.NoError(t, err)

	m, _ := n.Modules.Get("m")
	w, _ := m.Nets.Get("w")
	assert.True(t, w.HideName)
	assert.True(t, w.Signed)
	c, _ := m.Cells.Get("c")
	assert.False(t, c.HideName)
}

func TestDecode_FlagBeyondInt64(t *testing.T) {
	n, err := FromString(`{"creator":"t","modules":{"m":{
		"netnames":{"w":{"bits":[3],"signed":9223372036854775808}}}}}`)
	require.NoError(t, err)

	m, _ := n.Modules.Get("m")
	w, _ := m.Nets.Get("w")
	assert.False(t, w.Signed)
}

func TestDecode_MalformedDocument(t *testing.T) {
	for _, doc := range []string{`{`, ``, `{"creator":}`, `{"a":1,}`} {
		_, err := FromString(doc)
		require.Error(t, err, doc)
		// Syntax errors come straight from the JSON validator, not from
		// the schema layer.
		var missing *MissingFieldError
		var typeErr *TypeError
		assert.False(t, errors.As(err, &missing), doc)
		assert.False(t, errors.As(err, &typeErr), doc)
	}
}

func TestDecode_TopLevelNotObject(t *testing.T) {
	_, err := FromString(`[1,2,3]`)
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "object", typeErr.Want)
}

func TestFromValue(t *testing.T) {
	doc, err := oj.ParseString(`{"creator":"t","modules":{"m":{"netnames":{"w":{"bits":[1,2]}}}}}`)
	require.NoError(t, err)

	n, err := FromValue(doc)
	require.NoError(t, err)
	assert.Equal(t, "t", n.Creator)
	m, _ := n.Modules.Get("m")
	w, _ := m.Nets.Get("w")
	assert.Equal(t, []Bit{Signal(1), Signal(2)}, w.Bits)
}

func TestFromReader(t *testing.T) {
	n, err := FromReader(strings.NewReader(`{"creator":"rdr","modules":{}}`))
	require.NoError(t, err)
	assert.Equal(t, "rdr", n.Creator)
	assert.Equal(t, 0, n.Modules.Len())
}

func TestDecode_NumberAttributesKeepSourceText(t *testing.T) {
	n, err := FromString(`{"creator":"t","modules":{"m":{"attributes":{"f":1.50,"e":1e3}}}}`)
	require.NoError(t, err)

	out, err := n.ToString()
	require.NoError(t, err)
	assert.Contains(t, out, `"f":1.50`)
	assert.Contains(t, out, `"e":1e3`)
}
