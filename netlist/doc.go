// Package netlist reads and writes the JSON netlist format emitted by
// logic-synthesis tools ("yosys -o design.json" and friends).
//
// The package is a lossless codec: every recognized field decodes into
// a typed value, every unrecognized field is captured verbatim into an
// insertion-ordered passthrough map and re-emitted on encode, and all
// named collections (modules, ports, cells, memories, netnames)
// preserve document key order. Decoding a file and encoding it back
// produces an equivalent document with known fields in schema order
// followed by the passthrough fields in their original order.
//
// One wire convention deserves a warning: the reference producer
// writes the integer fields signed and hide_name as 0 on output even
// when the decoded value was 1. This codec reproduces that behavior
// for compatibility, so those two flags do not survive a full
// decode/encode round trip. See the flag helpers in decode.go and
// encode.go.
//
// The codec is stateless; independent documents may be decoded and
// encoded concurrently without coordination.
package netlist
