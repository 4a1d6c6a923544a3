package netlist

import "fmt"

// prefix renders a dotted field path for error messages. An empty path
// means the document root.
func prefix(path string) string {
	if path == "" {
		return ""
	}
	return path + ": "
}

// InvalidBitError reports a bit value that is neither a non-negative
// integer nor one of the constant strings "0", "1", "z", "x".
type InvalidBitError struct {
	Path  string // dotted field path, empty at the root
	Value string // offending JSON fragment
}

func (e *InvalidBitError) Error() string {
	return fmt.Sprintf(`%sinvalid bit value %s: want a non-negative integer, "0", "1", "z" or "x"`,
		prefix(e.Path), e.Value)
}

// InvalidFlagError reports a boolean-encoded field whose wire value is
// not a JSON integer.
type InvalidFlagError struct {
	Path  string
	Value string
}

func (e *InvalidFlagError) Error() string {
	return fmt.Sprintf("%sinvalid flag value %s: want an integer (1 for true)",
		prefix(e.Path), e.Value)
}

// MissingFieldError reports an absent field that the schema requires.
type MissingFieldError struct {
	Path  string // path of the object missing the field
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%smissing required field %q", prefix(e.Path), e.Field)
}

// TypeError reports a field whose JSON shape does not match the
// schema.
type TypeError struct {
	Path string
	Want string
	Got  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%swant %s, got %s", prefix(e.Path), e.Want, e.Got)
}
