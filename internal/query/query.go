// Package query runs JSONPath expressions against raw netlist
// documents. Matching happens on the generic parsed tree rather than
// the typed model, so vendor-specific fields are just as reachable as
// recognized ones.
package query

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// Run parses data as JSON and returns every value matching the
// JSONPath selector, in document traversal order.
func Run(data []byte, selector string) ([]any, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath %q: %w", selector, err)
	}
	doc, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return x.Get(doc), nil
}
