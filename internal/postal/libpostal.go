//go:build libpostal

package postal

import parser "github.com/openvenues/gopostal/parser"

// Available reports whether libpostal support is compiled in.
func Available() bool { return true }

// Parse runs libpostal's parser on raw.
func Parse(raw string) ([]Component, error) {
	parsed := parser.ParseAddress(raw)
	components := make([]Component, 0, len(parsed))
	for _, c := range parsed {
		components = append(components, Component{Label: c.Label, Value: c.Value})
	}
	return components, nil
}
