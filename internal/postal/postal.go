// Package postal cross-checks the heuristic parser against libpostal. The
// libpostal-backed implementation is only compiled with the libpostal build tag
// because it needs the C library installed.
package postal

import (
	"errors"
	"strings"

	"github.com/ehdc-llpg/housenumber/internal/address"
)

// ErrUnavailable is returned when the binary was built without libpostal.
var ErrUnavailable = errors.New("libpostal support not compiled in (build with -tags libpostal)")

// Component is one labelled span returned by libpostal.
type Component struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ToResult keeps the road and house_number labels, the only fields this
// project extracts. Multiple spans with the same label are joined by a space.
func ToResult(components []Component) address.Result {
	var road, house []string
	for _, c := range components {
		switch c.Label {
		case "road":
			road = append(road, c.Value)
		case "house_number":
			house = append(house, c.Value)
		}
	}
	return address.Format(strings.Join(road, " "), strings.Join(house, " "))
}
