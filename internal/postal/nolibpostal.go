//go:build !libpostal

package postal

// Available reports whether libpostal support is compiled in.
func Available() bool { return false }

// Parse always fails without libpostal.
func Parse(string) ([]Component, error) {
	return nil, ErrUnavailable
}
