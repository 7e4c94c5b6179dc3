package address

// Mode is the extraction strategy chosen for an address.
type Mode int

const (
	ModeUnknown Mode = iota
	ModeSplit
	ModeParse
)

func (m Mode) String() string {
	switch m {
	case ModeSplit:
		return "SPLIT"
	case ModeParse:
		return "PARSE"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether m is one of the recognised strategies.
func (m Mode) Valid() bool {
	return m == ModeSplit || m == ModeParse
}

// Delimiter is the token a SPLIT operation divides the address on.
// Keywords are stored in their capitalised form.
type Delimiter string

const (
	DelimiterNone     Delimiter = ""
	DelimiterComma    Delimiter = ","
	DelimiterFlat     Delimiter = "Flat"
	DelimiterHouse    Delimiter = "House"
	DelimiterNo       Delimiter = "No"
	DelimiterBuilding Delimiter = "Building"
)

// Keywords lists the keyword delimiters in selection priority order.
var Keywords = []Delimiter{DelimiterFlat, DelimiterHouse, DelimiterNo, DelimiterBuilding}

// IsKeyword reports whether d is a word delimiter rather than the comma.
func (d Delimiter) IsKeyword() bool {
	return d != DelimiterNone && d != DelimiterComma
}
