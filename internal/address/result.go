package address

import (
	"encoding/json"
	"errors"
)

// Structured error messages returned inside a Result.
const (
	MsgInvalidAddress   = "Invalid Address Given"
	MsgInvalidOperation = "Invalid Operation Type"
)

// Faults raised by the strategies. Operation turns these into an absent result.
var (
	ErrNoHouseNumber  = errors.New("no house number token found")
	ErrMalformedComma = errors.New("comma split did not yield exactly two parts")
	ErrEmptyPart      = errors.New("comma split produced an empty part")
	ErrPanic          = errors.New("address operation panicked")
)

// Result is either a street/house number pair or a structured error, never both.
type Result struct {
	Street      string
	HouseNumber string
	Error       string
}

// Format assembles the extracted fields into a successful Result.
func Format(street, houseNumber string) Result {
	return Result{Street: street, HouseNumber: houseNumber}
}

// Failure returns a Result carrying only a structured error message.
func Failure(msg string) Result {
	return Result{Error: msg}
}

// Failed reports whether the result is a structured error.
func (r Result) Failed() bool {
	return r.Error != ""
}

// Map returns the result in its wire shape: {"street","housenumber"} or {"error"}.
func (r Result) Map() map[string]string {
	if r.Failed() {
		return map[string]string{"error": r.Error}
	}
	return map[string]string{
		"street":      r.Street,
		"housenumber": r.HouseNumber,
	}
}

// MarshalJSON encodes the result using Map.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Map())
}
