package model

import "strings"

// RangeSeparator joins the first and last unit of an issue or month range,
// as in "3-4" or "mar-apr".
const RangeSeparator = "-"

// Issue represents one parsed issue of a holdings statement.
//
// Issue is the raw tuple handed from the statement parser to the record
// encoder. Every field is kept as text exactly as normalized by the parser:
//   - Year is always four digits when produced by the parser
//   - Volume is empty when the year group carries no volume
//   - Number is empty for issues identified only by a month or season
//   - Month holds a month name or a two-digit season code (21-24)
//
// Example:
//
//	issue := Issue{Year: "1999", Month: "21"} // [Spring] 1999
type Issue struct {
	Year   string `json:"year" yaml:"year"`
	Volume string `json:"volume,omitempty" yaml:"volume,omitempty"`
	Number string `json:"number,omitempty" yaml:"number,omitempty"`
	Month  string `json:"month,omitempty" yaml:"month,omitempty"`
}

// IsEmpty reports whether all four fields are empty.
func (i Issue) IsEmpty() bool {
	return i.Year == "" && i.Volume == "" && i.Number == "" && i.Month == ""
}

// IsRange reports whether the issue number or month spans more than one unit.
func (i Issue) IsRange() bool {
	return strings.Contains(i.Number, RangeSeparator) || strings.Contains(i.Month, RangeSeparator)
}
