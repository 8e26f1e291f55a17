package model

import "strconv"

// Category identifies one optional enumeration/chronology field.
type Category int

const (
	// CategoryVolume is the volume designation ("v.").
	CategoryVolume Category = iota

	// CategoryNumber is the issue number ("no.").
	CategoryNumber

	// CategoryMonth is the issue month or season ("(month)").
	CategoryMonth
)

// Caption returns the caption label the category uses in a CaptionRecord.
func (c Category) Caption() string {
	switch c {
	case CategoryVolume:
		return "v."
	case CategoryNumber:
		return "no."
	case CategoryMonth:
		return "(month)"
	default:
		return ""
	}
}

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryVolume:
		return "volume"
	case CategoryNumber:
		return "number"
	case CategoryMonth:
		return "month"
	default:
		return "unknown"
	}
}

// YearCode is the subfield code that always holds the year.
const YearCode = "a"

// YearCaption is the caption label for the year subfield.
const YearCaption = "(year)"

// LinkField is the subfield code of the linkage and sequence number.
const LinkField = "8"

// captionLink is the link number shared by the caption and its records.
const captionLink = "1"

// precedence is the fixed order optional categories are laid out in.
var precedence = []Category{CategoryVolume, CategoryNumber, CategoryMonth}

// positionCodes maps a layout position to its subfield code.
var positionCodes = []string{"b", "c", "d"}

// Layout records which optional categories are present in a statement.
//
// A Layout is computed once over the whole statement and then applied to the
// caption and to every record, so that a category present anywhere gets a
// slot everywhere (possibly empty for a given record).
type Layout struct {
	Volume bool `json:"volume" yaml:"volume"`
	Number bool `json:"number" yaml:"number"`
	Month  bool `json:"month" yaml:"month"`
}

// Has reports whether the category is part of the layout.
func (l Layout) Has(c Category) bool {
	switch c {
	case CategoryVolume:
		return l.Volume
	case CategoryNumber:
		return l.Number
	case CategoryMonth:
		return l.Month
	default:
		return false
	}
}

// Categories returns the present categories in precedence order
// (volume, number, month).
func (l Layout) Categories() []Category {
	cats := make([]Category, 0, len(precedence))
	for _, c := range precedence {
		if l.Has(c) {
			cats = append(cats, c)
		}
	}
	return cats
}

// Code returns the subfield code assigned to the category, or false when the
// category is absent from the layout.
func (l Layout) Code(c Category) (string, bool) {
	for pos, present := range l.Categories() {
		if present == c {
			return positionCodes[pos], true
		}
	}
	return "", false
}

// Subfield is one coded value of a MARC data field.
type Subfield struct {
	Code  string `json:"code" yaml:"code"`
	Value string `json:"value" yaml:"value"`
}

// EnumerationRecord is one emitted enumeration/chronology record (MARC 863).
//
// Sequence numbers start at 1 and grow by one per emitted record of the same
// statement. Range is true when the issue number or month holds a range.
type EnumerationRecord struct {
	Issue    `yaml:",inline"`
	Sequence int    `json:"sequence" yaml:"sequence"`
	Range    bool   `json:"range" yaml:"range"`
	Layout   Layout `json:"-" yaml:"-"`
}

// Indicators returns the two MARC indicators: "4","0" for a range and
// "4","1" for a single issue.
func (r EnumerationRecord) Indicators() (string, string) {
	if r.Range {
		return "4", "0"
	}
	return "4", "1"
}

// LinkNumber returns the linkage token "1.<sequence>".
func (r EnumerationRecord) LinkNumber() string {
	return captionLink + "." + strconv.Itoa(r.Sequence)
}

// Subfields returns the record's data subfields: the year under "a", followed
// by every category of the layout in precedence order.
func (r EnumerationRecord) Subfields() []Subfield {
	subfields := []Subfield{{Code: YearCode, Value: r.Year}}
	for _, c := range r.Layout.Categories() {
		code, _ := r.Layout.Code(c)
		subfields = append(subfields, Subfield{Code: code, Value: r.value(c)})
	}
	return subfields
}

func (r EnumerationRecord) value(c Category) string {
	switch c {
	case CategoryVolume:
		return r.Volume
	case CategoryNumber:
		return r.Number
	case CategoryMonth:
		return r.Month
	default:
		return ""
	}
}

// CaptionRecord describes the shape of a statement's records (MARC 853).
// It carries caption labels, never data values.
type CaptionRecord struct {
	Layout Layout `json:"layout" yaml:"layout"`
}

// Indicators returns the caption's MARC indicators.
func (c CaptionRecord) Indicators() (string, string) {
	return "2", "0"
}

// LinkNumber returns the caption's link number.
func (c CaptionRecord) LinkNumber() string {
	return captionLink
}

// Subfields returns the caption labels laid out like the records.
func (c CaptionRecord) Subfields() []Subfield {
	subfields := []Subfield{{Code: YearCode, Value: YearCaption}}
	for _, cat := range c.Layout.Categories() {
		code, _ := c.Layout.Code(cat)
		subfields = append(subfields, Subfield{Code: code, Value: cat.Caption()})
	}
	return subfields
}

// Statement is the encoded form of one holdings statement.
//
// Caption is nil exactly when Records is empty.
type Statement struct {
	Records []EnumerationRecord `json:"records" yaml:"records"`
	Caption *CaptionRecord      `json:"caption,omitempty" yaml:"caption,omitempty"`
}

// IsEmpty reports whether the statement produced no records.
func (s Statement) IsEmpty() bool {
	return len(s.Records) == 0
}
