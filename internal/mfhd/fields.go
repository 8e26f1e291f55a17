package mfhd

import (
	"errors"
	"strings"

	"github.com/boutros/marc"
	"github.com/handiism/marc-holdings/internal/model"
)

// MARC tags used by the holdings conversion.
const (
	TagControlNumber = "001"
	TagPhysical      = "007"
	TagCaption       = "853"
	TagEnumeration   = "863"
	TagHoldings      = "866"
)

// physicalText is the 007 value for text in regular print.
const physicalText = "ta"

// ErrNilRecord is returned when Attach is called without a record.
//
// This is a programming error in the caller; malformed holdings text never
// produces it.
var ErrNilRecord = errors.New("mfhd: nil record")

// HoldingsText returns the $a of the record's first 866 field.
// ok is false when the record has no 866 or the first 866 has no $a.
func HoldingsText(rec marc.Record) (text string, ok bool) {
	for _, f := range rec.DataFields {
		if f.Tag != TagHoldings {
			continue
		}
		for _, sf := range f.SubFields {
			if sf.Code == "a" {
				return sf.Value, true
			}
		}
		return "", false
	}
	return "", false
}

// ControlNumber returns the record's 001 value, or "" if there is none.
func ControlNumber(rec marc.Record) string {
	for _, f := range rec.CtrlFields {
		if f.Tag == TagControlNumber {
			return strings.TrimSpace(f.Value)
		}
	}
	return ""
}

// Attach returns a copy of rec carrying the fields of st.
//
// An empty statement yields an unmodified copy, so records whose holdings
// text could not be parsed pass through unchanged.
func Attach(rec *marc.Record, st model.Statement) (marc.Record, error) {
	if rec == nil {
		return marc.Record{}, ErrNilRecord
	}

	out := Clone(*rec)
	if st.IsEmpty() || st.Caption == nil {
		return out, nil
	}

	for _, r := range st.Records {
		addOrderedField(&out, EnumerationField(r))
	}
	addOrderedField(&out, CaptionField(*st.Caption))
	addOrderedControlField(&out, marc.CField{Tag: TagPhysical, Value: physicalText})

	return out, nil
}

// EnumerationField builds the 863 field of one record.
func EnumerationField(r model.EnumerationRecord) marc.DField {
	ind1, ind2 := r.Indicators()
	return marc.DField{
		Tag:       TagEnumeration,
		Ind1:      ind1,
		Ind2:      ind2,
		SubFields: subfields(r.LinkNumber(), r.Subfields()),
	}
}

// CaptionField builds the 853 field of a caption.
func CaptionField(c model.CaptionRecord) marc.DField {
	ind1, ind2 := c.Indicators()
	return marc.DField{
		Tag:       TagCaption,
		Ind1:      ind1,
		Ind2:      ind2,
		SubFields: subfields(c.LinkNumber(), c.Subfields()),
	}
}

func subfields(link string, values []model.Subfield) []marc.SubField {
	out := make([]marc.SubField, 0, len(values)+1)
	out = append(out, marc.SubField{Code: model.LinkField, Value: link})
	for _, v := range values {
		out = append(out, marc.SubField{Code: v.Code, Value: v.Value})
	}
	return out
}

// Clone returns a deep copy of rec.
func Clone(rec marc.Record) marc.Record {
	out := rec
	out.CtrlFields = append([]marc.CField(nil), rec.CtrlFields...)
	out.DataFields = make([]marc.DField, len(rec.DataFields))
	for i, f := range rec.DataFields {
		f.SubFields = append([]marc.SubField(nil), f.SubFields...)
		out.DataFields[i] = f
	}
	return out
}

// addOrderedField inserts f before the first data field with a greater tag.
func addOrderedField(rec *marc.Record, f marc.DField) {
	i := 0
	for i < len(rec.DataFields) && rec.DataFields[i].Tag <= f.Tag {
		i++
	}
	rec.DataFields = append(rec.DataFields, marc.DField{})
	copy(rec.DataFields[i+1:], rec.DataFields[i:])
	rec.DataFields[i] = f
}

// addOrderedControlField inserts f before the first control field with a
// greater tag.
func addOrderedControlField(rec *marc.Record, f marc.CField) {
	i := 0
	for i < len(rec.CtrlFields) && rec.CtrlFields[i].Tag <= f.Tag {
		i++
	}
	rec.CtrlFields = append(rec.CtrlFields, marc.CField{})
	copy(rec.CtrlFields[i+1:], rec.CtrlFields[i:])
	rec.CtrlFields[i] = f
}
