package mfhd

import (
	"errors"
	"testing"

	"github.com/boutros/marc"
	"github.com/handiism/marc-holdings/internal/holdings"
	"github.com/handiism/marc-holdings/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(holdingsText string) marc.Record {
	return marc.Record{
		CtrlFields: []marc.CField{
			{Tag: "001", Value: "ocm12345"},
			{Tag: "008", Value: "980101c19989999xx"},
		},
		DataFields: []marc.DField{
			{Tag: "245", Ind1: "0", Ind2: "0", SubFields: []marc.SubField{{Code: "a", Value: "Journal of Tests"}}},
			{Tag: "866", Ind1: " ", Ind2: "0", SubFields: []marc.SubField{{Code: "a", Value: holdingsText}}},
			{Tag: "900", Ind1: " ", Ind2: " ", SubFields: []marc.SubField{{Code: "a", Value: "local"}}},
		},
	}
}

func tags(rec marc.Record) []string {
	var out []string
	for _, f := range rec.DataFields {
		out = append(out, f.Tag)
	}
	return out
}

func TestHoldingsText(t *testing.T) {
	text, ok := HoldingsText(testRecord("1998: 1 (Jan)"))
	assert.True(t, ok)
	assert.Equal(t, "1998: 1 (Jan)", text)

	_, ok = HoldingsText(marc.Record{})
	assert.False(t, ok)

	noA := marc.Record{DataFields: []marc.DField{{Tag: "866", SubFields: []marc.SubField{{Code: "z", Value: "note"}}}}}
	_, ok = HoldingsText(noA)
	assert.False(t, ok)
}

func TestControlNumber(t *testing.T) {
	assert.Equal(t, "ocm12345", ControlNumber(testRecord("")))
	assert.Equal(t, "", ControlNumber(marc.Record{}))
}

func TestAttach(t *testing.T) {
	rec := testRecord("1998: 1 (Jan), 2 (Feb); 1999: 3 (Mar-Apr)")
	text, _ := HoldingsText(rec)

	out, err := Attach(&rec, holdings.Convert(text))
	require.NoError(t, err)

	assert.Equal(t, []string{"245", "853", "863", "863", "863", "866", "900"}, tags(out))

	caption := out.DataFields[1]
	assert.Equal(t, "2", caption.Ind1)
	assert.Equal(t, "0", caption.Ind2)
	assert.Equal(t, []marc.SubField{
		{Code: "8", Value: "1"},
		{Code: "a", Value: "(year)"},
		{Code: "b", Value: "no."},
		{Code: "c", Value: "(month)"},
	}, caption.SubFields)

	first := out.DataFields[2]
	assert.Equal(t, "4", first.Ind1)
	assert.Equal(t, "1", first.Ind2)
	assert.Equal(t, []marc.SubField{
		{Code: "8", Value: "1.1"},
		{Code: "a", Value: "1998"},
		{Code: "b", Value: "1"},
		{Code: "c", Value: "jan"},
	}, first.SubFields)

	last := out.DataFields[4]
	assert.Equal(t, "0", last.Ind2, "month range should use the range indicator")
	assert.Equal(t, "1.3", last.SubFields[0].Value)

	require.Len(t, out.CtrlFields, 3)
	assert.Equal(t, "001", out.CtrlFields[0].Tag)
	assert.Equal(t, "007", out.CtrlFields[1].Tag)
	assert.Equal(t, "ta", out.CtrlFields[1].Value)
	assert.Equal(t, "008", out.CtrlFields[2].Tag)

	// The source record is left untouched.
	assert.Equal(t, []string{"245", "866", "900"}, tags(rec))
	assert.Len(t, rec.CtrlFields, 2)
}

func TestAttach_EmptyStatement(t *testing.T) {
	rec := testRecord("not a holdings statement")

	out, err := Attach(&rec, holdings.Convert("not a holdings statement"))
	require.NoError(t, err)
	assert.Equal(t, tags(rec), tags(out))
	assert.Len(t, out.CtrlFields, 2)
}

func TestAttach_NilRecord(t *testing.T) {
	_, err := Attach(nil, model.Statement{})
	assert.True(t, errors.Is(err, ErrNilRecord))
}

func TestClone_IsDeep(t *testing.T) {
	rec := testRecord("1998: 1 (Jan)")
	clone := Clone(rec)
	clone.DataFields[0].SubFields[0].Value = "changed"
	clone.CtrlFields[0].Value = "changed"

	assert.Equal(t, "Journal of Tests", rec.DataFields[0].SubFields[0].Value)
	assert.Equal(t, "ocm12345", rec.CtrlFields[0].Value)
}
