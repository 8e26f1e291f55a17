package holdings

import (
	"testing"

	"github.com/handiism/marc-holdings/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantIssues  []model.Issue
		wantRanges  []bool
		wantLayout  model.Layout
		wantCaption bool
	}{
		{
			name:        "single issue with month caption",
			input:       "1998: 1 (Jan)",
			wantIssues:  []model.Issue{{Year: "1998", Number: "1", Month: "jan"}},
			wantRanges:  []bool{false},
			wantLayout:  model.Layout{Number: true, Month: true},
			wantCaption: true,
		},
		{
			name:  "seasons only",
			input: "1999: (Spring), (Summer)",
			wantIssues: []model.Issue{
				{Year: "1999", Month: "21"},
				{Year: "1999", Month: "22"},
			},
			wantRanges:  []bool{false, false},
			wantLayout:  model.Layout{Month: true},
			wantCaption: true,
		},
		{
			name:        "volume with issue range and season",
			input:       "2000: 2 (1-2 Win)",
			wantIssues:  []model.Issue{{Year: "2000", Volume: "2", Number: "1-2", Month: "24"}},
			wantRanges:  []bool{true},
			wantLayout:  model.Layout{Volume: true, Number: true, Month: true},
			wantCaption: true,
		},
		{
			name:  "not a holdings statement",
			input: "not a holdings statement",
		},
		{
			name:  "all tokens unrecognized",
			input: "2001: 1 (A), 2 (B); 2002: 1 (C)",
		},
		{
			name:  "several years with month ranges",
			input: "1998: 1 (Jan), 2 (Feb); 1999: 3 (Mar-Apr)",
			wantIssues: []model.Issue{
				{Year: "1998", Number: "1", Month: "jan"},
				{Year: "1998", Number: "2", Month: "feb"},
				{Year: "1999", Number: "3", Month: "mar-apr"},
			},
			wantRanges:  []bool{false, false, true},
			wantLayout:  model.Layout{Number: true, Month: true},
			wantCaption: true,
		},
		{
			name:  "bracketed seasons inside a volume",
			input: "2004: 7 ([Spring], [Summer])",
			wantIssues: []model.Issue{
				{Year: "2004", Volume: "7", Month: "21"},
				{Year: "2004", Volume: "7", Month: "22"},
			},
			wantRanges:  []bool{false, false},
			wantLayout:  model.Layout{Volume: true, Month: true},
			wantCaption: true,
		},
		{
			name:  "issue list with numbers only",
			input: "v. held 2010:12 (1, 2, 3-4)",
			wantIssues: []model.Issue{
				{Year: "2010", Volume: "12", Number: "1"},
				{Year: "2010", Volume: "12", Number: "2"},
				{Year: "2010", Volume: "12", Number: "3-4"},
			},
			wantRanges:  []bool{false, false, true},
			wantLayout:  model.Layout{Volume: true, Number: true},
			wantCaption: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Convert(tt.input)

			require.Len(t, st.Records, len(tt.wantIssues))
			for i, rec := range st.Records {
				assert.Equal(t, tt.wantIssues[i], rec.Issue)
				assert.Equal(t, i+1, rec.Sequence)
				assert.Equal(t, tt.wantRanges[i], rec.Range)
				assert.Equal(t, tt.wantLayout, rec.Layout)
			}

			if !tt.wantCaption {
				assert.Nil(t, st.Caption)
				assert.True(t, st.IsEmpty())
				return
			}
			require.NotNil(t, st.Caption)
			assert.Equal(t, tt.wantLayout, st.Caption.Layout)
		})
	}
}

func TestParseStatement_NoMatch(t *testing.T) {
	assert.Empty(t, ParseStatement(""))
	assert.Empty(t, ParseStatement("1998 without colon (1)"))
	assert.Empty(t, ParseStatement("98: 1 (Jan)"))
}

func TestParseStatement_EmptyIssueList(t *testing.T) {
	assert.Empty(t, ParseStatement("2003: 4 ()"))
	assert.Empty(t, ParseStatement("2003: 4 ( , ,  )"))
}

func TestExtractIssue(t *testing.T) {
	tests := []struct {
		token  string
		want   issueDescriptor
		wantOK bool
	}{
		{"3", issueDescriptor{Number: "3"}, true},
		{"3 (Mar-Apr)", issueDescriptor{Number: "3", Month: "mar-apr"}, true},
		{"12   Summer", issueDescriptor{Number: "12", Month: "22"}, true},
		{"[Autumn]", issueDescriptor{Month: "23"}, true},
		{"[Winter/Spring]", issueDescriptor{Month: "24/21"}, true},
		{"Spring", issueDescriptor{}, false},
		{"", issueDescriptor{}, false},
		{"no. 5", issueDescriptor{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := extractIssue(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanIssueMonth(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Spring", "21"},
		{"spr", "21"},
		{" SUMMER ", "22"},
		{"Sum", "22"},
		{"Autumn", "23"},
		{"Autum", "23"},
		{"aut", "23"},
		{"Winter", "24"},
		{"Win-Spr", "24-21"},
		{"[Jan]", "jan"},
		{"Mar-Apr", "mar-apr"},
		{"August", "august"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanIssueMonth(tt.input))
		})
	}
}

func TestCleanIssueMonth_Idempotent(t *testing.T) {
	for _, input := range []string{"Spring", "Summer", "Autumn", "Winter", "Win-Spr", "Jan"} {
		once := cleanIssueMonth(input)
		assert.Equal(t, once, cleanIssueMonth(once), "input %q", input)
	}
}

func TestIsChronology(t *testing.T) {
	assert.True(t, isChronology("Jan"))
	assert.True(t, isChronology("Mar-Apr"))
	assert.True(t, isChronology(" Spring "))
	assert.True(t, isChronology("Sept./Oct."))
	assert.False(t, isChronology("A"))
	assert.False(t, isChronology("1-2 Win"))
	assert.False(t, isChronology("[Spring]"))
	assert.False(t, isChronology(""))
}

func TestEncodeStatement_SkipsEmptyIssues(t *testing.T) {
	st := EncodeStatement([]model.Issue{
		{Year: "1998", Number: "1"},
		{},
		{Year: "1998", Number: "2"},
		{},
	})

	require.Len(t, st.Records, 2)
	assert.Equal(t, 1, st.Records[0].Sequence)
	assert.Equal(t, 2, st.Records[1].Sequence)
	assert.Equal(t, "2", st.Records[1].Number)
}

func TestEncodeStatement_OnlyEmptyIssues(t *testing.T) {
	st := EncodeStatement([]model.Issue{{}, {}})
	assert.Empty(t, st.Records)
	assert.Nil(t, st.Caption)
}

func TestEncodeStatement_GlobalLayout(t *testing.T) {
	st := EncodeStatement([]model.Issue{
		{Year: "1998", Number: "1", Month: "jan"},
		{Year: "1999", Volume: "4", Number: "2"},
	})

	require.Len(t, st.Records, 2)
	first := st.Records[0].Subfields()
	require.Len(t, first, 4)
	assert.Equal(t, model.Subfield{Code: "b", Value: ""}, first[1])
	assert.Equal(t, model.Subfield{Code: "c", Value: "1"}, first[2])
	assert.Equal(t, model.Subfield{Code: "d", Value: "jan"}, first[3])

	second := st.Records[1].Subfields()
	require.Len(t, second, 4)
	assert.Equal(t, model.Subfield{Code: "b", Value: "4"}, second[1])
	assert.Equal(t, model.Subfield{Code: "d", Value: ""}, second[3])

	require.NotNil(t, st.Caption)
	caption := st.Caption.Subfields()
	require.Len(t, caption, 4)
	for i := range caption {
		assert.Equal(t, caption[i].Code, first[i].Code)
	}
}

func TestEncodeStatement_RangeFlag(t *testing.T) {
	st := EncodeStatement([]model.Issue{
		{Year: "1998", Number: "3-4"},
		{Year: "1998", Month: "mar-apr"},
		{Year: "1998", Number: "5", Month: "may"},
	})

	require.Len(t, st.Records, 3)
	assert.True(t, st.Records[0].Range)
	assert.True(t, st.Records[1].Range)
	assert.False(t, st.Records[2].Range)
}
