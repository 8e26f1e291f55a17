package holdings

import "github.com/handiism/marc-holdings/internal/model"

// EncodeStatement turns parsed issues into enumeration records and a caption.
//
// Encoding takes two passes:
//  1. The Layout is computed over all issues: a category is present if any
//     issue carries a value for it.
//  2. Issues are emitted in order with sequence numbers 1..N. Issues with all
//     four fields empty are skipped and do not consume a sequence number.
//
// The caption is set only when at least one record was emitted.
//
// Example:
//
//	st := EncodeStatement([]model.Issue{
//	    {Year: "1998", Number: "1", Month: "jan"},
//	    {Year: "1998", Volume: "4", Number: "2-3"},
//	})
//	// st.Records[0]: $a 1998 $b "" $c 1 $d jan, sequence 1
//	// st.Records[1]: $a 1998 $b 4 $c 2-3 $d "", sequence 2, range
//	// st.Caption:    $a (year) $b v. $c no. $d (month)
func EncodeStatement(issues []model.Issue) model.Statement {
	layout := scanLayout(issues)

	var st model.Statement
	sequence := 1
	for _, issue := range issues {
		if issue.IsEmpty() {
			continue
		}
		st.Records = append(st.Records, model.EnumerationRecord{
			Issue:    issue,
			Sequence: sequence,
			Range:    issue.IsRange(),
			Layout:   layout,
		})
		sequence++
	}

	if len(st.Records) > 0 {
		st.Caption = &model.CaptionRecord{Layout: layout}
	}
	return st
}

// Convert parses and encodes a holdings statement in one step.
func Convert(text string) model.Statement {
	return EncodeStatement(ParseStatement(text))
}

// scanLayout computes which optional categories occur across all issues.
func scanLayout(issues []model.Issue) model.Layout {
	var layout model.Layout
	for _, issue := range issues {
		if issue.Volume != "" {
			layout.Volume = true
		}
		if issue.Number != "" {
			layout.Number = true
		}
		if issue.Month != "" {
			layout.Month = true
		}
	}
	return layout
}
