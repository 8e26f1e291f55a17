// Package model defines the core data structures used throughout
// the marc-holdings application.
//
// # Issue
//
// Issue is one parsed holdings tuple: the year, volume, issue number and
// issue month of a single issue (or issue range) found in a statement:
//
//	issue := model.Issue{Year: "2000", Volume: "2", Number: "1-2", Month: "24"}
//	fmt.Println(issue.IsRange()) // true
//
// # Statement
//
// Statement is the encoded form of one holdings statement: an ordered list of
// EnumerationRecord values (MARC 863) and a single CaptionRecord (MARC 853):
//
//	for _, rec := range st.Records {
//	    fmt.Println(rec.LinkNumber(), rec.Subfields())
//	}
//	if st.Caption != nil {
//	    fmt.Println(st.Caption.Subfields())
//	}
//
// # Layout
//
// Layout records which enumeration categories (volume, issue number, issue
// month) occur anywhere in a statement. The caption and every record of the
// same statement share one Layout, so subfield codes line up:
//
//	a - year (always)
//	b, c, d - volume, number, month in that order, skipping absent categories
package model
