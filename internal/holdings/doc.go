// Package holdings converts free-text serial holdings statements into
// structured enumeration/chronology records.
//
// The package has two stages:
//
//  1. ParseStatement splits a statement such as
//     "1998: 1 (Jan), 2 (Feb); 1999: 3 (Mar-Apr)" into year groups and issue
//     tokens, and normalizes each token into an issue number and month.
//  2. EncodeStatement numbers the parsed issues, flags ranges, and lays every
//     record out against one statement-wide Layout, adding a caption record.
//
// Both stages are pure: no I/O, no shared state, safe for concurrent use.
//
// # Parsing
//
//	issues := holdings.ParseStatement("2000: 2 (1-2 Win)")
//	// [{Year:2000 Volume:2 Number:1-2 Month:24}]
//
// Tokens that start with neither a digit nor a bracket are dropped. Season
// names become two-digit codes: spring 21, summer 22, autumn 23, winter 24.
//
// # Encoding
//
//	st := holdings.EncodeStatement(issues)
//	for _, rec := range st.Records {
//	    fmt.Println(rec.Sequence, rec.Subfields())
//	}
//
// A statement without any recognizable year group encodes to an empty
// Statement with a nil Caption.
package holdings
