// Package mfhd attaches encoded holdings statements to MARC records.
//
// It is the bridge between the pure holdings encoder and the record model of
// github.com/boutros/marc:
//
//	text, ok := mfhd.HoldingsText(rec)      // first 866 $a
//	st := holdings.Convert(text)
//	out, err := mfhd.Attach(&rec, st)       // copy with 853, 863s and 007
//
// Fields added by Attach:
//   - 863 per enumeration record: ind1 "4", ind2 "0" (range) or "1",
//     $8 "1.<sequence>", $a year, then volume/number/month subfields
//   - 853 caption: ind "2" "0", $8 "1", $a "(year)", then "v.", "no.", "(month)"
//   - 007 control field "ta" (text, regular print)
//
// The input record is never modified.
package mfhd
