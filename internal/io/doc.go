// Package ioutils provides file system and MARC container utilities.
//
// This package contains functions for:
//   - Detecting the container format of a MARC file (ISO2709, MARCXML, line MARC)
//   - Decoding and encoding MARC records
//   - Scanning a file for its 866 holdings statements
//   - Output path derivation, file writing and directory creation
//
// # Reading Records
//
//	records, format, err := ioutils.ReadRecords(ctx, "/data/serials.mrc")
//
// # Writing Records
//
//	err := ioutils.WriteRecords(ctx, "/data/serials.out.mrc", marc.MARC, records)
//
// # Scanning
//
// ScanHoldings lists the holdings statements of a binary MARC file without
// building full records:
//
//	lines, err := ioutils.ScanHoldings("/data/serials.mrc")
//	for _, l := range lines {
//	    fmt.Println(l.Position, l.Title, l.Statement)
//	}
package ioutils
