// Package render writes converted holdings records in the supported output
// formats.
//
// Formats:
//   - text: mnemonic MARC ("=863  41$81.1$a1998$b1$cjan"), one record per
//     paragraph
//   - json, yaml: a report of every converted statement
//   - marc, marcxml, line: MARC containers (ISO2709, MARCXML, line MARC)
//
// Example:
//
//	r := render.NewRenderer(render.FormatText)
//	err := r.Render(ctx, os.Stdout, entries)
//
// StatementTable and HoldingsTable render go-pretty tables for the CLI.
package render
