// Package convert orchestrates batch conversion of MARC files: every record
// carrying a textual holdings statement (866) gains the structured 863, 853
// and 007 fields derived from it.
//
// # Manager
//
// The Manager coordinates the whole run:
//
//  1. Read the input container (ISO 2709, MARCXML or line MARC)
//  2. Convert records concurrently
//  3. Render the results in the configured output format
//  4. Write them next to the input or to an explicit path
//
// # Basic Usage
//
//	manager := convert.NewManager(settings, logger, func(event convert.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize(ctx, "serials.mrc"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := manager.Convert(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	path, err := manager.Write(ctx, "")
//
// # Concurrency
//
// settings.Workers bounds how many records are converted in parallel.
// Results are stored by record position, so output order always equals
// input order.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// GetProgress returns the processed, total, converted and skipped counters
// and is safe to call while Convert runs.
package convert
