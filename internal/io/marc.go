package ioutils

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/boutros/marc"
)

// sniffSize is how many leading bytes are inspected to detect the format.
const sniffSize = 64

// ErrUnknownFormat is returned when a file is not ISO2709, MARCXML or line MARC.
var ErrUnknownFormat = errors.New("unknown MARC format")

// DetectFormat inspects the first bytes of r and rewinds it.
func DetectFormat(r io.ReadSeeker) (marc.Format, error) {
	sniff := make([]byte, sniffSize)
	n, err := io.ReadFull(r, sniff)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return 0, err
	}
	if n == 0 {
		return 0, ErrUnknownFormat
	}

	format := marc.DetectFormat(sniff[:n])
	switch format {
	case marc.MARC, marc.LineMARC, marc.MARCXML:
	default:
		return 0, ErrUnknownFormat
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return format, nil
}

// ReadRecords decodes every record of a MARC file.
//
// The container format is detected from the file contents and returned so
// that callers can write results back in the same format. Cancellation is
// checked between records.
func ReadRecords(ctx context.Context, path string) ([]marc.Record, marc.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	format, err := DetectFormat(f)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	var records []marc.Record
	dec := marc.NewDecoder(bufio.NewReader(f), format)
	for {
		if err := ctx.Err(); err != nil {
			return nil, format, err
		}
		rec, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, format, fmt.Errorf("decode record %d: %w", len(records)+1, err)
		}
		records = append(records, rec)
	}

	return records, format, nil
}

// WriteRecords encodes records to path in the given container format.
func WriteRecords(ctx context.Context, path string, format marc.Format, records []marc.Record) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := EncodeRecords(ctx, f, format, records); err != nil {
		return err
	}
	return f.Close()
}

// EncodeRecords encodes records to w in the given container format.
func EncodeRecords(ctx context.Context, w io.Writer, format marc.Format, records []marc.Record) error {
	enc := marc.NewEncoder(w, format)
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode record %d: %w", i+1, err)
		}
	}
	enc.Flush()
	return nil
}
