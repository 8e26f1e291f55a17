package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/boutros/marc"
	"github.com/google/uuid"
	"github.com/handiism/marc-holdings/internal/config"
	"github.com/handiism/marc-holdings/internal/holdings"
	ioutils "github.com/handiism/marc-holdings/internal/io"
	"github.com/handiism/marc-holdings/internal/logging"
	"github.com/handiism/marc-holdings/internal/mfhd"
	"github.com/handiism/marc-holdings/internal/render"
	"golang.org/x/sync/errgroup"
)

// ErrNotInitialized is returned when Convert or Write is called before any
// records were loaded.
var ErrNotInitialized = errors.New("convert: manager not initialized")

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a conversion progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager coordinates batch conversion of a MARC file.
type Manager struct {
	settings *config.Settings
	renderer *render.Renderer
	logger   *slog.Logger
	runID    string

	path         string
	sourceFormat marc.Format
	records      []marc.Record
	entries      []render.Entry
	initialized  bool

	total     int32
	processed int32
	converted int32
	skipped   int32

	onProgress func(ProgressEvent)
	mu         sync.RWMutex
}

// NewManager creates a new conversion Manager. A nil logger discards logs.
func NewManager(settings *config.Settings, logger *slog.Logger, onProgress func(ProgressEvent)) *Manager {
	runID := uuid.NewString()
	return &Manager{
		settings:   settings,
		renderer:   render.NewRenderer(settings.Format()),
		logger:     logging.NewComponentLogger(logger, "convert").With(slog.String(logging.FieldRunID, runID)),
		runID:      runID,
		onProgress: onProgress,
	}
}

// RunID identifies this manager's run in log output.
func (m *Manager) RunID() string {
	return m.runID
}

// Initialize reads all records from the MARC file at path.
func (m *Manager) Initialize(ctx context.Context, path string) error {
	m.progress(ProgressEvent{Message: fmt.Sprintf("Reading %s", path), Level: LevelVerbose})

	records, format, err := ioutils.ReadRecords(ctx, path)
	if err != nil {
		m.logger.Error("read input failed", slog.String(logging.FieldPath, path), logging.Error(err))
		return fmt.Errorf("read %s: %w", path, err)
	}

	m.mu.Lock()
	m.path = path
	m.sourceFormat = format
	m.mu.Unlock()

	m.Load(records)

	m.logger.Info("input loaded", slog.String(logging.FieldPath, path), slog.Int("records", len(records)))
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d records in %s", len(records), path), Level: LevelInfo})
	return nil
}

// Load replaces the records to convert and resets all counters.
func (m *Manager) Load(records []marc.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = records
	m.entries = nil
	m.initialized = true
	atomic.StoreInt32(&m.total, int32(len(records)))
	atomic.StoreInt32(&m.processed, 0)
	atomic.StoreInt32(&m.converted, 0)
	atomic.StoreInt32(&m.skipped, 0)
}

// Convert processes all loaded records concurrently.
//
// Records without an 866 are skipped unless settings.KeepUnmatched is set.
// Records whose statement yields no issues are kept unmodified. A failing
// record is reported and left out; the rest of the batch continues.
func (m *Manager) Convert(ctx context.Context) error {
	m.mu.RLock()
	records := m.records
	initialized := m.initialized
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}

	results := make([]*render.Entry, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, m.settings.Workers))

	for i := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = m.convertRecord(i+1, records[i])
			atomic.AddInt32(&m.processed, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	entries := make([]render.Entry, 0, len(results))
	for _, entry := range results {
		if entry != nil {
			entries = append(entries, *entry)
		}
	}

	m.mu.Lock()
	m.entries = entries
	m.mu.Unlock()

	processed, total, converted, skipped := m.GetProgress()
	m.logger.Info("conversion finished",
		slog.Int("processed", int(processed)),
		slog.Int("total", int(total)),
		slog.Int("converted", int(converted)),
		slog.Int("skipped", int(skipped)),
	)
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Converted %d of %d records (%d skipped)", converted, total, skipped),
		Level:   LevelSuccess,
	})
	return nil
}

func (m *Manager) convertRecord(position int, rec marc.Record) *render.Entry {
	controlNumber := mfhd.ControlNumber(rec)
	logger := m.logger.With(slog.Int(logging.FieldPosition, position), slog.String(logging.FieldControlNumber, controlNumber))

	text, ok := mfhd.HoldingsText(rec)
	if !ok {
		atomic.AddInt32(&m.skipped, 1)
		logger.Debug("record has no holdings statement")
		if !m.settings.KeepUnmatched {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping record %d (%s): no 866", position, label(controlNumber)), Level: LevelVerbose})
			return nil
		}
		return &render.Entry{Position: position, ControlNumber: controlNumber, Record: mfhd.Clone(rec)}
	}

	st := holdings.Convert(text)
	out, err := mfhd.Attach(&rec, st)
	if err != nil {
		logger.Error("attach fields failed", logging.Error(err))
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error converting record %d (%s): %v", position, label(controlNumber), err), Level: LevelError})
		return nil
	}

	if st.IsEmpty() {
		logger.Warn("no issues recognized", slog.String("holdings", text))
		m.progress(ProgressEvent{Message: fmt.Sprintf("No issues recognized in record %d (%s): %q", position, label(controlNumber), text), Level: LevelWarning})
	} else {
		atomic.AddInt32(&m.converted, 1)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Converted record %d (%s): %d issues", position, label(controlNumber), len(st.Records)), Level: LevelVerbose})
	}

	return &render.Entry{
		Position:      position,
		ControlNumber: controlNumber,
		Holdings:      text,
		Statement:     st,
		Record:        out,
	}
}

// Entries returns the converted records in input order.
func (m *Manager) Entries() []render.Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries
}

// OutputPath returns the file Write uses when given an empty path:
// settings.OutputPath if set, else the input path with the format's extension.
func (m *Manager) OutputPath() string {
	if m.settings.OutputPath != "" {
		return m.settings.OutputPath
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return ioutils.OutputPath(m.path, m.renderer.Format().Extension())
}

// Write renders the converted records to path, or to OutputPath() when path
// is empty, and returns the path written.
func (m *Manager) Write(ctx context.Context, path string) (string, error) {
	m.mu.RLock()
	initialized := m.initialized
	entries := m.entries
	m.mu.RUnlock()

	if !initialized {
		return "", ErrNotInitialized
	}
	if path == "" {
		path = m.OutputPath()
	}

	var buf bytes.Buffer
	if err := m.renderer.Render(ctx, &buf, entries); err != nil {
		return "", fmt.Errorf("render %s: %w", m.renderer.Format(), err)
	}
	if err := ioutils.WriteFile(ctx, path, buf.Bytes()); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	m.logger.Info("output written", slog.String(logging.FieldPath, path), slog.Int("entries", len(entries)))
	m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote %d records to %s", len(entries), path), Level: LevelSuccess})
	return path, nil
}

// GetProgress returns current conversion progress.
func (m *Manager) GetProgress() (processed, total, converted, skipped int32) {
	return atomic.LoadInt32(&m.processed), atomic.LoadInt32(&m.total),
		atomic.LoadInt32(&m.converted), atomic.LoadInt32(&m.skipped)
}

// SourceFormat returns the container format detected by Initialize.
func (m *Manager) SourceFormat() marc.Format {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sourceFormat
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}

func label(controlNumber string) string {
	if controlNumber == "" {
		return "no 001"
	}
	return controlNumber
}
