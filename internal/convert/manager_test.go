package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/boutros/marc"
	"github.com/handiism/marc-holdings/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings(t *testing.T) *config.Settings {
	t.Helper()
	s := config.DefaultSettings()
	s.Workers = 4
	return s
}

func holdingsRecord(id, statement string) marc.Record {
	rec := marc.Record{CtrlFields: []marc.CField{{Tag: "001", Value: id}}}
	if statement != "" {
		rec.DataFields = []marc.DField{
			{Tag: "866", Ind1: " ", Ind2: "0", SubFields: []marc.SubField{{Code: "a", Value: statement}}},
		}
	}
	return rec
}

func TestManager_ConvertKeepsInputOrder(t *testing.T) {
	var records []marc.Record
	for i := 0; i < 50; i++ {
		records = append(records, holdingsRecord(fmt.Sprintf("rec%02d", i), fmt.Sprintf("%d: %d (Jan)", 1950+i, i+1)))
	}

	m := NewManager(testSettings(t), nil, nil)
	m.Load(records)
	require.NoError(t, m.Convert(context.Background()))

	entries := m.Entries()
	require.Len(t, entries, 50)
	for i, entry := range entries {
		assert.Equal(t, i+1, entry.Position)
		assert.Equal(t, fmt.Sprintf("rec%02d", i), entry.ControlNumber)
		require.Len(t, entry.Statement.Records, 1)
		assert.Equal(t, fmt.Sprintf("%d", 1950+i), entry.Statement.Records[0].Year)
	}

	processed, total, converted, skipped := m.GetProgress()
	assert.EqualValues(t, 50, processed)
	assert.EqualValues(t, 50, total)
	assert.EqualValues(t, 50, converted)
	assert.EqualValues(t, 0, skipped)
}

func TestManager_SkipsRecordsWithoutHoldings(t *testing.T) {
	records := []marc.Record{
		holdingsRecord("a", "1998: 1 (Jan)"),
		holdingsRecord("b", ""),
		holdingsRecord("c", "not a holdings statement"),
	}

	var mu sync.Mutex
	var events []ProgressEvent
	m := NewManager(testSettings(t), nil, func(e ProgressEvent) {
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
	})
	m.Load(records)
	require.NoError(t, m.Convert(context.Background()))

	entries := m.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].ControlNumber)
	assert.Equal(t, "c", entries[1].ControlNumber)
	assert.True(t, entries[1].Statement.IsEmpty())
	assert.Len(t, entries[1].Record.DataFields, 1, "unrecognized statement leaves the record unmodified")

	_, _, converted, skipped := m.GetProgress()
	assert.EqualValues(t, 1, converted)
	assert.EqualValues(t, 1, skipped)

	var warned bool
	for _, e := range events {
		if e.Level == LevelWarning && strings.Contains(e.Message, "No issues recognized") {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestManager_KeepUnmatched(t *testing.T) {
	s := testSettings(t)
	s.KeepUnmatched = true

	m := NewManager(s, nil, nil)
	m.Load([]marc.Record{holdingsRecord("a", ""), holdingsRecord("b", "2000: 2 (1-2 Win)")})
	require.NoError(t, m.Convert(context.Background()))

	entries := m.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].ControlNumber)
	assert.Empty(t, entries[0].Holdings)
	assert.Equal(t, "b", entries[1].ControlNumber)
}

func TestManager_NotInitialized(t *testing.T) {
	m := NewManager(testSettings(t), nil, nil)

	assert.True(t, errors.Is(m.Convert(context.Background()), ErrNotInitialized))
	_, err := m.Write(context.Background(), filepath.Join(t.TempDir(), "out.txt"))
	assert.True(t, errors.Is(err, ErrNotInitialized))
}

func TestManager_ConvertCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewManager(testSettings(t), nil, nil)
	m.Load([]marc.Record{holdingsRecord("a", "1998: 1 (Jan)")})
	assert.ErrorIs(t, m.Convert(ctx), context.Canceled)
}

func TestManager_Write(t *testing.T) {
	s := testSettings(t)
	s.OutputFormat = "text"

	m := NewManager(s, nil, nil)
	m.Load([]marc.Record{holdingsRecord("ocm1", "1998: 1 (Jan)")})
	require.NoError(t, m.Convert(context.Background()))

	path := filepath.Join(t.TempDir(), "out", "holdings.txt")
	written, err := m.Write(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "=001  ocm1")
	assert.Contains(t, string(data), "=007  ta")
	assert.Contains(t, string(data), "=863  41$81.1$a1998$b1$cjan")
	assert.Contains(t, string(data), "=853  20$81$a(year)$bno.$c(month)")
}

func TestManager_OutputPath(t *testing.T) {
	s := testSettings(t)
	s.OutputFormat = "json"

	m := NewManager(s, nil, nil)
	m.path = "/data/serials.mrc"
	assert.Equal(t, "/data/serials.json", m.OutputPath())

	s.OutputPath = "/tmp/explicit.json"
	assert.Equal(t, "/tmp/explicit.json", m.OutputPath())
}

func TestManager_RunID(t *testing.T) {
	a := NewManager(testSettings(t), nil, nil)
	b := NewManager(testSettings(t), nil, nil)
	assert.NotEmpty(t, a.RunID())
	assert.NotEqual(t, a.RunID(), b.RunID())
}
