package render

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/boutros/marc"
	ioutils "github.com/handiism/marc-holdings/internal/io"
	"github.com/handiism/marc-holdings/internal/model"
	"gopkg.in/yaml.v3"
)

// Format represents a supported output format.
type Format int

const (
	// FormatText writes records in mnemonic MARC, separated by blank lines.
	FormatText Format = iota

	// FormatJSON writes a JSON report of the converted statements.
	FormatJSON

	// FormatYAML writes a YAML report of the converted statements.
	FormatYAML

	// FormatMARC writes ISO2709 binary MARC.
	FormatMARC

	// FormatMARCXML writes a MARCXML collection.
	FormatMARCXML

	// FormatLine writes line-mode MARC.
	FormatLine
)

var formatNames = map[string]Format{
	"text":    FormatText,
	"json":    FormatJSON,
	"yaml":    FormatYAML,
	"marc":    FormatMARC,
	"marcxml": FormatMARCXML,
	"line":    FormatLine,
}

// FormatNames lists the accepted format names.
func FormatNames() []string {
	return []string{"text", "json", "yaml", "marc", "marcxml", "line"}
}

// ParseFormat returns the Format with the given name.
func ParseFormat(name string) (Format, error) {
	f, ok := formatNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return FormatText, fmt.Errorf("unknown output format %q (want one of %s)", name, strings.Join(FormatNames(), ", "))
	}
	return f, nil
}

// String returns the format name.
func (f Format) String() string {
	for name, format := range formatNames {
		if format == f {
			return name
		}
	}
	return "text"
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatYAML:
		return ".yaml"
	case FormatMARC:
		return ".mrc"
	case FormatMARCXML:
		return ".xml"
	case FormatLine:
		return ".line"
	default:
		return ".txt"
	}
}

// container returns the MARC container format, if f is one.
func (f Format) container() (marc.Format, bool) {
	switch f {
	case FormatMARC:
		return marc.MARC, true
	case FormatMARCXML:
		return marc.MARCXML, true
	case FormatLine:
		return marc.LineMARC, true
	default:
		return 0, false
	}
}

// Entry is one converted record.
type Entry struct {
	// Position is the 1-based position of the record in the input file.
	Position int `json:"position" yaml:"position"`

	// ControlNumber is the record's 001, if any.
	ControlNumber string `json:"control_number,omitempty" yaml:"control_number,omitempty"`

	// Holdings is the source 866 $a text.
	Holdings string `json:"holdings" yaml:"holdings"`

	// Statement is the encoded statement.
	Statement model.Statement `json:"statement" yaml:"statement"`

	// Record is the host record with the encoded fields attached.
	Record marc.Record `json:"-" yaml:"-"`
}

// Renderer writes entries in one output format.
type Renderer struct {
	format Format
}

// NewRenderer creates a Renderer for the given format.
func NewRenderer(format Format) *Renderer {
	return &Renderer{format: format}
}

// Format returns the renderer's output format.
func (r *Renderer) Format() Format {
	return r.format
}

// Render writes all entries to w.
func (r *Renderer) Render(ctx context.Context, w io.Writer, entries []Entry) error {
	if container, ok := r.format.container(); ok {
		records := make([]marc.Record, len(entries))
		for i, e := range entries {
			records[i] = e.Record
		}
		return ioutils.EncodeRecords(ctx, w, container, records)
	}

	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		return r.renderText(ctx, w, entries)
	}
}

// renderText writes every record in mnemonic form, separated by a blank line.
func (r *Renderer) renderText(ctx context.Context, w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(w, Mnemonic(e.Record)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Mnemonic renders a record in mnemonic MARC:
//
//	=LDR  00000cas a2200000 a 4500
//	=001  ocm12345
//	=853  20$81$a(year)$bno.$c(month)
//	=863  41$81.1$a1998$b1$cjan
//
// Blank indicators are written as a backslash.
func Mnemonic(rec marc.Record) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("=LDR  %v\n", rec.Leader))
	for _, f := range rec.CtrlFields {
		sb.WriteString(fmt.Sprintf("=%s  %s\n", f.Tag, strings.ReplaceAll(f.Value, " ", "\\")))
	}
	for _, f := range rec.DataFields {
		sb.WriteString(fmt.Sprintf("=%s  %s%s", f.Tag, indicator(f.Ind1), indicator(f.Ind2)))
		for _, sf := range f.SubFields {
			sb.WriteString("$" + sf.Code + sf.Value)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func indicator(ind string) string {
	if strings.TrimSpace(ind) == "" {
		return "\\"
	}
	return ind
}
