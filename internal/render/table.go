package render

import (
	"strconv"

	ioutils "github.com/handiism/marc-holdings/internal/io"
	"github.com/handiism/marc-holdings/internal/mfhd"
	"github.com/handiism/marc-holdings/internal/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// StatementTable renders the caption and records of a statement, one field
// per row. It returns "" for an empty statement.
func StatementTable(st model.Statement) string {
	if st.IsEmpty() || st.Caption == nil {
		return ""
	}

	caption := st.Caption.Subfields()
	headers := []string{"Tag", "Ind", "$8"}
	for _, sf := range caption {
		headers = append(headers, "$"+sf.Code)
	}

	ind1, ind2 := st.Caption.Indicators()
	rows := [][]string{fieldRow(mfhd.TagCaption, ind1+ind2, st.Caption.LinkNumber(), caption)}
	for _, rec := range st.Records {
		ind1, ind2 := rec.Indicators()
		rows = append(rows, fieldRow(mfhd.TagEnumeration, ind1+ind2, rec.LinkNumber(), rec.Subfields()))
	}

	return renderTable(headers, rows, nil)
}

func fieldRow(tag, ind, link string, subfields []model.Subfield) []string {
	row := []string{tag, ind, link}
	for _, sf := range subfields {
		row = append(row, sf.Value)
	}
	return row
}

// HoldingsTable renders the result of ioutils.ScanHoldings.
func HoldingsTable(lines []ioutils.HoldingsLine) string {
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{strconv.Itoa(l.Position), l.Title, l.Statement})
	}
	return renderTable([]string{"#", "Title", "Holdings"}, rows, []columnAlignment{alignRight})
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
