package ioutils

import (
	"os"
	"strings"

	"github.com/pbnjay/gomarc"
)

// HoldingsLine is one holdings statement found by ScanHoldings.
type HoldingsLine struct {
	// Position is the 1-based position of the record in the file.
	Position int `json:"position"`

	// Title is the record's 245 $a, trimmed of trailing punctuation.
	Title string `json:"title"`

	// Statement is the 866 $a holdings text.
	Statement string `json:"statement"`
}

// ScanHoldings lists the first 866 $a of every record in a binary MARC file.
// Records without an 866 are not listed.
func ScanHoldings(path string) ([]HoldingsLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []HoldingsLine
	position := 0
	mr := gomarc.NewReader(f)
	for mr.Next() {
		position++
		statement, ok := mr.GetField("866", "a")
		if !ok {
			continue
		}
		title, _ := mr.GetField("245", "a")
		lines = append(lines, HoldingsLine{
			Position:  position,
			Title:     strings.TrimRight(strings.TrimSpace(title), " /:;,."),
			Statement: strings.TrimSpace(statement),
		})
	}
	if mr.Err != nil {
		return lines, mr.Err
	}
	return lines, nil
}
