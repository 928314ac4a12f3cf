package csvfile

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"spot-guide/models"
)

// candidateDelimiters in Prioritätsreihenfolge bei Gleichstand.
var candidateDelimiters = []rune{',', ';', '\t', '|'}

// DetectDelimiter zählt die Kandidaten in der Kopfzeile außerhalb von Anführungszeichen.
func DetectDelimiter(headerLine string) rune {
	counts := make(map[rune]int, len(candidateDelimiters))
	quoted := false
	for _, r := range headerLine {
		if r == '"' {
			quoted = !quoted
			continue
		}
		if !quoted {
			counts[r]++
		}
	}
	best, bestCount := ',', 0
	for _, d := range candidateDelimiters {
		if counts[d] > bestCount {
			best, bestCount = d, counts[d]
		}
	}
	return best
}

// ParseTable liest eine Tabelle mit Kopfzeile. delimiter 0 bedeutet automatische Erkennung.
func ParseTable(r io.Reader, delimiter rune) (*models.RawTable, error) {
	br := bufio.NewReader(r)
	if delimiter == 0 {
		peek, _ := br.Peek(4096)
		line := string(peek)
		if i := strings.IndexAny(line, "\r\n"); i >= 0 {
			line = line[:i]
		}
		delimiter = DetectDelimiter(line)
	}

	reader := csv.NewReader(br)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, models.ErrNoColumns
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := make([]string, len(header))
	for i, c := range header {
		columns[i] = strings.TrimSpace(strings.TrimPrefix(c, "\ufeff"))
	}
	if len(columns) == 1 && columns[0] == "" {
		return nil, models.ErrNoColumns
	}

	table := &models.RawTable{Columns: columns}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(table.Records)+1, err)
		}
		if blankRow(row) {
			continue
		}
		table.Records = append(table.Records, models.RawRecord(row))
	}
	return table, nil
}

// ParseBytes ist ParseTable für Daten im Speicher.
func ParseBytes(data []byte, delimiter rune) (*models.RawTable, error) {
	return ParseTable(bytes.NewReader(data), delimiter)
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
