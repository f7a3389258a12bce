// Package gedcom provides parsing of GEDCOM genealogy files into typed
// individuals and families with resolved cross-references.
package gedcom

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Record is a single tagged line from a GEDCOM file.
type Record struct {
	// Level is the nesting level (0 for top-level entities)
	Level int
	// Tag is the record tag, normalized to upper case (INDI, FAM, NAME, ...)
	Tag string
	// XRef is the cross-reference identifier for top-level records,
	// with the surrounding '@' markers stripped (e.g. "I1")
	XRef string
	// Value is the remainder of the line after the tag
	Value string
	// Line is the 1-based source line number
	Line int
}

// ReadRecords tokenizes GEDCOM content into an ordered record sequence.
// Lines that do not start with an integer level are skipped rather than
// failing the read; only I/O errors are returned.
func ReadRecords(r io.Reader) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		rec, ok := parseLine(line)
		if !ok {
			continue
		}
		rec.Line = lineNo
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return records, nil
}

// parseLine splits a GEDCOM line into level, optional xref, tag and value.
// Grammar: LEVEL [@XREF@] TAG [VALUE]
func parseLine(line string) (Record, bool) {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 {
		return Record{}, false
	}

	level, err := strconv.Atoi(parts[0])
	if err != nil || level < 0 {
		return Record{}, false
	}

	rec := Record{Level: level}
	if isXRef(parts[1]) {
		// "0 @I1@ INDI" form
		if len(parts) < 3 {
			return Record{}, false
		}
		rec.XRef = strings.Trim(parts[1], "@")
		tagParts := strings.SplitN(parts[2], " ", 2)
		rec.Tag = strings.ToUpper(tagParts[0])
		if len(tagParts) > 1 {
			rec.Value = strings.TrimSpace(tagParts[1])
		}
	} else {
		rec.Tag = strings.ToUpper(parts[1])
		if len(parts) > 2 {
			rec.Value = strings.TrimSpace(parts[2])
		}
	}

	return rec, true
}

func isXRef(s string) bool {
	return len(s) > 2 && strings.HasPrefix(s, "@") && strings.HasSuffix(s, "@")
}

// trimXRef strips the '@' markers from a cross-reference value.
// Values like "@I1@" appear on HUSB/WIFE/CHIL/FAMC/FAMS records.
func trimXRef(s string) string {
	return strings.Trim(strings.TrimSpace(s), "@")
}
