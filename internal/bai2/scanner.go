// Package bai2 parses BAI2 bank settlement files into validated
// File/Group/Account/Transaction trees and flattens them into tabular rows.
//
// Parsing is a single forward pass: raw bytes are split into logical
// records (88 continuations folded into the record they extend), each
// logical record is decoded by its type code, a stack state machine nests
// the decoded records, and every trailer's control total and record count
// is recomputed and compared before anything is emitted.
package bai2

import (
	"strings"

	"bank-ingest/internal/domain"
)

// logicalRecord is one BAI2 record with any 88 continuation rows already
// folded in. line is the physical line of the record's first row; records
// is the number of physical records it spans (1 + continuations), which
// trailer record counts must include.
type logicalRecord struct {
	typeCode string
	fields   []string
	line     int
	records  int
}

// joinLines splits raw file content into logical records. A continuation
// row extends only the free-text-capable records (03 balance carriers and
// 16 transaction details); anywhere else it is a structural error.
func joinLines(content string) ([]logicalRecord, error) {
	type rawRecord struct {
		typeCode string
		text     string
		line     int
		records  int
	}

	var merged []rawRecord
	for i, line := range strings.Split(content, "\n") {
		lineNo := i + 1
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		typeCode, _, _ := strings.Cut(line, ",")
		if typeCode == domain.RecordContinuation {
			if len(merged) == 0 {
				return nil, &domain.StructuralError{
					Line:   lineNo,
					Got:    domain.RecordContinuation,
					Reason: "continuation record at start of file",
				}
			}
			prev := &merged[len(merged)-1]
			if prev.typeCode != domain.RecordAccountHeader && prev.typeCode != domain.RecordTransaction {
				return nil, &domain.StructuralError{
					Line:   lineNo,
					Got:    domain.RecordContinuation,
					Reason: "continuation record follows " + prev.typeCode + ", which cannot carry text",
				}
			}
			// Drop the previous record's terminator and append the
			// payload verbatim, exactly as the sender split it.
			prev.text = strings.TrimRight(prev.text, "/") + continuationPayload(line)
			prev.records++
			continue
		}

		merged = append(merged, rawRecord{typeCode: typeCode, text: line, line: lineNo, records: 1})
	}

	records := make([]logicalRecord, 0, len(merged))
	for _, r := range merged {
		records = append(records, logicalRecord{
			typeCode: r.typeCode,
			fields:   splitFields(r.text),
			line:     r.line,
			records:  r.records,
		})
	}
	return records, nil
}

// continuationPayload strips the leading "88," (or bare "88") from a
// continuation row.
func continuationPayload(line string) string {
	if strings.HasPrefix(line, domain.RecordContinuation+",") {
		return line[3:]
	}
	return line[2:]
}

// splitFields splits a logical record into its comma-delimited fields,
// dropping the trailing "/" record terminator and any empty tail it leaves.
func splitFields(line string) []string {
	line = strings.TrimRight(line, "/")
	line = strings.TrimRight(line, ",")
	return strings.Split(line, ",")
}
