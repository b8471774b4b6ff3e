package domain

import "fmt"

// StructuralError reports a violation of the BAI2 record hierarchy: a
// missing or out-of-order header or trailer, or a continuation record with
// no eligible predecessor. Always fatal for the file.
type StructuralError struct {
	Line     int
	Expected string
	Got      string
	Reason   string
}

func (e *StructuralError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("structural error at line %d: expected %s record, got %s", e.Line, e.Expected, e.Got)
	}
	return fmt.Sprintf("structural error at line %d: %s", e.Line, e.Reason)
}

// FieldFormatError reports a field that fails to parse against its expected
// shape: a non-numeric amount, an invalid date, or a code outside its
// closed table.
type FieldFormatError struct {
	RecordType string
	Line       int
	Field      string
	Value      string
	Reason     string
}

func (e *FieldFormatError) Error() string {
	return fmt.Sprintf("record %s at line %d: field %s %q: %s",
		e.RecordType, e.Line, e.Field, e.Value, e.Reason)
}

// ChecksumMismatchError reports a trailer whose declared control total or
// record count disagrees with the value recomputed from its children. Never
// auto-corrected; the whole file is rejected.
type ChecksumMismatchError struct {
	Entity   string // e.g. "account 0975312468", "group 121000358", "file"
	Quantity string // "control total" or "record count"
	Line     int
	Declared int64
	Computed int64
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("%s %s mismatch at line %d: declared %d, computed %d",
		e.Entity, e.Quantity, e.Line, e.Declared, e.Computed)
}

// UnknownRecordTypeError reports a record type code outside the closed
// table. Fatal in strict mode; in permissive mode the record is skipped
// with a warning.
type UnknownRecordTypeError struct {
	TypeCode string
	Line     int
}

func (e *UnknownRecordTypeError) Error() string {
	return fmt.Sprintf("unknown record type %q at line %d", e.TypeCode, e.Line)
}

// ParseError is the single failure surface the parser returns to its
// caller. It wraps one of the typed errors above together with the file
// name and position, so the orchestrator can report the run failure without
// re-deriving context.
type ParseError struct {
	File       string
	Line       int
	RecordType string
	Err        error
}

func (e *ParseError) Error() string {
	if e.RecordType != "" {
		return fmt.Sprintf("parse %s: line %d, record %s: %v", e.File, e.Line, e.RecordType, e.Err)
	}
	return fmt.Sprintf("parse %s: line %d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
