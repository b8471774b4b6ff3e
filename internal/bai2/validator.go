package bai2

import "bank-ingest/internal/domain"

// checkTrailer compares a trailer's declared control total and record count
// against the values recomputed from its children:
//
//   - account control total = sum of balance item amounts + transaction
//     amounts; group total = sum of account trailer totals; file total =
//     sum of group trailer totals
//   - record count = every physical record the unit encloses, including
//     its own header and trailer and any 88 continuation records
//
// A mismatch in bank-supplied financial data is never corrected or
// partially reported; it invalidates the enclosing unit and with it the
// whole file.
func checkTrailer(entity string, line int, declared *trailerRecord, computedTotal int64, computedCount int) error {
	if declared.controlTotal != computedTotal {
		return &domain.ChecksumMismatchError{
			Entity:   entity,
			Quantity: "control total",
			Line:     line,
			Declared: declared.controlTotal,
			Computed: computedTotal,
		}
	}
	if declared.recordCount != computedCount {
		return &domain.ChecksumMismatchError{
			Entity:   entity,
			Quantity: "record count",
			Line:     line,
			Declared: int64(declared.recordCount),
			Computed: int64(computedCount),
		}
	}
	return nil
}
