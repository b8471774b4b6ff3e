package domain

import "strconv"

// BAI2 record type codes. The format defines a closed set.
const (
	RecordFileHeader     = "01"
	RecordGroupHeader    = "02"
	RecordAccountHeader  = "03"
	RecordTransaction    = "16"
	RecordAccountTrailer = "49"
	RecordContinuation   = "88"
	RecordGroupTrailer   = "98"
	RecordFileTrailer    = "99"
)

// Funds type codes indicate when funds become available.
const (
	FundsImmediate      = "0"
	FundsOneDay         = "1"
	FundsTwoDay         = "2"
	FundsDistributedAvl = "S" // followed by immediate/one-day/two-day amounts
	FundsValueDated     = "V" // followed by value date and time
	FundsDistributedDay = "D" // followed by a count and (days, amount) pairs
	FundsUnknownAvl     = "Z"
)

// GroupStatusCodes is the closed table of valid group header status codes.
var GroupStatusCodes = map[string]string{
	"1": "Update",
	"2": "Deletion",
	"3": "Correction",
	"4": "Test Only",
}

// AsOfDateModifiers is the closed table of as-of-date modifier codes. The
// field is optional, so the empty string is also accepted.
var AsOfDateModifiers = map[string]string{
	"1": "Interim previous day",
	"2": "Final previous day",
	"3": "Interim same day",
	"4": "Final same day",
}

// ValidFundsType reports whether code is a member of the funds type table.
// An empty code is valid: the field is optional on both balance items and
// transaction details.
func ValidFundsType(code string) bool {
	switch code {
	case "", FundsImmediate, FundsOneDay, FundsTwoDay,
		FundsDistributedAvl, FundsValueDated, FundsDistributedDay, FundsUnknownAvl:
		return true
	}
	return false
}

// IsCreditCode reports whether a BAI2 transaction type code represents a
// credit (money in). Codes 100-399 are credits, 400-699 are debits.
func IsCreditCode(typeCode string) bool {
	n, err := strconv.Atoi(typeCode)
	if err != nil {
		return false
	}
	return n >= 100 && n <= 399
}

// typeCodeLabels maps the transaction type codes seen in SVB settlement
// files to the labels the bank uses on its own exports.
var typeCodeLabels = map[string]string{
	"169": "ACH CREDIT",
	"174": "Miscellaneous ACH Credit",
	"195": "WIRE TRANSFER CREDIT",
	"214": "FX Wire Transfer Credit",
	"301": "MOBILE DEPOSIT",
	"469": "ACH DEBIT",
	"495": "WIRE TRANSFER DEBIT",
	"496": "FX Wire Transfer Debit",
	"575": "ZERO BAL TRF DEBIT",
}

// TypeCodeLabel returns a human-readable label for a transaction type code,
// falling back to the credit/debit range when the code is not in the table.
func TypeCodeLabel(typeCode string) string {
	if label, ok := typeCodeLabels[typeCode]; ok {
		return label
	}
	if IsCreditCode(typeCode) {
		return "Credit (" + typeCode + ")"
	}
	return "Debit (" + typeCode + ")"
}
