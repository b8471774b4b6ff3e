package bai2

import (
	"strconv"
	"strings"
	"time"

	"bank-ingest/internal/domain"
)

// recordKind enumerates the decoded record variants. The table is closed:
// the format defines exactly these types, and 88 continuations never reach
// the decoder because the line joiner folds them away.
type recordKind int

const (
	kindFileHeader recordKind = iota
	kindGroupHeader
	kindAccountHeader
	kindTransaction
	kindAccountTrailer
	kindGroupTrailer
	kindFileTrailer
)

// typedRecord is the decoded form of one logical record. Exactly one of the
// payload pointers is set, according to kind.
type typedRecord struct {
	kind    recordKind
	line    int
	records int

	file        *domain.File
	group       *domain.Group
	account     *domain.Account
	transaction *domain.Transaction
	trailer     *trailerRecord
}

// trailerRecord carries the declared checksums of a 49, 98 or 99 record.
type trailerRecord struct {
	controlTotal int64
	recordCount  int
}

// decode dispatches a logical record to its type-specific decoder.
func decode(rec logicalRecord) (typedRecord, error) {
	switch rec.typeCode {
	case domain.RecordFileHeader:
		return decodeFileHeader(rec)
	case domain.RecordGroupHeader:
		return decodeGroupHeader(rec)
	case domain.RecordAccountHeader:
		return decodeAccountHeader(rec)
	case domain.RecordTransaction:
		return decodeTransaction(rec)
	case domain.RecordAccountTrailer:
		return decodeTrailer(rec, kindAccountTrailer)
	case domain.RecordGroupTrailer:
		return decodeTrailer(rec, kindGroupTrailer)
	case domain.RecordFileTrailer:
		return decodeTrailer(rec, kindFileTrailer)
	}
	return typedRecord{}, &domain.UnknownRecordTypeError{TypeCode: rec.typeCode, Line: rec.line}
}

// decodeFileHeader decodes an 01 record:
// 01,sender,receiver,date,time,resend indicator,record size,blocking factor,version/
func decodeFileHeader(rec logicalRecord) (typedRecord, error) {
	d := decoder{rec: rec}
	f := &domain.File{
		SenderID:        d.field(1),
		ReceiverID:      d.field(2),
		CreationDate:    d.date(3, "file creation date", true),
		CreationTime:    d.clock(4, "file creation time"),
		ResendIndicator: d.field(5),
		RecordSize:      d.digits(6, "physical record length"),
		BlockingFactor:  d.digits(7, "block size"),
		VersionNumber:   d.digits(8, "version number"),
	}
	if f.SenderID == "" {
		d.fail("sender id", "", "must not be empty")
	}
	if err := d.err(); err != nil {
		return typedRecord{}, err
	}
	return typedRecord{kind: kindFileHeader, line: rec.line, records: rec.records, file: f}, nil
}

// decodeGroupHeader decodes an 02 record:
// 02,receiver,originator,status,as-of date,as-of time,currency,as-of modifier/
func decodeGroupHeader(rec logicalRecord) (typedRecord, error) {
	d := decoder{rec: rec}
	g := &domain.Group{
		ReceiverID:   d.field(1),
		OriginatorID: d.field(2),
		Status:       d.field(3),
		AsOfDate:     d.date(4, "as-of date", true),
		AsOfTime:     d.clock(5, "as-of time"),
		Currency:     d.currency(6),
		AsOfModifier: d.field(7),
	}
	if _, ok := domain.GroupStatusCodes[g.Status]; !ok {
		d.fail("group status", g.Status, "not in the group status table")
	}
	if g.AsOfModifier != "" {
		if _, ok := domain.AsOfDateModifiers[g.AsOfModifier]; !ok {
			d.fail("as-of-date modifier", g.AsOfModifier, "not in the modifier table")
		}
	}
	if err := d.err(); err != nil {
		return typedRecord{}, err
	}
	return typedRecord{kind: kindGroupHeader, line: rec.line, records: rec.records, group: g}, nil
}

// decodeAccountHeader decodes an 03 record: the account number and currency
// followed by repeating balance items of type code, amount, item count and
// funds type (with availability sub-fields where the funds type calls for
// them).
func decodeAccountHeader(rec logicalRecord) (typedRecord, error) {
	d := decoder{rec: rec}
	a := &domain.Account{
		Number:   d.field(1),
		Currency: d.currency(2),
	}
	if a.Number == "" {
		d.fail("customer account", "", "must not be empty")
	}

	i := 3
	for i < len(rec.fields) {
		typeCode := d.field(i)
		i++
		if typeCode == "" {
			// Filler columns from a sparse header; skip the item.
			i += 3
			continue
		}
		if !allDigits(typeCode) || len(typeCode) > 3 {
			d.fail("balance type code", typeCode, "not a BAI2 balance type code")
			break
		}
		bal := domain.Balance{
			TypeCode:  typeCode,
			Amount:    d.amount(i, "balance amount"),
			ItemCount: d.count(i+1, "balance item count"),
		}
		i += 2
		bal.Funds, i = d.fundsType(i)
		a.Balances = append(a.Balances, bal)
	}

	if err := d.err(); err != nil {
		return typedRecord{}, err
	}
	return typedRecord{kind: kindAccountHeader, line: rec.line, records: rec.records, account: a}, nil
}

// decodeTransaction decodes a 16 record:
// 16,type code,amount,funds type[,availability...],bank ref,customer ref,text/
// Everything after the customer reference is narrative and may itself
// contain commas.
func decodeTransaction(rec logicalRecord) (typedRecord, error) {
	d := decoder{rec: rec}
	t := &domain.Transaction{TypeCode: d.field(1)}

	if n, err := strconv.Atoi(t.TypeCode); err != nil || n < 100 || n > 999 {
		d.fail("transaction type code", t.TypeCode, "not a BAI2 transaction type code")
	}
	t.Amount = d.amount(2, "transaction amount")

	i := 3
	t.Funds, i = d.fundsType(i)
	t.BankRef = d.field(i)
	t.CustomerRef = d.field(i + 1)
	if i+2 < len(rec.fields) {
		t.Text = strings.Join(rec.fields[i+2:], ",")
	}

	if err := d.err(); err != nil {
		return typedRecord{}, err
	}
	return typedRecord{kind: kindTransaction, line: rec.line, records: rec.records, transaction: t}, nil
}

// decodeTrailer decodes a 49, 98 or 99 record: the declared control total
// followed by the declared record count.
func decodeTrailer(rec logicalRecord, kind recordKind) (typedRecord, error) {
	d := decoder{rec: rec}
	tr := &trailerRecord{
		controlTotal: d.amount(1, "control total"),
		recordCount:  d.count(2, "record count"),
	}
	if d.field(2) == "" {
		d.fail("record count", "", "must not be empty")
	}
	if err := d.err(); err != nil {
		return typedRecord{}, err
	}
	return typedRecord{kind: kind, line: rec.line, records: rec.records, trailer: tr}, nil
}

// decoder accumulates field accessors and the first format violation for
// one logical record.
type decoder struct {
	rec      logicalRecord
	firstErr error
}

func (d *decoder) field(i int) string {
	if i < len(d.rec.fields) {
		return d.rec.fields[i]
	}
	return ""
}

func (d *decoder) fail(name, value, reason string) {
	if d.firstErr == nil {
		d.firstErr = &domain.FieldFormatError{
			RecordType: d.rec.typeCode,
			Line:       d.rec.line,
			Field:      name,
			Value:      value,
			Reason:     reason,
		}
	}
}

func (d *decoder) err() error { return d.firstErr }

// amount parses a signed integer in minor currency units. An absent or
// empty field is zero.
func (d *decoder) amount(i int, name string) int64 {
	s := d.field(i)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		d.fail(name, s, "not a signed integer amount")
		return 0
	}
	return v
}

// count parses a non-negative integer. An absent or empty field is zero.
func (d *decoder) count(i int, name string) int {
	s := d.field(i)
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		d.fail(name, s, "not a record or item count")
		return 0
	}
	return v
}

// date validates a YYMMDD calendar date and returns it as-is.
func (d *decoder) date(i int, name string, required bool) string {
	s := d.field(i)
	if s == "" {
		if required {
			d.fail(name, s, "must not be empty")
		}
		return s
	}
	if _, err := time.Parse("060102", s); err != nil {
		d.fail(name, s, "not a YYMMDD calendar date")
	}
	return s
}

// clock validates an HHMM time of day and returns it as-is. 2400 and 9999
// are accepted as the format's end-of-day markers.
func (d *decoder) clock(i int, name string) string {
	s := d.field(i)
	if s == "" || s == "2400" || s == "9999" {
		return s
	}
	if len(s) != 4 || !allDigits(s) {
		d.fail(name, s, "not an HHMM time of day")
		return s
	}
	hh, _ := strconv.Atoi(s[:2])
	mm, _ := strconv.Atoi(s[2:])
	if hh > 23 || mm > 59 {
		d.fail(name, s, "not an HHMM time of day")
	}
	return s
}

// digits validates an optional all-digit field and returns it as-is.
func (d *decoder) digits(i int, name string) string {
	s := d.field(i)
	if s != "" && !allDigits(s) {
		d.fail(name, s, "not an unsigned integer")
	}
	return s
}

// currency validates an optional ISO currency code.
func (d *decoder) currency(i int) string {
	s := d.field(i)
	if s == "" {
		return s
	}
	if len(s) != 3 || !allLetters(s) {
		d.fail("currency code", s, "not a three-letter currency code")
	}
	return s
}

// fundsType reads a funds type code at field i and consumes its
// availability sub-fields: three amounts for "S", value date and time for
// "V", and a count followed by (days, amount) pairs for "D". Returns the
// index of the first field after the funds type.
func (d *decoder) fundsType(i int) (domain.FundsType, int) {
	ft := domain.FundsType{}
	if i >= len(d.rec.fields) {
		return ft, i
	}
	ft.Code = d.rec.fields[i]
	if !domain.ValidFundsType(ft.Code) {
		d.fail("funds type", ft.Code, "not in the funds type table")
		return ft, i + 1
	}
	i++

	switch ft.Code {
	case domain.FundsDistributedAvl:
		ft.Immediate = d.amount(i, "immediate availability")
		ft.OneDay = d.amount(i+1, "one-day availability")
		ft.TwoDay = d.amount(i+2, "two-day availability")
		i += 3
	case domain.FundsValueDated:
		ft.ValueDate = d.date(i, "value date", false)
		ft.ValueTime = d.clock(i+1, "value time")
		i += 2
	case domain.FundsDistributedDay:
		n := d.count(i, "distribution count")
		i++
		for j := 0; j < n && i < len(d.rec.fields); j++ {
			ft.Distributions = append(ft.Distributions, domain.Distribution{
				Days:   d.count(i, "distribution days"),
				Amount: d.amount(i+1, "distribution amount"),
			})
			i += 2
		}
	}
	return ft, i
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func allLetters(s string) bool {
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
