package bai2

import "bank-ingest/internal/domain"

// assembler nests decoded records into a File tree. It is an explicit stack
// of at most three open entities (file, group, account) driven by one
// record per step, with no lookahead: malformed nesting surfaces as a stack
// discipline violation at the offending record, not as a failure deep in a
// call chain.
type assembler struct {
	state state

	file    *domain.File
	group   *domain.Group
	account *domain.Account

	// Running physical record counts and control totals for each open
	// level. Counts include headers, trailers and continuation records,
	// per the format's counting rule.
	fileRecords  int
	groupRecords int
	acctRecords  int
	groupTotal   int64
	fileTotal    int64
	acctTotal    int64
}

type state int

const (
	awaitFile state = iota
	awaitGroup
	awaitAccount
	inAccount
	done
)

// expecting names the record types acceptable in a state, for error
// messages.
func (s state) expecting() string {
	switch s {
	case awaitFile:
		return "01 (file header)"
	case awaitGroup:
		return "02 (group header) or 99 (file trailer)"
	case awaitAccount:
		return "03 (account identifier) or 98 (group trailer)"
	case inAccount:
		return "16, 03 balances, or 49 (account trailer)"
	}
	return "end of file"
}

func newAssembler() *assembler {
	return &assembler{state: awaitFile}
}

// feed advances the machine by one decoded record.
func (a *assembler) feed(rec typedRecord) error {
	switch rec.kind {
	case kindFileHeader:
		if a.state != awaitFile {
			return a.unexpected(rec, domain.RecordFileHeader)
		}
		a.file = rec.file
		a.fileRecords = rec.records
		a.fileTotal = 0
		a.state = awaitGroup

	case kindGroupHeader:
		if a.state != awaitGroup {
			return a.unexpected(rec, domain.RecordGroupHeader)
		}
		a.group = rec.group
		a.groupRecords = rec.records
		a.groupTotal = 0
		a.state = awaitAccount

	case kindAccountHeader:
		if a.state != awaitAccount {
			return a.unexpected(rec, domain.RecordAccountHeader)
		}
		a.account = rec.account
		a.acctRecords = rec.records
		a.acctTotal = 0
		for _, bal := range a.account.Balances {
			a.acctTotal += bal.Amount
		}
		a.state = inAccount

	case kindTransaction:
		if a.state != inAccount {
			return a.unexpected(rec, domain.RecordTransaction)
		}
		a.account.Transactions = append(a.account.Transactions, *rec.transaction)
		a.acctTotal += rec.transaction.Amount
		a.acctRecords += rec.records

	case kindAccountTrailer:
		if a.state != inAccount {
			return a.unexpected(rec, domain.RecordAccountTrailer)
		}
		a.acctRecords += rec.records
		a.account.ControlTotal = rec.trailer.controlTotal
		a.account.RecordCount = rec.trailer.recordCount
		if err := checkTrailer("account "+a.account.Number, rec.line,
			rec.trailer, a.acctTotal, a.acctRecords); err != nil {
			return err
		}
		a.group.Accounts = append(a.group.Accounts, *a.account)
		a.groupTotal += rec.trailer.controlTotal
		a.groupRecords += a.acctRecords
		a.account = nil
		a.state = awaitAccount

	case kindGroupTrailer:
		if a.state != awaitAccount {
			return a.unexpected(rec, domain.RecordGroupTrailer)
		}
		a.groupRecords += rec.records
		a.group.ControlTotal = rec.trailer.controlTotal
		a.group.RecordCount = rec.trailer.recordCount
		if err := checkTrailer("group "+a.group.OriginatorID, rec.line,
			rec.trailer, a.groupTotal, a.groupRecords); err != nil {
			return err
		}
		a.file.Groups = append(a.file.Groups, *a.group)
		a.fileTotal += rec.trailer.controlTotal
		a.fileRecords += a.groupRecords
		a.group = nil
		a.state = awaitGroup

	case kindFileTrailer:
		if a.state != awaitGroup {
			return a.unexpected(rec, domain.RecordFileTrailer)
		}
		a.fileRecords += rec.records
		a.file.ControlTotal = rec.trailer.controlTotal
		a.file.RecordCount = rec.trailer.recordCount
		if err := checkTrailer("file", rec.line,
			rec.trailer, a.fileTotal, a.fileRecords); err != nil {
			return err
		}
		a.state = done
	}
	return nil
}

// skip accounts for a record that was excluded from decoding (an unknown
// type code in permissive mode). The format counts every physical record,
// so skipped records still count toward the enclosing trailer's declared
// record count; they contribute nothing to any control total.
func (a *assembler) skip(records int) {
	switch a.state {
	case inAccount:
		a.acctRecords += records
	case awaitAccount:
		a.groupRecords += records
	case awaitGroup:
		a.fileRecords += records
	}
}

// finish yields the validated file, or a structural error naming the
// trailer that never arrived.
func (a *assembler) finish(lastLine int) (*domain.File, error) {
	switch a.state {
	case done:
		return a.file, nil
	case awaitFile:
		return nil, &domain.StructuralError{
			Line: lastLine, Expected: "01 (file header)", Got: "end of input",
		}
	case awaitGroup:
		return nil, &domain.StructuralError{
			Line: lastLine, Expected: "99 (file trailer)", Got: "end of input",
		}
	case awaitAccount:
		return nil, &domain.StructuralError{
			Line: lastLine, Expected: "98 (group trailer)", Got: "end of input",
		}
	default:
		return nil, &domain.StructuralError{
			Line: lastLine, Expected: "49 (account trailer)", Got: "end of input",
		}
	}
}

func (a *assembler) unexpected(rec typedRecord, got string) error {
	if a.state == done {
		return &domain.StructuralError{
			Line: rec.line, Got: got,
			Reason: "record " + got + " after the file trailer",
		}
	}
	return &domain.StructuralError{
		Line:     rec.line,
		Expected: a.state.expecting(),
		Got:      got,
	}
}
