package bai2

import (
	"errors"

	"github.com/sirupsen/logrus"

	"bank-ingest/internal/domain"
)

// Parser parses complete BAI2 files. It holds no per-file state: each Parse
// call is independent and shares nothing mutable, so distinct files may be
// parsed in parallel with distinct calls.
//
// In strict mode (the default) an unrecognized record type code fails the
// file. Permissive mode logs and skips such records instead; they stay out
// of the output rows and out of every control total, but still count toward
// trailer record counts because the format counts every physical record.
type Parser struct {
	Permissive bool
	Log        *logrus.Logger
}

// New returns a strict parser logging through log.
func New(log *logrus.Logger) *Parser {
	return &Parser{Log: log}
}

// Parse parses the complete content of one BAI2 file into a validated tree.
// filename is used only for error and log context. On any fatal condition
// the returned error is a *domain.ParseError wrapping the typed failure;
// no partial result is ever returned.
func (p *Parser) Parse(filename string, content []byte) (*domain.File, error) {
	records, err := joinLines(string(content))
	if err != nil {
		return nil, p.wrap(filename, err)
	}

	asm := newAssembler()
	lastLine := 0
	for _, rec := range records {
		lastLine = rec.line
		typed, err := decode(rec)
		if err != nil {
			var unknown *domain.UnknownRecordTypeError
			if p.Permissive && errors.As(err, &unknown) {
				p.log().WithFields(logrus.Fields{
					"file":        filename,
					"line":        unknown.Line,
					"record_type": unknown.TypeCode,
				}).Warn("skipping unrecognized record type")
				asm.skip(rec.records)
				continue
			}
			return nil, p.wrap(filename, err)
		}
		if err := asm.feed(typed); err != nil {
			return nil, p.wrap(filename, err)
		}
	}

	file, err := asm.finish(lastLine)
	if err != nil {
		return nil, p.wrap(filename, err)
	}
	return file, nil
}

func (p *Parser) log() *logrus.Logger {
	if p.Log != nil {
		return p.Log
	}
	return logrus.StandardLogger()
}

// wrap builds the single aggregated failure returned to the caller, pulling
// line and record type context out of whichever typed error occurred.
func (p *Parser) wrap(filename string, err error) error {
	pe := &domain.ParseError{File: filename, Err: err}

	var structural *domain.StructuralError
	var format *domain.FieldFormatError
	var checksum *domain.ChecksumMismatchError
	var unknown *domain.UnknownRecordTypeError
	switch {
	case errors.As(err, &structural):
		pe.Line = structural.Line
		pe.RecordType = structural.Got
	case errors.As(err, &format):
		pe.Line = format.Line
		pe.RecordType = format.RecordType
	case errors.As(err, &checksum):
		pe.Line = checksum.Line
	case errors.As(err, &unknown):
		pe.Line = unknown.Line
		pe.RecordType = unknown.TypeCode
	}
	return pe
}
