package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"bank-ingest/internal/bai2"
	"bank-ingest/internal/domain"
)

// IngestUseCase runs one settlement file through the pipeline: fetch,
// parse, flatten, write outputs, record the run. A parse failure is
// terminal for the run — nothing is written for a file that failed
// validation, and the error is reported exactly once.
type IngestUseCase struct {
	source FileSource
	parser *bai2.Parser
	rows   RowWriter
	report ReportWriter // optional
	runLog RunRecorder  // optional
	log    *logrus.Logger
}

// NewIngestUseCase wires the pipeline. report and runLog may be nil to
// disable the XLSX artifact and the run history.
func NewIngestUseCase(source FileSource, parser *bai2.Parser, rows RowWriter, report ReportWriter, runLog RunRecorder, log *logrus.Logger) *IngestUseCase {
	return &IngestUseCase{
		source: source,
		parser: parser,
		rows:   rows,
		report: report,
		runLog: runLog,
		log:    log,
	}
}

// Ingest executes one run and returns its report. The report is appended to
// the run history whether the run succeeded or failed.
func (uc *IngestUseCase) Ingest(ctx context.Context) (*domain.RunReport, error) {
	report := &domain.RunReport{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC().Format(time.RFC3339),
		Status:    domain.RunStatusError,
	}
	defer func() {
		report.FinishedAt = time.Now().UTC().Format(time.RFC3339)
		if uc.runLog == nil {
			return
		}
		if err := uc.runLog.Append(*report); err != nil {
			uc.log.WithError(err).Warn("could not append to run log")
		}
	}()

	name, content, err := uc.source.Fetch(ctx)
	if err != nil {
		report.Error = err.Error()
		return report, fmt.Errorf("fetch settlement file: %w", err)
	}
	report.BAIFile = name
	uc.log.WithField("file", name).Info("parsing settlement file")

	file, err := uc.parser.Parse(name, content)
	if err != nil {
		report.Error = err.Error()
		return report, err
	}

	balances, transactions := bai2.Rows(file)
	report.BalanceRows = len(balances)
	report.TransactionRows = len(transactions)
	uc.log.WithFields(logrus.Fields{
		"balance_rows":     len(balances),
		"transaction_rows": len(transactions),
	}).Info("settlement file validated")

	base := baseName(name)
	if report.BalancesCSV, err = uc.rows.WriteBalances(base, balances); err != nil {
		report.Error = err.Error()
		return report, fmt.Errorf("write balances: %w", err)
	}
	if report.TransactionsCSV, err = uc.rows.WriteTransactions(base, transactions); err != nil {
		report.Error = err.Error()
		return report, fmt.Errorf("write transactions: %w", err)
	}
	if uc.report != nil {
		if report.ReportXLSX, err = uc.report.Write(base, balances, transactions); err != nil {
			report.Error = err.Error()
			return report, fmt.Errorf("write report workbook: %w", err)
		}
	}

	report.Status = domain.RunStatusSuccess
	return report, nil
}

// baseName strips the extension from a settlement file name.
func baseName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
