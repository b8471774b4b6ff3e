package usecase

import (
	"context"

	"bank-ingest/internal/domain"
)

// The usecase depends on these boundaries, not on concrete gateways: the
// SFTP drop, the CSV outputs, the XLSX report and the run history are all
// replaceable collaborators.
//
//go:generate mockgen -destination=mocks/mock_interfaces.go -source=interface.go

// FileSource yields the name and complete content of one settlement file.
// Transport and retry concerns live behind this interface.
type FileSource interface {
	Fetch(ctx context.Context) (name string, content []byte, err error)
}

// RowWriter persists the two flattened row sequences and returns the
// output paths.
type RowWriter interface {
	WriteBalances(baseName string, rows []domain.BalanceRow) (string, error)
	WriteTransactions(baseName string, rows []domain.TransactionRow) (string, error)
}

// ReportWriter persists a combined review artifact for both row sequences.
type ReportWriter interface {
	Write(baseName string, balances []domain.BalanceRow, transactions []domain.TransactionRow) (string, error)
}

// RunRecorder appends a run report to the run history.
type RunRecorder interface {
	Append(report domain.RunReport) error
}
