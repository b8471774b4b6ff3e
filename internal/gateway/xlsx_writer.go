package gateway

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"bank-ingest/internal/domain"
)

// XLSXReportWriter writes a review workbook with a Balances and a
// Transactions sheet. The transactions sheet uses the bank's own export
// layout (readable dates, type labels, split credit/debit columns), the
// format the AR team pastes into their tracking spreadsheet.
type XLSXReportWriter struct {
	OutputDir string
}

// NewXLSXReportWriter creates a writer targeting outputDir.
func NewXLSXReportWriter(outputDir string) *XLSXReportWriter {
	return &XLSXReportWriter{OutputDir: outputDir}
}

// Write writes <base>_report.xlsx and returns the output path.
func (w *XLSXReportWriter) Write(baseName string, balances []domain.BalanceRow, transactions []domain.TransactionRow) (string, error) {
	path := filepath.Join(w.OutputDir, baseName+"_report.xlsx")

	f := excelize.NewFile()
	defer f.Close()

	const balanceSheet = "Balances"
	const transactionSheet = "Transactions"
	if err := f.SetSheetName("Sheet1", balanceSheet); err != nil {
		return "", fmt.Errorf("rename balances sheet: %w", err)
	}
	if _, err := f.NewSheet(transactionSheet); err != nil {
		return "", fmt.Errorf("create transactions sheet: %w", err)
	}

	balanceRows := [][]interface{}{{
		"As-of Date", "Account Number", "Currency", "Balance Type", "Amount",
		"Item Count", "Funds Type", "Account Control Total",
	}}
	for _, r := range balances {
		balanceRows = append(balanceRows, []interface{}{
			formatBAIDate(r.AsOfDate), r.CustomerAccount, r.Currency, r.BalanceTypeCode,
			MinorUnits(r.BalanceAmount), r.BalanceItemCount, r.BalanceFundsType,
			MinorUnits(r.AccountControlTotal),
		})
	}
	if err := writeSheet(f, balanceSheet, balanceRows); err != nil {
		return "", err
	}

	transactionRows := [][]interface{}{{
		"Date", "Bank ID", "Account Number", "Tran Type", "BAI Type Code",
		"Currency", "Credit Amount", "Debit Amount", "Bank Ref #",
		"Customer Ref #", "Description",
	}}
	for _, r := range transactions {
		credit, debit := "", ""
		if domain.IsCreditCode(r.TypeCode) {
			credit = MinorUnits(r.Amount)
		} else {
			debit = MinorUnits(r.Amount)
		}
		transactionRows = append(transactionRows, []interface{}{
			formatBAIDate(r.AsOfDate), r.GroupOriginatorID, r.CustomerAccount,
			domain.TypeCodeLabel(r.TypeCode), r.TypeCode, r.Currency,
			credit, debit, r.BankRef, r.CustomerRef, r.Text,
		})
	}
	if err := writeSheet(f, transactionSheet, transactionRows); err != nil {
		return "", err
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook %s: %w", path, err)
	}
	return path, nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write sheet %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// formatBAIDate converts a YYMMDD wire date to M/D/YYYY without leading
// zeros, matching the bank's exports. Unparseable input passes through
// unchanged.
func formatBAIDate(raw string) string {
	t, err := time.Parse("060102", raw)
	if err != nil {
		return raw
	}
	return fmt.Sprintf("%d/%d/%d", t.Month(), t.Day(), t.Year())
}
