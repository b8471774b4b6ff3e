package gateway

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"bank-ingest/internal/domain"
)

// Column orders match the CSVs the previous pipeline produced, so the
// downstream spreadsheet import keeps working unchanged.
var balanceHeader = []string{
	"file_sender_id", "file_receiver_id", "file_creation_date", "file_creation_time",
	"resend_indicator", "group_originator_id", "group_receiver_id", "group_status",
	"as_of_date", "as_of_time", "as_of_date_modifier", "currency_code",
	"customer_account", "balance_type_code", "balance_amount", "balance_item_count",
	"balance_funds_type", "account_control_total", "account_record_count",
	"group_control_total", "group_record_count", "file_control_total", "file_record_count",
}

var transactionHeader = []string{
	"file_sender_id", "file_receiver_id", "file_creation_date", "file_creation_time",
	"group_originator_id", "group_receiver_id", "as_of_date", "as_of_time",
	"as_of_date_modifier", "customer_account", "currency_code", "type_code",
	"amount", "funds_type", "bank_ref", "customer_ref", "text",
}

// CSVRowWriter writes flattened rows as the two per-file CSV outputs,
// <base>_balances.csv and <base>_transactions.csv, in OutputDir.
type CSVRowWriter struct {
	OutputDir string
}

// NewCSVRowWriter creates a writer targeting outputDir.
func NewCSVRowWriter(outputDir string) *CSVRowWriter {
	return &CSVRowWriter{OutputDir: outputDir}
}

// WriteBalances writes one balance row per balance summary item and returns
// the output path. Amounts and control totals are written as the exact
// minor-unit integers from the wire, so the file reconciles against the
// bank's own trailer values by eye.
func (w *CSVRowWriter) WriteBalances(baseName string, rows []domain.BalanceRow) (string, error) {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.FileSenderID, r.FileReceiverID, r.FileCreationDate, r.FileCreationTime,
			r.ResendIndicator, r.GroupOriginatorID, r.GroupReceiverID, r.GroupStatus,
			r.AsOfDate, r.AsOfTime, r.AsOfModifier, r.Currency,
			r.CustomerAccount, r.BalanceTypeCode,
			strconv.FormatInt(r.BalanceAmount, 10),
			strconv.Itoa(r.BalanceItemCount),
			r.BalanceFundsType,
			strconv.FormatInt(r.AccountControlTotal, 10),
			strconv.Itoa(r.AccountRecordCount),
			strconv.FormatInt(r.GroupControlTotal, 10),
			strconv.Itoa(r.GroupRecordCount),
			strconv.FormatInt(r.FileControlTotal, 10),
			strconv.Itoa(r.FileRecordCount),
		})
	}
	return w.write(baseName+"_balances.csv", balanceHeader, records)
}

// WriteTransactions writes one transaction row per detail record and
// returns the output path. Amounts are rendered in major units with two
// decimal places.
func (w *CSVRowWriter) WriteTransactions(baseName string, rows []domain.TransactionRow) (string, error) {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.FileSenderID, r.FileReceiverID, r.FileCreationDate, r.FileCreationTime,
			r.GroupOriginatorID, r.GroupReceiverID, r.AsOfDate, r.AsOfTime,
			r.AsOfModifier, r.CustomerAccount, r.Currency, r.TypeCode,
			MinorUnits(r.Amount), r.FundsType, r.BankRef, r.CustomerRef, r.Text,
		})
	}
	return w.write(baseName+"_transactions.csv", transactionHeader, records)
}

func (w *CSVRowWriter) write(name string, header []string, records [][]string) (string, error) {
	path := filepath.Join(w.OutputDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("write header to %s: %w", path, err)
	}
	if err := cw.WriteAll(records); err != nil {
		return "", fmt.Errorf("write rows to %s: %w", path, err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flush %s: %w", path, err)
	}
	return path, nil
}

// MinorUnits renders a minor-unit integer amount as a major-unit decimal
// string ("123456" -> "1234.56"). decimal keeps the conversion exact; no
// float is involved.
func MinorUnits(amount int64) string {
	return decimal.New(amount, -2).StringFixed(2)
}
