package domain

// RunReport summarizes one ingest run for the JSON run history. Field names
// match the run log entries the previous pipeline produced, so existing
// history files stay readable.
type RunReport struct {
	RunID           string `json:"run_id"`
	StartedAt       string `json:"started_at"`
	FinishedAt      string `json:"finished_at"`
	Status          string `json:"status"`
	BAIFile         string `json:"bai_file"`
	BalanceRows     int    `json:"balances_rows"`
	TransactionRows int    `json:"transaction_rows"`
	BalancesCSV     string `json:"balances_csv,omitempty"`
	TransactionsCSV string `json:"transactions_csv,omitempty"`
	ReportXLSX      string `json:"report_xlsx,omitempty"`
	Error           string `json:"error,omitempty"`
}

// Run statuses recorded in the run history.
const (
	RunStatusSuccess = "success"
	RunStatusError   = "error"
)
