package domain

// BalanceRow is one flattened balance summary item with the identifying
// context of its file, group and account, plus the validated trailer totals
// of every enclosing level.
type BalanceRow struct {
	FileSenderID        string
	FileReceiverID      string
	FileCreationDate    string
	FileCreationTime    string
	ResendIndicator     string
	GroupOriginatorID   string
	GroupReceiverID     string
	GroupStatus         string
	AsOfDate            string
	AsOfTime            string
	AsOfModifier        string
	Currency            string
	CustomerAccount     string
	BalanceTypeCode     string
	BalanceAmount       int64
	BalanceItemCount    int
	BalanceFundsType    string
	AccountControlTotal int64
	AccountRecordCount  int
	GroupControlTotal   int64
	GroupRecordCount    int
	FileControlTotal    int64
	FileRecordCount     int
}

// TransactionRow is one flattened transaction detail with the identifying
// context of its file, group and account.
type TransactionRow struct {
	FileSenderID      string
	FileReceiverID    string
	FileCreationDate  string
	FileCreationTime  string
	GroupOriginatorID string
	GroupReceiverID   string
	AsOfDate          string
	AsOfTime          string
	AsOfModifier      string
	CustomerAccount   string
	Currency          string
	TypeCode          string
	Amount            int64
	FundsType         string
	BankRef           string
	CustomerRef       string
	Text              string
}
