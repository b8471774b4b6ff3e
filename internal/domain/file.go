package domain

// All monetary amounts in this package are signed integers in minor currency
// units (cents for USD), exactly as they appear on the wire. Control total
// validation requires bit-exact sums, so no value ever passes through a
// float.

// FundsType describes when the funds of a balance item or transaction
// become available. For code "S" the three availability amounts are set,
// for "V" the value date and time, and for "D" the per-day distributions.
type FundsType struct {
	Code          string
	Immediate     int64
	OneDay        int64
	TwoDay        int64
	ValueDate     string
	ValueTime     string
	Distributions []Distribution
}

// Distribution is one (days, amount) pair of a distributed availability
// breakdown.
type Distribution struct {
	Days   int
	Amount int64
}

// Balance is one balance summary item from an 03 account identifier record,
// e.g. opening ledger, closing ledger, or available balance.
type Balance struct {
	TypeCode  string
	Amount    int64
	ItemCount int
	Funds     FundsType
}

// Transaction is one 16 transaction detail record. Text carries the full
// narrative with any 88 continuation payloads already joined.
type Transaction struct {
	TypeCode    string
	Amount      int64
	Funds       FundsType
	BankRef     string
	CustomerRef string
	Text        string
}

// Account is one 03..49 unit within a group. ControlTotal and RecordCount
// are the values declared by the account trailer, kept after validation so
// they can be echoed into the output rows.
type Account struct {
	Number       string
	Currency     string
	Balances     []Balance
	Transactions []Transaction
	ControlTotal int64
	RecordCount  int
}

// Group is one 02..98 unit within a file.
type Group struct {
	ReceiverID   string
	OriginatorID string
	Status       string
	AsOfDate     string
	AsOfTime     string
	Currency     string
	AsOfModifier string
	Accounts     []Account
	ControlTotal int64
	RecordCount  int
}

// File is a fully assembled BAI2 file: the 01 header fields, the nested
// groups, and the 99 trailer's declared totals.
type File struct {
	SenderID        string
	ReceiverID      string
	CreationDate    string
	CreationTime    string
	ResendIndicator string
	RecordSize      string
	BlockingFactor  string
	VersionNumber   string
	Groups          []Group
	ControlTotal    int64
	RecordCount     int
}
