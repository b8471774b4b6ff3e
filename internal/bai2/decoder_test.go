package bai2

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-ingest/internal/domain"
)

// record builds a logical record from one raw line, as the line joiner
// would produce it.
func record(t *testing.T, line string) logicalRecord {
	t.Helper()
	records, err := joinLines(line)
	require.NoError(t, err)
	require.Len(t, records, 1)
	return records[0]
}

func TestDecode_FileHeader(t *testing.T) {
	rec, err := decode(record(t, "01,SENDR1,RECVR1,210706,1249,1,80,10,2/"))
	require.NoError(t, err)

	assert.Equal(t, kindFileHeader, rec.kind)
	assert.Equal(t, "SENDR1", rec.file.SenderID)
	assert.Equal(t, "RECVR1", rec.file.ReceiverID)
	assert.Equal(t, "210706", rec.file.CreationDate)
	assert.Equal(t, "1249", rec.file.CreationTime)
	assert.Equal(t, "1", rec.file.ResendIndicator)
	assert.Equal(t, "80", rec.file.RecordSize)
	assert.Equal(t, "10", rec.file.BlockingFactor)
	assert.Equal(t, "2", rec.file.VersionNumber)
}

func TestDecode_GroupHeader(t *testing.T) {
	rec, err := decode(record(t, "02,RECVR1,121000358,1,210706,1249,USD,2/"))
	require.NoError(t, err)

	assert.Equal(t, kindGroupHeader, rec.kind)
	assert.Equal(t, "RECVR1", rec.group.ReceiverID)
	assert.Equal(t, "121000358", rec.group.OriginatorID)
	assert.Equal(t, "1", rec.group.Status)
	assert.Equal(t, "210706", rec.group.AsOfDate)
	assert.Equal(t, "1249", rec.group.AsOfTime)
	assert.Equal(t, "USD", rec.group.Currency)
	assert.Equal(t, "2", rec.group.AsOfModifier)
}

func TestDecode_AccountHeaderBalances(t *testing.T) {
	rec, err := decode(record(t, "03,0975312468,USD,010,500000,4,0,015,-450000,2,S,100000,200000,150000/"))
	require.NoError(t, err)

	require.Equal(t, kindAccountHeader, rec.kind)
	a := rec.account
	assert.Equal(t, "0975312468", a.Number)
	assert.Equal(t, "USD", a.Currency)
	require.Len(t, a.Balances, 2)

	assert.Equal(t, "010", a.Balances[0].TypeCode)
	assert.Equal(t, int64(500000), a.Balances[0].Amount)
	assert.Equal(t, 4, a.Balances[0].ItemCount)
	assert.Equal(t, "0", a.Balances[0].Funds.Code)

	assert.Equal(t, "015", a.Balances[1].TypeCode)
	assert.Equal(t, int64(-450000), a.Balances[1].Amount)
	assert.Equal(t, domain.FundsDistributedAvl, a.Balances[1].Funds.Code)
	assert.Equal(t, int64(100000), a.Balances[1].Funds.Immediate)
	assert.Equal(t, int64(200000), a.Balances[1].Funds.OneDay)
	assert.Equal(t, int64(150000), a.Balances[1].Funds.TwoDay)
}

func TestDecode_Transaction(t *testing.T) {
	rec, err := decode(record(t, "16,165,1500000,1,DEF456,789,PAYMENT RECEIVED, SECOND SEGMENT/"))
	require.NoError(t, err)

	require.Equal(t, kindTransaction, rec.kind)
	tx := rec.transaction
	assert.Equal(t, "165", tx.TypeCode)
	assert.Equal(t, int64(1500000), tx.Amount)
	assert.Equal(t, "1", tx.Funds.Code)
	assert.Equal(t, "DEF456", tx.BankRef)
	assert.Equal(t, "789", tx.CustomerRef)
	assert.Equal(t, "PAYMENT RECEIVED, SECOND SEGMENT", tx.Text,
		"narrative keeps its embedded commas")
}

func TestDecode_TransactionDistributedFunds(t *testing.T) {
	rec, err := decode(record(t, "16,115,10000,D,2,1,6000,2,4000,REF1,CR1,note/"))
	require.NoError(t, err)

	tx := rec.transaction
	assert.Equal(t, domain.FundsDistributedDay, tx.Funds.Code)
	require.Len(t, tx.Funds.Distributions, 2)
	assert.Equal(t, domain.Distribution{Days: 1, Amount: 6000}, tx.Funds.Distributions[0])
	assert.Equal(t, domain.Distribution{Days: 2, Amount: 4000}, tx.Funds.Distributions[1])
	assert.Equal(t, "REF1", tx.BankRef)
	assert.Equal(t, "CR1", tx.CustomerRef)
	assert.Equal(t, "note", tx.Text)
}

func TestDecode_TransactionValueDatedFunds(t *testing.T) {
	rec, err := decode(record(t, "16,165,2500,V,210707,0930,BNK9,CUST3,wire/"))
	require.NoError(t, err)

	tx := rec.transaction
	assert.Equal(t, domain.FundsValueDated, tx.Funds.Code)
	assert.Equal(t, "210707", tx.Funds.ValueDate)
	assert.Equal(t, "0930", tx.Funds.ValueTime)
	assert.Equal(t, "BNK9", tx.BankRef)
}

func TestDecode_Trailers(t *testing.T) {
	for _, tc := range []struct {
		line string
		kind recordKind
	}{
		{"49,2000000,3/", kindAccountTrailer},
		{"98,2000000,5/", kindGroupTrailer},
		{"99,-2000000,7/", kindFileTrailer},
	} {
		rec, err := decode(record(t, tc.line))
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.kind, rec.kind)
		assert.Equal(t, tc.line[3] == '-', rec.trailer.controlTotal < 0)
		assert.NotZero(t, rec.trailer.recordCount)
	}
}

func TestDecode_FieldFormatErrors(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		field string
	}{
		{"non-numeric amount", "16,165,12x4,0,REF,CR,text/", "transaction amount"},
		{"invalid transaction type code", "16,ABC,100,0,REF,CR,text/", "transaction type code"},
		{"invalid creation date", "01,SENDR1,RECVR1,219999,1249,1,80,10,2/", "file creation date"},
		{"invalid time of day", "01,SENDR1,RECVR1,210706,2513,1,80,10,2/", "file creation time"},
		{"empty sender id", "01,,RECVR1,210706,1249,1,80,10,2/", "sender id"},
		{"group status outside table", "02,RECVR1,121000358,9,210706,1249,USD,2/", "group status"},
		{"modifier outside table", "02,RECVR1,121000358,1,210706,1249,USD,7/", "as-of-date modifier"},
		{"bad currency", "02,RECVR1,121000358,1,210706,1249,US1,2/", "currency code"},
		{"bad balance type code", "03,0975312468,USD,01X,500000,4,0/", "balance type code"},
		{"funds type outside table", "16,165,100,Q,REF,CR,text/", "funds type"},
		{"missing trailer count", "49,2000000/", "record count"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decode(record(t, tc.line))

			var format *domain.FieldFormatError
			require.True(t, errors.As(err, &format), "want FieldFormatError, got %v", err)
			assert.Equal(t, tc.field, format.Field)
		})
	}
}

func TestDecode_UnknownRecordType(t *testing.T) {
	_, err := decode(record(t, "77,some,unknown,record/"))

	var unknown *domain.UnknownRecordTypeError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "77", unknown.TypeCode)
}
