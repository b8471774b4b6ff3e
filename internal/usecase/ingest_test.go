package usecase_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-ingest/internal/bai2"
	"bank-ingest/internal/domain"
	"bank-ingest/internal/usecase"
	mock_usecase "bank-ingest/internal/usecase/mocks"
)

// validFile is a complete settlement file with one group, one account, one
// balance item and one transaction.
const validFile = `01,SENDR1,RECVR1,210706,1249,1,80,10,2/
02,RECVR1,121000358,1,210706,1249,USD,2/
03,0975312468,USD,010,500000,4,0/
16,165,1500000,1,DEF456,789,PAYMENT RECEIVED/
49,2000000,3/
98,2000000,5/
99,2000000,7/
`

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestIngestUseCase_Ingest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := newTestLogger()

	t.Run("successful run", func(t *testing.T) {
		source := mock_usecase.NewMockFileSource(ctrl)
		rows := mock_usecase.NewMockRowWriter(ctrl)
		report := mock_usecase.NewMockReportWriter(ctrl)
		runLog := mock_usecase.NewMockRunRecorder(ctrl)

		source.EXPECT().Fetch(gomock.Any()).Return("settle.bai", []byte(validFile), nil)
		rows.EXPECT().WriteBalances("settle", gomock.Len(1)).Return("out/settle_balances.csv", nil)
		rows.EXPECT().WriteTransactions("settle", gomock.Len(1)).Return("out/settle_transactions.csv", nil)
		report.EXPECT().Write("settle", gomock.Len(1), gomock.Len(1)).Return("out/settle_report.xlsx", nil)

		var recorded domain.RunReport
		runLog.EXPECT().Append(gomock.Any()).DoAndReturn(func(r domain.RunReport) error {
			recorded = r
			return nil
		})

		uc := usecase.NewIngestUseCase(source, bai2.New(log), rows, report, runLog, log)
		got, err := uc.Ingest(context.Background())
		require.NoError(t, err)

		assert.Equal(t, domain.RunStatusSuccess, got.Status)
		assert.Equal(t, "settle.bai", got.BAIFile)
		assert.Equal(t, 1, got.BalanceRows)
		assert.Equal(t, 1, got.TransactionRows)
		assert.Equal(t, "out/settle_balances.csv", got.BalancesCSV)
		assert.Equal(t, "out/settle_transactions.csv", got.TransactionsCSV)
		assert.Equal(t, "out/settle_report.xlsx", got.ReportXLSX)
		assert.Empty(t, got.Error)
		assert.NotEmpty(t, got.RunID)
		assert.NotEmpty(t, got.StartedAt)

		assert.Equal(t, *got, recorded)
	})

	t.Run("fetch error is recorded", func(t *testing.T) {
		source := mock_usecase.NewMockFileSource(ctrl)
		rows := mock_usecase.NewMockRowWriter(ctrl)
		runLog := mock_usecase.NewMockRunRecorder(ctrl)

		source.EXPECT().Fetch(gomock.Any()).Return("", nil, errors.New("drop directory unreachable"))

		var recorded domain.RunReport
		runLog.EXPECT().Append(gomock.Any()).DoAndReturn(func(r domain.RunReport) error {
			recorded = r
			return nil
		})

		uc := usecase.NewIngestUseCase(source, bai2.New(log), rows, nil, runLog, log)
		got, err := uc.Ingest(context.Background())
		require.Error(t, err)
		assert.ErrorContains(t, err, "drop directory unreachable")

		assert.Equal(t, domain.RunStatusError, got.Status)
		assert.Contains(t, got.Error, "drop directory unreachable")
		assert.Equal(t, domain.RunStatusError, recorded.Status)
	})

	t.Run("parse error writes nothing", func(t *testing.T) {
		source := mock_usecase.NewMockFileSource(ctrl)
		rows := mock_usecase.NewMockRowWriter(ctrl)
		runLog := mock_usecase.NewMockRunRecorder(ctrl)

		source.EXPECT().Fetch(gomock.Any()).Return("bad.bai", []byte("02,RECVR1,121000358,1,210706,1249,USD,2/\n"), nil)
		runLog.EXPECT().Append(gomock.Any()).Return(nil)

		uc := usecase.NewIngestUseCase(source, bai2.New(log), rows, nil, runLog, log)
		got, err := uc.Ingest(context.Background())
		require.Error(t, err)

		var parseErr *domain.ParseError
		assert.ErrorAs(t, err, &parseErr)
		assert.Equal(t, domain.RunStatusError, got.Status)
		assert.Equal(t, "bad.bai", got.BAIFile)
		assert.NotEmpty(t, got.Error)
	})

	t.Run("row writer error fails the run", func(t *testing.T) {
		source := mock_usecase.NewMockFileSource(ctrl)
		rows := mock_usecase.NewMockRowWriter(ctrl)

		source.EXPECT().Fetch(gomock.Any()).Return("settle.bai", []byte(validFile), nil)
		rows.EXPECT().WriteBalances("settle", gomock.Any()).Return("", errors.New("disk full"))

		uc := usecase.NewIngestUseCase(source, bai2.New(log), rows, nil, nil, log)
		got, err := uc.Ingest(context.Background())
		require.Error(t, err)
		assert.ErrorContains(t, err, "disk full")
		assert.Equal(t, domain.RunStatusError, got.Status)
	})

	t.Run("nil report writer skips workbook", func(t *testing.T) {
		source := mock_usecase.NewMockFileSource(ctrl)
		rows := mock_usecase.NewMockRowWriter(ctrl)

		source.EXPECT().Fetch(gomock.Any()).Return("settle.bai2", []byte(validFile), nil)
		rows.EXPECT().WriteBalances("settle", gomock.Any()).Return("out/settle_balances.csv", nil)
		rows.EXPECT().WriteTransactions("settle", gomock.Any()).Return("out/settle_transactions.csv", nil)

		uc := usecase.NewIngestUseCase(source, bai2.New(log), rows, nil, nil, log)
		got, err := uc.Ingest(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.RunStatusSuccess, got.Status)
		assert.Empty(t, got.ReportXLSX)
	})

	t.Run("run log failure does not fail the run", func(t *testing.T) {
		source := mock_usecase.NewMockFileSource(ctrl)
		rows := mock_usecase.NewMockRowWriter(ctrl)
		runLog := mock_usecase.NewMockRunRecorder(ctrl)

		source.EXPECT().Fetch(gomock.Any()).Return("settle.bai", []byte(validFile), nil)
		rows.EXPECT().WriteBalances("settle", gomock.Any()).Return("out/settle_balances.csv", nil)
		rows.EXPECT().WriteTransactions("settle", gomock.Any()).Return("out/settle_transactions.csv", nil)
		runLog.EXPECT().Append(gomock.Any()).Return(errors.New("history locked"))

		uc := usecase.NewIngestUseCase(source, bai2.New(log), rows, nil, runLog, log)
		got, err := uc.Ingest(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.RunStatusSuccess, got.Status)
	})
}
