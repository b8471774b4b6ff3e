package bai2

import "bank-ingest/internal/domain"

// Rows flattens a validated file into its two output row sequences,
// depth-first in source order: one balance row per balance summary item
// and one transaction row per transaction detail. Accounts without their
// own currency inherit the group's.
func Rows(f *domain.File) ([]domain.BalanceRow, []domain.TransactionRow) {
	var balances []domain.BalanceRow
	var transactions []domain.TransactionRow

	for _, g := range f.Groups {
		for _, a := range g.Accounts {
			currency := a.Currency
			if currency == "" {
				currency = g.Currency
			}

			for _, b := range a.Balances {
				balances = append(balances, domain.BalanceRow{
					FileSenderID:        f.SenderID,
					FileReceiverID:      f.ReceiverID,
					FileCreationDate:    f.CreationDate,
					FileCreationTime:    f.CreationTime,
					ResendIndicator:     f.ResendIndicator,
					GroupOriginatorID:   g.OriginatorID,
					GroupReceiverID:     g.ReceiverID,
					GroupStatus:         g.Status,
					AsOfDate:            g.AsOfDate,
					AsOfTime:            g.AsOfTime,
					AsOfModifier:        g.AsOfModifier,
					Currency:            currency,
					CustomerAccount:     a.Number,
					BalanceTypeCode:     b.TypeCode,
					BalanceAmount:       b.Amount,
					BalanceItemCount:    b.ItemCount,
					BalanceFundsType:    b.Funds.Code,
					AccountControlTotal: a.ControlTotal,
					AccountRecordCount:  a.RecordCount,
					GroupControlTotal:   g.ControlTotal,
					GroupRecordCount:    g.RecordCount,
					FileControlTotal:    f.ControlTotal,
					FileRecordCount:     f.RecordCount,
				})
			}

			for _, t := range a.Transactions {
				transactions = append(transactions, domain.TransactionRow{
					FileSenderID:      f.SenderID,
					FileReceiverID:    f.ReceiverID,
					FileCreationDate:  f.CreationDate,
					FileCreationTime:  f.CreationTime,
					GroupOriginatorID: g.OriginatorID,
					GroupReceiverID:   g.ReceiverID,
					AsOfDate:          g.AsOfDate,
					AsOfTime:          g.AsOfTime,
					AsOfModifier:      g.AsOfModifier,
					CustomerAccount:   a.Number,
					Currency:          currency,
					TypeCode:          t.TypeCode,
					Amount:            t.Amount,
					FundsType:         t.Funds.Code,
					BankRef:           t.BankRef,
					CustomerRef:       t.CustomerRef,
					Text:              t.Text,
				})
			}
		}
	}
	return balances, transactions
}
