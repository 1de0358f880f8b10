package ledger

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/domain"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/store"
)

// csvColumns are the recognized headers of a bulk import file. Extra
// columns are ignored; description and merchant may be absent.
const (
	colAccountID   = "account_id"
	colAmount      = "amount"
	colTxnType     = "txn_type"
	colDescription = "description"
	colMerchant    = "merchant"
)

// ImportCSV posts transactions from a CSV upload for the given user.
//
// Rows that cannot be resolved — unknown or foreign account, bad
// direction, non-numeric or non-positive amount — are silently skipped
// so one bad row never aborts the batch. Store errors other than
// not-found do abort it: they mean the batch itself is in trouble, not
// the row. All surviving rows commit together at the end; the return
// value is the number created.
func (p *Poster) ImportCSV(ctx context.Context, userID, filename string, r io.Reader) (int, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return 0, fmt.Errorf("only CSV files allowed: %w", domain.ErrInvalidArgument)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("parsing csv: %w", domain.ErrInvalidArgument)
	}
	if len(records) == 0 {
		return 0, nil
	}

	columns := headerIndex(records[0])
	created := 0

	err = p.store.Atomically(ctx, func(tx store.Tx) error {
		categories, err := tx.ListCategories(ctx)
		if err != nil {
			return err
		}

		for i, row := range records[1:] {
			params, ok := p.rowParams(row, columns)
			if !ok {
				p.log.Debug().Int("row", i+1).Msg("Skipping unresolvable csv row")
				continue
			}

			account, err := tx.GetAccountForUpdate(ctx, params.AccountID)
			if errors.Is(err, domain.ErrNotFound) {
				p.log.Debug().Int("row", i+1).Msg("Skipping csv row for unknown account")
				continue
			}
			if err != nil {
				return err
			}
			if account.UserID != userID {
				p.log.Debug().Int("row", i+1).Msg("Skipping csv row for unknown account")
				continue
			}

			txnType, _ := domain.ParseTxnType(params.TxnType)
			if _, err := p.record(ctx, tx, account, txnType, params, categories); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	p.log.Info().Int("created", created).Str("user_id", userID).Msg("Bulk import finished")
	return created, nil
}

// rowParams extracts and validates one row's fields. ok is false when
// the row must be skipped.
func (p *Poster) rowParams(row []string, columns map[string]int) (PostParams, bool) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	accountID := cell(colAccountID)
	if accountID == "" {
		return PostParams{}, false
	}
	if _, ok := domain.ParseTxnType(cell(colTxnType)); !ok {
		return PostParams{}, false
	}
	amount, err := decimal.NewFromString(cell(colAmount))
	if err != nil || !amount.IsPositive() {
		return PostParams{}, false
	}

	return PostParams{
		AccountID:   accountID,
		Amount:      amount,
		TxnType:     cell(colTxnType),
		Description: cell(colDescription),
		Merchant:    cell(colMerchant),
	}, true
}

func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return columns
}
