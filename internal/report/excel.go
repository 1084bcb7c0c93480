// Package report renders bills and exports from the summary engine's
// output. Two-decimal rounding happens here only; stored values are never
// rounded.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"dairyledger/internal/core"
)

const transactionsSheet = "Transactions"

var excelHeader = []any{"Date", "Time", "Milk (kg)", "Milk (mound)", "Rate", "Amount"}

// WriteTransactionsExcel writes one sheet with a header row and one row per
// transaction, preserving the store's ordering.
func WriteTransactionsExcel(w io.Writer, transactions []core.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(transactionsSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	if err := f.SetSheetRow(transactionsSheet, "A1", &excelHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, t := range transactions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		row := []any{t.Date.String(), string(t.TimeOfDay), t.MilkKg, t.MilkMound, t.Rate, t.Amount()}
		if err := f.SetSheetRow(transactionsSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// TransactionsFilename builds the default export artifact name, e.g.
// transactions_ali_20240601_to_20240630.xlsx.
func TransactionsFilename(customer core.Customer, start, end core.Date) string {
	name := strings.ToLower(strings.ReplaceAll(customer.Name, " ", "_"))
	if name == "" {
		name = "all_customers"
	}
	var dates string
	if !start.IsEmpty() && !end.IsEmpty() {
		dates = fmt.Sprintf("_%s_to_%s", start.Format("20060102"), end.Format("20060102"))
	}
	return fmt.Sprintf("transactions_%s%s.xlsx", name, dates)
}

// BillFilename builds the default bill artifact name, e.g. bill_3_20240601.pdf.
func BillFilename(customerID int64, start core.Date) string {
	return fmt.Sprintf("bill_%d_%s.pdf", customerID, start.Format("20060102"))
}
