package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"dairyledger/internal/core"
)

func sampleBill() core.Bill {
	transactions := []core.Transaction{
		{ID: 1, CustomerID: 1, Date: core.NewDate(2024, 6, 1), MilkKg: 10, MilkMound: 0.25, Rate: 80, TimeOfDay: core.Morning},
		{ID: 2, CustomerID: 1, Date: core.NewDate(2024, 6, 1), MilkKg: 5, MilkMound: 0.125, Rate: 80, TimeOfDay: core.Evening},
		{ID: 3, CustomerID: 1, Date: core.NewDate(2024, 6, 2), MilkKg: 8, MilkMound: 0.2, Rate: 80, TimeOfDay: core.Morning},
	}
	payments := []core.Payment{
		{ID: 1, CustomerID: 1, Date: core.NewDate(2024, 6, 2), Amount: 500},
	}
	return core.Bill{
		Customer:     core.Customer{ID: 1, Name: "Ali"},
		Start:        core.NewDate(2024, 6, 1),
		End:          core.NewDate(2024, 6, 30),
		Transactions: transactions,
		Payments:     payments,
		Summary:      core.Fold(transactions, payments),
	}
}

func TestWriteTransactionsExcel(t *testing.T) {
	bill := sampleBill()

	var buf bytes.Buffer
	if err := WriteTransactionsExcel(&buf, bill.Transactions); err != nil {
		t.Fatalf("WriteTransactionsExcel: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(transactionsSheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want header + 3", len(rows))
	}

	wantHeader := []string{"Date", "Time", "Milk (kg)", "Milk (mound)", "Rate", "Amount"}
	for i, w := range wantHeader {
		if rows[0][i] != w {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], w)
		}
	}

	if rows[1][0] != "2024-06-01" || rows[1][1] != "Morning" {
		t.Errorf("first data row = %v", rows[1])
	}
	if rows[1][5] != "800" {
		t.Errorf("derived amount cell = %q, want 800", rows[1][5])
	}
	if rows[2][1] != "Evening" || rows[3][0] != "2024-06-02" {
		t.Errorf("row order not preserved: %v / %v", rows[2], rows[3])
	}
}

func TestWriteTransactionsExcelEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTransactionsExcel(&buf, nil); err != nil {
		t.Fatalf("WriteTransactionsExcel(nil): %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(transactionsSheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows, want header only", len(rows))
	}
}

func TestWriteBill(t *testing.T) {
	var buf bytes.Buffer
	if err := NewBillWriter("Milk Obaid").WriteBill(&buf, sampleBill()); err != nil {
		t.Fatalf("WriteBill: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
	if buf.Len() < 1000 {
		t.Errorf("suspiciously small bill: %d bytes", buf.Len())
	}
}

func TestWriteBillEmptyLists(t *testing.T) {
	bill := core.Bill{
		Customer: core.Customer{ID: 2, Name: "Bashir"},
		Start:    core.NewDate(2024, 1, 1),
		End:      core.NewDate(2024, 1, 31),
	}
	var buf bytes.Buffer
	if err := NewBillWriter("").WriteBill(&buf, bill); err != nil {
		t.Fatalf("WriteBill with no rows: %v", err)
	}
	if buf.Len() == 0 {
		t.Errorf("empty output")
	}
}

func TestArtifactFilenames(t *testing.T) {
	got := TransactionsFilename(core.Customer{Name: "Ali Khan"}, core.NewDate(2024, 6, 1), core.NewDate(2024, 6, 30))
	if got != "transactions_ali_khan_20240601_to_20240630.xlsx" {
		t.Errorf("TransactionsFilename = %q", got)
	}

	got = TransactionsFilename(core.Customer{}, core.Date{}, core.Date{})
	if got != "transactions_all_customers.xlsx" {
		t.Errorf("TransactionsFilename zero = %q", got)
	}

	got = BillFilename(3, core.NewDate(2024, 6, 1))
	if got != "bill_3_20240601.pdf" {
		t.Errorf("BillFilename = %q", got)
	}
	if strings.Contains(got, " ") {
		t.Errorf("artifact name contains spaces: %q", got)
	}
}
