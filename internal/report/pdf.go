package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"dairyledger/internal/core"
)

// BillWriter renders printable bills. Title is the business header printed
// at the top of every bill.
type BillWriter struct {
	Title string
}

func NewBillWriter(title string) *BillWriter {
	if title == "" {
		title = "Dairy Ledger"
	}
	return &BillWriter{Title: title}
}

const (
	colDate   = 30.0
	colTime   = 30.0
	colKg     = 30.0
	colMound  = 30.0
	colRate   = 30.0
	colAmount = 40.0
)

// WriteBill renders the bill as an A4 PDF: customer header, chronological
// per-day transaction table with day subtotals and a grand total, payment
// history with its total, and the remaining balance.
func (b *BillWriter) WriteBill(w io.Writer, bill core.Bill) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 15, b.Title, "", 1, "C", false, 0, "")
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Customer: "+bill.Customer.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	period := fmt.Sprintf("Period: %s to %s", bill.Start.Format("02-01-2006"), bill.End.Format("02-01-2006"))
	pdf.CellFormat(0, 10, period, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	if len(bill.Transactions) > 0 {
		b.writeTransactionTable(pdf, bill.Transactions)
	}
	if len(bill.Payments) > 0 {
		b.writePaymentTable(pdf, bill.Payments)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 14)
	if bill.Summary.RemainingAmount != 0 {
		balance := fmt.Sprintf("Remaining Balance: Rs. %.2f", bill.Summary.RemainingAmount)
		pdf.CellFormat(0, 10, balance, "", 1, "C", false, 0, "")
	}

	pdf.Ln(20)
	pdf.Line(20, pdf.GetY(), 80, pdf.GetY())
	pdf.Line(120, pdf.GetY(), 180, pdf.GetY())
	pdf.Ln(5)
	pdf.CellFormat(90, 10, "Customer Signature", "", 0, "C", false, 0, "")
	pdf.CellFormat(90, 10, "Authorized Signature", "", 1, "C", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render bill pdf: %w", err)
	}
	return nil
}

func (b *BillWriter) writeTransactionTable(pdf *fpdf.Fpdf, transactions []core.Transaction) {
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "All Milk Entries", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(colDate, 10, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colTime, 10, "Time", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colKg, 10, "KG", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colMound, 10, "Mound", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colRate, 10, "Rate", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colAmount, 10, "Amount (Rs)", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)

	var totalKg, totalAmount float64
	var dayKg, dayAmount float64

	flushDay := func() {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(colDate, 8, "", "1", 0, "C", false, 0, "")
		pdf.CellFormat(colTime, 8, "Day Total", "1", 0, "C", false, 0, "")
		pdf.CellFormat(colKg, 8, fmt.Sprintf("%.2f", dayKg), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colMound, 8, fmt.Sprintf("%.2f", core.KgToMound(dayKg)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colRate, 8, "", "1", 0, "C", false, 0, "")
		pdf.CellFormat(colAmount, 8, fmt.Sprintf("%.2f", dayAmount), "1", 1, "C", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		dayKg, dayAmount = 0, 0
	}

	// Rows arrive ordered by date then slot, so days are contiguous.
	for i, t := range transactions {
		if i > 0 && !t.Date.Equal(transactions[i-1].Date.Time) {
			flushDay()
		}
		pdf.CellFormat(colDate, 8, t.Date.Format("02-01-2006"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colTime, 8, string(t.TimeOfDay), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colKg, 8, fmt.Sprintf("%.2f", t.MilkKg), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colMound, 8, fmt.Sprintf("%.2f", t.MilkMound), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colRate, 8, fmt.Sprintf("%.2f", t.Rate), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colAmount, 8, fmt.Sprintf("%.2f", t.Amount()), "1", 1, "C", false, 0, "")

		dayKg += t.MilkKg
		dayAmount += t.Amount()
		totalKg += t.MilkKg
		totalAmount += t.Amount()
	}
	flushDay()

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(colDate, 10, "", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colTime, 10, "TOTAL", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colKg, 10, fmt.Sprintf("%.2f", totalKg), "1", 0, "C", false, 0, "")
	pdf.CellFormat(colMound, 10, fmt.Sprintf("%.2f", core.KgToMound(totalKg)), "1", 0, "C", false, 0, "")
	pdf.CellFormat(colRate, 10, "", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colAmount, 10, fmt.Sprintf("%.2f", totalAmount), "1", 1, "C", false, 0, "")
}

func (b *BillWriter) writePaymentTable(pdf *fpdf.Fpdf, payments []core.Payment) {
	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Payment History", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(40, 10, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(150, 10, "Amount (Rs)", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	var total float64
	for _, p := range payments {
		pdf.CellFormat(40, 8, p.Date.Format("02-01-2006"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(150, 8, fmt.Sprintf("%.2f", p.Amount), "1", 1, "C", false, 0, "")
		total += p.Amount
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(40, 10, "Total Paid", "1", 0, "C", false, 0, "")
	pdf.CellFormat(150, 10, fmt.Sprintf("%.2f", total), "1", 1, "C", false, 0, "")
}
