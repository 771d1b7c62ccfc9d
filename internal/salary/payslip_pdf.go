package salary

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	pageWidth   = 595
	pageHeight  = 842
	marginLeft  = 56
	amountRight = 420
	lineHeight  = 18
)

// payslipRow is one printed line. Rows with an Amount get a right-hand column.
type payslipRow struct {
	Text   string
	Amount *int64
	Bold   bool
}

func formatAmount(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}

func amountRow(label string, v int64) payslipRow {
	return payslipRow{Text: label, Amount: &v}
}

func payslipRows(schoolName string, rec Record) []payslipRow {
	rows := []payslipRow{
		{Text: schoolName, Bold: true},
		{Text: "Salary slip for " + rec.Period, Bold: true},
		{},
		{Text: fmt.Sprintf("Staff: %s (%s)", rec.StaffName, rec.StaffNo)},
		{Text: fmt.Sprintf("Working days: %d   Absent days: %d", rec.WorkingDays, rec.AbsentDays)},
		{},
		{Text: "Earnings", Bold: true},
	}
	for _, line := range earningLines(rec) {
		rows = append(rows, amountRow("  "+line.Label, line.Amount))
	}
	rows = append(rows, amountRow("Gross", rec.Gross), payslipRow{}, payslipRow{Text: "Deductions", Bold: true})
	for _, line := range deductionLines(rec) {
		rows = append(rows, amountRow("  "+line.Label, line.Amount))
	}
	rows = append(rows, payslipRow{}, payslipRow{Text: "Net pay", Bold: true, Amount: &rec.Net})
	if rec.PaidAt != nil {
		rows = append(rows, payslipRow{}, payslipRow{Text: "Paid on " + rec.PaidAt.Format(dateLayout)})
	}
	return rows
}

// renderPayslipPDF writes a single A4 page PDF using the built-in Helvetica fonts.
func renderPayslipPDF(rows []payslipRow) []byte {
	var content strings.Builder
	y := pageHeight - 72
	for _, row := range rows {
		if row.Text != "" {
			writeText(&content, row.Bold, marginLeft, y, row.Text)
		}
		if row.Amount != nil {
			amount := formatAmount(*row.Amount)
			// Helvetica digits are 0.556em wide at 11pt.
			x := amountRight - int(float64(len(amount))*0.556*11)
			writeText(&content, row.Bold, x, y, amount)
		}
		y -= lineHeight
	}
	stream := content.String()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 4 0 R /F2 5 0 R >> >> /Contents 6 0 R >>", pageWidth, pageHeight),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return out.Bytes()
}

func writeText(b *strings.Builder, bold bool, x, y int, text string) {
	font := "F1"
	if bold {
		font = "F2"
	}
	fmt.Fprintf(b, "BT /%s 11 Tf %d %d Td (%s) Tj ET\n", font, x, y, escapePDFText(text))
}

var pdfTextEscaper = strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`, "\r", "", "\n", " ")

func escapePDFText(v string) string {
	return pdfTextEscaper.Replace(v)
}
