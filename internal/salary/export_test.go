package salary

import "time"

func SetClock(s Service, now func() time.Time) {
	s.(*service).now = now
}

func RenderPayslip(schoolName string, rec Record) []byte {
	return renderPayslipPDF(payslipRows(schoolName, rec))
}
