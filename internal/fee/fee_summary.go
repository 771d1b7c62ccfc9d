package fee

import (
	"time"

	"go-school/internal/shared/money"
)

// BuildSummary collects the line items that apply to a student in year and totals them.
// Custom fees apply when they target the student's class or every class.
// One-time items are charged only in the year they were created; paid only
// covers payments made in year.
func BuildSummary(student StudentRef, year int, classFees []ClassFee, customFees []CustomFee, transport *TransportAssignment, paid int64) StudentFeeSummary {
	summary := StudentFeeSummary{
		StudentID:   student.ID,
		StudentName: student.FullName,
		Year:        year,
		Items:       make([]SummaryLine, 0, len(classFees)+len(customFees)+1),
		Paid:        paid,
	}

	var items []money.LineItem
	add := func(source, id, name string, li money.LineItem) {
		items = append(items, li)
		summary.Items = append(summary.Items, SummaryLine{
			Source:       source,
			ID:           id,
			Name:         name,
			BaseAmount:   li.BaseAmount,
			Discount:     li.EffectiveDiscount(),
			IsExempt:     li.IsExempt,
			Cycle:        string(li.Cycle),
			FinalAmount:  li.FinalAmount(),
			AnnualAmount: li.AnnualAmount(),
		})
	}

	for _, f := range classFees {
		if student.ClassID == nil || f.ClassID.String() != *student.ClassID {
			continue
		}
		if !chargedIn(year, money.Cycle(f.Cycle), f.CreatedAt) {
			continue
		}
		add(SourceClassFee, f.ID.String(), f.Name, f.LineItem())
	}
	for _, f := range customFees {
		if f.ClassID != nil && (student.ClassID == nil || f.ClassID.String() != *student.ClassID) {
			continue
		}
		if !chargedIn(year, money.Cycle(f.Cycle), f.CreatedAt) {
			continue
		}
		add(SourceCustomFee, f.ID.String(), f.Name, f.LineItem())
	}
	if transport != nil && chargedIn(year, money.Cycle(transport.Cycle), transport.CreatedAt) {
		add(SourceTransport, transport.ID.String(), transport.RouteName, transport.LineItem())
	}

	for _, li := range items {
		summary.TotalBase += li.BaseAmount
		summary.TotalFinal += li.FinalAmount()
		summary.AnnualTotal += li.AnnualAmount()
	}
	summary.TotalDiscount = money.SumDiscounts(items)

	if outstanding := summary.AnnualTotal - paid; outstanding > 0 {
		summary.Outstanding = outstanding
	}
	return summary
}

// chargedIn reports whether an item created at createdAt bills in year.
// Nothing bills before it exists.
func chargedIn(year int, cycle money.Cycle, createdAt time.Time) bool {
	created := createdAt.UTC().Year()
	if created > year {
		return false
	}
	return cycle != money.CycleOneTime || created == year
}
