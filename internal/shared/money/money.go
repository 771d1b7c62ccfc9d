// Package money holds the fee and salary arithmetic shared by the fee, salary
// and dashboard modules. Amounts are int64 minor units (cents).
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Cycle string

const (
	CycleOneTime   Cycle = "one_time"
	CycleMonthly   Cycle = "monthly"
	CycleQuarterly Cycle = "quarterly"
	CycleYearly    Cycle = "yearly"
)

func ParseCycle(v string) (Cycle, error) {
	c := Cycle(strings.ToLower(strings.TrimSpace(v)))
	switch c {
	case CycleOneTime, CycleMonthly, CycleQuarterly, CycleYearly:
		return c, nil
	}
	return "", fmt.Errorf("unknown cycle %q", v)
}

func (c Cycle) Valid() bool {
	_, err := ParseCycle(string(c))
	return err == nil
}

// PeriodsPerYear is how many times a fee on this cycle is charged in one academic year.
func (c Cycle) PeriodsPerYear() int64 {
	switch c {
	case CycleMonthly:
		return 12
	case CycleQuarterly:
		return 4
	default:
		return 1
	}
}

type LineItem struct {
	BaseAmount int64
	Discount   int64
	IsExempt   bool
	Cycle      Cycle
}

func (li LineItem) FinalAmount() int64 {
	return ResolveFinalAmount(li.BaseAmount, li.Discount, li.IsExempt)
}

func (li LineItem) AnnualAmount() int64 {
	return li.FinalAmount() * li.Cycle.PeriodsPerYear()
}

// EffectiveDiscount is what the item actually takes off its base.
func (li LineItem) EffectiveDiscount() int64 {
	if li.IsExempt {
		if li.BaseAmount < 0 {
			return 0
		}
		return li.BaseAmount
	}
	return ClampDiscount(li.BaseAmount, li.Discount)
}

// ClampDiscount limits discount to [0, max(base, 0)].
func ClampDiscount(base, discount int64) int64 {
	if base < 0 {
		base = 0
	}
	if discount < 0 {
		return 0
	}
	if discount > base {
		return base
	}
	return discount
}

// ResolveFinalAmount is the amount payable for one line item. Never negative.
func ResolveFinalAmount(base, discount int64, isExempt bool) int64 {
	if isExempt {
		return 0
	}
	final := base - ClampDiscount(base, discount)
	if final < 0 {
		return 0
	}
	return final
}

func SumDiscounts(items []LineItem) int64 {
	var total int64
	for _, li := range items {
		total += li.EffectiveDiscount()
	}
	return total
}

type SalaryStructure struct {
	BaseSalary               int64
	HRA                      int64
	OtherAllowances          int64
	FixedDeductions          int64
	AttendanceBasedDeduction bool
	Cycle                    Cycle
}

func (s SalaryStructure) Gross() int64 {
	return s.BaseSalary + s.HRA + s.OtherAllowances
}

type SalaryBreakdown struct {
	Gross               int64 `json:"gross"`
	FixedDeductions     int64 `json:"fixed_deductions"`
	AttendanceDeduction int64 `json:"attendance_deduction"`
	Net                 int64 `json:"net"`
}

// ResolveSalary computes gross and net. The attendance deduction only applies
// when the structure opts in. Net is not floored.
func ResolveSalary(s SalaryStructure, attendanceDeduction int64) SalaryBreakdown {
	gross := s.Gross()
	att := int64(0)
	if s.AttendanceBasedDeduction {
		att = attendanceDeduction
	}
	return SalaryBreakdown{
		Gross:               gross,
		FixedDeductions:     s.FixedDeductions,
		AttendanceDeduction: att,
		Net:                 gross - s.FixedDeductions - att,
	}
}

// EstimateAttendanceDeduction prorates gross over working days and charges the
// absent ones, rounding half up to the nearest minor unit.
func EstimateAttendanceDeduction(gross int64, workingDays, absentDays int) int64 {
	if workingDays <= 0 || absentDays <= 0 || gross <= 0 {
		return 0
	}
	if absentDays > workingDays {
		absentDays = workingDays
	}

	perDay := decimal.NewFromInt(gross).Div(decimal.NewFromInt(int64(workingDays)))
	return perDay.Mul(decimal.NewFromInt(int64(absentDays))).Round(0).IntPart()
}
