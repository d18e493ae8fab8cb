package booking

import "time"

const day = 24 * time.Hour

// DurationDays is ceil(|end - start| / 24h). Equal dates yield 0.
func DurationDays(start, end time.Time) int {
	d := end.Sub(start)
	if d < 0 {
		d = -d
	}
	days := int(d / day)
	if d%day != 0 {
		days++
	}
	return days
}

// ComputeTotal returns 0 when a date is missing (zero time) or no price is known.
func ComputeTotal(start, end time.Time, pricePerDay *int64) int64 {
	if start.IsZero() || end.IsZero() || pricePerDay == nil {
		return 0
	}
	return int64(DurationDays(start, end)) * *pricePerDay
}

type Quote struct {
	Days  int
	Total int64
}

// QuoteFromStrings prices raw form input; anything unparseable quotes as zero.
func QuoteFromStrings(start, end string, pricePerDay *int64) Quote {
	s, err := ParseDate(start)
	if err != nil {
		return Quote{}
	}
	e, err := ParseDate(end)
	if err != nil {
		return Quote{}
	}
	return Quote{
		Days:  DurationDays(s, e),
		Total: ComputeTotal(s, e, pricePerDay),
	}
}

type PriceCalculator interface {
	BillableDays(r DateRange) int
	Total(r DateRange, pricePerDay int64) int64
}

// DailyRateCalculator bills whole days. MinBillableDays > 0 puts a floor
// under short stays; 0 keeps same-day bookings free.
type DailyRateCalculator struct {
	MinBillableDays int
}

func NewDailyRateCalculator(minBillableDays int) *DailyRateCalculator {
	if minBillableDays < 0 {
		minBillableDays = 0
	}
	return &DailyRateCalculator{MinBillableDays: minBillableDays}
}

func (c *DailyRateCalculator) BillableDays(r DateRange) int {
	return max(r.Days(), c.MinBillableDays)
}

func (c *DailyRateCalculator) Total(r DateRange, pricePerDay int64) int64 {
	if pricePerDay <= 0 {
		return 0
	}
	return int64(c.BillableDays(r)) * pricePerDay
}
