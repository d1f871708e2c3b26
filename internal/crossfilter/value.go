package crossfilter

import "fmt"

// FilterValue is an inclusive range over a comparable column. A value is
// immutable once constructed; edits replace the whole pair.
type FilterValue struct {
	Lower int
	Upper int
}

// NewFilterValue builds a validated range. Lower must not exceed Upper.
func NewFilterValue(lower, upper int) (FilterValue, error) {
	if lower > upper {
		return FilterValue{}, &ValidationError{
			Field: "range",
			Msg:   fmt.Sprintf("lower bound %d exceeds upper bound %d", lower, upper),
		}
	}
	return FilterValue{Lower: lower, Upper: upper}, nil
}

// Equal reports value equality, the comparison Write uses for idempotence.
func (v FilterValue) Equal(o FilterValue) bool {
	return v.Lower == o.Lower && v.Upper == o.Upper
}

// Clamp restricts both bounds to [lo, hi]. Used when configured defaults
// are wider than the data.
func (v FilterValue) Clamp(lo, hi int) FilterValue {
	c := v
	if c.Lower < lo {
		c.Lower = lo
	}
	if c.Upper > hi {
		c.Upper = hi
	}
	if c.Lower > c.Upper {
		c.Lower = c.Upper
	}
	return c
}

// Contains reports whether n falls inside the range.
func (v FilterValue) Contains(n int) bool {
	return n >= v.Lower && n <= v.Upper
}

func (v FilterValue) String() string {
	return fmt.Sprintf("%d-%d", v.Lower, v.Upper)
}
