package dataset

import "sort"

// Row is one country-year observation.
type Row struct {
	Country   string
	Continent string
	Year      int
	LifeExp   float64
	Pop       int64
	GDPPercap float64
}

// Table is an immutable slice of observations. Helpers return fresh
// slices and never mutate the receiver.
type Table []Row

// FilterYears keeps rows whose year falls inside [lo, hi].
func (t Table) FilterYears(lo, hi int) Table {
	var out Table
	for _, r := range t {
		if r.Year >= lo && r.Year <= hi {
			out = append(out, r)
		}
	}
	return out
}

// Countries keeps rows for the named countries, in table order.
func (t Table) Countries(names ...string) Table {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var out Table
	for _, r := range t {
		if want[r.Country] {
			out = append(out, r)
		}
	}
	return out
}

// ForYear keeps rows from exactly one year.
func (t Table) ForYear(year int) Table {
	var out Table
	for _, r := range t {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out
}

// LatestYear returns the largest year present, or 0 for an empty table.
func (t Table) LatestYear() int {
	latest := 0
	for _, r := range t {
		if r.Year > latest {
			latest = r.Year
		}
	}
	return latest
}

// YearBounds returns the smallest and largest year present. ok is false
// for an empty table.
func (t Table) YearBounds() (lo, hi int, ok bool) {
	if len(t) == 0 {
		return 0, 0, false
	}
	lo, hi = t[0].Year, t[0].Year
	for _, r := range t[1:] {
		if r.Year < lo {
			lo = r.Year
		}
		if r.Year > hi {
			hi = r.Year
		}
	}
	return lo, hi, true
}

// Continents returns the distinct continents present, sorted.
func (t Table) Continents() []string {
	seen := make(map[string]bool)
	for _, r := range t {
		seen[r.Continent] = true
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// SumPopByContinent totals population per continent.
func (t Table) SumPopByContinent() map[string]int64 {
	sums := make(map[string]int64)
	for _, r := range t {
		sums[r.Continent] += r.Pop
	}
	return sums
}
