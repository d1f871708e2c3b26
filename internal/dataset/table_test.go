package dataset

import "testing"

func sampleTable() Table {
	return Table{
		{Country: "China", Continent: "Asia", Year: 1952, LifeExp: 44.0, Pop: 556263527, GDPPercap: 400.45},
		{Country: "China", Continent: "Asia", Year: 1957, LifeExp: 46.6, Pop: 601670549, GDPPercap: 503.38},
		{Country: "China", Continent: "Asia", Year: 2007, LifeExp: 72.9, Pop: 1318683096, GDPPercap: 4959.11},
		{Country: "Germany", Continent: "Europe", Year: 1952, LifeExp: 67.5, Pop: 69145952, GDPPercap: 7144.11},
		{Country: "Germany", Continent: "Europe", Year: 2007, LifeExp: 79.4, Pop: 82400996, GDPPercap: 32170.37},
		{Country: "Nigeria", Continent: "Africa", Year: 1952, LifeExp: 36.3, Pop: 33119096, GDPPercap: 1077.28},
		{Country: "Nigeria", Continent: "Africa", Year: 2007, LifeExp: 46.9, Pop: 135031164, GDPPercap: 2013.98},
	}
}

func TestFilterYears(t *testing.T) {
	got := sampleTable().FilterYears(1952, 1957)
	if len(got) != 5 {
		t.Fatalf("rows = %d, want 5", len(got))
	}
	for _, r := range got {
		if r.Year > 1957 {
			t.Errorf("row %s/%d outside range", r.Country, r.Year)
		}
	}
}

func TestFilterYearsEmptyResult(t *testing.T) {
	got := sampleTable().FilterYears(1900, 1910)
	if len(got) != 0 {
		t.Errorf("rows = %d, want 0", len(got))
	}
}

func TestCountries(t *testing.T) {
	got := sampleTable().Countries("Germany", "Nigeria")
	if len(got) != 4 {
		t.Fatalf("rows = %d, want 4", len(got))
	}
	for _, r := range got {
		if r.Country == "China" {
			t.Error("unselected country present")
		}
	}
}

func TestForYear(t *testing.T) {
	got := sampleTable().ForYear(2007)
	if len(got) != 3 {
		t.Fatalf("rows = %d, want 3", len(got))
	}
	for _, r := range got {
		if r.Year != 2007 {
			t.Errorf("row year = %d, want 2007", r.Year)
		}
	}
}

func TestLatestYear(t *testing.T) {
	if got := sampleTable().LatestYear(); got != 2007 {
		t.Errorf("LatestYear() = %d, want 2007", got)
	}
	if got := (Table{}).LatestYear(); got != 0 {
		t.Errorf("empty LatestYear() = %d, want 0", got)
	}
}

func TestYearBounds(t *testing.T) {
	lo, hi, ok := sampleTable().YearBounds()
	if !ok {
		t.Fatal("YearBounds not ok for non-empty table")
	}
	if lo != 1952 || hi != 2007 {
		t.Errorf("bounds = %d-%d, want 1952-2007", lo, hi)
	}
	if _, _, ok := (Table{}).YearBounds(); ok {
		t.Error("YearBounds ok for empty table")
	}
}

func TestContinents(t *testing.T) {
	got := sampleTable().Continents()
	want := []string{"Africa", "Asia", "Europe"}
	if len(got) != len(want) {
		t.Fatalf("continents = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("continents[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSumPopByContinent(t *testing.T) {
	sums := sampleTable().ForYear(2007).SumPopByContinent()
	if sums["Asia"] != 1318683096 {
		t.Errorf("Asia = %d, want 1318683096", sums["Asia"])
	}
	if sums["Europe"] != 82400996 {
		t.Errorf("Europe = %d, want 82400996", sums["Europe"])
	}
	if sums["Africa"] != 135031164 {
		t.Errorf("Africa = %d, want 135031164", sums["Africa"])
	}
}
