package crossfilter

import "testing"

func TestNewFilterValue(t *testing.T) {
	v, err := NewFilterValue(1980, 2000)
	if err != nil {
		t.Fatalf("NewFilterValue: %v", err)
	}
	if v.Lower != 1980 || v.Upper != 2000 {
		t.Errorf("value = %v, want 1980-2000", v)
	}
}

func TestNewFilterValueSinglePoint(t *testing.T) {
	v, err := NewFilterValue(1990, 1990)
	if err != nil {
		t.Fatalf("NewFilterValue: %v", err)
	}
	if !v.Contains(1990) {
		t.Error("single-point range should contain its bound")
	}
}

func TestNewFilterValueInverted(t *testing.T) {
	_, err := NewFilterValue(2000, 1980)
	if err == nil {
		t.Fatal("expected error for inverted range")
	}
	if !IsValidation(err) {
		t.Errorf("error = %T, want ValidationError", err)
	}
}

func TestFilterValueEqual(t *testing.T) {
	a := FilterValue{Lower: 1980, Upper: 2000}
	b := FilterValue{Lower: 1980, Upper: 2000}
	c := FilterValue{Lower: 1980, Upper: 2001}
	if !a.Equal(b) {
		t.Error("identical ranges should be equal")
	}
	if a.Equal(c) {
		t.Error("ranges with different bounds should not be equal")
	}
}

func TestFilterValueClamp(t *testing.T) {
	cases := []struct {
		name   string
		in     FilterValue
		lo, hi int
		want   FilterValue
	}{
		{"inside", FilterValue{1960, 1990}, 1952, 2007, FilterValue{1960, 1990}},
		{"lower below", FilterValue{1900, 1990}, 1952, 2007, FilterValue{1952, 1990}},
		{"upper above", FilterValue{1960, 2050}, 1952, 2007, FilterValue{1960, 2007}},
		{"both outside", FilterValue{1900, 2050}, 1952, 2007, FilterValue{1952, 2007}},
		{"entirely above", FilterValue{2050, 2060}, 1952, 2007, FilterValue{2007, 2007}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Clamp(tc.lo, tc.hi)
			if !got.Equal(tc.want) {
				t.Errorf("Clamp(%d, %d) = %v, want %v", tc.lo, tc.hi, got, tc.want)
			}
		})
	}
}

func TestFilterValueContains(t *testing.T) {
	v := FilterValue{Lower: 1980, Upper: 2000}
	for _, year := range []int{1980, 1990, 2000} {
		if !v.Contains(year) {
			t.Errorf("Contains(%d) = false, want true", year)
		}
	}
	for _, year := range []int{1979, 2001} {
		if v.Contains(year) {
			t.Errorf("Contains(%d) = true, want false", year)
		}
	}
}

func TestFilterValueString(t *testing.T) {
	v := FilterValue{Lower: 1980, Upper: 2000}
	if got := v.String(); got != "1980-2000" {
		t.Errorf("String() = %q, want %q", got, "1980-2000")
	}
}
