package crossfilter

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestInvokerRegisterAndInvoke(t *testing.T) {
	inv := NewComputationInvoker[[]int]()
	err := inv.Register("sum", func(data []int, v FilterValue) (string, error) {
		total := 0
		for _, n := range data {
			if v.Contains(n) {
				total += n
			}
		}
		return fmt.Sprintf("sum=%d", total), nil
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	out, err := inv.Invoke("sum", "year", FilterValue{Lower: 2, Upper: 4}, []int{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if out != "sum=9" {
		t.Errorf("renderable = %q, want %q", out, "sum=9")
	}
}

func TestInvokerWrapsComputationFailure(t *testing.T) {
	inv := NewComputationInvoker[[]int]()
	boom := errors.New("no rows in range")
	if err := inv.Register("empty", func([]int, FilterValue) (string, error) {
		return "", boom
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := inv.Invoke("empty", "year", FilterValue{Lower: 1, Upper: 2}, nil)
	if err == nil {
		t.Fatal("expected error from failing computation")
	}
	if !IsComputation(err) {
		t.Fatalf("error = %T, want ComputationError", err)
	}
	if !errors.Is(err, boom) {
		t.Error("wrapped error should unwrap to the computation's failure")
	}
	var ce *ComputationError
	if !errors.As(err, &ce) || ce.ComputationID != "empty" {
		t.Errorf("error should carry the computation id: %v", err)
	}
	if !strings.Contains(err.Error(), "year=1-2") {
		t.Errorf("error should record the bound parameter: %v", err)
	}
}

func TestInvokerUnknownComputation(t *testing.T) {
	inv := NewComputationInvoker[[]int]()
	_, err := inv.Invoke("ghost", "year", FilterValue{Lower: 1, Upper: 2}, nil)
	if err == nil {
		t.Fatal("expected error for unknown computation")
	}
	if !IsConfiguration(err) {
		t.Errorf("error = %T, want ConfigurationError", err)
	}
}

func TestInvokerDuplicateRegistration(t *testing.T) {
	inv := NewComputationInvoker[[]int]()
	fn := func([]int, FilterValue) (string, error) { return "", nil }
	if err := inv.Register("sum", fn); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	err := inv.Register("sum", fn)
	if err == nil {
		t.Fatal("expected error for duplicate registration")
	}
	if !IsConfiguration(err) {
		t.Errorf("error = %T, want ConfigurationError", err)
	}
}

func TestInvokerRejectsNilComputation(t *testing.T) {
	inv := NewComputationInvoker[[]int]()
	if err := inv.Register("nil", nil); err == nil {
		t.Fatal("expected error for nil computation")
	}
}

func TestInvokerIDs(t *testing.T) {
	inv := NewComputationInvoker[[]int]()
	fn := func([]int, FilterValue) (string, error) { return "", nil }
	for _, id := range []string{"scatterChart", "barChart", "lineChart"} {
		if err := inv.Register(id, fn); err != nil {
			t.Fatalf("Register(%q): %v", id, err)
		}
	}
	ids := inv.IDs()
	want := []string{"barChart", "lineChart", "scatterChart"}
	if len(ids) != len(want) {
		t.Fatalf("IDs() returned %d entries, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
	if !inv.Registered("lineChart") {
		t.Error("Registered(lineChart) = false, want true")
	}
	if inv.Registered("ghost") {
		t.Error("Registered(ghost) = true, want false")
	}
}
