package agent

import (
	"math"
	"testing"
)

func TestParseStatusFailsSoft(t *testing.T) {
	cases := map[string]Status{
		"alive":       StatusAlive,
		"CRITICAL":    StatusCritical,
		" dead ":      StatusDead,
		"unreachable": StatusUnreachable,
		"zombie":      StatusAlive,
		"":            StatusAlive,
	}
	for in, want := range cases {
		if got := ParseStatus(in); got != want {
			t.Fatalf("ParseStatus(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestClampCoercesMalformedFields(t *testing.T) {
	r := Record{Name: "x", Status: "weird", Balance: -5, DaysAlive: -2}.Clamp()
	if r.Status != StatusAlive || r.Balance != 0 || r.DaysAlive != 0 {
		t.Fatalf("unexpected clamp result %+v", r)
	}
	if got := (Record{Balance: math.NaN()}).Clamp().Balance; got != 0 {
		t.Fatalf("expected NaN balance to clamp to 0, got %f", got)
	}
	if got := (Record{Balance: math.Inf(1)}).Clamp().Balance; got != 0 {
		t.Fatalf("expected infinite balance to clamp to 0, got %f", got)
	}
}

func TestEqualIsOrderSensitive(t *testing.T) {
	a := []Record{{Name: "wawa"}, {Name: "kaka"}}
	b := []Record{{Name: "kaka"}, {Name: "wawa"}}
	if !Equal(a, a) {
		t.Fatal("expected list to equal itself")
	}
	if Equal(a, b) {
		t.Fatal("expected reordered list to differ")
	}
	if Equal(a, a[:1]) {
		t.Fatal("expected different lengths to differ")
	}
}

func TestFormatBalance(t *testing.T) {
	cases := map[float64]string{
		0:       "$0",
		4.5:     "$4.50",
		42:      "$42",
		1300:    "$1.3k",
		3400000: "$3.4M",
	}
	for in, want := range cases {
		if got := FormatBalance(in); got != want {
			t.Fatalf("FormatBalance(%v) = %q, expected %q", in, got, want)
		}
	}
}
