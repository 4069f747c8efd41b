package ecosystem

import "testing"

func TestHashKnownValues(t *testing.T) {
	cases := map[string]int{
		"":            5381,
		"a":           177670,
		"wawa":        2090859765,
		"kaka":        2090428125,
		"multitasker": 1734405178,
	}
	for in, want := range cases {
		if got := Hash(in); got != want {
			t.Fatalf("Hash(%q) = %d, expected %d", in, got, want)
		}
	}
}

func TestHashNonNegativeAndStable(t *testing.T) {
	names := []string{"agent-with-a-rather-long-identifier", "ünïcødé", "🦀crab", "x"}
	for _, n := range names {
		first := Hash(n)
		if first < 0 {
			t.Fatalf("Hash(%q) = %d, expected non-negative", n, first)
		}
		if again := Hash(n); again != first {
			t.Fatalf("Hash(%q) unstable: %d then %d", n, first, again)
		}
	}
}
