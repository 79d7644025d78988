package names

import "testing"

func TestUniquify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate string
		taken     []string
		want      string
	}{
		{"fresh name unchanged", "Trip", nil, "Trip"},
		{"first collision", "Trip", []string{"Trip"}, "Trip (1)"},
		{"second collision", "Trip", []string{"Trip", "Trip (1)"}, "Trip (2)"},
		{"gap is filled", "Trip", []string{"Trip", "Trip (2)"}, "Trip (1)"},
		{"suffix taken but base free", "Trip", []string{"Trip (1)"}, "Trip"},
		{"empty candidate", "", []string{""}, " (1)"},
		{"unrelated names ignored", "Trip", []string{"Groceries", "Move"}, "Trip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Uniquify(tt.candidate, SetOf(tt.taken))
			if got != tt.want {
				t.Errorf("Uniquify(%q, %v) = %q, want %q", tt.candidate, tt.taken, got, tt.want)
			}
		})
	}
}

func TestUniquifyNeverCollides(t *testing.T) {
	t.Parallel()

	// Grow the scope by repeatedly inserting the same candidate; the
	// result must never already be a member.
	taken := map[string]struct{}{}
	for i := 0; i < 50; i++ {
		got := Uniquify("Task", taken)
		if _, exists := taken[got]; exists {
			t.Fatalf("iteration %d: Uniquify returned taken name %q", i, got)
		}
		taken[got] = struct{}{}
	}
}

func TestUniquifyHasNoSideEffects(t *testing.T) {
	t.Parallel()

	taken := SetOf([]string{"A", "B"})
	_ = Uniquify("A", taken)
	if len(taken) != 2 {
		t.Errorf("scope mutated: got %d entries, want 2", len(taken))
	}
}

func TestSetOf(t *testing.T) {
	t.Parallel()

	taken := SetOf([]string{"A", "B"}, []string{"B", "C"}, nil)
	if len(taken) != 3 {
		t.Fatalf("expected 3 unique names, got %d", len(taken))
	}
	for _, name := range []string{"A", "B", "C"} {
		if _, ok := taken[name]; !ok {
			t.Errorf("expected %q in set", name)
		}
	}
}
