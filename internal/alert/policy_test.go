package alert

import "testing"

func TestLatchedThresholdPolicy(t *testing.T) {
	p := LatchedThresholdPolicy{Threshold: 10}

	tests := []struct {
		name         string
		value        float64
		alreadyFired bool
		want         bool
	}{
		{"below threshold", 9.99, false, false},
		{"at threshold", 10, false, true},
		{"above threshold", 15, false, true},
		{"already fired at threshold", 10, true, false},
		{"already fired above", 100, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.ShouldFire(tc.value, tc.alreadyFired); got != tc.want {
				t.Errorf("ShouldFire(%v, %v) = %v, want %v", tc.value, tc.alreadyFired, got, tc.want)
			}
		})
	}
}

func TestRecurringThresholdPolicy(t *testing.T) {
	p := RecurringThresholdPolicy{Threshold: 15}

	if p.ShouldFire(14.99, false) {
		t.Error("fired below threshold")
	}
	if !p.ShouldFire(15, false) {
		t.Error("did not fire at threshold")
	}
	// Prior firings never suppress the recurring policy.
	if !p.ShouldFire(15, true) {
		t.Error("prior firing suppressed the recurring policy")
	}
}

func TestSpikePolicy(t *testing.T) {
	p := SpikePolicy{Threshold: 1}

	if p.ShouldFire(0.999, false) {
		t.Error("fired below threshold")
	}
	if !p.ShouldFire(1, true) {
		t.Error("spike policy must ignore prior firings")
	}
}
