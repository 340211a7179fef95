package effects

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMedian3SuppressesSingleSpike(t *testing.T) {
	m := NewMedian3()

	var got []uint16
	for _, v := range []uint16{10, 10, 500, 10, 10} {
		got = append(got, m.Update(v))
	}

	want := []uint16{10, 10, 10, 10, 10}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("median outputs mismatch (-want +got):\n%s", diff)
	}
}

func TestMedian3FollowsStepChange(t *testing.T) {
	m := NewMedian3()

	m.Update(10)

	if got := m.Update(100); got != 10 {
		t.Fatalf("Update(100) = %d, want 10 (step not yet confirmed)", got)
	}

	if got := m.Update(100); got != 100 {
		t.Fatalf("second Update(100) = %d, want 100", got)
	}

	if got := m.Update(100); got != 100 {
		t.Fatalf("third Update(100) = %d, want 100", got)
	}
}

func TestMedian3StartupIsTransparent(t *testing.T) {
	m := NewMedian3()

	if got := m.Update(777); got != 777 {
		t.Fatalf("first Update(777) = %d, want 777", got)
	}
}

func TestMedian3Ordering(t *testing.T) {
	tests := []struct {
		a, b, c uint16
		want    uint16
	}{
		{1, 2, 3, 2},
		{3, 2, 1, 2},
		{2, 3, 1, 2},
		{5, 5, 9, 5},
		{9, 5, 5, 5},
		{7, 7, 7, 7},
	}

	for _, tt := range tests {
		if got := median3(tt.a, tt.b, tt.c); got != tt.want {
			t.Fatalf("median3(%d, %d, %d) = %d, want %d", tt.a, tt.b, tt.c, got, tt.want)
		}
	}
}
