package common

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		name         string
		v, lo, hi, w float64
	}{
		{"below", -5, 0, 10, 0},
		{"inside", 4, 0, 10, 4},
		{"above", 12, 0, 10, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp(c.v, c.lo, c.hi); got != c.w {
				t.Fatalf("expected %v, got %v", c.w, got)
			}
		})
	}
}

func TestLerpAndSign(t *testing.T) {
	if got := Lerp(0, 10, 0.1); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
	if Sign(-3) != -1 || Sign(0) != 0 || Sign(2) != 1 {
		t.Fatalf("unexpected sign results")
	}
}
