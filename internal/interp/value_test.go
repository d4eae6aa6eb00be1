package interp

import "testing"

func TestNumberStringDropsTrailingZero(t *testing.T) {
	tests := []struct {
		n    Number
		want string
	}{
		{3, "3"},
		{3.5, "3.5"},
		{0, "0"},
		{-2, "-2"},
	}
	for _, tt := range tests {
		if got := tt.n.String(); got != tt.want {
			t.Errorf("Number(%v).String() = %q, want %q", float64(tt.n), got, tt.want)
		}
	}
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{Nil{}, false},
		{Boolean(false), false},
		{Boolean(true), true},
		{Number(0), true},
		{String(""), true},
	}
	for _, tt := range tests {
		if got := IsTruthy(tt.v); got != tt.want {
			t.Errorf("IsTruthy(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestIsEqualCrossTypeNeverEqual(t *testing.T) {
	if IsEqual(Number(0), String("")) {
		t.Errorf("Number(0) should never equal String(\"\")")
	}
	if !IsEqual(Nil{}, Nil{}) {
		t.Errorf("Nil should equal Nil")
	}
	if IsEqual(Boolean(false), Nil{}) {
		t.Errorf("false should never equal nil")
	}
}
