package fixed

import (
	"math"
	"testing"
)

func TestIntRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, -1, 7, -7, 100, 32767, -32768} {
		if got := FromInt(v).ToInt(); got != v {
			t.Errorf("FromInt(%d).ToInt() = %d", v, got)
		}
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		a, b, want Fixed
	}{
		{One, One, One},
		{FromInt(3), FromInt(4), FromInt(12)},
		{FromInt(-3), FromInt(4), FromInt(-12)},
		{Half, FromInt(10), FromInt(5)},
		{Half, Half, One / 4},
		{0, FromInt(99), 0},
	}
	for _, tt := range tests {
		if got := tt.a.Mul(tt.b); got != tt.want {
			t.Errorf("%d.Mul(%d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMulTruncates(t *testing.T) {
	// 1/65536 * 1/65536 underflows to zero, never rounds up.
	eps := Fixed(1)
	if got := eps.Mul(eps); got != 0 {
		t.Errorf("eps*eps = %d, want 0", got)
	}
}

func TestDiv(t *testing.T) {
	tests := []struct {
		a, b, want Fixed
	}{
		{FromInt(12), FromInt(4), FromInt(3)},
		{FromInt(1), FromInt(2), Half},
		{FromInt(-12), FromInt(4), FromInt(-3)},
		{FromInt(7), One, FromInt(7)},
	}
	for _, tt := range tests {
		if got := tt.a.Div(tt.b); got != tt.want {
			t.Errorf("%d.Div(%d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDivByZero(t *testing.T) {
	if got := FromInt(5).Div(0); got != Fixed(math.MaxInt32) {
		t.Errorf("positive/0 = %d, want MaxInt32", got)
	}
	if got := Fixed(0).Div(0); got != Fixed(math.MaxInt32) {
		t.Errorf("0/0 = %d, want MaxInt32", got)
	}
	if got := FromInt(-5).Div(0); got != Fixed(math.MinInt32) {
		t.Errorf("negative/0 = %d, want MinInt32", got)
	}
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		in, want Fixed
	}{
		{0, 0},
		{-One, 0},
		{One, One},
		{FromInt(4), FromInt(2)},
		{FromInt(9), FromInt(3)},
		{FromInt(16), FromInt(4)},
		{FromInt(100), FromInt(10)},
	}
	for _, tt := range tests {
		if got := tt.in.Sqrt(); got != tt.want {
			t.Errorf("Sqrt(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSqrtApprox(t *testing.T) {
	// Non-perfect squares must be within one integer step below the true root.
	for _, v := range []int{2, 3, 5, 50, 1000} {
		got := FromInt(v).Sqrt().ToFloat()
		want := math.Sqrt(float64(v))
		if diff := want - got; diff < 0 || diff > 0.01 {
			t.Errorf("Sqrt(%d) = %f, want ~%f", v, got, want)
		}
	}
}

func TestSqrtDeterministic(t *testing.T) {
	// Same input always yields the same bits.
	for i := 0; i < 1000; i++ {
		v := Fixed(i * 7919)
		if v.Sqrt() != v.Sqrt() {
			t.Fatalf("Sqrt(%d) not stable", v)
		}
	}
}

func TestDist(t *testing.T) {
	got := Dist(0, 0, FromInt(3), FromInt(4))
	if got != FromInt(5) {
		t.Errorf("Dist(0,0,3,4) = %d, want %d", got, FromInt(5))
	}
	if d := Dist(FromInt(10), FromInt(10), FromInt(10), FromInt(10)); d != 0 {
		t.Errorf("Dist same point = %d, want 0", d)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(FromInt(5), 0, One); got != One {
		t.Errorf("Clamp above = %d", got)
	}
	if got := Clamp(FromInt(-5), 0, One); got != 0 {
		t.Errorf("Clamp below = %d", got)
	}
	if got := Clamp(Half, 0, One); got != Half {
		t.Errorf("Clamp inside = %d", got)
	}
}
