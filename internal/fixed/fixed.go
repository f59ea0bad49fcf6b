// Package fixed provides Q16.16 fixed-point arithmetic for the simulation.
// All positional and stat quantities in the sim core are represented as
// scaled integers so that results are bit-identical across platforms.
// Floating point appears only at serialization boundaries (FromFloat/ToFloat).
package fixed

import "math"

// Scale is the Q16.16 scale factor: 1.0 is represented as 65536.
const Scale = 65536

// One is 1.0 in fixed-point representation.
const One Fixed = Scale

// Half is 0.5 in fixed-point representation.
const Half Fixed = Scale / 2

// Fixed represents a Q16.16 fixed-point number.
// 16 bits of integer part, 16 bits of fraction; precision 1/65536.
type Fixed int32

// FromInt converts an integer cell/stat value to fixed-point.
func FromInt(i int) Fixed {
	return Fixed(i << 16)
}

// FromFloat converts a float64 to fixed-point, truncating toward zero.
// Only used at configuration/serialization boundaries, never inside a tick.
func FromFloat(f float64) Fixed {
	return Fixed(int32(f * Scale))
}

// ToInt converts fixed-point to an integer, truncating toward zero.
func (f Fixed) ToInt() int {
	return int(f) / Scale
}

// ToFloat converts fixed-point to float64 for display/serialization.
func (f Fixed) ToFloat() float64 {
	return float64(f) / Scale
}

// Add returns f + other with plain int32 wraparound semantics.
func (f Fixed) Add(other Fixed) Fixed {
	return f + other
}

// Sub returns f - other.
func (f Fixed) Sub(other Fixed) Fixed {
	return f - other
}

// Mul multiplies two fixed-point values.
// Widens to 64 bits, multiplies, shifts right by 16 and truncates to 32 bits
// in a single, fixed truncation moment.
func (f Fixed) Mul(other Fixed) Fixed {
	return Fixed((int64(f) * int64(other)) >> 16)
}

// Div divides two fixed-point values.
// Division by zero returns MaxInt32 for non-negative numerators and MinInt32
// for negative ones, so callers never see a platform-dependent trap.
func (f Fixed) Div(other Fixed) Fixed {
	if other == 0 {
		if f >= 0 {
			return Fixed(math.MaxInt32)
		}
		return Fixed(math.MinInt32)
	}
	return Fixed((int64(f) << 16) / int64(other))
}

// MulInt multiplies fixed-point by a plain integer.
func (f Fixed) MulInt(n int) Fixed {
	return Fixed(int64(f) * int64(n))
}

// DivInt divides fixed-point by a plain integer. n == 0 returns 0.
func (f Fixed) DivInt(n int) Fixed {
	if n == 0 {
		return 0
	}
	return Fixed(int64(f) / int64(n))
}

// Sqrt returns the square root of a fixed-point value.
// Integer Newton's method on the raw scaled representation; the result is
// shifted left by 8 (sqrt of the 2^16 scale) to stay in Q16.16.
// Non-positive inputs return 0.
func (f Fixed) Sqrt() Fixed {
	if f <= 0 {
		return 0
	}
	raw := int64(f)
	x := raw
	y := (x + 1) >> 1
	for y < x {
		x = y
		y = (x + raw/x) >> 1
	}
	return Fixed(x << 8)
}

// Abs returns the absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Sign returns -1, 0, or 1.
func (f Fixed) Sign() int {
	if f < 0 {
		return -1
	}
	if f > 0 {
		return 1
	}
	return 0
}

// Clamp restricts f to [minVal, maxVal].
func Clamp(f, minVal, maxVal Fixed) Fixed {
	if f < minVal {
		return minVal
	}
	if f > maxVal {
		return maxVal
	}
	return f
}

// Dist returns the Euclidean distance between (x1,y1) and (x2,y2).
// Field coordinates stay far below the Q16.16 integer range, so the
// intermediate sum of squares does not overflow.
func Dist(x1, y1, x2, y2 Fixed) Fixed {
	dx := x1.Sub(x2)
	dy := y1.Sub(y2)
	return dx.Mul(dx).Add(dy.Mul(dy)).Sqrt()
}
