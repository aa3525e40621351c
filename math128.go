package clipper

import (
	"math"
	"math/bits"
)

// Robust wide-integer arithmetic. Collinearity and intersection ordering at
// extreme coordinates need exact 128-bit products; everything here is built
// on portable high/low 64-bit halves.

// Int128 represents a signed 128-bit integer.
type Int128 struct {
	Hi int64  // high 64 bits (sign-extended)
	Lo uint64 // low 64 bits
}

// UInt128 represents an unsigned 128-bit integer.
type UInt128 struct {
	Hi uint64
	Lo uint64
}

// NewInt128 creates an Int128 from a 64-bit integer.
func NewInt128(val int64) Int128 {
	var hi int64
	if val < 0 {
		hi = -1 // sign extend
	}
	return Int128{Hi: hi, Lo: uint64(val)}
}

// IsNegative returns true if the value is negative.
func (i Int128) IsNegative() bool {
	return i.Hi < 0
}

// IsZero returns true if the value is zero.
func (i Int128) IsZero() bool {
	return i.Hi == 0 && i.Lo == 0
}

// Sign returns -1, 0 or +1.
func (i Int128) Sign() int {
	if i.Hi < 0 {
		return -1
	}
	if i.Hi == 0 && i.Lo == 0 {
		return 0
	}
	return 1
}

// Negate returns the two's-complement negation.
// Negate(MinInt128) wraps to MinInt128.
func (i Int128) Negate() Int128 {
	lo := ^i.Lo + 1
	hi := ^i.Hi
	if lo == 0 { // carry from low into high
		hi++
	}
	return Int128{Hi: hi, Lo: lo}
}

// Add adds two Int128 values.
func (i Int128) Add(other Int128) Int128 {
	lo, carry := bits.Add64(i.Lo, other.Lo, 0)
	hi, _ := bits.Add64(uint64(i.Hi), uint64(other.Hi), carry)
	return Int128{Hi: int64(hi), Lo: lo}
}

// Sub subtracts other from i.
func (i Int128) Sub(other Int128) Int128 {
	lo, borrow := bits.Sub64(i.Lo, other.Lo, 0)
	hi, _ := bits.Sub64(uint64(i.Hi), uint64(other.Hi), borrow)
	return Int128{Hi: int64(hi), Lo: lo}
}

// Cmp returns -1 if i < other, 0 if equal, 1 if i > other.
func (i Int128) Cmp(other Int128) int {
	if i.Hi != other.Hi {
		if i.Hi < other.Hi {
			return -1
		}
		return 1
	}
	if i.Lo == other.Lo {
		return 0
	}
	if i.Lo < other.Lo {
		return -1
	}
	return 1
}

// ToFloat64 converts to float64, losing precision beyond 53 bits.
func (i Int128) ToFloat64() float64 {
	if (i.Hi == 0 && i.Lo < 1<<63) || (i.Hi == -1 && i.Lo >= 1<<63) {
		return float64(int64(i.Lo)) // fits in int64
	}
	const two64 = 18446744073709551616.0
	return float64(i.Hi)*two64 + float64(i.Lo)
}

// mulInt64 multiplies two int64 values into a full 128-bit result.
func mulInt64(a, b int64) Int128 {
	if a == 0 || b == 0 {
		return Int128{}
	}
	negative := (a < 0) != (b < 0)
	au := absU64(a)
	bu := absU64(b)
	hi, lo := bits.Mul64(au, bu)
	result := Int128{Hi: int64(hi), Lo: lo}
	if negative {
		result = result.Negate()
	}
	return result
}

// absU64 returns |v| as uint64 (handles MinInt64 without overflow).
func absU64(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

// triSign returns -1, 0 or +1 for an int64.
func triSign(v int64) int {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}

// mulU64 multiplies two uint64 values into unsigned high/low halves.
func mulU64(a, b uint64) UInt128 {
	hi, lo := bits.Mul64(a, b)
	return UInt128{Hi: hi, Lo: lo}
}

// ProductsAreEqual decides whether a*b == c*d without overflow: signs are
// compared first, then the absolute products as 128-bit unsigned halves.
func ProductsAreEqual(a, b, c, d int64) bool {
	absAB := mulU64(absU64(a), absU64(b))
	absCD := mulU64(absU64(c), absU64(d))
	signAB := triSign(a) * triSign(b)
	signCD := triSign(c) * triSign(d)
	return absAB == absCD && signAB == signCD
}

// CrossProduct128 calculates the cross product of (p2-p1) and (p3-p1)
// using exact 128-bit intermediates.
func CrossProduct128(p1, p2, p3 Point64) Int128 {
	term1 := mulInt64(p2.X-p1.X, p3.Y-p1.Y)
	term2 := mulInt64(p2.Y-p1.Y, p3.X-p1.X)
	return term1.Sub(term2)
}

// Area128 calculates twice the signed area of a polygon exactly.
func Area128(path Path64) Int128 {
	if len(path) < 3 {
		return Int128{}
	}
	var area Int128
	prev := len(path) - 1
	for i := range path {
		// (prev.Y + cur.Y) * (prev.X - cur.X)
		area = area.Add(mulInt64(path[prev].Y+path[i].Y, path[prev].X-path[i].X))
		prev = i
	}
	return area
}

// checkCastInt64 rounds a float64 to int64, saturating outside the
// permitted coordinate range.
func checkCastInt64(val float64) int64 {
	if val >= maxCoordF {
		return InvalidCoord
	}
	if val <= minCoordF {
		return -InvalidCoord
	}
	return int64(math.Round(val))
}
