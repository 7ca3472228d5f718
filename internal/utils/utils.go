package utils

// Mod - Returns a modulo n normalized into the range 0 -> n - 1, also for negative a.
// n must be higher than 0 (zero).
func Mod(a, n int64) int64 {
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}

// MaxDigits - The highest power of 10 that fits in an int64
const MaxDigits int64 = 18

// Pow10 - Returns 10 to the power of exp. exp is clamped to 0 -> MaxDigits since anything larger overflows int64.
func Pow10(exp int64) int64 {
	exp = ClampDigits(exp, 0)

	p := int64(1)
	for i := int64(0); i < exp; i++ {
		p *= 10
	}

	return p
}

// ClampDigits - Keeps a digit count within min -> MaxDigits (inclusive)
func ClampDigits(digits, min int64) int64 {
	if digits < min {
		return min
	}
	if digits > MaxDigits {
		return MaxDigits
	}

	return digits
}

// NumDigits - Returns the number of decimal digits in val, a leading minus sign is not counted
func NumDigits(val int64) int64 {
	if val == 0 {
		return 1
	}

	var n int64
	for val != 0 {
		val /= 10
		n++
	}

	return n
}

// ReverseDigits - Returns val with its decimal digits in reverse order, e.g. 1138 -> 8311.
// Values of 0 (zero) or less return 0 (zero).
func ReverseDigits(val int64) (r int64) {
	for val > 0 {
		r = r*10 + val%10
		val /= 10
	}

	return
}
