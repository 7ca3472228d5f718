package hashfunc

import (
	"fmt"
	"strconv"

	"github.com/gostonefire/hashtable/internal/utils"
)

// IntFunc - Signature of a pure hash technique turning an integer into a bucket between 0 and tableSize - 1
type IntFunc func(val, tableSize int64) int64

// StringToInt - Converts a string to an integer by summing up the Unicode code points (runes) of its characters.
// Invalid UTF-8 bytes each count as utf8.RuneError (U+FFFD).
// Strings that are anagrams of each other result in the same integer.
func StringToInt(str string) (val int64) {
	for _, c := range str {
		val += int64(c)
	}

	return
}

// ModuloHash - The simplest hash function there is, val modulo tableSize
func ModuloHash(val, tableSize int64) int64 {
	return utils.Mod(val, tableSize)
}

// ShiftFoldingHash - Splits val into clusters of digits and sums the clusters, e.g. with 4 digits
// 11384272 => 1138 + 4272. The sum is then taken modulo tableSize.
//   - val is the value representing the key
//   - digits is the number of digits per cluster, clamped to 1 -> 18
//   - tableSize is the size of the table
func ShiftFoldingHash(val, digits, tableSize int64) int64 {
	div := utils.Pow10(utils.ClampDigits(digits, 1))

	var hash int64
	for val > 0 {
		hash += val % div
		val /= div
	}

	return utils.Mod(hash, tableSize)
}

// BoundaryFoldingHash - Works as ShiftFoldingHash but reverses the digits of every other cluster,
// e.g. with 4 digits 11384272 => 4272 + 8311.
//   - val is the value representing the key
//   - digits is the number of digits per cluster, clamped to 1 -> 18
//   - tableSize is the size of the table
func BoundaryFoldingHash(val, digits, tableSize int64) int64 {
	div := utils.Pow10(utils.ClampDigits(digits, 1))

	var hash, tmp, i int64
	for val > 0 {
		tmp = val % div
		if i%2 != 0 {
			tmp = utils.ReverseDigits(tmp)
		}
		hash += tmp
		val /= div
		i++
	}

	return utils.Mod(hash, tableSize)
}

// ReverseInt - Reverses the digits of an integer, e.g. 1138 => 8311
func ReverseInt(val int64) int64 {
	return utils.ReverseDigits(val)
}

// MidSquareHash - Squares val and extracts the digits innermost digits of the square, which are then
// taken modulo tableSize. The square is calculated on the absolute value, so val should stay within 32 bits.
//   - val is the value representing the key
//   - digits is the number of digits in the middle cluster, clamped to 1 -> 18
//   - tableSize is the size of the table
func MidSquareHash(val, digits, tableSize int64) int64 {
	digits = utils.ClampDigits(digits, 1)
	if val < 0 {
		val = -val
	}
	tmp := val * val

	numDigits := utils.NumDigits(tmp)
	var start int64 = 1
	if numDigits > digits {
		start = utils.Pow10((numDigits - digits) / 2)
	}

	tmp = (tmp / start) % utils.Pow10(digits)

	return utils.Mod(tmp, tableSize)
}

// ExtractionHash - Extracts the digits of val from leftIndex to rightIndex (both inclusive, counted from the most
// significant digit starting at 0) and takes the extracted cluster modulo tableSize,
// e.g. 20071138 with indexes 4 -> 7 gives 1138. Indexes outside the number of digits are clamped.
//   - val is the value representing the key
//   - leftIndex is the left index of the cluster
//   - rightIndex is the right index of the cluster
//   - tableSize is the size of the table
func ExtractionHash(val, leftIndex, rightIndex, tableSize int64) int64 {
	if val < 0 {
		val = -val
	}
	numDigits := utils.NumDigits(val)

	leftIndex = clamp(leftIndex, 0, numDigits-1)
	rightIndex = clamp(rightIndex, leftIndex, numDigits-1)

	// A cluster starting at the first digit of a 19 digit value needs no upper cut, and 10^19 overflows
	if numDigits-leftIndex <= utils.MaxDigits {
		val %= utils.Pow10(numDigits - leftIndex)
	}
	rightDiv := utils.Pow10(numDigits - rightIndex - 1)

	return utils.Mod(val/rightDiv, tableSize)
}

// RadixHash - Renders val in another radix and then reads that rendering as if it was a base 10 number,
// which is finally taken modulo tableSize. Radix must be between 2 and 10 (inclusive), and low radixes
// will overflow for large values, in both cases an error is returned.
//   - val is the value representing the key
//   - radix is the base of the converted number
//   - tableSize is the size of the table
func RadixHash(val, radix, tableSize int64) (hash int64, err error) {
	if radix < 2 || radix > 10 {
		err = fmt.Errorf("radix must be between 2 and 10, got %d", radix)
		return
	}

	tmp, err := strconv.ParseInt(strconv.FormatInt(val, int(radix)), 10, 64)
	if err != nil {
		err = fmt.Errorf("radix too low given key, try a larger radix or smaller key: %s", err)
		return
	}

	hash = utils.Mod(tmp, tableSize)

	return
}

// clamp - Keeps v within lo -> hi (inclusive)
func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
