package hash

import (
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/keyed"
	"github.com/gostonefire/hashtable/internal/utils"
)

// ModuloHashAlgorithm - The internally used bucket selection algorithm. Integer keys are hashed with
// bucket = key mod tableSize, string keys are first reduced to the sum of their character codes and then hashed
// as integers. The string reduction is weak, anagrams always end up in the same bucket.
type ModuloHashAlgorithm struct {
	tableSize int64
}

// NewModuloHashAlgorithm - Returns a pointer to a new ModuloHashAlgorithm instance
func NewModuloHashAlgorithm(tableSize int64) *ModuloHashAlgorithm {
	ha := &ModuloHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// The table size is used as is, there is no rounding up to a power of 2 or to a prime.
func (M *ModuloHashAlgorithm) SetTableSize(tableSize int64) {
	M.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (M *ModuloHashAlgorithm) HashFunc1(key keyed.Key) (int64, error) {
	switch key.Kind() {
	case keyed.Integer:
		i, _ := key.IntValue()
		return M.intHash(i), nil
	case keyed.String:
		s, _ := key.StrValue()
		return M.intHash(hashfunc.StringToInt(s)), nil
	default:
		return 0, crt.NewInvalidKeyType(key)
	}
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (M *ModuloHashAlgorithm) GetTableSize() int64 {
	return M.tableSize
}

// ProbeIteration - Implements Linear Probing
func (M *ModuloHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	probe := hf1Value + iteration%M.tableSize
	if probe >= M.tableSize {
		probe -= M.tableSize
	}

	return probe
}

// intHash - Returns a start index into the table given an integer
func (M *ModuloHashAlgorithm) intHash(key int64) int64 {
	return utils.Mod(key, M.tableSize)
}
