package hashfunc

import (
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/keyed"
)

// IntFuncAlgorithm - Adapts a pure IntFunc technique into a HashAlgorithm. String keys are first reduced to an
// integer using StringToInt. Probing is linear.
type IntFuncAlgorithm struct {
	tableSize int64
	fn        IntFunc
}

// NewIntFuncAlgorithm - Returns a pointer to a new IntFuncAlgorithm instance wrapping fn
func NewIntFuncAlgorithm(fn IntFunc) *IntFuncAlgorithm {
	return &IntFuncAlgorithm{fn: fn}
}

// SetTableSize - Sets the table size for the hash algorithm
func (I *IntFuncAlgorithm) SetTableSize(tableSize int64) {
	I.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (I *IntFuncAlgorithm) HashFunc1(key keyed.Key) (int64, error) {
	if i, ok := key.IntValue(); ok {
		return I.fn(i, I.tableSize), nil
	}
	if s, ok := key.StrValue(); ok {
		return I.fn(StringToInt(s), I.tableSize), nil
	}

	return 0, crt.NewInvalidKeyType(key)
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (I *IntFuncAlgorithm) GetTableSize() int64 {
	return I.tableSize
}

// ProbeIteration - Implements Linear Probing
func (I *IntFuncAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	return (hf1Value + iteration) % I.tableSize
}
