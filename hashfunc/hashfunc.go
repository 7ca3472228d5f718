package hashfunc

import "github.com/gostonefire/hashtable/keyed"

// HashAlgorithm - Interface that permits an implementation using the HashTable to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new hash table, hence if a custom hash algorithm is supplied that already has a
	// table size, it will be overwritten by the capacity given when creating the hash table.
	//   - tableSize is the number of buckets the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	// Keys that are neither integers nor strings must result in an error of type crt.InvalidKeyType.
	HashFunc1(key keyed.Key) (int64, error)

	// GetTableSize - Returns the table size the implemented hash functions are supporting
	GetTableSize() int64

	// ProbeIteration - Returns the bucket to visit in a given probing iteration, where iteration 0 (zero) is the
	// home bucket returned from HashFunc1.
	// Since this function will be called repeatedly in a collision resolution situation, and the actual hash value
	// from HashFunc1 is the same throughout iterations for one key, the function takes that value rather than
	// using the actual key as input.
	// The Linear Probing table relies on the function visiting every bucket exactly once during table size iterations.
	// The function is not used for the Separate Chaining Collision Resolution Technique.
	ProbeIteration(hf1Value, iteration int64) int64
}
