package hashtable

import (
	"fmt"

	"github.com/gostonefire/hashtable/keyed"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Item - One stored key and value together with the bucket (or slot) it is stored in
type Item[T any] struct {
	Index int64
	Key   keyed.Key
	Value T
}

// Insert - Adds a new entry to the table. An existing key is never overwritten.
//   - key is the identifier of the entry, an integer or a string key
//   - value is the value to store along with the key
//
// It returns:
//   - index is the bucket (or slot) the entry was stored in
//   - err is of type crt.DuplicateKey if the key is already present, crt.InvalidKeyType if the key is not valid,
//     crt.TableFull if a linear probing table has no landing slot left, or a standard error
func (H *HashTable[T]) Insert(key keyed.Key, value T) (index int64, err error) {
	return H.tableManagement.Insert(keyed.NewEntry(key, value))
}

// Lookup - Gets the value that corresponds to the given key.
//   - key is the identifier of the entry
//
// It returns:
//   - value is the value of the matching entry if found
//   - err is of type crt.NotFound if there is no match, crt.InvalidKeyType if the key is not valid, or a standard error
func (H *HashTable[T]) Lookup(key keyed.Key) (value T, err error) {
	entry, err := H.tableManagement.Lookup(key)
	if err != nil {
		return
	}

	value = entry.Value()

	return
}

// Delete - Removes the entry that corresponds to the given key and returns its value.
//   - key is the identifier of the entry
//
// It returns:
//   - value is the value of the removed entry
//   - err is of type crt.NotFound if there is no match, crt.InvalidKeyType if the key is not valid, or a standard error
func (H *HashTable[T]) Delete(key keyed.Key) (value T, err error) {
	entry, err := H.tableManagement.Delete(key)
	if err != nil {
		return
	}

	value = entry.Value()

	return
}

// Enumerate - Returns all stored entries in index order, and for separate chaining in chain order within a bucket
func (H *HashTable[T]) Enumerate() (items []Item[T]) {
	slots := H.tableManagement.Enumerate()

	items = make([]Item[T], len(slots))
	for i, s := range slots {
		items[i] = Item[T]{Index: s.Index, Key: s.Entry.Key(), Value: s.Entry.Value()}
	}

	return
}

// GetBucketNo - Returns the home bucket for the given key, the bucket it hashes to before any collision resolution
func (H *HashTable[T]) GetBucketNo(key keyed.Key) (bucketNo int64, err error) {
	return H.tableManagement.GetBucketNo(key)
}

// Stat - Returns statistics about the table
//   - includeDistribution when set to true also fills in the number of entries stored at each index
//
// It returns:
//   - tableStat is a TableStat struct
func (H *HashTable[T]) Stat(includeDistribution bool) (tableStat TableStat) {
	sp := H.tableManagement.GetStorageParameters()

	tableStat = TableStat{
		Records:    sp.NumberOfOccupiedRecords,
		Tombstones: sp.NumberOfDeletedRecords,
	}

	if includeDistribution {
		tableStat.BucketDistribution = make([]int64, sp.TableSize)
		for _, s := range H.tableManagement.Enumerate() {
			tableStat.BucketDistribution[s.Index]++
		}
	}

	return
}

// Populate - Inserts keys and values pairwise. A failing pair does not stop the remaining pairs from being inserted.
//   - keys are the identifiers of the entries
//   - values are the values to store, one for each key
//
// It returns:
//   - inserted is the number of pairs successfully inserted
//   - err is a combination of every failure encountered, use multierr.Errors to get them one by one
func (H *HashTable[T]) Populate(keys []keyed.Key, values []T) (inserted int, err error) {
	if len(keys) != len(values) {
		err = fmt.Errorf("error while populating: got %d keys but %d values", len(keys), len(values))
		return
	}

	for i, key := range keys {
		_, iErr := H.Insert(key, values[i])
		if iErr != nil {
			H.logger.Debug("could not insert item", zap.Stringer("key", key), zap.Error(iErr))
			err = multierr.Append(err, fmt.Errorf("error while inserting key %s: %w", key, iErr))
			continue
		}
		inserted++
	}

	return
}
