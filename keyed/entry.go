package keyed

import (
	"fmt"

	"github.com/gostonefire/hashtable/crt"
)

// Entry - Pairs a key with its payload. The valid flag is only ever cleared by the linear probing table
// when the entry is deleted and left behind as a tombstone.
type Entry[T any] struct {
	key   Key
	value T
	valid bool
}

// NewEntry - Returns a new valid entry
func NewEntry[T any](key Key, value T) Entry[T] {
	return Entry[T]{key: key, value: value, valid: true}
}

// Key - Returns the entry key
func (E Entry[T]) Key() Key {
	return E.key
}

// Value - Returns the entry payload
func (E Entry[T]) Value() T {
	return E.value
}

// IsValid - Returns false if the entry has been deleted (tombstoned)
func (E Entry[T]) IsValid() bool {
	return E.valid
}

// MarkInvalid - Turns the entry into a tombstone
func (E *Entry[T]) MarkInvalid() {
	E.valid = false
}

// Compare - Compares the keys of two entries, returns -1, 0 or 1
func (E Entry[T]) Compare(other Entry[T]) int {
	return E.key.Compare(other.key)
}

// CompareTo - Compares with an arbitrary value, which has to be an Entry[T] or *Entry[T].
// Any other value results in an error of type crt.InvalidComparison.
func (E Entry[T]) CompareTo(other any) (cmp int, err error) {
	switch o := other.(type) {
	case Entry[T]:
		cmp = E.Compare(o)
	case *Entry[T]:
		if o == nil {
			err = crt.NewInvalidComparison(other)
			return
		}
		cmp = E.Compare(*o)
	default:
		err = crt.NewInvalidComparison(other)
	}

	return
}

// String - Renders the entry as "key => value"
func (E Entry[T]) String() string {
	return fmt.Sprintf("%s => %v", E.key, E.value)
}
