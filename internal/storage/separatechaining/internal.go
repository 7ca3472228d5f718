package separatechaining

import (
	"fmt"

	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/internal/overflow"
	"github.com/gostonefire/hashtable/keyed"
)

// getBucketNo - Returns the bucket number for the given key and makes sure it is within the table
func (S *SCTable[T]) getBucketNo(key keyed.Key) (bucketNo int64, err error) {
	bucketNo, err = S.hashAlgorithm.HashFunc1(key)
	if err != nil {
		return
	}

	if bucketNo < 0 || bucketNo >= S.tableSize {
		err = fmt.Errorf("received bucket number from hash algorithm is outside permitted range")
		return
	}

	return
}

// findInChain - Walks the chain in a bucket looking for key.
// It returns:
//   - node is the node holding key if found, otherwise the last node in the chain (nil for an empty bucket)
//   - err is of type crt.NotFound if key is not in the chain
func (S *SCTable[T]) findInChain(bucketNo int64, key keyed.Key) (node *model.Node[T], err error) {
	iter := overflow.NewRecords(S.buckets[bucketNo])

	var cur *model.Node[T]
	for iter.HasNext() {
		cur, err = iter.Next()
		if err != nil {
			return
		}
		if cur.Entry.Key().Equal(key) {
			node = cur
			return
		}
		node = cur
	}

	err = crt.NotFound{}

	return
}
