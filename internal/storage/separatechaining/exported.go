package separatechaining

import (
	"fmt"

	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/hash"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/internal/overflow"
	"github.com/gostonefire/hashtable/keyed"
	"go.uber.org/zap"
)

// SCTable - Represents an implementation of the Separate Chaining Collision Resolution Technique.
// Each bucket is the head of a single linked chain of entries that all hash to that bucket. Chains grow without
// limit, hence the table never reports itself as full.
type SCTable[T any] struct {
	buckets           []*model.Node[T]
	tableSize         int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	logger            *zap.Logger
	nEmpty            int64
	nOccupied         int64
}

// NewSCTable - Returns a pointer to a new instance of Separate Chaining table implementation.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting table creation and processing
//
// It returns:
//   - scTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCTable[T any](crtConf model.CRTConf) (scTable *SCTable[T], err error) {
	if crtConf.TableSize <= 0 {
		err = fmt.Errorf("table size must be a positive value higher than 0 (zero)")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		crtConf.HashAlgorithm = hash.NewModuloHashAlgorithm(crtConf.TableSize)
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.TableSize)
	}

	tableSize := crtConf.HashAlgorithm.GetTableSize()
	if tableSize <= 0 {
		err = fmt.Errorf("hash algorithm reports a table size of %d", tableSize)
		return
	}

	if crtConf.Logger == nil {
		crtConf.Logger = zap.NewNop()
	}

	scTable = &SCTable[T]{
		buckets:           make([]*model.Node[T], tableSize),
		tableSize:         tableSize,
		hashAlgorithm:     crtConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
		logger:            crtConf.Logger.With(zap.String("crt", crt.Name(crt.SeparateChaining))),
		nEmpty:            tableSize,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCTable.
// For separate chaining empty records are buckets without any chain and there are never any deleted records.
func (S *SCTable[T]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		TableSize:                    S.tableSize,
		InternalAlgorithm:            S.internalAlgorithm,
		NumberOfEmptyRecords:         S.nEmpty,
		NumberOfOccupiedRecords:      S.nOccupied,
		NumberOfDeletedRecords:       0,
	}

	return
}

// GetBucketNo - Returns the bucket number that the given key hashes to
func (S *SCTable[T]) GetBucketNo(key keyed.Key) (bucketNo int64, err error) {
	return S.getBucketNo(key)
}

// GetBucket - Returns an iterator over the chain in a given bucket
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
func (S *SCTable[T]) GetBucket(bucketNo int64) (chain *overflow.Records[T], err error) {
	if bucketNo < 0 || bucketNo >= S.tableSize {
		err = fmt.Errorf("bucket number %d is outside permitted range", bucketNo)
		return
	}

	chain = overflow.NewRecords(S.buckets[bucketNo])

	return
}

// Insert - Adds an entry to the end of the chain in its bucket.
//   - entry is the entry to add, only its key and value are used
//
// It returns:
//   - bucketNo is the bucket the entry was added to
//   - err is of type crt.DuplicateKey if the key already exists, crt.InvalidKeyType if the key can't be hashed,
//     or a standard error if the hash algorithm misbehaves
func (S *SCTable[T]) Insert(entry keyed.Entry[T]) (bucketNo int64, err error) {
	bucketNo, err = S.getBucketNo(entry.Key())
	if err != nil {
		return
	}

	node := &model.Node[T]{Entry: keyed.NewEntry(entry.Key(), entry.Value())}

	if S.buckets[bucketNo] == nil {
		S.buckets[bucketNo] = node
		S.nEmpty--
		S.nOccupied++
		return
	}

	last, err := S.findInChain(bucketNo, entry.Key())
	if err == nil {
		S.logger.Debug("item already in table", zap.Int64("bucket", bucketNo), zap.Stringer("key", entry.Key()))
		err = crt.NewDuplicateKey(entry.Key())
		return
	}
	err = nil

	S.logger.Debug("collision occurred", zap.Int64("bucket", bucketNo), zap.Stringer("key", entry.Key()))
	last.Next = node
	S.nOccupied++

	return
}

// Lookup - Gets the entry that corresponds to the given key.
//
// It returns:
//   - entry is the matching entry if found
//   - err is of type crt.NotFound if there is no match, crt.InvalidKeyType if the key can't be hashed,
//     or a standard error if the hash algorithm misbehaves
func (S *SCTable[T]) Lookup(key keyed.Key) (entry keyed.Entry[T], err error) {
	bucketNo, err := S.getBucketNo(key)
	if err != nil {
		return
	}

	node, err := S.findInChain(bucketNo, key)
	if err != nil {
		S.logger.Debug("item not in table", zap.Int64("bucket", bucketNo), zap.Stringer("key", key))
		return
	}

	entry = node.Entry

	return
}

// Delete - Unlinks the entry that corresponds to the given key from its chain and returns it.
//
// It returns:
//   - entry is the removed entry
//   - err is of type crt.NotFound if there is no match, crt.InvalidKeyType if the key can't be hashed,
//     or a standard error if the hash algorithm misbehaves
func (S *SCTable[T]) Delete(key keyed.Key) (entry keyed.Entry[T], err error) {
	bucketNo, err := S.getBucketNo(key)
	if err != nil {
		return
	}

	var prev *model.Node[T]
	for cur := S.buckets[bucketNo]; cur != nil; cur = cur.Next {
		if cur.Entry.Key().Equal(key) {
			if prev == nil {
				S.buckets[bucketNo] = cur.Next
			} else {
				prev.Next = cur.Next
			}

			S.nOccupied--
			if S.buckets[bucketNo] == nil {
				S.nEmpty++
			}

			entry = cur.Entry
			return
		}
		prev = cur
	}

	S.logger.Debug("item not in table, nothing deleted", zap.Int64("bucket", bucketNo), zap.Stringer("key", key))
	err = crt.NotFound{}

	return
}

// Enumerate - Returns all entries in bucket order, and in chain order within a bucket
func (S *SCTable[T]) Enumerate() (slots []model.Slot[T]) {
	slots = make([]model.Slot[T], 0, S.nOccupied)

	for i := int64(0); i < S.tableSize; i++ {
		iter := overflow.NewRecords(S.buckets[i])
		for iter.HasNext() {
			node, _ := iter.Next()
			slots = append(slots, model.Slot[T]{Index: i, Entry: node.Entry})
		}
	}

	return
}
