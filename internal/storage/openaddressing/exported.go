package openaddressing

import (
	"fmt"

	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/hash"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/keyed"
	"go.uber.org/zap"
)

// OATable - Represents an implementation of the Linear Probing Collision Resolution Technique.
// It uses one flat array of slots where each slot holds at most one entry. In case of a collision, it probes through
// the table one slot at a time, looking for an empty slot or a tombstone, and assigns that slot to the entry.
// Deleted entries are kept in place as tombstones so that probe chains passing through them stay intact.
// Once all slots are occupied the table will accept no more entries.
type OATable[T any] struct {
	slots             []*keyed.Entry[T]
	tableSize         int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	logger            *zap.Logger
	nEmpty            int64
	nOccupied         int64
	nDeleted          int64
}

// NewOATable - Returns a pointer to a new instance of Linear Probing table implementation.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting table creation and processing
//
// It returns:
//   - oaTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOATable[T any](crtConf model.CRTConf) (oaTable *OATable[T], err error) {
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

	oaTable = &OATable[T]{
		slots:             make([]*keyed.Entry[T], tableSize),
		tableSize:         tableSize,
		hashAlgorithm:     crtConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
		logger:            crtConf.Logger.With(zap.String("crt", crt.Name(crt.LinearProbing))),
		nEmpty:            tableSize,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OATable
func (O *OATable[T]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.LinearProbing,
		TableSize:                    O.tableSize,
		InternalAlgorithm:            O.internalAlgorithm,
		NumberOfEmptyRecords:         O.nEmpty,
		NumberOfOccupiedRecords:      O.nOccupied,
		NumberOfDeletedRecords:       O.nDeleted,
	}

	return
}

// GetBucketNo - Returns the home bucket that the given key hashes to, before any probing
func (O *OATable[T]) GetBucketNo(key keyed.Key) (bucketNo int64, err error) {
	return O.getBucketNo(key)
}

// GetSlot - Returns the entry and state of a slot
//   - slotNo is the index of the slot
//
// It returns:
//   - entry is a copy of the entry in the slot, zero for an empty slot
//   - state is one of model.RecordEmpty, model.RecordOccupied or model.RecordDeleted
//   - err is a standard error if slotNo is outside the table
func (O *OATable[T]) GetSlot(slotNo int64) (entry keyed.Entry[T], state uint8, err error) {
	if slotNo < 0 || slotNo >= O.tableSize {
		err = fmt.Errorf("slot number %d is outside permitted range", slotNo)
		return
	}

	state = O.slotState(slotNo)
	if state != model.RecordEmpty {
		entry = *O.slots[slotNo]
	}

	return
}

// Insert - Places an entry in the first empty slot or tombstone along its probe sequence.
//   - entry is the entry to add, only its key and value are used
//
// It returns:
//   - slotNo is the slot the entry was placed in
//   - err is of type crt.DuplicateKey if a valid entry with the same key exists, crt.TableFull if no slot was
//     available, crt.InvalidKeyType if the key can't be hashed, or a standard error if the hash algorithm misbehaves
func (O *OATable[T]) Insert(entry keyed.Entry[T]) (slotNo int64, err error) {
	slotNo, err = O.probingForInsert(entry.Key())
	if err != nil {
		return
	}

	fromState := O.slotState(slotNo)
	stored := keyed.NewEntry(entry.Key(), entry.Value())
	O.slots[slotNo] = &stored

	O.updateUtilizationInfo(fromState, model.RecordOccupied)

	return
}

// Lookup - Gets the valid entry that corresponds to the given key.
//
// It returns:
//   - entry is a copy of the matching entry if found
//   - err is of type crt.NotFound if there is no match, crt.InvalidKeyType if the key can't be hashed,
//     or a standard error if the hash algorithm misbehaves
func (O *OATable[T]) Lookup(key keyed.Key) (entry keyed.Entry[T], err error) {
	slotNo, err := O.probingForLookup(key)
	if err != nil {
		return
	}

	entry = *O.slots[slotNo]

	return
}

// Delete - Turns the valid entry that corresponds to the given key into a tombstone. The slot is not cleared since
// other keys may have probed past it.
//
// It returns:
//   - entry is a copy of the removed entry as it was before removal
//   - err is of type crt.NotFound if there is no match, crt.InvalidKeyType if the key can't be hashed,
//     or a standard error if the hash algorithm misbehaves
func (O *OATable[T]) Delete(key keyed.Key) (entry keyed.Entry[T], err error) {
	slotNo, err := O.probingForLookup(key)
	if err != nil {
		return
	}

	entry = *O.slots[slotNo]
	O.slots[slotNo].MarkInvalid()

	O.updateUtilizationInfo(model.RecordOccupied, model.RecordDeleted)

	return
}

// Enumerate - Returns all slots holding a valid entry, in slot order
func (O *OATable[T]) Enumerate() (slots []model.Slot[T]) {
	slots = make([]model.Slot[T], 0, O.nOccupied)

	for i := int64(0); i < O.tableSize; i++ {
		if O.slotState(i) == model.RecordOccupied {
			slots = append(slots, model.Slot[T]{Index: i, Entry: *O.slots[i]})
		}
	}

	return
}
