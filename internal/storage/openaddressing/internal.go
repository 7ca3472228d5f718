package openaddressing

import (
	"fmt"

	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/keyed"
	"go.uber.org/zap"
)

// getBucketNo - Returns the home bucket for the given key and makes sure it is within the table
func (O *OATable[T]) getBucketNo(key keyed.Key) (bucketNo int64, err error) {
	bucketNo, err = O.hashAlgorithm.HashFunc1(key)
	if err != nil {
		return
	}

	if bucketNo < 0 || bucketNo >= O.tableSize {
		err = fmt.Errorf("received bucket number from hash algorithm is outside permitted range")
		return
	}

	return
}

// slotState - Returns the state of a slot, a nil slot is empty and an invalid entry is a tombstone
func (O *OATable[T]) slotState(slotNo int64) uint8 {
	switch {
	case O.slots[slotNo] == nil:
		return model.RecordEmpty
	case !O.slots[slotNo].IsValid():
		return model.RecordDeleted
	default:
		return model.RecordOccupied
	}
}

// probingForLookup - Is the Linear Probing Collision Resolution Technique algorithm for finding a valid entry.
// An empty slot ends the search while tombstones are passed over, also tombstones holding the same key since
// the key may have been inserted again further along the probe sequence.
func (O *OATable[T]) probingForLookup(key keyed.Key) (slotNo int64, err error) {
	var probe, n int64

	hf1Value, err := O.getBucketNo(key)
	if err != nil {
		return
	}

	iMax := O.tableSize * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = O.hashAlgorithm.ProbeIteration(hf1Value, i)
		if probe < O.tableSize && probe >= 0 {
			switch O.slotState(probe) {
			case model.RecordEmpty:
				O.logger.Debug("could not find item", zap.Stringer("key", key), zap.Int64("slot", probe))
				err = crt.NotFound{}
				return

			case model.RecordOccupied:
				if O.slots[probe].Key().Equal(key) {
					slotNo = probe
					return
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of slots
			n++
			if n >= O.tableSize {
				O.logger.Debug("could not find item, full cycle probed", zap.Stringer("key", key))
				err = crt.NotFound{}
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	err = crt.ProbingAlgorithm{}
	return
}

// probingForInsert - Is the Linear Probing Collision Resolution Technique algorithm for finding a slot to insert into.
// The first tombstone seen is remembered as landing slot, but probing continues until an empty slot so that a valid
// entry with the same key further along is detected as a duplicate. Tombstones holding the same key never block.
func (O *OATable[T]) probingForInsert(key keyed.Key) (slotNo int64, err error) {
	var deletedSlot, probe, n int64
	var hasCached bool

	hf1Value, err := O.getBucketNo(key)
	if err != nil {
		return
	}

	iMax := O.tableSize * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = O.hashAlgorithm.ProbeIteration(hf1Value, i)
		if probe < O.tableSize && probe >= 0 {
			switch O.slotState(probe) {
			case model.RecordEmpty:
				if hasCached {
					slotNo = deletedSlot
				} else {
					slotNo = probe
				}
				return

			case model.RecordOccupied:
				if O.slots[probe].Key().Equal(key) {
					O.logger.Debug("item already in table", zap.Stringer("key", key), zap.Int64("slot", probe))
					err = crt.NewDuplicateKey(key)
					return
				}
				O.logger.Debug("collision occurred", zap.Stringer("key", key), zap.Int64("slot", probe))

			case model.RecordDeleted:
				if !hasCached {
					deletedSlot = probe
					hasCached = true
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of slots
			n++
			if n >= O.tableSize {
				if hasCached {
					slotNo = deletedSlot
					return
				}
				O.logger.Debug("table full, could not add item", zap.Stringer("key", key))
				err = crt.TableFull{}
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	err = crt.ProbingAlgorithm{}
	return
}

// updateUtilizationInfo - Keeps the empty, occupied and deleted counters in line with a slot state transition
func (O *OATable[T]) updateUtilizationInfo(fromState, toState uint8) {
	switch fromState {
	case model.RecordEmpty:
		O.nEmpty--
	case model.RecordOccupied:
		O.nOccupied--
	case model.RecordDeleted:
		O.nDeleted--
	}

	switch toState {
	case model.RecordEmpty:
		O.nEmpty++
	case model.RecordOccupied:
		O.nOccupied++
	case model.RecordDeleted:
		O.nDeleted++
	}
}
