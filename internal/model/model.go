package model

import (
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/keyed"
	"go.uber.org/zap"
)

// RecordEmpty - State indicating a slot that has never been in use
const RecordEmpty uint8 = 0

// RecordOccupied - State indicating a slot holding a valid entry
const RecordOccupied uint8 = 1

// RecordDeleted - State indicating a slot that has been in use but was deleted (tombstone)
const RecordDeleted uint8 = 2

// Node - Represents one link in a separate chaining bucket
type Node[T any] struct {
	Entry keyed.Entry[T]
	Next  *Node[T]
}

// Slot - Represents an entry together with the bucket (or slot) index it is stored in
type Slot[T any] struct {
	Index int64
	Entry keyed.Entry[T]
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	CollisionResolutionTechnique int
	TableSize                    int64
	InternalAlgorithm            bool
	NumberOfEmptyRecords         int64
	NumberOfOccupiedRecords      int64
	NumberOfDeletedRecords       int64
}

// CRTConf - Is a struct to be passed in the call to NewXXTable and contains configuration that affects
// table creation and processing.
//   - TableSize is the number of buckets to create
//   - HashAlgorithm is the hash function(s) to use, nil selects the internal modulo algorithm
//   - Logger receives trace output on collisions and failures, nil disables it
type CRTConf struct {
	TableSize     int64
	HashAlgorithm hashfunc.HashAlgorithm
	Logger        *zap.Logger
}
