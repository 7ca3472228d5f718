package hashtable

import (
	"fmt"

	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/internal/storage/openaddressing"
	"github.com/gostonefire/hashtable/internal/storage/separatechaining"
	"github.com/gostonefire/hashtable/keyed"
	"go.uber.org/zap"
)

// TableManagement - Interface for any collision resolution technique implementation
type TableManagement[T any] interface {
	Insert(entry keyed.Entry[T]) (index int64, err error)
	Lookup(key keyed.Key) (entry keyed.Entry[T], err error)
	Delete(key keyed.Key) (entry keyed.Entry[T], err error)
	Enumerate() (slots []model.Slot[T])
	GetBucketNo(key keyed.Key) (bucketNo int64, err error)
	GetStorageParameters() (params model.StorageParameters)
}

// Conf - Configuration given to NewHashTable
//   - CollisionResolutionTechnique is one of crt.SeparateChaining or crt.LinearProbing
//   - Capacity is the fixed number of buckets (or slots), the table is never resized
//   - HashAlgorithm is an optional custom hash algorithm following the hashfunc.HashAlgorithm interface
//   - Logger is an optional zap logger receiving trace output, nil disables logging
type Conf struct {
	CollisionResolutionTechnique int
	Capacity                     int64
	HashAlgorithm                hashfunc.HashAlgorithm
	Logger                       *zap.Logger
}

// TableInfo - Information structure containing some information about the hash table created
//   - CollisionResolutionTechnique is the technique in use
//   - TableSize is the number of buckets (or slots) in the table
//   - InternalAlgorithm is true if the built-in modulo hash algorithm is used
type TableInfo struct {
	CollisionResolutionTechnique int
	TableSize                    int64
	InternalAlgorithm            bool
}

// TableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the number of valid entries stored
//   - Tombstones is the number of deleted entries still occupying a slot, always zero for separate chaining
//   - BucketDistribution is the number of valid entries stored at each index, only filled in on request
type TableStat struct {
	Records            int64
	Tombstones         int64
	BucketDistribution []int64
}

// HashTable - The main implementation struct
type HashTable[T any] struct {
	tableManagement TableManagement[T]
	logger          *zap.Logger
}

// NewHashTable - Returns a new hash table with a fixed capacity using the given collision resolution technique.
//   - conf is a Conf struct holding the configuration of the table
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - tableInfo is a TableInfo struct containing some data regarding the table created
//   - err is a normal go Error which should be nil if everything went ok
func NewHashTable[T any](conf Conf) (hashTable *HashTable[T], tableInfo TableInfo, err error) {
	// Check if capacity is valid
	if conf.Capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	if conf.Logger == nil {
		conf.Logger = zap.NewNop()
	}

	crtConf := model.CRTConf{
		TableSize:     conf.Capacity,
		HashAlgorithm: conf.HashAlgorithm,
		Logger:        conf.Logger,
	}

	var tm TableManagement[T]
	switch conf.CollisionResolutionTechnique {
	case crt.SeparateChaining:
		tm, err = separatechaining.NewSCTable[T](crtConf)
	case crt.LinearProbing:
		tm, err = openaddressing.NewOATable[T](crtConf)
	default:
		err = fmt.Errorf("unknown collision resolution technique: %d", conf.CollisionResolutionTechnique)
	}
	if err != nil {
		err = fmt.Errorf("error while creating table: %s", err)
		return
	}

	hashTable = &HashTable[T]{
		tableManagement: tm,
		logger:          conf.Logger,
	}

	sp := tm.GetStorageParameters()

	tableInfo = TableInfo{
		CollisionResolutionTechnique: sp.CollisionResolutionTechnique,
		TableSize:                    sp.TableSize,
		InternalAlgorithm:            sp.InternalAlgorithm,
	}

	conf.Logger.Debug("hash table created",
		zap.String("crt", crt.Name(sp.CollisionResolutionTechnique)),
		zap.Int64("tableSize", sp.TableSize),
		zap.Bool("internalAlgorithm", sp.InternalAlgorithm),
	)

	return
}
