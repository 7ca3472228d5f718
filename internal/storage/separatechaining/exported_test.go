//go:build unit

package separatechaining

import (
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/model"
	"github.com/gostonefire/hashtable/keyed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"testing"
)

// badHashAlgorithm - Returns bucket numbers outside the table
type badHashAlgorithm struct {
	tableSize int64
}

func (B *badHashAlgorithm) SetTableSize(tableSize int64) { B.tableSize = tableSize }
func (B *badHashAlgorithm) HashFunc1(key keyed.Key) (int64, error) { return B.tableSize, nil }
func (B *badHashAlgorithm) GetTableSize() int64 { return B.tableSize }
func (B *badHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 { return hf1Value }

func newTestTable(t *testing.T, tableSize int64) *SCTable[string] {
	scTable, err := NewSCTable[string](model.CRTConf{TableSize: tableSize})
	require.NoError(t, err, "create new SCTable instance")
	return scTable
}

func TestNewSCTable(t *testing.T) {
	t.Run("creates a new SCTable instance", func(t *testing.T) {
		// Execute
		scTable, err := NewSCTable[string](model.CRTConf{TableSize: 31})

		// Check
		assert.NoError(t, err, "create new SCTable instance")
		assert.Equal(t, int64(31), scTable.tableSize, "table size preserved")
		assert.Len(t, scTable.buckets, 31, "buckets allocated")
		assert.True(t, scTable.internalAlgorithm, "internal algorithm selected")
		assert.NotNil(t, scTable.hashAlgorithm, "hash algorithm is assigned")
		assert.NotNil(t, scTable.logger, "logger is assigned")
	})

	t.Run("uses a custom hash algorithm", func(t *testing.T) {
		// Prepare
		ha := hashfunc.NewIntFuncAlgorithm(hashfunc.ModuloHash)

		// Execute
		scTable, err := NewSCTable[string](model.CRTConf{TableSize: 17, HashAlgorithm: ha})

		// Check
		assert.NoError(t, err, "create new SCTable instance")
		assert.False(t, scTable.internalAlgorithm, "external algorithm used")
		assert.Equal(t, int64(17), ha.GetTableSize(), "table size pushed to algorithm")
	})

	t.Run("rejects non positive table size", func(t *testing.T) {
		// Execute
		_, err1 := NewSCTable[string](model.CRTConf{TableSize: 0})
		_, err2 := NewSCTable[string](model.CRTConf{TableSize: -5})

		// Check
		assert.Error(t, err1, "zero table size")
		assert.Error(t, err2, "negative table size")
	})
}

func TestSCTable_Insert(t *testing.T) {
	t.Run("inserts into empty bucket", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 31)

		// Execute
		bucketNo, err := scTable.Insert(keyed.NewEntry(keyed.Int(1138), "John"))

		// Check
		assert.NoError(t, err, "inserts entry")
		assert.Equal(t, int64(22), bucketNo, "1138 mod 31")
		assert.Equal(t, int64(1), scTable.GetStorageParameters().NumberOfOccupiedRecords, "one record")
		assert.Equal(t, int64(30), scTable.GetStorageParameters().NumberOfEmptyRecords, "one bucket used")
	})

	t.Run("appends colliding entries to end of chain", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 31)
		keys := []int64{1, 32, 63, 94}

		// Execute
		for i, k := range keys {
			bucketNo, err := scTable.Insert(keyed.NewEntry(keyed.Int(k), string(rune('a'+i))))
			assert.NoErrorf(t, err, "inserts entry #%d", i)
			assert.Equalf(t, int64(1), bucketNo, "entry #%d in bucket 1", i)
		}

		// Check
		chain, err := scTable.GetBucket(1)
		assert.NoError(t, err, "gets bucket")
		var got []int64
		for chain.HasNext() {
			node, err := chain.Next()
			assert.NoError(t, err, "gets node")
			i, _ := node.Entry.Key().IntValue()
			got = append(got, i)
		}
		assert.Equal(t, keys, got, "insertion order preserved in chain")
		assert.Equal(t, int64(30), scTable.GetStorageParameters().NumberOfEmptyRecords, "one bucket used")
	})

	t.Run("rejects duplicate key and keeps first value", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 31)
		_, err := scTable.Insert(keyed.NewEntry(keyed.Int(32), "other"))
		require.NoError(t, err, "inserts entry")
		_, err = scTable.Insert(keyed.NewEntry(keyed.Str("abc"), "first"))
		require.NoError(t, err, "inserts entry")

		// Execute
		_, err = scTable.Insert(keyed.NewEntry(keyed.Str("abc"), "second"))

		// Check
		assert.ErrorIs(t, err, crt.DuplicateKey{}, "duplicate detected")
		entry, err := scTable.Lookup(keyed.Str("abc"))
		assert.NoError(t, err, "looks up entry")
		assert.Equal(t, "first", entry.Value(), "first value retained")
		assert.Len(t, scTable.Enumerate(), 2, "no entry added")
	})

	t.Run("rejects duplicate key deep in chain", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 31)
		for _, k := range []int64{1, 32, 63} {
			_, err := scTable.Insert(keyed.NewEntry(keyed.Int(k), "v"))
			require.NoError(t, err, "inserts entry")
		}

		// Execute
		_, err := scTable.Insert(keyed.NewEntry(keyed.Int(63), "w"))

		// Check
		assert.ErrorIs(t, err, crt.DuplicateKey{}, "duplicate detected")
		assert.Len(t, scTable.Enumerate(), 3, "no entry added")
	})

	t.Run("rejects invalid key", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 31)

		// Execute
		_, err := scTable.Insert(keyed.NewEntry(keyed.Key{}, "nothing"))

		// Check
		assert.ErrorIs(t, err, crt.InvalidKeyType{}, "invalid key type")
		assert.Empty(t, scTable.Enumerate(), "nothing inserted")
	})

	t.Run("rejects bucket number out of range", func(t *testing.T) {
		// Prepare
		scTable, err := NewSCTable[string](model.CRTConf{TableSize: 5, HashAlgorithm: &badHashAlgorithm{}})
		require.NoError(t, err, "create new SCTable instance")

		// Execute
		_, err = scTable.Insert(keyed.NewEntry(keyed.Int(1), "one"))

		// Check
		assert.Error(t, err, "out of range bucket rejected")
		assert.Empty(t, scTable.Enumerate(), "nothing inserted")
	})

	t.Run("never reports table full", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 3)

		// Execute and Check
		for i := int64(0); i < 300; i++ {
			_, err := scTable.Insert(keyed.NewEntry(keyed.Int(i), "v"))
			assert.NoErrorf(t, err, "inserts entry #%d", i)
		}
		assert.Len(t, scTable.Enumerate(), 300, "all entries stored")
	})

	t.Run("stores a fresh valid entry", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 31)
		entry := keyed.NewEntry(keyed.Int(5), "five")
		entry.MarkInvalid()

		// Execute
		_, err := scTable.Insert(entry)

		// Check
		assert.NoError(t, err, "inserts entry")
		stored, err := scTable.Lookup(keyed.Int(5))
		assert.NoError(t, err, "looks up entry")
		assert.True(t, stored.IsValid(), "stored entry is valid")
	})
}

func TestSCTable_Lookup(t *testing.T) {
	t.Run("finds entries along a chain", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 31)
		for i, k := range []int64{1, 32, 63} {
			_, err := scTable.Insert(keyed.NewEntry(keyed.Int(k), string(rune('a'+i))))
			require.NoError(t, err, "inserts entry")
		}

		// Execute
		entry, err := scTable.Lookup(keyed.Int(63))

		// Check
		assert.NoError(t, err, "finds entry")
		assert.Equal(t, "c", entry.Value(), "correct value")
	})

	t.Run("returns not found for empty bucket", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 31)

		// Execute
		_, err := scTable.Lookup(keyed.Int(7))

		// Check
		assert.ErrorIs(t, err, crt.NotFound{}, "not found")
	})

	t.Run("returns not found when chain is exhausted", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 31)
		_, err := scTable.Insert(keyed.NewEntry(keyed.Str("abc"), "abc"))
		require.NoError(t, err, "inserts entry")

		// Execute
		_, err = scTable.Lookup(keyed.Str("cab"))

		// Check
		assert.ErrorIs(t, err, crt.NotFound{}, "anagram in same bucket is not a match")
	})

	t.Run("rejects invalid key", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 31)

		// Execute
		_, err := scTable.Lookup(keyed.Key{})

		// Check
		assert.ErrorIs(t, err, crt.InvalidKeyType{}, "invalid key type")
	})
}

func TestSCTable_Delete(t *testing.T) {
	prepare := func(t *testing.T) *SCTable[string] {
		scTable := newTestTable(t, 31)
		for i, k := range []int64{1, 32, 63} {
			_, err := scTable.Insert(keyed.NewEntry(keyed.Int(k), string(rune('a'+i))))
			require.NoError(t, err, "inserts entry")
		}
		return scTable
	}

	t.Run("unlinks head of chain", func(t *testing.T) {
		// Prepare
		scTable := prepare(t)

		// Execute
		entry, err := scTable.Delete(keyed.Int(1))

		// Check
		assert.NoError(t, err, "deletes entry")
		assert.Equal(t, "a", entry.Value(), "returns removed entry")
		_, err = scTable.Lookup(keyed.Int(1))
		assert.ErrorIs(t, err, crt.NotFound{}, "entry gone")
		for _, k := range []int64{32, 63} {
			_, err = scTable.Lookup(keyed.Int(k))
			assert.NoErrorf(t, err, "entry %d still reachable", k)
		}
	})

	t.Run("unlinks middle of chain", func(t *testing.T) {
		// Prepare
		scTable := prepare(t)

		// Execute
		entry, err := scTable.Delete(keyed.Int(32))

		// Check
		assert.NoError(t, err, "deletes entry")
		assert.Equal(t, "b", entry.Value(), "returns removed entry")
		slots := scTable.Enumerate()
		assert.Len(t, slots, 2, "two entries left")
		assert.Equal(t, "a", slots[0].Entry.Value(), "head kept")
		assert.Equal(t, "c", slots[1].Entry.Value(), "tail relinked")
	})

	t.Run("unlinks tail of chain", func(t *testing.T) {
		// Prepare
		scTable := prepare(t)

		// Execute
		_, err := scTable.Delete(keyed.Int(63))

		// Check
		assert.NoError(t, err, "deletes entry")
		_, err = scTable.Insert(keyed.NewEntry(keyed.Int(94), "d"))
		assert.NoError(t, err, "chain still appendable")
		slots := scTable.Enumerate()
		assert.Equal(t, "d", slots[2].Entry.Value(), "appended after new tail")
	})

	t.Run("deleting last entry empties bucket", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 31)
		_, err := scTable.Insert(keyed.NewEntry(keyed.Int(3), "x"))
		require.NoError(t, err, "inserts entry")

		// Execute
		_, err = scTable.Delete(keyed.Int(3))

		// Check
		assert.NoError(t, err, "deletes entry")
		params := scTable.GetStorageParameters()
		assert.Equal(t, int64(31), params.NumberOfEmptyRecords, "all buckets empty")
		assert.Equal(t, int64(0), params.NumberOfOccupiedRecords, "no records")
	})

	t.Run("returns not found twice", func(t *testing.T) {
		// Prepare
		scTable := prepare(t)
		_, err := scTable.Delete(keyed.Int(32))
		require.NoError(t, err, "deletes entry")

		// Execute
		_, err = scTable.Delete(keyed.Int(32))

		// Check
		assert.ErrorIs(t, err, crt.NotFound{}, "already deleted")
		assert.Len(t, scTable.Enumerate(), 2, "nothing else removed")
	})

	t.Run("reinserts after delete", func(t *testing.T) {
		// Prepare
		scTable := prepare(t)
		_, err := scTable.Delete(keyed.Int(32))
		require.NoError(t, err, "deletes entry")

		// Execute
		_, err = scTable.Insert(keyed.NewEntry(keyed.Int(32), "again"))

		// Check
		assert.NoError(t, err, "reinserts entry")
		entry, err := scTable.Lookup(keyed.Int(32))
		assert.NoError(t, err, "looks up entry")
		assert.Equal(t, "again", entry.Value(), "new value")
	})
}

func TestSCTable_Enumerate(t *testing.T) {
	t.Run("enumerates in bucket then chain order", func(t *testing.T) {
		// Prepare
		scTable := newTestTable(t, 5)
		for _, k := range []int64{7, 2, 3, 12, 0} {
			_, err := scTable.Insert(keyed.NewEntry(keyed.Int(k), "v"))
			require.NoError(t, err, "inserts entry")
		}

		// Execute
		slots := scTable.Enumerate()

		// Check
		var indexes, keys []int64
		for _, s := range slots {
			indexes = append(indexes, s.Index)
			k, _ := s.Entry.Key().IntValue()
			keys = append(keys, k)
		}
		assert.Equal(t, []int64{0, 2, 2, 2, 3}, indexes, "bucket order")
		assert.Equal(t, []int64{0, 7, 2, 12, 3}, keys, "chain order within bucket")
	})
}

func TestSCTable_Logging(t *testing.T) {
	t.Run("traces collisions and failures", func(t *testing.T) {
		// Prepare
		core, logs := observer.New(zapcore.DebugLevel)
		scTable, err := NewSCTable[string](model.CRTConf{TableSize: 31, Logger: zap.New(core)})
		require.NoError(t, err, "create new SCTable instance")

		// Execute
		_, _ = scTable.Insert(keyed.NewEntry(keyed.Int(1), "a"))
		_, _ = scTable.Insert(keyed.NewEntry(keyed.Int(32), "b"))
		_, _ = scTable.Insert(keyed.NewEntry(keyed.Int(32), "c"))
		_, _ = scTable.Lookup(keyed.Int(2))

		// Check
		assert.Equal(t, 1, logs.FilterMessage("collision occurred").Len(), "collision traced")
		assert.Equal(t, 1, logs.FilterMessage("item already in table").Len(), "duplicate traced")
		assert.Equal(t, 1, logs.FilterMessage("item not in table").Len(), "miss traced")
	})
}
