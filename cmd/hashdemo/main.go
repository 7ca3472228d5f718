package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gostonefire/hashtable"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/keyed"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func main() {
	var path string
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := loadConfig(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err = run(cfg, logger, os.Stdout); err != nil {
		logger.Error("demo failed", zap.Error(err))
		os.Exit(1)
	}
}

// run - Populates a table from the configuration, then exercises lookup and delete on the first and last id
func run(cfg Config, logger *zap.Logger, out io.Writer) (err error) {
	if err = cfg.validate(); err != nil {
		return
	}

	technique, err := cfg.technique()
	if err != nil {
		return
	}

	ht, info, err := hashtable.NewHashTable[string](hashtable.Conf{
		CollisionResolutionTechnique: technique,
		Capacity:                     cfg.Capacity,
		Logger:                       logger,
	})
	if err != nil {
		return
	}
	logger.Info("table created", zap.String("crt", crt.Name(info.CollisionResolutionTechnique)), zap.Int64("tableSize", info.TableSize))

	keys, err := cfg.keys()
	if err != nil {
		return
	}

	inserted, err := ht.Populate(keys, cfg.Names)
	for _, e := range multierr.Errors(err) {
		logger.Warn("entry skipped", zap.Error(e))
	}
	err = nil
	logger.Info("table populated", zap.Int("inserted", inserted))

	printTable(out, ht)

	first, last := keys[0], keys[len(keys)-1]
	printLookup(out, ht, first)

	for _, key := range []keyed.Key{first, last} {
		if _, dErr := ht.Delete(key); dErr != nil {
			logger.Warn("could not delete", zap.Stringer("key", key), zap.Error(dErr))
		}
	}

	printTable(out, ht)
	printLookup(out, ht, first)
	printLookup(out, ht, last)

	stat := ht.Stat(false)
	_, _ = fmt.Fprintf(out, "records: %d, tombstones: %d\n", stat.Records, stat.Tombstones)

	return
}

func printTable(out io.Writer, ht *hashtable.HashTable[string]) {
	for _, item := range ht.Enumerate() {
		_, _ = fmt.Fprintf(out, "%3d: %s => %s\n", item.Index, item.Key, item.Value)
	}
	_, _ = fmt.Fprintln(out)
}

func printLookup(out io.Writer, ht *hashtable.HashTable[string], key keyed.Key) {
	value, err := ht.Lookup(key)
	switch {
	case errors.Is(err, crt.NotFound{}):
		_, _ = fmt.Fprintf(out, "lookup %s: not found\n", key)
	case err != nil:
		_, _ = fmt.Fprintf(out, "lookup %s: %s\n", key, err)
	default:
		_, _ = fmt.Fprintf(out, "lookup %s: %s\n", key, value)
	}
}
