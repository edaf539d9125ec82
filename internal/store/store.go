// Tablemate - Family Restaurant Recommendations with Dietary Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tablemate

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/goccy/go-json"

	"github.com/tomtom215/tablemate/internal/logging"
	"github.com/tomtom215/tablemate/internal/metrics"
)

// Errors
var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidReference is returned when a record points at reference
	// data that does not exist.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrInvalidInput is returned when a value is outside its domain.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when a unique name is already taken.
	ErrConflict = errors.New("record already exists")

	// ErrClosed is returned when the store is closed.
	ErrClosed = errors.New("store is closed")
)

// Entity names used for keys, sequences and metrics labels.
const (
	entityFamily      = "family"
	entityRestriction = "restriction"
	entityCuisine     = "cuisine"
	entityMember      = "member"
	entityRestaurant  = "restaurant"
)

// Key prefixes for BadgerDB storage
const (
	familyKeyPrefix      = "family:"
	restrictionKeyPrefix = "restriction:"
	cuisineKeyPrefix     = "cuisine:"
	memberKeyPrefix      = "member:"
	restaurantKeyPrefix  = "restaurant:"
	sequenceKeyPrefix    = "seq:"
)

// sequenceBandwidth is the number of IDs leased from BadgerDB at a time.
const sequenceBandwidth = 100

// Store persists families, members, restaurants and reference data in BadgerDB.
// It is safe for concurrent use.
type Store struct {
	db     *badger.DB
	config Config

	mu     sync.RWMutex
	closed bool
	seqs   map[string]*badger.Sequence

	// refMu serializes reference data writes so name uniqueness holds.
	refMu sync.Mutex
}

// Open opens (or creates) the store described by cfg.
func Open(cfg *Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid store config: %w", err)
	}

	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.SyncWrites = cfg.SyncWrites
	if cfg.Compression {
		opts.Compression = options.Snappy
	}

	// Reduce logging verbosity
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	s := &Store{
		db:     db,
		config: *cfg,
		seqs:   make(map[string]*badger.Sequence),
	}

	logging.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Bool("sync_writes", cfg.SyncWrites).
		Bool("compression", cfg.Compression).
		Msg("Store opened")
	return s, nil
}

// Close releases leased sequences and closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	for name, seq := range s.seqs {
		if err := seq.Release(); err != nil {
			errs = append(errs, fmt.Errorf("release %s sequence: %w", name, err))
		}
	}
	if err := s.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close BadgerDB: %w", err))
	}
	return errors.Join(errs...)
}

// DB returns the underlying BadgerDB.
func (s *Store) DB() *badger.DB {
	return s.db
}

// Config returns the store configuration.
func (s *Store) Config() Config {
	return s.config
}

// Ping verifies the store is open and can serve a read transaction.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(*badger.Txn) error { return nil })
}

// RunGC runs value log garbage collection until nothing is left to rewrite.
// It is a no-op for in-memory stores.
func (s *Store) RunGC() error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if s.config.InMemory {
		return nil
	}

	start := time.Now()
	var gcErr error
	defer func() {
		metrics.RecordStoreGC(time.Since(start), gcErr)
	}()

	for {
		err := s.db.RunValueLogGC(s.config.GCRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			break
		}
		if err != nil {
			gcErr = fmt.Errorf("run GC: %w", err)
			return gcErr
		}
	}
	return nil
}

func (s *Store) checkOpen() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return nil
}

// nextID leases the next ID for an entity. IDs start at 1.
func (s *Store) nextID(entity string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrClosed
	}

	seq, ok := s.seqs[entity]
	if !ok {
		var err error
		seq, err = s.db.GetSequence([]byte(sequenceKeyPrefix+entity), sequenceBandwidth)
		if err != nil {
			return 0, fmt.Errorf("get %s sequence: %w", entity, err)
		}
		s.seqs[entity] = seq
	}

	n, err := seq.Next()
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", entity, err)
	}
	// Sequences start at 0; IDs must be positive.
	return int64(n) + 1, nil
}

// observe records a store operation metric from a deferred call site.
func observe(operation, entity string, start time.Time, errp *error) {
	result := metrics.ResultSuccess
	if errp != nil && *errp != nil {
		switch err := *errp; {
		case errors.Is(err, ErrNotFound):
			result = metrics.ResultNotFound
		case errors.Is(err, ErrInvalidReference), errors.Is(err, ErrInvalidInput), errors.Is(err, ErrConflict):
			result = metrics.ResultInvalid
		default:
			result = metrics.ResultError
		}
	}
	metrics.RecordStoreOperation(operation, entity, result, time.Since(start))
}

func idKey(prefix string, id int64) []byte {
	return []byte(fmt.Sprintf("%s%020d", prefix, id))
}

func familyKey(id string) []byte {
	return []byte(familyKeyPrefix + id)
}

func familyScopedPrefix(prefix, familyID string) []byte {
	return []byte(prefix + familyID + ":")
}

func familyScopedKey(prefix, familyID string, id int64) []byte {
	return []byte(fmt.Sprintf("%s%s:%020d", prefix, familyID, id))
}

// getJSON loads and decodes a value, mapping a missing key to ErrNotFound.
func getJSON(txn *badger.Txn, key []byte, v interface{}) error {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func setJSON(txn *badger.Txn, key []byte, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := txn.Set(key, data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func exists(txn *badger.Txn, key []byte) (bool, error) {
	_, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	return true, nil
}

// scanPrefix calls fn with every value under prefix in key order.
func scanPrefix(txn *badger.Txn, prefix []byte, fn func(val []byte) error) error {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = true
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		if err := it.Item().Value(fn); err != nil {
			return err
		}
	}
	return nil
}
