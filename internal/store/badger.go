// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/orbitdesk/internal/config"
	"github.com/tomtom215/orbitdesk/internal/logging"
	"github.com/tomtom215/orbitdesk/internal/metrics"
	"github.com/tomtom215/orbitdesk/internal/models"
	"github.com/tomtom215/orbitdesk/internal/validation"
)

// BadgerStore implements Gateway on BadgerDB.
type BadgerStore struct {
	db *badger.DB

	mu     sync.RWMutex
	closed bool
}

// Open opens (or creates) the badger database described by cfg and returns
// a store over it. The caller owns the returned store and must Close it.
func Open(cfg config.StoreConfig) (*BadgerStore, error) {
	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.SyncWrites = cfg.SyncWrites
	opts.Logger = logging.NewBadgerLogger()

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	s := NewBadgerStore(db)

	count, err := s.Count(context.Background())
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("count satellites: %w", err)
	}
	metrics.SetSatellitesStored(count)

	logging.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Bool("sync_writes", cfg.SyncWrites).
		Int("satellites", count).
		Msg("Satellite store opened")
	return s, nil
}

// NewBadgerStore wraps an already open database.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// Close releases the database handle. It is safe to call more than once.
func (s *BadgerStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close BadgerDB: %w", err)
	}
	logging.Info().Msg("Satellite store closed")
	return nil
}

// begin guards every operation against a closed store and a done context.
// The returned release must be called when the operation finishes.
func (s *BadgerStore) begin(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return nil, ErrStoreUnavailable
	}
	return s.mu.RUnlock, nil
}

func observe(operation string, start time.Time, err error) {
	metrics.RecordStoreOperation(operation, string(KindOf(err)), time.Since(start))
}

// ListAll returns every record in creation order.
func (s *BadgerStore) ListAll(ctx context.Context) (sats []models.Satellite, err error) {
	start := time.Now()
	defer func() { observe("list_all", start, err) }()
	release, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	sats = []models.Satellite{}
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.Prefix = []byte(satelliteKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var sat models.Satellite
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &sat)
			}); err != nil {
				return fmt.Errorf("decode satellite %s: %w", it.Item().Key(), err)
			}
			sats = append(sats, sat)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list satellites: %w", err)
	}
	return sats, nil
}

// FindByName returns the first record (creation order) whose name matches exactly.
func (s *BadgerStore) FindByName(ctx context.Context, name string) (sat *models.Satellite, err error) {
	start := time.Now()
	defer func() { observe("find_by_name", start, err) }()
	release, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = namePrefix(name)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			internalID, err := it.Item().ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("read name index: %w", err)
			}
			found, err := getDoc(txn, string(internalID))
			if errors.Is(err, ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			// Names containing the separator can share a prefix.
			if found.Name == name {
				sat = found
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, wrapTxnErr("find satellite", err)
	}
	return sat, nil
}

// DeleteByID removes and returns the record with the given id.
func (s *BadgerStore) DeleteByID(ctx context.Context, id string) (sat *models.Satellite, err error) {
	start := time.Now()
	defer func() { observe("delete_by_id", start, err) }()
	release, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	err = s.db.Update(func(txn *badger.Txn) error {
		internalID, err := lookupID(txn, id)
		if err != nil {
			return err
		}
		found, err := getDoc(txn, internalID)
		if err != nil {
			return err
		}

		for _, key := range [][]byte{docKey(internalID), idKey(id), nameKey(found.Name, internalID)} {
			if err := txn.Delete(key); err != nil {
				return fmt.Errorf("delete %s: %w", key, err)
			}
		}
		sat = found
		return nil
	})
	if err != nil {
		return nil, wrapTxnErr("delete satellite", err)
	}

	metrics.SatellitesStored.Dec()
	return sat, nil
}

// Create validates input, assigns an internal key and stores the record.
func (s *BadgerStore) Create(ctx context.Context, input *models.SatelliteInput) (sat *models.Satellite, err error) {
	start := time.Now()
	defer func() { observe("create", start, err) }()
	release, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	if input == nil {
		return nil, &ValidationError{Err: errors.New("satellite body is required")}
	}
	if verr := validation.ValidateStruct(input); verr != nil {
		return nil, &ValidationError{Err: verr}
	}

	key, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate internal id: %w", err)
	}
	created := input.ToSatellite(key.String())

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := ensureIDFree(txn, created.ID); err != nil {
			return err
		}
		return putSatellite(txn, &created)
	})
	if err != nil {
		return nil, wrapTxnErr("create satellite", err)
	}

	metrics.SatellitesStored.Inc()
	return &created, nil
}

// UpdateByID merges patch into the record with the given id. Present keys
// replace stored values, null clears, unknown keys are ignored. The merged
// record is validated again and a renamed id must be free.
func (s *BadgerStore) UpdateByID(ctx context.Context, id string, patch models.SatellitePatch) (sat *models.Satellite, err error) {
	start := time.Now()
	defer func() { observe("update_by_id", start, err) }()
	release, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	err = s.db.Update(func(txn *badger.Txn) error {
		internalID, err := lookupID(txn, id)
		if err != nil {
			return err
		}
		current, err := getDoc(txn, internalID)
		if err != nil {
			return err
		}

		merged, err := patch.Merge(current)
		if err != nil {
			return &ValidationError{Err: err}
		}
		if verr := validation.ValidateStruct(&merged); verr != nil {
			return &ValidationError{Err: verr}
		}
		updated := merged.ToSatellite(internalID)

		if updated.ID != current.ID {
			if err := ensureIDFree(txn, updated.ID); err != nil {
				return err
			}
			if err := txn.Delete(idKey(current.ID)); err != nil {
				return fmt.Errorf("delete id index: %w", err)
			}
		}
		if updated.Name != current.Name {
			if err := txn.Delete(nameKey(current.Name, internalID)); err != nil {
				return fmt.Errorf("delete name index: %w", err)
			}
		}
		if err := putSatellite(txn, &updated); err != nil {
			return err
		}
		sat = &updated
		return nil
	})
	if err != nil {
		return nil, wrapTxnErr("update satellite", err)
	}
	return sat, nil
}

// Ping performs a trivial read to confirm the store is open and readable.
func (s *BadgerStore) Ping(ctx context.Context) error {
	release, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer release()

	if s.db.IsClosed() {
		return ErrStoreUnavailable
	}
	return s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(idKey(""))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// Count returns the total number of stored records.
func (s *BadgerStore) Count(ctx context.Context) (int, error) {
	release, err := s.begin(ctx)
	if err != nil {
		return 0, err
	}
	defer release()

	count := 0
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(satelliteKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// lookupID resolves a public id to its internal key.
func lookupID(txn *badger.Txn, id string) (string, error) {
	item, err := txn.Get(idKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get id index: %w", err)
	}
	internalID, err := item.ValueCopy(nil)
	if err != nil {
		return "", fmt.Errorf("read id index: %w", err)
	}
	return string(internalID), nil
}

// getDoc loads the document stored under internalID.
func getDoc(txn *badger.Txn, internalID string) (*models.Satellite, error) {
	item, err := txn.Get(docKey(internalID))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get satellite: %w", err)
	}

	var sat models.Satellite
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &sat)
	}); err != nil {
		return nil, fmt.Errorf("decode satellite %s: %w", internalID, err)
	}
	return &sat, nil
}

func ensureIDFree(txn *badger.Txn, id string) error {
	_, err := txn.Get(idKey(id))
	if err == nil {
		return &ValidationError{Err: fmt.Errorf("%w: %q", ErrDuplicateID, id)}
	}
	if !errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("get id index: %w", err)
	}
	return nil
}

// putSatellite writes the document and both index entries.
func putSatellite(txn *badger.Txn, sat *models.Satellite) error {
	data, err := json.Marshal(sat)
	if err != nil {
		return fmt.Errorf("marshal satellite: %w", err)
	}
	internalID := []byte(sat.InternalID)

	if err := txn.Set(docKey(sat.InternalID), data); err != nil {
		return fmt.Errorf("set satellite: %w", err)
	}
	if err := txn.Set(idKey(sat.ID), internalID); err != nil {
		return fmt.Errorf("set id index: %w", err)
	}
	if err := txn.Set(nameKey(sat.Name, sat.InternalID), internalID); err != nil {
		return fmt.Errorf("set name index: %w", err)
	}
	return nil
}

// wrapTxnErr adds context to storage failures and passes NotFound and
// ValidationError through unchanged.
func wrapTxnErr(op string, err error) error {
	switch KindOf(err) {
	case KindNotFound, KindValidation:
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
