// Package store keeps finished buffers in BoltDB.
//
// BoltDB hands out values that point straight into its memory-mapped file,
// which fits buffers that are read in place: View resolves fields without a
// copy or a decoding pass.
//
// Updates come in two flavors. When only fields that are already present in
// the stored buffer change, Mutate takes the fast path: it clones the bytes,
// rewrites them in place and stores the clone. Anything else (a field that
// was elided at build time, a vector that changes length, a new table) has
// to be rebuilt and written with Put or Build; Mutate reports false so the
// caller knows to do that.
package store

import (
	"os"

	"github.com/boltdb/bolt"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/blastbao/flatbuf/flatbuffers"
)

const mode os.FileMode = 0600

var (
	// ErrNotFound is returned when no record is stored under a key.
	ErrNotFound = xerrors.New("store: record not found")
	// ErrIdentifierMismatch is returned when a stored buffer lacks the
	// configured file identifier.
	ErrIdentifierMismatch = xerrors.New("store: file identifier mismatch")
)

// Store is a BoltDB-backed map from keys to finished buffers. It is safe
// for concurrent use; write transactions are serialized by BoltDB.
type Store struct {
	db     *bolt.DB
	bucket []byte
	fid    string

	pool    *flatbuffers.BuilderPool
	logger  *zap.Logger
	metrics *metrics
}

// Open opens the database at cfg.Path, creating it and the bucket if they
// are missing.
func Open(cfg Config) (*Store, error) {
	cfg.applyDefaults()
	if cfg.Path == "" {
		return nil, xerrors.New("store: empty path")
	}
	if cfg.FileIdentifier != "" && len(cfg.FileIdentifier) != flatbuffers.FileIdentifierLength {
		return nil, xerrors.Errorf("store: identifier %q: %w", cfg.FileIdentifier, flatbuffers.ErrInvalidFileIdentifier)
	}

	m, err := newMetrics(cfg.Registerer)
	if err != nil {
		return nil, err
	}

	db, err := bolt.Open(cfg.Path, mode, &bolt.Options{Timeout: cfg.Timeout})
	if err != nil {
		return nil, xerrors.Errorf("store: open %s: %w", cfg.Path, err)
	}
	db.NoSync = cfg.NoSync

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(cfg.Bucket))
		return err
	}); err != nil {
		db.Close()
		return nil, xerrors.Errorf("store: create bucket %s: %w", cfg.Bucket, err)
	}

	opts := append([]flatbuffers.BuilderOption{flatbuffers.WithLogger(cfg.Logger)}, cfg.BuilderOptions...)
	s := &Store{
		db:      db,
		bucket:  []byte(cfg.Bucket),
		fid:     cfg.FileIdentifier,
		pool:    flatbuffers.NewBuilderPool(1024, opts...),
		logger:  cfg.Logger,
		metrics: m,
	}
	s.logger.Info("flatbuffers store opened",
		zap.String("path", cfg.Path),
		zap.String("bucket", cfg.Bucket))
	return s, nil
}

// Close closes the database. All View and Mutate calls must have returned.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		s.logger.Error("close flatbuffers store", zap.Error(err))
		return xerrors.Errorf("store: close: %w", err)
	}
	s.logger.Info("flatbuffers store closed", zap.String("path", s.db.Path()))
	return nil
}

// Put stores the finished buffer of b under key.
func (s *Store) Put(key []byte, b *flatbuffers.Builder) error {
	buf, err := b.FinishedBytes()
	if err != nil {
		s.metrics.observe("put", err)
		return xerrors.Errorf("store: put %q: %w", key, err)
	}
	return s.PutBytes(key, buf)
}

// PutBytes stores a finished buffer under key. buf is copied by BoltDB on
// commit and may be reused afterwards.
func (s *Store) PutBytes(key, buf []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put(key, buf)
	})
	s.metrics.observe("put", err)
	if err != nil {
		return xerrors.Errorf("store: put %q: %w", key, err)
	}
	return nil
}

// Build serializes a record with a pooled builder and stores it under key.
// fn writes the record and returns its root table; Build finishes the
// buffer, with the configured file identifier if any.
func (s *Store) Build(key []byte, fn func(*flatbuffers.Builder) (flatbuffers.UOffsetT, error)) error {
	b := s.pool.Get(nil)
	defer s.pool.Put(b, false)

	root, err := fn(b)
	if err == nil {
		if s.fid != "" {
			err = b.FinishWithFileIdentifier(root, []byte(s.fid))
		} else {
			err = b.Finish(root)
		}
	}
	if err != nil {
		s.metrics.observe("build", err)
		return xerrors.Errorf("store: build %q: %w", key, err)
	}
	s.metrics.observe("build", nil)
	return s.Put(key, b)
}

// Get returns a copy of the buffer stored under key.
func (s *Store) Get(key []byte) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(s.bucket).Get(key)
		if v == nil {
			return ErrNotFound
		}
		out = append([]byte(nil), v...)
		return nil
	})
	s.metrics.observe("get", err)
	if err != nil {
		return nil, xerrors.Errorf("store: get %q: %w", key, err)
	}
	return out, nil
}

// View calls fn with the root table of the record under key. The table
// points into BoltDB's read-only memory map: it is valid only until fn
// returns and must not be mutated.
func (s *Store) View(key []byte, fn func(flatbuffers.Table) error) error {
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(s.bucket).Get(key)
		if v == nil {
			return ErrNotFound
		}
		t, err := s.root(v)
		if err != nil {
			return err
		}
		return fn(t)
	})
	s.metrics.observe("view", err)
	if err != nil {
		return xerrors.Errorf("store: view %q: %w", key, err)
	}
	return nil
}

// ForEach calls fn for every record in key order, under one read
// transaction. The same restrictions as for View apply to key and t.
func (s *Store) ForEach(fn func(key []byte, t flatbuffers.Table) error) error {
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).ForEach(func(k, v []byte) error {
			t, err := s.root(v)
			if err != nil {
				return xerrors.Errorf("key %q: %w", k, err)
			}
			return fn(k, t)
		})
	})
	s.metrics.observe("scan", err)
	if err != nil {
		return xerrors.Errorf("store: scan: %w", err)
	}
	return nil
}

// Mutate applies fn to a private copy of the record under key and stores
// the copy if fn returns true. fn should return false as soon as one of its
// mutators does; the record is then left untouched and Mutate reports false,
// and the caller has to rebuild the record and Put it.
func (s *Store) Mutate(key []byte, fn func(*flatbuffers.Table) bool) (bool, error) {
	var applied bool
	err := s.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(s.bucket)
		v := bkt.Get(key)
		if v == nil {
			return ErrNotFound
		}
		// v belongs to the memory map; mutate a copy.
		buf := append([]byte(nil), v...)
		t, err := s.root(buf)
		if err != nil {
			return err
		}
		if !fn(&t) {
			return nil
		}
		applied = true
		return bkt.Put(key, buf)
	})
	switch {
	case err != nil:
		s.metrics.observe("mutate", err)
		return false, xerrors.Errorf("store: mutate %q: %w", key, err)
	case !applied:
		s.metrics.ops.WithLabelValues("mutate", resultSlowPath).Inc()
		s.logger.Debug("fast-path mutation declined, record needs a rebuild", zap.ByteString("key", key))
	default:
		s.metrics.observe("mutate", nil)
	}
	return applied, nil
}

// Delete removes the record under key. Deleting a missing key is not an
// error.
func (s *Store) Delete(key []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Delete(key)
	})
	s.metrics.observe("delete", err)
	if err != nil {
		return xerrors.Errorf("store: delete %q: %w", key, err)
	}
	return nil
}

func (s *Store) root(buf []byte) (flatbuffers.Table, error) {
	var t flatbuffers.Table
	if s.fid != "" && !flatbuffers.BufferHasIdentifier(buf, s.fid) {
		return t, xerrors.Errorf("want %q, have %q: %w", s.fid, flatbuffers.GetBufferIdentifier(buf), ErrIdentifierMismatch)
	}
	flatbuffers.GetRootAs(buf, 0, &t)
	return t, nil
}
