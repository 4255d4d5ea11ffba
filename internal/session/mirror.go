package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var (
	mirrorBucket = []byte("session")
	mirrorKey    = []byte("current")
)

// Mirror persists a serialized copy of the active session under a fixed
// key in a local bolt file. It is read once at startup to auto-resume a
// session and cleared on logout. Only the most recent session is kept;
// a later login overwrites an earlier one.
type Mirror struct {
	db *bbolt.DB
}

// OpenMirror opens (or creates) the bolt file and its bucket.
func OpenMirror(path string) (*Mirror, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session dir: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(mirrorBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Mirror{db: db}, nil
}

// Save serializes the session into the fixed slot.
func (m *Mirror) Save(s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return m.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(mirrorBucket).Put(mirrorKey, data)
	})
}

// Load returns the mirrored session, or nil when the slot is empty.
func (m *Mirror) Load() (*Session, error) {
	var s *Session
	err := m.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(mirrorBucket).Get(mirrorKey)
		if data == nil {
			return nil
		}
		s = &Session{}
		return json.Unmarshal(data, s)
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Clear empties the slot.
func (m *Mirror) Clear() error {
	return m.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(mirrorBucket).Delete(mirrorKey)
	})
}

// Ping verifies the bolt file is readable; used by the health endpoint.
func (m *Mirror) Ping() error {
	return m.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(mirrorBucket) == nil {
			return fmt.Errorf("session bucket missing")
		}
		return nil
	})
}

// Close closes the underlying bolt file.
func (m *Mirror) Close() error {
	return m.db.Close()
}
