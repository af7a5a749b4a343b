package repository

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	sessionBucket = "session"
	sessionKey    = "current" // single admin session, one fixed key
)

// BoltSessionStore implements domain.SessionStore on an embedded bbolt
// database, mirroring the session to disk so it survives restarts.
type BoltSessionStore struct {
	db *bbolt.DB
}

// NewSessionStore opens (or creates) the bbolt database at path.
func NewSessionStore(path string) (*BoltSessionStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open session store %s: %w", path, err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(sessionBucket))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create session bucket: %w", err)
	}

	return &BoltSessionStore{db: db}, nil
}

// Load returns the stored session record, or (nil, nil) when absent.
func (s *BoltSessionStore) Load() ([]byte, error) {
	var record []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		value := tx.Bucket([]byte(sessionBucket)).Get([]byte(sessionKey))
		if value != nil {
			// Bucket memory is only valid inside the transaction.
			record = append([]byte(nil), value...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load session record: %w", err)
	}
	return record, nil
}

// Save writes the session record, replacing any previous one.
func (s *BoltSessionStore) Save(record []byte) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Put([]byte(sessionKey), record)
	})
	if err != nil {
		return fmt.Errorf("save session record: %w", err)
	}
	return nil
}

// Delete removes the session record. Deleting an absent record is a no-op.
func (s *BoltSessionStore) Delete() error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Delete([]byte(sessionKey))
	})
	if err != nil {
		return fmt.Errorf("delete session record: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *BoltSessionStore) Close() error {
	return s.db.Close()
}
