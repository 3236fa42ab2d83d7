// Package store keeps snapshots of parsed mailbox statuses in a bbolt database.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/creativeprojects/imapresp/lib"
	"github.com/creativeprojects/imapresp/mailbox"
	bolt "go.etcd.io/bbolt"
)

const (
	metadataBucket  = "metadata"
	snapshotBucket  = "snapshot"
	versionKey      = "version"
	boltFileVersion = 1
)

// Snapshot is the mailbox status parsed from a transcript at a point in time
type Snapshot struct {
	Name   string
	Date   time.Time
	Status mailbox.Status
}

type BoltStore struct {
	dbFile string
	db     *bolt.DB
	log    lib.Logger
}

func NewBoltStore(filename string) (*BoltStore, error) {
	return NewBoltStoreWithLogger(filename, nil)
}

func NewBoltStoreWithLogger(filename string, logger lib.Logger) (*BoltStore, error) {
	options := bolt.DefaultOptions
	options.Timeout = 10 * time.Second

	err := os.MkdirAll(filepath.Dir(filename), 0700)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q: %w", filename, err)
	}

	db, err := bolt.Open(filename, 0600, options)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q: %w", filename, err)
	}

	return &BoltStore{
		dbFile: filename,
		db:     db,
		log:    lib.LoggerOrNoLog(logger),
	}, nil
}

func (s *BoltStore) Exists() bool {
	_, err := os.Stat(s.dbFile)
	return err == nil
}

// Init creates the buckets and records the file version
func (s *BoltStore) Init() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(metadataBucket))
		if err != nil {
			return err
		}
		version, err := serializeInt(boltFileVersion)
		if err != nil {
			return err
		}
		err = bucket.Put([]byte(versionKey), version)
		if err != nil {
			return err
		}
		_, err = tx.CreateBucketIfNotExists([]byte(snapshotBucket))
		return err
	})
}

// Version returns the file version written by Init
func (s *BoltStore) Version() (int, error) {
	version := 0
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(metadataBucket))
		if bucket == nil {
			return lib.ErrStoreNotInit
		}
		var err error
		version, err = deserializeInt(bucket.Get([]byte(versionKey)))
		return err
	})
	return version, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

// SaveSnapshot stores the snapshot, replacing any previous one of the same name
func (s *BoltStore) SaveSnapshot(snapshot Snapshot) error {
	data, err := serializeObject(&snapshot)
	if err != nil {
		return err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(snapshotBucket))
		if bucket == nil {
			return lib.ErrStoreNotInit
		}
		return bucket.Put([]byte(snapshot.Name), data)
	})
	if err != nil {
		return fmt.Errorf("cannot save snapshot %q: %w", snapshot.Name, err)
	}
	s.log.Printf("snapshot %q saved (%d bytes)", snapshot.Name, len(data))
	return nil
}

func (s *BoltStore) GetSnapshot(name string) (*Snapshot, error) {
	var snapshot *Snapshot
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(snapshotBucket))
		if bucket == nil {
			return lib.ErrStoreNotInit
		}
		data := bucket.Get([]byte(name))
		if data == nil {
			return lib.ErrSnapshotNotFound
		}
		var err error
		snapshot, err = deserializeObject[Snapshot](data)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("cannot load snapshot %q: %w", name, err)
	}
	return snapshot, nil
}

// ListSnapshots returns all the snapshots sorted by name
func (s *BoltStore) ListSnapshots() ([]Snapshot, error) {
	snapshots := make([]Snapshot, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(snapshotBucket))
		if bucket == nil {
			return lib.ErrStoreNotInit
		}
		return bucket.ForEach(func(key, value []byte) error {
			snapshot, err := deserializeObject[Snapshot](value)
			if err != nil {
				return fmt.Errorf("snapshot %q: %w", key, err)
			}
			snapshots = append(snapshots, *snapshot)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Name < snapshots[j].Name
	})
	return snapshots, nil
}

func (s *BoltStore) DeleteSnapshot(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(snapshotBucket))
		if bucket == nil {
			return lib.ErrStoreNotInit
		}
		if bucket.Get([]byte(name)) == nil {
			return lib.ErrSnapshotNotFound
		}
		return bucket.Delete([]byte(name))
	})
}
